/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package meta

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type testDocument struct {
	values map[string]any
	hints  map[string]string
}

func newTestDocument() *testDocument {
	return &testDocument{values: map[string]any{}, hints: map[string]string{}}
}

func (d *testDocument) SetProperty(key string, value any, hint ...string) {
	d.values[key] = value
	if len(hint) > 0 {
		d.hints[key] = hint[0]
	}
}

func (d *testDocument) GetProperty(key string) (any, bool) {
	v, ok := d.values[key]
	return v, ok
}

func TestObjectDescriptor_SerializeSelf(t *testing.T) {
	require := require.New(t)

	m := NewModel("people", "people-module")
	entity := m.NewObjectDescriptor("Entity")
	entity.SetObjectDescriptorModule("entity-module")
	id := entity.AddToOnePropertyDescriptorNamed("id")
	id.SetValueType(ValueType_Number)

	company := m.NewObjectDescriptor("Company")
	company.SetObjectDescriptorModule("company-module")

	person := m.NewObjectDescriptor("Person")
	person.SetObjectDescriptorModule("person-module")
	require.NoError(person.SetParent(entity))

	name := person.AddToOnePropertyDescriptorNamed("name")
	name.SetMandatory(true)
	name.SetDefaultValue("anonymous")
	person.AddToManyPropertyDescriptorNamed("tags")
	employer := person.AddToOneAssociationNamed("employer", nil)
	employer.SetTargetDescriptor(company)
	title := NewDerivedPropertyDescriptor("title", Cardinality_ToOne)
	title.SetDependencies("name")
	require.NoError(title.SetGetter(`"Dear " + name`))
	person.AddPropertyDescriptor(title)

	person.AddPropertyDescriptorToGroupNamed(name, "main")
	person.AddPropertyDescriptorToGroupNamed(id, "main")
	person.AddEventDescriptorNamed("changed")
	require.NoError(person.AddPropertyValidationRule("nameRequired").SetExpression(`name == ""`))
	person.AddPropertyValidationRule("custom").SetMessageKey("custom.message")

	doc := newTestDocument()
	person.SerializeSelf(doc)

	t.Run("must be ok to write persisted shape", func(t *testing.T) {
		require.Equal("Person", doc.values[Key_Name])
		require.Equal(map[string]any{Key_ModelName: "people", Key_ModelModule: "people-module"}, doc.values[Key_Model])
		require.Equal(Hint_Reference, doc.hints[Key_Model])
		require.Equal("person-module", doc.values[Key_ObjectDescriptorModule])
		require.Equal(map[string]any{
			Key_ObjectDescriptorName:   "Entity",
			Key_ObjectDescriptorModule: "entity-module",
			Key_ObjectModelReference:   map[string]any{Key_ModelName: "people", Key_ModelModule: "people-module"},
		}, doc.values[Key_Parent])
		require.NotContains(doc.values, Key_CustomPrototype)
		require.Len(doc.values[Key_PropertyDescriptors], 4)
		require.Equal(map[string]any{"main": []any{"name", "id"}}, doc.values[Key_PropertyDescriptorsGroups])
		require.Equal([]any{map[string]any{Key_Name: "changed"}}, doc.values[Key_EventObjectDescriptors])
		require.Equal([]any{
			map[string]any{Key_Name: "nameRequired", key_ValidationSelector: `name == ""`},
			map[string]any{Key_Name: "custom", key_MessageKey: "custom.message"},
		}, doc.values[Key_PropertyValidationRules])
	})

	t.Run("must be ok to omit defaults", func(t *testing.T) {
		d := newTestDocument()
		NewModelGroup().DefaultModel().NewObjectDescriptor("Plain").SerializeSelf(d)
		require.Equal(map[string]any{Key_Name: "Plain"}, d.values)
	})

	t.Run("must be ok to read persisted shape", func(t *testing.T) {
		restored := NewObjectDescriptor("")
		require.NoError(restored.DeserializeSelf(doc))

		require.Equal("Person", restored.Name())
		require.Equal("person-module", restored.ObjectDescriptorModule())
		require.False(restored.CustomPrototype())

		mRef, ok := restored.PendingModelReference()
		require.True(ok)
		require.Equal(ModelReference{Name: "people", ModuleID: "people-module"}, mRef)

		pRef, ok := restored.ParentReference()
		require.True(ok)
		require.Equal("Entity", pRef.Name)
		require.Equal("entity-module", pRef.ModuleID)
		require.Equal(&mRef, pRef.Model)
		require.Nil(restored.Parent())

		props := restored.OwnPropertyDescriptors()
		require.Len(props, 4)
		n := restored.PropertyDescriptorForName("name")
		require.Equal(PropertyKind_Simple, n.Kind())
		require.True(n.Mandatory())
		require.Equal("anonymous", n.DefaultValue())
		require.True(restored.PropertyDescriptorForName("tags").IsToMany())

		a := restored.PropertyDescriptorForName("employer").(*AssociationDescriptor)
		require.Nil(a.TargetDescriptor())
		target, ok := a.PendingTargetReference()
		require.True(ok)
		require.Equal("Company", target.Name)
		require.Equal("company-module", target.ModuleID)

		dp := restored.PropertyDescriptorForName("title").(*DerivedPropertyDescriptor)
		require.True(dp.ReadOnly())
		require.Equal([]string{"name"}, dp.Dependencies())
		require.Equal(`"Dear " + name`, dp.Getter())

		require.NotNil(restored.EventDescriptorForName("changed"))
		require.Equal([]string{"nameRequired"}, restored.EvaluateRules(map[string]any{"name": ""}))
		require.Equal("custom.message", restored.PropertyValidationRuleForName("custom").MessageKey())

		require.Equal([]IPropertyDescriptor{n}, restored.PropertyDescriptorGroupForName("main"), "inherited member is pending")

		t.Run("must be ok to write pending references back", func(t *testing.T) {
			again := newTestDocument()
			restored.SerializeSelf(again)
			require.Equal(doc.values, again.values)
		})

		t.Run("must be ok to resolve pending group members by parent", func(t *testing.T) {
			require.NoError(restored.SetParent(entity))
			require.Equal([]IPropertyDescriptor{n, id}, restored.PropertyDescriptorGroupForName("main"))

			again := newTestDocument()
			restored.SerializeSelf(again)
			require.Equal(doc.values, again.values)
		})
	})
}

func TestObjectDescriptor_DeserializeSelf(t *testing.T) {
	require := require.New(t)

	t.Run("must be ok to read defaults", func(t *testing.T) {
		d := NewObjectDescriptor("x")
		require.NoError(d.DeserializeSelf(newTestDocument()))
		require.Equal(DefaultObjectDescriptorName, d.Name())
		require.Equal(DefaultCustomPrototype, d.CustomPrototype())
		_, ok := d.PendingModelReference()
		require.False(ok)
	})

	t.Run("must be ok to read custom prototype and sorted groups", func(t *testing.T) {
		doc := newTestDocument()
		doc.values = map[string]any{
			Key_Name:            "Widget",
			Key_CustomPrototype: true,
			Key_PropertyDescriptors: []any{
				map[string]any{Key_Name: "size", key_ValueType: "number", key_Cardinality: float64(1)},
			},
			Key_PropertyDescriptorsGroups: map[any]any{
				"z": []any{"size"},
				"a": []any{},
			},
		}
		d := NewObjectDescriptor("")
		require.NoError(d.DeserializeSelf(doc))
		require.True(d.CustomPrototype())
		require.Equal([]string{"a", "z"}, d.PropertyDescriptorGroups())
		require.Equal(ValueType_Number, d.PropertyDescriptorForName("size").ValueType())
		require.Len(d.PropertyDescriptorGroupForName("z"), 1)
	})

	tests := []struct {
		name string
		doc  map[string]any
	}{
		{"not string name", map[string]any{Key_Name: 1}},
		{"broken model reference", map[string]any{Key_Model: "people"}},
		{"broken parent reference", map[string]any{Key_Parent: map[string]any{}}},
		{"not list properties", map[string]any{Key_PropertyDescriptors: "name"}},
		{"unnamed property", map[string]any{Key_PropertyDescriptors: []any{map[string]any{}}}},
		{"unknown property kind", map[string]any{Key_PropertyDescriptors: []any{map[string]any{Key_Name: "p", key_Kind: "magic"}}}},
		{"wrong cardinality", map[string]any{Key_PropertyDescriptors: []any{map[string]any{Key_Name: "p", key_Cardinality: 1.5}}}},
		{"broken getter", map[string]any{Key_PropertyDescriptors: []any{map[string]any{Key_Name: "p", key_Kind: "derived", key_Getter: "a +"}}}},
		{"not map groups", map[string]any{Key_PropertyDescriptorsGroups: []any{}}},
		{"not list group", map[string]any{Key_PropertyDescriptorsGroups: map[string]any{"g": "p"}}},
		{"unnamed event", map[string]any{Key_EventObjectDescriptors: []any{map[string]any{}}}},
		{"unnamed rule", map[string]any{Key_PropertyValidationRules: []any{map[string]any{}}}},
		{"broken rule", map[string]any{Key_PropertyValidationRules: []any{map[string]any{Key_Name: "r", key_ValidationSelector: "=="}}}},
	}
	for _, tt := range tests {
		t.Run("should be error if "+tt.name, func(t *testing.T) {
			doc := newTestDocument()
			doc.values = tt.doc
			require.ErrorIs(NewObjectDescriptor("").DeserializeSelf(doc), ErrInvalidError)
		})
	}
}

func TestModel_SerializeSelf(t *testing.T) {
	require := require.New(t)

	doc := newTestDocument()
	NewModel("people", "people-module").SerializeSelf(doc)
	require.Equal(map[string]any{Key_ModelName: "people", Key_ModelModule: "people-module"}, doc.values)

	m, err := ModelFromDocument(doc)
	require.NoError(err)
	require.Equal("people", m.Name())
	require.Equal("people-module", m.ModuleID())

	m, err = ModelFromDocument(newTestDocument())
	require.NoError(err)
	require.Nil(m)

	doc.values[Key_ModelName] = ""
	_, err = ModelFromDocument(doc)
	require.ErrorIs(err, ErrInvalidError)
}

func TestObjectDescriptor_SerializeParentState(t *testing.T) {
	require := require.New(t)

	entity := NewObjectDescriptor("Entity")
	person := NewObjectDescriptor("Person")
	require.NoError(person.SetParent(entity))

	// parent gets model and module after it is linked
	shop := NewModel("shop", "shop-module")
	shop.AddObjectDescriptor(entity)
	entity.SetObjectDescriptorModule("entity-module")

	ref, ok := person.ParentReference()
	require.True(ok)
	require.Equal(ObjectDescriptorReference{
		Name:     "Entity",
		ModuleID: "entity-module",
		Model:    &ModelReference{Name: "shop", ModuleID: "shop-module"},
	}, ref)

	doc := newTestDocument()
	person.SerializeSelf(doc)
	require.Equal(map[string]any{
		Key_ObjectDescriptorName:   "Entity",
		Key_ObjectDescriptorModule: "entity-module",
		Key_ObjectModelReference:   map[string]any{Key_ModelName: "shop", Key_ModelModule: "shop-module"},
	}, doc.values[Key_Parent])

	t.Run("must be ok to clear pending parent by SetParent", func(t *testing.T) {
		restored := NewObjectDescriptor("")
		require.NoError(restored.DeserializeSelf(doc))
		_, ok := restored.ParentReference()
		require.True(ok)

		require.NoError(restored.SetParent(nil))
		_, ok = restored.ParentReference()
		require.False(ok)
	})
}

func TestObjectDescriptor_SerializeGroupsOrder(t *testing.T) {
	require := require.New(t)

	d := NewObjectDescriptor("Person")
	name := d.AddToOnePropertyDescriptorNamed("name")
	age := d.AddToOnePropertyDescriptorNamed("age")
	d.AddPropertyDescriptorToGroupNamed(name, "zeta")
	d.AddPropertyDescriptorToGroupNamed(age, "alpha")
	d.AddPropertyDescriptorToGroupNamed(age, "middle")

	doc := newTestDocument()
	d.SerializeSelf(doc)
	require.Equal([]any{"zeta", "alpha", "middle"}, doc.values[Key_PropertyDescriptorsOrder])

	t.Run("must be ok to keep groups order", func(t *testing.T) {
		restored := NewObjectDescriptor("")
		require.NoError(restored.DeserializeSelf(doc))
		require.Equal([]string{"zeta", "alpha", "middle"}, restored.PropertyDescriptorGroups())
	})

	t.Run("must be ok to sort groups missed in order", func(t *testing.T) {
		doc.values[Key_PropertyDescriptorsOrder] = []any{"middle", "unknown"}
		restored := NewObjectDescriptor("")
		require.NoError(restored.DeserializeSelf(doc))
		require.Equal([]string{"middle", "alpha", "zeta"}, restored.PropertyDescriptorGroups())
	})

	t.Run("should be error if order is broken", func(t *testing.T) {
		doc.values[Key_PropertyDescriptorsOrder] = "zeta"
		require.ErrorIs(NewObjectDescriptor("").DeserializeSelf(doc), ErrInvalidError)
	})
}
