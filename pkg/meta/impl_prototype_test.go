/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package meta

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestObjectDescriptor_NewInstance(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	m := NewModel("m", "")
	entity := m.NewObjectDescriptor("Entity")
	entity.AddToOnePropertyDescriptorNamed("id").SetValueType(ValueType_Number)

	person := m.NewObjectDescriptor("Person")
	require.NoError(person.SetParent(entity))
	name := person.AddToOnePropertyDescriptorNamed("name")
	name.SetDefaultValue("anonymous")
	person.AddToManyPropertyDescriptorNamed("tags")
	title := NewDerivedPropertyDescriptor("title", Cardinality_ToOne)
	title.SetDependencies("name")
	require.NoError(title.SetGetter(`"Dear " + name`))
	person.AddPropertyDescriptor(title)

	p, err := person.NewInstancePrototype(ctx)
	require.NoError(err)
	require.Same(person, p.Descriptor())
	require.Equal("Person", p.Name())
	require.Same(entity, p.Parent().Descriptor())
	require.True(p.DescendsFrom(BasePrototype))
	require.Equal([]string{"id", "name", "tags", "title"}, p.PropertyNames())
	require.False(person.CustomPrototype())

	i := p.New()

	t.Run("must be ok to get default values", func(t *testing.T) {
		require.Nil(i.Get("id"))
		require.Equal("anonymous", i.Get("name"))
		require.Equal([]any{}, i.Get("tags"))
		require.Equal("Dear anonymous", i.Get("title"))
		require.Same(person, i.Descriptor())
	})

	t.Run("must be ok to set values", func(t *testing.T) {
		require.NoError(i.Set("name", "Alice"))
		require.Equal("Dear Alice", i.Get("title"))
		require.NoError(i.Set("adHoc", 1))
		require.Equal(1, i.Get("adHoc"))
		require.Equal(ValueType_Object, i.PropertyDescriptor("adHoc").ValueType())
		require.Equal(map[string]any{"id": nil, "name": "Alice", "tags": []any{}, "title": "Dear Alice", "adHoc": 1}, i.Values())
	})

	t.Run("should be error to set read only property", func(t *testing.T) {
		require.ErrorIs(i.Set("title", "x"), ErrReadOnly)
		name.SetReadOnly(true)
		defer name.SetReadOnly(false)
		require.ErrorIs(i.Set("name", "x"), ErrReadOnly)
	})

	t.Run("must be ok to create new instance from descriptor", func(t *testing.T) {
		inst, err := person.NewInstance(ctx)
		require.NoError(err)
		require.Equal("anonymous", inst.Get("name"))
		require.Empty(person.EvaluateRules(inst))
	})

	t.Run("must be ok to validate instance", func(t *testing.T) {
		require.NoError(person.AddPropertyValidationRule("anonymous").SetExpression(`name == "anonymous"`))
		defer person.RemovePropertyValidationRule("anonymous")
		inst, err := person.NewInstance(ctx)
		require.NoError(err)
		require.Equal([]string{"anonymous"}, person.EvaluateRules(inst))
	})
}

func TestObjectDescriptor_CustomPrototype(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	exports := Exports{}
	loads := 0
	loader := ModuleLoaderFunc(func(_ context.Context, moduleID string) (Exports, error) {
		loads++
		if moduleID != "widgets" {
			return nil, errors.New("unknown module " + moduleID)
		}
		return exports, nil
	})

	m := NewModel("m", "", WithModuleLoader(loader))
	base := m.NewObjectDescriptor("Base")
	base.AddToOnePropertyDescriptorNamed("id")
	widget := m.NewObjectDescriptor("Widget")
	widget.SetObjectDescriptorModule("widgets")
	require.NoError(widget.SetParent(base))
	widget.AddToOnePropertyDescriptorNamed("size").SetDefaultValue(1)

	initialized := 0
	proto, err := widget.Create(ctx, nil, WithInitializer(func(i *Instance) {
		initialized++
		_ = i.Set("size", 2)
	}))
	require.NoError(err)
	require.True(widget.CustomPrototype())
	exports["Widget"] = proto

	t.Run("must be ok to load custom prototype", func(t *testing.T) {
		p, err := widget.NewInstancePrototype(ctx)
		require.NoError(err)
		require.Same(proto, p)
		require.Equal(1, loads)

		i, err := widget.NewInstance(ctx)
		require.NoError(err)
		require.Equal(2, i.Get("size"))
		require.Nil(i.Get("id"))
		require.Equal(1, initialized)
	})

	t.Run("should be error if export is missed", func(t *testing.T) {
		widget.SetPrototype("widgets", "Missed")
		defer widget.SetPrototype("", "")
		_, err := widget.NewInstancePrototype(ctx)
		require.ErrorIs(err, ErrExportNotFound)
	})

	t.Run("should be error if export is not prototype", func(t *testing.T) {
		exports["Wrong"] = "string"
		widget.SetPrototype("widgets", "Wrong")
		defer widget.SetPrototype("", "")
		_, err := widget.NewInstancePrototype(ctx)
		require.ErrorIs(err, ErrUnexpectedExport)
	})

	t.Run("should be error if prototype does not descend from base prototype", func(t *testing.T) {
		exports["Alien"] = &Prototype{name: "Alien", properties: map[string]IPropertyDescriptor{}}
		widget.SetPrototype("widgets", "Alien")
		defer widget.SetPrototype("", "")
		_, err := widget.NewInstancePrototype(ctx)
		require.ErrorIs(err, ErrPrototypeMismatch)
	})

	t.Run("should be error if prototype does not descend from parent prototype", func(t *testing.T) {
		exports["Plain"] = BasePrototype.Specialize(WithPrototypeName("Plain"))
		widget.SetPrototype("widgets", "Plain")
		defer widget.SetPrototype("", "")
		_, err := widget.NewInstancePrototype(ctx)
		require.ErrorIs(err, ErrPrototypeMismatch)
	})

	t.Run("should be error if module loading failed", func(t *testing.T) {
		widget.SetPrototype("gadgets", "Widget")
		defer widget.SetPrototype("", "")
		_, err := widget.NewInstancePrototype(ctx)
		require.ErrorContains(err, "unknown module gadgets")
	})

	t.Run("should be error if there is no loader", func(t *testing.T) {
		d := NewModel("orphan", "").NewObjectDescriptor("Orphan")
		d.SetObjectDescriptorModule("orphans")
		d.SetCustomPrototype(true)
		_, err := d.NewInstancePrototype(ctx)
		require.ErrorIs(err, ErrNoModuleLoader)

		d.SetObjectDescriptorModule("")
		_, err = d.NewInstancePrototype(ctx)
		require.ErrorIs(err, ErrInvalidError)
	})
}

func TestObjectDescriptor_CreateWithBase(t *testing.T) {
	require := require.New(t)

	d := NewModel("m", "").NewObjectDescriptor("Thing")
	d.AddToOnePropertyDescriptorNamed("label")

	base := BasePrototype.Specialize(WithPrototypeName("Framework"))
	p, err := d.Create(context.Background(), base, WithPrototypeName("MyThing"))
	require.NoError(err)
	require.Equal("MyThing", p.Name())
	require.Same(base, p.Parent())
	require.Same(d, p.Descriptor())
	require.NotNil(p.PropertyDescriptor("label"))
	require.Nil(base.PropertyDescriptor("label"))
}
