/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package meta

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGroup(t *testing.T) {
	require := require.New(t)
	require.Same(Group(), Group())
	require.NotSame(Group(), NewModelGroup())
}

func TestModelGroup_Models(t *testing.T) {
	require := require.New(t)

	g := NewModelGroup()
	a, b := NewModel("a", "mod-a"), NewModel("b", "mod-b")

	t.Run("must be ok to add models", func(t *testing.T) {
		g.AddModel(a)
		g.AddModel(b)
		g.AddModel(nil)
		require.Equal([]*Model{a, b}, g.Models())
		require.Same(a, g.ModelForName("a"))
		require.Same(g, a.Group())
		require.Nil(g.ModelForName("unknown"))
	})

	t.Run("must be ok to replace model with the same name", func(t *testing.T) {
		a2 := NewModel("a", "mod-a2")
		g.AddModel(a2)
		require.Same(a2, g.ModelForName("a"))
		require.Nil(a.Group())
		require.Equal([]*Model{b, a2}, g.Models())

		g.RemoveModel(a)
		require.Same(a2, g.ModelForName("a"), "removing replaced model should not affect its successor")
		a = a2
	})

	t.Run("must be ok to remove models", func(t *testing.T) {
		g.RemoveModel(b)
		g.RemoveModel(b)
		g.RemoveModel(nil)
		require.Nil(g.ModelForName("b"))
		require.Nil(b.Group())
		require.Equal([]*Model{a}, g.Models())
	})

	t.Run("must be ok to move model between groups", func(t *testing.T) {
		other := NewModelGroup()
		other.AddModel(a)
		require.Same(other, a.Group())
		require.Nil(g.ModelForName("a"))
		require.Same(a, other.ModelForName("a"))
	})
}

func TestModelGroup_DefaultModel(t *testing.T) {
	require := require.New(t)

	g := NewModelGroup()
	m := g.DefaultModel()
	require.Same(m, g.DefaultModel())
	require.Same(m, g.DefaultModel())
	require.True(m.IsDefault())
	require.Equal(DefaultModelName, m.Name())

	cnt := 0
	for _, model := range g.Models() {
		if model.Name() == DefaultModelName {
			cnt++
		}
	}
	require.Equal(1, cnt)
	require.Same(m, g.ModelForName(DefaultModelName))

	require.Same(g.DefaultObjectDescriptorObjectProperty(), g.DefaultObjectDescriptorObjectProperty())
	require.Equal(ValueType_Object, g.DefaultObjectDescriptorObjectProperty().DefaultPropertyDescriptor().ValueType())
}

func TestModelGroup_ObjectDescriptorForType(t *testing.T) {
	require := require.New(t)

	g := NewModelGroup()
	m1, m2 := NewModel("m1", ""), NewModel("m2", "")
	g.AddModel(m1)
	g.AddModel(m2)

	w2 := m2.NewObjectDescriptor("Widget")
	require.Same(w2, g.ObjectDescriptorForType("Widget"))

	w1 := m1.NewObjectDescriptor("Widget")
	require.Same(w1, g.ObjectDescriptorForType("Widget"), "first model in insertion order wins")

	require.Nil(g.ObjectDescriptorForType("unknown"))

	t.Run("must be ok to use legacy names", func(t *testing.T) {
		require.Same(w1, g.BlueprintForPrototype("Widget"))
		require.Same(m1, g.BinderForName("m1"))
		require.Same(g.DefaultModel(), g.DefaultBinder())

		b := NewModel("binder", "")
		g.AddBinder(b)
		require.Same(b, g.ModelForName("binder"))
		g.RemoveBinder(b)
		require.Nil(g.ModelForName("binder"))
	})
}

func TestModelGroup_ModuleLoader(t *testing.T) {
	require := require.New(t)

	g := NewModelGroup()
	groupLoader := ModuleLoaderFunc(func(context.Context, string) (Exports, error) { return Exports{"from": "group"}, nil })
	modelLoader := ModuleLoaderFunc(func(context.Context, string) (Exports, error) { return Exports{"from": "model"}, nil })

	m := NewModel("m", "")
	require.Nil(m.ModuleLoader())

	g.SetModuleLoader(groupLoader)
	g.AddModel(m)

	e, err := m.ModuleLoader().LoadModule(context.Background(), "x")
	require.NoError(err)
	require.Equal("group", e["from"])

	m.SetModuleLoader(modelLoader)
	e, err = m.ModuleLoader().LoadModule(context.Background(), "x")
	require.NoError(err)
	require.Equal("model", e["from"])

	m2 := NewModel("m2", "", WithModuleLoader(modelLoader))
	e, err = m2.ModuleLoader().LoadModule(context.Background(), "x")
	require.NoError(err)
	require.Equal("model", e["from"])
}

func TestModel_ObjectDescriptors(t *testing.T) {
	require := require.New(t)

	m := NewModel("m", "mod")
	a := m.NewObjectDescriptor("a")
	b := m.AddObjectDescriptor(NewObjectDescriptor("b"))
	require.Nil(m.AddObjectDescriptor(nil))

	require.Equal([]*ObjectDescriptor{a, b}, m.ObjectDescriptors())
	require.Same(m, a.Model())
	require.Same(b, m.ObjectDescriptorForName("b"))

	t.Run("must be ok to replace descriptor with the same name", func(t *testing.T) {
		a2 := m.NewObjectDescriptor("a")
		require.Same(a2, m.ObjectDescriptorForName("a"))
		require.Nil(a.ownerModel())
	})

	t.Run("must be ok to move descriptor between models", func(t *testing.T) {
		other := NewModel("other", "")
		b.SetModel(other)
		require.Same(other, b.Model())
		require.Nil(m.ObjectDescriptorForName("b"))
		require.Same(b, other.ObjectDescriptorForName("b"))

		b.SetModel(nil)
		require.Nil(other.ObjectDescriptorForName("b"))
		require.Nil(b.ownerModel())
	})

	t.Run("must be ok to get default descriptor", func(t *testing.T) {
		d := m.DefaultObjectDescriptor()
		require.Same(d, m.DefaultObjectDescriptor())
		require.Equal(DefaultObjectDescriptorName, d.Name())
		require.Same(m, d.Model())
		require.Nil(m.ObjectDescriptorForName(DefaultObjectDescriptorName))
		require.Same(m.ObjectProperty(), m.ObjectProperty())

		t.Run("must be ok to detach default descriptor", func(t *testing.T) {
			m := NewModel("detached", "")
			d := m.DefaultObjectDescriptor()
			d.SetModel(nil)
			require.Nil(d.ownerModel())
			require.Same(d, m.DefaultObjectDescriptor())

			other := NewModel("other", "")
			m2 := NewModel("moved", "")
			d2 := m2.DefaultObjectDescriptor()
			d2.SetModel(other)
			require.Same(other, d2.ownerModel())
			require.Same(d2, other.ObjectDescriptorForName(DefaultObjectDescriptorName))
		})
	})

	t.Run("must be ok to assign default model lazily", func(t *testing.T) {
		d := NewObjectDescriptor("lazy")
		require.Same(Group().DefaultModel(), d.Model())
		require.Same(d, Group().DefaultModel().ObjectDescriptorForName("lazy"))
		Group().DefaultModel().RemoveObjectDescriptor(d)
	})
}
