/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package meta

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type testEntity struct {
	ID int `json:"id"`
}

type testPerson struct {
	testEntity
	Name     string `json:"name,omitempty"`
	Tags     []string
	Born     time.Time
	Avatar   []byte
	Manager  *testPerson
	Internal int `json:"-"`
	secret   string
}

type testLoop struct {
	*testLoop
	Value float64
}

func TestModel_ObjectDescriptorForValue(t *testing.T) {
	require := require.New(t)

	m := NewModel("m", "")

	d := m.ObjectDescriptorForValue(&testPerson{secret: "x"})
	require.Equal("testPerson", d.Name())
	require.Same(d, m.ObjectDescriptorForName("testPerson"))
	require.Same(d, m.ObjectDescriptorForValue(testPerson{}))

	t.Run("must be ok to synthesize properties from fields", func(t *testing.T) {
		names := []string{}
		for _, p := range d.OwnPropertyDescriptors() {
			names = append(names, p.Name())
		}
		require.Equal([]string{"name", "Tags", "Born", "Avatar", "Manager"}, names)

		require.Equal(ValueType_String, d.PropertyDescriptorForName("name").ValueType())
		tags := d.PropertyDescriptorForName("Tags")
		require.True(tags.IsToMany())
		require.Equal(ValueType_String, tags.ValueType())
		require.Equal(ValueType_Date, d.PropertyDescriptorForName("Born").ValueType())
		require.Equal(ValueType_String, d.PropertyDescriptorForName("Avatar").ValueType())
		require.False(d.PropertyDescriptorForName("Avatar").IsToMany())
		require.Equal(ValueType_Object, d.PropertyDescriptorForName("Manager").ValueType())

		require.Len(d.PropertyDescriptorGroupForName("testPerson"), 5)
	})

	t.Run("must be ok to synthesize parent from embedded struct", func(t *testing.T) {
		parent := d.Parent()
		require.NotNil(parent)
		require.Equal("testEntity", parent.Name())
		require.Same(parent, m.ObjectDescriptorForName("testEntity"))
		require.Equal(ValueType_Number, d.PropertyDescriptorForName("id").ValueType())
	})

	t.Run("must be ok to stop on recursive embedding", func(t *testing.T) {
		l := m.ObjectDescriptorForValue(testLoop{})
		require.Nil(l.Parent())
		require.Equal(ValueType_Number, l.PropertyDescriptorForName("Value").ValueType())
	})

	t.Run("must be ok to return default descriptor", func(t *testing.T) {
		def := m.DefaultObjectDescriptor()
		require.Same(def, m.ObjectDescriptorForValue(nil))
		require.Same(def, m.ObjectDescriptorForValue(42))
		require.Same(def, m.ObjectDescriptorForValue(struct{ A int }{}))
		require.Same(def, m.ObjectDescriptorForValue(time.Now()))
	})

	t.Run("must be ok to reuse registered descriptor", func(t *testing.T) {
		custom := m.NewObjectDescriptor("testEntity")
		require.Same(custom, m.ObjectDescriptorForValue(testEntity{}))
	})
}
