/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package meta

import (
	"reflect"
	"strings"
	"time"
)

var timeType = reflect.TypeOf(time.Time{})

// Returns object descriptor for Go value.
//
// Descriptor registered in the model for the struct type name is returned if exists.
// Otherwise descriptor is synthesized from exported struct fields and added to the model:
//   - slice and array fields become to-many properties, other fields to-one,
//   - `json` tag names are respected, fields tagged "-" are skipped,
//   - all properties are grouped under the type name,
//   - embedded struct becomes the parent descriptor.
//
// Nil, unnamed and not struct values yield the default object descriptor of the model.
func (m *Model) ObjectDescriptorForValue(v any) *ObjectDescriptor {
	if v == nil {
		return m.DefaultObjectDescriptor()
	}
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct || t.Name() == "" || t == timeType {
		return m.DefaultObjectDescriptor()
	}
	return m.objectDescriptorForType(t)
}

func (m *Model) objectDescriptorForType(t reflect.Type) *ObjectDescriptor {
	if d := m.ObjectDescriptorForName(t.Name()); d != nil {
		return d
	}

	d := m.NewObjectDescriptor(t.Name())
	d.SetObjectDescriptorModule(t.PkgPath())
	d.AddPropertyDescriptorGroupNamed(t.Name())

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		ft := f.Type
		for ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}
		if f.Anonymous && ft.Kind() == reflect.Struct && ft.Name() != "" && ft != timeType {
			if d.Parent() == nil {
				// recursive embedding is reported as cycle and ignored
				_ = d.SetParent(m.objectDescriptorForType(ft))
			}
			continue
		}
		if !f.IsExported() {
			continue
		}
		name, ok := fieldPropertyName(f)
		if !ok {
			continue
		}

		var p *PropertyDescriptor
		switch {
		case (ft.Kind() == reflect.Slice || ft.Kind() == reflect.Array) && ft.Elem().Kind() != reflect.Uint8:
			p = NewPropertyDescriptor(name, Cardinality_ToMany)
			p.SetValueType(valueTypeOf(ft.Elem()))
		default:
			p = NewPropertyDescriptor(name, Cardinality_ToOne)
			p.SetValueType(valueTypeOf(ft))
		}
		d.AddPropertyDescriptor(p)
		d.AddPropertyDescriptorToGroupNamed(p, t.Name())
	}
	return d
}

func fieldPropertyName(f reflect.StructField) (string, bool) {
	tag, ok := f.Tag.Lookup("json")
	if !ok {
		return f.Name, true
	}
	name, _, _ := strings.Cut(tag, ",")
	switch name {
	case "-":
		return "", false
	case "":
		return f.Name, true
	}
	return name, true
}

func valueTypeOf(t reflect.Type) ValueType {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == timeType {
		return ValueType_Date
	}
	switch t.Kind() {
	case reflect.String:
		return ValueType_String
	case reflect.Bool:
		return ValueType_Boolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return ValueType_Number
	case reflect.Slice, reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 {
			return ValueType_String
		}
		return ValueType_List
	}
	return ValueType_Object
}
