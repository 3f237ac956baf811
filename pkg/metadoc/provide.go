/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package metadoc

import (
	"maps"

	"github.com/voedger/objmeta/pkg/meta"
)

// Creates new empty document
func New() *Document {
	return &Document{
		values: make(map[string]any),
		hints:  make(map[string]string),
	}
}

// Creates document over copy of values
func FromMap(values map[string]any) *Document {
	d := New()
	maps.Copy(d.values, values)
	return d
}

// Parses document in specified format
func Parse(data []byte, f Format) (*Document, error) {
	values, err := decode(data, f)
	if err != nil {
		return nil, err
	}
	d := New()
	d.values = values
	return d, nil
}

// Parses document, format is detected by file name extension
func ParseFile(name string, data []byte) (*Document, error) {
	f, err := FormatByName(name)
	if err != nil {
		return nil, err
	}
	return Parse(data, f)
}

// Serializes object descriptor into new document
func FromObjectDescriptor(d *meta.ObjectDescriptor) *Document {
	doc := New()
	d.SerializeSelf(doc)
	return doc
}

// Serializes model into new document
func FromModel(m *meta.Model) *Document {
	doc := New()
	m.SerializeSelf(doc)
	return doc
}
