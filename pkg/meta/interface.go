/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package meta

import "context"

// Named exports of the module
type Exports map[string]any

// Module loading capability.
//
// Fetches module exports by module identifier. May block until module is loaded,
// ctx cancellation should be honoured.
type IModuleLoader interface {
	LoadModule(ctx context.Context, moduleID string) (Exports, error)
}

// Function adapter for IModuleLoader
type ModuleLoaderFunc func(ctx context.Context, moduleID string) (Exports, error)

func (f ModuleLoaderFunc) LoadModule(ctx context.Context, moduleID string) (Exports, error) {
	return f(ctx, moduleID)
}

// Structured document to write into.
//
// Values are plain data: strings, booleans, numbers, []any and map[string]any.
type IDocumentWriter interface {
	SetProperty(key string, value any, hint ...string)
}

// Structured document to read from.
type IDocumentReader interface {
	GetProperty(key string) (value any, ok bool)
}

// # Property descriptor
//
// Common interface of simple properties, associations and derived properties.
type IPropertyDescriptor interface {
	Name() string

	// Object descriptor which owns property, nil if property is detached
	Owner() *ObjectDescriptor

	Kind() PropertyKind

	Cardinality() Cardinality

	// Returns true if cardinality is not to-one
	IsToMany() bool

	ValueType() ValueType

	Mandatory() bool

	ReadOnly() bool

	DefaultValue() any

	// Returns plain data representation to serialize property
	serialize() map[string]any

	base() *propertyDescriptor
}
