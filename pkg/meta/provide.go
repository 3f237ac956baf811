/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package meta

import (
	"sync"

	"github.com/voedger/objmeta/pkg/namedset"
)

var (
	group     *ModelGroup
	groupOnce sync.Once
)

// Returns process-wide model group. Created on first call.
func Group() *ModelGroup {
	groupOnce.Do(func() {
		group = NewModelGroup()
	})
	return group
}

// Creates new empty model group.
//
// Process-wide group should be used by applications, separated groups are useful for tools and tests.
func NewModelGroup() *ModelGroup {
	return &ModelGroup{
		models: namedset.New[*Model](),
	}
}

// Creates new model. Model is not added to any group.
func NewModel(name, moduleID string, opts ...ModelOption) *Model {
	m := &Model{
		name:        name,
		moduleID:    moduleID,
		descriptors: namedset.New[*ObjectDescriptor](),
	}
	for _, o := range opts {
		o(m)
	}
	return m
}
