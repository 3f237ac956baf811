/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package meta

import (
	"sync"

	"github.com/untillpro/goutils/logger"

	"github.com/voedger/objmeta/pkg/namedset"
)

// # Model
//
// Named collection of object descriptors. Descriptor names are unique within the model.
type Model struct {
	mu sync.RWMutex

	name      string
	moduleID  string
	isDefault bool
	group     *ModelGroup
	loader    IModuleLoader

	descriptors *namedset.Set[*ObjectDescriptor]

	defaultDescriptorOnce sync.Once
	defaultDescriptor     *ObjectDescriptor

	objectPropertyOnce sync.Once
	objectProperty     *ObjectProperty
}

// Model option
type ModelOption func(*Model)

// Sets module loader for the model. Model without loader uses the loader of its group.
func WithModuleLoader(l IModuleLoader) ModelOption {
	return func(m *Model) { m.loader = l }
}

func (m *Model) Name() string { return m.name }

// Identifier of the module the model can be loaded from
func (m *Model) ModuleID() string { return m.moduleID }

// Returns true for the default model of the group
func (m *Model) IsDefault() bool { return m.isDefault }

// Returns group, which model is registered into, or nil.
func (m *Model) Group() *ModelGroup {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.group
}

func (m *Model) setGroup(g *ModelGroup) {
	m.mu.Lock()
	m.group = g
	m.mu.Unlock()
}

// Returns model module loader, or the loader of the group if model has no own one.
func (m *Model) ModuleLoader() IModuleLoader {
	m.mu.RLock()
	l, g := m.loader, m.group
	m.mu.RUnlock()

	if l == nil && g != nil {
		return g.ModuleLoader()
	}
	return l
}

// Returns loader set for the model itself, nil if model uses the loader of its group.
func (m *Model) OwnModuleLoader() IModuleLoader {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loader
}

func (m *Model) SetModuleLoader(l IModuleLoader) {
	m.mu.Lock()
	m.loader = l
	m.mu.Unlock()
}

// Adds object descriptor to model.
//
// Descriptor with the same name is removed first. Descriptor is moved from its previous model.
// Nil descriptor is ignored.
func (m *Model) AddObjectDescriptor(d *ObjectDescriptor) *ObjectDescriptor {
	if d == nil {
		return nil
	}
	if prev := d.ownerModel(); prev != nil && prev != m {
		prev.RemoveObjectDescriptor(d)
	}
	if replaced, ok := m.descriptors.Add(d); ok {
		if replaced.ownerModel() == m {
			replaced.setOwnerModel(nil)
		}
		if logger.IsVerbose() {
			logger.Verbose("object descriptor", d.Name(), "replaced in model", m.name)
		}
	}
	d.setOwnerModel(m)
	return d
}

// Removes object descriptor by identity. Unknown and nil descriptors are ignored.
func (m *Model) RemoveObjectDescriptor(d *ObjectDescriptor) *ObjectDescriptor {
	if d == nil {
		return nil
	}
	removed := m.descriptors.Remove(d) || d == m.defaultObjectDescriptor()
	if removed && d.ownerModel() == m {
		d.setOwnerModel(nil)
	}
	return d
}

// Returns object descriptor by name or nil.
func (m *Model) ObjectDescriptorForName(name string) *ObjectDescriptor {
	d, _ := m.descriptors.ByName(name)
	return d
}

// Returns object descriptors in insertion order.
func (m *Model) ObjectDescriptors() []*ObjectDescriptor {
	return m.descriptors.Items()
}

// Creates new object descriptor and adds it to model.
func (m *Model) NewObjectDescriptor(name string) *ObjectDescriptor {
	return m.AddObjectDescriptor(NewObjectDescriptor(name))
}

// Returns default object descriptor of the model. Created on first call.
//
// Default descriptor is owned by the model, but is not listed in the model descriptors,
// so it never hides a descriptor named "default". RemoveObjectDescriptor and
// ObjectDescriptor.SetModel detach it as any other descriptor.
func (m *Model) DefaultObjectDescriptor() *ObjectDescriptor {
	m.defaultDescriptorOnce.Do(func() {
		d := NewObjectDescriptor(DefaultObjectDescriptorName)
		d.setOwnerModel(m)
		m.mu.Lock()
		m.defaultDescriptor = d
		m.mu.Unlock()
	})
	return m.defaultObjectDescriptor()
}

// Returns default descriptor if it is created
func (m *Model) defaultObjectDescriptor() *ObjectDescriptor {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaultDescriptor
}

// Returns property metadata applier of the model. Created on first call.
func (m *Model) ObjectProperty() *ObjectProperty {
	m.objectPropertyOnce.Do(func() {
		m.objectProperty = newObjectProperty()
	})
	return m.objectProperty
}
