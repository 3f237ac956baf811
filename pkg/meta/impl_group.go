/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package meta

import (
	"sync"

	"github.com/untillpro/goutils/logger"

	"github.com/voedger/objmeta/pkg/namedset"
)

// # Model group
//
// Registry of models. Model names are unique within the group.
// Process-wide group is returned by Group().
type ModelGroup struct {
	mu     sync.RWMutex
	loader IModuleLoader

	models *namedset.Set[*Model]

	defaultModelOnce sync.Once
	defaultModel     *Model

	objectPropertyOnce sync.Once
	objectProperty     *ObjectProperty
}

// Returns module loader used by models without own loader.
func (g *ModelGroup) ModuleLoader() IModuleLoader {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.loader
}

func (g *ModelGroup) SetModuleLoader(l IModuleLoader) {
	g.mu.Lock()
	g.loader = l
	g.mu.Unlock()
}

// Returns models in insertion order.
func (g *ModelGroup) Models() []*Model {
	return g.models.Items()
}

// Adds model to group.
//
// Model with the same name is removed first, re-added model is moved to the end.
// Model is moved from its previous group. Nil model is ignored.
func (g *ModelGroup) AddModel(m *Model) {
	if m == nil {
		return
	}
	if prev := m.Group(); prev != nil && prev != g {
		prev.RemoveModel(m)
	}
	if replaced, ok := g.models.Add(m); ok {
		if replaced.Group() == g {
			replaced.setGroup(nil)
		}
		if logger.IsVerbose() {
			logger.Verbose("model", m.Name(), "replaced in group")
		}
	}
	m.setGroup(g)
}

// Removes model by identity. Unknown and nil models are ignored.
func (g *ModelGroup) RemoveModel(m *Model) {
	if m == nil {
		return
	}
	if g.models.Remove(m) && m.Group() == g {
		m.setGroup(nil)
	}
}

// Returns model by name or nil.
func (g *ModelGroup) ModelForName(name string) *Model {
	m, _ := g.models.ByName(name)
	return m
}

// Returns object descriptor for type name from the first model, which has it.
//
// Models are searched in insertion order. Descriptors with the same name in later models
// are not reachable by this method.
func (g *ModelGroup) ObjectDescriptorForType(typeName string) *ObjectDescriptor {
	var d *ObjectDescriptor
	g.models.Find(func(m *Model) bool {
		d = m.ObjectDescriptorForName(typeName)
		return d != nil
	})
	return d
}

// Returns default model. Model is created and added to group on first call.
func (g *ModelGroup) DefaultModel() *Model {
	g.defaultModelOnce.Do(func() {
		m := NewModel(DefaultModelName, "")
		m.isDefault = true
		g.defaultModel = m
		g.AddModel(m)
		if logger.IsVerbose() {
			logger.Verbose("default model created")
		}
	})
	return g.defaultModel
}

// Returns the last resort property metadata applier. Created on first call.
func (g *ModelGroup) DefaultObjectDescriptorObjectProperty() *ObjectProperty {
	g.objectPropertyOnce.Do(func() {
		g.objectProperty = newObjectProperty()
	})
	return g.objectProperty
}

// # Binder (legacy names)

// Deprecated: use AddModel
func (g *ModelGroup) AddBinder(m *Model) { g.AddModel(m) }

// Deprecated: use RemoveModel
func (g *ModelGroup) RemoveBinder(m *Model) { g.RemoveModel(m) }

// Deprecated: use ModelForName
func (g *ModelGroup) BinderForName(name string) *Model { return g.ModelForName(name) }

// Deprecated: use DefaultModel
func (g *ModelGroup) DefaultBinder() *Model { return g.DefaultModel() }

// Deprecated: use ObjectDescriptorForType
func (g *ModelGroup) BlueprintForPrototype(prototypeName string) *ObjectDescriptor {
	return g.ObjectDescriptorForType(prototypeName)
}
