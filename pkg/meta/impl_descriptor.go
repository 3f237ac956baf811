/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package meta

import (
	"slices"
	"sync"

	"github.com/untillpro/goutils/logger"
)

// Cached lookup result: either found value or not found mark.
type lookup[T any] struct {
	value T
	found bool
}

func foundLookup[T any](v T) lookup[T] { return lookup[T]{value: v, found: true} }

func notFoundLookup[T any]() lookup[T] { return lookup[T]{} }

// # Object descriptor
//
// Describes properties, events, property groups and validation rules of an object type.
// Descriptor may inherit other descriptor (parent). Lookups fall through to parent
// if local collection has no entry for the name.
type ObjectDescriptor struct {
	mu sync.Mutex

	name            string
	customPrototype bool
	moduleID        string
	prototypeName   string
	prototypeModule string

	parent *ObjectDescriptor
	// deserialized parent, which is not resolved yet
	parentRef *ObjectDescriptorReference

	model    *Model
	modelRef *ModelReference

	properties      []IPropertyDescriptor
	propertiesCache map[string]lookup[IPropertyDescriptor]

	events      []*EventDescriptor
	eventsCache map[string]lookup[*EventDescriptor]

	groupNames    []string
	groups        map[string][]IPropertyDescriptor
	pendingGroups map[string][]string

	ruleNames []string
	rules     map[string]*PropertyValidationRule

	// count of linear scans of local collections, used by tests
	scans int
}

// Creates new object descriptor. Empty name is replaced by default name.
func NewObjectDescriptor(name string) *ObjectDescriptor {
	if name == "" {
		name = DefaultObjectDescriptorName
	}
	return &ObjectDescriptor{
		name:            name,
		customPrototype: DefaultCustomPrototype,
		propertiesCache: make(map[string]lookup[IPropertyDescriptor]),
		eventsCache:     make(map[string]lookup[*EventDescriptor]),
		groups:          make(map[string][]IPropertyDescriptor),
		rules:           make(map[string]*PropertyValidationRule),
	}
}

func (d *ObjectDescriptor) Name() string { return d.name }

// Humane identifier used as serialization label
func (d *ObjectDescriptor) Identifier() string {
	return "objectDescriptor_" + nameOrUnnamed(d.name)
}

func (d *ObjectDescriptor) CustomPrototype() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.customPrototype
}

func (d *ObjectDescriptor) SetCustomPrototype(custom bool) {
	d.mu.Lock()
	d.customPrototype = custom
	d.mu.Unlock()
}

// Identifier of the module the descriptor can be loaded from
func (d *ObjectDescriptor) ObjectDescriptorModule() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.moduleID
}

func (d *ObjectDescriptor) SetObjectDescriptorModule(moduleID string) {
	d.mu.Lock()
	d.moduleID = moduleID
	d.mu.Unlock()
}

// Name of the export with custom prototype. Descriptor name by default.
func (d *ObjectDescriptor) PrototypeName() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.prototypeName == "" {
		return d.name
	}
	return d.prototypeName
}

// Identifier of the module with custom prototype. Descriptor module by default.
func (d *ObjectDescriptor) PrototypeModule() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.prototypeModule == "" {
		return d.moduleID
	}
	return d.prototypeModule
}

// Sets module and export name of the custom prototype
func (d *ObjectDescriptor) SetPrototype(moduleID, exportName string) {
	d.mu.Lock()
	d.prototypeModule, d.prototypeName = moduleID, exportName
	d.mu.Unlock()
}

// # Parent

func (d *ObjectDescriptor) Parent() *ObjectDescriptor {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.parent
}

// Returns reference to parent. Reference exists for resolved parent and for
// parent, which is deserialized but not resolved yet.
//
// Reference to resolved parent is built from the parent current state.
func (d *ObjectDescriptor) ParentReference() (ObjectDescriptorReference, bool) {
	d.mu.Lock()
	parent, pending := d.parent, d.parentRef
	d.mu.Unlock()

	if parent != nil {
		return ReferenceFromValue(parent), true
	}
	if pending == nil {
		return ObjectDescriptorReference{}, false
	}
	return *pending, true
}

// Sets parent descriptor. Nil parent clears inheritance and pending parent reference.
//
// Returns ErrParentCycle if parent is the descriptor itself or inherits it.
func (d *ObjectDescriptor) SetParent(parent *ObjectDescriptor) error {
	if parent != nil {
		for p := parent; p != nil; p = p.Parent() {
			if p == d {
				return ErrParentCycleDetected(d.name, parent.name)
			}
		}
	}

	d.mu.Lock()
	d.parent, d.parentRef = parent, nil
	d.mu.Unlock()

	if parent != nil {
		d.resolvePendingGroups()
	}
	return nil
}

// # Model

// Returns model which owns descriptor.
//
// If descriptor is not added to any model, then it is added to default model of process-wide group.
func (d *ObjectDescriptor) Model() *Model {
	if m := d.ownerModel(); m != nil {
		return m
	}
	Group().DefaultModel().AddObjectDescriptor(d)
	return d.ownerModel()
}

// Moves descriptor to specified model. Nil model detaches descriptor from current model.
func (d *ObjectDescriptor) SetModel(m *Model) {
	if m != nil {
		m.AddObjectDescriptor(d)
		return
	}
	if cur := d.ownerModel(); cur != nil {
		cur.RemoveObjectDescriptor(d)
	}
}

// Returns reference to not default model, which is deserialized but not resolved yet.
func (d *ObjectDescriptor) PendingModelReference() (ModelReference, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.modelRef == nil || d.model != nil {
		return ModelReference{}, false
	}
	return *d.modelRef, true
}

func (d *ObjectDescriptor) ownerModel() *Model {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.model
}

// Should be called by model only
func (d *ObjectDescriptor) setOwnerModel(m *Model) {
	d.mu.Lock()
	d.model = m
	if m != nil {
		d.modelRef = nil
	}
	d.mu.Unlock()
}

// Returns applier for property metadata.
func (d *ObjectDescriptor) objectProperty() *ObjectProperty {
	if m := d.ownerModel(); m != nil {
		return m.ObjectProperty()
	}
	return Group().DefaultObjectDescriptorObjectProperty()
}

// # Property descriptors

// Returns own property descriptors followed by inherited ones.
func (d *ObjectDescriptor) PropertyDescriptors() []IPropertyDescriptor {
	d.mu.Lock()
	res := slices.Clone(d.properties)
	parent := d.parent
	d.mu.Unlock()

	if parent != nil {
		res = append(res, parent.PropertyDescriptors()...)
	}
	return res
}

// Returns own property descriptors only.
func (d *ObjectDescriptor) OwnPropertyDescriptors() []IPropertyDescriptor {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.properties)
}

// Adds property descriptor.
//
// Property is detached from previous owner first. Own property with the same name is replaced.
// Nil and unnamed properties are ignored.
func (d *ObjectDescriptor) AddPropertyDescriptor(p IPropertyDescriptor) IPropertyDescriptor {
	if isNilProperty(p) || p.Name() == "" {
		return p
	}
	if owner := p.Owner(); owner != nil && owner != d {
		owner.RemovePropertyDescriptor(p)
	}

	d.mu.Lock()
	if slices.Contains(d.properties, p) {
		d.mu.Unlock()
		return p
	}
	var replaced IPropertyDescriptor
	if i := slices.IndexFunc(d.properties, func(o IPropertyDescriptor) bool { return o.Name() == p.Name() }); i >= 0 {
		replaced = d.properties[i]
		d.properties = slices.Delete(d.properties, i, i+1)
	}
	d.properties = append(d.properties, p)
	d.propertiesCache[p.Name()] = foundLookup(p)
	d.mu.Unlock()

	if replaced != nil {
		replaced.base().setOwner(nil)
		if logger.IsVerbose() {
			logger.Verbose("property", p.Name(), "of", d.name, "replaced")
		}
	}
	p.base().setOwner(d)
	return p
}

// Removes own property descriptor. Nil, unnamed and not own properties are ignored.
func (d *ObjectDescriptor) RemovePropertyDescriptor(p IPropertyDescriptor) IPropertyDescriptor {
	if isNilProperty(p) || p.Name() == "" {
		return p
	}

	d.mu.Lock()
	i := slices.Index(d.properties, p)
	if i < 0 {
		d.mu.Unlock()
		return p
	}
	d.properties = slices.Delete(d.properties, i, i+1)
	delete(d.propertiesCache, p.Name())
	d.mu.Unlock()

	p.base().setOwner(nil)
	return p
}

// Returns property descriptor by name, own or inherited. Returns nil if not found.
//
// Results of local scans, including misses, are cached per descriptor.
func (d *ObjectDescriptor) PropertyDescriptorForName(name string) IPropertyDescriptor {
	d.mu.Lock()
	res, cached := d.propertiesCache[name]
	if !cached {
		res = notFoundLookup[IPropertyDescriptor]()
		d.scans++
		for _, p := range d.properties {
			if p.Name() == name {
				res = foundLookup(p)
				break
			}
		}
		d.propertiesCache[name] = res
	}
	parent := d.parent
	d.mu.Unlock()

	if res.found {
		return res.value
	}
	if parent != nil {
		return parent.PropertyDescriptorForName(name)
	}
	return nil
}

// Creates new property descriptor. Descriptor is not added.
func (d *ObjectDescriptor) NewPropertyDescriptor(name string, cardinality Cardinality) *PropertyDescriptor {
	return NewPropertyDescriptor(name, cardinality)
}

// Creates new association descriptor. Descriptor is not added.
func (d *ObjectDescriptor) NewAssociationDescriptor(name string, cardinality Cardinality) *AssociationDescriptor {
	return NewAssociationDescriptor(name, cardinality)
}

// Creates new derived property descriptor. Descriptor is not added.
func (d *ObjectDescriptor) NewDerivedPropertyDescriptor(name string, cardinality Cardinality) *DerivedPropertyDescriptor {
	return NewDerivedPropertyDescriptor(name, cardinality)
}

func (d *ObjectDescriptor) AddToOnePropertyDescriptorNamed(name string) *PropertyDescriptor {
	p := d.NewPropertyDescriptor(name, Cardinality_ToOne)
	d.AddPropertyDescriptor(p)
	return p
}

func (d *ObjectDescriptor) AddToManyPropertyDescriptorNamed(name string) *PropertyDescriptor {
	p := d.NewPropertyDescriptor(name, Cardinality_ToMany)
	d.AddPropertyDescriptor(p)
	return p
}

// Adds to-one association. If inverse is specified, then both associations are linked.
func (d *ObjectDescriptor) AddToOneAssociationNamed(name string, inverse *AssociationDescriptor) *AssociationDescriptor {
	return d.addAssociation(name, Cardinality_ToOne, inverse)
}

// Adds to-many association. If inverse is specified, then both associations are linked.
func (d *ObjectDescriptor) AddToManyAssociationNamed(name string, inverse *AssociationDescriptor) *AssociationDescriptor {
	return d.addAssociation(name, Cardinality_ToMany, inverse)
}

func (d *ObjectDescriptor) addAssociation(name string, c Cardinality, inverse *AssociationDescriptor) *AssociationDescriptor {
	a := d.NewAssociationDescriptor(name, c)
	d.AddPropertyDescriptor(a)
	if inverse != nil {
		a.SetInverse(inverse)
	}
	return a
}

// # Event descriptors

// Returns own event descriptors followed by inherited ones.
//
// Result is recalculated on every call.
func (d *ObjectDescriptor) EventDescriptors() []*EventDescriptor {
	d.mu.Lock()
	res := slices.Clone(d.events)
	parent := d.parent
	d.mu.Unlock()

	if parent != nil {
		res = append(res, parent.EventDescriptors()...)
	}
	return res
}

// Adds event descriptor.
//
// Event is detached from previous owner first. Own event with the same name is replaced.
// Nil and unnamed events are ignored.
func (d *ObjectDescriptor) AddEventDescriptor(e *EventDescriptor) *EventDescriptor {
	if e == nil || e.Name() == "" {
		return e
	}
	if owner := e.Owner(); owner != nil && owner != d {
		owner.RemoveEventDescriptor(e)
	}

	d.mu.Lock()
	if slices.Contains(d.events, e) {
		d.mu.Unlock()
		return e
	}
	var replaced *EventDescriptor
	if i := slices.IndexFunc(d.events, func(o *EventDescriptor) bool { return o.Name() == e.Name() }); i >= 0 {
		replaced = d.events[i]
		d.events = slices.Delete(d.events, i, i+1)
	}
	d.events = append(d.events, e)
	d.eventsCache[e.Name()] = foundLookup(e)
	d.mu.Unlock()

	if replaced != nil {
		replaced.setOwner(nil)
	}
	e.setOwner(d)
	return e
}

// Removes own event descriptor. Nil, unnamed and not own events are ignored.
func (d *ObjectDescriptor) RemoveEventDescriptor(e *EventDescriptor) *EventDescriptor {
	if e == nil || e.Name() == "" {
		return e
	}

	d.mu.Lock()
	i := slices.Index(d.events, e)
	if i < 0 {
		d.mu.Unlock()
		return e
	}
	d.events = slices.Delete(d.events, i, i+1)
	delete(d.eventsCache, e.Name())
	d.mu.Unlock()

	e.setOwner(nil)
	return e
}

// Creates new event descriptor. Descriptor is not added.
func (d *ObjectDescriptor) NewEventDescriptor(name string) *EventDescriptor {
	return NewEventDescriptor(name)
}

func (d *ObjectDescriptor) AddEventDescriptorNamed(name string) *EventDescriptor {
	return d.AddEventDescriptor(d.NewEventDescriptor(name))
}

// Returns event descriptor by name, own or inherited. Returns nil if not found.
func (d *ObjectDescriptor) EventDescriptorForName(name string) *EventDescriptor {
	d.mu.Lock()
	res, cached := d.eventsCache[name]
	if !cached {
		res = notFoundLookup[*EventDescriptor]()
		d.scans++
		for _, e := range d.events {
			if e.Name() == name {
				res = foundLookup(e)
				break
			}
		}
		d.eventsCache[name] = res
	}
	parent := d.parent
	d.mu.Unlock()

	if res.found {
		return res.value
	}
	if parent != nil {
		return parent.EventDescriptorForName(name)
	}
	return nil
}

func isNilProperty(p IPropertyDescriptor) bool {
	if p == nil {
		return true
	}
	switch v := p.(type) {
	case *PropertyDescriptor:
		return v == nil
	case *AssociationDescriptor:
		return v == nil
	case *DerivedPropertyDescriptor:
		return v == nil
	}
	return false
}
