/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package meta

import (
	"context"
	"maps"
	"slices"

	"github.com/untillpro/goutils/logger"
)

// # Prototype
//
// Runtime type of objects governed by an object descriptor.
// Prototype specializes parent prototype and carries property metadata applied from descriptor.
type Prototype struct {
	name         string
	parent       *Prototype
	descriptor   *ObjectDescriptor
	properties   map[string]IPropertyDescriptor
	order        []string
	initializers []func(*Instance)
}

// Root capability set. Every prototype descends from it.
var BasePrototype = &Prototype{
	name:       BasePrototypeName,
	properties: map[string]IPropertyDescriptor{},
}

// Prototype specialization option
type PrototypeOption func(*Prototype)

func WithPrototypeName(name string) PrototypeOption {
	return func(p *Prototype) { p.name = name }
}

// Adds initializer, which is called for every new instance after parent initializers.
func WithInitializer(init func(*Instance)) PrototypeOption {
	return func(p *Prototype) {
		if init != nil {
			p.initializers = append(p.initializers, init)
		}
	}
}

func (p *Prototype) Name() string { return p.name }

func (p *Prototype) Parent() *Prototype { return p.parent }

// Returns nearest descriptor applied to prototype chain
func (p *Prototype) Descriptor() *ObjectDescriptor {
	for c := p; c != nil; c = c.parent {
		if c.descriptor != nil {
			return c.descriptor
		}
	}
	return nil
}

// Returns true if prototype is base or specializes it
func (p *Prototype) DescendsFrom(base *Prototype) bool {
	for c := p; c != nil; c = c.parent {
		if c == base {
			return true
		}
	}
	return false
}

func (p *Prototype) descendsFromDescriptor(d *ObjectDescriptor) bool {
	for c := p; c != nil; c = c.parent {
		if c.descriptor == d {
			return true
		}
	}
	return false
}

// Creates new prototype, which specializes this one.
func (p *Prototype) Specialize(opts ...PrototypeOption) *Prototype {
	n := &Prototype{
		name:       p.name,
		parent:     p,
		properties: make(map[string]IPropertyDescriptor),
	}
	for _, o := range opts {
		o(n)
	}
	return n
}

// Returns property descriptor applied to prototype chain or nil.
func (p *Prototype) PropertyDescriptor(name string) IPropertyDescriptor {
	for c := p; c != nil; c = c.parent {
		if prop, ok := c.properties[name]; ok {
			return prop
		}
	}
	return nil
}

// Returns names of properties applied to prototype chain, from root to this prototype.
func (p *Prototype) PropertyNames() []string {
	var chain []*Prototype
	for c := p; c != nil; c = c.parent {
		chain = append(chain, c)
	}
	names := []string{}
	for i := len(chain) - 1; i >= 0; i-- {
		for _, n := range chain[i].order {
			if !slices.Contains(names, n) {
				names = append(names, n)
			}
		}
	}
	return names
}

func (p *Prototype) defineProperty(prop IPropertyDescriptor) {
	if _, exists := p.properties[prop.Name()]; !exists {
		p.order = append(p.order, prop.Name())
	}
	p.properties[prop.Name()] = prop
}

// Creates new instance with default values of all properties.
func (p *Prototype) New() *Instance {
	i := &Instance{proto: p, values: make(map[string]any)}
	for _, n := range p.PropertyNames() {
		prop := p.PropertyDescriptor(n)
		if prop.Kind() == PropertyKind_Derived {
			continue
		}
		switch {
		case prop.DefaultValue() != nil:
			i.values[n] = prop.DefaultValue()
		case prop.IsToMany():
			i.values[n] = []any{}
		default:
			i.values[n] = nil
		}
	}

	var chain []*Prototype
	for c := p; c != nil; c = c.parent {
		chain = append(chain, c)
	}
	for j := len(chain) - 1; j >= 0; j-- {
		for _, init := range chain[j].initializers {
			init(i)
		}
	}
	return i
}

// # Object property
//
// Applies descriptor property metadata to prototypes.
// Provides the last resort property descriptor for values without descriptor.
type ObjectProperty struct {
	fallback *PropertyDescriptor
}

func newObjectProperty() *ObjectProperty {
	p := NewPropertyDescriptor(DefaultObjectDescriptorName, Cardinality_ToOne)
	p.SetValueType(ValueType_Object)
	return &ObjectProperty{fallback: p}
}

// Returns the last resort property descriptor
func (op *ObjectProperty) DefaultPropertyDescriptor() IPropertyDescriptor {
	return op.fallback
}

// Applies own and inherited properties of descriptor to prototype.
// Properties, which are already defined by prototype chain for the same name, are redefined.
func (op *ObjectProperty) ApplyWithDescriptor(p *Prototype, d *ObjectDescriptor) {
	p.descriptor = d
	applied := map[string]bool{}
	for _, prop := range d.PropertyDescriptors() {
		if applied[prop.Name()] {
			continue // own property hides inherited one
		}
		applied[prop.Name()] = true
		if inherited := p.parent.PropertyDescriptor(prop.Name()); inherited == prop {
			continue
		}
		p.defineProperty(prop)
	}
}

// # Instance
//
// Object created by prototype. Values are accessed by property names.
type Instance struct {
	proto  *Prototype
	values map[string]any
}

func (i *Instance) Prototype() *Prototype { return i.proto }

func (i *Instance) Descriptor() *ObjectDescriptor { return i.proto.Descriptor() }

// Returns property descriptor for name. Returns the last resort descriptor for ad-hoc values.
func (i *Instance) PropertyDescriptor(name string) IPropertyDescriptor {
	if p := i.proto.PropertyDescriptor(name); p != nil {
		return p
	}
	if d := i.Descriptor(); d != nil {
		return d.objectProperty().DefaultPropertyDescriptor()
	}
	return Group().DefaultObjectDescriptorObjectProperty().DefaultPropertyDescriptor()
}

// Returns property value. Derived properties are calculated.
func (i *Instance) Get(name string) any {
	if d, ok := i.proto.PropertyDescriptor(name).(*DerivedPropertyDescriptor); ok {
		v, err := d.Evaluate(maps.Clone(i.values))
		if err != nil {
			logger.Warning("derived property", name, "evaluation failed:", err)
			return nil
		}
		return v
	}
	return i.values[name]
}

// Sets property value. Returns ErrReadOnly for read only and derived properties.
func (i *Instance) Set(name string, value any) error {
	if i.PropertyDescriptor(name).ReadOnly() {
		return ErrReadOnlyProperty(name)
	}
	i.values[name] = value
	return nil
}

// Returns copy of all values, including calculated derived properties.
func (i *Instance) Values() map[string]any {
	res := maps.Clone(i.values)
	for _, n := range i.proto.PropertyNames() {
		if _, ok := i.proto.PropertyDescriptor(n).(*DerivedPropertyDescriptor); ok {
			res[n] = i.Get(n)
		}
	}
	return res
}

// # Descriptor runtime types

// Creates custom prototype for the descriptor.
//
// Base prototype is specialized, or generic prototype of the descriptor if base is nil.
// Descriptor property metadata is applied to the new prototype and descriptor is marked
// as having custom prototype.
func (d *ObjectDescriptor) Create(ctx context.Context, base *Prototype, opts ...PrototypeOption) (*Prototype, error) {
	if base == nil {
		b, err := d.genericBase(ctx)
		if err != nil {
			return nil, err
		}
		base = b
	}
	p := base.Specialize(append([]PrototypeOption{WithPrototypeName(d.PrototypeName())}, opts...)...)
	d.objectProperty().ApplyWithDescriptor(p, d)
	d.SetCustomPrototype(true)
	return p, nil
}

// Returns prototype for new instances.
//
// If descriptor has no custom prototype, new prototype specializing parent prototype
// (or BasePrototype) is created. Otherwise custom prototype is loaded from prototype module
// through the model module loader and checked to descend from the expected prototypes.
func (d *ObjectDescriptor) NewInstancePrototype(ctx context.Context) (*Prototype, error) {
	if d.CustomPrototype() {
		return d.loadCustomPrototype(ctx)
	}
	base, err := d.genericBase(ctx)
	if err != nil {
		return nil, err
	}
	p := base.Specialize(WithPrototypeName(d.PrototypeName()))
	d.objectProperty().ApplyWithDescriptor(p, d)
	return p, nil
}

// Creates new instance. Returns nil instance if prototype is not resolvable.
func (d *ObjectDescriptor) NewInstance(ctx context.Context) (*Instance, error) {
	p, err := d.NewInstancePrototype(ctx)
	if err != nil || p == nil {
		return nil, err
	}
	return p.New(), nil
}

func (d *ObjectDescriptor) genericBase(ctx context.Context) (*Prototype, error) {
	if parent := d.Parent(); parent != nil {
		return parent.NewInstancePrototype(ctx)
	}
	return BasePrototype, nil
}

func (d *ObjectDescriptor) loadCustomPrototype(ctx context.Context) (*Prototype, error) {
	moduleID, export := d.PrototypeModule(), d.PrototypeName()
	if moduleID == "" {
		return nil, ErrInvalid("object descriptor «%s» has custom prototype without module", d.name)
	}

	var loader IModuleLoader
	if m := d.ownerModel(); m != nil {
		loader = m.ModuleLoader()
	} else {
		loader = Group().ModuleLoader()
	}
	if loader == nil {
		return nil, EnrichError(ErrNoModuleLoader, "custom prototype of «%s»", d.name)
	}

	if logger.IsVerbose() {
		logger.Verbose("loading prototype", export, "from", moduleID)
	}
	exports, err := loader.LoadModule(ctx, moduleID)
	if err != nil {
		return nil, err
	}
	v, ok := exports[export]
	if !ok {
		return nil, ErrExportMissed(moduleID, export)
	}
	p, ok := v.(*Prototype)
	if !ok || p == nil {
		return nil, ErrUnexpectedExportType(moduleID, export, v)
	}
	if !p.DescendsFrom(BasePrototype) {
		return nil, EnrichError(ErrPrototypeMismatch, "«%s» does not descend from «%s»", export, BasePrototypeName)
	}
	if parent := d.Parent(); parent != nil && !p.descendsFromDescriptor(parent) {
		return nil, EnrichError(ErrPrototypeMismatch, "«%s» does not descend from prototype of «%s»", export, parent.Name())
	}
	return p, nil
}
