/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package meta

import (
	"slices"
	"sync"
)

// Common part of all property descriptors.
type propertyDescriptor struct {
	mu           sync.RWMutex
	name         string
	owner        *ObjectDescriptor
	cardinality  Cardinality
	valueType    ValueType
	mandatory    bool
	readOnly     bool
	defaultValue any
}

func makePropertyDescriptor(name string, cardinality Cardinality) propertyDescriptor {
	if cardinality <= 0 {
		cardinality = Cardinality_ToOne
	}
	return propertyDescriptor{
		name:        name,
		cardinality: cardinality,
		valueType:   ValueType_String,
	}
}

func (p *propertyDescriptor) Name() string { return p.name }

func (p *propertyDescriptor) Owner() *ObjectDescriptor {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.owner
}

func (p *propertyDescriptor) setOwner(o *ObjectDescriptor) {
	p.mu.Lock()
	p.owner = o
	p.mu.Unlock()
}

func (p *propertyDescriptor) Cardinality() Cardinality { return p.cardinality }

func (p *propertyDescriptor) IsToMany() bool { return p.cardinality != Cardinality_ToOne }

func (p *propertyDescriptor) ValueType() ValueType { return p.valueType }

func (p *propertyDescriptor) SetValueType(t ValueType) { p.valueType = t }

func (p *propertyDescriptor) Mandatory() bool { return p.mandatory }

func (p *propertyDescriptor) SetMandatory(m bool) { p.mandatory = m }

func (p *propertyDescriptor) ReadOnly() bool { return p.readOnly }

func (p *propertyDescriptor) SetReadOnly(r bool) { p.readOnly = r }

func (p *propertyDescriptor) DefaultValue() any { return p.defaultValue }

func (p *propertyDescriptor) SetDefaultValue(v any) { p.defaultValue = v }

func (p *propertyDescriptor) base() *propertyDescriptor { return p }

func (p *propertyDescriptor) serializeBase(kind PropertyKind) map[string]any {
	data := map[string]any{Key_Name: p.name}
	if kind != PropertyKind_Simple {
		data[key_Kind] = kind.String()
	}
	if p.cardinality != Cardinality_ToOne {
		data[key_Cardinality] = int(p.cardinality)
	}
	if p.valueType != ValueType_String {
		data[key_ValueType] = string(p.valueType)
	}
	if p.mandatory {
		data[key_Mandatory] = true
	}
	if p.readOnly {
		data[key_ReadOnly] = true
	}
	if p.defaultValue != nil {
		data[key_DefaultValue] = p.defaultValue
	}
	return data
}

func (p *propertyDescriptor) deserializeBase(data map[string]any) error {
	if v, ok := data[key_ValueType]; ok {
		s, ok := dataString(v)
		if !ok {
			return ErrInvalid("property «%s» value type %v", p.name, v)
		}
		p.valueType = ValueType(s)
	}
	if v, ok := data[key_Mandatory]; ok {
		p.mandatory, _ = dataBool(v)
	}
	if v, ok := data[key_ReadOnly]; ok {
		p.readOnly, _ = dataBool(v)
	}
	if v, ok := data[key_DefaultValue]; ok {
		p.defaultValue = v
	}
	return nil
}

// # Simple property descriptor
//
// Describes a to-one or to-many property of the object.
type PropertyDescriptor struct {
	propertyDescriptor
}

func NewPropertyDescriptor(name string, cardinality Cardinality) *PropertyDescriptor {
	return &PropertyDescriptor{
		propertyDescriptor: makePropertyDescriptor(name, cardinality),
	}
}

func (p *PropertyDescriptor) Kind() PropertyKind { return PropertyKind_Simple }

func (p *PropertyDescriptor) serialize() map[string]any {
	return p.serializeBase(PropertyKind_Simple)
}

// # Association descriptor
//
// Describes a relationship to other object descriptor.
// Association may have an inverse association on the target side.
type AssociationDescriptor struct {
	propertyDescriptor
	target      *ObjectDescriptor
	targetRef   *ObjectDescriptorReference
	inverse     *AssociationDescriptor
	inverseName string
}

func NewAssociationDescriptor(name string, cardinality Cardinality) *AssociationDescriptor {
	a := &AssociationDescriptor{
		propertyDescriptor: makePropertyDescriptor(name, cardinality),
	}
	a.valueType = ValueType_Object
	return a
}

func (a *AssociationDescriptor) Kind() PropertyKind { return PropertyKind_Association }

// Returns target object descriptor or nil if target is not set or is not resolved yet.
func (a *AssociationDescriptor) TargetDescriptor() *ObjectDescriptor {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.target
}

func (a *AssociationDescriptor) SetTargetDescriptor(d *ObjectDescriptor) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.target = d
	a.targetRef = nil
}

// Returns reference to target which is not resolved yet.
func (a *AssociationDescriptor) PendingTargetReference() (ObjectDescriptorReference, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.targetRef == nil {
		return ObjectDescriptorReference{}, false
	}
	return *a.targetRef, true
}

func (a *AssociationDescriptor) Inverse() *AssociationDescriptor {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.inverse
}

// Returns name of inverse association, which is not resolved yet.
func (a *AssociationDescriptor) PendingInverseName() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.inverse != nil {
		return ""
	}
	return a.inverseName
}

// Links association with inverse one.
//
// Targets of both sides are set to owners of the opposite side.
func (a *AssociationDescriptor) SetInverse(inverse *AssociationDescriptor) {
	if inverse == nil || inverse == a {
		return
	}
	aOwner, iOwner := a.Owner(), inverse.Owner()

	a.mu.Lock()
	a.inverse, a.inverseName = inverse, inverse.name
	a.target, a.targetRef = iOwner, nil
	a.mu.Unlock()

	inverse.mu.Lock()
	inverse.inverse, inverse.inverseName = a, a.name
	inverse.target, inverse.targetRef = aOwner, nil
	inverse.mu.Unlock()
}

func (a *AssociationDescriptor) serialize() map[string]any {
	data := a.serializeBase(PropertyKind_Association)

	a.mu.RLock()
	defer a.mu.RUnlock()
	switch {
	case a.target != nil:
		data[key_TargetDescriptor] = ReferenceFromValue(a.target).ToData()
	case a.targetRef != nil:
		data[key_TargetDescriptor] = a.targetRef.ToData()
	}
	if a.inverse != nil {
		data[key_Inverse] = a.inverse.name
	} else if a.inverseName != "" {
		data[key_Inverse] = a.inverseName
	}
	return data
}

// # Derived property descriptor
//
// Describes property, which value is calculated by getter expression from other properties.
type DerivedPropertyDescriptor struct {
	propertyDescriptor
	dependencies []string
	getter       *expression
}

func NewDerivedPropertyDescriptor(name string, cardinality Cardinality) *DerivedPropertyDescriptor {
	d := &DerivedPropertyDescriptor{
		propertyDescriptor: makePropertyDescriptor(name, cardinality),
	}
	d.readOnly = true
	return d
}

func (d *DerivedPropertyDescriptor) Kind() PropertyKind { return PropertyKind_Derived }

// Names of properties the value depends on
func (d *DerivedPropertyDescriptor) Dependencies() []string {
	return slices.Clone(d.dependencies)
}

func (d *DerivedPropertyDescriptor) SetDependencies(deps ...string) {
	d.dependencies = slices.Clone(deps)
}

// Returns getter expression source
func (d *DerivedPropertyDescriptor) Getter() string {
	if d.getter == nil {
		return ""
	}
	return d.getter.source
}

// Compiles and sets getter expression. Empty source clears getter.
func (d *DerivedPropertyDescriptor) SetGetter(source string) error {
	if source == "" {
		d.getter = nil
		return nil
	}
	e, err := compileExpression(source)
	if err != nil {
		return err
	}
	d.getter = e
	return nil
}

// Calculates value for specified instance. Returns nil if getter is not set.
func (d *DerivedPropertyDescriptor) Evaluate(instance any) (any, error) {
	if d.getter == nil {
		return nil, nil
	}
	return d.getter.run(instance)
}

func (d *DerivedPropertyDescriptor) serialize() map[string]any {
	data := d.serializeBase(PropertyKind_Derived)
	if len(d.dependencies) > 0 {
		deps := make([]any, 0, len(d.dependencies))
		for _, dep := range d.dependencies {
			deps = append(deps, dep)
		}
		data[key_Dependencies] = deps
	}
	if d.getter != nil {
		data[key_Getter] = d.getter.source
	}
	return data
}

// Makes property descriptor from plain data
func propertyDescriptorFromData(v any) (IPropertyDescriptor, error) {
	data, ok := dataMap(v)
	if !ok {
		return nil, ErrInvalid("property descriptor %v", v)
	}
	name, _ := dataString(data[Key_Name])
	if name == "" {
		return nil, ErrInvalid("property descriptor without name: %v", data)
	}

	kind := PropertyKind_Simple
	if v, ok := data[key_Kind]; ok {
		s, _ := dataString(v)
		if kind, ok = propertyKindFromString(s); !ok {
			return nil, ErrInvalid("property «%s» kind «%v»", name, v)
		}
	}

	cardinality := Cardinality_ToOne
	if v, ok := data[key_Cardinality]; ok {
		c, ok := dataInt(v)
		if !ok || c <= 0 {
			return nil, ErrInvalid("property «%s» cardinality «%v»", name, v)
		}
		cardinality = Cardinality(c)
	}

	switch kind {
	case PropertyKind_Association:
		a := NewAssociationDescriptor(name, cardinality)
		if err := a.deserializeBase(data); err != nil {
			return nil, err
		}
		if v, ok := data[key_TargetDescriptor]; ok {
			ref, err := ObjectDescriptorReferenceFromData(v)
			if err != nil {
				return nil, err
			}
			a.targetRef = &ref
		}
		a.inverseName, _ = dataString(data[key_Inverse])
		return a, nil
	case PropertyKind_Derived:
		d := NewDerivedPropertyDescriptor(name, cardinality)
		if err := d.deserializeBase(data); err != nil {
			return nil, err
		}
		if v, ok := data[key_Dependencies]; ok {
			deps, ok := dataStrings(v)
			if !ok {
				return nil, ErrInvalid("derived property «%s» dependencies %v", name, v)
			}
			d.dependencies = deps
		}
		if v, ok := data[key_Getter]; ok {
			src, _ := dataString(v)
			if err := d.SetGetter(src); err != nil {
				return nil, err
			}
		}
		return d, nil
	default:
		p := NewPropertyDescriptor(name, cardinality)
		if err := p.deserializeBase(data); err != nil {
			return nil, err
		}
		return p, nil
	}
}
