/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package meta

import (
	"slices"
	"sort"
)

// Writes descriptor into document.
//
// Model is written as reference if it is not default. Parent is written as reference.
// Custom prototype flag is written only if it is set. Collections are written if not empty.
func (d *ObjectDescriptor) SerializeSelf(w IDocumentWriter) {
	w.SetProperty(Key_Name, d.name)

	if m := d.ownerModel(); m != nil {
		if !m.IsDefault() {
			w.SetProperty(Key_Model, ModelReferenceFromValue(m).ToData(), Hint_Reference)
		}
	} else if ref, ok := d.PendingModelReference(); ok {
		w.SetProperty(Key_Model, ref.ToData(), Hint_Reference)
	}

	if moduleID := d.ObjectDescriptorModule(); moduleID != "" {
		w.SetProperty(Key_ObjectDescriptorModule, moduleID)
	}
	if ref, ok := d.ParentReference(); ok {
		w.SetProperty(Key_Parent, ref.ToData(), Hint_Reference)
	}
	if custom := d.CustomPrototype(); custom != DefaultCustomPrototype {
		w.SetProperty(Key_CustomPrototype, custom)
	}

	d.mu.Lock()
	props := slices.Clone(d.properties)
	events := slices.Clone(d.events)
	groupNames := slices.Clone(d.groupNames)
	groups := make(map[string][]IPropertyDescriptor, len(d.groups))
	for n, g := range d.groups {
		groups[n] = slices.Clone(g)
	}
	pendingGroups := make(map[string][]string, len(d.pendingGroups))
	for n, g := range d.pendingGroups {
		pendingGroups[n] = slices.Clone(g)
	}
	rules := make([]*PropertyValidationRule, 0, len(d.ruleNames))
	for _, n := range d.ruleNames {
		rules = append(rules, d.rules[n])
	}
	d.mu.Unlock()

	if len(props) > 0 {
		data := make([]any, 0, len(props))
		for _, p := range props {
			data = append(data, p.serialize())
		}
		w.SetProperty(Key_PropertyDescriptors, data)
	}
	if len(groupNames) > 0 {
		data := make(map[string]any, len(groupNames))
		for _, n := range groupNames {
			members := make([]any, 0, len(groups[n]))
			for _, p := range groups[n] {
				members = append(members, p.Name())
			}
			for _, name := range pendingGroups[n] {
				members = append(members, name)
			}
			data[n] = members
		}
		w.SetProperty(Key_PropertyDescriptorsGroups, data)
		if len(groupNames) > 1 {
			order := make([]any, 0, len(groupNames))
			for _, n := range groupNames {
				order = append(order, n)
			}
			w.SetProperty(Key_PropertyDescriptorsOrder, order)
		}
	}
	if len(events) > 0 {
		data := make([]any, 0, len(events))
		for _, e := range events {
			data = append(data, e.serialize())
		}
		w.SetProperty(Key_EventObjectDescriptors, data)
	}
	if len(rules) > 0 {
		data := make([]any, 0, len(rules))
		for _, r := range rules {
			data = append(data, r.serialize())
		}
		w.SetProperty(Key_PropertyValidationRules, data)
	}
}

// Reads descriptor from document.
//
// Model and parent are read as references and should be resolved later,
// see PendingModelReference and ParentReference.
func (d *ObjectDescriptor) DeserializeSelf(r IDocumentReader) error {
	name := DefaultObjectDescriptorName
	if v, ok := r.GetProperty(Key_Name); ok {
		s, ok := dataString(v)
		if !ok {
			return ErrInvalid("object descriptor name %v", v)
		}
		if s != "" {
			name = s
		}
	}
	d.name = name

	if v, ok := r.GetProperty(Key_Model); ok && v != nil {
		ref, err := ModelReferenceFromData(v)
		if err != nil {
			return EnrichError(err, "object descriptor «%s» model", name)
		}
		d.mu.Lock()
		d.modelRef = &ref
		d.mu.Unlock()
	}

	if v, ok := r.GetProperty(Key_ObjectDescriptorModule); ok {
		s, _ := dataString(v)
		d.SetObjectDescriptorModule(s)
	}

	if v, ok := r.GetProperty(Key_Parent); ok && v != nil {
		ref, err := ObjectDescriptorReferenceFromData(v)
		if err != nil {
			return EnrichError(err, "object descriptor «%s» parent", name)
		}
		d.mu.Lock()
		d.parent, d.parentRef = nil, &ref
		d.mu.Unlock()
	}

	custom := DefaultCustomPrototype
	if v, ok := r.GetProperty(Key_CustomPrototype); ok {
		if b, ok := dataBool(v); ok {
			custom = b
		}
	}
	d.SetCustomPrototype(custom)

	if v, ok := r.GetProperty(Key_PropertyDescriptors); ok {
		list, ok := dataSlice(v)
		if !ok {
			return ErrInvalid("object descriptor «%s» property descriptors %v", name, v)
		}
		for _, item := range list {
			p, err := propertyDescriptorFromData(item)
			if err != nil {
				return EnrichError(err, "object descriptor «%s»", name)
			}
			d.AddPropertyDescriptor(p)
		}
	}

	if v, ok := r.GetProperty(Key_PropertyDescriptorsGroups); ok {
		groups, ok := dataMap(v)
		if !ok {
			return ErrInvalid("object descriptor «%s» property groups %v", name, v)
		}
		groupNames, err := groupsOrder(r, groups)
		if err != nil {
			return EnrichError(err, "object descriptor «%s»", name)
		}
		for _, group := range groupNames {
			members, ok := dataStrings(groups[group])
			if !ok {
				return ErrInvalid("object descriptor «%s» property group «%s» %v", name, group, groups[group])
			}
			d.AddPropertyDescriptorGroupNamed(group)
			for _, member := range members {
				if p := d.PropertyDescriptorForName(member); p != nil {
					d.AddPropertyDescriptorToGroupNamed(p, group)
					continue
				}
				d.mu.Lock()
				if d.pendingGroups == nil {
					d.pendingGroups = make(map[string][]string)
				}
				d.pendingGroups[group] = append(d.pendingGroups[group], member)
				d.mu.Unlock()
			}
		}
	}

	if v, ok := r.GetProperty(Key_EventObjectDescriptors); ok {
		list, ok := dataSlice(v)
		if !ok {
			return ErrInvalid("object descriptor «%s» event descriptors %v", name, v)
		}
		for _, item := range list {
			e, err := eventDescriptorFromData(item)
			if err != nil {
				return EnrichError(err, "object descriptor «%s»", name)
			}
			d.AddEventDescriptor(e)
		}
	}

	if v, ok := r.GetProperty(Key_PropertyValidationRules); ok {
		list, ok := dataSlice(v)
		if !ok {
			return ErrInvalid("object descriptor «%s» validation rules %v", name, v)
		}
		for _, item := range list {
			data, ok := dataMap(item)
			if !ok {
				return ErrInvalid("object descriptor «%s» validation rule %v", name, item)
			}
			ruleName, _ := dataString(data[Key_Name])
			if ruleName == "" {
				return ErrInvalid("object descriptor «%s» validation rule without name", name)
			}
			if err := d.AddPropertyValidationRule(ruleName).deserialize(data); err != nil {
				return EnrichError(err, "object descriptor «%s»", name)
			}
		}
	}

	return nil
}

// Returns names of groups in written order. Groups missed in order follow sorted by name.
func groupsOrder(r IDocumentReader, groups map[string]any) ([]string, error) {
	res := make([]string, 0, len(groups))
	if v, ok := r.GetProperty(Key_PropertyDescriptorsOrder); ok {
		order, ok := dataStrings(v)
		if !ok {
			return nil, ErrInvalid("property groups order %v", v)
		}
		for _, n := range order {
			if _, ok := groups[n]; ok && !slices.Contains(res, n) {
				res = append(res, n)
			}
		}
	}
	rest := make([]string, 0, len(groups)-len(res))
	for n := range groups {
		if !slices.Contains(res, n) {
			rest = append(rest, n)
		}
	}
	sort.Strings(rest)
	return append(res, rest...), nil
}

// Writes model into document
func (m *Model) SerializeSelf(w IDocumentWriter) {
	w.SetProperty(Key_ModelName, m.name)
	if m.moduleID != "" {
		w.SetProperty(Key_ModelModule, m.moduleID)
	}
}

// Reads model from document. Returns nil model if document does not describe model.
func ModelFromDocument(r IDocumentReader) (*Model, error) {
	v, ok := r.GetProperty(Key_ModelName)
	if !ok {
		return nil, nil
	}
	name, ok := dataString(v)
	if !ok || name == "" {
		return nil, ErrInvalid("model name %v", v)
	}
	moduleID := ""
	if v, ok := r.GetProperty(Key_ModelModule); ok {
		moduleID, _ = dataString(v)
	}
	return NewModel(name, moduleID), nil
}
