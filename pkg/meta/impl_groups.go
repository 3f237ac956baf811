/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package meta

import (
	"slices"
)

// Returns own group names in insertion order followed by inherited group names.
func (d *ObjectDescriptor) PropertyDescriptorGroups() []string {
	d.mu.Lock()
	res := slices.Clone(d.groupNames)
	parent := d.parent
	d.mu.Unlock()

	if parent != nil {
		res = append(res, parent.PropertyDescriptorGroups()...)
	}
	return res
}

// Returns members of own or inherited group. Returns nil if group is not found.
func (d *ObjectDescriptor) PropertyDescriptorGroupForName(group string) []IPropertyDescriptor {
	d.mu.Lock()
	members, ok := d.groups[group]
	parent := d.parent
	d.mu.Unlock()

	if ok {
		return slices.Clone(members)
	}
	if parent != nil {
		return parent.PropertyDescriptorGroupForName(group)
	}
	return nil
}

// Adds own group, if it does not exist. Returns group members.
func (d *ObjectDescriptor) AddPropertyDescriptorGroupNamed(group string) []IPropertyDescriptor {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.addGroupLocked(group))
}

// Removes own group. Returns removed group members or nil if group does not exist.
func (d *ObjectDescriptor) RemovePropertyDescriptorGroupNamed(group string) []IPropertyDescriptor {
	d.mu.Lock()
	defer d.mu.Unlock()

	members, ok := d.groups[group]
	if !ok {
		return nil
	}
	delete(d.groups, group)
	delete(d.pendingGroups, group)
	d.groupNames = slices.DeleteFunc(d.groupNames, func(n string) bool { return n == group })
	if members == nil {
		members = []IPropertyDescriptor{}
	}
	return members
}

// Adds property descriptor to own group. Group is created if it does not exist.
// Already present member is not added twice. Returns group members.
func (d *ObjectDescriptor) AddPropertyDescriptorToGroupNamed(p IPropertyDescriptor, group string) []IPropertyDescriptor {
	d.mu.Lock()
	defer d.mu.Unlock()

	members := d.addGroupLocked(group)
	if !isNilProperty(p) && !slices.Contains(members, p) {
		members = append(members, p)
		d.groups[group] = members
	}
	return slices.Clone(members)
}

// Removes property descriptor from own group. Returns group members, empty if group does not exist.
func (d *ObjectDescriptor) RemovePropertyDescriptorFromGroupNamed(p IPropertyDescriptor, group string) []IPropertyDescriptor {
	d.mu.Lock()
	defer d.mu.Unlock()

	members, ok := d.groups[group]
	if !ok {
		return []IPropertyDescriptor{}
	}
	if !isNilProperty(p) {
		if i := slices.Index(members, p); i >= 0 {
			members = slices.Delete(members, i, i+1)
			d.groups[group] = members
		}
	}
	return slices.Clone(members)
}

func (d *ObjectDescriptor) addGroupLocked(group string) []IPropertyDescriptor {
	members, ok := d.groups[group]
	if !ok {
		members = []IPropertyDescriptor{}
		d.groups[group] = members
		d.groupNames = append(d.groupNames, group)
	}
	return members
}

// Resolves group members, which are deserialized by name and were not found at that time.
func (d *ObjectDescriptor) resolvePendingGroups() {
	d.mu.Lock()
	pending := d.pendingGroups
	d.pendingGroups = nil
	d.mu.Unlock()

	for group, names := range pending {
		for _, name := range names {
			if p := d.PropertyDescriptorForName(name); p != nil {
				d.AddPropertyDescriptorToGroupNamed(p, group)
				continue
			}
			d.mu.Lock()
			if d.pendingGroups == nil {
				d.pendingGroups = make(map[string][]string)
			}
			d.pendingGroups[group] = append(d.pendingGroups[group], name)
			d.mu.Unlock()
		}
	}
}
