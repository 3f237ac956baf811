/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package meta

import "sync"

// # Event descriptor
//
// Describes event, which object of the owner descriptor can emit.
type EventDescriptor struct {
	mu    sync.RWMutex
	name  string
	owner *ObjectDescriptor
}

func NewEventDescriptor(name string) *EventDescriptor {
	return &EventDescriptor{name: name}
}

func (e *EventDescriptor) Name() string { return e.name }

// Events are always to-one
func (e *EventDescriptor) Cardinality() Cardinality { return Cardinality_ToOne }

func (e *EventDescriptor) Owner() *ObjectDescriptor {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.owner
}

func (e *EventDescriptor) setOwner(o *ObjectDescriptor) {
	e.mu.Lock()
	e.owner = o
	e.mu.Unlock()
}

func (e *EventDescriptor) serialize() map[string]any {
	return map[string]any{Key_Name: e.name}
}

func eventDescriptorFromData(v any) (*EventDescriptor, error) {
	data, ok := dataMap(v)
	if !ok {
		return nil, ErrInvalid("event descriptor %v", v)
	}
	name, _ := dataString(data[Key_Name])
	if name == "" {
		return nil, ErrInvalid("event descriptor without name: %v", data)
	}
	return NewEventDescriptor(name), nil
}
