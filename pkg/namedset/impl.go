/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package namedset

import (
	"slices"
	"sync"
)

// Insertion-ordered collection of items with unique names.
//
// Adding an item with the name of another item replaces the previous occupant.
// Safe for concurrent use.
type Set[T INamed] struct {
	mu    sync.RWMutex
	items []T
	table map[string]T
}

// Adds item to the end of the set.
//
// If an item with the same name already exists it is removed first, it is returned as replaced.
// If item is already in the set it is moved to the end.
// Zero item is ignored.
func (s *Set[T]) Add(item T) (replaced T, ok bool) {
	var zero T
	if item == zero {
		return zero, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	name := item.Name()
	if old, exists := s.table[name]; exists && old != item {
		s.removeLocked(old)
		replaced, ok = old, true
	}
	if i := slices.Index(s.items, item); i >= 0 {
		s.items = slices.Delete(s.items, i, i+1)
	}
	s.items = append(s.items, item)
	s.table[name] = item
	return replaced, ok
}

// Removes item by identity. Returns false if item is not in the set.
func (s *Set[T]) Remove(item T) bool {
	var zero T
	if item == zero {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.removeLocked(item)
}

// Returns item by name.
func (s *Set[T]) ByName(name string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.table[name]
	return item, ok
}

// Returns true if item is in the set.
func (s *Set[T]) Contains(item T) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Contains(s.items, item)
}

// Returns first item in insertion order for which match returns true.
func (s *Set[T]) Find(match func(T) bool) (T, bool) {
	for _, item := range s.Items() {
		if match(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Returns shallow copy of items in insertion order.
func (s *Set[T]) Items() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.items)
}

// Returns items count.
func (s *Set[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}

func (s *Set[T]) removeLocked(item T) bool {
	i := slices.Index(s.items, item)
	if i < 0 {
		return false
	}
	s.items = slices.Delete(s.items, i, i+1)
	if cur, ok := s.table[item.Name()]; ok && cur == item {
		delete(s.table, item.Name())
	}
	return true
}
