/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package namedset

// Creates and returns new empty named set
func New[T INamed]() *Set[T] {
	return &Set[T]{
		table: make(map[string]T),
	}
}
