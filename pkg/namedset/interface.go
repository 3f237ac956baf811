/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package namedset

// Item stored in the named set.
//
// Implementations are expected to be pointer types, items are compared by identity.
type INamed interface {
	comparable
	Name() string
}
