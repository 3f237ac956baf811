/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package metastore

import "context"

// Storage of serialized documents keyed by module identifier.
type IDocStorage interface {
	// Stores document. Document of the same module is replaced.
	// Returns ErrEmptyModuleID if module identifier is empty.
	Put(moduleID string, doc []byte) error

	// Returns stored document. ok is false if module has no document.
	Get(moduleID string) (doc []byte, ok bool, err error)

	// Removes document. Returns false if module has no document.
	Delete(moduleID string) (ok bool, err error)

	// Calls cb for every document in module identifiers order.
	Read(ctx context.Context, cb ReadCallback) error

	Close() error
}
