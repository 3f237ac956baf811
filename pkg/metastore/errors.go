/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package metastore

import (
	"errors"

	"github.com/voedger/objmeta/pkg/meta"
)

var (
	ErrEmptyModuleID           = errors.New("empty module identifier")
	ErrDocumentsBucketNotFound = errors.New("documents bucket not found")
	ErrStorageClosed           = errors.New("storage is closed")
)

func enrichEmptyModuleID(msg string, args ...any) error {
	return meta.EnrichError(ErrEmptyModuleID, msg, args...)
}
