/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package metastore

type ParamsType struct {
	// Directory of the database file. Created if not exists
	DBDir string

	// Database file name. DefaultDBName is used if empty
	DBName string
}

// Called for every stored document. Reading is stopped if error is returned.
type ReadCallback func(moduleID string, doc []byte) error
