/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package metadoc

// Document encoding formats
type Format uint8

const (
	Format_null Format = iota
	Format_JSON
	Format_YAML

	Format_count
)

const jsonIndent = "  "
