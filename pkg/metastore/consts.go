/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package metastore

import "os"

const (
	DefaultDBName = "objmeta.db"

	documentsBucketName = "documents"

	fileMode os.FileMode = 0o666
	dirMode  os.FileMode = 0o777
)
