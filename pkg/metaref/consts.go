/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package metaref

// Default size of the worker pool used by ResolveAll
const DefaultWorkers = 4

// Default size of the modules cache used by NewCachedLoader
const DefaultCacheSize = 256

type ctxKey int

const inflightKey ctxKey = 0
