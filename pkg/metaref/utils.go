/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package metaref

import (
	"context"

	"github.com/voedger/objmeta/pkg/meta"
)

// Returns export by name or the root export
func pickExport(exports meta.Exports, moduleID, name string) (string, any, error) {
	if v, ok := exports[name]; ok {
		return name, v, nil
	}
	if v, ok := exports[meta.RootExportName]; ok {
		return meta.RootExportName, v, nil
	}
	return "", nil, meta.ErrExportMissed(moduleID, name)
}

// Set of references being resolved by the chain of calls.
//
// Set is immutable, every chain link gets own copy.
type inflight map[string]struct{}

func isInflight(ctx context.Context, key string) bool {
	set, _ := ctx.Value(inflightKey).(inflight)
	_, ok := set[key]
	return ok
}

func withInflight(ctx context.Context, key string) context.Context {
	set, _ := ctx.Value(inflightKey).(inflight)
	if _, ok := set[key]; ok {
		return ctx
	}
	n := make(inflight, len(set)+1)
	for k := range set {
		n[k] = struct{}{}
	}
	n[key] = struct{}{}
	return context.WithValue(ctx, inflightKey, n)
}
