/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package metaref

import (
	"context"
	"maps"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/untillpro/goutils/logger"
	"golang.org/x/sync/singleflight"

	"github.com/voedger/objmeta/pkg/meta"
)

// # Static loader
//
// In-memory modules defined by Define.
type StaticLoader struct {
	mu      sync.RWMutex
	modules map[string]meta.Exports
}

// Defines module exports. Exports of already defined module are replaced.
func (l *StaticLoader) Define(moduleID string, exports meta.Exports) *StaticLoader {
	l.mu.Lock()
	l.modules[moduleID] = maps.Clone(exports)
	l.mu.Unlock()
	return l
}

func (l *StaticLoader) LoadModule(_ context.Context, moduleID string) (meta.Exports, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	exports, ok := l.modules[moduleID]
	if !ok {
		return nil, ErrModuleMissed(moduleID)
	}
	return maps.Clone(exports), nil
}

// # Cached loader
//
// Keeps exports of recently loaded modules. Loading errors are not cached.
type CachedLoader struct {
	loader meta.IModuleLoader
	cache  *lru.Cache[string, meta.Exports]
}

func (l *CachedLoader) LoadModule(ctx context.Context, moduleID string) (meta.Exports, error) {
	if exports, ok := l.cache.Get(moduleID); ok {
		return maps.Clone(exports), nil
	}
	exports, err := l.loader.LoadModule(ctx, moduleID)
	if err != nil {
		return nil, err
	}
	l.cache.Add(moduleID, maps.Clone(exports))
	return exports, nil
}

// Removes module from cache. Module will be loaded again on next request.
func (l *CachedLoader) Invalidate(moduleID string) {
	l.cache.Remove(moduleID)
}

// Returns count of cached modules
func (l *CachedLoader) Len() int { return l.cache.Len() }

// # Single flight loader
//
// Concurrent requests of the same module share single load.
// Shared load runs with context of the first request.
//
// Should not be used if modules reference each other and are loaded concurrently:
// two loads waiting for each other never finish.
type SingleFlightLoader struct {
	loader meta.IModuleLoader
	group  singleflight.Group
}

func (l *SingleFlightLoader) LoadModule(ctx context.Context, moduleID string) (meta.Exports, error) {
	ch := l.group.DoChan(moduleID, func() (any, error) {
		return l.loader.LoadModule(ctx, moduleID)
	})
	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared && logger.IsTrace() {
			logger.Trace("module", moduleID, "load shared")
		}
		return res.Val.(meta.Exports), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
