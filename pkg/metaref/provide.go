/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package metaref

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/voedger/objmeta/pkg/meta"
)

// Resolver option
type Option func(*Resolver)

// Sets size of the worker pool used by ResolveAll
func WithWorkers(workers int) Option {
	return func(r *Resolver) { r.workers = workers }
}

// Creates resolver over group.
//
// If loader is nil, then module loader of the group is used.
func New(group *meta.ModelGroup, loader meta.IModuleLoader, opts ...Option) *Resolver {
	if group == nil {
		group = meta.Group()
	}
	r := &Resolver{
		group:   group,
		loader:  loader,
		workers: DefaultWorkers,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

func NewStaticLoader() *StaticLoader {
	return &StaticLoader{modules: make(map[string]meta.Exports)}
}

// Creates loader caching up to size modules. Non-positive size means DefaultCacheSize.
func NewCachedLoader(loader meta.IModuleLoader, size int) *CachedLoader {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[string, meta.Exports](size)
	if err != nil {
		// notest: size is positive
		panic(err)
	}
	return &CachedLoader{loader: loader, cache: cache}
}

func NewSingleFlightLoader(loader meta.IModuleLoader) *SingleFlightLoader {
	return &SingleFlightLoader{loader: loader}
}
