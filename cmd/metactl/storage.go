/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voedger/objmeta/pkg/meta"
	"github.com/voedger/objmeta/pkg/metaref"
	"github.com/voedger/objmeta/pkg/metastore"
)

// Opened storage with resolver over stored modules
type workspace struct {
	cfg      config
	storage  metastore.IDocStorage
	group    *meta.ModelGroup
	loader   meta.IModuleLoader
	resolver *metaref.Resolver
}

func openWorkspace(cmd *cobra.Command) (*workspace, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	storage, err := openStorage(cfg)
	if err != nil {
		return nil, err
	}

	w := &workspace{
		cfg:     cfg,
		storage: storage,
		group:   meta.NewModelGroup(),
	}
	w.loader = metaref.NewSingleFlightLoader(
		metaref.NewCachedLoader(metastore.NewLoader(storage, w.group, metaref.WithWorkers(cfg.Workers)), cfg.CacheSize))
	w.resolver = metaref.New(w.group, w.loader, metaref.WithWorkers(cfg.Workers))
	w.group.SetModuleLoader(w.loader)
	return w, nil
}

func openStorage(cfg config) (metastore.IDocStorage, error) {
	switch cfg.Store {
	case storeKind_BBolt:
		return metastore.ProvideBBolt(metastore.ParamsType{DBDir: cfg.DBDir, DBName: cfg.DBName})
	case storeKind_Mem:
		return metastore.ProvideMem(), nil
	}
	return nil, fmt.Errorf("%w: «%s»", ErrUnknownStoreKind, cfg.Store)
}

func (w *workspace) close() error {
	return w.storage.Close()
}
