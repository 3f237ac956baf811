/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package metastore

import (
	"os"
	"path/filepath"

	"github.com/untillpro/goutils/logger"
	bolt "go.etcd.io/bbolt"

	"github.com/voedger/objmeta/pkg/meta"
	"github.com/voedger/objmeta/pkg/metaref"
)

// Creates in-memory storage
func ProvideMem() IDocStorage {
	return &memStorage{docs: make(map[string][]byte)}
}

// Opens or creates bbolt storage. Storage should be closed by caller.
func ProvideBBolt(params ParamsType) (IDocStorage, error) {
	name := params.DBName
	if name == "" {
		name = DefaultDBName
	}
	if params.DBDir != "" {
		if err := os.MkdirAll(params.DBDir, dirMode); err != nil {
			// notest
			return nil, err
		}
	}
	path := filepath.Join(params.DBDir, name)

	db, err := bolt.Open(path, fileMode, bolt.DefaultOptions)
	if err != nil {
		return nil, err
	}
	if err := initDB(db); err != nil {
		// notest
		db.Close()
		return nil, err
	}
	if logger.IsVerbose() {
		logger.Verbose("bbolt storage opened:", path)
	}
	return &bboltStorage{db: db}, nil
}

// Creates module loader over storage. References of loaded documents are resolved in group.
//
// Association targets of loaded descriptors are left pending, see metaref.Resolver.ResolveAssociationTargets
func NewLoader(storage IDocStorage, group *meta.ModelGroup, opts ...metaref.Option) *Loader {
	l := &Loader{storage: storage}
	l.resolver = metaref.New(group, l, opts...)
	return l
}
