/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package metastore

import (
	"context"

	"github.com/untillpro/goutils/logger"

	"github.com/voedger/objmeta/pkg/meta"
	"github.com/voedger/objmeta/pkg/metadoc"
	"github.com/voedger/objmeta/pkg/metaref"
)

// Module loader, modules are documents of the storage.
//
// Object descriptor document is exported by descriptor name and as root.
// Model document is exported by model name and as root.
type Loader struct {
	storage  IDocStorage
	resolver *metaref.Resolver
}

var _ meta.IModuleLoader = (*Loader)(nil)

// Returns resolver used to resolve references of loaded documents
func (l *Loader) Resolver() *metaref.Resolver { return l.resolver }

func (l *Loader) LoadModule(ctx context.Context, moduleID string) (meta.Exports, error) {
	data, ok, err := l.storage.Get(moduleID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, metaref.ErrModuleMissed(moduleID)
	}
	doc, err := metadoc.Parse(data, metadoc.Format_JSON)
	if err != nil {
		return nil, meta.EnrichError(err, "module «%s»", moduleID)
	}

	if metadoc.IsModelDocument(doc) {
		m, err := meta.ModelFromDocument(doc)
		if err != nil {
			return nil, meta.EnrichError(err, "module «%s»", moduleID)
		}
		if logger.IsVerbose() {
			logger.Verbose("model", m.Name(), "loaded from module", moduleID)
		}
		return meta.Exports{m.Name(): m, meta.RootExportName: m}, nil
	}

	d, err := l.resolver.Deserialize(ctx, doc)
	if err != nil {
		return nil, meta.EnrichError(err, "module «%s»", moduleID)
	}
	if d.ObjectDescriptorModule() == "" {
		d.SetObjectDescriptorModule(moduleID)
	}
	if logger.IsVerbose() {
		logger.Verbose("object descriptor", d.Name(), "loaded from module", moduleID)
	}
	return meta.Exports{d.Name(): d, meta.RootExportName: d}, nil
}
