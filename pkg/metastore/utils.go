/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package metastore

import (
	"github.com/untillpro/goutils/logger"

	"github.com/voedger/objmeta/pkg/meta"
	"github.com/voedger/objmeta/pkg/metadoc"
)

// Stores object descriptor document under the descriptor module
func SaveObjectDescriptor(storage IDocStorage, d *meta.ObjectDescriptor) error {
	moduleID := d.ObjectDescriptorModule()
	if moduleID == "" {
		return enrichEmptyModuleID("object descriptor «%s»", d.Name())
	}
	return save(storage, moduleID, metadoc.FromObjectDescriptor(d))
}

// Stores model document under the model module
func SaveModel(storage IDocStorage, m *meta.Model) error {
	moduleID := m.ModuleID()
	if moduleID == "" {
		return enrichEmptyModuleID("model «%s»", m.Name())
	}
	return save(storage, moduleID, metadoc.FromModel(m))
}

// Imports JSON or YAML document. Format is detected by file name.
//
// Document is stored as JSON under its objectDescriptorModule or modelModule value.
// Returns module ID of the stored document.
func ImportDocument(storage IDocStorage, fileName string, data []byte) (moduleID string, err error) {
	doc, err := metadoc.ParseFile(fileName, data)
	if err != nil {
		return "", err
	}

	key, name := meta.Key_ObjectDescriptorModule, meta.Key_Name
	if metadoc.IsModelDocument(doc) {
		key, name = meta.Key_ModelModule, meta.Key_ModelName
	}
	v, _ := doc.GetProperty(key)
	moduleID, _ = v.(string)
	if moduleID == "" {
		n, _ := doc.GetProperty(name)
		return "", enrichEmptyModuleID("document «%s» named «%v»: no «%s»", fileName, n, key)
	}
	return moduleID, save(storage, moduleID, doc)
}

func save(storage IDocStorage, moduleID string, doc *metadoc.Document) error {
	data, err := doc.JSON()
	if err != nil {
		// notest
		return err
	}
	if err := storage.Put(moduleID, data); err != nil {
		return err
	}
	if logger.IsVerbose() {
		logger.Verbose("module", moduleID, "saved")
	}
	return nil
}
