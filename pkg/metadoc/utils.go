/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package metadoc

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/voedger/objmeta/pkg/meta"
)

func (f Format) String() string {
	switch f {
	case Format_JSON:
		return "json"
	case Format_YAML:
		return "yaml"
	}
	return fmt.Sprintf("Format(%d)", f)
}

// Returns format by file name extension: .json, .yaml or .yml
func FormatByName(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return Format_JSON, nil
	case ".yaml", ".yml":
		return Format_YAML, nil
	}
	return Format_null, ErrUnknownFormatFor(name)
}

// Returns true if document describes model rather than object descriptor
func IsModelDocument(d *Document) bool {
	_, hasModelName := d.GetProperty(meta.Key_ModelName)
	_, hasName := d.GetProperty(meta.Key_Name)
	return hasModelName && !hasName
}
