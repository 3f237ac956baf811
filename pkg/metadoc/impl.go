/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package metadoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/voedger/objmeta/pkg/meta"
)

// # Document
//
// Structured document with plain data values.
// Implements meta.IDocumentWriter and meta.IDocumentReader.
type Document struct {
	mu     sync.RWMutex
	values map[string]any
	hints  map[string]string
}

var (
	_ meta.IDocumentWriter = (*Document)(nil)
	_ meta.IDocumentReader = (*Document)(nil)
)

func (d *Document) SetProperty(key string, value any, hint ...string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.values[key] = value
	if len(hint) > 0 && hint[0] != "" {
		d.hints[key] = hint[0]
	} else {
		delete(d.hints, key)
	}
}

func (d *Document) GetProperty(key string) (any, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	v, ok := d.values[key]
	return v, ok
}

// Returns hint the property was written with, empty if none
func (d *Document) Hint(key string) string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.hints[key]
}

// Returns sorted property keys
func (d *Document) Keys() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Sorted(maps.Keys(d.values))
}

// Returns shallow copy of document values
func (d *Document) Map() map[string]any {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return maps.Clone(d.values)
}

func (d *Document) Encode(f Format) ([]byte, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	switch f {
	case Format_JSON:
		return json.MarshalIndent(d.values, "", jsonIndent)
	case Format_YAML:
		buf := bytes.Buffer{}
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(d.values); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return nil, ErrUnknownFormatFor(f.String())
}

func (d *Document) JSON() ([]byte, error) { return d.Encode(Format_JSON) }

func (d *Document) YAML() ([]byte, error) { return d.Encode(Format_YAML) }

func decode(data []byte, f Format) (map[string]any, error) {
	values := map[string]any{}
	var err error
	switch f {
	case Format_JSON:
		err = json.Unmarshal(data, &values)
	case Format_YAML:
		err = yaml.Unmarshal(data, &values)
	default:
		return nil, ErrUnknownFormatFor(f.String())
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	if values == nil {
		values = map[string]any{}
	}
	return values, nil
}
