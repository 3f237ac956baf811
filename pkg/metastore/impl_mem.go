/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package metastore

import (
	"context"
	"maps"
	"slices"
	"sync"
)

type memStorage struct {
	mu     sync.RWMutex
	docs   map[string][]byte
	closed bool
}

func (s *memStorage) Put(moduleID string, doc []byte) error {
	if moduleID == "" {
		return ErrEmptyModuleID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStorageClosed
	}
	s.docs[moduleID] = slices.Clone(doc)
	return nil
}

func (s *memStorage) Get(moduleID string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, false, ErrStorageClosed
	}
	doc, ok := s.docs[moduleID]
	return slices.Clone(doc), ok, nil
}

func (s *memStorage) Delete(moduleID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false, ErrStorageClosed
	}
	_, ok := s.docs[moduleID]
	delete(s.docs, moduleID)
	return ok, nil
}

func (s *memStorage) Read(ctx context.Context, cb ReadCallback) error {
	s.mu.RLock()
	if s.closed {
		s.mu.RUnlock()
		return ErrStorageClosed
	}
	ids := slices.Sorted(maps.Keys(s.docs))
	docs := make([][]byte, len(ids))
	for i, id := range ids {
		docs[i] = slices.Clone(s.docs[id])
	}
	s.mu.RUnlock()

	for i, id := range ids {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := cb(id, docs[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *memStorage) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return nil
}
