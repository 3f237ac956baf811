/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package metastore

import (
	"context"
	"slices"

	"github.com/untillpro/goutils/logger"
	bolt "go.etcd.io/bbolt"
)

type bboltStorage struct {
	db *bolt.DB
}

func (s *bboltStorage) Put(moduleID string, doc []byte) error {
	if moduleID == "" {
		return ErrEmptyModuleID
	}
	err := s.db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(documentsBucketName))
		if err != nil {
			// notest
			return err
		}
		return bucket.Put([]byte(moduleID), doc)
	})
	if err == nil && logger.IsVerbose() {
		logger.Verbose("document stored:", moduleID)
	}
	return s.wrap(err)
}

func (s *bboltStorage) Get(moduleID string) (doc []byte, ok bool, err error) {
	err = s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(documentsBucketName))
		if bucket == nil {
			return ErrDocumentsBucketNotFound
		}
		if v := bucket.Get([]byte(moduleID)); v != nil {
			// value is valid only inside transaction
			doc, ok = slices.Clone(v), true
		}
		return nil
	})
	return doc, ok, s.wrap(err)
}

func (s *bboltStorage) Delete(moduleID string) (ok bool, err error) {
	err = s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(documentsBucketName))
		if bucket == nil {
			return ErrDocumentsBucketNotFound
		}
		key := []byte(moduleID)
		if bucket.Get(key) == nil {
			return nil
		}
		ok = true
		return bucket.Delete(key)
	})
	return ok, s.wrap(err)
}

func (s *bboltStorage) Read(ctx context.Context, cb ReadCallback) error {
	err := s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(documentsBucketName))
		if bucket == nil {
			return ErrDocumentsBucketNotFound
		}
		c := bucket.Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := cb(string(k), slices.Clone(v)); err != nil {
				return err
			}
		}
		return nil
	})
	return s.wrap(err)
}

func (s *bboltStorage) Close() error {
	return s.db.Close()
}

func (s *bboltStorage) wrap(err error) error {
	if err == bolt.ErrDatabaseNotOpen {
		return ErrStorageClosed
	}
	return err
}

func initDB(db *bolt.DB) error {
	return db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(documentsBucketName))
		return err
	})
}
