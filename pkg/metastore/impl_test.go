/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package metastore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBasicUsage(t *testing.T) {
	require := require.New(t)

	params := prepareTestData()
	defer cleanupTestData(params)

	storage, err := ProvideBBolt(params)
	require.NoError(err)

	require.NoError(storage.Put("people-module", []byte(`{"modelName":"people"}`)))

	doc, ok, err := storage.Get("people-module")
	require.NoError(err)
	require.True(ok)
	require.JSONEq(`{"modelName":"people"}`, string(doc))

	require.NoError(storage.Close())

	t.Run("must be ok to reopen storage", func(t *testing.T) {
		storage, err := ProvideBBolt(params)
		require.NoError(err)
		defer storage.Close()

		doc, ok, err := storage.Get("people-module")
		require.NoError(err)
		require.True(ok)
		require.JSONEq(`{"modelName":"people"}`, string(doc))
	})
}

func TestTCK(t *testing.T) {
	t.Run("mem", func(t *testing.T) {
		storage := ProvideMem()
		defer storage.Close()
		TechnologyCompatibilityKit(t, storage)
	})

	t.Run("bbolt", func(t *testing.T) {
		params := prepareTestData()
		defer cleanupTestData(params)

		storage, err := ProvideBBolt(params)
		require.NoError(t, err)
		defer storage.Close()
		TechnologyCompatibilityKit(t, storage)
	})
}

func TestProvideBBolt(t *testing.T) {
	require := require.New(t)

	t.Run("must be ok to create nested directory and custom file", func(t *testing.T) {
		params := prepareTestData()
		defer cleanupTestData(params)

		params.DBDir = filepath.Join(params.DBDir, "nested", "dir")
		params.DBName = "custom.db"

		storage, err := ProvideBBolt(params)
		require.NoError(err)
		defer storage.Close()

		_, err = os.Stat(filepath.Join(params.DBDir, "custom.db"))
		require.NoError(err)
	})

	t.Run("must be ok to use default file name", func(t *testing.T) {
		params := prepareTestData()
		defer cleanupTestData(params)

		storage, err := ProvideBBolt(params)
		require.NoError(err)
		defer storage.Close()

		_, err = os.Stat(filepath.Join(params.DBDir, DefaultDBName))
		require.NoError(err)
	})

	t.Run("should be error if path is a directory", func(t *testing.T) {
		params := prepareTestData()
		defer cleanupTestData(params)

		require.NoError(os.Mkdir(filepath.Join(params.DBDir, DefaultDBName), dirMode))
		_, err := ProvideBBolt(params)
		require.Error(err)
	})
}

func TestClosedStorage(t *testing.T) {
	params := prepareTestData()
	defer cleanupTestData(params)

	bboltStorage, err := ProvideBBolt(params)
	require.NoError(t, err)

	tests := map[string]IDocStorage{
		"mem":   ProvideMem(),
		"bbolt": bboltStorage,
	}
	for name, storage := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)
			require.NoError(storage.Close())

			require.ErrorIs(storage.Put("m", []byte("{}")), ErrStorageClosed)
			_, _, err := storage.Get("m")
			require.ErrorIs(err, ErrStorageClosed)
			_, err = storage.Delete("m")
			require.ErrorIs(err, ErrStorageClosed)
			err = storage.Read(context.Background(), func(string, []byte) error { return nil })
			require.ErrorIs(err, ErrStorageClosed)
		})
	}
}

func prepareTestData() (params ParamsType) {
	dbDir, err := os.MkdirTemp("", "objmeta")
	if err != nil {
		panic(err)
	}
	params.DBDir = dbDir
	return
}

func cleanupTestData(params ParamsType) {
	if params.DBDir != "" {
		os.RemoveAll(params.DBDir)
	}
}
