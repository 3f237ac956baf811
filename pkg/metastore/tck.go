/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package metastore

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// TechnologyCompatibilityKit test suit. Storage should be open and is not closed by kit.
func TechnologyCompatibilityKit(t *testing.T, storage IDocStorage) {
	t.Run("TestDocStorage_PutGet", func(t *testing.T) { testDocStorage_PutGet(t, storage) })
	t.Run("TestDocStorage_Delete", func(t *testing.T) { testDocStorage_Delete(t, storage) })
	t.Run("TestDocStorage_Read", func(t *testing.T) { testDocStorage_Read(t, storage) })
}

func testDocStorage_PutGet(t *testing.T, storage IDocStorage) {
	moduleID := uuid.NewString()

	t.Run("should get not existing", func(t *testing.T) {
		require := require.New(t)
		doc, ok, err := storage.Get(moduleID)
		require.NoError(err)
		require.False(ok)
		require.Nil(doc)
	})

	t.Run("must be ok to put and get", func(t *testing.T) {
		require := require.New(t)
		require.NoError(storage.Put(moduleID, []byte(`{"name":"first"}`)))

		doc, ok, err := storage.Get(moduleID)
		require.NoError(err)
		require.True(ok)
		require.Equal(`{"name":"first"}`, string(doc))

		t.Run("returned document should be a copy", func(t *testing.T) {
			doc[0] = '['
			doc, _, err := storage.Get(moduleID)
			require.NoError(err)
			require.Equal(`{"name":"first"}`, string(doc))
		})
	})

	t.Run("must be ok to overwrite", func(t *testing.T) {
		require := require.New(t)
		require.NoError(storage.Put(moduleID, []byte(`{"name":"second"}`)))

		doc, ok, err := storage.Get(moduleID)
		require.NoError(err)
		require.True(ok)
		require.Equal(`{"name":"second"}`, string(doc))
	})

	t.Run("should be error if module ID is empty", func(t *testing.T) {
		require.ErrorIs(t, storage.Put("", []byte("{}")), ErrEmptyModuleID)
	})
}

func testDocStorage_Delete(t *testing.T, storage IDocStorage) {
	require := require.New(t)
	moduleID := uuid.NewString()

	ok, err := storage.Delete(moduleID)
	require.NoError(err)
	require.False(ok, "not existing document should not be deleted")

	require.NoError(storage.Put(moduleID, []byte("{}")))
	ok, err = storage.Delete(moduleID)
	require.NoError(err)
	require.True(ok)

	_, ok, err = storage.Get(moduleID)
	require.NoError(err)
	require.False(ok)
}

func testDocStorage_Read(t *testing.T, storage IDocStorage) {
	prefix := uuid.NewString()
	ids := []string{prefix + "/c", prefix + "/a", prefix + "/b"}
	for _, id := range ids {
		require.NoError(t, storage.Put(id, []byte(id)))
	}

	own := func(id string) bool { return len(id) > len(prefix) && id[:len(prefix)] == prefix }

	t.Run("must be ok to read sorted by module ID", func(t *testing.T) {
		require := require.New(t)
		read := []string{}
		err := storage.Read(context.Background(), func(moduleID string, doc []byte) error {
			if own(moduleID) {
				require.Equal(moduleID, string(doc))
				read = append(read, moduleID)
			}
			return nil
		})
		require.NoError(err)
		require.Equal(slices.Sorted(slices.Values(ids)), read)
	})

	t.Run("should stop on callback error", func(t *testing.T) {
		require := require.New(t)
		testErr := errors.New("test error")
		cnt := 0
		err := storage.Read(context.Background(), func(string, []byte) error {
			cnt++
			return testErr
		})
		require.ErrorIs(err, testErr)
		require.Equal(1, cnt)
	})

	t.Run("should stop on cancelled context", func(t *testing.T) {
		require := require.New(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := storage.Read(ctx, func(string, []byte) error { return nil })
		require.ErrorIs(err, context.Canceled)
	})
}
