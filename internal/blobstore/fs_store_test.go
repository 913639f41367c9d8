package blobstore

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func putString(t *testing.T, store Store, key, body string) {
	t.Helper()
	require.NoError(t, store.Put(context.Background(), key, strings.NewReader(body)))
}

func TestFSStore_PutThenGet(t *testing.T) {
	store := NewMemStore()
	putString(t, store, "bankpulse/chunks/chunk_00000.csv", "step,customer\n")

	rc, err := store.Get(context.Background(), "bankpulse/chunks/chunk_00000.csv")
	require.NoError(t, err)
	defer rc.Close()

	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "step,customer\n", string(body))
}

func TestFSStore_GetMissing(t *testing.T) {
	store := NewMemStore()

	_, err := store.Get(context.Background(), "bankpulse/chunks/missing.csv")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFSStore_ListFiltersByPrefix(t *testing.T) {
	store := NewMemStore()
	putString(t, store, "bankpulse/chunks/chunk_00001.csv", "b")
	putString(t, store, "bankpulse/chunks/chunk_00000.csv", "a")
	putString(t, store, "bankpulse/detections/detection_0.csv", "d")

	keys, err := store.List(context.Background(), "bankpulse/chunks")
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		"bankpulse/chunks/chunk_00000.csv",
		"bankpulse/chunks/chunk_00001.csv",
	}, keys)
}

func TestFSStore_ListPartialPrefix(t *testing.T) {
	store := NewMemStore()
	putString(t, store, "bankpulse/detections/detection_0.csv", "d")
	putString(t, store, "bankpulse/detections/other.csv", "o")

	keys, err := store.List(context.Background(), "bankpulse/detections/detection_")
	require.NoError(t, err)

	assert.Equal(t, []string{"bankpulse/detections/detection_0.csv"}, keys)
}

func TestFSStore_ListMissingPrefixIsEmpty(t *testing.T) {
	store := NewMemStore()

	keys, err := store.List(context.Background(), "bankpulse/chunks")

	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestFSStore_ListSkipsTemporaryFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewFSStore(fs, "/data")
	require.NoError(t, afero.WriteFile(fs, "/data/bankpulse/chunks/.chunk_00002.csv.tmp", []byte("x"), 0o644))
	putString(t, store, "bankpulse/chunks/chunk_00000.csv", "a")

	keys, err := store.List(context.Background(), "bankpulse/chunks")
	require.NoError(t, err)

	assert.Equal(t, []string{"bankpulse/chunks/chunk_00000.csv"}, keys)
}

func TestFSStore_HonoursCancelledContext(t *testing.T) {
	store := NewMemStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := store.Put(ctx, "a.csv", strings.NewReader("a"))

	assert.ErrorIs(t, err, context.Canceled)
}

func TestListSorted(t *testing.T) {
	store := NewMemStore()
	putString(t, store, "bankpulse/chunks/chunk_00010.csv", "c")
	putString(t, store, "bankpulse/chunks/chunk_00002.csv", "b")
	putString(t, store, "bankpulse/chunks/chunk_00001.csv", "a")
	putString(t, store, "bankpulse/chunks/readme.txt", "r")

	keys, err := ListSorted(context.Background(), store, "bankpulse/chunks", ".csv")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"bankpulse/chunks/chunk_00001.csv",
		"bankpulse/chunks/chunk_00002.csv",
		"bankpulse/chunks/chunk_00010.csv",
	}, keys)
}

func TestJoinKey(t *testing.T) {
	assert.Equal(t, "bankpulse/detections/detection_3.csv", JoinKey("bankpulse/detections/", "/detection_3.csv"))
	assert.Equal(t, "a/b", JoinKey("", "a", "", "b"))
}
