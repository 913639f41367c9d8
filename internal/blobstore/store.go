package blobstore

import (
	"context"
	"errors"
	"io"
	"sort"
	"strings"
)

var ErrNotFound = errors.New("blob not found")

// Store is the subset of object storage the pipeline relies on. Keys are
// slash separated regardless of the backing implementation.
type Store interface {
	List(ctx context.Context, prefix string) ([]string, error)
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Put(ctx context.Context, key string, body io.Reader) error
}

// ListSorted returns the keys under prefix ending in suffix, ascending.
func ListSorted(ctx context.Context, store Store, prefix, suffix string) ([]string, error) {
	keys, err := store.List(ctx, prefix)
	if err != nil {
		return nil, err
	}

	filtered := make([]string, 0, len(keys))
	for _, key := range keys {
		if suffix == "" || strings.HasSuffix(key, suffix) {
			filtered = append(filtered, key)
		}
	}
	sort.Strings(filtered)

	return filtered, nil
}

// JoinKey joins key segments with a single slash.
func JoinKey(parts ...string) string {
	trimmed := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.Trim(part, "/")
		if part != "" {
			trimmed = append(trimmed, part)
		}
	}
	return strings.Join(trimmed, "/")
}
