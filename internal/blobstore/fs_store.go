package blobstore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// FSStore keeps blobs as files below a root directory. Backed by afero so tests
// can run against an in-memory filesystem.
type FSStore struct {
	fs   afero.Fs
	root string
}

func NewFSStore(fs afero.Fs, root string) *FSStore {
	return &FSStore{
		fs:   fs,
		root: filepath.Clean(root),
	}
}

// NewOSStore returns an FSStore on the local disk.
func NewOSStore(root string) *FSStore {
	return NewFSStore(afero.NewOsFs(), root)
}

// NewMemStore returns an FSStore on an in-memory filesystem.
func NewMemStore() *FSStore {
	return NewFSStore(afero.NewMemMapFs(), "/")
}

func (s *FSStore) pathFor(key string) string {
	return filepath.Join(s.root, filepath.FromSlash(strings.TrimPrefix(key, "/")))
}

func (s *FSStore) List(ctx context.Context, prefix string) ([]string, error) {
	var keys []string

	prefix = strings.TrimPrefix(prefix, "/")
	dir := s.root
	if prefix != "" {
		dir = s.pathFor(prefix)
		if isDir, _ := afero.IsDir(s.fs, dir); !isDir {
			dir = s.pathFor(path.Dir(prefix))
		}
	}

	exists, err := afero.DirExists(s.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", dir, err)
	}
	if !exists {
		return keys, nil
	}

	err = afero.Walk(s.fs, dir, func(p string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(s.root, p)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)
		if strings.HasPrefix(key, prefix) && !strings.HasPrefix(info.Name(), ".") {
			keys = append(keys, key)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", prefix, err)
	}

	return keys, nil
}

func (s *FSStore) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := s.fs.Open(s.pathFor(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to open %s: %w", key, err)
	}

	return f, nil
}

// Put writes to a temporary file and renames it into place, so a concurrent
// List never observes a partially written blob.
func (s *FSStore) Put(ctx context.Context, key string, body io.Reader) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	target := s.pathFor(key)
	if err := s.fs.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", key, err)
	}

	tmp := filepath.Join(filepath.Dir(target), "."+filepath.Base(target)+".tmp")
	if err := afero.WriteReader(s.fs, tmp, body); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}

	if err := s.fs.Rename(tmp, target); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("failed to publish %s: %w", key, err)
	}

	return nil
}
