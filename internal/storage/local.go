package storage

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore writes assets under a directory on disk. The directory is
// expected to be served statically at baseURL by the surrounding server.
type LocalStore struct {
	dir  string
	root string
}

func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStore{
		dir:  dir,
		root: strings.TrimSuffix(baseURL, "/") + "/",
	}, nil
}

func (s *LocalStore) Upload(ctx context.Context, key, contentType string, data []byte) (string, error) {
	path := filepath.Join(s.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return s.root + url.PathEscape(key), nil
}

func (s *LocalStore) Delete(ctx context.Context, key string) error {
	return os.Remove(filepath.Join(s.dir, filepath.FromSlash(key)))
}

func (s *LocalStore) KeyFromURL(rawURL string) (string, error) {
	return keyFromURL(rawURL, s.root)
}
