package storage

import (
	"context"
	"errors"
	"net/url"
	"strings"
)

// BlobStore is durable byte storage addressable by a generated key.
// Upload returns the public retrieval URL for the stored object; the key
// must be recoverable from that URL so that delete can find the bytes again.
type BlobStore interface {
	Upload(ctx context.Context, key, contentType string, data []byte) (string, error)
	Delete(ctx context.Context, key string) error
	KeyFromURL(rawURL string) (string, error)
}

// ErrBadURL means a URL does not match the store's layout and no object key
// can be derived from it.
var ErrBadURL = errors.New("url does not match storage layout")

// keyFromURL recovers an object key from a public URL: strip any query
// suffix, require the store's fixed root prefix, percent-decode the rest.
func keyFromURL(rawURL, root string) (string, error) {
	clean, _, _ := strings.Cut(rawURL, "?")
	if !strings.HasPrefix(clean, root) {
		return "", ErrBadURL
	}
	key, err := url.PathUnescape(strings.TrimPrefix(clean, root))
	if err != nil || key == "" {
		return "", ErrBadURL
	}
	return key, nil
}
