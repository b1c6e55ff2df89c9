// Package testutil provides in-memory stand-ins for the repositories and
// the blob store, preserving their error semantics (utils.ErrNotFound on
// misses) so service and handler tests run without external backends.
package testutil

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"signage-service/internal/models"
	"signage-service/internal/utils"
)

type MediaRepo struct {
	mu    sync.Mutex
	order []string
	byID  map[string]models.Media
}

func NewMediaRepo() *MediaRepo {
	return &MediaRepo{byID: map[string]models.Media{}}
}

func (r *MediaRepo) Insert(ctx context.Context, m *models.Media) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[m.ID] = *m
	r.order = append(r.order, m.ID)
	return nil
}

func (r *MediaRepo) FindByID(ctx context.Context, id string) (*models.Media, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.byID[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	return &m, nil
}

func (r *MediaRepo) FindAll(ctx context.Context) ([]models.Media, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Media{}
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *MediaRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return utils.ErrNotFound
	}
	delete(r.byID, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

type PlaylistRepo struct {
	mu    sync.Mutex
	order []string
	byID  map[string]models.Playlist
}

func NewPlaylistRepo() *PlaylistRepo {
	return &PlaylistRepo{byID: map[string]models.Playlist{}}
}

func (r *PlaylistRepo) Insert(ctx context.Context, p *models.Playlist) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	cp.Midias = append([]models.PlaylistItem{}, p.Midias...)
	r.byID[p.ID] = cp
	r.order = append(r.order, p.ID)
	return nil
}

func (r *PlaylistRepo) FindByID(ctx context.Context, id string) (*models.Playlist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	cp := p
	cp.Midias = append([]models.PlaylistItem{}, p.Midias...)
	return &cp, nil
}

func (r *PlaylistRepo) FindAll(ctx context.Context) ([]models.Playlist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Playlist{}
	for _, id := range r.order {
		p := r.byID[id]
		p.Midias = append([]models.PlaylistItem{}, p.Midias...)
		out = append(out, p)
	}
	return out, nil
}

func (r *PlaylistRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return utils.ErrNotFound
	}
	delete(r.byID, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *PlaylistRepo) PushItems(ctx context.Context, id string, items []models.PlaylistItem) (*models.Playlist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	// id may alias a fasthttp buffer that is recycled after the request;
	// clone before it becomes a map key.
	id = strings.Clone(id)
	p, ok := r.byID[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	p.Midias = append(p.Midias, items...)
	r.byID[id] = p
	cp := p
	cp.Midias = append([]models.PlaylistItem{}, p.Midias...)
	return &cp, nil
}

func (r *PlaylistRepo) PullItem(ctx context.Context, id, itemID string) (*models.Playlist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id = strings.Clone(id)
	p, ok := r.byID[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	kept := []models.PlaylistItem{}
	for _, it := range p.Midias {
		if it.ID != itemID {
			kept = append(kept, it)
		}
	}
	p.Midias = kept
	r.byID[id] = p
	cp := p
	cp.Midias = append([]models.PlaylistItem{}, p.Midias...)
	return &cp, nil
}

type MonitorRepo struct {
	mu    sync.Mutex
	order []string
	byID  map[string]models.Monitor
}

func NewMonitorRepo() *MonitorRepo {
	return &MonitorRepo{byID: map[string]models.Monitor{}}
}

func (r *MonitorRepo) Insert(ctx context.Context, m *models.Monitor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[m.ID] = *m
	r.order = append(r.order, m.ID)
	return nil
}

func (r *MonitorRepo) FindByID(ctx context.Context, id string) (*models.Monitor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.byID[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	return &m, nil
}

func (r *MonitorRepo) FindAll(ctx context.Context) ([]models.Monitor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Monitor{}
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *MonitorRepo) SetPlaylist(ctx context.Context, id, playlistID string) (*models.Monitor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id = strings.Clone(id)
	m, ok := r.byID[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	m.PlaylistID = strings.Clone(playlistID)
	r.byID[id] = m
	return &m, nil
}

func (r *MonitorRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return utils.ErrNotFound
	}
	delete(r.byID, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

type MenuRepo struct {
	mu    sync.Mutex
	order []string
	byID  map[string]models.MenuItem
}

func NewMenuRepo() *MenuRepo {
	return &MenuRepo{byID: map[string]models.MenuItem{}}
}

func (r *MenuRepo) Insert(ctx context.Context, item *models.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[item.ID] = *item
	r.order = append(r.order, item.ID)
	return nil
}

func (r *MenuRepo) InsertMany(ctx context.Context, items []models.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range items {
		r.byID[item.ID] = item
		r.order = append(r.order, item.ID)
	}
	return nil
}

func (r *MenuRepo) FindAll(ctx context.Context) ([]models.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.MenuItem{}
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *MenuRepo) UpdatePrice(ctx context.Context, id string, price float64) (*models.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id = strings.Clone(id)
	item, ok := r.byID[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	item.Price = price
	r.byID[id] = item
	return &item, nil
}

func (r *MenuRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return utils.ErrNotFound
	}
	delete(r.byID, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// BlobStore keeps uploaded bytes in a map, addressed the same way the real
// stores are: root + percent-encoded key. Set ErrUpload/ErrDelete to inject
// backend failures.
type BlobStore struct {
	mu        sync.Mutex
	root      string
	objects   map[string][]byte
	ErrUpload error
	ErrDelete error
}

func NewBlobStore() *BlobStore {
	return &BlobStore{root: "https://blobs.test/", objects: map[string][]byte{}}
}

func (s *BlobStore) Upload(ctx context.Context, key, contentType string, data []byte) (string, error) {
	if s.ErrUpload != nil {
		return "", s.ErrUpload
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = append([]byte{}, data...)
	return s.root + url.PathEscape(key), nil
}

func (s *BlobStore) Delete(ctx context.Context, key string) error {
	if s.ErrDelete != nil {
		return s.ErrDelete
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.objects[key]; !ok {
		return fmt.Errorf("no such key %q", key)
	}
	delete(s.objects, key)
	return nil
}

func (s *BlobStore) KeyFromURL(rawURL string) (string, error) {
	clean, _, _ := strings.Cut(rawURL, "?")
	if !strings.HasPrefix(clean, s.root) {
		return "", fmt.Errorf("url %q outside store", rawURL)
	}
	return url.PathUnescape(strings.TrimPrefix(clean, s.root))
}

// Bytes returns the stored object, if any.
func (s *BlobStore) Bytes(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.objects[key]
	return b, ok
}

// Len is the number of stored objects.
func (s *BlobStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}
