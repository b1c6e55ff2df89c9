package services

import (
	"context"
	"fmt"

	"signage-service/internal/models"
	"signage-service/internal/utils"
)

// PlaylistService manages ordered collections of media snapshots. Items are
// denormalized copies taken at append time; deleting the source media later
// leaves them in place.
type PlaylistService struct {
	repo  PlaylistRepository
	media MediaRepository
}

func NewPlaylistService(repo PlaylistRepository, media MediaRepository) *PlaylistService {
	return &PlaylistService{repo: repo, media: media}
}

func (s *PlaylistService) Create(ctx context.Context, name string) (*models.Playlist, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name required", utils.ErrInvalidInput)
	}
	p := &models.Playlist{
		ID:     utils.NewID(),
		Name:   name,
		Midias: []models.PlaylistItem{},
	}
	if err := s.repo.Insert(ctx, p); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrPersistence, err)
	}
	return p, nil
}

func (s *PlaylistService) Get(ctx context.Context, id string) (*models.Playlist, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapLookup(err)
	}
	return p, nil
}

func (s *PlaylistService) List(ctx context.Context) ([]models.Playlist, error) {
	out, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrPersistence, err)
	}
	return out, nil
}

// Delete removes the playlist only. Monitors still referencing it keep a
// dangling reference, and the media it snapshotted is untouched.
func (s *PlaylistService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapLookup(err)
	}
	return nil
}

// AppendItems appends items to the end of the playlist in the given order
// with a single document write. Item ids are assigned here when absent.
func (s *PlaylistService) AppendItems(ctx context.Context, id string, items []models.PlaylistItem) (*models.Playlist, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no items", utils.ErrInvalidInput)
	}
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = utils.NewID()
		}
	}
	p, err := s.repo.PushItems(ctx, id, items)
	if err != nil {
		return nil, mapLookup(err)
	}
	return p, nil
}

// AssociateMedia snapshots an existing media record into the playlist and
// keeps the originating media id on the entry.
func (s *PlaylistService) AssociateMedia(ctx context.Context, playlistID, mediaID string) (*models.Media, error) {
	media, err := s.media.FindByID(ctx, mediaID)
	if err != nil {
		return nil, mapLookup(err)
	}
	item := models.PlaylistItem{
		ID:      utils.NewID(),
		Name:    media.Name,
		URL:     media.URL,
		MediaID: media.ID,
	}
	if _, err := s.repo.PushItems(ctx, playlistID, []models.PlaylistItem{item}); err != nil {
		return nil, mapLookup(err)
	}
	return media, nil
}

// RemoveItem drops the entry with the given item id. A missing entry is a
// no-op, not an error; only a missing playlist is.
func (s *PlaylistService) RemoveItem(ctx context.Context, playlistID, itemID string) (*models.Playlist, error) {
	p, err := s.repo.PullItem(ctx, playlistID, itemID)
	if err != nil {
		return nil, mapLookup(err)
	}
	return p, nil
}
