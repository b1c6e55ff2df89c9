package services

import (
	"context"
	"errors"
	"fmt"

	"signage-service/internal/models"
	"signage-service/internal/utils"
)

// Repositories the services run against. The mongo implementations live in
// internal/repository; tests substitute in-memory fakes.

type MediaRepository interface {
	Insert(ctx context.Context, m *models.Media) error
	FindByID(ctx context.Context, id string) (*models.Media, error)
	FindAll(ctx context.Context) ([]models.Media, error)
	Delete(ctx context.Context, id string) error
}

type PlaylistRepository interface {
	Insert(ctx context.Context, p *models.Playlist) error
	FindByID(ctx context.Context, id string) (*models.Playlist, error)
	FindAll(ctx context.Context) ([]models.Playlist, error)
	Delete(ctx context.Context, id string) error
	PushItems(ctx context.Context, id string, items []models.PlaylistItem) (*models.Playlist, error)
	PullItem(ctx context.Context, id, itemID string) (*models.Playlist, error)
}

type MenuRepository interface {
	Insert(ctx context.Context, item *models.MenuItem) error
	InsertMany(ctx context.Context, items []models.MenuItem) error
	FindAll(ctx context.Context) ([]models.MenuItem, error)
	UpdatePrice(ctx context.Context, id string, price float64) (*models.MenuItem, error)
	Delete(ctx context.Context, id string) error
}

type MonitorRepository interface {
	Insert(ctx context.Context, m *models.Monitor) error
	FindByID(ctx context.Context, id string) (*models.Monitor, error)
	FindAll(ctx context.Context) ([]models.Monitor, error)
	SetPlaylist(ctx context.Context, id, playlistID string) (*models.Monitor, error)
	Delete(ctx context.Context, id string) error
}

// mapLookup passes a repository miss through as ErrNotFound and wraps
// anything else as ErrPersistence. Repositories translate their driver's
// miss error before it gets here.
func mapLookup(err error) error {
	if errors.Is(err, utils.ErrNotFound) {
		return err
	}
	return fmt.Errorf("%w: %v", utils.ErrPersistence, err)
}
