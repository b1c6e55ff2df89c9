package services

import (
	"context"
	"fmt"

	"signage-service/internal/models"
	"signage-service/internal/utils"
)

// MonitorService manages display endpoints. A monitor holds at most one
// playlist reference; assignment is last-write-wins and never verifies the
// playlist exists.
type MonitorService struct {
	repo      MonitorRepository
	playlists PlaylistRepository
}

func NewMonitorService(repo MonitorRepository, playlists PlaylistRepository) *MonitorService {
	return &MonitorService{repo: repo, playlists: playlists}
}

func (s *MonitorService) Create(ctx context.Context, name string) (*models.Monitor, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name required", utils.ErrInvalidInput)
	}
	m := &models.Monitor{ID: utils.NewID(), Name: name}
	if err := s.repo.Insert(ctx, m); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrPersistence, err)
	}
	return m, nil
}

func (s *MonitorService) List(ctx context.Context) ([]models.MonitorView, error) {
	monitors, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrPersistence, err)
	}
	out := make([]models.MonitorView, 0, len(monitors))
	for i := range monitors {
		out = append(out, s.resolve(ctx, &monitors[i]))
	}
	return out, nil
}

func (s *MonitorService) Get(ctx context.Context, id string) (*models.MonitorView, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapLookup(err)
	}
	view := s.resolve(ctx, m)
	return &view, nil
}

func (s *MonitorService) AssignPlaylist(ctx context.Context, monitorID, playlistID string) (*models.MonitorView, error) {
	if playlistID == "" {
		return nil, fmt.Errorf("%w: playlistId required", utils.ErrInvalidInput)
	}
	m, err := s.repo.SetPlaylist(ctx, monitorID, playlistID)
	if err != nil {
		return nil, mapLookup(err)
	}
	view := s.resolve(ctx, m)
	return &view, nil
}

func (s *MonitorService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapLookup(err)
	}
	return nil
}

// resolve expands the playlist reference at read time. A dangling or unset
// reference resolves to nil rather than an error.
func (s *MonitorService) resolve(ctx context.Context, m *models.Monitor) models.MonitorView {
	view := models.MonitorView{ID: m.ID, Name: m.Name}
	if m.PlaylistID == "" {
		return view
	}
	if p, err := s.playlists.FindByID(ctx, m.PlaylistID); err == nil {
		view.Playlist = p
	}
	return view
}
