package services

import (
	"context"
	"fmt"

	"signage-service/internal/utils"
)

// QueryService serves composed read-only views for player clients.
type QueryService struct {
	monitors  MonitorRepository
	playlists PlaylistRepository
}

func NewQueryService(monitors MonitorRepository, playlists PlaylistRepository) *QueryService {
	return &QueryService{monitors: monitors, playlists: playlists}
}

// PlaylistURLs returns the media URLs of the playlist assigned to the
// monitor, in stored order. An unassigned monitor or a dangling playlist
// reference is a not-found, unlike an assigned but empty playlist.
func (s *QueryService) PlaylistURLs(ctx context.Context, monitorID string) ([]string, error) {
	monitor, err := s.monitors.FindByID(ctx, monitorID)
	if err != nil {
		return nil, mapLookup(err)
	}
	if monitor.PlaylistID == "" {
		return nil, fmt.Errorf("%w: monitor has no playlist assigned", utils.ErrNotFound)
	}
	playlist, err := s.playlists.FindByID(ctx, monitor.PlaylistID)
	if err != nil {
		return nil, mapLookup(err)
	}
	urls := make([]string, 0, len(playlist.Midias))
	for _, item := range playlist.Midias {
		urls = append(urls, item.URL)
	}
	return urls, nil
}
