package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"signage-service/internal/models"
	"signage-service/internal/services"
	"signage-service/internal/testutil"
	"signage-service/internal/utils"
)

func newPlaylistService(t *testing.T) (*services.PlaylistService, *testutil.MediaRepo) {
	t.Helper()
	media := testutil.NewMediaRepo()
	return services.NewPlaylistService(testutil.NewPlaylistRepo(), media), media
}

func TestPlaylistCreateStartsEmpty(t *testing.T) {
	svc, _ := newPlaylistService(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, "Ads")
	require.NoError(t, err)
	require.Equal(t, "Ads", p.Name)
	require.NotNil(t, p.Midias)
	require.Empty(t, p.Midias)

	_, err = svc.Create(ctx, "")
	require.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestPlaylistAppendPreservesOrder(t *testing.T) {
	svc, _ := newPlaylistService(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, "Ads")
	require.NoError(t, err)

	// single append
	p1, err := svc.AppendItems(ctx, p.ID, []models.PlaylistItem{{Name: "a.jpg", URL: "/u/a.jpg"}})
	require.NoError(t, err)
	require.Len(t, p1.Midias, 1)

	// batch append lands after existing entries, in the given order
	p2, err := svc.AppendItems(ctx, p.ID, []models.PlaylistItem{
		{Name: "b.mp4", URL: "/u/b.mp4"},
		{Name: "c.png", URL: "/u/c.png"},
	})
	require.NoError(t, err)
	require.Len(t, p2.Midias, 3)
	require.Equal(t, []string{"/u/a.jpg", "/u/b.mp4", "/u/c.png"}, urlsOf(p2))

	for _, item := range p2.Midias {
		require.NotEmpty(t, item.ID)
	}
}

func TestPlaylistAppendMissingPlaylist(t *testing.T) {
	svc, _ := newPlaylistService(t)

	_, err := svc.AppendItems(context.Background(), "nope", []models.PlaylistItem{{Name: "a", URL: "/a"}})
	require.ErrorIs(t, err, utils.ErrNotFound)
}

func TestPlaylistAppendRejectsEmptyBatch(t *testing.T) {
	svc, _ := newPlaylistService(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, "Ads")
	require.NoError(t, err)

	_, err = svc.AppendItems(ctx, p.ID, nil)
	require.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestPlaylistRemoveItem(t *testing.T) {
	svc, _ := newPlaylistService(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, "Ads")
	require.NoError(t, err)
	p, err = svc.AppendItems(ctx, p.ID, []models.PlaylistItem{
		{Name: "a", URL: "/a"},
		{Name: "b", URL: "/b"},
	})
	require.NoError(t, err)

	got, err := svc.RemoveItem(ctx, p.ID, p.Midias[0].ID)
	require.NoError(t, err)
	require.Len(t, got.Midias, 1)
	require.Equal(t, "/b", got.Midias[0].URL)

	// removing an absent item id is a no-op, not an error
	got, err = svc.RemoveItem(ctx, p.ID, "absent")
	require.NoError(t, err)
	require.Len(t, got.Midias, 1)

	_, err = svc.RemoveItem(ctx, "nope", "whatever")
	require.ErrorIs(t, err, utils.ErrNotFound)
}

func TestPlaylistAssociateMediaSnapshots(t *testing.T) {
	svc, media := newPlaylistService(t)
	ctx := context.Background()

	require.NoError(t, media.Insert(ctx, &models.Media{
		ID:   "m1",
		Name: "spot.mp4",
		URL:  "https://blobs.test/midias%2Fspot.mp4",
		Type: models.TypeVideo,
	}))
	p, err := svc.Create(ctx, "Ads")
	require.NoError(t, err)

	got, err := svc.AssociateMedia(ctx, p.ID, "m1")
	require.NoError(t, err)
	require.Equal(t, "m1", got.ID)

	updated, err := svc.Get(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, updated.Midias, 1)
	require.Equal(t, "spot.mp4", updated.Midias[0].Name)
	require.Equal(t, "m1", updated.Midias[0].MediaID)

	_, err = svc.AssociateMedia(ctx, p.ID, "missing")
	require.ErrorIs(t, err, utils.ErrNotFound)

	_, err = svc.AssociateMedia(ctx, "nope", "m1")
	require.ErrorIs(t, err, utils.ErrNotFound)
}

func TestPlaylistDeleteDoesNotTouchMedia(t *testing.T) {
	svc, media := newPlaylistService(t)
	ctx := context.Background()

	require.NoError(t, media.Insert(ctx, &models.Media{ID: "m1", Name: "a", URL: "/a"}))
	p, err := svc.Create(ctx, "Ads")
	require.NoError(t, err)
	_, err = svc.AssociateMedia(ctx, p.ID, "m1")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, p.ID))
	_, err = svc.Get(ctx, p.ID)
	require.ErrorIs(t, err, utils.ErrNotFound)

	// the referenced media record survives the playlist
	m, err := media.FindByID(ctx, "m1")
	require.NoError(t, err)
	require.Equal(t, "a", m.Name)

	require.ErrorIs(t, svc.Delete(ctx, "nope"), utils.ErrNotFound)
}

func urlsOf(p *models.Playlist) []string {
	out := make([]string, 0, len(p.Midias))
	for _, it := range p.Midias {
		out = append(out, it.URL)
	}
	return out
}
