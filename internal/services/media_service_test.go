package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"signage-service/internal/models"
	"signage-service/internal/services"
	"signage-service/internal/testutil"
	"signage-service/internal/utils"
)

func newMediaService(t *testing.T) (*services.MediaService, *testutil.MediaRepo, *testutil.BlobStore) {
	t.Helper()
	repo := testutil.NewMediaRepo()
	store := testutil.NewBlobStore()
	return services.NewMediaService(repo, store, "midias"), repo, store
}

func TestMediaCreateThenList(t *testing.T) {
	svc, _, store := newMediaService(t)
	ctx := context.Background()

	media, err := svc.Create(ctx, "clip.mp4", "video/mp4", []byte("frames"))
	require.NoError(t, err)
	require.Equal(t, "clip.mp4", media.Name)
	require.Equal(t, models.TypeVideo, media.Type)
	require.NotEmpty(t, media.ID)
	require.False(t, media.CreatedAt.IsZero())

	key, err := store.KeyFromURL(media.URL)
	require.NoError(t, err)
	data, ok := store.Bytes(key)
	require.True(t, ok)
	require.Equal(t, []byte("frames"), data)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, media.ID, list[0].ID)
}

func TestMediaTypeDerivation(t *testing.T) {
	svc, _, _ := newMediaService(t)
	ctx := context.Background()

	cases := []struct {
		ct   string
		want models.MediaType
	}{
		{"image/png", models.TypeImage},
		{"video/webm", models.TypeVideo},
		{"text/plain", models.TypeText},
		{"application/pdf", models.TypeText},
	}
	for _, tc := range cases {
		m, err := svc.Create(ctx, "f", tc.ct, []byte("x"))
		require.NoError(t, err)
		require.Equal(t, tc.want, m.Type, tc.ct)
	}
}

func TestMediaCreateRejectsEmptyFile(t *testing.T) {
	svc, _, store := newMediaService(t)

	_, err := svc.Create(context.Background(), "a.png", "image/png", nil)
	require.ErrorIs(t, err, utils.ErrInvalidInput)
	require.Zero(t, store.Len())
}

func TestMediaCreateStorageFailure(t *testing.T) {
	svc, repo, store := newMediaService(t)
	store.ErrUpload = errors.New("bucket gone")

	_, err := svc.Create(context.Background(), "a.png", "image/png", []byte("x"))
	require.ErrorIs(t, err, utils.ErrStorage)

	list, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Empty(t, list)
}

type failingInsertRepo struct {
	services.MediaRepository
}

func (f *failingInsertRepo) Insert(ctx context.Context, m *models.Media) error {
	return errors.New("write concern failed")
}

func TestMediaCreateInsertFailureOrphansBytes(t *testing.T) {
	repo := testutil.NewMediaRepo()
	store := testutil.NewBlobStore()
	svc := services.NewMediaService(&failingInsertRepo{MediaRepository: repo}, store, "midias")

	_, err := svc.Create(context.Background(), "a.txt", "text/plain", []byte("x"))
	require.ErrorIs(t, err, utils.ErrPersistence)

	// the uploaded bytes stay behind: the partial-failure window is real
	require.Equal(t, 1, store.Len())
	list, lerr := repo.FindAll(context.Background())
	require.NoError(t, lerr)
	require.Empty(t, list)
}

func TestMediaDeleteRemovesRecordAndBytes(t *testing.T) {
	svc, _, store := newMediaService(t)
	ctx := context.Background()

	media, err := svc.Create(ctx, "a.txt", "text/plain", []byte("x"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, media.ID))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, list)
	require.Zero(t, store.Len())
}

func TestMediaDeleteMissingHasNoSideEffect(t *testing.T) {
	svc, _, store := newMediaService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "a.txt", "text/plain", []byte("x"))
	require.NoError(t, err)

	err = svc.Delete(ctx, "nope")
	require.ErrorIs(t, err, utils.ErrNotFound)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, 1, store.Len())
}

func TestMediaDeleteUnderivableURL(t *testing.T) {
	svc, repo, _ := newMediaService(t)
	ctx := context.Background()

	// record whose URL does not match the store layout
	require.NoError(t, repo.Insert(ctx, &models.Media{
		ID:   "m1",
		Name: "ext.png",
		URL:  "https://elsewhere.example/ext.png",
		Type: models.TypeImage,
	}))

	err := svc.Delete(ctx, "m1")
	require.ErrorIs(t, err, utils.ErrNotFound)
}

func TestMediaDeleteStorageFailure(t *testing.T) {
	svc, _, store := newMediaService(t)
	ctx := context.Background()

	media, err := svc.Create(ctx, "a.txt", "text/plain", []byte("x"))
	require.NoError(t, err)

	store.ErrDelete = errors.New("backend down")
	err = svc.Delete(ctx, media.ID)
	require.ErrorIs(t, err, utils.ErrStorage)

	// record must still be there: delete aborts before touching it
	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
}
