package services

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"time"

	"github.com/disintegration/imaging"

	"signage-service/internal/models"
	"signage-service/internal/storage"
	"signage-service/internal/utils"
)

// MediaService owns media records and their backing bytes. It is the only
// service that talks to the asset store. Create and Delete are two-phase
// (bytes then record) with no atomicity across the phases; each phase fails
// with its own error kind so partial states stay diagnosable.
type MediaService struct {
	repo      MediaRepository
	store     storage.BlobStore
	keyPrefix string
}

func NewMediaService(repo MediaRepository, store storage.BlobStore, keyPrefix string) *MediaService {
	return &MediaService{repo: repo, store: store, keyPrefix: keyPrefix}
}

func (s *MediaService) Create(ctx context.Context, name, contentType string, data []byte) (*models.Media, error) {
	if name == "" || len(data) == 0 {
		return nil, fmt.Errorf("%w: empty file", utils.ErrInvalidInput)
	}

	key := fmt.Sprintf("%s/%d-%s", s.keyPrefix, time.Now().UnixMilli(), name)
	url, err := s.store.Upload(ctx, key, contentType, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrStorage, err)
	}

	media := &models.Media{
		ID:          utils.NewID(),
		Name:        name,
		URL:         url,
		Type:        models.TypeFromContentType(contentType),
		Size:        int64(len(data)),
		ContentType: contentType,
		CreatedAt:   time.Now().UTC(),
	}

	// best-effort thumbnail for images
	if media.Type == models.TypeImage {
		if thumb, err := generateThumbnail(data); err == nil {
			if turl, err := s.store.Upload(ctx, key+"_thumb.jpg", "image/jpeg", thumb); err == nil {
				media.Thumbnail = turl
			}
		}
	}

	if err := s.repo.Insert(ctx, media); err != nil {
		// bytes are already in the store at this point and stay orphaned
		return nil, fmt.Errorf("%w: record insert after upload of %q: %v", utils.ErrPersistence, key, err)
	}
	return media, nil
}

func (s *MediaService) List(ctx context.Context) ([]models.Media, error) {
	out, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrPersistence, err)
	}
	return out, nil
}

func (s *MediaService) Delete(ctx context.Context, id string) error {
	media, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return mapLookup(err)
	}

	key, err := s.store.KeyFromURL(media.URL)
	if err != nil {
		return fmt.Errorf("%w: cannot derive storage key from %q", utils.ErrNotFound, media.URL)
	}
	if err := s.store.Delete(ctx, key); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrStorage, err)
	}
	if media.Thumbnail != "" {
		if tkey, err := s.store.KeyFromURL(media.Thumbnail); err == nil {
			_ = s.store.Delete(ctx, tkey)
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		// bytes are gone; the record now dangles until the caller retries
		return fmt.Errorf("%w: record delete after removing %q: %v", utils.ErrPersistence, key, err)
	}
	return nil
}

func generateThumbnail(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	thumb := imaging.Resize(img, 320, 0, imaging.Lanczos)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.JPEG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
