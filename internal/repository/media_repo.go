package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"signage-service/internal/models"
	"signage-service/internal/utils"
)

type MediaRepo struct {
	col *mongo.Collection
}

func NewMediaRepo(db *mongo.Database) *MediaRepo {
	return &MediaRepo{col: db.Collection("midias")}
}

func (r *MediaRepo) Insert(ctx context.Context, m *models.Media) error {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	_, err := r.col.InsertOne(ctx, m)
	return err
}

func (r *MediaRepo) FindByID(ctx context.Context, id string) (*models.Media, error) {
	var m models.Media
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&m); err != nil {
		return nil, notFoundOr(err)
	}
	return &m, nil
}

func (r *MediaRepo) FindAll(ctx context.Context) ([]models.Media, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Media{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MediaRepo) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}
