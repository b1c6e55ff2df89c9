package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"signage-service/internal/models"
	"signage-service/internal/utils"
)

type MonitorRepo struct {
	col *mongo.Collection
}

func NewMonitorRepo(db *mongo.Database) *MonitorRepo {
	return &MonitorRepo{col: db.Collection("monitores")}
}

func (r *MonitorRepo) Insert(ctx context.Context, m *models.Monitor) error {
	_, err := r.col.InsertOne(ctx, m)
	return err
}

func (r *MonitorRepo) FindByID(ctx context.Context, id string) (*models.Monitor, error) {
	var m models.Monitor
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&m); err != nil {
		return nil, notFoundOr(err)
	}
	return &m, nil
}

func (r *MonitorRepo) FindAll(ctx context.Context) ([]models.Monitor, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Monitor{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SetPlaylist replaces the monitor's playlist reference; the previous
// reference, if any, is dropped.
func (r *MonitorRepo) SetPlaylist(ctx context.Context, id, playlistID string) (*models.Monitor, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": bson.M{"playlist": playlistID}}
	var m models.Monitor
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&m); err != nil {
		return nil, notFoundOr(err)
	}
	return &m, nil
}

func (r *MonitorRepo) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}
