package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"signage-service/internal/models"
	"signage-service/internal/utils"
)

type MenuRepo struct {
	col *mongo.Collection
}

func NewMenuRepo(db *mongo.Database) *MenuRepo {
	return &MenuRepo{col: db.Collection("cardapio")}
}

func (r *MenuRepo) Insert(ctx context.Context, item *models.MenuItem) error {
	_, err := r.col.InsertOne(ctx, item)
	return err
}

func (r *MenuRepo) InsertMany(ctx context.Context, items []models.MenuItem) error {
	docs := make([]interface{}, 0, len(items))
	for i := range items {
		docs = append(docs, items[i])
	}
	_, err := r.col.InsertMany(ctx, docs)
	return err
}

func (r *MenuRepo) FindAll(ctx context.Context) ([]models.MenuItem, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.MenuItem{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdatePrice sets the item's price and returns the updated item.
func (r *MenuRepo) UpdatePrice(ctx context.Context, id string, price float64) (*models.MenuItem, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": bson.M{"preco": price}}
	var item models.MenuItem
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&item); err != nil {
		return nil, notFoundOr(err)
	}
	return &item, nil
}

func (r *MenuRepo) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}
