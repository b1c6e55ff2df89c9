package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"signage-service/internal/models"
	"signage-service/internal/utils"
)

type PlaylistRepo struct {
	col *mongo.Collection
}

func NewPlaylistRepo(db *mongo.Database) *PlaylistRepo {
	return &PlaylistRepo{col: db.Collection("playlists")}
}

func (r *PlaylistRepo) Insert(ctx context.Context, p *models.Playlist) error {
	if p.Midias == nil {
		p.Midias = []models.PlaylistItem{}
	}
	_, err := r.col.InsertOne(ctx, p)
	return err
}

func (r *PlaylistRepo) FindByID(ctx context.Context, id string) (*models.Playlist, error) {
	var p models.Playlist
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return nil, notFoundOr(err)
	}
	if p.Midias == nil {
		p.Midias = []models.PlaylistItem{}
	}
	return &p, nil
}

func (r *PlaylistRepo) FindAll(ctx context.Context) ([]models.Playlist, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Playlist{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	for i := range out {
		if out[i].Midias == nil {
			out[i].Midias = []models.PlaylistItem{}
		}
	}
	return out, nil
}

func (r *PlaylistRepo) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}

// PushItems appends items to the end of midias in one document write and
// returns the updated playlist. Existing entries are never touched.
func (r *PlaylistRepo) PushItems(ctx context.Context, id string, items []models.PlaylistItem) (*models.Playlist, error) {
	update := bson.M{"$push": bson.M{"midias": bson.M{"$each": items}}}
	return r.findOneAndUpdate(ctx, id, update)
}

// PullItem removes the entry with the given item id; removing a missing
// entry leaves the playlist unchanged and is not an error.
func (r *PlaylistRepo) PullItem(ctx context.Context, id, itemID string) (*models.Playlist, error) {
	update := bson.M{"$pull": bson.M{"midias": bson.M{"_id": itemID}}}
	return r.findOneAndUpdate(ctx, id, update)
}

func (r *PlaylistRepo) findOneAndUpdate(ctx context.Context, id string, update bson.M) (*models.Playlist, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var p models.Playlist
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&p); err != nil {
		return nil, notFoundOr(err)
	}
	if p.Midias == nil {
		p.Midias = []models.PlaylistItem{}
	}
	return &p, nil
}
