package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"signage-service/internal/utils"
)

// Connect opens a mongo client and pings it before handing it out.
func Connect(uri, dbName string, logger *zap.SugaredLogger) (*mongo.Database, *mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		logger.Errorf("mongodb connection failed: %v", err)
		return nil, nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		logger.Errorf("mongodb ping failed: %v", err)
		return nil, nil, err
	}
	logger.Info("mongodb connected")
	return client.Database(dbName), client, nil
}

// notFoundOr translates a driver miss into utils.ErrNotFound so callers
// never see mongo.ErrNoDocuments; other errors pass through untouched.
func notFoundOr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return utils.ErrNotFound
	}
	return err
}
