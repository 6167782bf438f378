package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ukydev/vehicle-tco/internal/models"
)

// SnapshotStore defines the interface for computation history.
type SnapshotStore interface {
	InsertSnapshot(ctx context.Context, snap models.CostSnapshot) error
	FindSnapshots(ctx context.Context, username string, limit int64) ([]models.CostSnapshot, error)
}

// MongoSnapshotStore implements SnapshotStore for MongoDB.
type MongoSnapshotStore struct {
	Collection *mongo.Collection
}

// InsertSnapshot appends one completed estimate to the history.
func (s *MongoSnapshotStore) InsertSnapshot(ctx context.Context, snap models.CostSnapshot) error {
	if s.Collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	if snap.CreatedAt.IsZero() {
		snap.CreatedAt = time.Now()
	}
	_, err := s.Collection.InsertOne(ctx, snap)
	return err
}

// FindSnapshots returns a user's most recent snapshots, newest first.
func (s *MongoSnapshotStore) FindSnapshots(ctx context.Context, username string, limit int64) ([]models.CostSnapshot, error) {
	if s.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
	cursor, err := s.Collection.Find(ctx, bson.M{"username": username}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var snaps []models.CostSnapshot
	if err := cursor.All(ctx, &snaps); err != nil {
		return nil, err
	}
	return snaps, nil
}
