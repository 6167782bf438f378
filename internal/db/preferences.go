package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ukydev/vehicle-tco/internal/models"
)

// ErrNotFound is returned when a requested document does not exist.
var ErrNotFound = errors.New("not found")

// PreferenceStore defines the interface for ownership configuration
// persistence. One document is kept per username.
type PreferenceStore interface {
	FindPreferences(ctx context.Context, username string) (*models.OwnershipConfig, error)
	UpsertPreferences(ctx context.Context, username string, cfg models.OwnershipConfig) error
}

// preferenceDoc wraps the configuration with its owner and bookkeeping.
type preferenceDoc struct {
	Username  string                 `bson:"username"`
	Config    models.OwnershipConfig `bson:"config"`
	UpdatedAt time.Time              `bson:"updated_at"`
}

// MongoPreferenceStore implements PreferenceStore for MongoDB.
type MongoPreferenceStore struct {
	Collection *mongo.Collection
}

// FindPreferences loads the stored configuration for a user. Returns
// ErrNotFound when the user has never saved preferences.
func (s *MongoPreferenceStore) FindPreferences(ctx context.Context, username string) (*models.OwnershipConfig, error) {
	if s.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	var doc preferenceDoc
	err := s.Collection.FindOne(ctx, bson.M{"username": username}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &doc.Config, nil
}

// UpsertPreferences stores the configuration for a user, replacing any
// previous document.
func (s *MongoPreferenceStore) UpsertPreferences(ctx context.Context, username string, cfg models.OwnershipConfig) error {
	if s.Collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	doc := preferenceDoc{Username: username, Config: cfg, UpdatedAt: time.Now()}
	opts := options.Replace().SetUpsert(true)
	_, err := s.Collection.ReplaceOne(ctx, bson.M{"username": username}, doc, opts)
	return err
}
