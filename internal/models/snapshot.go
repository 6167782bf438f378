package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Snapshot sources.
const (
	SnapshotSourceAPI  = "api"
	SnapshotSourceFeed = "feed"
)

// CostSnapshot records one completed estimate: the inputs that went in and
// the breakdown that came out. Snapshots are append-only history.
type CostSnapshot struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Username  string             `json:"username" bson:"username"`
	Source    string             `json:"source" bson:"source"` // "api" or "feed"
	Facts     VehicleFacts       `json:"facts" bson:"facts"`
	Config    OwnershipConfig    `json:"config" bson:"config"`
	Breakdown CostBreakdown      `json:"breakdown" bson:"breakdown"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}
