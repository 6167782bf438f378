package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	log "github.com/sirupsen/logrus"

	"github.com/ukydev/vehicle-tco/internal/db"
	"github.com/ukydev/vehicle-tco/internal/engine"
	"github.com/ukydev/vehicle-tco/internal/models"
)

// DefaultTopic is the MQTT topic listings arrive on.
const DefaultTopic = "tco/listings"

// ListingEvent is the wire format of one published listing.
type ListingEvent struct {
	Username string              `json:"username"`
	Facts    models.VehicleFacts `json:"facts"`
}

// Subscriber consumes vehicle listings from an MQTT topic and precomputes a
// cost snapshot for each one using the owner's stored preferences.
type Subscriber struct {
	client      mqtt.Client
	topic       string
	preferences db.PreferenceStore
	snapshots   db.SnapshotStore
}

// NewSubscriber connects to the broker and returns a ready subscriber.
func NewSubscriber(brokerAddr, topic string, prefs db.PreferenceStore, snaps db.SnapshotStore) (*Subscriber, error) {
	if topic == "" {
		topic = DefaultTopic
	}
	opts := mqtt.NewClientOptions().AddBroker(brokerAddr).SetClientID("tco-feed")
	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("mqtt connect: %w", token.Error())
	}
	return &Subscriber{
		client:      client,
		topic:       topic,
		preferences: prefs,
		snapshots:   snaps,
	}, nil
}

// Start subscribes to the listing topic.
func (s *Subscriber) Start() error {
	token := s.client.Subscribe(s.topic, 0, func(_ mqtt.Client, msg mqtt.Message) {
		s.handlePayload(msg.Payload())
	})
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("mqtt subscribe: %w", token.Error())
	}
	log.WithField("topic", s.topic).Info("Listing feed subscribed")
	return nil
}

// Stop disconnects from the broker.
func (s *Subscriber) Stop() {
	s.client.Disconnect(250)
}

// handlePayload decodes one listing and records its snapshot. Errors are
// logged and swallowed: a bad listing must not take the feed down.
func (s *Subscriber) handlePayload(payload []byte) {
	var event ListingEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		log.WithError(err).Warn("Dropping malformed listing event")
		return
	}
	if event.Username == "" || event.Facts.Price <= 0 {
		log.WithField("username", event.Username).Warn("Dropping incomplete listing event")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cfg := s.configFor(ctx, event.Username)
	breakdown := engine.Calculate(engine.Assemble(event.Facts, cfg))

	snap := models.CostSnapshot{
		Username:  event.Username,
		Source:    models.SnapshotSourceFeed,
		Facts:     event.Facts,
		Config:    cfg,
		Breakdown: breakdown,
		CreatedAt: time.Now(),
	}
	if err := s.snapshots.InsertSnapshot(ctx, snap); err != nil {
		log.WithError(err).WithField("username", event.Username).Error("Failed to record feed snapshot")
		return
	}

	log.WithFields(log.Fields{
		"username":     event.Username,
		"price":        event.Facts.Price,
		"total_annual": breakdown.TotalAnnual,
	}).Info("Processed listing from feed")
}

func (s *Subscriber) configFor(ctx context.Context, username string) models.OwnershipConfig {
	cfg, err := s.preferences.FindPreferences(ctx, username)
	if err == nil {
		return *cfg
	}
	if err != db.ErrNotFound {
		log.WithError(err).WithField("username", username).Warn("Falling back to default preferences")
	}
	return models.DefaultOwnershipConfig()
}
