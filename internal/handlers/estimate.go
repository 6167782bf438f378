package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/ukydev/vehicle-tco/internal/db"
	"github.com/ukydev/vehicle-tco/internal/engine"
	"github.com/ukydev/vehicle-tco/internal/middleware"
	"github.com/ukydev/vehicle-tco/internal/models"
)

// EstimateRequest carries one listing's facts plus an optional configuration
// override. When Config is omitted the caller's stored preferences (or the
// system defaults) are used.
type EstimateRequest struct {
	Facts  models.VehicleFacts     `json:"facts"`
	Config *models.OwnershipConfig `json:"config,omitempty"`
}

// EstimateHandler computes cost breakdowns and records them as snapshots.
type EstimateHandler struct {
	Preferences db.PreferenceStore
	Snapshots   db.SnapshotStore
}

// NewEstimateHandler creates a new estimate handler
func NewEstimateHandler(prefs db.PreferenceStore, snaps db.SnapshotStore) *EstimateHandler {
	return &EstimateHandler{Preferences: prefs, Snapshots: snaps}
}

func (h *EstimateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	claims, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		http.Error(w, "User context not found", http.StatusUnauthorized)
		return
	}

	var req EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Facts.Price <= 0 {
		http.Error(w, "Listing price is required", http.StatusBadRequest)
		return
	}

	cfg := h.resolveConfig(r, req.Config, claims.Username)

	breakdown := engine.Calculate(engine.Assemble(req.Facts, cfg))

	snap := models.CostSnapshot{
		Username:  claims.Username,
		Source:    models.SnapshotSourceAPI,
		Facts:     req.Facts,
		Config:    cfg,
		Breakdown: breakdown,
		CreatedAt: time.Now(),
	}
	if err := h.Snapshots.InsertSnapshot(r.Context(), snap); err != nil {
		// History is best effort; the estimate itself still succeeds.
		log.WithError(err).WithField("username", claims.Username).Error("Failed to record snapshot")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(breakdown)
}

func (h *EstimateHandler) resolveConfig(r *http.Request, override *models.OwnershipConfig, username string) models.OwnershipConfig {
	if override != nil {
		return *override
	}
	stored, err := h.Preferences.FindPreferences(r.Context(), username)
	if err == nil {
		return *stored
	}
	if err != db.ErrNotFound {
		log.WithError(err).WithField("username", username).Warn("Falling back to default preferences")
	}
	return models.DefaultOwnershipConfig()
}
