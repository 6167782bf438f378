package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ukydev/vehicle-tco/internal/db"
	"github.com/ukydev/vehicle-tco/internal/middleware"
	"github.com/ukydev/vehicle-tco/internal/models"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// HistoryHandler serves a user's past cost snapshots, newest first.
type HistoryHandler struct {
	Snapshots db.SnapshotStore
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(snaps db.SnapshotStore) *HistoryHandler {
	return &HistoryHandler{Snapshots: snaps}
}

func (h *HistoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	claims, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		http.Error(w, "User context not found", http.StatusUnauthorized)
		return
	}

	limit := int64(defaultHistoryLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n <= 0 {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		if n > maxHistoryLimit {
			n = maxHistoryLimit
		}
		limit = n
	}

	snaps, err := h.Snapshots.FindSnapshots(r.Context(), claims.Username, limit)
	if err != nil {
		http.Error(w, "Failed to load history", http.StatusInternalServerError)
		return
	}
	if snaps == nil {
		snaps = []models.CostSnapshot{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(snaps)
}
