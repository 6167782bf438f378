package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ukydev/vehicle-tco/internal/db"
	"github.com/ukydev/vehicle-tco/internal/middleware"
	"github.com/ukydev/vehicle-tco/internal/models"
)

// PreferencesHandler loads and stores a user's ownership configuration.
type PreferencesHandler struct {
	Preferences db.PreferenceStore
}

// NewPreferencesHandler creates a new preferences handler
func NewPreferencesHandler(prefs db.PreferenceStore) *PreferencesHandler {
	return &PreferencesHandler{Preferences: prefs}
}

func (h *PreferencesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		http.Error(w, "User context not found", http.StatusUnauthorized)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.get(w, r, claims.Username)
	case http.MethodPut:
		h.put(w, r, claims.Username)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *PreferencesHandler) get(w http.ResponseWriter, r *http.Request, username string) {
	cfg, err := h.Preferences.FindPreferences(r.Context(), username)
	if err == db.ErrNotFound {
		def := models.DefaultOwnershipConfig()
		cfg = &def
	} else if err != nil {
		http.Error(w, "Failed to load preferences", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cfg)
}

func (h *PreferencesHandler) put(w http.ResponseWriter, r *http.Request, username string) {
	var cfg models.OwnershipConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if cfg.SizeClass != "" && !models.IsValidSizeClass(cfg.SizeClass) {
		http.Error(w, "Invalid size class", http.StatusBadRequest)
		return
	}
	if cfg.MaintenanceLevel != "" && !models.IsValidLevel(cfg.MaintenanceLevel) {
		http.Error(w, "Invalid maintenance level", http.StatusBadRequest)
		return
	}
	if cfg.DepreciationLevel != "" && !models.IsValidLevel(cfg.DepreciationLevel) {
		http.Error(w, "Invalid depreciation level", http.StatusBadRequest)
		return
	}
	if cfg.AnnualMil < 0 || cfg.OwnershipYears < 0 {
		http.Error(w, "Distances and years must not be negative", http.StatusBadRequest)
		return
	}

	if err := h.Preferences.UpsertPreferences(r.Context(), username, cfg); err != nil {
		http.Error(w, "Failed to save preferences", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"message": "Preferences saved"})
}
