package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/linesmerrill/police-report-writer-api/config"
	"github.com/linesmerrill/police-report-writer-api/databases"
	"github.com/linesmerrill/police-report-writer-api/models"
)

// Settings exposes the process-wide preferences document
type Settings struct {
	SDB databases.SettingsDatabase
}

// SettingsHandler returns the settings document, falling back to defaults
// when none has been saved yet
func (s Settings) SettingsHandler(w http.ResponseWriter, r *http.Request) {
	settings, err := s.SDB.FindOne(context.Background(), bson.M{"key": models.SettingsKey})
	if err != nil {
		if err == mongo.ErrNoDocuments {
			settings = models.DefaultSettings()
		} else {
			config.ErrorStatus("failed to get settings", http.StatusInternalServerError, w, err)
			return
		}
	}

	b, err := json.Marshal(settings)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// UpdateSettingsHandler upserts the settings document
func (s Settings) UpdateSettingsHandler(w http.ResponseWriter, r *http.Request) {
	var settings models.Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	settings.Key = models.SettingsKey
	if settings.Overrides == nil {
		settings.Overrides = map[string]models.Offense{}
	}
	settings.UpdatedAt = time.Now()
	if settings.CreatedAt.IsZero() {
		settings.CreatedAt = settings.UpdatedAt
	}

	err := s.SDB.UpsertOne(context.Background(), bson.M{"key": models.SettingsKey}, settings)
	if err != nil {
		config.ErrorStatus("failed to save settings", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(settings)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
