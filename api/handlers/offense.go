package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/linesmerrill/police-report-writer-api/catalog"
	"github.com/linesmerrill/police-report-writer-api/config"
	"github.com/linesmerrill/police-report-writer-api/databases"
	"github.com/linesmerrill/police-report-writer-api/models"
)

// Offense exposes the offense catalog endpoints. Overrides live on the
// settings document, so the catalog is rebuilt per request.
type Offense struct {
	SDB databases.SettingsDatabase
}

func (o Offense) loadSettings(ctx context.Context) *models.Settings {
	settings, err := o.SDB.FindOne(ctx, bson.M{"key": models.SettingsKey})
	if err != nil {
		// no settings saved yet, run against the static catalog
		return models.DefaultSettings()
	}
	if settings.Overrides == nil {
		settings.Overrides = map[string]models.Offense{}
	}
	return settings
}

func (o Offense) saveOverrides(ctx context.Context, settings *models.Settings, overrides map[string]models.Offense) error {
	settings.Key = models.SettingsKey
	settings.Overrides = overrides
	settings.UpdatedAt = time.Now()
	if settings.CreatedAt.IsZero() {
		settings.CreatedAt = settings.UpdatedAt
	}
	return o.SDB.UpsertOne(ctx, bson.M{"key": models.SettingsKey}, *settings)
}

// OffenseSearchHandler searches the merged catalog, literal-prefix matches
// first, capped at the catalog result limit
func (o Offense) OffenseSearchHandler(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")

	settings := o.loadSettings(context.Background())
	cat := catalog.New(settings.Overrides)
	results := cat.Search(term)

	b, err := json.Marshal(results)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// OffenseByLiteralHandler resolves one literal against the merged catalog.
// Unknown literals come back as custom offenses, never as an error.
func (o Offense) OffenseByLiteralHandler(w http.ResponseWriter, r *http.Request) {
	literal := mux.Vars(r)["literal"]

	settings := o.loadSettings(context.Background())
	cat := catalog.New(settings.Overrides)
	offense := cat.Resolve(literal)

	b, err := json.Marshal(offense)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// UpsertOverrideHandler stores one offense override keyed by literal
func (o Offense) UpsertOverrideHandler(w http.ResponseWriter, r *http.Request) {
	literal := mux.Vars(r)["literal"]

	var offense models.Offense
	if err := json.NewDecoder(r.Body).Decode(&offense); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if offense.Literal == "" {
		offense.Literal = literal
	}

	settings := o.loadSettings(context.Background())
	cat := catalog.New(settings.Overrides)
	cat.Override(offense)

	if err := o.saveOverrides(context.Background(), settings, cat.Overrides()); err != nil {
		config.ErrorStatus("failed to save override", http.StatusInternalServerError, w, err)
		return
	}

	b, _ := json.Marshal(cat.Resolve(offense.Literal))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// DeleteOverrideHandler removes an override; the literal reverts to its
// static catalog entry if one exists
func (o Offense) DeleteOverrideHandler(w http.ResponseWriter, r *http.Request) {
	literal := mux.Vars(r)["literal"]

	settings := o.loadSettings(context.Background())
	cat := catalog.New(settings.Overrides)
	cat.DeleteOverride(literal)

	if err := o.saveOverrides(context.Background(), settings, cat.Overrides()); err != nil {
		config.ErrorStatus("failed to delete override", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "override deleted"}`))
}

// GetOverridesHandler exports the full override set as a flat object keyed
// by literal
func (o Offense) GetOverridesHandler(w http.ResponseWriter, r *http.Request) {
	settings := o.loadSettings(context.Background())

	b, err := json.Marshal(settings.Overrides)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// ImportOverridesHandler replaces the entire override set with the posted
// flat object
func (o Offense) ImportOverridesHandler(w http.ResponseWriter, r *http.Request) {
	var imported map[string]models.Offense
	if err := json.NewDecoder(r.Body).Decode(&imported); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	cat := catalog.New(nil)
	for literal, offense := range imported {
		if offense.Literal == "" {
			offense.Literal = literal
		}
		cat.Override(offense)
	}

	settings := o.loadSettings(context.Background())
	if err := o.saveOverrides(context.Background(), settings, cat.Overrides()); err != nil {
		config.ErrorStatus("failed to save overrides", http.StatusInternalServerError, w, err)
		return
	}

	b, _ := json.Marshal(cat.Overrides())
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
