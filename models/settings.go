package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SettingsKey is the fixed key of the single process-wide settings document.
const SettingsKey = "global"

// SummaryTitleFields selects which offense fields appear on the title line of
// each OFFENSE SUMMARY entry.
type SummaryTitleFields struct {
	Citation    bool `bson:"citation" json:"citation"`
	StatuteName bool `bson:"statuteName" json:"statuteName"`
	Level       bool `bson:"level" json:"level"`
}

// Settings are the cross-report preferences shared by every drafting session,
// persisted independently of any report.
type Settings struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Key            string             `bson:"key" json:"key"`
	DefaultOfficer string             `bson:"defaultOfficer" json:"defaultOfficer"`
	SummaryTitle   SummaryTitleFields `bson:"summaryTitle" json:"summaryTitle"`

	// Overrides is keyed by offense literal; an override replaces the static
	// catalog entry of the same literal field-for-field. This flat map is
	// also the bulk export/import format.
	Overrides map[string]Offense `bson:"overrides" json:"overrides"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// DefaultSettings returns the settings used before any have been saved.
func DefaultSettings() *Settings {
	return &Settings{
		Key:          SettingsKey,
		SummaryTitle: SummaryTitleFields{Citation: true, StatuteName: true, Level: true},
		Overrides:    map[string]Offense{},
	}
}
