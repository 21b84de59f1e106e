package databases

// go generate: mockery --name SettingsDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linesmerrill/police-report-writer-api/models"
)

const settingsName = "settings"

// SettingsDatabase contains the methods to use with the settings database.
// There is one process-wide settings document, keyed by models.SettingsKey.
type SettingsDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.Settings, error)
	UpsertOne(ctx context.Context, filter interface{}, settings models.Settings) error
}

type settingsDatabase struct {
	db DatabaseHelper
}

// NewSettingsDatabase initializes a new instance of settings database with the provided db connection
func NewSettingsDatabase(db DatabaseHelper) SettingsDatabase {
	return &settingsDatabase{
		db: db,
	}
}

func (c *settingsDatabase) FindOne(ctx context.Context, filter interface{}) (*models.Settings, error) {
	settings := &models.Settings{}
	err := c.db.Collection(settingsName).FindOne(ctx, filter).Decode(&settings)
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func (c *settingsDatabase) UpsertOne(ctx context.Context, filter interface{}, settings models.Settings) error {
	update := bson.M{"$set": settings}
	_, err := c.db.Collection(settingsName).UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}
