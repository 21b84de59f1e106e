package databases

// go generate: mockery --name OfficerDatabase

import (
	"context"

	"github.com/linesmerrill/police-report-writer-api/models"
)

const officerName = "officers"

// OfficerDatabase contains the methods to use with the officer database
type OfficerDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.Officer, error)
	CountDocuments(ctx context.Context, filter interface{}) (int64, error)
	InsertOne(ctx context.Context, officer models.Officer) InsertOneResultHelper
}

type officerDatabase struct {
	db DatabaseHelper
}

// NewOfficerDatabase initializes a new instance of officer database with the provided db connection
func NewOfficerDatabase(db DatabaseHelper) OfficerDatabase {
	return &officerDatabase{
		db: db,
	}
}

func (c *officerDatabase) FindOne(ctx context.Context, filter interface{}) (*models.Officer, error) {
	officer := &models.Officer{}
	err := c.db.Collection(officerName).FindOne(ctx, filter).Decode(&officer)
	if err != nil {
		return nil, err
	}
	return officer, nil
}

func (c *officerDatabase) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	return c.db.Collection(officerName).CountDocuments(ctx, filter)
}

func (c *officerDatabase) InsertOne(ctx context.Context, officer models.Officer) InsertOneResultHelper {
	return c.db.Collection(officerName).InsertOne(ctx, officer)
}
