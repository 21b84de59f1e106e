package databases

// go generate: mockery --name ReportDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linesmerrill/police-report-writer-api/models"
)

const reportName = "reports"

// ReportDatabase contains the methods to use with the report database
type ReportDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.Report, error)
	InsertOne(ctx context.Context, report models.Report) InsertOneResultHelper
	UpsertOne(ctx context.Context, filter interface{}, report models.Report) error
	DeleteOne(ctx context.Context, filter interface{}) error
	DeleteMany(ctx context.Context, filter interface{}) (int64, error)
}

type reportDatabase struct {
	db DatabaseHelper
}

// NewReportDatabase initializes a new instance of report database with the provided db connection
func NewReportDatabase(db DatabaseHelper) ReportDatabase {
	return &reportDatabase{
		db: db,
	}
}

func (c *reportDatabase) FindOne(ctx context.Context, filter interface{}) (*models.Report, error) {
	report := &models.Report{}
	err := c.db.Collection(reportName).FindOne(ctx, filter).Decode(&report)
	if err != nil {
		return nil, err
	}
	return report, nil
}

func (c *reportDatabase) InsertOne(ctx context.Context, report models.Report) InsertOneResultHelper {
	return c.db.Collection(reportName).InsertOne(ctx, report)
}

func (c *reportDatabase) UpsertOne(ctx context.Context, filter interface{}, report models.Report) error {
	update := map[string]interface{}{"$set": report}
	_, err := c.db.Collection(reportName).UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (c *reportDatabase) DeleteOne(ctx context.Context, filter interface{}) error {
	return c.db.Collection(reportName).DeleteOne(ctx, filter)
}

func (c *reportDatabase) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	return c.db.Collection(reportName).DeleteMany(ctx, filter)
}
