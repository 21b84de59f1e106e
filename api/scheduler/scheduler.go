// Package scheduler runs the background maintenance jobs.
package scheduler

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/linesmerrill/police-report-writer-api/databases"
)

const defaultRetentionDays = 30

// Start schedules the nightly purge of stale draft sessions and returns the
// running cron so callers can stop it.
func Start(rdb databases.ReportDatabase) *cron.Cron {
	c := cron.New(cron.WithLocation(time.UTC))
	_, err := c.AddFunc("0 3 * * *", func() {
		purgeStaleReports(rdb)
	})
	if err != nil {
		zap.S().With(err).Error("failed to schedule report purge")
		return c
	}
	c.Start()
	zap.S().Infow("report purge scheduled", "retentionDays", retentionDays())
	return c
}

func retentionDays() int {
	if v := os.Getenv("REPORT_RETENTION_DAYS"); v != "" {
		if days, err := strconv.Atoi(v); err == nil && days > 0 {
			return days
		}
	}
	return defaultRetentionDays
}

func purgeStaleReports(rdb databases.ReportDatabase) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays())

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	deleted, err := rdb.DeleteMany(ctx, bson.M{"updatedAt": bson.M{"$lt": cutoff}})
	if err != nil {
		zap.S().With(err).Error("failed to purge stale reports")
		return
	}
	zap.S().Infow("purged stale reports", "deleted", deleted, "cutoff", cutoff)
}
