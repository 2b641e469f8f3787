// Package jobs holds the scheduled background jobs of the fleet
// service.
package jobs

import (
	"context"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// ExportRunner triggers a transport export to the given path.
type ExportRunner interface {
	ExportTransports(ctx context.Context, path string) error
}

// ExportJob periodically writes a transport export into a directory,
// one timestamped file per run.
type ExportJob struct {
	exporter ExportRunner
	cron     *cron.Cron
	schedule string
	dir      string
	logger   *zap.Logger
}

// NewExportJob creates a job writing exports into dir on the given
// cron schedule (e.g. "@daily").
func NewExportJob(exporter ExportRunner, schedule, dir string, logger *zap.Logger) *ExportJob {
	return &ExportJob{
		exporter: exporter,
		cron:     cron.New(),
		schedule: schedule,
		dir:      dir,
		logger:   logger.Named("export_job"),
	}
}

// Start schedules the job.
func (j *ExportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		path := filepath.Join(j.dir, "transports-"+time.Now().UTC().Format("20060102T150405")+".json")

		if err := j.exporter.ExportTransports(ctx, path); err != nil {
			j.logger.Error("Scheduled export failed", zap.Error(err))
			return
		}
		j.logger.Info("Scheduled export completed", zap.String("path", path))
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Export job started", zap.String("schedule", j.schedule))
	return nil
}

// Stop stops the job.
func (j *ExportJob) Stop() {
	j.cron.Stop()
	j.logger.Info("Export job stopped")
}
