package services

import (
	"context"
	"fmt"
	"time"

	"backend_tigo/config"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// ReportRefresher recomputes the store's report views on a cron schedule
type ReportRefresher struct {
	cron    *cron.Cron
	spec    string
	refresh func(context.Context) error
	timeout time.Duration
	logger  *logrus.Logger
}

// NewReportRefresher schedules refresh with spec, a standard cron expression or a descriptor such as "@every 5m"
func NewReportRefresher(spec string, refresh func(context.Context) error, logger *logrus.Logger) *ReportRefresher {
	return &ReportRefresher{
		cron:    cron.New(),
		spec:    spec,
		refresh: refresh,
		timeout: 2 * time.Minute,
		logger:  logger,
	}
}

// Start registers the job and starts the scheduler
func (r *ReportRefresher) Start() error {
	if _, err := r.cron.AddFunc(r.spec, r.run); err != nil {
		return fmt.Errorf("invalid report refresh schedule %q: %w", r.spec, err)
	}

	r.cron.Start()
	r.logger.WithField("schedule", r.spec).Info("report refresher started")
	return nil
}

// Stop stops the scheduler and waits for a running refresh to finish
func (r *ReportRefresher) Stop() {
	<-r.cron.Stop().Done()
	r.logger.Info("report refresher stopped")
}

// RunOnce refreshes the report views now
func (r *ReportRefresher) RunOnce(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	started := time.Now()
	if err := r.refresh(ctx); err != nil {
		return err
	}

	r.logger.WithField("duration", time.Since(started).String()).Debug("report views refreshed")
	return nil
}

func (r *ReportRefresher) run() {
	if err := r.RunOnce(context.Background()); err != nil {
		config.LogError(r.logger, "services", "ReportRefresher.run", "refresh report views", nil, err)
	}
}
