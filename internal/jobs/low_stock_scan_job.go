package jobs

import (
	"context"
	"log/slog"

	"printshop/internal/core/application/usecases/queries"
	"printshop/internal/core/domain/model/spool"

	"github.com/robfig/cron/v3"
)

// LowStockScanJob periodically scans the inventory for nearly depleted spools
// and reports them, so the operator sees archival candidates without polling
// the inventory view.
type LowStockScanJob struct {
	handler queries.GetLowSpoolsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewLowStockScanJob creates the nightly low-stock scan.
func NewLowStockScanJob(handler queries.GetLowSpoolsQueryHandler, logger *slog.Logger) *LowStockScanJob {
	return &LowStockScanJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "low_stock_scan_job"),
	}
}

// Start schedules the scan to run every night at 02:00.
func (j *LowStockScanJob) Start() error {
	_, err := j.cron.AddFunc("0 0 2 * * *", func() {
		ctx := context.Background()

		query, queryErr := queries.NewGetLowSpoolsQuery(spool.ArchiveThresholdGrams)
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Low stock scan failed to build query", "error", queryErr)
			return
		}

		spools, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Low stock scan failed", "error", handleErr)
			return
		}

		if len(spools) == 0 {
			j.logger.InfoContext(ctx, "Low stock scan found no spools below threshold")
			return
		}

		for _, sp := range spools {
			j.logger.WarnContext(ctx, "Spool below archive threshold",
				"spool_id", sp.ID.String(),
				"name", sp.Name,
				"remaining_grams", sp.RemainingWeight,
				"reserved_grams", sp.ReservedWeight,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Low stock scan job started (running nightly at 02:00)")
	return nil
}

// Stop stops the low-stock scan job.
func (j *LowStockScanJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Low stock scan job stopped")
}
