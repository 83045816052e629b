// Package jobs provides scheduled background tasks for the print shop.
//
// Jobs are built on github.com/robfig/cron/v3 and managed through JobManager,
// which starts and stops them as a group:
//
//	jobManager := jobs.NewJobManager(getLowSpoolsHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// The only job today is LowStockScanJob, which runs nightly and logs every
// active spool whose remaining weight sits below the archive threshold.
package jobs
