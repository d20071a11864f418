// Package jobs provides scheduled background tasks for the dispatch service.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and are managed through
// JobManager, which offers a unified start/stop interface:
//
//	jobManager := jobs.NewJobManager(reconcileHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// ReconciliationJob - sweeps all couriers once a minute and reverts
// assignments that no longer fit after a capacity change. Courier updates
// already reconcile inside their own transaction; the sweep is a safety
// net for state changed outside the update path.
package jobs
