// Package jobs provides scheduled background tasks for the order intake
// service.
//
// Jobs are cron-based, built on github.com/robfig/cron/v3, and managed
// through JobManager:
//
//	jobManager := jobs.NewJobManager(countOrdersHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// PendingOrdersJob runs every minute, counts the orders still waiting for
// confirmation and publishes the backlog size as a Prometheus gauge.
package jobs
