// Package jobs provides scheduled background tasks for the dispatch service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OverdueAssignmentJob - Periodically finds assignments still underway past
// their estimated delivery time and logs them for operators to chase up.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(overdueHandler, cronSpec, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The overdue check schedule comes from configuration; the default of once a
// minute keeps the lag between an assignment turning overdue and it being
// reported small without hammering the database.
package jobs
