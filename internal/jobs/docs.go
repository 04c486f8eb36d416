// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3.
//
// # Available Jobs
//
// PromotionExpiryJob clears restaurant promotions whose paid period has ended.
// It runs on a cron schedule, hourly by default:
//
//	job := jobs.NewPromotionExpiryJob(expirePromotionsHandler, "@hourly", logger)
//	manager := jobs.NewJobManager(job)
//	if err := manager.StartAll(); err != nil {
//		return err
//	}
//	defer manager.StopAll()
//
// Listings ignore stale promotions on their own, so a missed run only delays
// the cleanup of the stored flag.
package jobs
