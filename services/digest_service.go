// services/digest_service.go
package services

import (
	"log"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// DigestService logs the dashboard aggregate to the server log once a day,
// so there is a booking-volume trail without querying the API.
type DigestService struct {
	stats *StatsService
}

func NewDigestService(db *gorm.DB) *DigestService {
	return &DigestService{stats: NewStatsService(db)}
}

func (s *DigestService) StartScheduler() {
	c := cron.New()

	// Run every day at 8 AM
	c.AddFunc("0 8 * * *", s.LogDailyDigest)

	c.Start()
	log.Println("Dashboard digest scheduler started")
}

func (s *DigestService) LogDailyDigest() {
	stats, err := s.stats.DashboardStats()
	if err != nil {
		log.Printf("Failed to compute dashboard digest: %v", err)
		return
	}

	log.Printf("[DIGEST] total=%d pending=%d approved=%d completed=%d rejected=%d today=%d",
		stats.TotalBookings, stats.Pending, stats.Approved,
		stats.Completed, stats.Rejected, stats.DailyBookings)
}
