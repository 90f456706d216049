package services

import (
	"time"

	"autocare-backend/models"
	"autocare-backend/utils"

	"gorm.io/gorm"
)

// DashboardStats is the admin dashboard aggregate. The rejected counter is
// included alongside the original five so all four statuses are reported
// symmetrically.
type DashboardStats struct {
	TotalBookings int64 `json:"totalBookings"`
	Pending       int64 `json:"pending"`
	Approved      int64 `json:"approved"`
	Completed     int64 `json:"completed"`
	Rejected      int64 `json:"rejected"`
	DailyBookings int64 `json:"dailyBookings"`
}

type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

// DashboardStats computes the counters with independent queries at call
// time. The values are not snapshot-consistent under concurrent writes.
func (s *StatsService) DashboardStats() (*DashboardStats, error) {
	var stats DashboardStats

	if err := s.db.Model(&models.Booking{}).Count(&stats.TotalBookings).Error; err != nil {
		return nil, err
	}

	byStatus := []struct {
		status models.BookingStatus
		dest   *int64
	}{
		{models.StatusPending, &stats.Pending},
		{models.StatusApproved, &stats.Approved},
		{models.StatusCompleted, &stats.Completed},
		{models.StatusRejected, &stats.Rejected},
	}
	for _, q := range byStatus {
		if err := s.db.Model(&models.Booking{}).Where("status = ?", q.status).Count(q.dest).Error; err != nil {
			return nil, err
		}
	}

	// Bookings created since local midnight
	today := utils.BeginningOfDay(time.Now())
	if err := s.db.Model(&models.Booking{}).Where("created_at >= ?", today).Count(&stats.DailyBookings).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
