package jobs

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"

	domain "github.com/fitreni/coach-scheduler/internal/domain/booking"
	"github.com/fitreni/coach-scheduler/internal/models"
	"github.com/fitreni/coach-scheduler/internal/timezone"
)

// Start registers the recurring maintenance jobs and starts the
// scheduler. The returned cron can be stopped on shutdown.
func Start(db *gorm.DB, log *zap.Logger) *cron.Cron {
	c := cron.New(cron.WithLocation(timezone.Location(timezone.DefaultTimezone)))

	// sessions that happened and were never touched in the dashboard
	// count as held
	c.AddFunc("30 3 * * *", func() {
		completePastBookings(db, log)
	})

	c.Start()
	return c
}

func completePastBookings(db *gorm.DB, log *zap.Logger) {
	now := timezone.Now()

	res := db.Model(&models.Booking{}).
		Where("status = ? AND end_time < ?", string(domain.StatusScheduled), now.Add(-24*time.Hour)).
		Updates(map[string]any{
			"status":       string(domain.StatusCompleted),
			"completed_at": now,
		})

	if res.Error != nil {
		log.Error("auto-complete sweep failed", zap.Error(res.Error))
		return
	}

	if res.RowsAffected > 0 {
		log.Info("auto-completed past bookings", zap.Int64("count", res.RowsAffected))
	}
}
