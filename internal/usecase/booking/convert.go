package booking

import (
	"go.uber.org/zap"

	"github.com/fitreni/coach-scheduler/internal/domain/schedule"
	"github.com/fitreni/coach-scheduler/internal/models"
)

// windowsFromRows converts window rows to minute intervals, skipping
// rows with unparseable times. One bad row must not take the whole day
// offline, but it is an admin data-entry error worth surfacing.
func windowsFromRows(log *zap.Logger, rows []models.AvailabilityWindow) []schedule.Window {
	windows := make([]schedule.Window, 0, len(rows))

	for _, w := range rows {
		start, err := schedule.ToMinutes(w.StartTime)
		if err != nil {
			log.Warn("skipping availability window with bad start time",
				zap.Uint("window_id", w.ID),
				zap.String("start_time", w.StartTime),
			)
			continue
		}
		end, err := schedule.ToMinutes(w.EndTime)
		if err != nil {
			log.Warn("skipping availability window with bad end time",
				zap.Uint("window_id", w.ID),
				zap.String("end_time", w.EndTime),
			)
			continue
		}
		if start >= end {
			log.Warn("skipping inverted availability window",
				zap.Uint("window_id", w.ID),
			)
			continue
		}
		windows = append(windows, schedule.Window{Start: start, End: end})
	}

	return windows
}

func blocksFromRows(log *zap.Logger, rows []models.BlockedRange) []schedule.Block {
	blocks := make([]schedule.Block, 0, len(rows))

	for _, b := range rows {
		if b.AllDay {
			blocks = append(blocks, schedule.Block{AllDay: true})
			continue
		}

		start, err := schedule.ToMinutes(b.StartTime)
		if err != nil {
			log.Warn("skipping blocked range with bad start time",
				zap.Uint("blocked_range_id", b.ID),
				zap.String("start_time", b.StartTime),
			)
			continue
		}
		end, err := schedule.ToMinutes(b.EndTime)
		if err != nil {
			log.Warn("skipping blocked range with bad end time",
				zap.Uint("blocked_range_id", b.ID),
				zap.String("end_time", b.EndTime),
			)
			continue
		}
		blocks = append(blocks, schedule.Block{Start: start, End: end})
	}

	return blocks
}
