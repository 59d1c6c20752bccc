package booking

import "time"

type AvailabilityInput struct {
	StudioID  uint
	CoachID   uint
	ServiceID uint
	Date      time.Time
}

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
