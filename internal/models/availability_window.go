package models

import "time"

// AvailabilityWindow is a recurring weekly open-hours interval for one
// coach. A weekday may carry several windows (e.g. a morning and an
// evening block).
type AvailabilityWindow struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	CoachID uint `gorm:"index" json:"coach_id"`

	Weekday int `json:"weekday"` // 0 = Sunday .. 6 = Saturday

	StartTime string `gorm:"size:5" json:"start_time"` // "HH:MM"
	EndTime   string `gorm:"size:5" json:"end_time"`
	Active    bool   `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
