package models

import "time"

// BlockedRange is an operator-declared unavailability window for one
// coach on one calendar date. AllDay blocks the whole date regardless
// of the time fields.
type BlockedRange struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	CoachID uint `gorm:"index" json:"coach_id"`

	Date      string `gorm:"size:10;index" json:"date"` // "YYYY-MM-DD", studio-local
	StartTime string `gorm:"size:5" json:"start_time"`  // "HH:MM"
	EndTime   string `gorm:"size:5" json:"end_time"`
	AllDay    bool   `gorm:"default:false" json:"all_day"`

	Reason string `gorm:"size:100" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
