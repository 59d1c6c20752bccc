package models

import "time"

// Service is a bookable coaching offer (consultation, training block,
// assessment). Mode distinguishes online sessions from in-person ones.
type Service struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	StudioID uint `json:"studio_id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	DurationMin int     `json:"duration_min"`
	Price       float64 `json:"price"`
	Mode        string  `gorm:"size:20;default:'in_person'" json:"mode"`
	Active      bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
