package models

import "time"

// Client is a booking or shop customer, no login, owned by the studio.
type Client struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	StudioID uint `json:"studio_id"`

	Name   string `gorm:"size:100;not null" json:"name"`
	Phone  string `gorm:"size:20" json:"phone"`
	Email  string `gorm:"size:100" json:"email"`
	Locale string `gorm:"size:5;default:'hu'" json:"locale"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
