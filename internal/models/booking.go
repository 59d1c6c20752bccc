package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	StudioID uint   `json:"studio_id"`
	Studio   Studio `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"studio"`

	CoachID uint  `json:"coach_id"`
	Coach   Coach `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"coach"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`

	// ReferenceCode is handed to the client for lookup and support.
	ReferenceCode string `gorm:"size:36;uniqueIndex" json:"reference_code"`

	Notes       string     `gorm:"size:255" json:"notes"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
