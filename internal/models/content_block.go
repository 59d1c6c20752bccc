package models

import "time"

// ContentBlock is one localized fragment of the marketing site
// (hero copy, pricing table, testimonials). Body is opaque JSON the
// frontend renders.
type ContentBlock struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	StudioID uint `json:"studio_id"`

	Key    string `gorm:"size:100;index:idx_content_key_locale,unique" json:"key"`
	Locale string `gorm:"size:5;index:idx_content_key_locale,unique" json:"locale"` // hu | en | es
	Body   string `gorm:"type:text" json:"body"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
