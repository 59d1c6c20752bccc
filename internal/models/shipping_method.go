package models

import "time"

type ShippingMethod struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	StudioID uint `json:"studio_id"`

	Name string  `gorm:"size:100;not null" json:"name"`
	Fee  float64 `json:"fee"`

	// FreeAbove waives the fee when the cart subtotal reaches it.
	// Zero means the fee always applies.
	FreeAbove float64 `json:"free_above"`

	MaxWeightGrams int  `json:"max_weight_grams"` // 0: no limit
	Active         bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
