package models

import "time"

const (
	ProductKindDigital  = "digital"
	ProductKindPhysical = "physical"
)

// Product is a shop item: training plans and e-books are digital,
// merch and equipment are physical and carry weight for shipping.
type Product struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	StudioID uint `json:"studio_id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	Kind        string  `gorm:"size:20;default:'digital'" json:"kind"`
	Price       float64 `json:"price"`
	WeightGrams int     `json:"weight_grams"`
	Stock       int     `gorm:"default:-1" json:"stock"` // -1: not tracked
	Active      bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
