package models

import "time"

const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusCancelled = "cancelled"
)

type Order struct {
	ID uint `gorm:"primaryKey" json:"id"`

	StudioID uint `json:"studio_id"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	ReferenceCode string `gorm:"size:36;uniqueIndex" json:"reference_code"`

	Items []OrderItem `json:"items"`

	ShippingMethodID *uint   `json:"shipping_method_id"`
	ShippingAddress  string  `gorm:"size:255" json:"shipping_address"`
	Subtotal         float64 `json:"subtotal"`
	ShippingFee      float64 `json:"shipping_fee"`
	Total            float64 `json:"total"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	// PaymentReference is the processor-side id of the payment
	// preference created at checkout.
	PaymentReference string `gorm:"size:64" json:"payment_reference"`

	PaidAt    *time.Time `json:"paid_at"`
	ShippedAt *time.Time `json:"shipped_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type OrderItem struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	OrderID uint `gorm:"index" json:"order_id"`

	ProductID uint    `json:"product_id"`
	Product   Product `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"product"`

	Quantity int `json:"quantity"`

	// UnitPrice is snapshotted at checkout time.
	UnitPrice float64 `json:"unit_price"`
}
