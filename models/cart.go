package models

import "time"

type Cart struct {
	CartID    uint       `gorm:"primaryKey;autoIncrement" json:"cart_id"`
	UserID    uint       `gorm:"uniqueIndex" json:"user_id"` // one cart per user
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type CartItem struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"cart_item_id"`
	CartID    uint    `gorm:"index:idx_cart_product_variant,unique" json:"cart_id"`
	ProductID uint    `gorm:"index:idx_cart_product_variant,unique" json:"product_id"`
	VariantID *uint   `gorm:"index:idx_cart_product_variant,unique" json:"variant_id,omitempty"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	Subtotal  float64 `gorm:"not null" json:"subtotal"` // accumulated price*quantity
}
