package models

import "time"

// Saved is the per-user wishlist container, created lazily on first add.
type Saved struct {
	SavedID   uint        `gorm:"primaryKey;autoIncrement" json:"saved_id"`
	UserID    uint        `gorm:"uniqueIndex" json:"user_id"`
	Items     []SavedItem `gorm:"foreignKey:SavedID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

type SavedItem struct {
	ID        uint  `gorm:"primaryKey;autoIncrement" json:"id"`
	SavedID   uint  `gorm:"index:idx_saved_product_variant,unique" json:"saved_id"`
	ProductID uint  `gorm:"index:idx_saved_product_variant,unique" json:"product_id"`
	VariantID *uint `gorm:"index:idx_saved_product_variant,unique" json:"variant_id,omitempty"`
}
