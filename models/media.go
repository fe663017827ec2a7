package models

import "time"

type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// Media belongs to exactly one of a product or a variant. The stored Name
// is the sanitized filename under the media root; URL is the public path.
type Media struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID *uint     `gorm:"index" json:"product_id,omitempty"`
	VariantID *uint     `gorm:"index" json:"variant_id,omitempty"`
	MediaType MediaType `gorm:"type:VARCHAR(10);not null" json:"media_type"`
	Name      string    `gorm:"not null" json:"name"`
	URL       string    `gorm:"not null" json:"url"`
	CreatedAt time.Time `json:"created_at"`
}
