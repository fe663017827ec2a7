package models

import "time"

type FeatureType string
type Gender string
type Size string

const (
	FeatureBasic    FeatureType = "basic"
	FeatureFeatured FeatureType = "featured"
	FeatureOnSale   FeatureType = "on_sale"
	FeatureBanner   FeatureType = "banner"

	GenderMen    Gender = "men"
	GenderWomen  Gender = "women"
	GenderUnisex Gender = "unisex"

	SizeS  Size = "S"
	SizeM  Size = "M"
	SizeL  Size = "L"
	SizeXL Size = "XL"
)

type Product struct {
	ID            uint        `gorm:"primaryKey;autoIncrement" json:"product_id"`
	ProductName   string      `gorm:"not null" json:"product_name"`
	Description   string      `json:"description"`
	Price         float64     `gorm:"not null" json:"price"`
	FakePrice     float64     `json:"fake_price"` // struck-through display price
	StockQuantity int         `gorm:"not null" json:"stock_quantity"`
	Sales         int         `gorm:"default:0" json:"sales"`
	RatingSum     int         `gorm:"default:0" json:"rating_sum"`
	ReviewCount   int         `gorm:"default:0" json:"review_count"`
	FeatureType   FeatureType `gorm:"type:VARCHAR(20);default:'basic'" json:"feature_type"`
	Gender        Gender      `gorm:"type:VARCHAR(10)" json:"gender"`
	CategoryID    uint        `gorm:"index" json:"category_id"`
	Variants      []Variant   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"variants,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

type Variant struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"variant_id"`
	ProductID     uint      `gorm:"not null;index" json:"product_id"`
	Size          Size      `gorm:"type:VARCHAR(5)" json:"size"`
	ColorID       uint      `json:"color_id"`
	Color         Color     `gorm:"foreignKey:ColorID" json:"color,omitempty"`
	StockQuantity int       `json:"stock_quantity"`
	CreatedAt     time.Time `json:"created_at"`
}

type Color struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"color_id"`
	Name string `gorm:"not null" json:"name"`
	Hex  string `gorm:"type:VARCHAR(9)" json:"hex"`
}
