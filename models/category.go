package models

type Category struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"category_id"`
	CategoryName string    `gorm:"unique;not null" json:"category_name"`
	Description  string    `json:"description"`
	Products     []Product `gorm:"foreignKey:CategoryID" json:"products,omitempty"`
}
