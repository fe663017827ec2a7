package models

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Provider  string    `gorm:"type:VARCHAR(20);not null;index:idx_users_email_provider" json:"provider"` // "google" or "apple"
	Email     string    `gorm:"not null;index:idx_users_email_provider" json:"email"`
	Name      string    `gorm:"not null" json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Addresses []Address `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"addresses,omitempty"`
	Orders    []Order   `gorm:"foreignKey:UserID" json:"orders,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Address struct {
	ID            uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        uint   `gorm:"not null;index" json:"user_id"`
	StreetAddress string `gorm:"not null" json:"street_address"`
	City          string `gorm:"not null" json:"city"`
	State         string `gorm:"not null" json:"state"`
	PostalCode    string `gorm:"not null" json:"postal_code"`
	IsDefault     bool   `gorm:"default:false" json:"is_default"`
}
