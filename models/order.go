package models

import "time"

type OrderStatus string
type PaymentStatus string
type PaymentMethod string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"

	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"

	PaymentMethodCreditCard   PaymentMethod = "credit_card"
	PaymentMethodDebitCard    PaymentMethod = "debit_card"
	PaymentMethodPaypal       PaymentMethod = "paypal"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
)

type Order struct {
	ID          uint        `gorm:"primaryKey;autoIncrement" json:"order_id"`
	OrderRef    string      `gorm:"uniqueIndex" json:"order_ref"`
	UserID      uint        `gorm:"not null;index" json:"user_id"`
	Status      OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	TotalAmount float64     `gorm:"not null" json:"total_amount"`
	Items       []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}

type OrderItem struct {
	ID              uint    `gorm:"primaryKey;autoIncrement" json:"order_item_id"`
	OrderID         uint    `gorm:"index" json:"order_id"`
	ProductID       uint    `gorm:"not null" json:"product_id"`
	Quantity        int     `gorm:"not null" json:"quantity"`
	PriceAtPurchase float64 `gorm:"not null" json:"price_at_purchase"` // snapshot, immutable
}

type Payment struct {
	ID      uint          `gorm:"primaryKey;autoIncrement" json:"payment_id"`
	OrderID uint          `gorm:"not null;index" json:"order_id"`
	Amount  float64       `gorm:"not null" json:"amount"`
	Method  PaymentMethod `gorm:"type:VARCHAR(20);not null" json:"method"`
	Status  PaymentStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	Date    time.Time     `json:"date"`
}
