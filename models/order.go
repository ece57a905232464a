package models

import (
	"time"

	"gorm.io/datatypes"
)

type OrderStatus string
type PaymentStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // Order placed, awaiting confirmation
	OrderStatusConfirmed OrderStatus = "confirmed" // Confirmed by an operator
	OrderStatusCancelled OrderStatus = "cancelled" // Cancelled before completion
	OrderStatusCompleted OrderStatus = "completed" // Trip finished

	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

type Order struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	OrderNumber string  `gorm:"uniqueIndex;not null" json:"order_number"`
	UserID      *uint   `gorm:"index" json:"user_id,omitempty"`
	SessionID   *string `gorm:"index" json:"session_id,omitempty"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`

	TotalAmount float64 `json:"total_amount"`
	Currency    string  `gorm:"type:VARCHAR(3);default:'EGP'" json:"currency"`

	Status        OrderStatus   `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	PaymentStatus PaymentStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"payment_status"`

	CustomerName  string `gorm:"not null" json:"customer_name"`
	CustomerEmail string `gorm:"not null" json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`

	CreatedAt time.Time `json:"created_at"`
}

// OrderItem freezes one cart line at checkout time. Rows are never mutated
// after creation; catalog price changes do not flow back into past orders.
type OrderItem struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	OrderID uint `gorm:"index" json:"order_id"`

	ItemType ItemType `gorm:"type:VARCHAR(20);not null" json:"item_type"`
	ItemID   uint     `gorm:"not null" json:"item_id"`
	ItemName string   `gorm:"not null" json:"item_name"`

	UnitPrice       float64  `json:"unit_price"`
	DiscountedPrice *float64 `json:"discounted_price,omitempty"`
	TotalPrice      float64  `json:"total_price"`

	Quantity int `gorm:"not null" json:"quantity"`
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`

	CheckInDate  *time.Time `json:"check_in_date,omitempty"`
	CheckOutDate *time.Time `json:"check_out_date,omitempty"`
	TravelDate   *time.Time `json:"travel_date,omitempty"`

	Configuration datatypes.JSON `json:"configuration,omitempty"`
}
