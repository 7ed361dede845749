package models

import "time"

// Order is one placed order. Immutable after creation except for the status
// slot, which this subsystem sets once and never transitions.
type Order struct {
	OrderID   uint      `json:"order_id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"not null;index"`
	Status    string    `json:"status" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

type OrderStatus string

const (
	OrderReceived  OrderStatus = "received"
	OrderPreparing OrderStatus = "preparing"
)
