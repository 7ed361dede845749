package models

import "time"

// MenuItem is one orderable dish in the catalog. Items are never updated or
// deleted once a cart line or order line references them.
type MenuItem struct {
	ItemID    uint      `json:"item_id" gorm:"primaryKey"`
	ItemName  string    `json:"item_name" gorm:"not null"`
	ItemPrice float64   `json:"item_price" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}
