package models

import "time"

// CartItem is one (user, item, quantity) line in a user's cart. A user has at
// most one line per menu item; repeated adds increment the quantity.
type CartItem struct {
	CartID    uint      `json:"cart_id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"not null;uniqueIndex:idx_cart_user_item"`
	ItemID    uint      `json:"item_id" gorm:"not null;uniqueIndex:idx_cart_user_item"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
