package models

// OrderItem is an immutable snapshot of one item/quantity within a placed
// order. One line per (order, item).
type OrderItem struct {
	OrderID  uint `json:"order_id" gorm:"primaryKey;autoIncrement:false"`
	ItemID   uint `json:"item_id" gorm:"primaryKey;autoIncrement:false"`
	Quantity int  `json:"quantity" gorm:"not null"`
}
