package models

import "time"

// OrderAssignment is the durable assignment history. The row with
// ReleasedAt == nil is the single active assignment for the order.
type OrderAssignment struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	OrderID       uint       `gorm:"not null;index" json:"order_id"`
	DeliverymanID uint       `gorm:"not null;index" json:"deliveryman_id"`
	OutletID      uint       `gorm:"not null;index" json:"outlet_id"`
	AssignedBy    *uint      `json:"assigned_by,omitempty"`
	AssignedAt    time.Time  `gorm:"not null" json:"assigned_at"`
	ReleasedAt    *time.Time `gorm:"index" json:"released_at,omitempty"`
}
