package models

import (
	"time"

	"gorm.io/gorm"
)

// Payment status values. PaymentStatus is the local projection of the
// latest transaction_status observed at the gateway.
const (
	PaymentPending   = "pending"
	PaymentPaid      = "paid"
	PaymentFailed    = "failed"
	PaymentExpired   = "expired"
	PaymentCancelled = "cancelled"
	PaymentRefunded  = "refunded"
)

type Order struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	OrderNumber string `gorm:"size:64;uniqueIndex;not null" json:"order_number"`

	CustomerName  string  `gorm:"size:100;not null" json:"customer_name"`
	CustomerPhone *string `gorm:"size:30" json:"customer_phone,omitempty"`
	Total         float64 `gorm:"not null;default:0" json:"total"`

	PaymentStatus     string     `gorm:"size:20;not null;default:'pending';index" json:"payment_status"`
	TransactionStatus *string    `gorm:"size:40" json:"transaction_status,omitempty"`
	PaymentObservedAt *time.Time `json:"payment_observed_at,omitempty"`

	AssignedDeliverymanID *uint `gorm:"index" json:"assigned_deliveryman_id,omitempty"`
	AssignedOutletID      *uint `gorm:"index" json:"assigned_outlet_id,omitempty"`

	Items          []OrderItem     `json:"items"`
	ShippingImages []ShippingImage `json:"shipping_images,omitempty"`
	Note           *string         `gorm:"type:text" json:"note,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

type OrderItem struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	OrderID  uint    `gorm:"not null;index" json:"order_id"`
	Name     string  `gorm:"size:100;not null" json:"name"`
	Quantity int     `gorm:"not null" json:"quantity"`
	Price    float64 `gorm:"not null" json:"price"`
	Subtotal float64 `gorm:"not null" json:"subtotal"`
}

// forwardTransitions is the partial order on payment statuses. A status
// missing from the map is terminal.
var forwardTransitions = map[string][]string{
	PaymentPending: {PaymentPaid, PaymentFailed, PaymentExpired, PaymentCancelled},
	PaymentPaid:    {PaymentRefunded},
}

// CanTransition reports whether moving from -> to is a forward move.
// Same-status moves are not transitions; callers treat them as no-ops.
func CanTransition(from, to string) bool {
	for _, next := range forwardTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminalPaymentStatus reports whether no further transition is allowed.
func IsTerminalPaymentStatus(status string) bool {
	return len(forwardTransitions[status]) == 0
}
