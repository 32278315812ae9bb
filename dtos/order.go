package dtos

import "kurniasari-api/models"

type CreateOrderInput struct {
	CustomerName  string  `json:"customer_name" binding:"required"`
	CustomerPhone *string `json:"customer_phone,omitempty"`
	Note          *string `json:"note,omitempty"`
	Items         []struct {
		Name     string  `json:"name" binding:"required"`
		Quantity int     `json:"quantity" binding:"required,min=1"`
		Price    float64 `json:"price" binding:"required,min=0"`
	} `json:"items" binding:"required,min=1"`
}

type AssignOrderInput struct {
	DeliverymanID uint `json:"deliveryman_id" binding:"required"`
	OutletID      uint `json:"outlet_id" binding:"required"`
	Force         bool `json:"force"`
}

// SyncResult reports a reconciliation outcome, old status included so the
// change is auditable from the response alone.
type SyncResult struct {
	OrderNumber       string `json:"order_number"`
	OldPaymentStatus  string `json:"old_payment_status"`
	PaymentStatus     string `json:"payment_status"`
	TransactionStatus string `json:"transaction_status"`
	Changed           bool   `json:"changed"`
}

// AssignmentResult carries the new assignment plus the one it replaced.
type AssignmentResult struct {
	Assignment         *models.OrderAssignment `json:"assignment"`
	PreviousAssignment *models.OrderAssignment `json:"previous_assignment,omitempty"`
}

// DeliveryUserOption is a deliveryman row annotated with the resolved
// outlet name; OutletName stays null for orphans.
type DeliveryUserOption struct {
	ID         uint    `json:"id"`
	Username   string  `json:"username"`
	OutletID   *uint   `json:"outlet_id,omitempty"`
	OutletName *string `json:"outlet_name"`
}

type AssignmentOptions struct {
	Outlets       []models.Outlet      `json:"outlets"`
	DeliveryUsers []DeliveryUserOption `json:"delivery_users"`
}
