package services

import "errors"

var (
	ErrOrderNotFound          = errors.New("order not found")
	ErrInvalidDeliveryman     = errors.New("deliveryman not found or not a deliveryman")
	ErrInvalidOutlet          = errors.New("outlet not found")
	ErrOutletInactive         = errors.New("outlet is inactive")
	ErrOutletMismatch         = errors.New("deliveryman belongs to a different outlet")
	ErrAlreadyAssigned        = errors.New("order already assigned, use force to reassign")
	ErrConcurrentModification = errors.New("order was modified concurrently")

	ErrInvalidTransition      = errors.New("payment status transition not allowed")
	ErrReconciliationDeferred = errors.New("gateway unavailable, retry later")
	ErrReconciliationInvalid  = errors.New("order unknown to gateway, flagged for manual review")
)
