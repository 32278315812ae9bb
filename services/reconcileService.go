package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"kurniasari-api/dtos"
	"kurniasari-api/gateway"
	"kurniasari-api/models"
	"kurniasari-api/utils"
)

// transactionStatusMap projects the gateway vocabulary onto the local
// payment status enum. Anything outside this table is flagged for manual
// review instead of being written.
var transactionStatusMap = map[string]string{
	"settlement":     models.PaymentPaid,
	"capture":        models.PaymentPaid,
	"pending":        models.PaymentPending,
	"deny":           models.PaymentFailed,
	"cancel":         models.PaymentCancelled,
	"expire":         models.PaymentExpired,
	"refund":         models.PaymentRefunded,
	"partial_refund": models.PaymentRefunded,
}

type ReconcileService interface {
	ReconcilePayment(ctx context.Context, orderNumber string) (*dtos.SyncResult, error)
}

type reconcileService struct {
	db  *gorm.DB
	gw  gateway.Client
	log *zap.Logger
}

func NewReconcileService(db *gorm.DB, gw gateway.Client, log *zap.Logger) ReconcileService {
	if log == nil {
		log = zap.NewNop()
	}
	return &reconcileService{db: db, gw: gw, log: log}
}

// ReconcilePayment syncs one order against the gateway's record. Repeated
// calls with an unchanged gateway state are no-ops. Backward moves are
// rejected so a stale gateway response can never undo a newer one.
func (s *reconcileService) ReconcilePayment(ctx context.Context, orderNumber string) (*dtos.SyncResult, error) {
	var order models.Order
	if err := s.db.Where("order_number = ?", orderNumber).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	st, err := s.gw.FetchTransactionStatus(ctx, orderNumber)
	if err != nil {
		switch {
		case errors.Is(err, gateway.ErrRejected):
			s.flagForReview(&order, "gateway does not know this order")
			return nil, ErrReconciliationInvalid
		default:
			// Network errors, timeouts and 5xx are retriable.
			return nil, fmt.Errorf("%w: %v", ErrReconciliationDeferred, err)
		}
	}

	newStatus, ok := transactionStatusMap[st.TransactionStatus]
	if !ok {
		s.flagForReview(&order, "unknown gateway transaction_status "+st.TransactionStatus)
		return nil, ErrReconciliationInvalid
	}

	// One retry on a lost compare-and-swap; the second loser means another
	// reconciliation is actively racing us.
	for attempt := 0; attempt < 2; attempt++ {
		result, err := s.apply(&order, st, newStatus)
		if err == nil || !errors.Is(err, ErrConcurrentModification) {
			return result, err
		}
		if refreshErr := s.db.Where("order_number = ?", orderNumber).First(&order).Error; refreshErr != nil {
			return nil, refreshErr
		}
	}
	return nil, ErrConcurrentModification
}

// apply runs the transition guard against the loaded pre-image and writes
// conditionally on that pre-image still holding.
func (s *reconcileService) apply(order *models.Order, st *gateway.TransactionStatus, newStatus string) (*dtos.SyncResult, error) {
	oldStatus := order.PaymentStatus

	if newStatus == oldStatus {
		return &dtos.SyncResult{
			OrderNumber:       order.OrderNumber,
			OldPaymentStatus:  oldStatus,
			PaymentStatus:     oldStatus,
			TransactionStatus: st.TransactionStatus,
			Changed:           false,
		}, nil
	}

	if !models.CanTransition(oldStatus, newStatus) {
		s.log.Warn("rejected backward payment transition",
			zap.String("order_number", order.OrderNumber),
			zap.String("from", oldStatus),
			zap.String("to", newStatus),
			zap.String("transaction_status", st.TransactionStatus))
		return nil, ErrInvalidTransition
	}

	observed := st.ObservedAt
	res := s.db.Model(&models.Order{}).
		Where("order_number = ? AND payment_status = ?", order.OrderNumber, oldStatus).
		Updates(map[string]interface{}{
			"payment_status":      newStatus,
			"transaction_status":  st.TransactionStatus,
			"payment_observed_at": observed,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrConcurrentModification
	}

	updated := *order
	updated.PaymentStatus = newStatus
	updated.TransactionStatus = &st.TransactionStatus
	updated.PaymentObservedAt = &observed
	if err := utils.CreateOrderAuditLog(s.db, "payment_sync", order.ID, order, &updated, nil, "",
		fmt.Sprintf("payment status %s -> %s via gateway sync", oldStatus, newStatus)); err != nil {
		s.log.Warn("audit log write failed",
			zap.String("order_number", order.OrderNumber), zap.Error(err))
	}

	s.log.Info("payment status reconciled",
		zap.String("order_number", order.OrderNumber),
		zap.String("from", oldStatus),
		zap.String("to", newStatus))

	return &dtos.SyncResult{
		OrderNumber:       order.OrderNumber,
		OldPaymentStatus:  oldStatus,
		PaymentStatus:     newStatus,
		TransactionStatus: st.TransactionStatus,
		Changed:           true,
	}, nil
}

// flagForReview records a manual-review marker without touching payment
// fields.
func (s *reconcileService) flagForReview(order *models.Order, reason string) {
	if err := utils.CreateOrderAuditLog(s.db, "manual_review", order.ID, order, nil, nil, "", reason); err != nil {
		s.log.Warn("audit log write failed",
			zap.String("order_number", order.OrderNumber), zap.Error(err))
	}
	s.log.Warn("reconciliation flagged for manual review",
		zap.String("order_number", order.OrderNumber),
		zap.String("reason", reason))
}
