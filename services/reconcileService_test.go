package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"kurniasari-api/gateway"
	"kurniasari-api/models"
)

func TestReconcilePendingToPaid(t *testing.T) {
	db := newTestDB(t)
	createOrder(t, db, "ORDER-1", models.PaymentPending)
	svc := NewReconcileService(db, &stubGateway{status: "settlement"}, nil)

	result, err := svc.ReconcilePayment(context.Background(), "ORDER-1")
	require.NoError(t, err)

	assert.Equal(t, models.PaymentPending, result.OldPaymentStatus)
	assert.Equal(t, models.PaymentPaid, result.PaymentStatus)
	assert.Equal(t, "settlement", result.TransactionStatus)
	assert.True(t, result.Changed)

	var order models.Order
	require.NoError(t, db.Where("order_number = ?", "ORDER-1").First(&order).Error)
	assert.Equal(t, models.PaymentPaid, order.PaymentStatus)
	assert.Equal(t, "settlement", *order.TransactionStatus)
	assert.NotNil(t, order.PaymentObservedAt)

	var audits int64
	db.Model(&models.AuditLog{}).Where("action = ?", "payment_sync").Count(&audits)
	assert.EqualValues(t, 1, audits)
}

func TestReconcileRejectsBackwardTransition(t *testing.T) {
	db := newTestDB(t)
	createOrder(t, db, "ORDER-1", models.PaymentPaid)
	svc := NewReconcileService(db, &stubGateway{status: "pending"}, nil)

	_, err := svc.ReconcilePayment(context.Background(), "ORDER-1")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	var order models.Order
	require.NoError(t, db.Where("order_number = ?", "ORDER-1").First(&order).Error)
	assert.Equal(t, models.PaymentPaid, order.PaymentStatus)
}

func TestReconcileIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	createOrder(t, db, "ORDER-1", models.PaymentPending)
	svc := NewReconcileService(db, &stubGateway{status: "settlement"}, nil)

	first, err := svc.ReconcilePayment(context.Background(), "ORDER-1")
	require.NoError(t, err)
	assert.True(t, first.Changed)

	second, err := svc.ReconcilePayment(context.Background(), "ORDER-1")
	require.NoError(t, err)
	assert.False(t, second.Changed)
	assert.Equal(t, first.PaymentStatus, second.PaymentStatus)

	// no second write, no second audit row
	var audits int64
	db.Model(&models.AuditLog{}).Where("action = ?", "payment_sync").Count(&audits)
	assert.EqualValues(t, 1, audits)
}

func TestReconcileGatewayUnavailable(t *testing.T) {
	db := newTestDB(t)
	createOrder(t, db, "ORDER-1", models.PaymentPending)
	svc := NewReconcileService(db, &stubGateway{err: gateway.ErrUnavailable}, nil)

	_, err := svc.ReconcilePayment(context.Background(), "ORDER-1")
	assert.ErrorIs(t, err, ErrReconciliationDeferred)

	var order models.Order
	require.NoError(t, db.Where("order_number = ?", "ORDER-1").First(&order).Error)
	assert.Equal(t, models.PaymentPending, order.PaymentStatus)
}

func TestReconcileGatewayRejected(t *testing.T) {
	db := newTestDB(t)
	createOrder(t, db, "ORDER-1", models.PaymentPending)
	svc := NewReconcileService(db, &stubGateway{err: gateway.ErrRejected}, nil)

	_, err := svc.ReconcilePayment(context.Background(), "ORDER-1")
	assert.ErrorIs(t, err, ErrReconciliationInvalid)

	var order models.Order
	require.NoError(t, db.Where("order_number = ?", "ORDER-1").First(&order).Error)
	assert.Equal(t, models.PaymentPending, order.PaymentStatus)
	assert.Nil(t, order.TransactionStatus)

	var audits int64
	db.Model(&models.AuditLog{}).Where("action = ?", "manual_review").Count(&audits)
	assert.EqualValues(t, 1, audits)
}

func TestReconcileUnknownVocabulary(t *testing.T) {
	db := newTestDB(t)
	createOrder(t, db, "ORDER-1", models.PaymentPending)
	svc := NewReconcileService(db, &stubGateway{status: "authorize"}, nil)

	_, err := svc.ReconcilePayment(context.Background(), "ORDER-1")
	assert.ErrorIs(t, err, ErrReconciliationInvalid)
}

func TestReconcileOrderNotFound(t *testing.T) {
	db := newTestDB(t)
	gw := &stubGateway{status: "settlement"}
	svc := NewReconcileService(db, gw, nil)

	_, err := svc.ReconcilePayment(context.Background(), "ORDER-MISSING")
	assert.ErrorIs(t, err, ErrOrderNotFound)
	assert.Zero(t, gw.calls, "gateway must not be probed for unknown orders")
}

func TestReconcilePaidToRefunded(t *testing.T) {
	db := newTestDB(t)
	createOrder(t, db, "ORDER-1", models.PaymentPaid)
	svc := NewReconcileService(db, &stubGateway{status: "refund"}, nil)

	result, err := svc.ReconcilePayment(context.Background(), "ORDER-1")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentRefunded, result.PaymentStatus)
}

func TestReconcileRetriesLostCompareAndSwap(t *testing.T) {
	db := newTestDB(t)
	createOrder(t, db, "ORDER-1", models.PaymentPending)

	// Flip the row underneath the first compare-and-swap, once, right
	// before the conditional update runs. The retry reloads the fresh
	// pre-image and lands on a no-op.
	fired := false
	err := db.Callback().Update().Before("gorm:update").Register("test:race", func(tx *gorm.DB) {
		if fired || tx.Statement.Table != "orders" {
			return
		}
		fired = true
		execErr := db.Session(&gorm.Session{NewDB: true, SkipHooks: true}).Exec(
			"UPDATE orders SET payment_status = ? WHERE order_number = ?",
			models.PaymentPaid, "ORDER-1").Error
		require.NoError(t, execErr)
	})
	require.NoError(t, err)

	svc := NewReconcileService(db, &stubGateway{status: "settlement"}, nil)
	result, reconcileErr := svc.ReconcilePayment(context.Background(), "ORDER-1")
	require.NoError(t, reconcileErr)

	assert.True(t, fired)
	assert.False(t, result.Changed)
	assert.Equal(t, models.PaymentPaid, result.PaymentStatus)
}
