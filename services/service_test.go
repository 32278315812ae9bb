package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"kurniasari-api/gateway"
	"kurniasari-api/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Outlet{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderAssignment{},
		&models.ShippingImage{},
		&models.AuditLog{},
	))
	return db
}

func createOrder(t *testing.T, db *gorm.DB, orderNumber, paymentStatus string) *models.Order {
	t.Helper()

	order := &models.Order{
		OrderNumber:   orderNumber,
		CustomerName:  "Test Customer",
		Total:         100000,
		PaymentStatus: paymentStatus,
	}
	require.NoError(t, db.Create(order).Error)
	return order
}

func createOutlet(t *testing.T, db *gorm.DB, name, status string) *models.Outlet {
	t.Helper()

	outlet := &models.Outlet{Name: name, Status: status}
	require.NoError(t, db.Create(outlet).Error)
	return outlet
}

func createDeliveryman(t *testing.T, db *gorm.DB, username string, outletID *uint) *models.User {
	t.Helper()

	user := &models.User{Username: username, Password: "x", Role: models.RoleDeliveryman, OutletID: outletID}
	require.NoError(t, db.Create(user).Error)
	return user
}

// stubGateway returns a fixed status or error for every probe.
type stubGateway struct {
	status     string
	observedAt time.Time
	err        error
	calls      int
}

func (s *stubGateway) FetchTransactionStatus(ctx context.Context, orderNumber string) (*gateway.TransactionStatus, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	observed := s.observedAt
	if observed.IsZero() {
		observed = time.Now()
	}
	return &gateway.TransactionStatus{
		OrderNumber:       orderNumber,
		TransactionStatus: s.status,
		GrossAmount:       "100000.00",
		FraudStatus:       "accept",
		ObservedAt:        observed,
	}, nil
}
