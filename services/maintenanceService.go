package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"kurniasari-api/dtos"
	"kurniasari-api/models"
	"kurniasari-api/utils"
)

// OrphanDeliveryman is a deliveryman who cannot be assigned anywhere:
// either no outlet at all, or an outlet that no longer exists or is
// inactive.
type OrphanDeliveryman struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	OutletID *uint  `json:"outlet_id,omitempty"`
	Reason   string `json:"reason"`
}

// BulkSyncEntry reports the outcome of one order inside a bulk resync.
type BulkSyncEntry struct {
	OrderNumber string           `json:"order_number"`
	Result      *dtos.SyncResult `json:"result,omitempty"`
	Error       string           `json:"error,omitempty"`
}

type MaintenanceService interface {
	OrphanedDeliverymen() ([]OrphanDeliveryman, error)
	BulkResyncPending(ctx context.Context, limit int) ([]BulkSyncEntry, error)
	ResetPassword(username, newPassword string, actorID *uint, ipAddress string) error
}

type maintenanceService struct {
	db        *gorm.DB
	reconcile ReconcileService
	log       *zap.Logger
}

func NewMaintenanceService(db *gorm.DB, reconcile ReconcileService, log *zap.Logger) MaintenanceService {
	if log == nil {
		log = zap.NewNop()
	}
	return &maintenanceService{db: db, reconcile: reconcile, log: log}
}

// OrphanedDeliverymen lists deliverymen that the assignment validator
// would reject for every outlet.
func (s *maintenanceService) OrphanedDeliverymen() ([]OrphanDeliveryman, error) {
	var deliverymen []models.User
	if err := s.db.Where("role = ?", models.RoleDeliveryman).Find(&deliverymen).Error; err != nil {
		return nil, err
	}

	orphans := []OrphanDeliveryman{}
	for _, d := range deliverymen {
		if d.OutletID == nil {
			orphans = append(orphans, OrphanDeliveryman{
				ID: d.ID, Username: d.Username, Reason: "no outlet assigned",
			})
			continue
		}

		var outlet models.Outlet
		err := s.db.First(&outlet, *d.OutletID).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			orphans = append(orphans, OrphanDeliveryman{
				ID: d.ID, Username: d.Username, OutletID: d.OutletID,
				Reason: fmt.Sprintf("outlet %d does not exist", *d.OutletID),
			})
		case err != nil:
			return nil, err
		case outlet.Status != models.OutletActive:
			orphans = append(orphans, OrphanDeliveryman{
				ID: d.ID, Username: d.Username, OutletID: d.OutletID,
				Reason: fmt.Sprintf("outlet %s is inactive", outlet.Name),
			})
		}
	}
	return orphans, nil
}

// BulkResyncPending reconciles the oldest pending orders against the
// gateway. Safe to re-run: per-order reconciliation is idempotent, and
// per-order failures are reported instead of aborting the batch.
func (s *maintenanceService) BulkResyncPending(ctx context.Context, limit int) ([]BulkSyncEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	var orders []models.Order
	if err := s.db.Where("payment_status = ?", models.PaymentPending).
		Order("created_at").
		Limit(limit).
		Find(&orders).Error; err != nil {
		return nil, err
	}

	entries := make([]BulkSyncEntry, 0, len(orders))
	for _, order := range orders {
		entry := BulkSyncEntry{OrderNumber: order.OrderNumber}
		result, err := s.reconcile.ReconcilePayment(ctx, order.OrderNumber)
		if err != nil {
			entry.Error = err.Error()
		} else {
			entry.Result = result
		}
		entries = append(entries, entry)
	}

	s.log.Info("bulk payment resync finished", zap.Int("orders", len(entries)))
	return entries, nil
}

// ResetPassword replaces a user's password hash. Admin-gated at the route
// layer; every reset leaves an audit row.
func (s *maintenanceService) ResetPassword(username, newPassword string, actorID *uint, ipAddress string) error {
	if len(newPassword) < 8 {
		return errors.New("password must be at least 8 characters")
	}

	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("user not found")
		}
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.db.Model(&user).Update("password", string(hash)).Error; err != nil {
		return err
	}

	return utils.CreateUserAuditLog(s.db, "password_reset", user.ID, actorID, ipAddress,
		fmt.Sprintf("password reset for %s", username))
}
