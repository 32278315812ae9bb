package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"kurniasari-api/dtos"
	"kurniasari-api/models"
	"kurniasari-api/utils"
)

type AssignmentService interface {
	AssignOrder(ctx context.Context, orderNumber string, input dtos.AssignOrderInput, actorID *uint, ipAddress string) (*dtos.AssignmentResult, error)
	ListAssignmentOptions() (*dtos.AssignmentOptions, error)
}

type assignmentService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewAssignmentService(db *gorm.DB, log *zap.Logger) AssignmentService {
	if log == nil {
		log = zap.NewNop()
	}
	return &assignmentService{db: db, log: log}
}

// AssignOrder binds an order to a deliveryman and outlet. Preconditions
// are checked in order and short-circuit on the first failure. Reassigning
// an already-assigned order requires Force; the write itself is a
// compare-and-swap against the previous assignment so concurrent attempts
// have exactly one winner.
func (s *assignmentService) AssignOrder(ctx context.Context, orderNumber string, input dtos.AssignOrderInput, actorID *uint, ipAddress string) (*dtos.AssignmentResult, error) {
	var order models.Order
	if err := s.db.WithContext(ctx).Where("order_number = ?", orderNumber).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	var deliveryman models.User
	if err := s.db.First(&deliveryman, input.DeliverymanID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidDeliveryman
		}
		return nil, err
	}
	if deliveryman.Role != models.RoleDeliveryman {
		return nil, ErrInvalidDeliveryman
	}

	var outlet models.Outlet
	if err := s.db.First(&outlet, input.OutletID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidOutlet
		}
		return nil, err
	}
	if outlet.Status != models.OutletActive {
		return nil, ErrOutletInactive
	}

	if deliveryman.OutletID != nil && *deliveryman.OutletID != input.OutletID {
		return nil, ErrOutletMismatch
	}

	if order.AssignedDeliverymanID != nil && !input.Force {
		return nil, ErrAlreadyAssigned
	}

	result := &dtos.AssignmentResult{}
	now := time.Now()

	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Conditional write against the assignment pre-image loaded above.
		// A concurrent assignment changes the pre-image and makes this
		// update match zero rows.
		q := tx.Model(&models.Order{}).Where("id = ?", order.ID)
		if order.AssignedDeliverymanID == nil {
			q = q.Where("assigned_deliveryman_id IS NULL")
		} else {
			q = q.Where("assigned_deliveryman_id = ?", *order.AssignedDeliverymanID)
		}
		res := q.Updates(map[string]interface{}{
			"assigned_deliveryman_id": input.DeliverymanID,
			"assigned_outlet_id":      input.OutletID,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrConcurrentModification
		}

		// Close the previous active assignment row, if any.
		var prev models.OrderAssignment
		err := tx.Where("order_id = ? AND released_at IS NULL", order.ID).First(&prev).Error
		switch {
		case err == nil:
			if err := tx.Model(&prev).Update("released_at", now).Error; err != nil {
				return err
			}
			prev.ReleasedAt = &now
			result.PreviousAssignment = &prev
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		assignment := models.OrderAssignment{
			OrderID:       order.ID,
			DeliverymanID: input.DeliverymanID,
			OutletID:      input.OutletID,
			AssignedBy:    actorID,
			AssignedAt:    now,
		}
		if err := tx.Create(&assignment).Error; err != nil {
			return err
		}
		result.Assignment = &assignment

		action := "assign"
		if result.PreviousAssignment != nil {
			action = "reassign"
		}
		return utils.CreateAssignmentAuditLog(tx, action, order.ID,
			result.PreviousAssignment, result.Assignment, actorID, ipAddress,
			fmt.Sprintf("order %s assigned to deliveryman %d at outlet %d", order.OrderNumber, input.DeliverymanID, input.OutletID))
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("order assigned",
		zap.String("order_number", order.OrderNumber),
		zap.Uint("deliveryman_id", input.DeliverymanID),
		zap.Uint("outlet_id", input.OutletID),
		zap.Bool("reassignment", result.PreviousAssignment != nil))

	return result, nil
}

// ListAssignmentOptions returns active outlets plus every deliveryman with
// the resolved outlet name. Deliverymen with no outlet still appear with a
// null outlet_name.
func (s *assignmentService) ListAssignmentOptions() (*dtos.AssignmentOptions, error) {
	var outlets []models.Outlet
	if err := s.db.Where("status = ?", models.OutletActive).Order("name").Find(&outlets).Error; err != nil {
		return nil, err
	}

	var deliveryUsers []dtos.DeliveryUserOption
	if err := s.db.Table("users").
		Select("users.id, users.username, users.outlet_id, outlets.name AS outlet_name").
		Joins("LEFT JOIN outlets ON outlets.id = users.outlet_id AND outlets.deleted_at IS NULL").
		Where("users.role = ? AND users.deleted_at IS NULL", models.RoleDeliveryman).
		Order("users.username").
		Scan(&deliveryUsers).Error; err != nil {
		return nil, err
	}

	return &dtos.AssignmentOptions{
		Outlets:       outlets,
		DeliveryUsers: deliveryUsers,
	}, nil
}
