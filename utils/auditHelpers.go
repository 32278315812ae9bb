package utils

import (
	"encoding/json"

	"gorm.io/gorm"

	"kurniasari-api/models"
)

func CreateOrderAuditLog(
	db *gorm.DB,
	action string,
	entityID uint,
	oldOrder, newOrder *models.Order,
	userID *uint,
	ipAddress string,
	description string,
) error {
	var ip *string
	if ipAddress != "" {
		ip = &ipAddress
	}

	auditLog := models.AuditLog{
		EntityType:  "order",
		EntityID:    entityID,
		Action:      action,
		UserID:      userID,
		OldValue:    toJSONString(oldOrder),
		NewValue:    toJSONString(newOrder),
		Changes:     calculateOrderChanges(action, oldOrder, newOrder),
		IPAddress:   ip,
		Description: description,
	}
	return db.Create(&auditLog).Error
}

func CreateAssignmentAuditLog(
	db *gorm.DB,
	action string,
	orderID uint,
	oldAssignment, newAssignment *models.OrderAssignment,
	userID *uint,
	ipAddress string,
	description string,
) error {
	var ip *string
	if ipAddress != "" {
		ip = &ipAddress
	}

	auditLog := models.AuditLog{
		EntityType:  "assignment",
		EntityID:    orderID,
		Action:      action,
		UserID:      userID,
		OldValue:    toJSONString(oldAssignment),
		NewValue:    toJSONString(newAssignment),
		IPAddress:   ip,
		Description: description,
	}
	return db.Create(&auditLog).Error
}

func CreateUserAuditLog(db *gorm.DB, action string, entityID uint, userID *uint, ipAddress, description string) error {
	var ip *string
	if ipAddress != "" {
		ip = &ipAddress
	}

	auditLog := models.AuditLog{
		EntityType:  "user",
		EntityID:    entityID,
		Action:      action,
		UserID:      userID,
		IPAddress:   ip,
		Description: description,
	}
	return db.Create(&auditLog).Error
}

func toJSONString(v interface{}) *string {
	if v == nil {
		return nil
	}
	bytes, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	str := string(bytes)
	return &str
}

func calculateOrderChanges(action string, oldOrder, newOrder *models.Order) *string {
	if oldOrder == nil || newOrder == nil {
		return nil
	}

	changes := make(map[string]interface{})

	if oldOrder.PaymentStatus != newOrder.PaymentStatus {
		changes["payment_status"] = map[string]string{
			"old": oldOrder.PaymentStatus,
			"new": newOrder.PaymentStatus,
		}
	}

	if GetStringValue(oldOrder.TransactionStatus) != GetStringValue(newOrder.TransactionStatus) {
		changes["transaction_status"] = map[string]string{
			"old": GetStringValue(oldOrder.TransactionStatus),
			"new": GetStringValue(newOrder.TransactionStatus),
		}
	}

	if getUintValue(oldOrder.AssignedDeliverymanID) != getUintValue(newOrder.AssignedDeliverymanID) {
		changes["assigned_deliveryman_id"] = map[string]uint{
			"old": getUintValue(oldOrder.AssignedDeliverymanID),
			"new": getUintValue(newOrder.AssignedDeliverymanID),
		}
	}

	if getUintValue(oldOrder.AssignedOutletID) != getUintValue(newOrder.AssignedOutletID) {
		changes["assigned_outlet_id"] = map[string]uint{
			"old": getUintValue(oldOrder.AssignedOutletID),
			"new": getUintValue(newOrder.AssignedOutletID),
		}
	}

	if len(changes) == 0 {
		return nil
	}

	return toJSONString(changes)
}

func GetStringValue(ptr *string) string {
	if ptr != nil {
		return *ptr
	}
	return ""
}

func getUintValue(ptr *uint) uint {
	if ptr != nil {
		return *ptr
	}
	return 0
}
