package models

import (
	"time"

	"gorm.io/gorm"
)

// User roles.
const (
	RoleAdmin       = "admin"
	RoleDeliveryman = "deliveryman"
	RoleOutletStaff = "outlet-staff"
)

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Password string `gorm:"size:100;not null" json:"-"`
	Role     string `gorm:"size:20;not null" json:"role"`

	// Home outlet. Required for deliverymen doing outlet-scoped delivery;
	// a deliveryman with no outlet is an orphan the maintenance report flags.
	OutletID *uint `gorm:"index" json:"outlet_id,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
