package models

import (
	"time"

	"gorm.io/gorm"
)

// Outlet status values. Only active outlets are assignable.
const (
	OutletActive   = "active"
	OutletInactive = "inactive"
)

type Outlet struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	Name          string  `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Status        string  `gorm:"size:20;not null;default:'active'" json:"status"`
	LocationAlias *string `gorm:"size:100" json:"location_alias,omitempty"`
	Address       *string `gorm:"type:text" json:"address,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
