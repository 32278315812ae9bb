package models

import "time"

// ShippingImage stores metadata for delivery-proof photos. The file itself
// lives in external storage; only the URL is kept here.
type ShippingImage struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	OrderID    uint      `gorm:"not null;index" json:"order_id"`
	ImageURL   string    `gorm:"size:500;not null" json:"image_url"`
	ImageType  string    `gorm:"size:30;not null;default:'shipment_proof'" json:"image_type"`
	UploadedBy *uint     `json:"uploaded_by,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}
