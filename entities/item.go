package entities

import (
	"github.com/google/uuid"
	"time"
)

type Item struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name             string    `json:"name"`
	Quantity         int       `gorm:"check:quantity >= 0" json:"quantity"`
	ExpiryDate       time.Time `gorm:"type:date" json:"expiry_date"`
	Description      string    `gorm:"type:text" json:"description,omitempty"`
	StorageCondition string    `json:"storage_condition,omitempty"`
	Category         string    `json:"category"`
	ImageURL         string    `json:"image_url,omitempty"`
	DonorID          uuid.UUID `json:"donor_id"`

	Donor     *Donor      `gorm:"foreignKey:DonorID"`
	Alerts    []*Alert    `gorm:"foreignKey:ItemID"`
	Donations []*Donation `gorm:"foreignKey:ItemID"`
	Timestamp
}
