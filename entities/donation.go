package entities

import (
	"github.com/google/uuid"
	"time"
)

// Donation is an append-only record of stock leaving an item. Rows are never
// updated or deleted once written.
type Donation struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ItemID       uuid.UUID  `json:"item_id"`
	ReceiverID   uuid.UUID  `json:"receiver_id"`
	DonorID      *uuid.UUID `gorm:"type:uuid" json:"donor_id,omitempty"`
	Quantity     int        `gorm:"check:quantity > 0" json:"quantity"`
	DonationDate time.Time  `gorm:"type:date" json:"donation_date"`
	DeliveryMode string     `json:"delivery_mode,omitempty"`
	DeliveredBy  string     `json:"delivered_by,omitempty"`
	Notes        string     `gorm:"type:text" json:"notes,omitempty"`

	Item     *Item     `gorm:"foreignKey:ItemID"`
	Receiver *Receiver `gorm:"foreignKey:ReceiverID"`
	Donor    *Donor    `gorm:"foreignKey:DonorID"`
	Timestamp
}

type DonationRequest struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ReceiverID  uuid.UUID  `json:"receiver_id"`
	RequestType string     `json:"request_type"` // "existing" or "new"
	ItemID      *uuid.UUID `gorm:"type:uuid" json:"item_id,omitempty"`
	ItemName    string     `json:"item_name,omitempty"`
	Quantity    int        `gorm:"check:quantity > 0" json:"quantity"`
	Status      string     `gorm:"default:pending" json:"status"` // "pending", "approved", "rejected"
	AdminNote   string     `gorm:"type:text" json:"admin_note,omitempty"`

	Receiver *Receiver `gorm:"foreignKey:ReceiverID"`
	Item     *Item     `gorm:"foreignKey:ItemID"`
	Timestamp
}
