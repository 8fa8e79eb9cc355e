package entities

import (
	"github.com/google/uuid"
)

type Donor struct {
	ID      uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID  *uuid.UUID `gorm:"type:uuid" json:"user_id,omitempty"`
	Name    string     `json:"name"`
	Contact string     `gorm:"uniqueIndex" json:"contact"`
	Address string     `json:"address,omitempty"`

	User  *User   `gorm:"foreignKey:UserID"`
	Items []*Item `gorm:"foreignKey:DonorID"`
	Timestamp
}

type Receiver struct {
	ID      uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID  *uuid.UUID `gorm:"type:uuid" json:"user_id,omitempty"`
	Name    string     `json:"name"`
	Contact string     `gorm:"uniqueIndex" json:"contact"`
	Address string     `json:"address,omitempty"`
	Region  string     `json:"region,omitempty"`

	User      *User       `gorm:"foreignKey:UserID"`
	Donations []*Donation `gorm:"foreignKey:ReceiverID"`
	Timestamp
}
