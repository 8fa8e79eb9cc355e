package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Username string    `gorm:"uniqueIndex" json:"username"`
	Password string    `json:"-"`
	Role     string    `json:"role"` // "donor", "receiver", "admin"
	Name     string    `json:"name"`
	Contact  string    `json:"contact,omitempty"`
	Address  string    `json:"address,omitempty"`
	IsActive bool      `gorm:"default:true" json:"is_active"`

	Timestamp
}
