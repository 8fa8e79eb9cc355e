package entities

import (
	"github.com/google/uuid"
	"time"
)

type Alert struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ItemID         uuid.UUID `gorm:"uniqueIndex:idx_alerts_item_day" json:"item_id"`
	Message        string    `gorm:"type:text" json:"message"`
	AlertDate      time.Time `gorm:"type:date;uniqueIndex:idx_alerts_item_day" json:"alert_date"`
	Severity       string    `gorm:"default:MEDIUM" json:"severity"` // "LOW", "MEDIUM", "HIGH", "CRITICAL"
	IsAcknowledged bool      `gorm:"default:false" json:"is_acknowledged"`

	Item *Item `gorm:"foreignKey:ItemID"`
	Timestamp
}
