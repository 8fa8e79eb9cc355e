package entities

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AlertLog is the denormalized alert document kept in MongoDB for read-side
// analytics. The relational Alert row is authoritative; this copy is
// best-effort and may be missing for alerts whose log write failed.
type AlertLog struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AlertID         string             `bson:"alert_id" json:"alert_id"`
	ItemID          string             `bson:"item_id" json:"item_id"`
	ItemName        string             `bson:"item_name" json:"item_name"`
	Message         string             `bson:"message" json:"message"`
	AlertDate       string             `bson:"alert_date" json:"alert_date"`
	Severity        string             `bson:"severity" json:"severity"`
	DaysUntilExpiry int                `bson:"days_until_expiry" json:"days_until_expiry"`
	Quantity        int                `bson:"quantity" json:"quantity"`
	Category        string             `bson:"category" json:"category"`
	DonorID         string             `bson:"donor_id" json:"donor_id"`
	DonorName       string             `bson:"donor_name" json:"donor_name"`
	ExpiryDate      string             `bson:"expiry_date" json:"expiry_date"`
	Timestamp       time.Time          `bson:"timestamp" json:"timestamp"`
	IsAcknowledged  bool               `bson:"is_acknowledged" json:"is_acknowledged"`
}
