package domain

import (
	"errors"
	"time"
)

const (
	SeverityLow      = "LOW"
	SeverityMedium   = "MEDIUM"
	SeverityHigh     = "HIGH"
	SeverityCritical = "CRITICAL"
)

var (
	MessageSuccessRunExpiryCheck   = "expiry check completed"
	MessageSuccessGetAlerts        = "alerts retrieved successfully"
	MessageSuccessGetAlertLogs     = "alert logs retrieved successfully"
	MessageSuccessAcknowledgeAlert = "alert acknowledged successfully"
	MessageFailedRunExpiryCheck    = "failed to run expiry check"
	MessageFailedGetAlerts         = "failed to retrieve alerts"
	MessageFailedGetAlertLogs      = "failed to retrieve alert logs"
	MessageFailedAcknowledgeAlert  = "failed to acknowledge alert"

	ErrAlertNotFound    = errors.New("alert not found")
	ErrInvalidThreshold = errors.New("threshold days must be positive")
)

type (
	ExpiryCheckRequest struct {
		Days int `json:"days" validate:"omitempty,min=1"`
	}

	ExpiryCheckResponse struct {
		CheckedItems  int       `json:"checked_items"`
		AlertsCreated int       `json:"alerts_created"`
		AlertsLogged  int       `json:"alerts_logged"`
		Skipped       int       `json:"skipped"`
		Timestamp     time.Time `json:"timestamp"`
	}

	AlertResponse struct {
		ID             string    `json:"id"`
		ItemID         string    `json:"item_id"`
		ItemName       string    `json:"item_name,omitempty"`
		ItemQuantity   int       `json:"item_quantity,omitempty"`
		DonorName      string    `json:"donor_name,omitempty"`
		Message        string    `json:"message"`
		AlertDate      time.Time `json:"alert_date"`
		Severity       string    `json:"severity"`
		IsAcknowledged bool      `json:"is_acknowledged"`
		CreatedAt      time.Time `json:"created_at"`
	}
)
