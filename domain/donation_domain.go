package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRecordDonation = "donation recorded successfully"
	MessageSuccessGetDonations   = "donations retrieved successfully"
	MessageFailedRecordDonation  = "failed to record donation"
	MessageFailedGetDonations    = "failed to retrieve donations"

	ErrDonationNotFound     = errors.New("donation not found")
	ErrInsufficientQuantity = errors.New("insufficient inventory for requested quantity")
)

type (
	RecordDonationRequest struct {
		ItemID       string `json:"item_id" validate:"required,uuid"`
		ReceiverID   string `json:"receiver_id" validate:"required,uuid"`
		DonorID      string `json:"donor_id" validate:"omitempty,uuid"`
		Quantity     int    `json:"quantity" validate:"required,min=1"`
		DeliveryMode string `json:"delivery_mode" validate:"omitempty"`
		DeliveredBy  string `json:"delivered_by" validate:"omitempty"`
		Notes        string `json:"notes" validate:"omitempty"`
	}

	DonationResponse struct {
		ID           string    `json:"id"`
		ItemID       string    `json:"item_id"`
		ItemName     string    `json:"item_name,omitempty"`
		ReceiverID   string    `json:"receiver_id"`
		ReceiverName string    `json:"receiver_name,omitempty"`
		DonorID      *string   `json:"donor_id,omitempty"`
		DonorName    string    `json:"donor_name,omitempty"`
		Quantity     int       `json:"quantity"`
		DonationDate time.Time `json:"donation_date"`
		DeliveryMode string    `json:"delivery_mode,omitempty"`
		DeliveredBy  string    `json:"delivered_by,omitempty"`
		Notes        string    `json:"notes,omitempty"`
		CreatedAt    time.Time `json:"created_at"`
	}
)
