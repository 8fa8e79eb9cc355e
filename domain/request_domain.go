package domain

import (
	"errors"
	"time"
)

const (
	RequestTypeExisting = "existing"
	RequestTypeNew      = "new"

	RequestStatusPending  = "pending"
	RequestStatusApproved = "approved"
	RequestStatusRejected = "rejected"
)

var (
	MessageSuccessCreateRequest  = "donation request created successfully"
	MessageSuccessResolveRequest = "donation request resolved successfully"
	MessageSuccessDeleteRequest  = "donation request deleted successfully"
	MessageSuccessGetRequests    = "donation requests retrieved successfully"
	MessageFailedCreateRequest   = "failed to create donation request"
	MessageFailedResolveRequest  = "failed to resolve donation request"
	MessageFailedDeleteRequest   = "failed to delete donation request"
	MessageFailedGetRequests     = "failed to retrieve donation requests"

	ErrRequestNotFound        = errors.New("donation request not found")
	ErrRequestAlreadyResolved = errors.New("donation request already resolved")
	ErrRequestItemRequired    = errors.New("item_id is required for existing item requests")
	ErrRequestNameRequired    = errors.New("item_name is required for new item requests")
	ErrRequestNotPending      = errors.New("only pending requests can be deleted")
	ErrInvalidRequestStatus   = errors.New("status must be approved or rejected")
)

type (
	CreateDonationRequestRequest struct {
		ReceiverID  string `json:"receiver_id" validate:"required,uuid"`
		RequestType string `json:"request_type" validate:"required,oneof=existing new"`
		ItemID      string `json:"item_id" validate:"omitempty,uuid"`
		ItemName    string `json:"item_name" validate:"omitempty"`
		Quantity    int    `json:"quantity" validate:"required,min=1"`
	}

	ResolveDonationRequestRequest struct {
		Status    string `json:"status" validate:"required,oneof=approved rejected"`
		AdminNote string `json:"admin_note" validate:"omitempty"`
	}

	DonationRequestResponse struct {
		ID           string    `json:"id"`
		ReceiverID   string    `json:"receiver_id"`
		ReceiverName string    `json:"receiver_name,omitempty"`
		RequestType  string    `json:"request_type"`
		ItemID       *string   `json:"item_id,omitempty"`
		ItemName     string    `json:"item_name,omitempty"`
		Quantity     int       `json:"quantity"`
		Status       string    `json:"status"`
		AdminNote    string    `json:"admin_note,omitempty"`
		CreatedAt    time.Time `json:"created_at"`
	}
)
