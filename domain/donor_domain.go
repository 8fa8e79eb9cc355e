package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateDonor = "donor created successfully"
	MessageSuccessUpdateDonor = "donor updated successfully"
	MessageSuccessDeleteDonor = "donor deleted successfully"
	MessageSuccessGetDonors   = "donors retrieved successfully"
	MessageFailedCreateDonor  = "failed to create donor"
	MessageFailedUpdateDonor  = "failed to update donor"
	MessageFailedDeleteDonor  = "failed to delete donor"
	MessageFailedGetDonors    = "failed to retrieve donors"

	MessageSuccessCreateReceiver = "receiver created successfully"
	MessageSuccessUpdateReceiver = "receiver updated successfully"
	MessageSuccessDeleteReceiver = "receiver deleted successfully"
	MessageSuccessGetReceivers   = "receivers retrieved successfully"
	MessageFailedCreateReceiver  = "failed to create receiver"
	MessageFailedUpdateReceiver  = "failed to update receiver"
	MessageFailedDeleteReceiver  = "failed to delete receiver"
	MessageFailedGetReceivers    = "failed to retrieve receivers"

	ErrDonorNotFound           = errors.New("donor not found")
	ErrReceiverNotFound        = errors.New("receiver not found")
	ErrContactAlreadyExists    = errors.New("contact already registered")
	ErrDonorStillReferenced    = errors.New("donor still owns inventory items")
	ErrReceiverStillReferenced = errors.New("receiver still has donation requests")
)

type (
	CreateDonorRequest struct {
		Name    string `json:"name" validate:"required"`
		Contact string `json:"contact" validate:"required,max=15"`
		Address string `json:"address" validate:"omitempty"`
	}

	UpdateDonorRequest struct {
		Name    string `json:"name" validate:"omitempty"`
		Contact string `json:"contact" validate:"omitempty,max=15"`
		Address string `json:"address" validate:"omitempty"`
	}

	DonorResponse struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		Contact   string    `json:"contact"`
		Address   string    `json:"address,omitempty"`
		CreatedAt time.Time `json:"created_at"`
	}

	CreateReceiverRequest struct {
		Name    string `json:"name" validate:"required"`
		Contact string `json:"contact" validate:"required,max=15"`
		Address string `json:"address" validate:"omitempty"`
		Region  string `json:"region" validate:"omitempty"`
	}

	UpdateReceiverRequest struct {
		Name    string `json:"name" validate:"omitempty"`
		Contact string `json:"contact" validate:"omitempty,max=15"`
		Address string `json:"address" validate:"omitempty"`
		Region  string `json:"region" validate:"omitempty"`
	}

	ReceiverResponse struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		Contact   string    `json:"contact"`
		Address   string    `json:"address,omitempty"`
		Region    string    `json:"region,omitempty"`
		CreatedAt time.Time `json:"created_at"`
	}
)
