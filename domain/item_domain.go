package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

const (
	ExpiryStatusExpired  = "EXPIRED"
	ExpiryStatusCritical = "CRITICAL"
	ExpiryStatusWarning  = "WARNING"
	ExpiryStatusSafe     = "SAFE"
)

var (
	MessageSuccessAddItem         = "item added successfully"
	MessageSuccessUpdateItem      = "item updated successfully"
	MessageSuccessGetItems        = "items retrieved successfully"
	MessageSuccessUploadItemImage = "item image uploaded successfully"
	MessageSuccessGetDashboard    = "dashboard statistics retrieved successfully"

	MessageFailedAddItem         = "failed to add item"
	MessageFailedUpdateItem      = "failed to update item"
	MessageFailedGetItems        = "failed to retrieve items"
	MessageFailedUploadItemImage = "failed to upload item image"
	MessageFailedGetDashboard    = "failed to retrieve dashboard statistics"

	ErrItemNotFound         = errors.New("item not found")
	ErrInvalidExpiryDate    = errors.New("invalid expiry date")
	ErrInvalidQuantity      = errors.New("quantity must be positive")
	ErrQuantityLockedByDonation = errors.New("quantity can no longer be edited once donations consumed stock")
	ErrInvalidImageFormat   = errors.New("invalid image format")
	ErrItemNotOwnedByDonor  = errors.New("item does not belong to this donor")
)

type (
	AddItemRequest struct {
		Name             string `json:"name" validate:"required"`
		Quantity         int    `json:"quantity" validate:"required,min=1"`
		ExpiryDate       string `json:"expiry_date" validate:"required"`
		Description      string `json:"description" validate:"omitempty"`
		StorageCondition string `json:"storage_condition" validate:"omitempty"`
		Category         string `json:"category" validate:"omitempty"`
		DonorID          string `json:"donor_id" validate:"required,uuid"`
	}

	UpdateItemRequest struct {
		Name             string `json:"name" validate:"omitempty"`
		Quantity         int    `json:"quantity" validate:"omitempty,min=1"`
		ExpiryDate       string `json:"expiry_date" validate:"omitempty"`
		Description      string `json:"description" validate:"omitempty"`
		StorageCondition string `json:"storage_condition" validate:"omitempty"`
		Category         string `json:"category" validate:"omitempty"`
	}

	UploadItemImageRequest struct {
		ItemID string                `json:"item_id" form:"item_id" validate:"required,uuid"`
		Image  *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	ItemResponse struct {
		ID                  string    `json:"id"`
		Name                string    `json:"name"`
		Quantity            int       `json:"quantity"`
		ExpiryDate          time.Time `json:"expiry_date"`
		Description         string    `json:"description,omitempty"`
		StorageCondition    string    `json:"storage_condition,omitempty"`
		Category            string    `json:"category"`
		CategoryPredicted   bool      `json:"category_predicted"`
		ImageURL            string    `json:"image_url,omitempty"`
		DonorID             string    `json:"donor_id"`
		DonorName           string    `json:"donor_name,omitempty"`
		DaysUntilExpiry     int       `json:"days_until_expiry"`
		ExpiryStatus        string    `json:"expiry_status"`
		CreatedAt           time.Time `json:"created_at"`
	}

	DashboardStatsResponse struct {
		TotalItems     int64 `json:"total_items"`
		TotalDonors    int64 `json:"total_donors"`
		TotalReceivers int64 `json:"total_receivers"`
		TotalDonations int64 `json:"total_donations"`
		TotalAlerts    int64 `json:"total_alerts"`
		ExpiringSoon   int64 `json:"expiring_soon"`
		ExpiredItems   int64 `json:"expired_items"`
		LowStockItems  int64 `json:"low_stock_items"`
	}
)
