package item

import (
	"ReliefStock-Backend/domain"
	"ReliefStock-Backend/entities"
	"ReliefStock-Backend/internal/utils/storage"
	"ReliefStock-Backend/pkg/category"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ItemService interface {
		AddItem(ctx context.Context, req domain.AddItemRequest) (domain.ItemResponse, error)
		UpdateItem(ctx context.Context, id string, req domain.UpdateItemRequest) error
		GetItems(ctx context.Context, categoryFilter, donorID string, page, limit int) ([]domain.ItemResponse, int64, error)
		GetItemByID(ctx context.Context, id string) (domain.ItemResponse, error)
		GetExpiringItems(ctx context.Context, days int) ([]domain.ItemResponse, error)
		GetExpiredItems(ctx context.Context) ([]domain.ItemResponse, error)
		UploadItemImage(ctx context.Context, req domain.UploadItemImageRequest) (string, error)
		GetDashboardStats(ctx context.Context) (domain.DashboardStatsResponse, error)
	}

	itemService struct {
		itemRepository ItemRepository
		classifier     category.Classifier
		s3             storage.AwsS3
	}
)

func NewItemService(itemRepository ItemRepository, classifier category.Classifier, s3 storage.AwsS3) ItemService {
	return &itemService{
		itemRepository: itemRepository,
		classifier:     classifier,
		s3:             s3,
	}
}

func (s *itemService) AddItem(ctx context.Context, req domain.AddItemRequest) (domain.ItemResponse, error) {
	expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
	if err != nil {
		return domain.ItemResponse{}, domain.ErrInvalidExpiryDate
	}

	if req.Quantity <= 0 {
		return domain.ItemResponse{}, domain.ErrInvalidQuantity
	}

	donorUUID, err := uuid.Parse(req.DonorID)
	if err != nil {
		return domain.ItemResponse{}, domain.ErrParseUUID
	}

	// An item always carries a category: the caller's choice wins, otherwise
	// the classifier fills it in from the name and description.
	categoryLabel := req.Category
	predicted := false
	if categoryLabel == "" {
		categoryLabel, _ = s.classifier.Predict(req.Name + " " + req.Description)
		predicted = true
	}

	item := &entities.Item{
		ID:               uuid.New(),
		Name:             req.Name,
		Quantity:         req.Quantity,
		ExpiryDate:       expiryDate,
		Description:      req.Description,
		StorageCondition: req.StorageCondition,
		Category:         categoryLabel,
		DonorID:          donorUUID,
	}

	if err := s.itemRepository.AddItem(ctx, item); err != nil {
		return domain.ItemResponse{}, err
	}

	res := s.toResponse(item)
	res.CategoryPredicted = predicted
	return res, nil
}

func (s *itemService) UpdateItem(ctx context.Context, id string, req domain.UpdateItemRequest) error {
	item, err := s.itemRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrItemNotFound
		}
		return err
	}

	if req.Quantity > 0 && req.Quantity != item.Quantity {
		// Once a donation has consumed stock the quantity belongs to the
		// donation ledger and cannot be edited directly.
		donations, err := s.itemRepository.CountDonationsForItem(ctx, id)
		if err != nil {
			return err
		}
		if donations > 0 {
			return domain.ErrQuantityLockedByDonation
		}
		item.Quantity = req.Quantity
	}

	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Description != "" {
		item.Description = req.Description
	}
	if req.StorageCondition != "" {
		item.StorageCondition = req.StorageCondition
	}
	if req.Category != "" {
		item.Category = req.Category
	}
	if req.ExpiryDate != "" {
		expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return domain.ErrInvalidExpiryDate
		}
		item.ExpiryDate = expiryDate
	}

	return s.itemRepository.UpdateItem(ctx, item)
}

func (s *itemService) GetItems(ctx context.Context, categoryFilter, donorID string, page, limit int) ([]domain.ItemResponse, int64, error) {
	items, count, err := s.itemRepository.GetItems(ctx, categoryFilter, donorID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	var response []domain.ItemResponse
	for _, it := range items {
		response = append(response, s.toResponse(it))
	}

	return response, count, nil
}

func (s *itemService) GetItemByID(ctx context.Context, id string) (domain.ItemResponse, error) {
	item, err := s.itemRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ItemResponse{}, domain.ErrItemNotFound
		}
		return domain.ItemResponse{}, err
	}

	return s.toResponse(item), nil
}

func (s *itemService) GetExpiringItems(ctx context.Context, days int) ([]domain.ItemResponse, error) {
	today := time.Now()
	items, err := s.itemRepository.GetExpiringItems(ctx, truncateToDay(today), truncateToDay(today).AddDate(0, 0, days))
	if err != nil {
		return nil, err
	}

	var response []domain.ItemResponse
	for _, it := range items {
		response = append(response, s.toResponse(it))
	}
	return response, nil
}

func (s *itemService) GetExpiredItems(ctx context.Context) ([]domain.ItemResponse, error) {
	items, err := s.itemRepository.GetExpiredItems(ctx, truncateToDay(time.Now()))
	if err != nil {
		return nil, err
	}

	var response []domain.ItemResponse
	for _, it := range items {
		response = append(response, s.toResponse(it))
	}
	return response, nil
}

func (s *itemService) UploadItemImage(ctx context.Context, req domain.UploadItemImageRequest) (string, error) {
	item, err := s.itemRepository.GetItemByID(ctx, req.ItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrItemNotFound
		}
		return "", err
	}

	fileName := fmt.Sprintf("%s-%s", item.ID.String(), req.Image.Filename)

	var objectKey string
	if item.ImageURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(item.ImageURL)
		if existingKey != "" {
			objectKey, err = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
		} else {
			objectKey, err = s.s3.UploadFile(fileName, req.Image, "items", storage.AllowImage...)
		}
	} else {
		objectKey, err = s.s3.UploadFile(fileName, req.Image, "items", storage.AllowImage...)
	}
	if err != nil {
		return "", domain.ErrInvalidImageFormat
	}

	item.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	if err := s.itemRepository.UpdateItem(ctx, item); err != nil {
		return "", err
	}

	return item.ImageURL, nil
}

func (s *itemService) GetDashboardStats(ctx context.Context) (domain.DashboardStatsResponse, error) {
	stats, err := s.itemRepository.GetDashboardStats(ctx, truncateToDay(time.Now()))
	if err != nil {
		return domain.DashboardStatsResponse{}, err
	}

	return domain.DashboardStatsResponse{
		TotalItems:     stats["total_items"],
		TotalDonors:    stats["total_donors"],
		TotalReceivers: stats["total_receivers"],
		TotalDonations: stats["total_donations"],
		TotalAlerts:    stats["total_alerts"],
		ExpiringSoon:   stats["expiring_soon"],
		ExpiredItems:   stats["expired_items"],
		LowStockItems:  stats["low_stock_items"],
	}, nil
}

func (s *itemService) toResponse(item *entities.Item) domain.ItemResponse {
	days := DaysUntilExpiry(item.ExpiryDate, time.Now())

	res := domain.ItemResponse{
		ID:               item.ID.String(),
		Name:             item.Name,
		Quantity:         item.Quantity,
		ExpiryDate:       item.ExpiryDate,
		Description:      item.Description,
		StorageCondition: item.StorageCondition,
		Category:         item.Category,
		ImageURL:         item.ImageURL,
		DonorID:          item.DonorID.String(),
		DaysUntilExpiry:  days,
		ExpiryStatus:     ExpiryStatusFor(days),
		CreatedAt:        item.CreatedAt,
	}
	if item.Donor != nil {
		res.DonorName = item.Donor.Name
	}
	return res
}
