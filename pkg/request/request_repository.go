package request

import (
	"ReliefStock-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	RequestRepository interface {
		CreateRequest(ctx context.Context, request *entities.DonationRequest) error
		GetRequestByID(ctx context.Context, id string) (*entities.DonationRequest, error)
		UpdateRequest(ctx context.Context, request *entities.DonationRequest) error
		DeleteRequest(ctx context.Context, id string) error
		GetRequests(ctx context.Context, status, receiverID string, page, limit int) ([]*entities.DonationRequest, int64, error)
		GetItemByID(ctx context.Context, id string) (*entities.Item, error)
		GetReceiverByID(ctx context.Context, id string) (*entities.Receiver, error)
	}

	requestRepository struct {
		db *gorm.DB
	}
)

func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) CreateRequest(ctx context.Context, request *entities.DonationRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *requestRepository) GetRequestByID(ctx context.Context, id string) (*entities.DonationRequest, error) {
	var request entities.DonationRequest
	if err := r.db.WithContext(ctx).
		Preload("Receiver").
		Preload("Item").
		Where("id = ?", id).
		First(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *requestRepository) UpdateRequest(ctx context.Context, request *entities.DonationRequest) error {
	return r.db.WithContext(ctx).Save(request).Error
}

func (r *requestRepository) DeleteRequest(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.DonationRequest{}).Error
}

func (r *requestRepository) GetRequests(ctx context.Context, status, receiverID string, page, limit int) ([]*entities.DonationRequest, int64, error) {
	var requests []*entities.DonationRequest
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.DonationRequest{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if receiverID != "" {
		query = query.Where("receiver_id = ?", receiverID)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("Receiver").
		Preload("Item").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&requests).Error; err != nil {
		return nil, 0, err
	}

	return requests, count, nil
}

func (r *requestRepository) GetItemByID(ctx context.Context, id string) (*entities.Item, error) {
	var item entities.Item
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *requestRepository) GetReceiverByID(ctx context.Context, id string) (*entities.Receiver, error) {
	var receiver entities.Receiver
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&receiver).Error; err != nil {
		return nil, err
	}
	return &receiver, nil
}
