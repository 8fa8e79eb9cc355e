package receiver

import (
	"ReliefStock-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	ReceiverRepository interface {
		CreateReceiver(ctx context.Context, receiver *entities.Receiver) error
		GetReceiverByID(ctx context.Context, id string) (*entities.Receiver, error)
		GetReceiverByContact(ctx context.Context, contact string) (*entities.Receiver, error)
		UpdateReceiver(ctx context.Context, receiver *entities.Receiver) error
		DeleteReceiver(ctx context.Context, id string) error
		GetReceivers(ctx context.Context, region string, page, limit int) ([]*entities.Receiver, int64, error)
		CountRequestsForReceiver(ctx context.Context, receiverID string) (int64, error)
	}

	receiverRepository struct {
		db *gorm.DB
	}
)

func NewReceiverRepository(db *gorm.DB) ReceiverRepository {
	return &receiverRepository{db: db}
}

func (r *receiverRepository) CreateReceiver(ctx context.Context, receiver *entities.Receiver) error {
	return r.db.WithContext(ctx).Create(receiver).Error
}

func (r *receiverRepository) GetReceiverByID(ctx context.Context, id string) (*entities.Receiver, error) {
	var receiver entities.Receiver
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&receiver).Error; err != nil {
		return nil, err
	}
	return &receiver, nil
}

func (r *receiverRepository) GetReceiverByContact(ctx context.Context, contact string) (*entities.Receiver, error) {
	var receiver entities.Receiver
	if err := r.db.WithContext(ctx).Where("contact = ?", contact).First(&receiver).Error; err != nil {
		return nil, err
	}
	return &receiver, nil
}

func (r *receiverRepository) UpdateReceiver(ctx context.Context, receiver *entities.Receiver) error {
	return r.db.WithContext(ctx).Save(receiver).Error
}

func (r *receiverRepository) DeleteReceiver(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Receiver{}).Error
}

func (r *receiverRepository) GetReceivers(ctx context.Context, region string, page, limit int) ([]*entities.Receiver, int64, error) {
	var receivers []*entities.Receiver
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.Receiver{})
	if region != "" {
		query = query.Where("region = ?", region)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("name asc").Find(&receivers).Error; err != nil {
		return nil, 0, err
	}

	return receivers, count, nil
}

func (r *receiverRepository) CountRequestsForReceiver(ctx context.Context, receiverID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.DonationRequest{}).
		Where("receiver_id = ?", receiverID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
