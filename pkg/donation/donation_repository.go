package donation

import (
	"ReliefStock-Backend/domain"
	"ReliefStock-Backend/entities"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	DonationRepository interface {
		RecordDonation(ctx context.Context, donation *entities.Donation) error
		GetDonationByID(ctx context.Context, id string) (*entities.Donation, error)
		GetDonations(ctx context.Context, receiverID string, page, limit int) ([]*entities.Donation, int64, error)
	}

	donationRepository struct {
		db *gorm.DB
	}
)

func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &donationRepository{db: db}
}

// RecordDonation inserts the donation row and decrements the item quantity in
// one transaction. The item row is locked FOR UPDATE for the duration of the
// read-check-write so concurrent donations against the same item cannot both
// pass the quantity check.
func (r *donationRepository) RecordDonation(ctx context.Context, donation *entities.Donation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item entities.Item
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", donation.ItemID).
			First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrItemNotFound
			}
			return err
		}

		if item.Quantity < donation.Quantity {
			return domain.ErrInsufficientQuantity
		}

		if err := tx.Create(donation).Error; err != nil {
			return err
		}

		return tx.Model(&entities.Item{}).
			Where("id = ?", donation.ItemID).
			Update("quantity", item.Quantity-donation.Quantity).Error
	})
}

func (r *donationRepository) GetDonationByID(ctx context.Context, id string) (*entities.Donation, error) {
	var donation entities.Donation
	if err := r.db.WithContext(ctx).
		Preload("Item").
		Preload("Receiver").
		Preload("Donor").
		Where("id = ?", id).
		First(&donation).Error; err != nil {
		return nil, err
	}
	return &donation, nil
}

func (r *donationRepository) GetDonations(ctx context.Context, receiverID string, page, limit int) ([]*entities.Donation, int64, error) {
	var donations []*entities.Donation
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.Donation{})
	if receiverID != "" {
		query = query.Where("receiver_id = ?", receiverID)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("Item").
		Preload("Receiver").
		Preload("Donor").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&donations).Error; err != nil {
		return nil, 0, err
	}

	return donations, count, nil
}
