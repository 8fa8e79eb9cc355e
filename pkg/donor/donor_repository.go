package donor

import (
	"ReliefStock-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	DonorRepository interface {
		CreateDonor(ctx context.Context, donor *entities.Donor) error
		GetDonorByID(ctx context.Context, id string) (*entities.Donor, error)
		GetDonorByContact(ctx context.Context, contact string) (*entities.Donor, error)
		UpdateDonor(ctx context.Context, donor *entities.Donor) error
		DeleteDonor(ctx context.Context, id string) error
		GetDonors(ctx context.Context, page, limit int) ([]*entities.Donor, int64, error)
		CountItemsForDonor(ctx context.Context, donorID string) (int64, error)
	}

	donorRepository struct {
		db *gorm.DB
	}
)

func NewDonorRepository(db *gorm.DB) DonorRepository {
	return &donorRepository{db: db}
}

func (r *donorRepository) CreateDonor(ctx context.Context, donor *entities.Donor) error {
	return r.db.WithContext(ctx).Create(donor).Error
}

func (r *donorRepository) GetDonorByID(ctx context.Context, id string) (*entities.Donor, error) {
	var donor entities.Donor
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&donor).Error; err != nil {
		return nil, err
	}
	return &donor, nil
}

func (r *donorRepository) GetDonorByContact(ctx context.Context, contact string) (*entities.Donor, error) {
	var donor entities.Donor
	if err := r.db.WithContext(ctx).Where("contact = ?", contact).First(&donor).Error; err != nil {
		return nil, err
	}
	return &donor, nil
}

func (r *donorRepository) UpdateDonor(ctx context.Context, donor *entities.Donor) error {
	return r.db.WithContext(ctx).Save(donor).Error
}

func (r *donorRepository) DeleteDonor(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Donor{}).Error
}

func (r *donorRepository) GetDonors(ctx context.Context, page, limit int) ([]*entities.Donor, int64, error) {
	var donors []*entities.Donor
	var count int64

	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).Model(&entities.Donor{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Offset(offset).Limit(limit).
		Order("name asc").
		Find(&donors).Error; err != nil {
		return nil, 0, err
	}

	return donors, count, nil
}

func (r *donorRepository) CountItemsForDonor(ctx context.Context, donorID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Item{}).
		Where("donor_id = ?", donorID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
