package user

import (
	"ReliefStock-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	UserRepository interface {
		CreateUser(ctx context.Context, user *entities.User) error
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
		GetUserByUsername(ctx context.Context, username string) (*entities.User, error)
		UpdateUser(ctx context.Context, user *entities.User) error
		DeleteUser(ctx context.Context, id string) error
		GetUsers(ctx context.Context, role string, page, limit int) ([]*entities.User, int64, error)
		GetDonorByUserID(ctx context.Context, userID string) (*entities.Donor, error)
		GetReceiverByUserID(ctx context.Context, userID string) (*entities.Receiver, error)
		CreateDonor(ctx context.Context, donor *entities.Donor) error
		CreateReceiver(ctx context.Context, receiver *entities.Receiver) error
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) DeleteUser(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.User{}).Error
}

func (r *userRepository) GetUsers(ctx context.Context, role string, page, limit int) ([]*entities.User, int64, error) {
	var users []*entities.User
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.User{})
	if role != "" {
		query = query.Where("role = ?", role)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, count, nil
}

func (r *userRepository) GetDonorByUserID(ctx context.Context, userID string) (*entities.Donor, error) {
	var donor entities.Donor
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&donor).Error; err != nil {
		return nil, err
	}
	return &donor, nil
}

func (r *userRepository) GetReceiverByUserID(ctx context.Context, userID string) (*entities.Receiver, error) {
	var receiver entities.Receiver
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&receiver).Error; err != nil {
		return nil, err
	}
	return &receiver, nil
}

func (r *userRepository) CreateDonor(ctx context.Context, donor *entities.Donor) error {
	return r.db.WithContext(ctx).Create(donor).Error
}

func (r *userRepository) CreateReceiver(ctx context.Context, receiver *entities.Receiver) error {
	return r.db.WithContext(ctx).Create(receiver).Error
}
