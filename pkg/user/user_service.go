package user

import (
	"ReliefStock-Backend/domain"
	"ReliefStock-Backend/entities"
	"ReliefStock-Backend/pkg/jwt"
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Register(ctx context.Context, req domain.RegisterUserRequest) (domain.UserResponse, error)
		GetUsers(ctx context.Context, role string, page, limit int) ([]domain.UserResponse, int64, error)
		DeactivateUser(ctx context.Context, id string) error
		DeleteUser(ctx context.Context, id string) error
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrInvalidCredentials
		}
		return domain.LoginResponse{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	if !user.IsActive {
		return domain.LoginResponse{}, domain.ErrUserDeactivated
	}

	res := domain.LoginResponse{
		Token:    s.jwtService.GenerateTokenUser(user.ID.String(), user.Role),
		UserID:   user.ID.String(),
		Username: user.Username,
		Role:     user.Role,
		Name:     user.Name,
	}

	// Donor and receiver accounts carry their profile id so role screens can
	// scope their queries; a missing profile is created on first login.
	switch user.Role {
	case domain.RoleDonor:
		donor, err := s.ensureDonorProfile(ctx, user)
		if err != nil {
			return domain.LoginResponse{}, err
		}
		id := donor.ID.String()
		res.DonorID = &id
	case domain.RoleReceiver:
		receiver, err := s.ensureReceiverProfile(ctx, user)
		if err != nil {
			return domain.LoginResponse{}, err
		}
		id := receiver.ID.String()
		res.ReceiverID = &id
	}

	return res, nil
}

func (s *userService) ensureDonorProfile(ctx context.Context, user *entities.User) (*entities.Donor, error) {
	donor, err := s.userRepository.GetDonorByUserID(ctx, user.ID.String())
	if err == nil {
		return donor, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	userID := user.ID
	donor = &entities.Donor{
		ID:      uuid.New(),
		UserID:  &userID,
		Name:    user.Name,
		Contact: user.Contact,
		Address: user.Address,
	}
	if err := s.userRepository.CreateDonor(ctx, donor); err != nil {
		return nil, err
	}
	return donor, nil
}

func (s *userService) ensureReceiverProfile(ctx context.Context, user *entities.User) (*entities.Receiver, error) {
	receiver, err := s.userRepository.GetReceiverByUserID(ctx, user.ID.String())
	if err == nil {
		return receiver, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	userID := user.ID
	receiver = &entities.Receiver{
		ID:      uuid.New(),
		UserID:  &userID,
		Name:    user.Name,
		Contact: user.Contact,
		Address: user.Address,
	}
	if err := s.userRepository.CreateReceiver(ctx, receiver); err != nil {
		return nil, err
	}
	return receiver, nil
}

func (s *userService) Register(ctx context.Context, req domain.RegisterUserRequest) (domain.UserResponse, error) {
	if _, err := s.userRepository.GetUserByUsername(ctx, req.Username); err == nil {
		return domain.UserResponse{}, domain.ErrUsernameExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.UserResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.UserResponse{}, err
	}

	user := &entities.User{
		ID:       uuid.New(),
		Username: req.Username,
		Password: string(hashed),
		Role:     req.Role,
		Name:     req.Name,
		Contact:  req.Contact,
		Address:  req.Address,
		IsActive: true,
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}

	switch req.Role {
	case domain.RoleDonor:
		if _, err := s.ensureDonorProfile(ctx, user); err != nil {
			return domain.UserResponse{}, err
		}
	case domain.RoleReceiver:
		if _, err := s.ensureReceiverProfile(ctx, user); err != nil {
			return domain.UserResponse{}, err
		}
	}

	return s.toResponse(user), nil
}

func (s *userService) GetUsers(ctx context.Context, role string, page, limit int) ([]domain.UserResponse, int64, error) {
	users, count, err := s.userRepository.GetUsers(ctx, role, page, limit)
	if err != nil {
		return nil, 0, err
	}

	var response []domain.UserResponse
	for _, u := range users {
		response = append(response, s.toResponse(u))
	}

	return response, count, nil
}

func (s *userService) DeactivateUser(ctx context.Context, id string) error {
	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	user.IsActive = false
	return s.userRepository.UpdateUser(ctx, user)
}

// DeleteUser hard-deletes only accounts with no linked donor or receiver
// profile; referenced accounts must be deactivated instead so the ledger
// keeps its history.
func (s *userService) DeleteUser(ctx context.Context, id string) error {
	if _, err := s.userRepository.GetUserByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if _, err := s.userRepository.GetDonorByUserID(ctx, id); err == nil {
		return domain.ErrUserStillReferenced
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if _, err := s.userRepository.GetReceiverByUserID(ctx, id); err == nil {
		return domain.ErrUserStillReferenced
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return s.userRepository.DeleteUser(ctx, id)
}

func (s *userService) toResponse(u *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:        u.ID.String(),
		Username:  u.Username,
		Role:      u.Role,
		Name:      u.Name,
		Contact:   u.Contact,
		Address:   u.Address,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}
