package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessLogin          = "login successful"
	MessageSuccessRegister       = "user registered successfully"
	MessageSuccessGetUsers       = "users retrieved successfully"
	MessageSuccessDeactivateUser = "user deactivated successfully"
	MessageSuccessDeleteUser     = "user deleted successfully"
	MessageFailedLogin           = "failed to login"
	MessageFailedRegister        = "failed to register user"
	MessageFailedGetUsers        = "failed to retrieve users"
	MessageFailedDeactivateUser  = "failed to deactivate user"
	MessageFailedDeleteUser      = "failed to delete user"

	ErrUserNotFound        = errors.New("user not found")
	ErrUsernameExists      = errors.New("username already registered")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrUserDeactivated     = errors.New("user account is deactivated")
	ErrUserStillReferenced = errors.New("user still linked to a donor or receiver profile")
)

type (
	LoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token      string  `json:"token"`
		UserID     string  `json:"user_id"`
		Username   string  `json:"username"`
		Role       string  `json:"role"`
		Name       string  `json:"name"`
		DonorID    *string `json:"donor_id,omitempty"`
		ReceiverID *string `json:"receiver_id,omitempty"`
	}

	RegisterUserRequest struct {
		Username string `json:"username" validate:"required,min=3,max=32"`
		Password string `json:"password" validate:"required,min=8"`
		Role     string `json:"role" validate:"required,oneof=donor receiver admin"`
		Name     string `json:"name" validate:"required"`
		Contact  string `json:"contact" validate:"omitempty,max=15"`
		Address  string `json:"address" validate:"omitempty"`
	}

	UserResponse struct {
		ID        string    `json:"id"`
		Username  string    `json:"username"`
		Role      string    `json:"role"`
		Name      string    `json:"name"`
		Contact   string    `json:"contact,omitempty"`
		Address   string    `json:"address,omitempty"`
		IsActive  bool      `json:"is_active"`
		CreatedAt time.Time `json:"created_at"`
	}
)
