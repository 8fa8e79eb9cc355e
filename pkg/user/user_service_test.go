package user

import (
	"ReliefStock-Backend/domain"
	"ReliefStock-Backend/entities"
	"context"
	"errors"
	"sync"
	"testing"

	jwtlib "github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	mu        sync.Mutex
	users     map[string]*entities.User
	donors    map[string]*entities.Donor
	receivers map[string]*entities.Receiver
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		users:     make(map[string]*entities.User),
		donors:    make(map[string]*entities.Donor),
		receivers: make(map[string]*entities.Receiver),
	}
}

func (f *fakeUserRepository) CreateUser(_ context.Context, user *entities.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[user.ID.String()] = user
	return nil
}

func (f *fakeUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetUserByUsername(_ context.Context, username string) (*entities.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) UpdateUser(_ context.Context, user *entities.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[user.ID.String()] = user
	return nil
}

func (f *fakeUserRepository) DeleteUser(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepository) GetUsers(_ context.Context, role string, _, _ int) ([]*entities.User, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entities.User
	for _, u := range f.users {
		if role == "" || u.Role == role {
			out = append(out, u)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeUserRepository) GetDonorByUserID(_ context.Context, userID string) (*entities.Donor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, d := range f.donors {
		if d.UserID != nil && d.UserID.String() == userID {
			return d, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetReceiverByUserID(_ context.Context, userID string) (*entities.Receiver, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.receivers {
		if r.UserID != nil && r.UserID.String() == userID {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) CreateDonor(_ context.Context, donor *entities.Donor) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.donors[donor.ID.String()] = donor
	return nil
}

func (f *fakeUserRepository) CreateReceiver(_ context.Context, receiver *entities.Receiver) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.receivers[receiver.ID.String()] = receiver
	return nil
}

// stubJWTService only needs GenerateTokenUser for these tests.
type stubJWTService struct{}

func (stubJWTService) GenerateTokenUser(userId string, role string) string {
	return "token:" + userId + ":" + role
}

func (stubJWTService) ValidateTokenUser(string) (*jwtlib.Token, error) {
	return nil, nil
}

func (stubJWTService) GetUserIDByToken(string) (string, string, error) {
	return "", "", nil
}

func seedUser(t *testing.T, repo *fakeUserRepository, username, password, role string, active bool) *entities.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}
	u := &entities.User{
		ID:       uuid.New(),
		Username: username,
		Password: string(hashed),
		Role:     role,
		Name:     username,
		IsActive: active,
	}
	repo.users[u.ID.String()] = u
	return u
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeUserRepository()
	seedUser(t, repo, "budi", "correct-horse", domain.RoleAdmin, true)
	svc := NewUserService(repo, stubJWTService{})

	_, err := svc.Login(context.Background(), domain.LoginRequest{Username: "budi", Password: "wrong"})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	repo := newFakeUserRepository()
	svc := NewUserService(repo, stubJWTService{})

	_, err := svc.Login(context.Background(), domain.LoginRequest{Username: "nobody", Password: "x"})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginDeactivatedUser(t *testing.T) {
	repo := newFakeUserRepository()
	seedUser(t, repo, "budi", "correct-horse", domain.RoleAdmin, false)
	svc := NewUserService(repo, stubJWTService{})

	_, err := svc.Login(context.Background(), domain.LoginRequest{Username: "budi", Password: "correct-horse"})
	if !errors.Is(err, domain.ErrUserDeactivated) {
		t.Fatalf("expected ErrUserDeactivated, got %v", err)
	}
}

func TestLoginCreatesDonorProfileOnFirstLogin(t *testing.T) {
	repo := newFakeUserRepository()
	seedUser(t, repo, "siti", "correct-horse", domain.RoleDonor, true)
	svc := NewUserService(repo, stubJWTService{})

	res, err := svc.Login(context.Background(), domain.LoginRequest{Username: "siti", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if res.DonorID == nil {
		t.Fatal("expected donor profile id on donor login")
	}
	if len(repo.donors) != 1 {
		t.Fatalf("expected 1 donor profile, got %d", len(repo.donors))
	}

	// Second login reuses the profile instead of creating a duplicate.
	res2, err := svc.Login(context.Background(), domain.LoginRequest{Username: "siti", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("second login failed: %v", err)
	}
	if len(repo.donors) != 1 {
		t.Fatalf("expected donor profile to be reused, got %d profiles", len(repo.donors))
	}
	if *res.DonorID != *res2.DonorID {
		t.Fatalf("expected same donor id on both logins, got %s and %s", *res.DonorID, *res2.DonorID)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	repo := newFakeUserRepository()
	seedUser(t, repo, "budi", "correct-horse", domain.RoleAdmin, true)
	svc := NewUserService(repo, stubJWTService{})

	_, err := svc.Register(context.Background(), domain.RegisterUserRequest{
		Username: "budi",
		Password: "another-pass",
		Role:     domain.RoleReceiver,
		Name:     "Budi",
	})
	if !errors.Is(err, domain.ErrUsernameExists) {
		t.Fatalf("expected ErrUsernameExists, got %v", err)
	}
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	repo := newFakeUserRepository()
	svc := NewUserService(repo, stubJWTService{})

	res, err := svc.Register(context.Background(), domain.RegisterUserRequest{
		Username: "siti",
		Password: "plaintext-password",
		Role:     domain.RoleReceiver,
		Name:     "Siti",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	stored := repo.users[res.ID]
	if stored.Password == "plaintext-password" {
		t.Fatal("password stored in plaintext")
	}
	if bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("plaintext-password")) != nil {
		t.Fatal("stored hash does not verify against the original password")
	}
	if len(repo.receivers) != 1 {
		t.Fatalf("expected receiver profile to be created, got %d", len(repo.receivers))
	}
}

func TestDeleteUserWithLinkedProfile(t *testing.T) {
	repo := newFakeUserRepository()
	u := seedUser(t, repo, "siti", "correct-horse", domain.RoleDonor, true)
	userID := u.ID
	repo.donors[uuid.NewString()] = &entities.Donor{ID: uuid.New(), UserID: &userID, Name: u.Name}
	svc := NewUserService(repo, stubJWTService{})

	err := svc.DeleteUser(context.Background(), u.ID.String())
	if !errors.Is(err, domain.ErrUserStillReferenced) {
		t.Fatalf("expected ErrUserStillReferenced, got %v", err)
	}
	if _, ok := repo.users[u.ID.String()]; !ok {
		t.Fatal("user should not have been deleted")
	}
}

func TestDeactivateUser(t *testing.T) {
	repo := newFakeUserRepository()
	u := seedUser(t, repo, "budi", "correct-horse", domain.RoleAdmin, true)
	svc := NewUserService(repo, stubJWTService{})

	if err := svc.DeactivateUser(context.Background(), u.ID.String()); err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}
	if repo.users[u.ID.String()].IsActive {
		t.Fatal("user should be inactive after deactivation")
	}
}
