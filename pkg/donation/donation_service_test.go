package donation

import (
	"ReliefStock-Backend/domain"
	"ReliefStock-Backend/entities"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
)

// fakeDonationRepository mirrors the check-then-decrement semantics of the
// real repository against an in-memory item table.
type fakeDonationRepository struct {
	mu        sync.Mutex
	items     map[uuid.UUID]*entities.Item
	donations []*entities.Donation
}

func newFakeDonationRepository() *fakeDonationRepository {
	return &fakeDonationRepository{items: make(map[uuid.UUID]*entities.Item)}
}

func (f *fakeDonationRepository) RecordDonation(_ context.Context, donation *entities.Donation) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	item, ok := f.items[donation.ItemID]
	if !ok {
		return domain.ErrItemNotFound
	}
	if item.Quantity < donation.Quantity {
		return domain.ErrInsufficientQuantity
	}
	f.donations = append(f.donations, donation)
	item.Quantity -= donation.Quantity
	return nil
}

func (f *fakeDonationRepository) GetDonationByID(_ context.Context, id string) (*entities.Donation, error) {
	for _, d := range f.donations {
		if d.ID.String() == id {
			return d, nil
		}
	}
	return nil, domain.ErrDonationNotFound
}

func (f *fakeDonationRepository) GetDonations(_ context.Context, receiverID string, _, _ int) ([]*entities.Donation, int64, error) {
	var out []*entities.Donation
	for _, d := range f.donations {
		if receiverID == "" || d.ReceiverID.String() == receiverID {
			out = append(out, d)
		}
	}
	return out, int64(len(out)), nil
}

func validRequest(itemID uuid.UUID, quantity int) domain.RecordDonationRequest {
	return domain.RecordDonationRequest{
		ItemID:     itemID.String(),
		ReceiverID: uuid.New().String(),
		Quantity:   quantity,
	}
}

func TestRecordDonation_DecrementsExactly(t *testing.T) {
	repo := newFakeDonationRepository()
	itemID := uuid.New()
	repo.items[itemID] = &entities.Item{ID: itemID, Name: "Rice", Quantity: 10}

	svc := NewDonationService(repo)

	res, err := svc.RecordDonation(context.Background(), validRequest(itemID, 4))
	if err != nil {
		t.Fatalf("RecordDonation failed: %v", err)
	}
	if res.Quantity != 4 {
		t.Errorf("response quantity = %d, want 4", res.Quantity)
	}
	if got := repo.items[itemID].Quantity; got != 6 {
		t.Errorf("item quantity after donation = %d, want 6", got)
	}
	if len(repo.donations) != 1 {
		t.Errorf("donation rows = %d, want 1", len(repo.donations))
	}
}

func TestRecordDonation_InsufficientQuantity(t *testing.T) {
	repo := newFakeDonationRepository()
	itemID := uuid.New()
	repo.items[itemID] = &entities.Item{ID: itemID, Name: "Rice", Quantity: 3}

	svc := NewDonationService(repo)

	_, err := svc.RecordDonation(context.Background(), validRequest(itemID, 5))
	if !errors.Is(err, domain.ErrInsufficientQuantity) {
		t.Fatalf("expected ErrInsufficientQuantity, got %v", err)
	}
	if got := repo.items[itemID].Quantity; got != 3 {
		t.Errorf("item quantity changed on failed donation: %d, want 3", got)
	}
	if len(repo.donations) != 0 {
		t.Errorf("donation rows = %d, want 0", len(repo.donations))
	}
}

func TestRecordDonation_DrainToZeroThenFail(t *testing.T) {
	repo := newFakeDonationRepository()
	itemID := uuid.New()
	repo.items[itemID] = &entities.Item{ID: itemID, Name: "Rice", Quantity: 5}

	svc := NewDonationService(repo)

	if _, err := svc.RecordDonation(context.Background(), validRequest(itemID, 5)); err != nil {
		t.Fatalf("first donation failed: %v", err)
	}
	if got := repo.items[itemID].Quantity; got != 0 {
		t.Fatalf("item quantity = %d, want 0", got)
	}

	_, err := svc.RecordDonation(context.Background(), validRequest(itemID, 1))
	if !errors.Is(err, domain.ErrInsufficientQuantity) {
		t.Fatalf("expected ErrInsufficientQuantity on empty item, got %v", err)
	}
}

func TestRecordDonation_RejectsNonPositiveQuantity(t *testing.T) {
	repo := newFakeDonationRepository()
	svc := NewDonationService(repo)

	for _, qty := range []int{0, -1} {
		_, err := svc.RecordDonation(context.Background(), validRequest(uuid.New(), qty))
		if !errors.Is(err, domain.ErrInvalidQuantity) {
			t.Errorf("quantity %d: expected ErrInvalidQuantity, got %v", qty, err)
		}
	}
	if len(repo.donations) != 0 {
		t.Errorf("donation rows = %d, want 0", len(repo.donations))
	}
}

func TestRecordDonation_ItemNotFound(t *testing.T) {
	repo := newFakeDonationRepository()
	svc := NewDonationService(repo)

	_, err := svc.RecordDonation(context.Background(), validRequest(uuid.New(), 1))
	if !errors.Is(err, domain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestRecordDonation_ConcurrentAttemptsDoNotOverdraw(t *testing.T) {
	repo := newFakeDonationRepository()
	itemID := uuid.New()
	repo.items[itemID] = &entities.Item{ID: itemID, Name: "Rice", Quantity: 10}

	svc := NewDonationService(repo)

	var wg sync.WaitGroup
	succeeded := make(chan struct{}, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.RecordDonation(context.Background(), validRequest(itemID, 1)); err == nil {
				succeeded <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(succeeded)

	wins := 0
	for range succeeded {
		wins++
	}
	if wins != 10 {
		t.Errorf("successful donations = %d, want 10", wins)
	}
	if got := repo.items[itemID].Quantity; got != 0 {
		t.Errorf("item quantity = %d, want 0", got)
	}
}
