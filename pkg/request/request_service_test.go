package request

import (
	"ReliefStock-Backend/domain"
	"ReliefStock-Backend/entities"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeRequestRepository struct {
	requests  map[uuid.UUID]*entities.DonationRequest
	items     map[uuid.UUID]*entities.Item
	receivers map[uuid.UUID]*entities.Receiver
}

func newFakeRequestRepository() *fakeRequestRepository {
	return &fakeRequestRepository{
		requests:  make(map[uuid.UUID]*entities.DonationRequest),
		items:     make(map[uuid.UUID]*entities.Item),
		receivers: make(map[uuid.UUID]*entities.Receiver),
	}
}

func (f *fakeRequestRepository) CreateRequest(_ context.Context, request *entities.DonationRequest) error {
	f.requests[request.ID] = request
	return nil
}

func (f *fakeRequestRepository) GetRequestByID(_ context.Context, id string) (*entities.DonationRequest, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	request, ok := f.requests[parsed]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return request, nil
}

func (f *fakeRequestRepository) UpdateRequest(_ context.Context, request *entities.DonationRequest) error {
	f.requests[request.ID] = request
	return nil
}

func (f *fakeRequestRepository) DeleteRequest(_ context.Context, id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return gorm.ErrRecordNotFound
	}
	delete(f.requests, parsed)
	return nil
}

func (f *fakeRequestRepository) GetRequests(_ context.Context, status, receiverID string, _, _ int) ([]*entities.DonationRequest, int64, error) {
	var out []*entities.DonationRequest
	for _, r := range f.requests {
		if status != "" && r.Status != status {
			continue
		}
		if receiverID != "" && r.ReceiverID.String() != receiverID {
			continue
		}
		out = append(out, r)
	}
	return out, int64(len(out)), nil
}

func (f *fakeRequestRepository) GetItemByID(_ context.Context, id string) (*entities.Item, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	item, ok := f.items[parsed]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (f *fakeRequestRepository) GetReceiverByID(_ context.Context, id string) (*entities.Receiver, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	receiver, ok := f.receivers[parsed]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return receiver, nil
}

func seedReceiver(repo *fakeRequestRepository) uuid.UUID {
	id := uuid.New()
	repo.receivers[id] = &entities.Receiver{ID: id, Name: "Shelter"}
	return id
}

func seedItem(repo *fakeRequestRepository, quantity int) uuid.UUID {
	id := uuid.New()
	repo.items[id] = &entities.Item{ID: id, Name: "Rice", Quantity: quantity}
	return id
}

func TestCreateRequest_ExistingItem(t *testing.T) {
	repo := newFakeRequestRepository()
	receiverID := seedReceiver(repo)
	itemID := seedItem(repo, 10)

	svc := NewRequestService(repo)

	res, err := svc.CreateRequest(context.Background(), domain.CreateDonationRequestRequest{
		ReceiverID:  receiverID.String(),
		RequestType: domain.RequestTypeExisting,
		ItemID:      itemID.String(),
		Quantity:    5,
	})
	if err != nil {
		t.Fatalf("CreateRequest failed: %v", err)
	}
	if res.Status != domain.RequestStatusPending {
		t.Errorf("new request status = %q, want pending", res.Status)
	}
	if res.ItemName != "Rice" {
		t.Errorf("item name not copied onto request: %q", res.ItemName)
	}
}

func TestCreateRequest_ExistingItemRequiresStock(t *testing.T) {
	repo := newFakeRequestRepository()
	receiverID := seedReceiver(repo)
	itemID := seedItem(repo, 2)

	svc := NewRequestService(repo)

	_, err := svc.CreateRequest(context.Background(), domain.CreateDonationRequestRequest{
		ReceiverID:  receiverID.String(),
		RequestType: domain.RequestTypeExisting,
		ItemID:      itemID.String(),
		Quantity:    5,
	})
	if !errors.Is(err, domain.ErrInsufficientQuantity) {
		t.Fatalf("expected ErrInsufficientQuantity, got %v", err)
	}
}

func TestCreateRequest_NewItemRequiresName(t *testing.T) {
	repo := newFakeRequestRepository()
	receiverID := seedReceiver(repo)

	svc := NewRequestService(repo)

	_, err := svc.CreateRequest(context.Background(), domain.CreateDonationRequestRequest{
		ReceiverID:  receiverID.String(),
		RequestType: domain.RequestTypeNew,
		Quantity:    5,
	})
	if !errors.Is(err, domain.ErrRequestNameRequired) {
		t.Fatalf("expected ErrRequestNameRequired, got %v", err)
	}
}

func TestResolveRequest_TerminalStates(t *testing.T) {
	repo := newFakeRequestRepository()
	receiverID := seedReceiver(repo)
	itemID := seedItem(repo, 10)

	svc := NewRequestService(repo)

	created, err := svc.CreateRequest(context.Background(), domain.CreateDonationRequestRequest{
		ReceiverID:  receiverID.String(),
		RequestType: domain.RequestTypeExisting,
		ItemID:      itemID.String(),
		Quantity:    5,
	})
	if err != nil {
		t.Fatalf("CreateRequest failed: %v", err)
	}

	resolved, err := svc.ResolveRequest(context.Background(), created.ID, domain.ResolveDonationRequestRequest{
		Status:    domain.RequestStatusApproved,
		AdminNote: "collect on Monday",
	})
	if err != nil {
		t.Fatalf("ResolveRequest failed: %v", err)
	}
	if resolved.Status != domain.RequestStatusApproved {
		t.Errorf("status = %q, want approved", resolved.Status)
	}
	if resolved.AdminNote != "collect on Monday" {
		t.Errorf("admin note not persisted: %q", resolved.AdminNote)
	}

	// Approval must not move inventory.
	if got := repo.items[itemID].Quantity; got != 10 {
		t.Errorf("item quantity changed on approval: %d, want 10", got)
	}

	// Any further transition out of a terminal state is rejected.
	for _, next := range []string{domain.RequestStatusRejected, domain.RequestStatusApproved} {
		_, err := svc.ResolveRequest(context.Background(), created.ID, domain.ResolveDonationRequestRequest{Status: next})
		if !errors.Is(err, domain.ErrRequestAlreadyResolved) {
			t.Errorf("transition to %q after approval: expected ErrRequestAlreadyResolved, got %v", next, err)
		}
	}
}

func TestResolveRequest_RejectedIsTerminal(t *testing.T) {
	repo := newFakeRequestRepository()
	receiverID := seedReceiver(repo)

	svc := NewRequestService(repo)

	created, err := svc.CreateRequest(context.Background(), domain.CreateDonationRequestRequest{
		ReceiverID:  receiverID.String(),
		RequestType: domain.RequestTypeNew,
		ItemName:    "Blankets",
		Quantity:    20,
	})
	if err != nil {
		t.Fatalf("CreateRequest failed: %v", err)
	}

	if _, err := svc.ResolveRequest(context.Background(), created.ID, domain.ResolveDonationRequestRequest{
		Status: domain.RequestStatusRejected,
	}); err != nil {
		t.Fatalf("ResolveRequest failed: %v", err)
	}

	_, err = svc.ResolveRequest(context.Background(), created.ID, domain.ResolveDonationRequestRequest{
		Status: domain.RequestStatusApproved,
	})
	if !errors.Is(err, domain.ErrRequestAlreadyResolved) {
		t.Fatalf("expected ErrRequestAlreadyResolved, got %v", err)
	}
}

func TestDeleteRequest_OnlyPending(t *testing.T) {
	repo := newFakeRequestRepository()
	receiverID := seedReceiver(repo)

	svc := NewRequestService(repo)

	created, err := svc.CreateRequest(context.Background(), domain.CreateDonationRequestRequest{
		ReceiverID:  receiverID.String(),
		RequestType: domain.RequestTypeNew,
		ItemName:    "Blankets",
		Quantity:    20,
	})
	if err != nil {
		t.Fatalf("CreateRequest failed: %v", err)
	}

	if _, err := svc.ResolveRequest(context.Background(), created.ID, domain.ResolveDonationRequestRequest{
		Status: domain.RequestStatusApproved,
	}); err != nil {
		t.Fatalf("ResolveRequest failed: %v", err)
	}

	if err := svc.DeleteRequest(context.Background(), created.ID); !errors.Is(err, domain.ErrRequestNotPending) {
		t.Fatalf("expected ErrRequestNotPending, got %v", err)
	}
}
