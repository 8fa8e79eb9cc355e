package request

import (
	"ReliefStock-Backend/domain"
	"ReliefStock-Backend/entities"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RequestService interface {
		CreateRequest(ctx context.Context, req domain.CreateDonationRequestRequest) (domain.DonationRequestResponse, error)
		ResolveRequest(ctx context.Context, id string, req domain.ResolveDonationRequestRequest) (domain.DonationRequestResponse, error)
		DeleteRequest(ctx context.Context, id string) error
		GetRequests(ctx context.Context, status, receiverID string, page, limit int) ([]domain.DonationRequestResponse, int64, error)
		GetRequestByID(ctx context.Context, id string) (domain.DonationRequestResponse, error)
	}

	requestService struct {
		requestRepository RequestRepository
	}
)

func NewRequestService(requestRepository RequestRepository) RequestService {
	return &requestService{requestRepository: requestRepository}
}

func (s *requestService) CreateRequest(ctx context.Context, req domain.CreateDonationRequestRequest) (domain.DonationRequestResponse, error) {
	if req.Quantity <= 0 {
		return domain.DonationRequestResponse{}, domain.ErrInvalidQuantity
	}

	receiverUUID, err := uuid.Parse(req.ReceiverID)
	if err != nil {
		return domain.DonationRequestResponse{}, domain.ErrParseUUID
	}

	if _, err := s.requestRepository.GetReceiverByID(ctx, req.ReceiverID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DonationRequestResponse{}, domain.ErrReceiverNotFound
		}
		return domain.DonationRequestResponse{}, err
	}

	request := &entities.DonationRequest{
		ID:          uuid.New(),
		ReceiverID:  receiverUUID,
		RequestType: req.RequestType,
		Quantity:    req.Quantity,
		Status:      domain.RequestStatusPending,
	}

	switch req.RequestType {
	case domain.RequestTypeExisting:
		if req.ItemID == "" {
			return domain.DonationRequestResponse{}, domain.ErrRequestItemRequired
		}
		item, err := s.requestRepository.GetItemByID(ctx, req.ItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.DonationRequestResponse{}, domain.ErrItemNotFound
			}
			return domain.DonationRequestResponse{}, err
		}
		if item.Quantity < req.Quantity {
			return domain.DonationRequestResponse{}, domain.ErrInsufficientQuantity
		}
		itemUUID := item.ID
		request.ItemID = &itemUUID
		request.ItemName = item.Name
	case domain.RequestTypeNew:
		if req.ItemName == "" {
			return domain.DonationRequestResponse{}, domain.ErrRequestNameRequired
		}
		request.ItemName = req.ItemName
	}

	if err := s.requestRepository.CreateRequest(ctx, request); err != nil {
		return domain.DonationRequestResponse{}, err
	}

	return s.toResponse(request), nil
}

// ResolveRequest moves a pending request to approved or rejected. Both states
// are terminal: a resolved request rejects any further transition. Approval
// does not move inventory; the receiver still claims it through a donation
// record call.
func (s *requestService) ResolveRequest(ctx context.Context, id string, req domain.ResolveDonationRequestRequest) (domain.DonationRequestResponse, error) {
	if req.Status != domain.RequestStatusApproved && req.Status != domain.RequestStatusRejected {
		return domain.DonationRequestResponse{}, domain.ErrInvalidRequestStatus
	}

	request, err := s.requestRepository.GetRequestByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DonationRequestResponse{}, domain.ErrRequestNotFound
		}
		return domain.DonationRequestResponse{}, err
	}

	if request.Status != domain.RequestStatusPending {
		return domain.DonationRequestResponse{}, domain.ErrRequestAlreadyResolved
	}

	request.Status = req.Status
	request.AdminNote = req.AdminNote

	if err := s.requestRepository.UpdateRequest(ctx, request); err != nil {
		return domain.DonationRequestResponse{}, err
	}

	return s.toResponse(request), nil
}

func (s *requestService) DeleteRequest(ctx context.Context, id string) error {
	request, err := s.requestRepository.GetRequestByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRequestNotFound
		}
		return err
	}

	if request.Status != domain.RequestStatusPending {
		return domain.ErrRequestNotPending
	}

	return s.requestRepository.DeleteRequest(ctx, id)
}

func (s *requestService) GetRequests(ctx context.Context, status, receiverID string, page, limit int) ([]domain.DonationRequestResponse, int64, error) {
	requests, count, err := s.requestRepository.GetRequests(ctx, status, receiverID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	var response []domain.DonationRequestResponse
	for _, r := range requests {
		response = append(response, s.toResponse(r))
	}

	return response, count, nil
}

func (s *requestService) GetRequestByID(ctx context.Context, id string) (domain.DonationRequestResponse, error) {
	request, err := s.requestRepository.GetRequestByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DonationRequestResponse{}, domain.ErrRequestNotFound
		}
		return domain.DonationRequestResponse{}, err
	}
	return s.toResponse(request), nil
}

func (s *requestService) toResponse(r *entities.DonationRequest) domain.DonationRequestResponse {
	res := domain.DonationRequestResponse{
		ID:          r.ID.String(),
		ReceiverID:  r.ReceiverID.String(),
		RequestType: r.RequestType,
		ItemName:    r.ItemName,
		Quantity:    r.Quantity,
		Status:      r.Status,
		AdminNote:   r.AdminNote,
		CreatedAt:   r.CreatedAt,
	}
	if r.ItemID != nil {
		id := r.ItemID.String()
		res.ItemID = &id
	}
	if r.Receiver != nil {
		res.ReceiverName = r.Receiver.Name
	}
	return res
}
