package donation

import (
	"ReliefStock-Backend/domain"
	"ReliefStock-Backend/entities"
	"context"
	"time"

	"github.com/google/uuid"
)

type (
	DonationService interface {
		RecordDonation(ctx context.Context, req domain.RecordDonationRequest) (domain.DonationResponse, error)
		GetDonations(ctx context.Context, receiverID string, page, limit int) ([]domain.DonationResponse, int64, error)
		GetDonationByID(ctx context.Context, id string) (domain.DonationResponse, error)
	}

	donationService struct {
		donationRepository DonationRepository
	}
)

func NewDonationService(donationRepository DonationRepository) DonationService {
	return &donationService{donationRepository: donationRepository}
}

func (s *donationService) RecordDonation(ctx context.Context, req domain.RecordDonationRequest) (domain.DonationResponse, error) {
	if req.Quantity <= 0 {
		return domain.DonationResponse{}, domain.ErrInvalidQuantity
	}

	itemUUID, err := uuid.Parse(req.ItemID)
	if err != nil {
		return domain.DonationResponse{}, domain.ErrParseUUID
	}
	receiverUUID, err := uuid.Parse(req.ReceiverID)
	if err != nil {
		return domain.DonationResponse{}, domain.ErrParseUUID
	}

	var donorUUID *uuid.UUID
	if req.DonorID != "" {
		parsed, err := uuid.Parse(req.DonorID)
		if err != nil {
			return domain.DonationResponse{}, domain.ErrParseUUID
		}
		donorUUID = &parsed
	}

	donation := &entities.Donation{
		ID:           uuid.New(),
		ItemID:       itemUUID,
		ReceiverID:   receiverUUID,
		DonorID:      donorUUID,
		Quantity:     req.Quantity,
		DonationDate: time.Now(),
		DeliveryMode: req.DeliveryMode,
		DeliveredBy:  req.DeliveredBy,
		Notes:        req.Notes,
	}

	if err := s.donationRepository.RecordDonation(ctx, donation); err != nil {
		return domain.DonationResponse{}, err
	}

	return s.toResponse(donation), nil
}

func (s *donationService) GetDonations(ctx context.Context, receiverID string, page, limit int) ([]domain.DonationResponse, int64, error) {
	donations, count, err := s.donationRepository.GetDonations(ctx, receiverID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	var response []domain.DonationResponse
	for _, d := range donations {
		response = append(response, s.toResponse(d))
	}

	return response, count, nil
}

func (s *donationService) GetDonationByID(ctx context.Context, id string) (domain.DonationResponse, error) {
	donation, err := s.donationRepository.GetDonationByID(ctx, id)
	if err != nil {
		return domain.DonationResponse{}, domain.ErrDonationNotFound
	}
	return s.toResponse(donation), nil
}

func (s *donationService) toResponse(d *entities.Donation) domain.DonationResponse {
	res := domain.DonationResponse{
		ID:           d.ID.String(),
		ItemID:       d.ItemID.String(),
		ReceiverID:   d.ReceiverID.String(),
		Quantity:     d.Quantity,
		DonationDate: d.DonationDate,
		DeliveryMode: d.DeliveryMode,
		DeliveredBy:  d.DeliveredBy,
		Notes:        d.Notes,
		CreatedAt:    d.CreatedAt,
	}
	if d.DonorID != nil {
		id := d.DonorID.String()
		res.DonorID = &id
	}
	if d.Item != nil {
		res.ItemName = d.Item.Name
	}
	if d.Receiver != nil {
		res.ReceiverName = d.Receiver.Name
	}
	if d.Donor != nil {
		res.DonorName = d.Donor.Name
	}
	return res
}
