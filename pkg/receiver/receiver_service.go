package receiver

import (
	"ReliefStock-Backend/domain"
	"ReliefStock-Backend/entities"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ReceiverService interface {
		CreateReceiver(ctx context.Context, req domain.CreateReceiverRequest) (domain.ReceiverResponse, error)
		UpdateReceiver(ctx context.Context, id string, req domain.UpdateReceiverRequest) error
		DeleteReceiver(ctx context.Context, id string) error
		GetReceivers(ctx context.Context, region string, page, limit int) ([]domain.ReceiverResponse, int64, error)
		GetReceiverByID(ctx context.Context, id string) (domain.ReceiverResponse, error)
	}

	receiverService struct {
		receiverRepository ReceiverRepository
	}
)

func NewReceiverService(receiverRepository ReceiverRepository) ReceiverService {
	return &receiverService{receiverRepository: receiverRepository}
}

func (s *receiverService) CreateReceiver(ctx context.Context, req domain.CreateReceiverRequest) (domain.ReceiverResponse, error) {
	if _, err := s.receiverRepository.GetReceiverByContact(ctx, req.Contact); err == nil {
		return domain.ReceiverResponse{}, domain.ErrContactAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ReceiverResponse{}, err
	}

	receiver := &entities.Receiver{
		ID:      uuid.New(),
		Name:    req.Name,
		Contact: req.Contact,
		Address: req.Address,
		Region:  req.Region,
	}

	if err := s.receiverRepository.CreateReceiver(ctx, receiver); err != nil {
		return domain.ReceiverResponse{}, err
	}

	return s.toResponse(receiver), nil
}

func (s *receiverService) UpdateReceiver(ctx context.Context, id string, req domain.UpdateReceiverRequest) error {
	receiver, err := s.receiverRepository.GetReceiverByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrReceiverNotFound
		}
		return err
	}

	if req.Name != "" {
		receiver.Name = req.Name
	}
	if req.Contact != "" {
		receiver.Contact = req.Contact
	}
	if req.Address != "" {
		receiver.Address = req.Address
	}
	if req.Region != "" {
		receiver.Region = req.Region
	}

	return s.receiverRepository.UpdateReceiver(ctx, receiver)
}

func (s *receiverService) DeleteReceiver(ctx context.Context, id string) error {
	if _, err := s.receiverRepository.GetReceiverByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrReceiverNotFound
		}
		return err
	}

	requests, err := s.receiverRepository.CountRequestsForReceiver(ctx, id)
	if err != nil {
		return err
	}
	if requests > 0 {
		return domain.ErrReceiverStillReferenced
	}

	return s.receiverRepository.DeleteReceiver(ctx, id)
}

func (s *receiverService) GetReceivers(ctx context.Context, region string, page, limit int) ([]domain.ReceiverResponse, int64, error) {
	receivers, count, err := s.receiverRepository.GetReceivers(ctx, region, page, limit)
	if err != nil {
		return nil, 0, err
	}

	var response []domain.ReceiverResponse
	for _, r := range receivers {
		response = append(response, s.toResponse(r))
	}

	return response, count, nil
}

func (s *receiverService) GetReceiverByID(ctx context.Context, id string) (domain.ReceiverResponse, error) {
	receiver, err := s.receiverRepository.GetReceiverByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ReceiverResponse{}, domain.ErrReceiverNotFound
		}
		return domain.ReceiverResponse{}, err
	}
	return s.toResponse(receiver), nil
}

func (s *receiverService) toResponse(r *entities.Receiver) domain.ReceiverResponse {
	return domain.ReceiverResponse{
		ID:        r.ID.String(),
		Name:      r.Name,
		Contact:   r.Contact,
		Address:   r.Address,
		Region:    r.Region,
		CreatedAt: r.CreatedAt,
	}
}
