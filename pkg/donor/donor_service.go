package donor

import (
	"ReliefStock-Backend/domain"
	"ReliefStock-Backend/entities"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	DonorService interface {
		CreateDonor(ctx context.Context, req domain.CreateDonorRequest) (domain.DonorResponse, error)
		UpdateDonor(ctx context.Context, id string, req domain.UpdateDonorRequest) error
		DeleteDonor(ctx context.Context, id string) error
		GetDonors(ctx context.Context, page, limit int) ([]domain.DonorResponse, int64, error)
		GetDonorByID(ctx context.Context, id string) (domain.DonorResponse, error)
	}

	donorService struct {
		donorRepository DonorRepository
	}
)

func NewDonorService(donorRepository DonorRepository) DonorService {
	return &donorService{donorRepository: donorRepository}
}

func (s *donorService) CreateDonor(ctx context.Context, req domain.CreateDonorRequest) (domain.DonorResponse, error) {
	if _, err := s.donorRepository.GetDonorByContact(ctx, req.Contact); err == nil {
		return domain.DonorResponse{}, domain.ErrContactAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.DonorResponse{}, err
	}

	donor := &entities.Donor{
		ID:      uuid.New(),
		Name:    req.Name,
		Contact: req.Contact,
		Address: req.Address,
	}

	if err := s.donorRepository.CreateDonor(ctx, donor); err != nil {
		return domain.DonorResponse{}, err
	}

	return s.toResponse(donor), nil
}

func (s *donorService) UpdateDonor(ctx context.Context, id string, req domain.UpdateDonorRequest) error {
	donor, err := s.donorRepository.GetDonorByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrDonorNotFound
		}
		return err
	}

	if req.Name != "" {
		donor.Name = req.Name
	}
	if req.Contact != "" {
		donor.Contact = req.Contact
	}
	if req.Address != "" {
		donor.Address = req.Address
	}

	return s.donorRepository.UpdateDonor(ctx, donor)
}

func (s *donorService) DeleteDonor(ctx context.Context, id string) error {
	if _, err := s.donorRepository.GetDonorByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrDonorNotFound
		}
		return err
	}

	items, err := s.donorRepository.CountItemsForDonor(ctx, id)
	if err != nil {
		return err
	}
	if items > 0 {
		return domain.ErrDonorStillReferenced
	}

	return s.donorRepository.DeleteDonor(ctx, id)
}

func (s *donorService) GetDonors(ctx context.Context, page, limit int) ([]domain.DonorResponse, int64, error) {
	donors, count, err := s.donorRepository.GetDonors(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	var response []domain.DonorResponse
	for _, d := range donors {
		response = append(response, s.toResponse(d))
	}

	return response, count, nil
}

func (s *donorService) GetDonorByID(ctx context.Context, id string) (domain.DonorResponse, error) {
	donor, err := s.donorRepository.GetDonorByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DonorResponse{}, domain.ErrDonorNotFound
		}
		return domain.DonorResponse{}, err
	}
	return s.toResponse(donor), nil
}

func (s *donorService) toResponse(d *entities.Donor) domain.DonorResponse {
	return domain.DonorResponse{
		ID:        d.ID.String(),
		Name:      d.Name,
		Contact:   d.Contact,
		Address:   d.Address,
		CreatedAt: d.CreatedAt,
	}
}
