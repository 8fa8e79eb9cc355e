package handlers

import (
	"ReliefStock-Backend/domain"
	"ReliefStock-Backend/internal/api/presenters"
	"ReliefStock-Backend/pkg/donor"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	DonorHandler interface {
		CreateDonor(c *fiber.Ctx) error
		UpdateDonor(c *fiber.Ctx) error
		DeleteDonor(c *fiber.Ctx) error
		GetDonors(c *fiber.Ctx) error
		GetDonorDetails(c *fiber.Ctx) error
	}

	donorHandler struct {
		donorService donor.DonorService
		validator    *validator.Validate
	}
)

func NewDonorHandler(donorService donor.DonorService, validator *validator.Validate) DonorHandler {
	return &donorHandler{
		donorService: donorService,
		validator:    validator,
	}
}

func (h *donorHandler) CreateDonor(c *fiber.Ctx) error {
	req := new(domain.CreateDonorRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateDonor, err)
	}

	res, err := h.donorService.CreateDonor(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrContactAlreadyExists) {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedCreateDonor, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateDonor, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateDonor)
}

func (h *donorHandler) UpdateDonor(c *fiber.Ctx) error {
	donorID := c.Params("id")
	req := new(domain.UpdateDonorRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateDonor, err)
	}

	if err := h.donorService.UpdateDonor(c.Context(), donorID, *req); err != nil {
		if errors.Is(err, domain.ErrDonorNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateDonor, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateDonor, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateDonor)
}

func (h *donorHandler) DeleteDonor(c *fiber.Ctx) error {
	donorID := c.Params("id")

	if err := h.donorService.DeleteDonor(c.Context(), donorID); err != nil {
		if errors.Is(err, domain.ErrDonorNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteDonor, err)
		}
		if errors.Is(err, domain.ErrDonorStillReferenced) {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedDeleteDonor, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteDonor, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteDonor)
}

func (h *donorHandler) GetDonors(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	donors, count, err := h.donorService.GetDonors(c.Context(), page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDonors, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"donors": donors,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetDonors)
}

func (h *donorHandler) GetDonorDetails(c *fiber.Ctx) error {
	donorID := c.Params("id")

	res, err := h.donorService.GetDonorByID(c.Context(), donorID)
	if err != nil {
		if errors.Is(err, domain.ErrDonorNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetDonors, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDonors, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDonors)
}
