package handlers

import (
	"ReliefStock-Backend/domain"
	"ReliefStock-Backend/internal/api/presenters"
	"ReliefStock-Backend/pkg/receiver"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ReceiverHandler interface {
		CreateReceiver(c *fiber.Ctx) error
		UpdateReceiver(c *fiber.Ctx) error
		DeleteReceiver(c *fiber.Ctx) error
		GetReceivers(c *fiber.Ctx) error
		GetReceiverDetails(c *fiber.Ctx) error
	}

	receiverHandler struct {
		receiverService receiver.ReceiverService
		validator       *validator.Validate
	}
)

func NewReceiverHandler(receiverService receiver.ReceiverService, validator *validator.Validate) ReceiverHandler {
	return &receiverHandler{
		receiverService: receiverService,
		validator:       validator,
	}
}

func (h *receiverHandler) CreateReceiver(c *fiber.Ctx) error {
	req := new(domain.CreateReceiverRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateReceiver, err)
	}

	res, err := h.receiverService.CreateReceiver(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrContactAlreadyExists) {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedCreateReceiver, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateReceiver, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateReceiver)
}

func (h *receiverHandler) UpdateReceiver(c *fiber.Ctx) error {
	receiverID := c.Params("id")
	req := new(domain.UpdateReceiverRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateReceiver, err)
	}

	if err := h.receiverService.UpdateReceiver(c.Context(), receiverID, *req); err != nil {
		if errors.Is(err, domain.ErrReceiverNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateReceiver, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateReceiver, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateReceiver)
}

func (h *receiverHandler) DeleteReceiver(c *fiber.Ctx) error {
	receiverID := c.Params("id")

	if err := h.receiverService.DeleteReceiver(c.Context(), receiverID); err != nil {
		if errors.Is(err, domain.ErrReceiverNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteReceiver, err)
		}
		if errors.Is(err, domain.ErrReceiverStillReferenced) {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedDeleteReceiver, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteReceiver, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteReceiver)
}

func (h *receiverHandler) GetReceivers(c *fiber.Ctx) error {
	region := c.Query("region", "")

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	receivers, count, err := h.receiverService.GetReceivers(c.Context(), region, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetReceivers, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"receivers": receivers,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetReceivers)
}

func (h *receiverHandler) GetReceiverDetails(c *fiber.Ctx) error {
	receiverID := c.Params("id")

	res, err := h.receiverService.GetReceiverByID(c.Context(), receiverID)
	if err != nil {
		if errors.Is(err, domain.ErrReceiverNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetReceivers, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetReceivers, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReceivers)
}
