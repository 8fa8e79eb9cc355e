package handlers

import (
	"ReliefStock-Backend/domain"
	"ReliefStock-Backend/internal/api/presenters"
	"ReliefStock-Backend/pkg/alert"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AlertHandler interface {
		RunExpiryCheck(c *fiber.Ctx) error
		GetAlerts(c *fiber.Ctx) error
		GetAlertLogs(c *fiber.Ctx) error
		AcknowledgeAlert(c *fiber.Ctx) error
	}

	alertHandler struct {
		alertService alert.AlertService
		validator    *validator.Validate
	}
)

func NewAlertHandler(alertService alert.AlertService, validator *validator.Validate) AlertHandler {
	return &alertHandler{
		alertService: alertService,
		validator:    validator,
	}
}

func (h *alertHandler) RunExpiryCheck(c *fiber.Ctx) error {
	req := new(domain.ExpiryCheckRequest)

	// Body is optional; the default threshold is used when absent.
	if len(c.Body()) > 0 {
		if err := c.BodyParser(req); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
		}
		if err := h.validator.Struct(req); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRunExpiryCheck, err)
		}
	}

	res, err := h.alertService.GenerateAlerts(c.Context(), req.Days)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidThreshold) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRunExpiryCheck, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedRunExpiryCheck, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRunExpiryCheck)
}

func (h *alertHandler) GetAlerts(c *fiber.Ctx) error {
	var acknowledged *bool
	if raw := c.Query("acknowledged", ""); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetAlerts, err)
		}
		acknowledged = &value
	}

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	alerts, count, err := h.alertService.GetAlerts(c.Context(), acknowledged, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetAlerts, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"alerts": alerts,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetAlerts)
}

func (h *alertHandler) GetAlertLogs(c *fiber.Ctx) error {
	skip, err := strconv.ParseInt(c.Query("skip", "0"), 10, 64)
	if err != nil || skip < 0 {
		skip = 0
	}

	limit, err := strconv.ParseInt(c.Query("limit", "50"), 10, 64)
	if err != nil || limit < 1 {
		limit = 50
	}

	logs, count, err := h.alertService.GetAlertLogs(c.Context(), skip, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetAlertLogs, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"logs":  logs,
		"total": count,
	}, fiber.StatusOK, domain.MessageSuccessGetAlertLogs)
}

func (h *alertHandler) AcknowledgeAlert(c *fiber.Ctx) error {
	alertID := c.Params("id")

	if err := h.alertService.AcknowledgeAlert(c.Context(), alertID); err != nil {
		if errors.Is(err, domain.ErrAlertNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedAcknowledgeAlert, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAcknowledgeAlert, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessAcknowledgeAlert)
}
