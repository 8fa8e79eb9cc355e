package handlers

import (
	"ReliefStock-Backend/domain"
	"ReliefStock-Backend/internal/api/presenters"
	"ReliefStock-Backend/pkg/category"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CategoryHandler interface {
		PredictCategory(c *fiber.Ctx) error
		GetCategories(c *fiber.Ctx) error
	}

	categoryHandler struct {
		classifier category.Classifier
		validator  *validator.Validate
	}
)

func NewCategoryHandler(classifier category.Classifier, validator *validator.Validate) CategoryHandler {
	return &categoryHandler{
		classifier: classifier,
		validator:  validator,
	}
}

func (h *categoryHandler) PredictCategory(c *fiber.Ctx) error {
	req := new(domain.PredictCategoryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPredictCategory, err)
	}

	predicted, confidence := h.classifier.Predict(req.Text)

	res := domain.PredictCategoryResponse{
		Category:   predicted,
		Confidence: confidence,
	}
	for _, s := range h.classifier.Suggest(req.Text, 3) {
		res.Suggestions = append(res.Suggestions, domain.CategorySuggestion{
			Category:   s.Category,
			Confidence: s.Confidence,
		})
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessPredictCategory)
}

func (h *categoryHandler) GetCategories(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, fiber.Map{
		"categories": h.classifier.Categories(),
	}, fiber.StatusOK, domain.MessageSuccessPredictCategory)
}
