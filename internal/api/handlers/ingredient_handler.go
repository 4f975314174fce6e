package handlers

import (
	"strconv"

	"github.com/plateful/plateful-backend/domain"
	"github.com/plateful/plateful-backend/internal/api/presenters"
	"github.com/plateful/plateful-backend/pkg/ingredient"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	IngredientHandler interface {
		Search(c *fiber.Ctx) error
		Resolve(c *fiber.Ctx) error
		ImportDataset(c *fiber.Ctx) error
	}

	ingredientHandler struct {
		ingredientService ingredient.IngredientService
		validator         *validator.Validate
	}
)

func NewIngredientHandler(ingredientService ingredient.IngredientService, validator *validator.Validate) IngredientHandler {
	return &ingredientHandler{
		ingredientService: ingredientService,
		validator:         validator,
	}
}

func (h *ingredientHandler) Search(c *fiber.Ctx) error {
	query := c.Query("q")

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	refs, count, err := h.ingredientService.Search(c.Context(), query, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedSearchIngredients, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"ingredients": refs,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessSearchIngredients)
}

func (h *ingredientHandler) Resolve(c *fiber.Ctx) error {
	req := new(domain.ResolveIngredientRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedResolveIngredient, err)
	}

	res, err := h.ingredientService.ResolvePreview(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedResolveIngredient, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessResolveIngredient)
}

func (h *ingredientHandler) ImportDataset(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedImportDataset, err)
	}

	res, err := h.ingredientService.ImportDataset(c.Context(), domain.ImportDatasetRequest{File: file})
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedImportDataset, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessImportDataset)
}
