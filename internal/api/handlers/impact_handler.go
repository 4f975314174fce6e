package handlers

import (
	"errors"
	"strconv"

	"github.com/plateful/plateful-backend/domain"
	"github.com/plateful/plateful-backend/internal/api/presenters"
	"github.com/plateful/plateful-backend/pkg/impact"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type (
	ImpactHandler interface {
		LogEvent(c *fiber.Ctx) error
		ReverseEvent(c *fiber.Ctx) error
		DeleteEvent(c *fiber.Ctx) error
		Estimate(c *fiber.Ctx) error
		EstimateRecipe(c *fiber.Ctx) error
		GetSummary(c *fiber.Ctx) error
		GetWeek(c *fiber.Ctx) error
		GetHistory(c *fiber.Ctx) error
		ExportHistory(c *fiber.Ctx) error
		Health(c *fiber.Ctx) error
	}

	impactHandler struct {
		impactService impact.ImpactService
		validator     *validator.Validate
		db            *gorm.DB
	}
)

func NewImpactHandler(impactService impact.ImpactService, validator *validator.Validate, db *gorm.DB) ImpactHandler {
	return &impactHandler{
		impactService: impactService,
		validator:     validator,
		db:            db,
	}
}

// statusFor maps service errors onto HTTP statuses; storage failures are
// 503 so clients know to retry.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrEventNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUserNotAllowed):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrEventNotActive):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrStorageUnavailable):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusBadRequest
	}
}

func (h *impactHandler) LogEvent(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	email, _ := c.Locals("email").(string)

	req := new(domain.LogImpactRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogImpact, err)
	}

	res, err := h.impactService.LogEvent(c.Context(), *req, userID, email)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedLogImpact, err)
	}

	status := fiber.StatusCreated
	if res.Duplicate {
		status = fiber.StatusOK
	}
	return presenters.SuccessResponse(c, res, status, domain.MessageSuccessLogImpact)
}

func (h *impactHandler) ReverseEvent(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	eventID := c.Params("id")

	if err := h.impactService.ReverseEvent(c.Context(), eventID, userID); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedReverseImpact, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessReverseImpact)
}

func (h *impactHandler) DeleteEvent(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	eventID := c.Params("id")

	if err := h.impactService.DeleteEvent(c.Context(), eventID, userID); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedDeleteImpact, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteImpact)
}

func (h *impactHandler) Estimate(c *fiber.Ctx) error {
	req := new(domain.EstimateImpactRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedEstimate, err)
	}

	res, err := h.impactService.Estimate(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedEstimate, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessEstimate)
}

func (h *impactHandler) EstimateRecipe(c *fiber.Ctx) error {
	req := new(domain.EstimateRecipeRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedEstimate, err)
	}

	res, err := h.impactService.EstimateRecipe(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedEstimate, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessEstimate)
}

func (h *impactHandler) GetSummary(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.impactService.GetWeeklySummary(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetSummary, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSummary)
}

func (h *impactHandler) GetWeek(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	weekStart := c.Query("week_start")

	res, err := h.impactService.SummarizeWeek(c.Context(), userID, weekStart)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetWeek, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetWeek)
}

func (h *impactHandler) GetHistory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}

	events, count, err := h.impactService.GetHistory(c.Context(), userID, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetHistory, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"events": events,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetHistory)
}

func (h *impactHandler) ExportHistory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.impactService.ExportHistory(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedExportHistory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessExportHistory)
}

func (h *impactHandler) Health(c *fiber.Ctx) error {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusServiceUnavailable, "database unreachable", err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"database": "up"}, fiber.StatusOK, "healthy")
}
