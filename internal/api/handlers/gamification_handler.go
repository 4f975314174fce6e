package handlers

import (
	"github.com/plateful/plateful-backend/domain"
	"github.com/plateful/plateful-backend/internal/api/presenters"
	"github.com/plateful/plateful-backend/pkg/gamification"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	GamificationHandler interface {
		GetState(c *fiber.Ctx) error
		UpdateWeeklyGoal(c *fiber.Ctx) error
	}

	gamificationHandler struct {
		gamificationService gamification.GamificationService
		validator           *validator.Validate
	}
)

func NewGamificationHandler(gamificationService gamification.GamificationService, validator *validator.Validate) GamificationHandler {
	return &gamificationHandler{
		gamificationService: gamificationService,
		validator:           validator,
	}
}

func (h *gamificationHandler) GetState(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.gamificationService.GetState(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetGamification, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetGamification)
}

func (h *gamificationHandler) UpdateWeeklyGoal(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.UpdateWeeklyGoalRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateGoal, err)
	}

	if err := h.gamificationService.UpdateWeeklyGoal(c.Context(), *req, userID); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedUpdateGoal, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateGoal)
}
