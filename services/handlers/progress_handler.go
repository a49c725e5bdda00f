package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lingoleap/lingo_api/dto"
	"github.com/lingoleap/lingo_api/shared"
)

type ProgressHandler struct {
	progressSvc ProgressServiceInterface
}

func NewProgressHandler(progressSvc ProgressServiceInterface) *ProgressHandler {
	return &ProgressHandler{
		progressSvc: progressSvc,
	}
}

// @Summary Get progress summary
// @Description Points, streak, badges, weekly goal and activity stats
// @Tags progress
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=dto.ProgressSummaryResponse}
// @Router /api/v1/progress [get]
func (h *ProgressHandler) GetSummary(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	resp, err := h.progressSvc.GetSummary(userID)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}

// @Summary Get activity history
// @Description Recent activity log entries, newest first
// @Tags progress
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=dto.ProgressHistoryResponse}
// @Router /api/v1/progress/history [get]
func (h *ProgressHandler) GetHistory(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	resp, err := h.progressSvc.GetHistory(userID)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}

// @Summary Update weekly goal
// @Description Set the weekly activity target and restart the current window
// @Tags progress
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param goalRequest body dto.UpdateWeeklyGoalRequest true "Weekly target"
// @Success 200 {object} shared.Response{data=dto.WeeklyGoalResponse}
// @Router /api/v1/progress/weekly-goal [put]
func (h *ProgressHandler) UpdateWeeklyGoal(c *fiber.Ctx) error {
	var req dto.UpdateWeeklyGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	userID := c.Locals(shared.UserID).(string)

	resp, err := h.progressSvc.UpdateWeeklyGoal(userID, req.Target)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}

// @Summary Record exercise completion
// @Description Record exercises completed outside graded submission
// @Tags progress
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param recordRequest body dto.RecordExerciseRequest true "Completed exercise count"
// @Success 200 {object} shared.Response{data=dto.RecordActivityResponse}
// @Router /api/v1/progress/exercise [post]
func (h *ProgressHandler) RecordExercise(c *fiber.Ctx) error {
	var req dto.RecordExerciseRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	userID := c.Locals(shared.UserID).(string)

	count := req.Count
	if count == 0 {
		count = 1
	}

	resp, err := h.progressSvc.RecordExercise(c.UserContext(), userID, count)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}
