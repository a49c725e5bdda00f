package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lingoleap/lingo_api/dto"
	"github.com/lingoleap/lingo_api/shared"
)

type ExerciseHandler struct {
	exerciseSvc ExerciseServiceInterface
}

func NewExerciseHandler(exerciseSvc ExerciseServiceInterface) *ExerciseHandler {
	return &ExerciseHandler{
		exerciseSvc: exerciseSvc,
	}
}

// @Summary Submit exercise answers
// @Description Grade a submission against the content's exercises
// @Tags exercises
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param submitRequest body dto.SubmitAnswersRequest true "Answers by position or explicit index"
// @Success 200 {object} shared.Response{data=dto.SubmitAnswersResponse}
// @Router /api/v1/exercises/submit [post]
func (h *ExerciseHandler) SubmitAnswers(c *fiber.Ctx) error {
	var req dto.SubmitAnswersRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	userID := c.Locals(shared.UserID).(string)
	role, _ := c.Locals(shared.UserRole).(string)

	resp, err := h.exerciseSvc.SubmitAnswers(c.UserContext(), userID, role, req)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}

// @Summary Get review queue
// @Description List the user's missed words, most recently missed first
// @Tags exercises
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=dto.ReviewQueueResponse}
// @Router /api/v1/exercises/review [get]
func (h *ExerciseHandler) GetReviewQueue(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	resp, err := h.exerciseSvc.GetReviewQueue(userID)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}
