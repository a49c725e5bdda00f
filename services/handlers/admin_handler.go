package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lingoleap/lingo_api/dto"
	"github.com/lingoleap/lingo_api/model"
	"github.com/lingoleap/lingo_api/shared"
)

type AdminHandler struct {
	settingsSvc SettingsServiceInterface
}

func NewAdminHandler(settingsSvc SettingsServiceInterface) *AdminHandler {
	return &AdminHandler{
		settingsSvc: settingsSvc,
	}
}

// @Summary Get AI safety settings (Admin)
// @Description Current restricted topics and safety mode
// @Tags admin
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Success 200 {object} shared.Response{data=dto.AISettingsResponse}
// @Router /api/v1/admin/settings/ai [get]
func (h *AdminHandler) GetAISettings(c *fiber.Ctx) error {
	settings, err := h.settingsSvc.AISettings(c.UserContext())
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, aiSettingsToResponse(settings))
}

// @Summary Update AI safety settings (Admin)
// @Description Replace the restricted topic list and safety mode
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Param settingsRequest body dto.UpdateAISettingsRequest true "New safety settings"
// @Success 200 {object} shared.Response{data=dto.AISettingsResponse}
// @Router /api/v1/admin/settings/ai [put]
func (h *AdminHandler) UpdateAISettings(c *fiber.Ctx) error {
	var req dto.UpdateAISettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	updatedBy := c.Locals(shared.UserID).(string)

	settings, err := h.settingsSvc.UpdateAISettings(c.UserContext(), req, updatedBy)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, aiSettingsToResponse(settings))
}

// @Summary Get gamification settings (Admin)
// @Description Current point awards and badge thresholds
// @Tags admin
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Success 200 {object} shared.Response{data=dto.GamificationSettingsResponse}
// @Router /api/v1/admin/settings/gamification [get]
func (h *AdminHandler) GetGamificationSettings(c *fiber.Ctx) error {
	settings, err := h.settingsSvc.GamificationSettings(c.UserContext())
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, gamificationSettingsToResponse(settings))
}

// @Summary Update gamification settings (Admin)
// @Description Patch point awards and badge thresholds; omitted fields keep their value
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Param settingsRequest body dto.UpdateGamificationSettingsRequest true "Settings patch"
// @Success 200 {object} shared.Response{data=dto.GamificationSettingsResponse}
// @Router /api/v1/admin/settings/gamification [put]
func (h *AdminHandler) UpdateGamificationSettings(c *fiber.Ctx) error {
	var req dto.UpdateGamificationSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	updatedBy := c.Locals(shared.UserID).(string)

	settings, err := h.settingsSvc.UpdateGamificationSettings(c.UserContext(), req, updatedBy)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, gamificationSettingsToResponse(settings))
}

func aiSettingsToResponse(settings *model.AISettings) dto.AISettingsResponse {
	return dto.AISettingsResponse{
		RestrictedTopics: settings.RestrictedTopicList(),
		SafetyMode:       settings.SafetyMode,
		UpdatedBy:        settings.UpdatedBy,
		UpdatedAt:        settings.UpdatedAt,
	}
}

func gamificationSettingsToResponse(settings *model.GamificationSettings) dto.GamificationSettingsResponse {
	return dto.GamificationSettingsResponse{
		Points: map[string]int{
			shared.ActivityContentGenerated:  settings.PointsContentGenerated,
			shared.ActivityExerciseCompleted: settings.PointsExerciseCompleted,
			shared.ActivityLogin:             settings.PointsLogin,
			shared.ActivityProfileUpdate:     settings.PointsProfileUpdate,
		},
		Badges: map[string]int{
			"content_count":  settings.BadgeContentCount,
			"exercise_count": settings.BadgeExerciseCount,
			"streak_3":       settings.BadgeStreak3,
			"streak_7":       settings.BadgeStreak7,
			"points_100":     settings.BadgePoints100,
		},
		UpdatedBy: settings.UpdatedBy,
		UpdatedAt: settings.UpdatedAt,
	}
}
