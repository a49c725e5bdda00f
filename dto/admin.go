package dto

import "time"

// ==================== ADMIN SETTINGS DTOs ====================

type AISettingsResponse struct {
	RestrictedTopics []string  `json:"restricted_topics"`
	SafetyMode       string    `json:"safety_mode"`
	UpdatedBy        string    `json:"updated_by,omitempty"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type UpdateAISettingsRequest struct {
	RestrictedTopics StringList `json:"restricted_topics"`
	SafetyMode       string     `json:"safety_mode" validate:"omitempty,oneof=standard strict" example:"standard"`
}

func (r UpdateAISettingsRequest) Validate() error {
	return GetValidator().Struct(r)
}

type GamificationSettingsResponse struct {
	Points    map[string]int `json:"points"`
	Badges    map[string]int `json:"badges"`
	UpdatedBy string         `json:"updated_by,omitempty"`
	UpdatedAt time.Time      `json:"updated_at"`
}

type UpdateGamificationSettingsRequest struct {
	PointsContentGenerated  *int `json:"points_content_generated" validate:"omitempty,min=0"`
	PointsExerciseCompleted *int `json:"points_exercise_completed" validate:"omitempty,min=0"`
	PointsLogin             *int `json:"points_login" validate:"omitempty,min=0"`
	PointsProfileUpdate     *int `json:"points_profile_update" validate:"omitempty,min=0"`

	BadgeContentCount  *int `json:"badge_content_count" validate:"omitempty,min=1"`
	BadgeExerciseCount *int `json:"badge_exercise_count" validate:"omitempty,min=1"`
	BadgeStreak3       *int `json:"badge_streak_3" validate:"omitempty,min=1"`
	BadgeStreak7       *int `json:"badge_streak_7" validate:"omitempty,min=1"`
	BadgePoints100     *int `json:"badge_points_100" validate:"omitempty,min=1"`
}

func (r UpdateGamificationSettingsRequest) Validate() error {
	return GetValidator().Struct(r)
}
