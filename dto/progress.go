package dto

import "time"

// ==================== PROGRESS DTOs ====================

type GamificationResponse struct {
	Points           int        `json:"points"`
	Streak           int        `json:"streak"`
	LastActivityDate *time.Time `json:"last_activity_date"`
	Badges           []string   `json:"badges"`
}

type WeeklyGoalResponse struct {
	Target    int        `json:"target"`
	Progress  int        `json:"progress"`
	StartDate *time.Time `json:"start_date"`
}

type ActivityStatsResponse struct {
	GeneratedCount     int        `json:"generated_count"`
	CompletedExercises int        `json:"completed_exercises"`
	TotalActivities    int        `json:"total_activities"`
	LastGeneratedAt    *time.Time `json:"last_generated_at"`
	LastExerciseAt     *time.Time `json:"last_exercise_at"`
}

type ProgressSummaryResponse struct {
	Gamification GamificationResponse  `json:"gamification"`
	WeeklyGoal   WeeklyGoalResponse    `json:"weekly_goal"`
	Stats        ActivityStatsResponse `json:"stats"`
}

type ProgressRecordResponse struct {
	ActivityType  string    `json:"activity_type"`
	PointsAwarded int       `json:"points_awarded"`
	CreatedAt     time.Time `json:"created_at"`
}

type ProgressHistoryResponse struct {
	Records []ProgressRecordResponse `json:"records"`
}

type RecordActivityResponse struct {
	PointsAwarded int      `json:"points_awarded"`
	Streak        int      `json:"streak"`
	NewBadges     []string `json:"new_badges"`
}

type UpdateWeeklyGoalRequest struct {
	Target int `json:"target" validate:"min=0" example:"20"`
}

func (r UpdateWeeklyGoalRequest) Validate() error {
	return GetValidator().Struct(r)
}

type RecordExerciseRequest struct {
	Count int `json:"count,omitempty" validate:"omitempty,min=1" example:"3"`
}

func (r RecordExerciseRequest) Validate() error {
	return GetValidator().Struct(r)
}
