package model

import (
	"encoding/json"
	"time"
)

type User struct {
	ID        string     `json:"id" gorm:"primaryKey"`
	Email     string     `json:"email" gorm:"unique;not null"`
	Username  string     `json:"username" gorm:"unique;not null"`
	Password  string     `json:"-"`
	Role      string     `json:"role" gorm:"default:user"`
	LastLogin *time.Time `json:"last_login"`

	// Gamification state, mutated atomically per recorded activity.
	Points           int             `json:"points" gorm:"default:0"`
	Streak           int             `json:"streak" gorm:"default:0"`
	LastActivityDate *time.Time      `json:"last_activity_date"`
	Badges           json.RawMessage `json:"badges" gorm:"type:text"` // JSON array of badge labels

	WeeklyGoalTarget   int        `json:"weekly_goal_target" gorm:"default:0"`
	WeeklyGoalProgress int        `json:"weekly_goal_progress" gorm:"default:0"`
	WeeklyGoalStart    *time.Time `json:"weekly_goal_start"`

	GeneratedCount     int        `json:"generated_count" gorm:"default:0"`
	CompletedExercises int        `json:"completed_exercises" gorm:"default:0"`
	TotalActivities    int        `json:"total_activities" gorm:"default:0"`
	LastGeneratedAt    *time.Time `json:"last_generated_at"`
	LastExerciseAt     *time.Time `json:"last_exercise_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BadgeList decodes the stored badge array. A nil or malformed column
// degrades to an empty list.
func (u *User) BadgeList() []string {
	var badges []string
	if len(u.Badges) > 0 {
		if err := json.Unmarshal(u.Badges, &badges); err != nil {
			return []string{}
		}
	}
	if badges == nil {
		badges = []string{}
	}
	return badges
}

func (u *User) SetBadgeList(badges []string) {
	raw, err := json.Marshal(badges)
	if err != nil {
		return
	}
	u.Badges = raw
}
