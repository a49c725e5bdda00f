package model

import (
	"encoding/json"
	"time"
)

// AISettings is the administrator-managed safety configuration singleton.
type AISettings struct {
	ID               string          `json:"id" gorm:"primaryKey"`
	RestrictedTopics json.RawMessage `json:"restricted_topics" gorm:"type:text"` // JSON array of strings
	SafetyMode       string          `json:"safety_mode" gorm:"default:standard"` // standard, strict
	UpdatedBy        string          `json:"updated_by"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func (s *AISettings) RestrictedTopicList() []string {
	var topics []string
	if len(s.RestrictedTopics) > 0 {
		if err := json.Unmarshal(s.RestrictedTopics, &topics); err != nil {
			return []string{}
		}
	}
	if topics == nil {
		topics = []string{}
	}
	return topics
}

func (s *AISettings) SetRestrictedTopicList(topics []string) {
	raw, err := json.Marshal(topics)
	if err != nil {
		return
	}
	s.RestrictedTopics = raw
}

// GamificationSettings is the administrator-managed scoring singleton. A
// missing row falls back to the hardcoded defaults in the services package.
type GamificationSettings struct {
	ID string `json:"id" gorm:"primaryKey"`

	PointsContentGenerated  int `json:"points_content_generated" gorm:"default:10"`
	PointsExerciseCompleted int `json:"points_exercise_completed" gorm:"default:5"`
	PointsLogin             int `json:"points_login" gorm:"default:1"`
	PointsProfileUpdate     int `json:"points_profile_update" gorm:"default:1"`

	BadgeContentCount  int `json:"badge_content_count" gorm:"default:10"`
	BadgeExerciseCount int `json:"badge_exercise_count" gorm:"default:5"`
	BadgeStreak3       int `json:"badge_streak_3" gorm:"default:3"`
	BadgeStreak7       int `json:"badge_streak_7" gorm:"default:7"`
	BadgePoints100     int `json:"badge_points_100" gorm:"default:100"`

	UpdatedBy string    `json:"updated_by"`
	UpdatedAt time.Time `json:"updated_at"`
}
