package model

import (
	"encoding/json"
	"time"
)

// Progress is the append-only activity log. Rows are written once inside the
// same transaction that updates the user's gamification state and are never
// mutated afterwards.
type Progress struct {
	ID            string          `json:"id" gorm:"primaryKey"`
	UserID        string          `json:"user_id" gorm:"not null;index"`
	ActivityType  string          `json:"activity_type" gorm:"not null"` // content_generated, exercise_completed, login, profile_update
	PointsAwarded int             `json:"points_awarded" gorm:"default:0"`
	Metadata      json.RawMessage `json:"metadata" gorm:"type:text"`
	CreatedAt     time.Time       `json:"created_at"`
}
