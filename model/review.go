package model

import "time"

// ReviewItem is the spaced-review record for a word a user keeps missing.
// At most one row exists per (user, word); repeated misses bump TimesMissed
// and refresh the context columns in place.
type ReviewItem struct {
	ID              string    `json:"id" gorm:"primaryKey"`
	UserID          string    `json:"user_id" gorm:"not null;uniqueIndex:idx_review_user_word"`
	Word            string    `json:"word" gorm:"not null;uniqueIndex:idx_review_user_word"`
	Context         string    `json:"context" gorm:"type:text"`
	SourceContentID string    `json:"source_content_id"`
	TimesMissed     int       `json:"times_missed" gorm:"default:1"`
	LastMissedAt    time.Time `json:"last_missed_at"`
	CreatedAt       time.Time `json:"created_at"`
}
