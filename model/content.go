// model/content.go
package model

import (
	"encoding/json"
	"time"
)

// Content is one generated learning unit. The body and title come out of the
// response recovery ladder, so they are always present even when the model
// reply was malformed.
type Content struct {
	ID         string          `json:"id" gorm:"primaryKey"`
	UserID     string          `json:"user_id" gorm:"not null;index"`
	Topic      string          `json:"topic" gorm:"not null"`
	Level      string          `json:"level"`    // A1..C2
	Type       string          `json:"type"`     // Article, Story, Dialogue, Exercise
	Language   string          `json:"language"`
	Difficulty string          `json:"difficulty"`
	Title      string          `json:"title"`
	Body       string          `json:"body" gorm:"type:text"`
	Exercises  json.RawMessage `json:"exercises" gorm:"type:text"` // JSON array of Exercise
	Rating     int             `json:"rating" gorm:"default:0"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// Exercise is a single auto-graded question attached to Exercise-type
// content. Only kept when it has a question, at least two options and a
// correct answer.
type Exercise struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
	FocusWord     string   `json:"focusWord"`
}

// ExerciseList decodes the stored exercises. Malformed storage degrades to
// an empty set rather than failing a read.
func (c *Content) ExerciseList() []Exercise {
	var exercises []Exercise
	if len(c.Exercises) > 0 {
		if err := json.Unmarshal(c.Exercises, &exercises); err != nil {
			return []Exercise{}
		}
	}
	if exercises == nil {
		exercises = []Exercise{}
	}
	return exercises
}
