package dto

import (
	"encoding/json"
	"time"
)

// ==================== EXERCISE SUBMISSION DTOs ====================

// SubmitAnswersRequest carries answers either as a bare array of strings
// (index implied by position) or as explicit {index, answer} objects. The
// exercise service normalizes both shapes.
type SubmitAnswersRequest struct {
	ContentID string            `json:"contentId" validate:"required" example:"0198a6bc-93f4-7000-8000-000000000000"`
	Answers   []json.RawMessage `json:"answers" validate:"required,min=1"`
}

func (r SubmitAnswersRequest) Validate() error {
	return GetValidator().Struct(r)
}

type IndexedAnswer struct {
	Index  int    `json:"index"`
	Answer string `json:"answer"`
}

type ExerciseResult struct {
	Index         int    `json:"index"`
	Question      string `json:"question"`
	UserAnswer    string `json:"userAnswer"`
	Correct       bool   `json:"correct"`
	CorrectAnswer string `json:"correctAnswer"`
	Explanation   string `json:"explanation"`
	FocusWord     string `json:"focusWord"`
}

type SubmissionSummary struct {
	Total       int `json:"total"`
	Correct     int `json:"correct"`
	Score       int `json:"score"`
	ReviewAdded int `json:"reviewAdded"`
}

type SubmitAnswersResponse struct {
	Results []ExerciseResult  `json:"results"`
	Summary SubmissionSummary `json:"summary"`
}

// ==================== REVIEW QUEUE DTOs ====================

type ReviewItemResponse struct {
	Word            string    `json:"word"`
	Context         string    `json:"context"`
	SourceContentID string    `json:"source_content_id"`
	TimesMissed     int       `json:"times_missed"`
	LastMissedAt    time.Time `json:"last_missed_at"`
	CreatedAt       time.Time `json:"created_at"`
}

type ReviewQueueResponse struct {
	Items []ReviewItemResponse `json:"items"`
	Total int                  `json:"total"`
}
