package dto

import (
	"encoding/json"
	"strings"
	"time"
)

// StringList accepts either a JSON array of strings or a single
// comma-separated string. Clients send both shapes for keywords and
// interests, so both normalize to the same slice.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*l = items
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		*l = strings.Split(raw, ",")
		return nil
	}

	// Anything else degrades to an empty list rather than failing the parse.
	*l = nil
	return nil
}

// ==================== CONTENT GENERATION DTOs ====================

type GenerateContentRequest struct {
	Topic      string     `json:"topic" validate:"required,max=200" example:"Ordering food at a restaurant"`
	Level      string     `json:"level" validate:"required,oneof=A1 A2 B1 B2 C1 C2" example:"B1"`
	Type       string     `json:"type" validate:"required,oneof=Article Story Dialogue Exercise" example:"Story"`
	Language   string     `json:"language" validate:"required,max=50" example:"English"`
	Difficulty string     `json:"difficulty,omitempty" validate:"omitempty,max=50" example:"medium"`
	Keywords   StringList `json:"keywords,omitempty"`
	Interests  StringList `json:"interests,omitempty"`
}

func (r GenerateContentRequest) Validate() error {
	return GetValidator().Struct(r)
}

type ExerciseResponse struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Explanation string   `json:"explanation,omitempty"`
	FocusWord   string   `json:"focusWord,omitempty"`
}

type ContentResponse struct {
	ID        string             `json:"id"`
	Topic     string             `json:"topic"`
	Level     string             `json:"level"`
	Type      string             `json:"type"`
	Language  string             `json:"language"`
	Title     string             `json:"title"`
	Body      string             `json:"body"`
	Exercises []ExerciseResponse `json:"exercises"`
	Rating    int                `json:"rating"`
	CreatedAt time.Time          `json:"created_at"`
}

type ContentHistoryResponse struct {
	Contents []ContentResponse `json:"contents"`
	Total    int               `json:"total"`
}

type RateContentRequest struct {
	Rating int `json:"rating" validate:"required,min=1,max=5" example:"4"`
}

func (r RateContentRequest) Validate() error {
	return GetValidator().Struct(r)
}

// ==================== TRANSLATION DTOs ====================

type TranslateRequest struct {
	Text           string `json:"text" validate:"required" example:"Hello, how are you?"`
	TargetLanguage string `json:"target_language" validate:"required,max=50" example:"Spanish"`
}

func (r TranslateRequest) Validate() error {
	return GetValidator().Struct(r)
}

type TranslateResponse struct {
	TranslatedText string `json:"translated_text"`
	TargetLanguage string `json:"target_language"`
}
