package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/lingoleap/lingo_api/dto"
	"github.com/lingoleap/lingo_api/model"
)

type AuthServiceInterface interface {
	Register(req dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	RequiredAuth() fiber.Handler
	RequireRole(role string) fiber.Handler
}

type GeneratorServiceInterface interface {
	Generate(ctx context.Context, userID string, req dto.GenerateContentRequest) (*dto.ContentResponse, error)
	GetContent(contentID, userID, role string) (*dto.ContentResponse, error)
	GetHistory(userID string) (*dto.ContentHistoryResponse, error)
	RateContent(contentID, userID string, rating int) error
}

type TranslationServiceInterface interface {
	Translate(ctx context.Context, req dto.TranslateRequest) (*dto.TranslateResponse, error)
}

type ExerciseServiceInterface interface {
	SubmitAnswers(ctx context.Context, userID, role string, req dto.SubmitAnswersRequest) (*dto.SubmitAnswersResponse, error)
	GetReviewQueue(userID string) (*dto.ReviewQueueResponse, error)
}

type ProgressServiceInterface interface {
	RecordExercise(ctx context.Context, userID string, count int) (*dto.RecordActivityResponse, error)
	GetSummary(userID string) (*dto.ProgressSummaryResponse, error)
	GetHistory(userID string) (*dto.ProgressHistoryResponse, error)
	UpdateWeeklyGoal(userID string, target int) (*dto.WeeklyGoalResponse, error)
}

type SettingsServiceInterface interface {
	AISettings(ctx context.Context) (*model.AISettings, error)
	UpdateAISettings(ctx context.Context, req dto.UpdateAISettingsRequest, updatedBy string) (*model.AISettings, error)
	GamificationSettings(ctx context.Context) (*model.GamificationSettings, error)
	UpdateGamificationSettings(ctx context.Context, req dto.UpdateGamificationSettingsRequest, updatedBy string) (*model.GamificationSettings, error)
}
