package services

import (
	"context"
	"encoding/json"
	"fmt"

	appContext "github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"

	"github.com/lingoleap/lingo_api/dto"
	"github.com/lingoleap/lingo_api/model"
	"github.com/lingoleap/lingo_api/shared"
)

// GeneratorService runs the content pipeline: safety check, prompt assembly,
// model call, response recovery, persistence, activity recording.
type GeneratorService struct {
	appContext.DefaultService

	sqlSvc      *SqlService
	aiSvc       *AIService
	settingsSvc *SettingsService
	progressSvc *ProgressService
}

const GENERATOR_SVC = "generator_svc"

const (
	generationTemperature = 0.7
	generationMaxTokens   = 900
)

func (svc GeneratorService) Id() string {
	return GENERATOR_SVC
}

func (svc *GeneratorService) Start() error {
	svc.sqlSvc = svc.Service(SQL_SVC).(*SqlService)
	svc.aiSvc = svc.Service(AI_SVC).(*AIService)
	svc.settingsSvc = svc.Service(SETTINGS_SVC).(*SettingsService)
	svc.progressSvc = svc.Service(PROGRESS_SVC).(*ProgressService)
	return nil
}

// Generate produces and stores one learning unit for the user. Restricted
// topics are rejected before any model call; a degraded model response still
// returns usable content via the recovery ladder.
func (svc *GeneratorService) Generate(ctx context.Context, userID string, req dto.GenerateContentRequest) (*dto.ContentResponse, error) {
	settings, err := svc.settingsSvc.AISettings(ctx)
	if err != nil {
		return nil, err
	}

	if IsRestricted(req, settings.RestrictedTopicList()) {
		observeGeneration("rejected")
		return nil, shared.NewBadRequestError(
			fmt.Errorf("restricted topic: %s", req.Topic),
			"This topic is not available for content generation")
	}

	prompt := ComposePrompt(req, settings)

	raw, err := svc.aiSvc.Complete(ctx, generatorSystemPrompt, prompt, CompletionParams{
		Temperature: generationTemperature,
		MaxTokens:   generationMaxTokens,
		JSONObject:  true,
	})
	if err != nil {
		observeGeneration("failed")
		return nil, err
	}

	recovered := RecoverContent(raw, req.Topic, req.Type == shared.ContentTypeExercise)
	observeRecovery(recovered.Source)
	if recovered.Source != RecoverySourceDirect {
		log.WithFields(log.Fields{
			"user_id": userID,
			"source":  recovered.Source,
		}).Warn("Model response needed recovery")
	}

	exercisesRaw, err := json.Marshal(recovered.Exercises)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to encode exercises")
	}

	content := &model.Content{
		UserID:     userID,
		Topic:      req.Topic,
		Level:      req.Level,
		Type:       req.Type,
		Language:   req.Language,
		Difficulty: req.Difficulty,
		Title:      recovered.Title,
		Body:       recovered.Body,
		Exercises:  exercisesRaw,
	}
	content, err = svc.sqlSvc.Contents().CreateContent(content)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	metadata, _ := json.Marshal(map[string]string{"content_id": content.ID, "topic": content.Topic})
	if _, err := svc.progressSvc.RecordActivity(ctx, userID, shared.ActivityContentGenerated, 1, metadata); err != nil {
		// Content is already stored; losing the activity row is logged, not fatal.
		log.WithError(err).WithField("user_id", userID).Error("Failed to record generation activity")
	}

	observeGeneration("ok")
	return contentToResponse(content), nil
}

// GetContent returns one unit, restricted to its owner or an admin.
func (svc *GeneratorService) GetContent(contentID, userID, role string) (*dto.ContentResponse, error) {
	content, err := svc.sqlSvc.Contents().GetContent(contentID)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}
	if content.UserID != userID && role != shared.RoleAdmin {
		return nil, shared.NewForbiddenError(fmt.Errorf("content %s not owned by %s", contentID, userID), "Forbidden")
	}
	return contentToResponse(content), nil
}

// GetHistory lists the user's generated content, newest first.
func (svc *GeneratorService) GetHistory(userID string) (*dto.ContentHistoryResponse, error) {
	contents, err := svc.sqlSvc.Contents().GetUserContents(userID)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	resp := &dto.ContentHistoryResponse{
		Contents: make([]dto.ContentResponse, 0, len(contents)),
		Total:    len(contents),
	}
	for i := range contents {
		resp.Contents = append(resp.Contents, *contentToResponse(&contents[i]))
	}
	return resp, nil
}

// RateContent stores a 1-5 rating on the user's own content.
func (svc *GeneratorService) RateContent(contentID, userID string, rating int) error {
	content, err := svc.sqlSvc.Contents().GetContent(contentID)
	if err != nil {
		return svc.sqlSvc.HandleError(err)
	}
	if content.UserID != userID {
		return shared.NewForbiddenError(fmt.Errorf("content %s not owned by %s", contentID, userID), "Forbidden")
	}

	if err := svc.sqlSvc.Contents().UpdateRating(contentID, rating); err != nil {
		return svc.sqlSvc.HandleError(err)
	}
	return nil
}

func contentToResponse(content *model.Content) *dto.ContentResponse {
	exercises := content.ExerciseList()
	resp := &dto.ContentResponse{
		ID:        content.ID,
		Topic:     content.Topic,
		Level:     content.Level,
		Type:      content.Type,
		Language:  content.Language,
		Title:     content.Title,
		Body:      content.Body,
		Exercises: make([]dto.ExerciseResponse, 0, len(exercises)),
		Rating:    content.Rating,
		CreatedAt: content.CreatedAt,
	}
	// The correct answer stays server-side so grading means something.
	for _, exercise := range exercises {
		resp.Exercises = append(resp.Exercises, dto.ExerciseResponse{
			Question:    exercise.Question,
			Options:     exercise.Options,
			Explanation: exercise.Explanation,
			FocusWord:   exercise.FocusWord,
		})
	}
	return resp
}
