package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	appContext "github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"

	"github.com/lingoleap/lingo_api/dto"
	"github.com/lingoleap/lingo_api/shared"
)

// ExerciseService grades answer submissions against stored exercises and
// feeds missed focus words into the review queue.
type ExerciseService struct {
	appContext.DefaultService

	sqlSvc      *SqlService
	progressSvc *ProgressService
}

const EXERCISE_SVC = "exercise_svc"

func (svc ExerciseService) Id() string {
	return EXERCISE_SVC
}

func (svc *ExerciseService) Start() error {
	svc.sqlSvc = svc.Service(SQL_SVC).(*SqlService)
	svc.progressSvc = svc.Service(PROGRESS_SVC).(*ProgressService)
	return nil
}

// SubmitAnswers grades a submission against the content's exercises. Answers
// outside the exercise range and non-integer indices are dropped; unanswered
// exercises grade as incorrect with an empty answer. Content without
// exercises grades to an empty summary with score 0 and records nothing.
func (svc *ExerciseService) SubmitAnswers(ctx context.Context, userID, role string, req dto.SubmitAnswersRequest) (*dto.SubmitAnswersResponse, error) {
	content, err := svc.sqlSvc.Contents().GetContent(req.ContentID)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}
	if content.UserID != userID && role != shared.RoleAdmin {
		return nil, shared.NewForbiddenError(fmt.Errorf("content %s not owned by %s", req.ContentID, userID), "Forbidden")
	}

	exercises := content.ExerciseList()
	answers := normalizeAnswers(req.Answers, len(exercises))

	results := make([]dto.ExerciseResult, 0, len(exercises))
	correct := 0
	reviewAdded := 0

	for i, exercise := range exercises {
		userAnswer := answers[i]
		isCorrect := answersMatch(userAnswer, exercise.CorrectAnswer)
		if isCorrect {
			correct++
		} else if word := strings.TrimSpace(exercise.FocusWord); word != "" {
			if err := svc.sqlSvc.Reviews().RecordMiss(userID, word, exercise.Question, content.ID); err != nil {
				log.WithError(err).WithFields(log.Fields{
					"user_id": userID,
					"word":    word,
				}).Error("Failed to record review miss")
			} else {
				reviewAdded++
			}
		}

		results = append(results, dto.ExerciseResult{
			Index:         i,
			Question:      exercise.Question,
			UserAnswer:    userAnswer,
			Correct:       isCorrect,
			CorrectAnswer: exercise.CorrectAnswer,
			Explanation:   exercise.Explanation,
			FocusWord:     exercise.FocusWord,
		})
	}

	if len(exercises) > 0 {
		metadata, _ := json.Marshal(map[string]interface{}{
			"content_id": content.ID,
			"total":      len(exercises),
			"correct":    correct,
		})
		if _, err := svc.progressSvc.RecordActivity(ctx, userID, shared.ActivityExerciseCompleted, len(exercises), metadata); err != nil {
			log.WithError(err).WithField("user_id", userID).Error("Failed to record exercise activity")
		}
	}

	return &dto.SubmitAnswersResponse{
		Results: results,
		Summary: dto.SubmissionSummary{
			Total:       len(exercises),
			Correct:     correct,
			Score:       scorePercent(correct, len(exercises)),
			ReviewAdded: reviewAdded,
		},
	}, nil
}

// GetReviewQueue lists the user's missed words, most recently missed first.
func (svc *ExerciseService) GetReviewQueue(userID string) (*dto.ReviewQueueResponse, error) {
	items, err := svc.sqlSvc.Reviews().GetUserReviewItems(userID)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	resp := &dto.ReviewQueueResponse{
		Items: make([]dto.ReviewItemResponse, 0, len(items)),
		Total: len(items),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, dto.ReviewItemResponse{
			Word:            item.Word,
			Context:         item.Context,
			SourceContentID: item.SourceContentID,
			TimesMissed:     item.TimesMissed,
			LastMissedAt:    item.LastMissedAt,
			CreatedAt:       item.CreatedAt,
		})
	}
	return resp, nil
}

// normalizeAnswers maps the two accepted submission shapes onto a positional
// slice sized to the exercise count. Bare strings bind by position; indexed
// objects bind by their index. Out-of-range and fractional indices are
// dropped silently.
func normalizeAnswers(raw []json.RawMessage, total int) []string {
	answers := make([]string, total)

	for position, entry := range raw {
		var text string
		if err := json.Unmarshal(entry, &text); err == nil {
			if position < total {
				answers[position] = text
			}
			continue
		}

		var indexed struct {
			Index  interface{} `json:"index"`
			Answer string      `json:"answer"`
		}
		if err := json.Unmarshal(entry, &indexed); err != nil {
			continue
		}

		index, ok := integerIndex(indexed.Index)
		if !ok || index < 0 || index >= total {
			continue
		}
		answers[index] = indexed.Answer
	}

	return answers
}

// integerIndex accepts whole-number indices whether they arrive as JSON
// numbers or numeric strings. Fractional values are rejected, not rounded.
func integerIndex(value interface{}) (int, bool) {
	var number float64
	switch v := value.(type) {
	case float64:
		number = v
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		number = parsed
	default:
		return 0, false
	}

	if number != math.Trunc(number) {
		return 0, false
	}
	return int(number), true
}

// answersMatch compares trimmed, case-folded answers.
func answersMatch(given, expected string) bool {
	return strings.EqualFold(strings.TrimSpace(given), strings.TrimSpace(expected))
}

// scorePercent is the rounded percentage, zero when nothing was gradable.
func scorePercent(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}
