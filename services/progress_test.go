package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lingoleap/lingo_api/dto"
	"github.com/lingoleap/lingo_api/model"
	"github.com/lingoleap/lingo_api/services/repositories"
	"github.com/lingoleap/lingo_api/shared"
)

// testStack wires the data-dependent services over an in-memory database,
// bypassing the service container.
type testStack struct {
	sql      *SqlService
	progress *ProgressService
	exercise *ExerciseService
}

func newTestStack(t *testing.T) *testStack {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Content{},
		&model.ReviewItem{},
		&model.Progress{},
		&model.AISettings{},
		&model.GamificationSettings{},
	))

	sqlSvc := &SqlService{
		db:       db,
		users:    repositories.NewUserRepository(db),
		contents: repositories.NewContentRepository(db),
		reviews:  repositories.NewReviewRepository(db),
		progress: repositories.NewProgressRepository(db),
		settings: repositories.NewSettingsRepository(db),
	}
	settingsSvc := &SettingsService{sqlSvc: sqlSvc, redisSvc: &RedisService{}}
	progressSvc := &ProgressService{sqlSvc: sqlSvc, settingsSvc: settingsSvc}
	exerciseSvc := &ExerciseService{sqlSvc: sqlSvc, progressSvc: progressSvc}

	return &testStack{sql: sqlSvc, progress: progressSvc, exercise: exerciseSvc}
}

func (s *testStack) createUser(t *testing.T) *model.User {
	t.Helper()
	user := &model.User{
		Email:    "learner@example.com",
		Username: "learner",
		Password: "x",
		Role:     shared.RoleUser,
	}
	user.SetBadgeList([]string{})
	user, err := s.sql.Users().CreateUser(user)
	require.NoError(t, err)
	return user
}

func submitRequest(contentID string, answers ...string) dto.SubmitAnswersRequest {
	raw := make([]json.RawMessage, 0, len(answers))
	for _, answer := range answers {
		raw = append(raw, json.RawMessage(answer))
	}
	return dto.SubmitAnswersRequest{ContentID: contentID, Answers: raw}
}

func TestRecordActivity_ContentGenerated(t *testing.T) {
	stack := newTestStack(t)
	user := stack.createUser(t)

	outcome, err := stack.progress.RecordActivity(context.Background(), user.ID, shared.ActivityContentGenerated, 1, nil)
	require.NoError(t, err)

	assert.Equal(t, 10, outcome.PointsAwarded)
	assert.Equal(t, 1, outcome.Streak)
	assert.Contains(t, outcome.NewBadges, shared.BadgeFirstContent)

	stored, err := stack.sql.Users().GetUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, stored.Points)
	assert.Equal(t, 1, stored.GeneratedCount)
	assert.Equal(t, 1, stored.TotalActivities)
	assert.NotNil(t, stored.LastGeneratedAt)
	assert.NotNil(t, stored.LastActivityDate)

	records, err := stack.sql.Progress().GetUserHistory(user.ID, 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, shared.ActivityContentGenerated, records[0].ActivityType)
	assert.Equal(t, 10, records[0].PointsAwarded)
}

func TestRecordActivity_ExerciseCountScalesPoints(t *testing.T) {
	stack := newTestStack(t)
	user := stack.createUser(t)

	outcome, err := stack.progress.RecordActivity(context.Background(), user.ID, shared.ActivityExerciseCompleted, 3, nil)
	require.NoError(t, err)

	assert.Equal(t, 15, outcome.PointsAwarded)

	stored, err := stack.sql.Users().GetUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.CompletedExercises)
	assert.Equal(t, 3, stored.TotalActivities)
}

func TestRecordActivity_SameDayKeepsStreak(t *testing.T) {
	stack := newTestStack(t)
	user := stack.createUser(t)

	_, err := stack.progress.RecordActivity(context.Background(), user.ID, shared.ActivityLogin, 1, nil)
	require.NoError(t, err)
	outcome, err := stack.progress.RecordActivity(context.Background(), user.ID, shared.ActivityLogin, 1, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, outcome.Streak)
}

func TestRecordActivity_UnknownUserFails(t *testing.T) {
	stack := newTestStack(t)

	_, err := stack.progress.RecordActivity(context.Background(), "missing", shared.ActivityLogin, 1, nil)
	require.Error(t, err)

	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.StatusCode)
}

func TestUpdateWeeklyGoal_ResetsProgress(t *testing.T) {
	stack := newTestStack(t)
	user := stack.createUser(t)

	_, err := stack.progress.RecordActivity(context.Background(), user.ID, shared.ActivityLogin, 1, nil)
	require.NoError(t, err)

	resp, err := stack.progress.UpdateWeeklyGoal(user.ID, 20)
	require.NoError(t, err)

	assert.Equal(t, 20, resp.Target)
	assert.Equal(t, 0, resp.Progress)
	require.NotNil(t, resp.StartDate)
	assert.Equal(t, WeekStart(time.Now()), *resp.StartDate)
}

func TestSubmitAnswers_GradesAndFeedsReviewQueue(t *testing.T) {
	stack := newTestStack(t)
	user := stack.createUser(t)

	exercises, err := json.Marshal([]model.Exercise{
		{Question: "Capital of France?", Options: []string{"Paris", "Lyon"}, CorrectAnswer: "Paris", FocusWord: "capital"},
		{Question: "2+2?", Options: []string{"3", "4"}, CorrectAnswer: "4", FocusWord: "sum"},
		{Question: "Color of the sky?", Options: []string{"blue", "green"}, CorrectAnswer: "blue"},
	})
	require.NoError(t, err)

	content, err := stack.sql.Contents().CreateContent(&model.Content{
		UserID:    user.ID,
		Topic:     "General",
		Type:      shared.ContentTypeExercise,
		Exercises: exercises,
	})
	require.NoError(t, err)

	resp, err := stack.exercise.SubmitAnswers(context.Background(), user.ID, shared.RoleUser, submitRequest(content.ID, `"Paris"`, `"3"`, `"green"`))
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Summary.Total)
	assert.Equal(t, 1, resp.Summary.Correct)
	assert.Equal(t, 33, resp.Summary.Score)
	// Only the miss with a focus word lands in the queue; the third
	// exercise has none.
	assert.Equal(t, 1, resp.Summary.ReviewAdded)

	require.Len(t, resp.Results, 3)
	assert.True(t, resp.Results[0].Correct)
	assert.False(t, resp.Results[1].Correct)
	assert.Equal(t, "4", resp.Results[1].CorrectAnswer)

	queue, err := stack.exercise.GetReviewQueue(user.ID)
	require.NoError(t, err)
	require.Equal(t, 1, queue.Total)
	assert.Equal(t, "sum", queue.Items[0].Word)

	stored, err := stack.sql.Users().GetUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.CompletedExercises, "every exercise counts, right or wrong")
	assert.Equal(t, 15, stored.Points)
}

func TestSubmitAnswers_OwnershipEnforced(t *testing.T) {
	stack := newTestStack(t)
	owner := stack.createUser(t)

	exercises, _ := json.Marshal([]model.Exercise{
		{Question: "q", Options: []string{"a", "b"}, CorrectAnswer: "a"},
	})
	content, err := stack.sql.Contents().CreateContent(&model.Content{
		UserID:    owner.ID,
		Topic:     "General",
		Exercises: exercises,
	})
	require.NoError(t, err)

	_, err = stack.exercise.SubmitAnswers(context.Background(), "someone-else", shared.RoleUser, submitRequest(content.ID, `"a"`))
	require.Error(t, err)
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.StatusCode)

	// Admins can grade anyone's content.
	admin := &model.User{Email: "admin@example.com", Username: "admin", Password: "x", Role: shared.RoleAdmin}
	admin.SetBadgeList([]string{})
	admin, err = stack.sql.Users().CreateUser(admin)
	require.NoError(t, err)

	resp, err := stack.exercise.SubmitAnswers(context.Background(), admin.ID, shared.RoleAdmin, submitRequest(content.ID, `"a"`))
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Summary.Correct)
}

func TestSubmitAnswers_NoExercises(t *testing.T) {
	stack := newTestStack(t)
	user := stack.createUser(t)

	content, err := stack.sql.Contents().CreateContent(&model.Content{
		UserID: user.ID,
		Topic:  "Story",
	})
	require.NoError(t, err)

	resp, err := stack.exercise.SubmitAnswers(context.Background(), user.ID, shared.RoleUser, submitRequest(content.ID, `"a"`))
	require.NoError(t, err)

	assert.Empty(t, resp.Results)
	assert.Equal(t, 0, resp.Summary.Total)
	assert.Equal(t, 0, resp.Summary.Correct)
	assert.Equal(t, 0, resp.Summary.Score)
	assert.Equal(t, 0, resp.Summary.ReviewAdded)

	// An empty grading pass records no activity and awards nothing.
	stored, err := stack.sql.Users().GetUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.CompletedExercises)
	assert.Equal(t, 0, stored.Points)
	assert.Equal(t, 0, stored.TotalActivities)
}
