package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingoleap/lingo_api/dto"
	"github.com/lingoleap/lingo_api/shared"
)

func TestSettingsService_DefaultsWhenUnset(t *testing.T) {
	stack := newTestStack(t)
	svc := &SettingsService{sqlSvc: stack.sql, redisSvc: &RedisService{}}

	ai, err := svc.AISettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, shared.SafetyModeStandard, ai.SafetyMode)
	assert.Empty(t, ai.RestrictedTopicList())

	gamification, err := svc.GamificationSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, gamification.PointsContentGenerated)
	assert.Equal(t, 100, gamification.BadgePoints100)
}

func TestSettingsService_UpdateAISettings(t *testing.T) {
	stack := newTestStack(t)
	svc := &SettingsService{sqlSvc: stack.sql, redisSvc: &RedisService{}}

	updated, err := svc.UpdateAISettings(context.Background(), dto.UpdateAISettingsRequest{
		RestrictedTopics: dto.StringList{" violence ", "", "drugs"},
		SafetyMode:       shared.SafetyModeStrict,
	}, "admin-1")
	require.NoError(t, err)

	assert.Equal(t, []string{"violence", "drugs"}, updated.RestrictedTopicList())
	assert.Equal(t, shared.SafetyModeStrict, updated.SafetyMode)
	assert.Equal(t, "admin-1", updated.UpdatedBy)

	// Round trip through storage.
	fetched, err := svc.AISettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"violence", "drugs"}, fetched.RestrictedTopicList())
}

func TestSettingsService_PartialGamificationPatch(t *testing.T) {
	stack := newTestStack(t)
	svc := &SettingsService{sqlSvc: stack.sql, redisSvc: &RedisService{}}

	points := 25
	updated, err := svc.UpdateGamificationSettings(context.Background(), dto.UpdateGamificationSettingsRequest{
		PointsContentGenerated: &points,
	}, "admin-1")
	require.NoError(t, err)

	assert.Equal(t, 25, updated.PointsContentGenerated)
	// Untouched fields keep their defaults.
	assert.Equal(t, 5, updated.PointsExerciseCompleted)
	assert.Equal(t, 7, updated.BadgeStreak7)
}
