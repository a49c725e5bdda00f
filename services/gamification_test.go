package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingoleap/lingo_api/model"
	"github.com/lingoleap/lingo_api/shared"
)

func TestUpdateStreak(t *testing.T) {
	now := time.Date(2026, 3, 12, 15, 0, 0, 0, time.UTC)

	t.Run("first activity starts at one", func(t *testing.T) {
		assert.Equal(t, 1, UpdateStreak(nil, 0, now))
	})

	t.Run("same day keeps streak", func(t *testing.T) {
		earlier := now.Add(-6 * time.Hour)
		assert.Equal(t, 4, UpdateStreak(&earlier, 4, now))
	})

	t.Run("consecutive day increments", func(t *testing.T) {
		yesterday := now.AddDate(0, 0, -1)
		assert.Equal(t, 5, UpdateStreak(&yesterday, 4, now))
	})

	t.Run("late night to early morning still counts", func(t *testing.T) {
		lastNight := time.Date(2026, 3, 11, 23, 50, 0, 0, time.UTC)
		earlyToday := time.Date(2026, 3, 12, 0, 10, 0, 0, time.UTC)
		assert.Equal(t, 5, UpdateStreak(&lastNight, 4, earlyToday))
	})

	t.Run("consecutive day across spring forward", func(t *testing.T) {
		loc, err := time.LoadLocation("America/New_York")
		require.NoError(t, err)
		// DST starts 2026-03-08; midnight to midnight spans 23 hours.
		beforeShift := time.Date(2026, 3, 8, 22, 0, 0, 0, loc)
		afterShift := time.Date(2026, 3, 9, 8, 0, 0, 0, loc)
		assert.Equal(t, 5, UpdateStreak(&beforeShift, 4, afterShift))
	})

	t.Run("gap resets to one", func(t *testing.T) {
		threeDaysAgo := now.AddDate(0, 0, -3)
		assert.Equal(t, 1, UpdateStreak(&threeDaysAgo, 9, now))
	})
}

func TestWeekStart(t *testing.T) {
	// 2026-03-12 is a Thursday; its week starts Monday 2026-03-09.
	monday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, monday, WeekStart(time.Date(2026, 3, 12, 18, 30, 0, 0, time.UTC)))
	assert.Equal(t, monday, WeekStart(monday))
	// Sunday belongs to the preceding Monday's week.
	assert.Equal(t, monday, WeekStart(time.Date(2026, 3, 15, 23, 59, 0, 0, time.UTC)))
	// Next Monday starts a new week.
	assert.Equal(t, monday.AddDate(0, 0, 7), WeekStart(time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)))
}

func TestApplyWeeklyGoal_Rollover(t *testing.T) {
	lastWeek := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	user := &model.User{
		WeeklyGoalTarget:   10,
		WeeklyGoalProgress: 7,
		WeeklyGoalStart:    &lastWeek,
	}

	now := time.Date(2026, 3, 12, 12, 0, 0, 0, time.UTC)
	ApplyWeeklyGoal(user, 2, now)

	require.NotNil(t, user.WeeklyGoalStart)
	assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), *user.WeeklyGoalStart)
	assert.Equal(t, 2, user.WeeklyGoalProgress, "progress resets before counting the new activity")
	assert.Equal(t, 10, user.WeeklyGoalTarget, "target survives rollover")
}

func TestApplyWeeklyGoal_NoTargetNoProgress(t *testing.T) {
	user := &model.User{}

	ApplyWeeklyGoal(user, 3, time.Date(2026, 3, 12, 12, 0, 0, 0, time.UTC))

	assert.Equal(t, 0, user.WeeklyGoalProgress)
	assert.NotNil(t, user.WeeklyGoalStart)
}

func TestPointsFor(t *testing.T) {
	settings := DefaultGamificationSettings()

	assert.Equal(t, 10, PointsFor(settings, shared.ActivityContentGenerated))
	assert.Equal(t, 5, PointsFor(settings, shared.ActivityExerciseCompleted))
	assert.Equal(t, 1, PointsFor(settings, shared.ActivityLogin))
	assert.Equal(t, 0, PointsFor(settings, "unknown_activity"))
	assert.Equal(t, 10, PointsFor(nil, shared.ActivityContentGenerated))
}

func TestEvaluateBadges_Unlocks(t *testing.T) {
	user := &model.User{
		GeneratedCount: 1,
		Streak:         3,
		Points:         100,
	}
	user.SetBadgeList([]string{})

	unlocked := EvaluateBadges(user, nil)

	assert.ElementsMatch(t, []string{shared.BadgeFirstContent, shared.BadgeStreak3, shared.BadgePoints100}, unlocked)
	assert.ElementsMatch(t, []string{shared.BadgeFirstContent, shared.BadgeStreak3, shared.BadgePoints100}, user.BadgeList())
}

func TestEvaluateBadges_Idempotent(t *testing.T) {
	user := &model.User{GeneratedCount: 1}
	user.SetBadgeList([]string{shared.BadgeFirstContent})

	unlocked := EvaluateBadges(user, nil)

	assert.Empty(t, unlocked)
	assert.Equal(t, []string{shared.BadgeFirstContent}, user.BadgeList())
}

func TestEvaluateBadges_NeverRemoves(t *testing.T) {
	// Streak badge stays even after the streak resets.
	user := &model.User{Streak: 1}
	user.SetBadgeList([]string{shared.BadgeStreak7})

	unlocked := EvaluateBadges(user, nil)

	assert.Empty(t, unlocked)
	assert.Contains(t, user.BadgeList(), shared.BadgeStreak7)
}

func TestEvaluateBadges_WeeklyGoal(t *testing.T) {
	user := &model.User{WeeklyGoalTarget: 5, WeeklyGoalProgress: 5}
	user.SetBadgeList([]string{})

	unlocked := EvaluateBadges(user, nil)

	assert.Equal(t, []string{shared.BadgeWeeklyGoal}, unlocked)
}
