package services

import (
	"time"

	"github.com/lingoleap/lingo_api/model"
	"github.com/lingoleap/lingo_api/shared"
)

// DefaultGamificationSettings returns the hardcoded rule set used when the
// admin-managed singleton is absent.
func DefaultGamificationSettings() *model.GamificationSettings {
	return &model.GamificationSettings{
		PointsContentGenerated:  10,
		PointsExerciseCompleted: 5,
		PointsLogin:             1,
		PointsProfileUpdate:     1,
		BadgeContentCount:       10,
		BadgeExerciseCount:      5,
		BadgeStreak3:            3,
		BadgeStreak7:            7,
		BadgePoints100:          100,
	}
}

// PointsFor returns the per-unit award for an activity type. Unconfigured
// types award nothing.
func PointsFor(settings *model.GamificationSettings, activityType string) int {
	if settings == nil {
		settings = DefaultGamificationSettings()
	}
	switch activityType {
	case shared.ActivityContentGenerated:
		return settings.PointsContentGenerated
	case shared.ActivityExerciseCompleted:
		return settings.PointsExerciseCompleted
	case shared.ActivityLogin:
		return settings.PointsLogin
	case shared.ActivityProfileUpdate:
		return settings.PointsProfileUpdate
	default:
		return 0
	}
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// UpdateStreak runs the calendar-day streak machine: first activity starts
// at 1, same-day repeats leave the streak alone, consecutive days increment,
// any gap resets to 1.
func UpdateStreak(lastActivity *time.Time, current int, now time.Time) int {
	if lastActivity == nil {
		return 1
	}

	today := dayOf(now)
	lastDay := dayOf(*lastActivity)

	// Calendar comparison, not elapsed hours: a DST-shortened day is still
	// one day.
	switch {
	case lastDay.Equal(today):
		return current
	case lastDay.Equal(today.AddDate(0, 0, -1)):
		return current + 1
	default:
		return 1
	}
}

// WeekStart returns Monday 00:00 of the week containing t.
func WeekStart(t time.Time) time.Time {
	day := dayOf(t)
	diff := (int(day.Weekday()) + 6) % 7 // Sunday shifts back to the prior Monday
	return day.AddDate(0, 0, -diff)
}

// ApplyWeeklyGoal rolls the goal window forward when the stored start is
// stale, then counts the activity against the target. The target itself
// survives rollover; only progress resets.
func ApplyWeeklyGoal(user *model.User, count int, now time.Time) {
	weekStart := WeekStart(now)
	if user.WeeklyGoalStart == nil || user.WeeklyGoalStart.Before(weekStart) {
		user.WeeklyGoalStart = &weekStart
		user.WeeklyGoalProgress = 0
	}
	if user.WeeklyGoalTarget > 0 {
		user.WeeklyGoalProgress += count
	}
}

type badgeRule struct {
	label     string
	satisfied func(*model.User, *model.GamificationSettings) bool
}

// Rules run in a fixed order against post-update state. Each is cheap and
// idempotent; earned badges are never removed.
var badgeRules = []badgeRule{
	{shared.BadgeFirstContent, func(u *model.User, _ *model.GamificationSettings) bool {
		return u.GeneratedCount >= 1
	}},
	{shared.BadgeContentExplorer, func(u *model.User, s *model.GamificationSettings) bool {
		return u.GeneratedCount >= s.BadgeContentCount
	}},
	{shared.BadgeExerciseStarter, func(u *model.User, s *model.GamificationSettings) bool {
		return u.CompletedExercises >= s.BadgeExerciseCount
	}},
	{shared.BadgeStreak3, func(u *model.User, s *model.GamificationSettings) bool {
		return u.Streak >= s.BadgeStreak3
	}},
	{shared.BadgeStreak7, func(u *model.User, s *model.GamificationSettings) bool {
		return u.Streak >= s.BadgeStreak7
	}},
	{shared.BadgePoints100, func(u *model.User, s *model.GamificationSettings) bool {
		return u.Points >= s.BadgePoints100
	}},
	{shared.BadgeWeeklyGoal, func(u *model.User, _ *model.GamificationSettings) bool {
		return u.WeeklyGoalTarget > 0 && u.WeeklyGoalProgress >= u.WeeklyGoalTarget
	}},
}

// EvaluateBadges unions newly satisfied badge labels into the user's badge
// set and reports which labels were added this pass.
func EvaluateBadges(user *model.User, settings *model.GamificationSettings) []string {
	if settings == nil {
		settings = DefaultGamificationSettings()
	}

	badges := user.BadgeList()
	held := make(map[string]bool, len(badges))
	for _, badge := range badges {
		held[badge] = true
	}

	var unlocked []string
	for _, rule := range badgeRules {
		if held[rule.label] || !rule.satisfied(user, settings) {
			continue
		}
		held[rule.label] = true
		badges = append(badges, rule.label)
		unlocked = append(unlocked, rule.label)
	}

	user.SetBadgeList(badges)
	return unlocked
}
