package services

import (
	"context"
	"encoding/json"
	"time"

	appContext "github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/lingoleap/lingo_api/dto"
	"github.com/lingoleap/lingo_api/model"
	"github.com/lingoleap/lingo_api/shared"
)

// ProgressService owns all mutation of a user's gamification state. Every
// recorded activity runs in one transaction: lock the user row, award points,
// advance the streak and weekly goal, evaluate badges, append the log row.
type ProgressService struct {
	appContext.DefaultService

	sqlSvc      *SqlService
	settingsSvc *SettingsService
}

const PROGRESS_SVC = "progress_svc"

const progressHistoryLimit = 20

func (svc ProgressService) Id() string {
	return PROGRESS_SVC
}

func (svc *ProgressService) Start() error {
	svc.sqlSvc = svc.Service(SQL_SVC).(*SqlService)
	svc.settingsSvc = svc.Service(SETTINGS_SVC).(*SettingsService)
	return nil
}

// ActivityOutcome reports what one recorded activity changed.
type ActivityOutcome struct {
	PointsAwarded int
	Streak        int
	NewBadges     []string
}

// RecordActivity applies one activity of the given type. count scales the
// point award and weekly-goal progress (a five-exercise submission records
// count 5). metadata is stored verbatim on the log row.
func (svc *ProgressService) RecordActivity(ctx context.Context, userID, activityType string, count int, metadata json.RawMessage) (*ActivityOutcome, error) {
	if count <= 0 {
		count = 1
	}

	settings, err := svc.settingsSvc.GamificationSettings(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	outcome := &ActivityOutcome{}

	err = svc.sqlSvc.Db().Transaction(func(tx *gorm.DB) error {
		user, err := svc.sqlSvc.Users().GetUserForUpdate(tx, userID)
		if err != nil {
			return err
		}

		points := PointsFor(settings, activityType) * count
		user.Points += points
		user.Streak = UpdateStreak(user.LastActivityDate, user.Streak, now)
		user.LastActivityDate = &now
		ApplyWeeklyGoal(user, count, now)

		user.TotalActivities += count
		switch activityType {
		case shared.ActivityContentGenerated:
			user.GeneratedCount += count
			user.LastGeneratedAt = &now
		case shared.ActivityExerciseCompleted:
			user.CompletedExercises += count
			user.LastExerciseAt = &now
		}

		unlocked := EvaluateBadges(user, settings)

		if err := svc.sqlSvc.Users().UpdateUserTx(tx, user); err != nil {
			return err
		}

		record := &model.Progress{
			UserID:        userID,
			ActivityType:  activityType,
			PointsAwarded: points,
			Metadata:      metadata,
		}
		if err := svc.sqlSvc.Progress().AppendRecord(tx, record); err != nil {
			return err
		}

		outcome.PointsAwarded = points
		outcome.Streak = user.Streak
		outcome.NewBadges = unlocked
		return nil
	})
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	observeActivityRecorded(activityType)
	for _, badge := range outcome.NewBadges {
		observeBadgeUnlocked(badge)
		log.WithFields(log.Fields{
			"user_id": userID,
			"badge":   badge,
		}).Info("Badge unlocked")
	}

	return outcome, nil
}

// GetSummary assembles the progress dashboard for a user.
func (svc *ProgressService) GetSummary(userID string) (*dto.ProgressSummaryResponse, error) {
	user, err := svc.sqlSvc.Users().GetUser(userID)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	return &dto.ProgressSummaryResponse{
		Gamification: dto.GamificationResponse{
			Points:           user.Points,
			Streak:           user.Streak,
			LastActivityDate: user.LastActivityDate,
			Badges:           user.BadgeList(),
		},
		WeeklyGoal: dto.WeeklyGoalResponse{
			Target:    user.WeeklyGoalTarget,
			Progress:  user.WeeklyGoalProgress,
			StartDate: user.WeeklyGoalStart,
		},
		Stats: dto.ActivityStatsResponse{
			GeneratedCount:     user.GeneratedCount,
			CompletedExercises: user.CompletedExercises,
			TotalActivities:    user.TotalActivities,
			LastGeneratedAt:    user.LastGeneratedAt,
			LastExerciseAt:     user.LastExerciseAt,
		},
	}, nil
}

// GetHistory returns the most recent activity log rows, newest first.
func (svc *ProgressService) GetHistory(userID string) (*dto.ProgressHistoryResponse, error) {
	records, err := svc.sqlSvc.Progress().GetUserHistory(userID, progressHistoryLimit)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	resp := &dto.ProgressHistoryResponse{
		Records: make([]dto.ProgressRecordResponse, 0, len(records)),
	}
	for _, record := range records {
		resp.Records = append(resp.Records, dto.ProgressRecordResponse{
			ActivityType:  record.ActivityType,
			PointsAwarded: record.PointsAwarded,
			CreatedAt:     record.CreatedAt,
		})
	}
	return resp, nil
}

// RecordExercise records offline exercise completion, for clients grading
// locally. count is how many exercises were worked through.
func (svc *ProgressService) RecordExercise(ctx context.Context, userID string, count int) (*dto.RecordActivityResponse, error) {
	outcome, err := svc.RecordActivity(ctx, userID, shared.ActivityExerciseCompleted, count, nil)
	if err != nil {
		return nil, err
	}

	newBadges := outcome.NewBadges
	if newBadges == nil {
		newBadges = []string{}
	}
	return &dto.RecordActivityResponse{
		PointsAwarded: outcome.PointsAwarded,
		Streak:        outcome.Streak,
		NewBadges:     newBadges,
	}, nil
}

// UpdateWeeklyGoal replaces the target and restarts the current window.
// Progress resets so the new target is measured from now, not mid-week.
func (svc *ProgressService) UpdateWeeklyGoal(userID string, target int) (*dto.WeeklyGoalResponse, error) {
	user, err := svc.sqlSvc.Users().GetUser(userID)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	weekStart := WeekStart(time.Now())
	user.WeeklyGoalTarget = target
	user.WeeklyGoalProgress = 0
	user.WeeklyGoalStart = &weekStart

	if err := svc.sqlSvc.Users().UpdateUser(user); err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	return &dto.WeeklyGoalResponse{
		Target:    user.WeeklyGoalTarget,
		Progress:  user.WeeklyGoalProgress,
		StartDate: user.WeeklyGoalStart,
	}, nil
}
