package services

import (
	"context"
	"time"

	appContext "github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"

	"github.com/lingoleap/lingo_api/dto"
	"github.com/lingoleap/lingo_api/model"
	"github.com/lingoleap/lingo_api/shared"
)

// SettingsService serves the two admin-managed singletons (safety config and
// scoring rules) with a short Redis cache in front of the database. Cache
// failures degrade to direct DB reads.
type SettingsService struct {
	appContext.DefaultService

	sqlSvc   *SqlService
	redisSvc *RedisService
}

const SETTINGS_SVC = "settings_svc"

const (
	aiSettingsCacheKey           = "settings:ai"
	gamificationSettingsCacheKey = "settings:gamification"
	settingsCacheTTL             = 5 * time.Minute
)

func (svc SettingsService) Id() string {
	return SETTINGS_SVC
}

func (svc *SettingsService) Start() error {
	svc.sqlSvc = svc.Service(SQL_SVC).(*SqlService)
	svc.redisSvc = svc.Service(REDIS_SVC).(*RedisService)
	return nil
}

// AISettings returns the safety singleton, falling back to permissive
// defaults when the row has never been written.
func (svc *SettingsService) AISettings(ctx context.Context) (*model.AISettings, error) {
	if svc.redisSvc.Enabled() {
		var cached model.AISettings
		hit, err := svc.redisSvc.GetJSON(ctx, aiSettingsCacheKey, &cached)
		if err != nil {
			log.WithError(err).Warn("Settings cache read failed")
		} else if hit {
			return &cached, nil
		}
	}

	settings, err := svc.sqlSvc.Settings().GetAISettings()
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}
	if settings == nil {
		settings = &model.AISettings{
			SafetyMode: shared.SafetyModeStandard,
		}
		settings.SetRestrictedTopicList([]string{})
	}

	svc.cache(ctx, aiSettingsCacheKey, settings)
	return settings, nil
}

// GamificationSettings returns the scoring singleton, falling back to the
// hardcoded defaults when absent.
func (svc *SettingsService) GamificationSettings(ctx context.Context) (*model.GamificationSettings, error) {
	if svc.redisSvc.Enabled() {
		var cached model.GamificationSettings
		hit, err := svc.redisSvc.GetJSON(ctx, gamificationSettingsCacheKey, &cached)
		if err != nil {
			log.WithError(err).Warn("Settings cache read failed")
		} else if hit {
			return &cached, nil
		}
	}

	settings, err := svc.sqlSvc.Settings().GetGamificationSettings()
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}
	if settings == nil {
		settings = DefaultGamificationSettings()
	}

	svc.cache(ctx, gamificationSettingsCacheKey, settings)
	return settings, nil
}

// UpdateAISettings replaces the restricted topic list and safety mode, then
// invalidates the cache so the next generation sees the new rules.
func (svc *SettingsService) UpdateAISettings(ctx context.Context, req dto.UpdateAISettingsRequest, updatedBy string) (*model.AISettings, error) {
	settings, err := svc.sqlSvc.Settings().GetAISettings()
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}
	if settings == nil {
		settings = &model.AISettings{SafetyMode: shared.SafetyModeStandard}
	}

	settings.SetRestrictedTopicList(NormalizeTopicList(req.RestrictedTopics))
	if req.SafetyMode != "" {
		settings.SafetyMode = req.SafetyMode
	}
	settings.UpdatedBy = updatedBy

	if err := svc.sqlSvc.Settings().SaveAISettings(settings); err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	svc.invalidate(ctx, aiSettingsCacheKey)
	return settings, nil
}

// UpdateGamificationSettings applies a partial patch; nil fields keep their
// stored (or default) value.
func (svc *SettingsService) UpdateGamificationSettings(ctx context.Context, req dto.UpdateGamificationSettingsRequest, updatedBy string) (*model.GamificationSettings, error) {
	settings, err := svc.sqlSvc.Settings().GetGamificationSettings()
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}
	if settings == nil {
		settings = DefaultGamificationSettings()
	}

	applyInt := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}
	applyInt(&settings.PointsContentGenerated, req.PointsContentGenerated)
	applyInt(&settings.PointsExerciseCompleted, req.PointsExerciseCompleted)
	applyInt(&settings.PointsLogin, req.PointsLogin)
	applyInt(&settings.PointsProfileUpdate, req.PointsProfileUpdate)
	applyInt(&settings.BadgeContentCount, req.BadgeContentCount)
	applyInt(&settings.BadgeExerciseCount, req.BadgeExerciseCount)
	applyInt(&settings.BadgeStreak3, req.BadgeStreak3)
	applyInt(&settings.BadgeStreak7, req.BadgeStreak7)
	applyInt(&settings.BadgePoints100, req.BadgePoints100)
	settings.UpdatedBy = updatedBy

	if err := svc.sqlSvc.Settings().SaveGamificationSettings(settings); err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	svc.invalidate(ctx, gamificationSettingsCacheKey)
	return settings, nil
}

func (svc *SettingsService) cache(ctx context.Context, key string, value interface{}) {
	if !svc.redisSvc.Enabled() {
		return
	}
	if err := svc.redisSvc.Set(ctx, key, value, settingsCacheTTL); err != nil {
		log.WithError(err).Warn("Settings cache write failed")
	}
}

func (svc *SettingsService) invalidate(ctx context.Context, key string) {
	if !svc.redisSvc.Enabled() {
		return
	}
	if err := svc.redisSvc.Delete(ctx, key); err != nil {
		log.WithError(err).Warn("Settings cache invalidation failed")
	}
}
