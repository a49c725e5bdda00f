package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/lingoleap/lingo_api/model"
)

// Settings rows are singletons with fixed primary keys so upserts stay
// trivially idempotent.
const (
	aiSettingsID           = "ai_settings"
	gamificationSettingsID = "gamification_settings"
)

type SettingsRepository struct {
	BaseRepository
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

// GetAISettings returns the safety singleton, or nil when the row has never
// been written. Callers fall back to defaults on nil.
func (ds *SettingsRepository) GetAISettings() (*model.AISettings, error) {
	var settings model.AISettings
	if err := ds.db.Where("id = ?", aiSettingsID).First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}

func (ds *SettingsRepository) SaveAISettings(settings *model.AISettings) error {
	settings.ID = aiSettingsID
	settings.UpdatedAt = time.Now()
	return ds.db.Save(settings).Error
}

func (ds *SettingsRepository) GetGamificationSettings() (*model.GamificationSettings, error) {
	var settings model.GamificationSettings
	if err := ds.db.Where("id = ?", gamificationSettingsID).First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}

func (ds *SettingsRepository) SaveGamificationSettings(settings *model.GamificationSettings) error {
	settings.ID = gamificationSettingsID
	settings.UpdatedAt = time.Now()
	return ds.db.Save(settings).Error
}
