package seeders

import (
	"encoding/json"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/lingoleap/lingo_api/model"
	"github.com/lingoleap/lingo_api/shared"
)

// SettingsSeeder writes the two configuration singletons when absent.
type SettingsSeeder struct {
	db *gorm.DB
}

func NewSettingsSeeder(db *gorm.DB) *SettingsSeeder {
	return &SettingsSeeder{db: db}
}

// SeedSettings writes default AI safety and gamification rows. Existing rows
// are left untouched so admin edits survive reseeding.
func (s *SettingsSeeder) SeedSettings() error {
	if err := s.seedAISettings(); err != nil {
		return err
	}
	return s.seedGamificationSettings()
}

func (s *SettingsSeeder) seedAISettings() error {
	var existing model.AISettings
	if err := s.db.Where("id = ?", "ai_settings").First(&existing).Error; err == nil {
		log.Println("AI settings already exist, skipping")
		return nil
	}

	topics, _ := json.Marshal([]string{})
	settings := model.AISettings{
		ID:               "ai_settings",
		RestrictedTopics: topics,
		SafetyMode:       shared.SafetyModeStandard,
		UpdatedAt:        time.Now(),
	}

	if err := s.db.Create(&settings).Error; err != nil {
		log.Printf("Error creating AI settings: %v", err)
		return err
	}

	log.Println("Created default AI settings")
	return nil
}

func (s *SettingsSeeder) seedGamificationSettings() error {
	var existing model.GamificationSettings
	if err := s.db.Where("id = ?", "gamification_settings").First(&existing).Error; err == nil {
		log.Println("Gamification settings already exist, skipping")
		return nil
	}

	settings := model.GamificationSettings{
		ID:                      "gamification_settings",
		PointsContentGenerated:  10,
		PointsExerciseCompleted: 5,
		PointsLogin:             1,
		PointsProfileUpdate:     1,
		BadgeContentCount:       10,
		BadgeExerciseCount:      5,
		BadgeStreak3:            3,
		BadgeStreak7:            7,
		BadgePoints100:          100,
		UpdatedAt:               time.Now(),
	}

	if err := s.db.Create(&settings).Error; err != nil {
		log.Printf("Error creating gamification settings: %v", err)
		return err
	}

	log.Println("Created default gamification settings")
	return nil
}
