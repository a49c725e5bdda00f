package main

import (
	"github.com/alphabatem/common/context"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/lingoleap/lingo_api/services"
)

// @title LingoLeap API
// @version 1.0
// @description Content generation and adaptive progress engine for language learners
// @BasePath /
func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("No .env file loaded")
	}

	ctx, err := context.NewCtx(
		&services.SqlService{},
		&services.RedisService{},
		&services.JWTService{},
		&services.AIService{},
		&services.SettingsService{},
		&services.ProgressService{},
		&services.GeneratorService{},
		&services.ExerciseService{},
		&services.TranslationService{},
		&services.AuthService{},
		&services.RateLimitService{},
		&services.MonitoringService{},

		&services.HttpService{},
	)
	if err != nil {
		log.Fatal().Err(err)
		return
	}

	err = ctx.Run()
	if err != nil {
		log.Fatal().Err(err)
		return
	}
}
