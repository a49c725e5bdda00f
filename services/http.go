package services

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	log "github.com/sirupsen/logrus"

	_ "github.com/lingoleap/lingo_api/docs"
	"github.com/lingoleap/lingo_api/services/handlers"
	"github.com/lingoleap/lingo_api/shared"
)

type HttpService struct {
	context.DefaultService

	authSvc        *AuthService
	generatorSvc   *GeneratorService
	exerciseSvc    *ExerciseService
	progressSvc    *ProgressService
	translationSvc *TranslationService
	settingsSvc    *SettingsService
	rateLimitSvc   *RateLimitService
	monitoringSvc  *MonitoringService

	port   int
	server *fiber.App
}

const HTTP_SVC = "http_svc"

func (svc HttpService) Id() string {
	return HTTP_SVC
}

func (svc *HttpService) Configure(ctx *context.Context) error {
	if port := os.Getenv("HTTP_PORT"); port != "" {
		var err error
		if svc.port, err = strconv.Atoi(port); err != nil {
			return err
		}
	} else {
		svc.port = 8000
	}

	return svc.DefaultService.Configure(ctx)
}

func (svc *HttpService) Start() error {
	svc.authSvc = svc.Service(AUTH_SVC).(*AuthService)
	svc.generatorSvc = svc.Service(GENERATOR_SVC).(*GeneratorService)
	svc.exerciseSvc = svc.Service(EXERCISE_SVC).(*ExerciseService)
	svc.progressSvc = svc.Service(PROGRESS_SVC).(*ProgressService)
	svc.translationSvc = svc.Service(TRANSLATION_SVC).(*TranslationService)
	svc.settingsSvc = svc.Service(SETTINGS_SVC).(*SettingsService)
	svc.rateLimitSvc = svc.Service(RATE_LIMIT_SVC).(*RateLimitService)
	svc.monitoringSvc = svc.Service(MONITORING_SVC).(*MonitoringService)

	app := fiber.New(fiber.Config{
		ErrorHandler: svc.errorHandler,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(MonitoringMiddleware(svc.monitoringSvc))

	authHandler := handlers.NewAuthHandler(svc.authSvc)
	contentHandler := handlers.NewContentHandler(svc.generatorSvc, svc.translationSvc)
	exerciseHandler := handlers.NewExerciseHandler(svc.exerciseSvc)
	progressHandler := handlers.NewProgressHandler(svc.progressSvc)
	adminHandler := handlers.NewAdminHandler(svc.settingsSvc)

	app.Get("/ping", svc.ping)
	app.Get("/swagger/*", swagger.HandlerDefault)

	v1 := app.Group("/api/v1")
	v1.Get("/ping", svc.ping)

	v1.Post("/register", authHandler.Register)
	v1.Post("/login", authHandler.Login)

	authed := v1.Group("", svc.authSvc.RequiredAuth())

	content := authed.Group("/content")
	content.Post("/generate", svc.rateLimitSvc.Limit("generate"), contentHandler.Generate)
	content.Get("/history", contentHandler.GetHistory)
	content.Get("/:contentId", contentHandler.GetContent)
	content.Put("/:contentId/rate", contentHandler.RateContent)

	authed.Post("/translate", svc.rateLimitSvc.Limit("translate"), contentHandler.Translate)

	exercises := authed.Group("/exercises")
	exercises.Post("/submit", exerciseHandler.SubmitAnswers)
	exercises.Get("/review", exerciseHandler.GetReviewQueue)

	progress := authed.Group("/progress")
	progress.Get("", progressHandler.GetSummary)
	progress.Get("/history", progressHandler.GetHistory)
	progress.Put("/weekly-goal", progressHandler.UpdateWeeklyGoal)
	progress.Post("/exercise", progressHandler.RecordExercise)

	admin := authed.Group("/admin", svc.authSvc.RequireRole(shared.RoleAdmin))
	admin.Get("/settings/ai", adminHandler.GetAISettings)
	admin.Put("/settings/ai", adminHandler.UpdateAISettings)
	admin.Get("/settings/gamification", adminHandler.GetGamificationSettings)
	admin.Put("/settings/gamification", adminHandler.UpdateGamificationSettings)

	app.Use(func(c *fiber.Ctx) error {
		return shared.ResponseNotFound(c)
	})

	svc.server = app

	log.WithField("port", svc.port).Info("HTTP server starting")
	return app.Listen(fmt.Sprintf(":%v", svc.port))
}

func (svc *HttpService) Shutdown() {
	if svc.server != nil {
		_ = svc.server.Shutdown()
	}
}

// @Summary Ping
// @Description This endpoint checks the health of the service
// @Tags health
// @Accept  json
// @Produce json
// @Success 200 {object} shared.Response{data=string}
// @Router /ping [get]
func (svc *HttpService) ping(c *fiber.Ctx) error {
	c.Set("Cache-Control", "max-age=10")

	return shared.ResponseOK(c, "pong")
}

func (svc *HttpService) errorHandler(c *fiber.Ctx, err error) error {
	if appErr, ok := shared.GetAppError(err); ok {
		return shared.ResponseJSON(c, appErr.StatusCode, appErr.Message, appErr.Data)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return shared.ResponseJSON(c, fiberErr.Code, fiberErr.Message, nil)
	}

	log.WithError(err).Error("Unhandled request error")
	return shared.ResponseInternalError(c, err)
}
