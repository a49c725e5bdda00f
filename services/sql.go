package services

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lingoleap/lingo_api/model"
	"github.com/lingoleap/lingo_api/services/repositories"
	"github.com/lingoleap/lingo_api/shared"
)

// SqlService owns the GORM connection and the repositories. Postgres is the
// default driver; DB_DRIVER=sqlite switches to a file database for local
// development.
type SqlService struct {
	context.DefaultService
	db *gorm.DB

	driver string
	dsn    string

	users    *repositories.UserRepository
	contents *repositories.ContentRepository
	reviews  *repositories.ReviewRepository
	progress *repositories.ProgressRepository
	settings *repositories.SettingsRepository
}

const SQL_SVC = "sql_svc"

func (ds SqlService) Id() string {
	return SQL_SVC
}

func (ds SqlService) Db() *gorm.DB {
	return ds.db
}

func (ds *SqlService) Users() *repositories.UserRepository        { return ds.users }
func (ds *SqlService) Contents() *repositories.ContentRepository  { return ds.contents }
func (ds *SqlService) Reviews() *repositories.ReviewRepository    { return ds.reviews }
func (ds *SqlService) Progress() *repositories.ProgressRepository { return ds.progress }
func (ds *SqlService) Settings() *repositories.SettingsRepository { return ds.settings }

func (ds *SqlService) Configure(ctx *context.Context) error {
	ds.driver = os.Getenv("DB_DRIVER")
	if ds.driver == "" {
		ds.driver = "postgres"
	}

	switch ds.driver {
	case "sqlite":
		ds.dsn = os.Getenv("DB_DATABASE")
		if ds.dsn == "" {
			ds.dsn = "lingoleap.db"
		}
	default:
		ds.dsn = os.Getenv("DATABASE_URL")
		if ds.dsn == "" {
			// Fallback to individual environment variables
			host := os.Getenv("DB_HOST")
			if host == "" {
				host = "localhost"
			}
			port := os.Getenv("DB_PORT")
			if port == "" {
				port = "5432"
			}
			user := os.Getenv("DB_USER")
			if user == "" {
				user = "postgres"
			}
			password := os.Getenv("DB_PASSWORD")
			if password == "" {
				password = "postgres"
			}
			dbname := os.Getenv("DB_NAME")
			if dbname == "" {
				dbname = "lingoleap_api"
			}
			sslmode := os.Getenv("DB_SSLMODE")
			if sslmode == "" {
				sslmode = "disable"
			}
			timezone := os.Getenv("DB_TIMEZONE")
			if timezone == "" {
				timezone = "UTC"
			}

			ds.dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
				host, user, password, dbname, port, sslmode, timezone)
		}
	}

	return ds.DefaultService.Configure(ctx)
}

func (ds *SqlService) Start() (err error) {
	maxRetries := 10
	retryDelay := time.Second

	for attempt := 1; attempt <= maxRetries; attempt++ {
		log.Printf("Attempting to connect to database (attempt %d/%d)...", attempt, maxRetries)

		ds.db, err = gorm.Open(ds.dialector(), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Error),
		})
		if err == nil {
			break
		}

		log.Printf("Database connection failed: %v", err)
		if attempt < maxRetries {
			time.Sleep(retryDelay)
			retryDelay *= 2
		}
	}
	if err != nil {
		return fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
	}

	err = ds.db.AutoMigrate(
		&model.User{},
		&model.Content{},
		&model.ReviewItem{},
		&model.Progress{},
		&model.AISettings{},
		&model.GamificationSettings{},
	)
	if err != nil {
		log.Printf("Failed to migrate database: %v", err)
		return err
	}

	ds.users = repositories.NewUserRepository(ds.db)
	ds.contents = repositories.NewContentRepository(ds.db)
	ds.reviews = repositories.NewReviewRepository(ds.db)
	ds.progress = repositories.NewProgressRepository(ds.db)
	ds.settings = repositories.NewSettingsRepository(ds.db)

	log.Println("Database connected and migrated successfully")
	return nil
}

func (ds *SqlService) Shutdown() {
}

func (ds *SqlService) dialector() gorm.Dialector {
	if ds.driver == "sqlite" {
		return sqlite.Open(ds.dsn)
	}
	return postgres.Open(ds.dsn)
}

// HandleError maps database failures onto the app error taxonomy so the
// HTTP boundary can translate them without string matching.
func (ds *SqlService) HandleError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *shared.AppError

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		appErr = shared.NewNotFoundError(err, "Not Found")
	case errors.Is(err, gorm.ErrDuplicatedKey):
		appErr = shared.NewAppError(http.StatusConflict, err, "Conflict")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		appErr = shared.NewBadRequestError(err, "Invalid reference")
	default:
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			appErr = shared.NewAppError(http.StatusConflict, err, "Conflict")
		} else {
			appErr = shared.NewInternalError(err, "Internal Server Error")
		}
	}

	logEntry := log.WithFields(log.Fields{
		"status_code": appErr.StatusCode,
		"error":       err.Error(),
	})

	if appErr.StatusCode >= 500 {
		logEntry.Error("Database error occurred")
	} else {
		logEntry.Warn("Database operation failed")
	}

	return appErr
}
