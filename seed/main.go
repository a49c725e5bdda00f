// seed/main.go
package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lingoleap/lingo_api/seed/seeders"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Parse command line flags
	var (
		seedType = flag.String("type", "all", "Type of seeding: all, admin, settings")
		dbPath   = flag.String("db", "", "SQLite database path (overrides DB_DATABASE env var)")
		help     = flag.Bool("help", false, "Show help message")
	)
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	db, err := gorm.Open(dialector(*dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Connected to database")

	// Create main seeder
	mainSeeder := seeders.NewMainSeeder(db)

	// Run seeding based on type
	switch *seedType {
	case "all":
		log.Println("Running complete database seeding...")
		if err := mainSeeder.SeedAll(); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	case "admin":
		log.Println("Seeding admin user only...")
		if err := mainSeeder.SeedAdminOnly(); err != nil {
			log.Fatalf("Failed to seed admin user: %v", err)
		}
	case "settings":
		log.Println("Seeding settings only...")
		if err := mainSeeder.SeedSettingsOnly(); err != nil {
			log.Fatalf("Failed to seed settings: %v", err)
		}
	default:
		log.Fatalf("Unknown seed type: %s. Use 'all', 'admin', or 'settings'", *seedType)
	}

	log.Println("Seeding operation completed successfully!")
}

func dialector(dbPath string) gorm.Dialector {
	if os.Getenv("DB_DRIVER") == "sqlite" || dbPath != "" {
		if dbPath == "" {
			dbPath = os.Getenv("DB_DATABASE")
			if dbPath == "" {
				dbPath = "lingoleap.db"
			}
		}
		return sqlite.Open(dbPath)
	}

	dsn := os.Getenv("DATABASE_URL")
	return postgres.Open(dsn)
}

func showHelp() {
	log.Println(`
Database Seeding Tool for LingoLeap

Usage: go run seed/main.go [flags]

Flags:
  -type string
        Type of seeding to perform (default "all")
        Options: all, admin, settings
  -db string
        SQLite database path (overrides DB_DATABASE environment variable)
  -help
        Show this help message

Examples:
  # Seed everything
  go run seed/main.go

  # Seed only the admin user
  go run seed/main.go -type=admin

  # Seed with a custom SQLite database path
  go run seed/main.go -db=./custom.db

Environment Variables:
  DB_DRIVER    - postgres (default) or sqlite
  DATABASE_URL - Postgres connection string
  DB_DATABASE  - SQLite database path (default: lingoleap.db)`)
}
