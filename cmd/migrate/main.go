package main

import (
	"log"
	"os"

	"happycust-be/internal/model"
	"happycust-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Starting GORM migration...")

	// gen_random_uuid() defaults need pgcrypto.
	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
	}
	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	models := []interface{}{
		&model.User{},
		&model.UserProvider{},
		&model.Project{},
		&model.Feedback{},
		&model.Review{},
		&model.Issue{},
		&model.FeatureRequest{},
		&model.Vote{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		color.Red("AutoMigrate failed: %v", err)
		os.Exit(1)
	}

	// AutoMigrate declares the FK; the cascade keeps vote counts honest when
	// a feature request is deleted from the dashboard.
	cascadeSQL := `
		ALTER TABLE votes
		DROP CONSTRAINT IF EXISTS fk_votes_feature_request,
		ADD CONSTRAINT fk_votes_feature_request
		FOREIGN KEY (feature_request_id) REFERENCES feature_requests(id) ON DELETE CASCADE;`
	if err := db.Exec(cascadeSQL).Error; err != nil {
		log.Printf("Warn: Failed to enforce vote cascade: %v", err)
	}

	color.Green("Database migration completed successfully.")
}
