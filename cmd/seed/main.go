package main

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"happycust-be/internal/model"
	"happycust-be/pkg/database"
	"happycust-be/pkg/fingerprint"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Seeds a demo workspace: one admin account, one project with a stable demo
// api key, and a spread of submissions so the dashboard has something to show.
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

	color.Cyan("Seeding demo data...")

	var existing model.User
	if err := db.Where("email = ?", "demo@happycust.app").First(&existing).Error; err == nil {
		color.Yellow("Demo user already exists, skipping seed.")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Error: Failed to hash demo password:", err)
	}
	hashStr := string(hash)

	user := model.User{
		Id:           uuid.New(),
		Email:        "demo@happycust.app",
		PasswordHash: &hashStr,
		Name:         "Demo Admin",
		Role:         "ADMIN",
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatal("Error: Failed to create demo user:", err)
	}

	project := model.Project{
		Id:       uuid.New(),
		Name:     "Demo Project",
		Slug:     "demo",
		ApiKey:   "hc_demo_0000000000000000000000000000000000000000",
		Language: "en",
		UserId:   user.Id,
	}
	if err := db.Create(&project).Error; err != nil {
		log.Fatal("Error: Failed to create demo project:", err)
	}

	tags := func(values ...string) datatypes.JSON {
		b, _ := json.Marshal(values)
		return datatypes.JSON(b)
	}

	features := []model.FeatureRequest{
		{Id: uuid.New(), Title: "Dark mode", Description: "A dark theme for the dashboard would be easier on the eyes.", Status: "PLANNED", Priority: "HIGH", Tags: tags("ui"), ProjectId: project.Id},
		{Id: uuid.New(), Title: "Slack integration", Description: "Send new submissions to a Slack channel.", Status: "UNDER_CONSIDERATION", Priority: "MEDIUM", Tags: tags("integrations"), ProjectId: project.Id},
		{Id: uuid.New(), Title: "CSV export", Description: "Export all feedback as CSV for offline analysis.", Status: "COMPLETED", Priority: "MEDIUM", ProjectId: project.Id},
		{Id: uuid.New(), Title: "Custom widget colors", Description: "Match the widget to our brand palette.", Status: "NEW", Priority: "MEDIUM", Tags: tags("ui", "widget"), ProjectId: project.Id},
	}
	for i := range features {
		if err := db.Create(&features[i]).Error; err != nil {
			log.Fatal("Error: Failed to create feature request:", err)
		}
	}

	// A handful of synthetic voters. Fingerprints are derived the same way
	// the widget derives them so they look like real traffic.
	voters := []string{
		fingerprint.FromSignals("Mozilla/5.0 (Macintosh)", "en-US", "2560x1440"),
		fingerprint.FromSignals("Mozilla/5.0 (Windows NT 10.0)", "en-GB", "1920x1080"),
		fingerprint.FromSignals("Mozilla/5.0 (X11; Linux x86_64)", "de-DE", "1920x1200"),
	}
	for _, fp := range voters {
		vote := model.Vote{
			Id:               uuid.New(),
			FeatureRequestId: features[0].Id,
			Fingerprint:      fp,
		}
		if err := db.Create(&vote).Error; err != nil {
			log.Printf("Warn: Failed to create vote: %v", err)
		}
	}

	reviewName := "Alice Example"
	profile := "https://twitter.com/alice"
	reviews := []model.Review{
		{Id: uuid.New(), Rating: 5, Content: "Exactly what we needed to hear from our users.", Email: "alice@example.com", Name: &reviewName, SocialMediaProfile: &profile, ConsentForMarketing: true, IsPublished: true, ProjectId: project.Id},
		{Id: uuid.New(), Rating: 4, Content: "Setup took five minutes, works great.", Email: "bob@example.com", ConsentForMarketing: true, ProjectId: project.Id},
	}
	for i := range reviews {
		if err := db.Create(&reviews[i]).Error; err != nil {
			log.Fatal("Error: Failed to create review:", err)
		}
	}

	feedbackEmail := "carol@example.com"
	feedbacks := []model.Feedback{
		{Id: uuid.New(), Content: "Love the product, keep it up!", Email: &feedbackEmail, Status: "NEW", Priority: "MEDIUM", ProjectId: project.Id},
		{Id: uuid.New(), Content: "Onboarding could be smoother.", Status: "IN_PROGRESS", Priority: "HIGH", Tags: tags("onboarding"), ProjectId: project.Id},
	}
	for i := range feedbacks {
		if err := db.Create(&feedbacks[i]).Error; err != nil {
			log.Fatal("Error: Failed to create feedback:", err)
		}
	}

	screenshot := "https://example.com/screenshots/broken-button.png"
	issue := model.Issue{
		Id:            uuid.New(),
		Description:   "Submit button unresponsive on Safari 17.",
		ScreenshotUrl: &screenshot,
		Status:        "NEW",
		Priority:      "MEDIUM",
		Tags:          tags("safari", "widget"),
		ProjectId:     project.Id,
		CreatedAt:     time.Now(),
	}
	if err := db.Create(&issue).Error; err != nil {
		log.Fatal("Error: Failed to create issue:", err)
	}

	printSummary(db)

	color.Green("Seed completed.")
	color.White("Demo login: demo@happycust.app / password123")
	color.White("Demo widget key: %s", project.ApiKey)
}

func printSummary(db *gorm.DB) {
	tables := []string{"users", "projects", "feature_requests", "votes", "reviews", "feedbacks", "issues"}
	for _, t := range tables {
		var count int64
		db.Table(t).Count(&count)
		color.White("  %s: %d rows", t, count)
	}
}
