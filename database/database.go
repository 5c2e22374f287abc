package database

import (
	"fmt"
	"log"
	"time"

	"blog-backend/config"
	"blog-backend/models"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDB initializes the database connection
func InitDB(cfg *config.Config) error {
	var err error

	// Configure GORM logger
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	DB, err = gorm.Open(sqlite.Open(cfg.DatabasePath), gormConfig)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(DB); err != nil {
		return err
	}

	log.Println("Database initialized successfully")
	return nil
}

// Migrate runs schema migrations for all models
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Reaction{},
		&models.Follow{},
		&models.Bookmark{},
		&models.Notification{},
		&models.Report{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// SeedDemoData populates a handful of users and posts for local development
func SeedDemoData() error {
	var count int64
	DB.Model(&models.Post{}).Count(&count)
	if count > 0 {
		log.Printf("Database already contains %d posts, skipping demo seed", count)
		return nil
	}

	log.Println("Seeding demo data...")

	users := []models.User{
		{ID: uuid.NewString(), Username: "ada", DisplayName: "Ada L."},
		{ID: uuid.NewString(), Username: "grace", DisplayName: "Grace H."},
		{ID: uuid.NewString(), Username: "linus", DisplayName: "Linus T."},
	}
	if err := DB.Create(&users).Error; err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	now := time.Now()
	demoPosts := []struct {
		author    int
		title     string
		slug      string
		tags      []string
		views     int
		reactions int
		comments  int
		ageHours  int
	}{
		{0, "Getting Started with Goroutines", "getting-started-with-goroutines", []string{"go", "concurrency"}, 340, 12, 5, 20},
		{0, "Profiling Memory Allocations", "profiling-memory-allocations", []string{"go", "performance"}, 150, 6, 2, 60},
		{1, "A Tour of Write-Ahead Logging", "a-tour-of-write-ahead-logging", []string{"databases", "storage"}, 520, 25, 11, 30},
		{1, "Indexes Are Not Free", "indexes-are-not-free", []string{"databases", "performance"}, 90, 3, 1, 100},
		{2, "Reading Kernel Source for Fun", "reading-kernel-source-for-fun", []string{"linux", "c"}, 610, 30, 14, 45},
	}

	for _, d := range demoPosts {
		post := models.Post{
			ID:            uuid.NewString(),
			AuthorID:      users[d.author].ID,
			Title:         d.title,
			Slug:          d.slug,
			Body:          "Demo content for " + d.title,
			ViewCount:     d.views,
			ReactionCount: d.reactions,
			CommentCount:  d.comments,
			Published:     true,
			CreatedAt:     now.Add(-time.Duration(d.ageHours) * time.Hour),
		}
		post.SetTagList(d.tags)
		if err := DB.Create(&post).Error; err != nil {
			log.Printf("Failed to seed post %q: %v", d.title, err)
		}
	}

	log.Printf("Seeded %d users and %d posts", len(users), len(demoPosts))
	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}
