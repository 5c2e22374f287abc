package services

import (
	"fmt"
	"testing"
	"time"

	"blog-backend/config"
	"blog-backend/database"
	"blog-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an isolated in-memory database, migrates the schema
// and installs it as the shared connection the services read.
func setupTestDB(t *testing.T) *config.Config {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	database.DB = db

	return &config.Config{
		CandidatePoolSize: 200,
		MaxFeedReturn:     20,
		FeedCacheTTL:      60,
		SlugMaxAttempts:   1000,
	}
}

func createTestUser(t *testing.T, username string) models.User {
	t.Helper()
	user := models.User{
		ID:          uuid.NewString(),
		Username:    username,
		DisplayName: username,
	}
	require.NoError(t, database.DB.Create(&user).Error)
	return user
}

// insertPost writes a post row directly, bypassing slug resolution, so
// feed tests can pin exact counters and creation times.
func insertPost(t *testing.T, id, authorID string, views, reactions, comments int, age time.Duration, tags ...string) models.Post {
	t.Helper()
	post := models.Post{
		ID:            id,
		AuthorID:      authorID,
		Title:         "Post " + id,
		Slug:          "post-" + id,
		Body:          "body",
		ViewCount:     views,
		ReactionCount: reactions,
		CommentCount:  comments,
		Published:     true,
		CreatedAt:     time.Now().Add(-age),
	}
	post.SetTagList(tags)
	require.NoError(t, database.DB.Create(&post).Error)
	return post
}
