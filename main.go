package main

import (
	"context"
	"log"
	"os"
	"time"

	"blog-backend/cache"
	"blog-backend/config"
	"blog-backend/database"
	"blog-backend/handlers"
	"blog-backend/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.LoadConfig()

	// Initialize database
	if err := database.InitDB(cfg); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Seed demo data for local development
	if os.Getenv("SEED_DEMO_DATA") == "true" {
		if err := database.SeedDemoData(); err != nil {
			log.Printf("Demo seed failed: %v", err)
		}
	}

	// Redis-backed feed cache; the platform runs without it
	feedCache := connectFeedCache(cfg)

	// Initialize services
	notificationService := services.NewNotificationService(cfg)
	socialService := services.NewSocialService(cfg, notificationService)
	postService := services.NewPostService(cfg)
	feedService := services.NewFeedService(cfg, feedCache, socialService)
	engagementService := services.NewEngagementService(cfg, notificationService)
	moderationService := services.NewModerationService(cfg)

	// Initialize handlers
	postHandler := handlers.NewPostHandler(postService)
	feedHandler := handlers.NewFeedHandler(feedService)
	engagementHandler := handlers.NewEngagementHandler(engagementService)
	socialHandler := handlers.NewSocialHandler(socialService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	moderationHandler := handlers.NewModerationHandler(moderationService, feedService)

	// Setup routes
	r := gin.Default()
	v1 := r.Group("/api/v1")
	{
		// Feeds
		v1.GET("/feed", feedHandler.GetFeed)
		v1.GET("/feed/trending", feedHandler.GetTrending)
		v1.POST("/feed/cache/invalidate", feedHandler.InvalidateCache)

		// Posts
		v1.POST("/posts", postHandler.CreatePost)
		v1.GET("/posts", postHandler.ListPosts)
		v1.GET("/posts/:id", postHandler.GetPost)
		v1.PATCH("/posts/:id", postHandler.UpdatePost)
		v1.DELETE("/posts/:id", postHandler.DeletePost)

		// Engagement
		v1.POST("/posts/:id/view", engagementHandler.RecordView)
		v1.POST("/posts/:id/reactions", engagementHandler.ToggleReaction)
		v1.POST("/posts/:id/comments", engagementHandler.AddComment)
		v1.GET("/posts/:id/comments", engagementHandler.ListComments)

		// Social graph
		v1.POST("/users/:id/follow", socialHandler.Follow)
		v1.DELETE("/users/:id/follow", socialHandler.Unfollow)
		v1.POST("/posts/:id/bookmark", socialHandler.ToggleBookmark)
		v1.GET("/bookmarks", socialHandler.ListBookmarks)

		// Notifications
		v1.GET("/notifications", notificationHandler.ListNotifications)
		v1.POST("/notifications/:id/read", notificationHandler.MarkRead)
		v1.POST("/notifications/read-all", notificationHandler.MarkAllRead)

		// Moderation
		v1.POST("/posts/:id/report", moderationHandler.ReportPost)
		v1.GET("/moderation/reports", moderationHandler.ListReports)
		v1.POST("/moderation/reports/:id/resolve", moderationHandler.ResolveReport)
		v1.POST("/moderation/posts/:id/hide", moderationHandler.HidePost)
		v1.POST("/moderation/posts/:id/unhide", moderationHandler.UnhidePost)

		// Stats
		v1.GET("/stats", postHandler.GetStats)
	}

	log.Printf("Starting server on port %s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// connectFeedCache connects to redis for feed caching. Feeds recompute
// from the database when redis is unreachable, so failure is non-fatal.
func connectFeedCache(cfg *config.Config) cache.Cache {
	rdb := cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("Redis unavailable at %s, feed caching disabled: %v", cfg.RedisAddr, err)
		return nil
	}

	log.Printf("Connected to redis at %s", cfg.RedisAddr)
	return cache.NewRedisCache(rdb)
}
