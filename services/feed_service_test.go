package services

import (
	"bytes"
	"context"
	"log"
	"os"
	"testing"
	"time"

	"blog-backend/cache"
	"blog-backend/config"
	"blog-backend/database"
	"blog-backend/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFeedService(t *testing.T, cfg *config.Config, feedCache cache.Cache) (*FeedService, *SocialService) {
	t.Helper()
	notifications := NewNotificationService(cfg)
	social := NewSocialService(cfg, notifications)
	return NewFeedService(cfg, feedCache, social), social
}

func TestGetTrendingFeedOrder(t *testing.T) {
	cfg := setupTestDB(t)
	svc, _ := newFeedService(t, cfg, nil)
	author := createTestUser(t, "ada")

	// X: 100 views, 5 reactions, 2 comments, 1 day old  -> 119
	// Y: same engagement, 10 days old                   -> ~7.5
	// Z: 10 views, 1 day old                            -> 10
	insertPost(t, "x", author.ID, 100, 5, 2, 24*time.Hour)
	insertPost(t, "y", author.ID, 100, 5, 2, 240*time.Hour)
	insertPost(t, "z", author.ID, 10, 0, 0, 24*time.Hour)

	ranked, err := svc.GetTrendingFeed(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, ranked, 3)

	assert.Equal(t, "x", ranked[0].ID)
	assert.Equal(t, "z", ranked[1].ID)
	assert.Equal(t, "y", ranked[2].ID)
}

func TestGetTrendingFeedExcludesInvisible(t *testing.T) {
	cfg := setupTestDB(t)
	svc, _ := newFeedService(t, cfg, nil)
	author := createTestUser(t, "ada")

	insertPost(t, "visible", author.ID, 10, 0, 0, time.Hour)

	draft := insertPost(t, "draft", author.ID, 999, 0, 0, time.Hour)
	require.NoError(t, database.DB.Model(&draft).Update("published", false).Error)

	hidden := insertPost(t, "hidden", author.ID, 999, 0, 0, time.Hour)
	require.NoError(t, database.DB.Model(&hidden).Update("hidden", true).Error)

	future := time.Now().Add(48 * time.Hour)
	scheduled := insertPost(t, "scheduled", author.ID, 999, 0, 0, time.Hour)
	require.NoError(t, database.DB.Model(&scheduled).Update("scheduled_at", &future).Error)

	ranked, err := svc.GetTrendingFeed(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, "visible", ranked[0].ID)
}

func TestGetTrendingFeedEmptyPool(t *testing.T) {
	cfg := setupTestDB(t)
	svc, _ := newFeedService(t, cfg, nil)

	ranked, err := svc.GetTrendingFeed(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, ranked)
}

func TestGetTrendingFeedSanitizesCounters(t *testing.T) {
	cfg := setupTestDB(t)
	svc, _ := newFeedService(t, cfg, nil)
	author := createTestUser(t, "ada")

	broken := insertPost(t, "broken", author.ID, 0, 0, 0, time.Hour)
	require.NoError(t, database.DB.Model(&broken).Update("view_count", -42).Error)
	insertPost(t, "fine", author.ID, 1, 0, 0, time.Hour)

	ranked, err := svc.GetTrendingFeed(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, ranked, 2)

	// The corrupt counter is clamped to zero, never a negative score
	assert.Equal(t, "fine", ranked[0].ID)
	assert.Equal(t, float64(0), ranked[1].Score)
}

func TestGetPersonalizedFeedFollowBoost(t *testing.T) {
	cfg := setupTestDB(t)
	svc, social := newFeedService(t, cfg, nil)
	alice := createTestUser(t, "alice")
	bob := createTestUser(t, "bob")
	viewer := createTestUser(t, "viewer")

	// Identical posts by different authors
	insertPost(t, "by-alice", alice.ID, 40, 0, 0, time.Hour)
	insertPost(t, "by-bob", bob.ID, 40, 0, 0, time.Hour)

	require.NoError(t, social.FollowAuthor(viewer.ID, alice.ID))

	ranked, personalized, err := svc.GetPersonalizedFeed(context.Background(), viewer.ID, 10)
	require.NoError(t, err)
	assert.True(t, personalized)
	require.Len(t, ranked, 2)
	assert.Equal(t, "by-alice", ranked[0].ID)
}

func TestGetPersonalizedFeedTagAffinity(t *testing.T) {
	cfg := setupTestDB(t)
	svc, social := newFeedService(t, cfg, nil)
	author := createTestUser(t, "author")
	viewer := createTestUser(t, "viewer")

	bookmarked := insertPost(t, "bookmarked", author.ID, 5, 0, 0, time.Hour, "go", "databases")
	_, err := social.ToggleBookmark(viewer.ID, bookmarked.ID)
	require.NoError(t, err)

	insertPost(t, "two-tags", author.ID, 40, 0, 0, time.Hour, "go", "databases")
	insertPost(t, "no-tags", author.ID, 40, 0, 0, time.Hour)

	ranked, personalized, err := svc.GetPersonalizedFeed(context.Background(), viewer.ID, 10)
	require.NoError(t, err)
	assert.True(t, personalized)

	var twoTags, noTags models.RankedPost
	for _, r := range ranked {
		switch r.ID {
		case "two-tags":
			twoTags = r
		case "no-tags":
			noTags = r
		}
	}

	// Two overlapping tags add exactly 20 points
	assert.InDelta(t, 20.0, twoTags.Score-noTags.Score, 1e-9)
}

func TestGetPersonalizedFeedAnonymousFallback(t *testing.T) {
	cfg := setupTestDB(t)
	svc, _ := newFeedService(t, cfg, nil)
	author := createTestUser(t, "ada")

	insertPost(t, "a", author.ID, 100, 2, 1, time.Hour)
	insertPost(t, "b", author.ID, 50, 8, 3, 30*time.Hour)
	insertPost(t, "c", author.ID, 75, 0, 0, 3*time.Hour)

	trending, err := svc.GetTrendingFeed(context.Background(), 10)
	require.NoError(t, err)

	personal, personalized, err := svc.GetPersonalizedFeed(context.Background(), "", 10)
	require.NoError(t, err)
	assert.False(t, personalized)

	require.Equal(t, len(trending), len(personal))
	for i := range trending {
		assert.Equal(t, trending[i].ID, personal[i].ID)
		assert.Equal(t, trending[i].Score, personal[i].Score)
	}
}

func TestGetPersonalizedFeedNoHistoryFallback(t *testing.T) {
	cfg := setupTestDB(t)
	svc, _ := newFeedService(t, cfg, nil)
	author := createTestUser(t, "ada")
	viewer := createTestUser(t, "viewer")

	insertPost(t, "a", author.ID, 10, 0, 0, time.Hour)

	_, personalized, err := svc.GetPersonalizedFeed(context.Background(), viewer.ID, 10)
	require.NoError(t, err)
	assert.False(t, personalized, "viewer with no follows or bookmarks gets trending order")
}

func TestFeedCandidatePoolCache(t *testing.T) {
	cfg := setupTestDB(t)
	mr := miniredis.RunT(t)
	feedCache := cache.NewRedisCache(cache.NewRedisClient(mr.Addr(), "", 0))
	svc, _ := newFeedService(t, cfg, feedCache)
	author := createTestUser(t, "ada")

	insertPost(t, "first", author.ID, 10, 0, 0, time.Hour)

	ranked, err := svc.GetTrendingFeed(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, ranked, 1)

	// Pool is now cached: a new post stays out until the TTL passes
	insertPost(t, "second", author.ID, 10, 0, 0, time.Hour)

	ranked, err = svc.GetTrendingFeed(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, ranked, 1)

	mr.FastForward(time.Duration(cfg.FeedCacheTTL+1) * time.Second)

	ranked, err = svc.GetTrendingFeed(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, ranked, 2)
}

func TestFeedCacheMalformedEntry(t *testing.T) {
	cfg := setupTestDB(t)
	mr := miniredis.RunT(t)
	feedCache := cache.NewRedisCache(cache.NewRedisClient(mr.Addr(), "", 0))
	svc, _ := newFeedService(t, cfg, feedCache)
	author := createTestUser(t, "ada")

	insertPost(t, "first", author.ID, 10, 0, 0, time.Hour)
	require.NoError(t, mr.Set(candidatePoolKey, "{not json"))

	var logs bytes.Buffer
	log.SetOutput(&logs)
	defer log.SetOutput(os.Stderr)

	// The corrupt entry is discarded and the pool recomputed from the DB
	ranked, err := svc.GetTrendingFeed(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, "first", ranked[0].ID)

	// The discard log carries the decode failure, not a nil error
	assert.Contains(t, logs.String(), "Discarding malformed feed cache entry")
	assert.NotContains(t, logs.String(), "<nil>")
}

func TestFeedCacheInvalidation(t *testing.T) {
	cfg := setupTestDB(t)
	mr := miniredis.RunT(t)
	feedCache := cache.NewRedisCache(cache.NewRedisClient(mr.Addr(), "", 0))
	svc, _ := newFeedService(t, cfg, feedCache)
	author := createTestUser(t, "ada")

	insertPost(t, "first", author.ID, 10, 0, 0, time.Hour)

	_, err := svc.GetTrendingFeed(context.Background(), 10)
	require.NoError(t, err)

	insertPost(t, "second", author.ID, 10, 0, 0, time.Hour)
	svc.InvalidateCache(context.Background())

	ranked, err := svc.GetTrendingFeed(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, ranked, 2)
}
