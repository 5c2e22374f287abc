package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"blog-backend/cache"
	"blog-backend/config"
	"blog-backend/database"
	"blog-backend/models"
	"blog-backend/utils"

	"gorm.io/gorm"
)

// candidatePoolKey caches the raw candidate pool query result. Scores are
// never cached: they are recomputed on every read from current counters.
const candidatePoolKey = "feed:candidates:v1"

type FeedService struct {
	db     *gorm.DB
	cfg    *config.Config
	cache  cache.Cache
	social *SocialService
}

// NewFeedService creates a new feed service instance. The cache is
// optional; a nil cache disables candidate-pool caching.
func NewFeedService(cfg *config.Config, feedCache cache.Cache, social *SocialService) *FeedService {
	return &FeedService{
		db:     database.GetDB(),
		cfg:    cfg,
		cache:  feedCache,
		social: social,
	}
}

// GetTrendingFeed returns the top posts by decayed engagement score
func (s *FeedService) GetTrendingFeed(ctx context.Context, limit int) ([]models.RankedPost, error) {
	limit = s.clampLimit(limit)

	pool, err := s.fetchCandidatePool(ctx)
	if err != nil {
		return nil, err
	}

	return utils.RankByTrending(pool, time.Now(), limit), nil
}

// GetPersonalizedFeed returns the top posts for a viewer, boosting followed
// authors and bookmark-derived tag interests. Anonymous viewers and viewers
// whose affinity cannot be resolved get plain trending order; the second
// return value reports whether personalization was applied.
func (s *FeedService) GetPersonalizedFeed(ctx context.Context, viewerID string, limit int) ([]models.RankedPost, bool, error) {
	limit = s.clampLimit(limit)

	pool, err := s.fetchCandidatePool(ctx)
	if err != nil {
		return nil, false, err
	}
	now := time.Now()

	if viewerID == "" {
		return utils.RankByTrending(pool, now, limit), false, nil
	}

	affinity, err := s.social.ResolveAffinity(viewerID)
	if err != nil {
		// Personalization is best-effort, never a reason to fail the request
		log.Printf("Affinity resolution failed for user %s, degrading to trending: %v", viewerID, err)
		return utils.RankByTrending(pool, now, limit), false, nil
	}
	if affinity.IsEmpty() {
		return utils.RankByTrending(pool, now, limit), false, nil
	}

	return utils.RankForViewer(pool, affinity, now, limit), true, nil
}

// InvalidateCache drops the cached candidate pool
func (s *FeedService) InvalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, candidatePoolKey); err != nil {
		log.Printf("Failed to invalidate feed cache: %v", err)
	}
}

// fetchCandidatePool loads the most recent visible posts, consulting the
// cache first. Cache failures fall through to the database.
func (s *FeedService) fetchCandidatePool(ctx context.Context) ([]models.Post, error) {
	if s.cache != nil {
		if b, hit, err := s.cache.Get(ctx, candidatePoolKey); err != nil {
			log.Printf("Feed cache read failed: %v", err)
		} else if hit {
			var pool []models.Post
			if uerr := json.Unmarshal(b, &pool); uerr != nil {
				log.Printf("Discarding malformed feed cache entry: %v", uerr)
			} else {
				return sanitizeCounters(pool), nil
			}
		}
	}

	var pool []models.Post
	now := time.Now()
	err := s.db.
		Where("published = ? AND hidden = ?", true, false).
		Where("scheduled_at IS NULL OR scheduled_at <= ?", now).
		Order("created_at DESC").
		Limit(s.cfg.CandidatePoolSize).
		Find(&pool).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candidate pool: %w", err)
	}

	pool = sanitizeCounters(pool)

	if s.cache != nil {
		if b, err := json.Marshal(pool); err == nil {
			ttl := time.Duration(s.cfg.FeedCacheTTL) * time.Second
			if err := s.cache.Set(ctx, candidatePoolKey, b, ttl); err != nil {
				log.Printf("Feed cache write failed: %v", err)
			}
		}
	}

	return pool, nil
}

func (s *FeedService) clampLimit(limit int) int {
	if limit <= 0 || limit > s.cfg.MaxFeedReturn {
		return s.cfg.MaxFeedReturn
	}
	return limit
}

// sanitizeCounters clamps negative engagement counters to zero at the
// storage read boundary so the scoring formula stays total.
func sanitizeCounters(posts []models.Post) []models.Post {
	for i := range posts {
		posts[i].ViewCount = utils.SanitizeCount(posts[i].ViewCount)
		posts[i].ReactionCount = utils.SanitizeCount(posts[i].ReactionCount)
		posts[i].CommentCount = utils.SanitizeCount(posts[i].CommentCount)
	}
	return posts
}
