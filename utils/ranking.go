package utils

import (
	"math"
	"sort"
	"time"

	"blog-backend/models"
)

// =============================================================================
// Engagement Scoring Weights
// =============================================================================

const (
	WeightView     = 1.0 // Weight for a view
	WeightReaction = 3.0 // Weight for a reaction
	WeightComment  = 2.0 // Weight for a comment

	// DecayGravity is the exponent applied to age in days. Super-linear so
	// older items decay faster than a plain time-average.
	DecayGravity = 1.2

	// MinAgeDays floors the decay denominator so items younger than a day
	// are not infinitely boosted.
	MinAgeDays = 1.0
)

// SanitizeCount clamps a counter to zero. Negative counters are a
// data-integrity violation from upstream and must never reach the
// scoring formula.
func SanitizeCount(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// RawEngagementScore computes the undecayed popularity of a post:
// views + 3*reactions + 2*comments
func RawEngagementScore(views, reactions, comments int) float64 {
	return float64(SanitizeCount(views))*WeightView +
		float64(SanitizeCount(reactions))*WeightReaction +
		float64(SanitizeCount(comments))*WeightComment
}

// AgeDays returns the age of a post in days as pure elapsed time
// (rolling 24-hour windows), floored at MinAgeDays.
func AgeDays(createdAt, now time.Time) float64 {
	days := now.Sub(createdAt).Hours() / 24.0
	if days < MinAgeDays {
		return MinAgeDays
	}
	return days
}

// TrendingScore computes the decayed popularity score for a post:
// rawScore / ageDays^1.2
func TrendingScore(post *models.Post, now time.Time) float64 {
	raw := RawEngagementScore(post.ViewCount, post.ReactionCount, post.CommentCount)
	return raw / math.Pow(AgeDays(post.CreatedAt, now), DecayGravity)
}

// =============================================================================
// Ranking
// =============================================================================

// SortRankedPosts sorts ranked posts by score descending. Tie-break is
// explicit on CreatedAt descending (newer wins) since floating-point
// scores can collide.
func SortRankedPosts(ranked []models.RankedPost) {
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].CreatedAt.After(ranked[j].CreatedAt)
	})
}

// RankByTrending annotates each post with its trending score and returns
// the top limit posts, descending. Callers are expected to have filtered
// the pool to visible posts already. An empty pool yields an empty slice,
// not an error.
func RankByTrending(posts []models.Post, now time.Time, limit int) []models.RankedPost {
	ranked := make([]models.RankedPost, 0, len(posts))
	for i := range posts {
		ranked = append(ranked, models.RankedPost{
			Post:  posts[i],
			Score: TrendingScore(&posts[i], now),
		})
	}

	SortRankedPosts(ranked)

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
