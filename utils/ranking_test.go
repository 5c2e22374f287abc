package utils

import (
	"math"
	"testing"
	"time"

	"blog-backend/models"
)

func makePost(id string, views, reactions, comments int, age time.Duration, now time.Time) models.Post {
	return models.Post{
		ID:            id,
		ViewCount:     views,
		ReactionCount: reactions,
		CommentCount:  comments,
		Published:     true,
		CreatedAt:     now.Add(-age),
	}
}

func TestRawEngagementScore(t *testing.T) {
	tests := []struct {
		name      string
		views     int
		reactions int
		comments  int
		expected  float64
	}{
		{
			name:     "Untouched post scores zero",
			expected: 0,
		},
		{
			name:      "Weighted sum",
			views:     100,
			reactions: 5,
			comments:  2,
			expected:  119, // 100 + 3*5 + 2*2
		},
		{
			name:      "Negative counters sanitized to zero",
			views:     -10,
			reactions: -1,
			comments:  3,
			expected:  6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RawEngagementScore(tt.views, tt.reactions, tt.comments)
			if result != tt.expected {
				t.Errorf("RawEngagementScore() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestAgeDays(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name     string
		age      time.Duration
		expected float64
	}{
		{
			name:     "Created just now floors to one day",
			age:      0,
			expected: 1,
		},
		{
			name:     "Twelve hours old floors to one day",
			age:      12 * time.Hour,
			expected: 1,
		},
		{
			name:     "Exactly one day",
			age:      24 * time.Hour,
			expected: 1,
		},
		{
			name:     "Ten days",
			age:      240 * time.Hour,
			expected: 10,
		},
		{
			name:     "Fractional days above the floor",
			age:      36 * time.Hour,
			expected: 1.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AgeDays(now.Add(-tt.age), now)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("AgeDays(%v ago) = %v, expected %v", tt.age, result, tt.expected)
			}
		})
	}
}

func TestTrendingScoreDecay(t *testing.T) {
	now := time.Now()

	// Identical engagement, different ages: the older post must score
	// strictly lower.
	fresh := makePost("fresh", 100, 5, 2, time.Hour, now)
	stale := makePost("stale", 100, 5, 2, 10*24*time.Hour, now)

	freshScore := TrendingScore(&fresh, now)
	staleScore := TrendingScore(&stale, now)

	if staleScore >= freshScore {
		t.Errorf("older post should decay: fresh=%v stale=%v", freshScore, staleScore)
	}

	// Day-old post uses the age floor: score equals the raw score
	if math.Abs(freshScore-119) > 1e-9 {
		t.Errorf("fresh post score = %v, expected raw score 119", freshScore)
	}

	expected := 119 / math.Pow(10, DecayGravity)
	if math.Abs(staleScore-expected) > 1e-9 {
		t.Errorf("stale post score = %v, expected %v", staleScore, expected)
	}
}

func TestTrendingScoreMonotonicity(t *testing.T) {
	now := time.Now()

	low := makePost("low", 50, 3, 1, 48*time.Hour, now)
	high := makePost("high", 51, 3, 1, 48*time.Hour, now)

	if TrendingScore(&high, now) <= TrendingScore(&low, now) {
		t.Error("post with strictly more views should score higher, all else equal")
	}
}

func TestRankByTrending(t *testing.T) {
	now := time.Now()

	t.Run("Empty pool yields empty result", func(t *testing.T) {
		ranked := RankByTrending(nil, now, 10)
		if len(ranked) != 0 {
			t.Errorf("expected empty result, got %d posts", len(ranked))
		}
	})

	t.Run("Orders by decayed score", func(t *testing.T) {
		// X: views=100 reactions=5 comments=2 age=1d  -> 119
		// Y: same engagement, age=10d                 -> 119/10^1.2 ≈ 7.5
		// Z: views=10 age=1d                          -> 10
		// Expected order: X, Z, Y
		pool := []models.Post{
			makePost("y", 100, 5, 2, 10*24*time.Hour, now),
			makePost("z", 10, 0, 0, 24*time.Hour, now),
			makePost("x", 100, 5, 2, 24*time.Hour, now),
		}

		ranked := RankByTrending(pool, now, 10)

		got := []string{ranked[0].ID, ranked[1].ID, ranked[2].ID}
		want := []string{"x", "z", "y"}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("rank order = %v, expected %v", got, want)
			}
		}
	})

	t.Run("Zero-engagement post ranks last, not excluded", func(t *testing.T) {
		pool := []models.Post{
			makePost("busy", 10, 1, 0, time.Hour, now),
			makePost("quiet", 0, 0, 0, time.Hour, now),
		}

		ranked := RankByTrending(pool, now, 10)
		if len(ranked) != 2 {
			t.Fatalf("expected 2 posts, got %d", len(ranked))
		}
		if ranked[1].ID != "quiet" {
			t.Errorf("zero-engagement post should rank last, got order %s, %s",
				ranked[0].ID, ranked[1].ID)
		}
	})

	t.Run("Score ties break by creation time, newer first", func(t *testing.T) {
		older := makePost("older", 20, 0, 0, 20*time.Hour, now)
		newer := makePost("newer", 20, 0, 0, 2*time.Hour, now)
		// Both inside the one-day floor: identical scores.

		ranked := RankByTrending([]models.Post{older, newer}, now, 10)
		if ranked[0].ID != "newer" {
			t.Errorf("expected newer post to win the tie, got %s first", ranked[0].ID)
		}
	})

	t.Run("Truncates to limit", func(t *testing.T) {
		pool := []models.Post{
			makePost("a", 30, 0, 0, time.Hour, now),
			makePost("b", 20, 0, 0, time.Hour, now),
			makePost("c", 10, 0, 0, time.Hour, now),
		}

		ranked := RankByTrending(pool, now, 2)
		if len(ranked) != 2 {
			t.Fatalf("expected 2 posts, got %d", len(ranked))
		}
		if ranked[0].ID != "a" || ranked[1].ID != "b" {
			t.Errorf("unexpected top-2: %s, %s", ranked[0].ID, ranked[1].ID)
		}
	})
}
