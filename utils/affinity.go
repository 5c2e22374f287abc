package utils

import (
	"sort"
	"time"

	"blog-backend/models"
)

// =============================================================================
// Feed Personalization
// =============================================================================

const (
	// FollowBonus is added when the post's author is followed by the viewer
	FollowBonus = 50.0
	// TagBonus is added per overlap between post tags and the viewer's top tags
	TagBonus = 10.0
	// TopTagCount is how many bookmark-derived tags count toward affinity
	TopTagCount = 5
)

// ViewerAffinity captures a viewer's relationship to authors and topics.
// A zero-value affinity produces no bonuses, so ranking with it is
// identical to plain trending order.
type ViewerAffinity struct {
	FollowedAuthors map[string]bool
	TopTags         map[string]bool
}

// IsEmpty reports whether the affinity carries no personalization signal
func (a *ViewerAffinity) IsEmpty() bool {
	return a == nil || (len(a.FollowedAuthors) == 0 && len(a.TopTags) == 0)
}

// TopTagsFromBookmarks reduces the multiset of tags across bookmarked posts
// to the most frequent TopTagCount tags. Ties break alphabetically so the
// result is deterministic.
func TopTagsFromBookmarks(bookmarked []models.Post) map[string]bool {
	freq := make(map[string]int)
	for i := range bookmarked {
		for _, tag := range bookmarked[i].TagList() {
			freq[tag]++
		}
	}
	if len(freq) == 0 {
		return nil
	}

	tags := make([]string, 0, len(freq))
	for tag := range freq {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool {
		if freq[tags[i]] != freq[tags[j]] {
			return freq[tags[i]] > freq[tags[j]]
		}
		return tags[i] < tags[j]
	})

	if len(tags) > TopTagCount {
		tags = tags[:TopTagCount]
	}

	top := make(map[string]bool, len(tags))
	for _, tag := range tags {
		top[tag] = true
	}
	return top
}

// AffinityBonus computes the additive personalization bonus for a post:
// +50 for a followed author, +10 per top-tag overlap (uncapped).
// Additive bonuses keep the ranking stable: affinity never zeroes out an
// otherwise-strong trending item.
func AffinityBonus(post *models.Post, affinity *ViewerAffinity) float64 {
	if affinity.IsEmpty() {
		return 0
	}

	bonus := 0.0
	if affinity.FollowedAuthors[post.AuthorID] {
		bonus += FollowBonus
	}
	for _, tag := range post.TagList() {
		if affinity.TopTags[tag] {
			bonus += TagBonus
		}
	}
	return bonus
}

// RankForViewer annotates each post with its trending score plus the
// viewer's affinity bonus and returns the top limit posts. A nil or empty
// affinity yields ordering identical to RankByTrending over the same pool.
func RankForViewer(posts []models.Post, affinity *ViewerAffinity, now time.Time, limit int) []models.RankedPost {
	ranked := make([]models.RankedPost, 0, len(posts))
	for i := range posts {
		ranked = append(ranked, models.RankedPost{
			Post:  posts[i],
			Score: TrendingScore(&posts[i], now) + AffinityBonus(&posts[i], affinity),
		})
	}

	SortRankedPosts(ranked)

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
