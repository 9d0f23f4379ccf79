package verdant

import "time"

// Categorized is any item that can be filtered by its category token.
type Categorized interface {
	CategoryToken() string
}

func (g GalleryItem) CategoryToken() string { return g.Category }
func (p ProductItem) CategoryToken() string { return p.Category }

// FilterByCategory returns the subsequence of items whose category exactly
// matches the token, in original order. The "all" token returns the input
// unchanged; items without a category only appear under "all".
func FilterByCategory[T Categorized](items []T, category string) []T {
	if category == CategoryAll || category == "" {
		return items
	}
	var out []T
	for _, it := range items {
		if it.CategoryToken() == category {
			out = append(out, it)
		}
	}
	return out
}

// DashboardStats summarizes the gallery for the admin dashboard.
type DashboardStats struct {
	TotalImages   int
	CategoryCount map[string]int
	RecentUploads int // uploads within the last 7 days
}

// GalleryStats computes dashboard numbers from the cached gallery. now is
// injected so tests control the recency window.
func GalleryStats(items []GalleryItem, now time.Time) DashboardStats {
	stats := DashboardStats{CategoryCount: make(map[string]int)}
	cutoff := now.Add(-7 * 24 * time.Hour)
	for _, it := range items {
		stats.TotalImages++
		if it.Category != "" {
			stats.CategoryCount[it.Category]++
		}
		if t, err := time.Parse(time.RFC3339, it.CreatedAt); err == nil && t.After(cutoff) {
			stats.RecentUploads++
		}
	}
	return stats
}
