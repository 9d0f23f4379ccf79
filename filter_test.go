package verdant

import (
	"testing"
	"time"
)

func testGalleryItems() []GalleryItem {
	return []GalleryItem{
		{ID: "1", Title: "Teras", Category: "Uygulama"},
		{ID: "2", Title: "Fidanlık", Category: "Üretim"},
		{ID: "3", Title: "Proje", Category: "Çizim"},
		{ID: "4", Title: "Havuz", Category: "Uygulama"},
		{ID: "5", Title: "Arşiv"},
	}
}

func TestFilterByCategoryAll(t *testing.T) {
	items := testGalleryItems()

	for _, token := range []string{CategoryAll, ""} {
		got := FilterByCategory(items, token)
		if len(got) != len(items) {
			t.Fatalf("token %q: expected all %d items, got %d", token, len(items), len(got))
		}
		for i := range items {
			if got[i].ID != items[i].ID {
				t.Errorf("token %q: order changed at %d", token, i)
			}
		}
	}
}

func TestFilterByCategoryExactMatch(t *testing.T) {
	items := testGalleryItems()

	got := FilterByCategory(items, "Uygulama")
	if len(got) != 2 {
		t.Fatalf("expected 2 Uygulama items, got %d", len(got))
	}
	if got[0].ID != "1" || got[1].ID != "4" {
		t.Errorf("original order must be preserved, got %v then %v", got[0].ID, got[1].ID)
	}
	for _, it := range got {
		if it.Category != "Uygulama" {
			t.Errorf("item %s leaked into the filter", it.ID)
		}
	}

	// The uncategorized item only appears under "all".
	for _, cat := range Categories {
		for _, it := range FilterByCategory(items, cat) {
			if it.ID == "5" {
				t.Errorf("uncategorized item matched %q", cat)
			}
		}
	}

	if got := FilterByCategory(items, "Bilinmeyen"); len(got) != 0 {
		t.Errorf("unknown category should match nothing, got %d items", len(got))
	}
}

func TestGalleryStats(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	items := []GalleryItem{
		{Category: "Uygulama", CreatedAt: now.Add(-time.Hour).Format(time.RFC3339)},
		{Category: "Uygulama", CreatedAt: now.Add(-6 * 24 * time.Hour).Format(time.RFC3339)},
		{Category: "Üretim", CreatedAt: now.Add(-10 * 24 * time.Hour).Format(time.RFC3339)},
		{CreatedAt: "not a timestamp"},
	}

	stats := GalleryStats(items, now)
	if stats.TotalImages != 4 {
		t.Errorf("expected 4 total, got %d", stats.TotalImages)
	}
	if stats.CategoryCount["Uygulama"] != 2 || stats.CategoryCount["Üretim"] != 1 {
		t.Errorf("unexpected category counts: %v", stats.CategoryCount)
	}
	if stats.RecentUploads != 2 {
		t.Errorf("expected 2 uploads within 7 days, got %d", stats.RecentUploads)
	}
}
