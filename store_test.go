package verdant

import (
	"errors"
	"path/filepath"
	"testing"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "test_site.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestNewStore(t *testing.T) {
	s := setupTestStore(t)
	if s.db == nil {
		t.Fatal("db should not be nil")
	}
}

func TestGalleryItemCRUD(t *testing.T) {
	s := setupTestStore(t)

	first, err := s.InsertGalleryItem(GalleryItem{
		Title:    "Villa bahçesi",
		Category: "Uygulama",
		ImageURL: "/uploads/gallery/1-villa.jpg",
	})
	if err != nil {
		t.Fatalf("InsertGalleryItem failed: %v", err)
	}
	if first.ID == "" || first.CreatedAt == "" {
		t.Fatalf("insert should assign id and created_at, got %+v", first)
	}

	second, err := s.InsertGalleryItem(GalleryItem{Title: "Park projesi", ImageURL: "/uploads/gallery/2-park.jpg"})
	if err != nil {
		t.Fatalf("InsertGalleryItem failed: %v", err)
	}

	items, err := s.ListGalleryItems()
	if err != nil {
		t.Fatalf("ListGalleryItems failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ID != second.ID {
		t.Errorf("expected newest item first, got %q", items[0].Title)
	}

	if err := s.DeleteGalleryItem(first.ID); err != nil {
		t.Fatalf("DeleteGalleryItem failed: %v", err)
	}
	items, err = s.ListGalleryItems()
	if err != nil {
		t.Fatalf("ListGalleryItems failed: %v", err)
	}
	if len(items) != 1 || items[0].ID != second.ID {
		t.Fatalf("expected only the second item to remain, got %d items", len(items))
	}
}

func TestCatalogPageNumbering(t *testing.T) {
	s := setupTestStore(t)

	max, err := s.MaxCatalogPageNumber()
	if err != nil {
		t.Fatalf("MaxCatalogPageNumber failed: %v", err)
	}
	if max != 0 {
		t.Fatalf("empty catalog should report max 0, got %d", max)
	}

	for i := 1; i <= 3; i++ {
		if _, err := s.InsertCatalogPage(CatalogPage{PageNumber: i, ImageURL: "/uploads/catalog/p.jpg"}); err != nil {
			t.Fatalf("InsertCatalogPage failed: %v", err)
		}
	}

	pages, err := s.ListCatalogPages()
	if err != nil {
		t.Fatalf("ListCatalogPages failed: %v", err)
	}
	if len(pages) != 3 {
		t.Fatalf("expected 3 pages, got %d", len(pages))
	}
	for i, p := range pages {
		if p.PageNumber != i+1 {
			t.Errorf("page %d: expected number %d, got %d", i, i+1, p.PageNumber)
		}
	}

	// Deleting the middle page leaves a gap; numbers never shift.
	if err := s.DeleteCatalogPage(pages[1].ID); err != nil {
		t.Fatalf("DeleteCatalogPage failed: %v", err)
	}
	pages, err = s.ListCatalogPages()
	if err != nil {
		t.Fatalf("ListCatalogPages failed: %v", err)
	}
	if len(pages) != 2 || pages[0].PageNumber != 1 || pages[1].PageNumber != 3 {
		t.Fatalf("expected pages 1 and 3 to remain, got %+v", pages)
	}

	max, err = s.MaxCatalogPageNumber()
	if err != nil {
		t.Fatalf("MaxCatalogPageNumber failed: %v", err)
	}
	if max != 3 {
		t.Fatalf("expected max page number 3, got %d", max)
	}
}

func TestBlogPostPartialUpdate(t *testing.T) {
	s := setupTestStore(t)

	post, err := s.InsertBlogPost(BlogPost{
		Title:    "Bahçe bakımı",
		Content:  "İlk içerik",
		Category: "Uygulama",
	})
	if err != nil {
		t.Fatalf("InsertBlogPost failed: %v", err)
	}

	newTitle := "Kış bahçe bakımı"
	if err := s.UpdateBlogPost(post.ID, BlogPostFields{Title: &newTitle}); err != nil {
		t.Fatalf("UpdateBlogPost failed: %v", err)
	}

	got, err := s.GetBlogPost(post.ID)
	if err != nil {
		t.Fatalf("GetBlogPost failed: %v", err)
	}
	if got.Title != newTitle {
		t.Errorf("expected updated title, got %q", got.Title)
	}
	if got.Content != "İlk içerik" || got.Category != "Uygulama" {
		t.Errorf("untouched fields should survive a partial update, got %+v", got)
	}

	// No fields set is a no-op, not an error.
	if err := s.UpdateBlogPost(post.ID, BlogPostFields{}); err != nil {
		t.Fatalf("empty update should be a no-op: %v", err)
	}
}

func TestEnsureDefaults(t *testing.T) {
	s := setupTestStore(t)

	if err := s.EnsureDefaults(); err != nil {
		t.Fatalf("EnsureDefaults failed: %v", err)
	}
	// Running again must not duplicate rows.
	if err := s.EnsureDefaults(); err != nil {
		t.Fatalf("EnsureDefaults (second run) failed: %v", err)
	}

	about, err := s.GetAboutContent()
	if err != nil {
		t.Fatalf("GetAboutContent failed: %v", err)
	}
	if about.ID == "" {
		t.Error("seeded about row should have an id")
	}
	if about.Values == nil || about.TeamMembers == nil {
		t.Error("seeded about row should decode to empty slices, not nil")
	}
	if _, err := s.GetHeroContent(); err != nil {
		t.Fatalf("GetHeroContent failed: %v", err)
	}
	if _, err := s.GetContactInfo(); err != nil {
		t.Fatalf("GetContactInfo failed: %v", err)
	}
	if _, err := s.GetLogoSettings(); err != nil {
		t.Fatalf("GetLogoSettings failed: %v", err)
	}

	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM about_content`).Scan(&n); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected exactly 1 seeded about row, got %d", n)
	}
}

func TestAboutContentRoundTrip(t *testing.T) {
	s := setupTestStore(t)
	if err := s.EnsureDefaults(); err != nil {
		t.Fatalf("EnsureDefaults failed: %v", err)
	}
	seeded, err := s.GetAboutContent()
	if err != nil {
		t.Fatalf("GetAboutContent failed: %v", err)
	}

	want := AboutContent{
		Title:   "Hakkımızda",
		Content: "Peyzaj alanında 20 yıl.",
		Mission: "Yeşili yaşatmak",
		Values:  []string{"Kalite", "Güven"},
		TeamMembers: []TeamMember{
			{Name: "Ayşe Demir", Role: "Peyzaj Mimarı", Bio: "Kurucu ortak"},
		},
		Stats: AboutStats{YearsExperience: 20, CompletedProjects: 150, TeamSize: 12, ClientSatisfaction: 98},
	}
	if err := s.UpdateAboutContent(seeded.ID, want); err != nil {
		t.Fatalf("UpdateAboutContent failed: %v", err)
	}

	got, err := s.GetAboutContent()
	if err != nil {
		t.Fatalf("GetAboutContent failed: %v", err)
	}
	if got.Title != want.Title || got.Mission != want.Mission {
		t.Errorf("scalar fields did not round-trip: %+v", got)
	}
	if len(got.Values) != 2 || got.Values[0] != "Kalite" {
		t.Errorf("values did not round-trip: %+v", got.Values)
	}
	if len(got.TeamMembers) != 1 || got.TeamMembers[0].Name != "Ayşe Demir" {
		t.Errorf("team members did not round-trip: %+v", got.TeamMembers)
	}
	if got.Stats != want.Stats {
		t.Errorf("stats did not round-trip: %+v", got.Stats)
	}
}

func TestAboutContentDecodeError(t *testing.T) {
	s := setupTestStore(t)
	if err := s.EnsureDefaults(); err != nil {
		t.Fatalf("EnsureDefaults failed: %v", err)
	}

	if _, err := s.db.Exec(`UPDATE about_content SET team_members = 'not json'`); err != nil {
		t.Fatalf("corrupt row failed: %v", err)
	}

	_, err := s.GetAboutContent()
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if de.Field != "team_members" {
		t.Errorf("expected team_members field, got %q", de.Field)
	}
}

func TestSingletonNewestRowWins(t *testing.T) {
	s := setupTestStore(t)

	// Legacy tables can hold several rows; reads must return the newest.
	if _, err := s.db.Exec(
		`INSERT INTO hero_content (id, title, created_at) VALUES ('old', 'Eski', '2020-01-01T00:00:00Z')`); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if _, err := s.db.Exec(
		`INSERT INTO hero_content (id, title, created_at) VALUES ('new', 'Yeni', '2024-01-01T00:00:00Z')`); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	hero, err := s.GetHeroContent()
	if err != nil {
		t.Fatalf("GetHeroContent failed: %v", err)
	}
	if hero.ID != "new" {
		t.Fatalf("expected newest row, got %q", hero.ID)
	}
}

func TestUpdateLogoSettingsKeepsEmptySlot(t *testing.T) {
	s := setupTestStore(t)
	if err := s.EnsureDefaults(); err != nil {
		t.Fatalf("EnsureDefaults failed: %v", err)
	}
	logos, err := s.GetLogoSettings()
	if err != nil {
		t.Fatalf("GetLogoSettings failed: %v", err)
	}

	if err := s.UpdateLogoSettings(logos.ID, "/uploads/logos/h.png", ""); err != nil {
		t.Fatalf("UpdateLogoSettings failed: %v", err)
	}
	if err := s.UpdateLogoSettings(logos.ID, "", "/uploads/logos/f.png"); err != nil {
		t.Fatalf("UpdateLogoSettings failed: %v", err)
	}

	got, err := s.GetLogoSettings()
	if err != nil {
		t.Fatalf("GetLogoSettings failed: %v", err)
	}
	if got.HeaderLogo != "/uploads/logos/h.png" {
		t.Errorf("header logo should survive a footer-only update, got %q", got.HeaderLogo)
	}
	if got.FooterLogo != "/uploads/logos/f.png" {
		t.Errorf("footer logo not updated, got %q", got.FooterLogo)
	}
}
