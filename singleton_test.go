package verdant

import (
	"database/sql"
	"errors"
	"testing"

	"go.uber.org/zap"
)

func TestSingletonMissingRowClearsCache(t *testing.T) {
	var val *HeroContent
	fetch := func() (HeroContent, error) {
		if val == nil {
			return HeroContent{}, sql.ErrNoRows
		}
		return *val, nil
	}

	s := newSingleton("hero", zap.NewNop(), fetch)
	if _, ok := s.Current(); ok {
		t.Fatal("empty table should leave the cache empty")
	}

	val = &HeroContent{ID: "h1", Title: "Yeşil Bahçeler"}
	if err := s.Refresh(); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	cur, ok := s.Current()
	if !ok || cur.ID != "h1" {
		t.Fatalf("expected cached record, got %+v ok=%v", cur, ok)
	}

	// The row disappearing clears the cache without surfacing an error.
	val = nil
	if err := s.Refresh(); err != nil {
		t.Fatalf("missing row should not be an error: %v", err)
	}
	if _, ok := s.Current(); ok {
		t.Fatal("cache should be cleared once the row is gone")
	}
}

func TestSingletonKeepsCacheOnFetchError(t *testing.T) {
	healthy := true
	fetch := func() (ContactInfo, error) {
		if !healthy {
			return ContactInfo{}, errors.New("connection reset")
		}
		return ContactInfo{ID: "c1", Phone: "05551112233"}, nil
	}

	s := newSingleton("contact", zap.NewNop(), fetch)
	if _, ok := s.Current(); !ok {
		t.Fatal("initial fetch should populate the cache")
	}

	healthy = false
	if err := s.Refresh(); err == nil {
		t.Fatal("expected refresh error")
	}
	cur, ok := s.Current()
	if !ok || cur.ID != "c1" {
		t.Fatalf("failed refresh must keep the previous value, got %+v ok=%v", cur, ok)
	}
}

func TestSingletonAccessorsUpdate(t *testing.T) {
	s := setupTestStore(t)
	if err := s.EnsureDefaults(); err != nil {
		t.Fatalf("EnsureDefaults failed: %v", err)
	}

	hero := NewHero(s, zap.NewNop())
	if err := hero.Update(HeroContent{Title: "Doğayla Tasarım", Description: "Peyzajda 20 yıl"}); err != nil {
		t.Fatalf("hero update failed: %v", err)
	}
	cur, ok := hero.Current()
	if !ok || cur.Title != "Doğayla Tasarım" {
		t.Fatalf("hero cache should reflect the update, got %+v", cur)
	}

	contact := NewContact(s, zap.NewNop())
	if err := contact.Update(ContactInfo{Phone: "0555 111 22 33", Email: "info@example.com"}); err != nil {
		t.Fatalf("contact update failed: %v", err)
	}
	info, ok := contact.Current()
	if !ok || info.Email != "info@example.com" {
		t.Fatalf("contact cache should reflect the update, got %+v", info)
	}
}

func TestLogosSetLogo(t *testing.T) {
	s := setupTestStore(t)
	if err := s.EnsureDefaults(); err != nil {
		t.Fatalf("EnsureDefaults failed: %v", err)
	}
	l := NewLogos(s, NewDirBlobStore(t.TempDir(), "/uploads"), zap.NewNop())

	if err := l.SetLogo(LogoHeader, pngUpload("logo.png", 32)); err != nil {
		t.Fatalf("SetLogo header failed: %v", err)
	}
	if err := l.SetLogo(LogoFooter, pngUpload("footer.png", 32)); err != nil {
		t.Fatalf("SetLogo footer failed: %v", err)
	}

	cur, ok := l.Current()
	if !ok {
		t.Fatal("logo record should exist")
	}
	if cur.HeaderLogo == "" || cur.FooterLogo == "" {
		t.Fatalf("both slots should be set, got %+v", cur)
	}
	if cur.HeaderLogo == cur.FooterLogo {
		t.Error("slots should hold distinct uploads")
	}
}
