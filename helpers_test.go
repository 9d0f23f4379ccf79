package verdant

import (
	"strings"
	"testing"
)

func TestBuildURL(t *testing.T) {
	tests := []struct {
		base     string
		segments []string
		want     string
	}{
		{"https://example.com", nil, "https://example.com"},
		{"https://example.com", []string{"blog"}, "https://example.com/blog/"},
		{"https://example.com/", []string{"blog", "abc"}, "https://example.com/blog/abc/"},
	}
	for _, tt := range tests {
		if got := BuildURL(tt.base, tt.segments...); got != tt.want {
			t.Errorf("BuildURL(%q, %v) = %q, want %q", tt.base, tt.segments, got, tt.want)
		}
	}
}

func TestFilterEmpty(t *testing.T) {
	got := FilterEmpty([]string{"Kalite", "", "  ", "Güven"})
	if len(got) != 2 || got[0] != "Kalite" || got[1] != "Güven" {
		t.Errorf("unexpected result: %v", got)
	}
}

func TestLocalBusinessJsonLD(t *testing.T) {
	cfg := SiteConfig{Name: "Verdant", URL: "https://example.com"}
	info := &ContactInfo{Phone: "05551112233", Email: "info@example.com"}

	ld := LocalBusinessJsonLD(cfg, info)
	for _, want := range []string{`"LocalBusiness"`, `"Verdant"`, `"05551112233"`, `"info@example.com"`} {
		if !strings.Contains(ld, want) {
			t.Errorf("JSON-LD missing %s:\n%s", want, ld)
		}
	}

	// Must not panic or emit contact keys without a record.
	ld = LocalBusinessJsonLD(cfg, nil)
	if strings.Contains(ld, "telephone") {
		t.Errorf("nil contact info should omit telephone:\n%s", ld)
	}
}
