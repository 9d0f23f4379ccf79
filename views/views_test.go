package views

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"github.com/verdantcms/verdant"
)

func renderToString(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return buf.String()
}

func TestHomeRendersHero(t *testing.T) {
	v := Default(verdant.SiteConfig{Name: "Verdant Peyzaj"})

	html := renderToString(t, v.Home(verdant.HomeData{
		Hero: &verdant.HeroContent{Title: "Doğayla Tasarım", Description: "20 yıllık deneyim"},
	}))

	if !strings.Contains(html, "Doğayla Tasarım") {
		t.Error("hero title missing")
	}
	if !strings.Contains(html, "Verdant Peyzaj") {
		t.Error("site name missing")
	}
}

func TestHomeEscapesContent(t *testing.T) {
	v := Default(verdant.SiteConfig{Name: "Verdant"})

	html := renderToString(t, v.Home(verdant.HomeData{
		Hero: &verdant.HeroContent{Title: `<script>alert("x")</script>`},
	}))

	if strings.Contains(html, `<script>alert`) {
		t.Error("user content must be escaped")
	}
}

func TestGalleryActiveCategory(t *testing.T) {
	v := Default(verdant.SiteConfig{Name: "Verdant"})

	html := renderToString(t, v.Gallery(verdant.GalleryData{
		Items:      []verdant.GalleryItem{{Title: "Teras", ImageURL: "/uploads/gallery/t.jpg", Category: "Uygulama"}},
		Categories: verdant.Categories,
		Active:     "Uygulama",
	}))

	if !strings.Contains(html, "class=\"active\" href=\"/gallery/?category=Uygulama\"") {
		t.Error("active category pill missing")
	}
	if !strings.Contains(html, "/uploads/gallery/t.jpg") {
		t.Error("item image missing")
	}
}

func TestContactRendersValidationError(t *testing.T) {
	v := Default(verdant.SiteConfig{Name: "Verdant"})

	html := renderToString(t, v.Contact(verdant.ContactData{
		Form:      verdant.ContactMessage{Name: "Ali"},
		Error:     "Lütfen tüm zorunlu alanları doldurun.",
		CSRFToken: "tok123",
	}))

	if !strings.Contains(html, "Lütfen tüm zorunlu alanları doldurun.") {
		t.Error("validation error missing")
	}
	if !strings.Contains(html, `value="Ali"`) {
		t.Error("entered values should be re-rendered")
	}
	if !strings.Contains(html, `name="_csrf" value="tok123"`) {
		t.Error("csrf token missing")
	}
}

func TestAdminDashboardSections(t *testing.T) {
	v := Default(verdant.SiteConfig{Name: "Verdant"})

	html := renderToString(t, v.AdminDashboard(verdant.AdminData{
		Categories: verdant.Categories,
		CSRFToken:  "tok123",
		Posts:      []verdant.BlogPost{{ID: "p1", Title: "Bakım rehberi"}},
	}))

	for _, want := range []string{"/admin/gallery/", "/admin/products/", "/admin/catalog/", "/admin/blog/", "/admin/hero/", "/admin/contact/", "/admin/logo/", "Bakım rehberi"} {
		if !strings.Contains(html, want) {
			t.Errorf("dashboard missing %q", want)
		}
	}
}

func TestMarkdown(t *testing.T) {
	html := renderToString(t, Markdown("# Başlık\n\n**kalın** metin"))
	if !strings.Contains(html, "<h1") || !strings.Contains(html, "<strong>kalın</strong>") {
		t.Errorf("markdown not converted:\n%s", html)
	}
}
