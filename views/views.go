// Package views ships the default templ components for a verdant site. Sites
// that want a custom look provide their own ViewFuncs instead; nothing in the
// engine depends on this package.
package views

import (
	"context"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/verdantcms/verdant"
)

// Default returns a complete set of view functions rendering the built-in
// theme.
func Default(cfg verdant.SiteConfig) verdant.ViewFuncs {
	v := &defaultViews{cfg: cfg}
	return verdant.ViewFuncs{
		Home:           v.home,
		About:          v.about,
		Services:       v.services,
		Gallery:        v.gallery,
		Products:       v.products,
		Catalog:        v.catalog,
		Contact:        v.contact,
		BlogPost:       v.blogPost,
		AdminLogin:     v.adminLogin,
		AdminDashboard: v.adminDashboard,
		NotFound:       v.notFound,
		ServerError:    v.serverError,
	}
}

type defaultViews struct {
	cfg verdant.SiteConfig
}

// component wraps a builder function as a templ component.
func component(fn func(b *strings.Builder)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		fn(&b)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func esc(s string) string {
	return html.EscapeString(s)
}

// attr escapes a value for use inside a double-quoted HTML attribute.
func attr(s string) string {
	return html.EscapeString(s)
}

var navLinks = []struct {
	Href  string
	Label string
}{
	{"/", "Ana Sayfa"},
	{"/about/", "Hakkımızda"},
	{"/services/", "Hizmetler"},
	{"/gallery/", "Galeri"},
	{"/products/", "Ürünler"},
	{"/catalog/", "Katalog"},
	{"/contact/", "İletişim"},
}

// page writes the document shell shared by every public page.
func (v *defaultViews) page(title, active, jsonLD string, body func(b *strings.Builder)) templ.Component {
	return component(func(b *strings.Builder) {
		b.WriteString("<!DOCTYPE html><html lang=\"tr\"><head>")
		b.WriteString("<meta charset=\"utf-8\"/>")
		b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\"/>")
		b.WriteString("<title>")
		if title != "" {
			b.WriteString(esc(title) + " | ")
		}
		b.WriteString(esc(v.cfg.Name))
		b.WriteString("</title>")
		if v.cfg.Description != "" {
			b.WriteString("<meta name=\"description\" content=\"" + attr(v.cfg.Description) + "\"/>")
		}
		b.WriteString("<link rel=\"icon\" href=\"/favicon.svg\" type=\"image/svg+xml\"/>")
		b.WriteString("<link rel=\"stylesheet\" href=\"/public/styles.css\"/>")
		if jsonLD != "" {
			b.WriteString("<script type=\"application/ld+json\">" + jsonLD + "</script>")
		}
		b.WriteString("</head><body>")

		b.WriteString("<header class=\"site-header\"><nav class=\"nav\">")
		b.WriteString("<a class=\"brand\" href=\"/\">" + esc(v.cfg.Name) + "</a><ul>")
		for _, l := range navLinks {
			cls := ""
			if l.Href == active {
				cls = " class=\"active\""
			}
			b.WriteString("<li><a" + cls + " href=\"" + l.Href + "\">" + l.Label + "</a></li>")
		}
		b.WriteString("</ul></nav></header><main>")

		body(b)

		b.WriteString("</main><footer class=\"site-footer\"><p>&copy; " + esc(v.cfg.Name) + "</p></footer>")
		b.WriteString("</body></html>")
	})
}

func (v *defaultViews) notFound() templ.Component {
	return v.page("Sayfa Bulunamadı", "", "", func(b *strings.Builder) {
		b.WriteString("<section class=\"error-page\"><h1>404</h1>")
		b.WriteString("<p>Aradığınız sayfa bulunamadı.</p>")
		b.WriteString("<a href=\"/\">Ana sayfaya dön</a></section>")
	})
}

func (v *defaultViews) serverError() templ.Component {
	return v.page("Hata", "", "", func(b *strings.Builder) {
		b.WriteString("<section class=\"error-page\"><h1>500</h1>")
		b.WriteString("<p>Bir şeyler ters gitti. Lütfen daha sonra tekrar deneyin.</p></section>")
	})
}
