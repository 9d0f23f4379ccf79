package views

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/a-h/templ"

	"github.com/verdantcms/verdant"
)

func (v *defaultViews) home(data verdant.HomeData) templ.Component {
	return v.page("", "/", verdant.WebsiteJsonLD(v.cfg), func(b *strings.Builder) {
		b.WriteString("<section class=\"hero\"")
		if data.Hero != nil && data.Hero.BackgroundImage != "" {
			b.WriteString(" style=\"background-image:url('" + attr(data.Hero.BackgroundImage) + "')\"")
		}
		b.WriteString(">")
		if data.Hero != nil {
			b.WriteString("<h1>" + esc(data.Hero.Title) + "</h1>")
			b.WriteString("<p>" + esc(data.Hero.Description) + "</p>")
		} else {
			b.WriteString("<h1>" + esc(v.cfg.Name) + "</h1>")
		}
		b.WriteString("<a class=\"cta\" href=\"/contact/\">Teklif Alın</a></section>")

		if data.About != nil {
			b.WriteString("<section class=\"home-about\"><h2>" + esc(data.About.Title) + "</h2>")
			b.WriteString("<p>" + esc(data.About.Content) + "</p>")
			writeStats(b, data.About.Stats)
			b.WriteString("</section>")
		}

		if len(data.Highlights) > 0 {
			b.WriteString("<section class=\"home-gallery\"><h2>Çalışmalarımızdan</h2><div class=\"grid\">")
			for _, item := range data.Highlights {
				writeCard(b, item.ImageURL, item.Title, item.Description)
			}
			b.WriteString("</div><a href=\"/gallery/\">Tüm galeriyi gör</a></section>")
		}

		if len(data.Posts) > 0 {
			b.WriteString("<section class=\"home-blog\"><h2>Blog</h2><ul>")
			for _, p := range data.Posts {
				b.WriteString("<li><a href=\"/blog/" + url.PathEscape(p.ID) + "/\">" + esc(p.Title) + "</a></li>")
			}
			b.WriteString("</ul></section>")
		}

		if data.Contact != nil {
			b.WriteString("<section class=\"home-contact\"><h2>Bize Ulaşın</h2>")
			writeContactInfo(b, data.Contact)
			b.WriteString("</section>")
		}
	})
}

func (v *defaultViews) about(about *verdant.AboutContent) templ.Component {
	return v.page("Hakkımızda", "/about/", "", func(b *strings.Builder) {
		if about == nil {
			b.WriteString("<section><h1>Hakkımızda</h1><p>İçerik hazırlanıyor.</p></section>")
			return
		}
		b.WriteString("<section class=\"about\"><h1>" + esc(about.Title) + "</h1>")
		if about.ImageURL != "" {
			b.WriteString("<img src=\"" + attr(about.ImageURL) + "\" alt=\"" + attr(about.Title) + "\"/>")
		}
		b.WriteString("<p>" + esc(about.Content) + "</p>")
		if about.Mission != "" {
			b.WriteString("<h2>Misyonumuz</h2><p>" + esc(about.Mission) + "</p>")
		}
		if about.Vision != "" {
			b.WriteString("<h2>Vizyonumuz</h2><p>" + esc(about.Vision) + "</p>")
		}
		if about.History != "" {
			b.WriteString("<h2>Tarihçemiz</h2><p>" + esc(about.History) + "</p>")
		}
		if len(about.Values) > 0 {
			b.WriteString("<h2>Değerlerimiz</h2><ul class=\"values\">")
			for _, val := range about.Values {
				b.WriteString("<li>" + esc(val) + "</li>")
			}
			b.WriteString("</ul>")
		}
		writeStats(b, about.Stats)
		if len(about.TeamMembers) > 0 {
			b.WriteString("<h2>Ekibimiz</h2><div class=\"team grid\">")
			for _, m := range about.TeamMembers {
				b.WriteString("<div class=\"team-member\">")
				if m.ImageURL != "" {
					b.WriteString("<img src=\"" + attr(m.ImageURL) + "\" alt=\"" + attr(m.Name) + "\"/>")
				}
				b.WriteString("<h3>" + esc(m.Name) + "</h3>")
				b.WriteString("<p class=\"role\">" + esc(m.Role) + "</p>")
				if m.Bio != "" {
					b.WriteString("<p>" + esc(m.Bio) + "</p>")
				}
				b.WriteString("</div>")
			}
			b.WriteString("</div>")
		}
		b.WriteString("</section>")
	})
}

var services = []struct {
	Title       string
	Description string
}{
	{"Peyzaj Uygulama", "Bahçe ve açık alan projelerinin anahtar teslim uygulaması."},
	{"Üretim", "Fidan, süs bitkisi ve peyzaj ürünleri üretimi."},
	{"Peyzaj Çizimi", "Teknik çizim ve uygulama projeleri."},
	{"Peyzaj Tasarımı", "Konsept tasarım ve 3B görselleştirme."},
}

func (v *defaultViews) services() templ.Component {
	return v.page("Hizmetler", "/services/", "", func(b *strings.Builder) {
		b.WriteString("<section class=\"services\"><h1>Hizmetlerimiz</h1><div class=\"grid\">")
		for _, s := range services {
			b.WriteString("<div class=\"service\"><h2>" + esc(s.Title) + "</h2><p>" + esc(s.Description) + "</p></div>")
		}
		b.WriteString("</div></section>")
	})
}

func (v *defaultViews) gallery(data verdant.GalleryData) templ.Component {
	return v.page("Galeri", "/gallery/", "", func(b *strings.Builder) {
		b.WriteString("<section class=\"gallery\"><h1>Galeri</h1>")
		writeCategoryPills(b, "/gallery/", data.Categories, data.Active)
		if len(data.Items) == 0 {
			b.WriteString("<p class=\"empty\">Bu kategoride henüz görsel yok.</p>")
		} else {
			b.WriteString("<div class=\"grid\">")
			for _, item := range data.Items {
				writeCard(b, item.ImageURL, item.Title, item.Description)
			}
			b.WriteString("</div>")
		}
		b.WriteString("</section>")
	})
}

func (v *defaultViews) products(data verdant.ProductsData) templ.Component {
	return v.page("Ürünler", "/products/", "", func(b *strings.Builder) {
		b.WriteString("<section class=\"products\"><h1>Ürünler</h1>")
		writeCategoryPills(b, "/products/", data.Categories, data.Active)
		if len(data.Items) == 0 {
			b.WriteString("<p class=\"empty\">Bu kategoride henüz ürün yok.</p>")
		} else {
			b.WriteString("<div class=\"grid\">")
			for _, item := range data.Items {
				b.WriteString("<div class=\"card\">")
				b.WriteString("<img src=\"" + attr(item.ImageURL) + "\" alt=\"" + attr(item.Title) + "\" loading=\"lazy\"/>")
				b.WriteString("<h3>" + esc(item.Title) + "</h3>")
				if item.Description != "" {
					b.WriteString("<p>" + esc(item.Description) + "</p>")
				}
				if data.Phone != "" {
					link := verdant.InquiryLink(data.Phone, item.Title)
					b.WriteString("<a class=\"inquiry\" href=\"" + attr(link) + "\" target=\"_blank\" rel=\"noopener\">Bilgi Al</a>")
				}
				b.WriteString("</div>")
			}
			b.WriteString("</div>")
		}
		b.WriteString("</section>")
	})
}

func (v *defaultViews) catalog(data verdant.CatalogData) templ.Component {
	if data.Fullscreen {
		return v.catalogFullscreen(data)
	}
	return v.page("Katalog", "/catalog/", "", func(b *strings.Builder) {
		b.WriteString("<section class=\"catalog\"><h1>Katalog</h1>")
		if data.Current == nil {
			b.WriteString("<p class=\"empty\">Katalog henüz yüklenmedi.</p></section>")
			return
		}
		b.WriteString("<div class=\"catalog-viewer\">")
		b.WriteString("<img src=\"" + attr(data.Current.ImageURL) + "\" alt=\"Katalog sayfa " + fmt.Sprint(data.Page) + "\"/>")
		writeCatalogNav(b, "/catalog/", data.Page, data.Total)
		b.WriteString(fmt.Sprintf("<a class=\"fullscreen\" href=\"/catalog/?view=fullscreen&amp;page=%d\">Tam ekran</a>", data.Page))
		b.WriteString("</div></section>")
	})
}

// catalogFullscreen is a chromeless viewer with arrow-key navigation.
func (v *defaultViews) catalogFullscreen(data verdant.CatalogData) templ.Component {
	return component(func(b *strings.Builder) {
		b.WriteString("<!DOCTYPE html><html lang=\"tr\"><head><meta charset=\"utf-8\"/>")
		b.WriteString("<title>Katalog | " + esc(v.cfg.Name) + "</title>")
		b.WriteString("<link rel=\"stylesheet\" href=\"/public/styles.css\"/>")
		b.WriteString("</head><body class=\"catalog-fullscreen\">")
		if data.Current != nil {
			b.WriteString("<img src=\"" + attr(data.Current.ImageURL) + "\" alt=\"Katalog sayfa " + fmt.Sprint(data.Page) + "\"/>")
			writeCatalogNav(b, "/catalog/?view=fullscreen", data.Page, data.Total)
		}
		b.WriteString(fmt.Sprintf("<a class=\"exit\" href=\"/catalog/?page=%d\">Çıkış</a>", data.Page))
		prev := data.Page
		if prev > 1 {
			prev--
		}
		next := data.Page
		if next < data.Total {
			next++
		}
		b.WriteString(fmt.Sprintf(`<script>
document.addEventListener("keydown", function (e) {
  if (e.key === "ArrowLeft") { window.location = "/catalog/?view=fullscreen&page=%d"; }
  if (e.key === "ArrowRight") { window.location = "/catalog/?view=fullscreen&page=%d"; }
  if (e.key === "Escape") { window.location = "/catalog/?page=%d"; }
});
</script>`, prev, next, data.Page))
		b.WriteString("</body></html>")
	})
}

func (v *defaultViews) contact(data verdant.ContactData) templ.Component {
	return v.page("İletişim", "/contact/", verdant.LocalBusinessJsonLD(v.cfg, data.Info), func(b *strings.Builder) {
		b.WriteString("<section class=\"contact\"><h1>İletişim</h1>")
		if data.Info != nil {
			writeContactInfo(b, data.Info)
		}
		if data.Error != "" {
			b.WriteString("<p class=\"form-error\">" + esc(data.Error) + "</p>")
		}
		b.WriteString("<form method=\"post\" action=\"/contact/\">")
		b.WriteString("<input type=\"hidden\" name=\"_csrf\" value=\"" + attr(data.CSRFToken) + "\"/>")
		writeField(b, "name", "Ad Soyad *", "text", data.Form.Name)
		writeField(b, "email", "E-posta *", "email", data.Form.Email)
		writeField(b, "phone", "Telefon", "tel", data.Form.Phone)
		b.WriteString("<label>Hizmet<select name=\"service\">")
		b.WriteString("<option value=\"\">Seçiniz</option>")
		for _, s := range services {
			sel := ""
			if s.Title == data.Form.Service {
				sel = " selected"
			}
			b.WriteString("<option" + sel + ">" + esc(s.Title) + "</option>")
		}
		b.WriteString("</select></label>")
		b.WriteString("<label>Mesaj *<textarea name=\"message\" rows=\"5\">" + esc(data.Form.Message) + "</textarea></label>")
		b.WriteString("<button type=\"submit\">WhatsApp ile Gönder</button>")
		b.WriteString("</form></section>")
	})
}

func (v *defaultViews) blogPost(post verdant.BlogPost, posts []verdant.BlogPost) templ.Component {
	return v.page(post.Title, "", "", func(b *strings.Builder) {
		b.WriteString("<article class=\"blog-post\"><h1>" + esc(post.Title) + "</h1>")
		b.WriteString("<p class=\"meta\">" + esc(post.Category) + " &middot; " + esc(post.CreatedAt) + "</p>")
		if post.ImageURL != "" {
			b.WriteString("<img src=\"" + attr(post.ImageURL) + "\" alt=\"" + attr(post.Title) + "\"/>")
		}
		b.WriteString("<div class=\"content\">" + markdownHTML(post.Content) + "</div></article>")

		var others []verdant.BlogPost
		for _, p := range posts {
			if p.ID != post.ID {
				others = append(others, p)
			}
		}
		if len(others) > 3 {
			others = others[:3]
		}
		if len(others) > 0 {
			b.WriteString("<aside class=\"more-posts\"><h2>Diğer Yazılar</h2><ul>")
			for _, p := range others {
				b.WriteString("<li><a href=\"/blog/" + url.PathEscape(p.ID) + "/\">" + esc(p.Title) + "</a></li>")
			}
			b.WriteString("</ul></aside>")
		}
	})
}

// --- shared fragments ---

func writeCard(b *strings.Builder, imageURL, title, description string) {
	b.WriteString("<div class=\"card\">")
	b.WriteString("<img src=\"" + attr(imageURL) + "\" alt=\"" + attr(title) + "\" loading=\"lazy\"/>")
	if title != "" {
		b.WriteString("<h3>" + esc(title) + "</h3>")
	}
	if description != "" {
		b.WriteString("<p>" + esc(description) + "</p>")
	}
	b.WriteString("</div>")
}

func writeCategoryPills(b *strings.Builder, base string, categories []string, active string) {
	b.WriteString("<nav class=\"categories\">")
	cls := ""
	if active == verdant.CategoryAll {
		cls = " class=\"active\""
	}
	b.WriteString("<a" + cls + " href=\"" + base + "\">Tümü</a>")
	for _, cat := range categories {
		cls = ""
		if cat == active {
			cls = " class=\"active\""
		}
		b.WriteString("<a" + cls + " href=\"" + base + "?category=" + url.QueryEscape(cat) + "\">" + esc(cat) + "</a>")
	}
	b.WriteString("</nav>")
}

func writeCatalogNav(b *strings.Builder, base string, page, total int) {
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&amp;"
	}
	b.WriteString("<div class=\"catalog-nav\">")
	if page > 1 {
		b.WriteString(fmt.Sprintf("<a href=\"%s%spage=%d\">&larr; Önceki</a>", base, sep, page-1))
	}
	b.WriteString(fmt.Sprintf("<span>%d / %d</span>", page, total))
	if page < total {
		b.WriteString(fmt.Sprintf("<a href=\"%s%spage=%d\">Sonraki &rarr;</a>", base, sep, page+1))
	}
	b.WriteString("</div>")
}

func writeContactInfo(b *strings.Builder, info *verdant.ContactInfo) {
	b.WriteString("<div class=\"contact-info\">")
	if info.Phone != "" {
		b.WriteString("<p><a href=\"tel:" + attr(verdant.DialDigits(info.Phone)) + "\">" + esc(info.Phone) + "</a></p>")
	}
	if info.Email != "" {
		b.WriteString("<p><a href=\"mailto:" + attr(info.Email) + "\">" + esc(info.Email) + "</a></p>")
	}
	if info.Address != "" {
		b.WriteString("<p>" + esc(info.Address) + "</p>")
	}
	b.WriteString("</div>")
}

func writeStats(b *strings.Builder, stats verdant.AboutStats) {
	if stats == (verdant.AboutStats{}) {
		return
	}
	b.WriteString("<div class=\"stats\">")
	writeStat(b, stats.YearsExperience, "Yıllık Deneyim")
	writeStat(b, stats.CompletedProjects, "Tamamlanan Proje")
	writeStat(b, stats.TeamSize, "Ekip Üyesi")
	writeStat(b, stats.ClientSatisfaction, "Müşteri Memnuniyeti (%)")
	b.WriteString("</div>")
}

func writeStat(b *strings.Builder, n int, label string) {
	if n <= 0 {
		return
	}
	b.WriteString(fmt.Sprintf("<div class=\"stat\"><strong>%d</strong><span>%s</span></div>", n, label))
}

func writeField(b *strings.Builder, name, label, typ, value string) {
	b.WriteString("<label>" + esc(label))
	b.WriteString("<input type=\"" + typ + "\" name=\"" + name + "\" value=\"" + attr(value) + "\"/>")
	b.WriteString("</label>")
}
