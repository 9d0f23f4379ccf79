package views

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/a-h/templ"

	"github.com/verdantcms/verdant"
)

func (v *defaultViews) adminLogin(showError bool, csrfToken string) templ.Component {
	return component(func(b *strings.Builder) {
		b.WriteString("<!DOCTYPE html><html lang=\"tr\"><head><meta charset=\"utf-8\"/>")
		b.WriteString("<title>Yönetim | " + esc(v.cfg.Name) + "</title>")
		b.WriteString("<link rel=\"stylesheet\" href=\"/public/styles.css\"/>")
		b.WriteString("</head><body class=\"admin-login\">")
		b.WriteString("<form method=\"post\" action=\"/admin/login/\">")
		b.WriteString("<h1>Yönetim Paneli</h1>")
		if showError {
			b.WriteString("<p class=\"form-error\">Hatalı şifre.</p>")
		}
		b.WriteString("<input type=\"hidden\" name=\"_csrf\" value=\"" + attr(csrfToken) + "\"/>")
		b.WriteString("<input type=\"password\" name=\"password\" placeholder=\"Şifre\" autofocus/>")
		b.WriteString("<button type=\"submit\">Giriş</button>")
		b.WriteString("</form></body></html>")
	})
}

func (v *defaultViews) adminDashboard(data verdant.AdminData) templ.Component {
	return component(func(b *strings.Builder) {
		b.WriteString("<!DOCTYPE html><html lang=\"tr\"><head><meta charset=\"utf-8\"/>")
		b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\"/>")
		b.WriteString("<title>Yönetim | " + esc(v.cfg.Name) + "</title>")
		b.WriteString("<link rel=\"stylesheet\" href=\"/public/styles.css\"/>")
		b.WriteString("</head><body class=\"admin\">")

		b.WriteString("<header class=\"admin-header\"><h1>" + esc(v.cfg.Name) + " Yönetim</h1>")
		b.WriteString("<form method=\"post\" action=\"/admin/logout/\">")
		b.WriteString(csrfInput(data.CSRFToken))
		b.WriteString("<button type=\"submit\">Çıkış</button></form></header>")

		if data.Message != "" {
			b.WriteString("<p class=\"admin-message\">" + esc(data.Message) + "</p>")
		}

		b.WriteString("<section class=\"admin-stats\">")
		b.WriteString(fmt.Sprintf("<div><strong>%d</strong><span>Toplam Görsel</span></div>", data.Stats.TotalImages))
		b.WriteString(fmt.Sprintf("<div><strong>%d</strong><span>Kategori</span></div>", len(data.Stats.CategoryCount)))
		b.WriteString(fmt.Sprintf("<div><strong>%d</strong><span>Son 7 Gün</span></div>", data.Stats.RecentUploads))
		b.WriteString("</section>")

		v.imageSection(b, data, "Galeri", "/admin/gallery/", "images", galleryRows(data.Gallery))
		v.imageSection(b, data, "Ürünler", "/admin/products/", "images", productRows(data.Products))
		v.catalogSection(b, data)
		v.blogSection(b, data)
		v.aboutSection(b, data)
		v.heroSection(b, data)
		v.contactSection(b, data)
		v.logoSection(b, data)

		b.WriteString(deleteScript(data.CSRFToken))
		b.WriteString("</body></html>")
	})
}

type adminRow struct {
	ID       string
	Label    string
	ImageURL string
}

func galleryRows(items []verdant.GalleryItem) []adminRow {
	rows := make([]adminRow, 0, len(items))
	for _, it := range items {
		rows = append(rows, adminRow{ID: it.ID, Label: it.Title, ImageURL: it.ImageURL})
	}
	return rows
}

func productRows(items []verdant.ProductItem) []adminRow {
	rows := make([]adminRow, 0, len(items))
	for _, it := range items {
		rows = append(rows, adminRow{ID: it.ID, Label: it.Title, ImageURL: it.ImageURL})
	}
	return rows
}

// imageSection renders a multi-file upload form plus the existing rows with
// delete buttons. Gallery and products share the shape.
func (v *defaultViews) imageSection(b *strings.Builder, data verdant.AdminData, title, action, field string, rows []adminRow) {
	b.WriteString("<section class=\"admin-section\"><h2>" + esc(title) + "</h2>")
	b.WriteString("<form method=\"post\" action=\"" + action + "\" enctype=\"multipart/form-data\">")
	b.WriteString(csrfInput(data.CSRFToken))
	b.WriteString("<input type=\"text\" name=\"title\" placeholder=\"Başlık\"/>")
	b.WriteString("<input type=\"text\" name=\"description\" placeholder=\"Açıklama\"/>")
	b.WriteString(categorySelect(data.Categories, ""))
	b.WriteString("<input type=\"file\" name=\"" + field + "\" accept=\"image/*\" multiple/>")
	b.WriteString("<button type=\"submit\">Yükle</button></form>")
	b.WriteString("<ul class=\"admin-items\">")
	for _, r := range rows {
		b.WriteString("<li><img src=\"" + attr(r.ImageURL) + "\" alt=\"\"/><span>" + esc(r.Label) + "</span>")
		b.WriteString(deleteButton(action+url.PathEscape(r.ID)+"/", r.ImageURL))
		b.WriteString("</li>")
	}
	b.WriteString("</ul></section>")
}

func (v *defaultViews) catalogSection(b *strings.Builder, data verdant.AdminData) {
	b.WriteString("<section class=\"admin-section\"><h2>Katalog</h2>")
	b.WriteString("<form method=\"post\" action=\"/admin/catalog/\" enctype=\"multipart/form-data\">")
	b.WriteString(csrfInput(data.CSRFToken))
	b.WriteString("<input type=\"file\" name=\"pages\" accept=\"image/*\" multiple/>")
	b.WriteString("<button type=\"submit\">Sayfaları Ekle</button></form>")
	b.WriteString("<ul class=\"admin-items\">")
	for _, p := range data.Catalog {
		b.WriteString(fmt.Sprintf("<li><img src=\"%s\" alt=\"\"/><span>Sayfa %d</span>", attr(p.ImageURL), p.PageNumber))
		b.WriteString(deleteButton("/admin/catalog/"+url.PathEscape(p.ID)+"/", p.ImageURL))
		b.WriteString("</li>")
	}
	b.WriteString("</ul></section>")
}

func (v *defaultViews) blogSection(b *strings.Builder, data verdant.AdminData) {
	b.WriteString("<section class=\"admin-section\"><h2>Blog</h2>")
	b.WriteString("<form method=\"post\" action=\"/admin/blog/\" enctype=\"multipart/form-data\">")
	b.WriteString(csrfInput(data.CSRFToken))
	b.WriteString("<input type=\"text\" name=\"title\" placeholder=\"Başlık\"/>")
	b.WriteString(categorySelect(data.Categories, ""))
	b.WriteString("<textarea name=\"content\" rows=\"6\" placeholder=\"İçerik (Markdown)\"></textarea>")
	b.WriteString("<input type=\"file\" name=\"image\" accept=\"image/*\"/>")
	b.WriteString("<button type=\"submit\">Yayınla</button></form>")

	for _, p := range data.Posts {
		b.WriteString("<details class=\"admin-post\"><summary>" + esc(p.Title) + "</summary>")
		b.WriteString("<form method=\"post\" action=\"/admin/blog/" + url.PathEscape(p.ID) + "/\">")
		b.WriteString(csrfInput(data.CSRFToken))
		b.WriteString("<input type=\"text\" name=\"title\" value=\"" + attr(p.Title) + "\"/>")
		b.WriteString(categorySelect(data.Categories, p.Category))
		b.WriteString("<textarea name=\"content\" rows=\"6\">" + esc(p.Content) + "</textarea>")
		b.WriteString("<button type=\"submit\">Kaydet</button></form>")
		b.WriteString(deleteButton("/admin/blog/"+url.PathEscape(p.ID)+"/", p.ImageURL))
		b.WriteString("</details>")
	}
	b.WriteString("</section>")
}

func (v *defaultViews) aboutSection(b *strings.Builder, data verdant.AdminData) {
	b.WriteString("<section class=\"admin-section\"><h2>Hakkımızda</h2>")
	about := data.About
	if about == nil {
		about = &verdant.AboutContent{}
	}
	b.WriteString("<form method=\"post\" action=\"/admin/about/\">")
	b.WriteString(csrfInput(data.CSRFToken))
	b.WriteString("<input type=\"text\" name=\"title\" value=\"" + attr(about.Title) + "\" placeholder=\"Başlık\"/>")
	b.WriteString("<textarea name=\"content\" rows=\"4\" placeholder=\"İçerik\">" + esc(about.Content) + "</textarea>")
	b.WriteString("<textarea name=\"mission\" rows=\"2\" placeholder=\"Misyon\">" + esc(about.Mission) + "</textarea>")
	b.WriteString("<textarea name=\"vision\" rows=\"2\" placeholder=\"Vizyon\">" + esc(about.Vision) + "</textarea>")
	b.WriteString("<textarea name=\"history\" rows=\"2\" placeholder=\"Tarihçe\">" + esc(about.History) + "</textarea>")
	b.WriteString("<textarea name=\"values\" rows=\"3\" placeholder=\"Değerler (her satıra bir tane)\">" + esc(strings.Join(about.Values, "\n")) + "</textarea>")
	b.WriteString(intField("years_experience", "Yıllık deneyim", about.Stats.YearsExperience))
	b.WriteString(intField("completed_projects", "Tamamlanan proje", about.Stats.CompletedProjects))
	b.WriteString(intField("team_size", "Ekip büyüklüğü", about.Stats.TeamSize))
	b.WriteString(intField("client_satisfaction", "Müşteri memnuniyeti", about.Stats.ClientSatisfaction))
	b.WriteString("<button type=\"submit\">Kaydet</button></form>")

	b.WriteString("<h3>Ekip Üyesi Ekle</h3>")
	b.WriteString("<form method=\"post\" action=\"/admin/about/team/\" enctype=\"multipart/form-data\">")
	b.WriteString(csrfInput(data.CSRFToken))
	b.WriteString("<input type=\"text\" name=\"name\" placeholder=\"İsim\"/>")
	b.WriteString("<input type=\"text\" name=\"role\" placeholder=\"Görev\"/>")
	b.WriteString("<textarea name=\"bio\" rows=\"2\" placeholder=\"Kısa özgeçmiş\"></textarea>")
	b.WriteString("<input type=\"file\" name=\"photo\" accept=\"image/*\"/>")
	b.WriteString("<button type=\"submit\">Ekle</button></form>")
	if about != nil && len(about.TeamMembers) > 0 {
		b.WriteString("<ul class=\"admin-items\">")
		for _, m := range about.TeamMembers {
			b.WriteString("<li><span>" + esc(m.Name) + " — " + esc(m.Role) + "</span></li>")
		}
		b.WriteString("</ul>")
	}
	b.WriteString("</section>")
}

func (v *defaultViews) heroSection(b *strings.Builder, data verdant.AdminData) {
	hero := data.Hero
	if hero == nil {
		hero = &verdant.HeroContent{}
	}
	b.WriteString("<section class=\"admin-section\"><h2>Hero</h2>")
	b.WriteString("<form method=\"post\" action=\"/admin/hero/\">")
	b.WriteString(csrfInput(data.CSRFToken))
	b.WriteString("<input type=\"text\" name=\"title\" value=\"" + attr(hero.Title) + "\" placeholder=\"Başlık\"/>")
	b.WriteString("<textarea name=\"description\" rows=\"2\" placeholder=\"Açıklama\">" + esc(hero.Description) + "</textarea>")
	b.WriteString("<input type=\"text\" name=\"background_image\" value=\"" + attr(hero.BackgroundImage) + "\" placeholder=\"Arka plan görsel URL\"/>")
	b.WriteString("<button type=\"submit\">Kaydet</button></form></section>")
}

func (v *defaultViews) contactSection(b *strings.Builder, data verdant.AdminData) {
	info := data.Contact
	if info == nil {
		info = &verdant.ContactInfo{}
	}
	b.WriteString("<section class=\"admin-section\"><h2>İletişim Bilgileri</h2>")
	b.WriteString("<form method=\"post\" action=\"/admin/contact/\">")
	b.WriteString(csrfInput(data.CSRFToken))
	b.WriteString("<input type=\"text\" name=\"phone\" value=\"" + attr(info.Phone) + "\" placeholder=\"Telefon (WhatsApp)\"/>")
	b.WriteString("<input type=\"email\" name=\"email\" value=\"" + attr(info.Email) + "\" placeholder=\"E-posta\"/>")
	b.WriteString("<input type=\"text\" name=\"address\" value=\"" + attr(info.Address) + "\" placeholder=\"Adres\"/>")
	b.WriteString("<button type=\"submit\">Kaydet</button></form></section>")
}

func (v *defaultViews) logoSection(b *strings.Builder, data verdant.AdminData) {
	b.WriteString("<section class=\"admin-section\"><h2>Logolar</h2>")
	for _, slot := range []verdant.LogoSlot{verdant.LogoHeader, verdant.LogoFooter} {
		label := "Üst Logo"
		current := ""
		if data.Logos != nil {
			current = data.Logos.HeaderLogo
		}
		if slot == verdant.LogoFooter {
			label = "Alt Logo"
			if data.Logos != nil {
				current = data.Logos.FooterLogo
			}
		}
		b.WriteString("<form method=\"post\" action=\"/admin/logo/\" enctype=\"multipart/form-data\">")
		b.WriteString(csrfInput(data.CSRFToken))
		b.WriteString("<input type=\"hidden\" name=\"slot\" value=\"" + string(slot) + "\"/>")
		if current != "" {
			b.WriteString("<img class=\"logo-preview\" src=\"" + attr(current) + "\" alt=\"\"/>")
		}
		b.WriteString("<label>" + label + "<input type=\"file\" name=\"logo\" accept=\"image/*\"/></label>")
		b.WriteString("<button type=\"submit\">Güncelle</button></form>")
	}
	b.WriteString("</section>")
}

// --- fragments ---

func csrfInput(token string) string {
	return "<input type=\"hidden\" name=\"_csrf\" value=\"" + attr(token) + "\"/>"
}

func categorySelect(categories []string, selected string) string {
	var b strings.Builder
	b.WriteString("<select name=\"category\">")
	for _, c := range categories {
		sel := ""
		if c == selected {
			sel = " selected"
		}
		b.WriteString("<option" + sel + ">" + esc(c) + "</option>")
	}
	b.WriteString("</select>")
	return b.String()
}

func intField(name, placeholder string, value int) string {
	return fmt.Sprintf("<input type=\"number\" name=\"%s\" value=\"%d\" placeholder=\"%s\"/>", name, value, attr(placeholder))
}

func deleteButton(path, imageURL string) string {
	return "<button class=\"delete\" data-path=\"" + attr(path) + "\" data-image=\"" + attr(imageURL) + "\">Sil</button>"
}

// deleteScript submits DELETE requests for the data-path buttons, carrying
// the CSRF token in the header the middleware checks.
func deleteScript(token string) string {
	return `<script>
document.querySelectorAll("button.delete").forEach(function (btn) {
  btn.addEventListener("click", function () {
    if (!confirm("Silinsin mi?")) return;
    var body = new URLSearchParams();
    body.set("image_url", btn.dataset.image || "");
    fetch(btn.dataset.path, {
      method: "DELETE",
      headers: {
        "X-CSRF-Token": "` + attr(token) + `",
        "Content-Type": "application/x-www-form-urlencoded"
      },
      body: body
    }).then(function () { window.location.reload(); });
  });
});
</script>`
}
