package verdant

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

func (a *App) handleHome(c echo.Context) error {
	data := HomeData{}
	if hero, ok := a.Hero.Current(); ok {
		data.Hero = &hero
	}
	if about, ok := a.About.Current(); ok {
		data.About = &about
	}
	if info, ok := a.Contact.Current(); ok {
		data.Contact = &info
	}
	gallery := a.Gallery.Items()
	if len(gallery) > 6 {
		gallery = gallery[:6]
	}
	data.Highlights = gallery
	posts := a.Blog.Items()
	if len(posts) > 3 {
		posts = posts[:3]
	}
	data.Posts = posts
	return Render(c, a.Views.Home(data))
}

func (a *App) handleAbout(c echo.Context) error {
	var about *AboutContent
	if cur, ok := a.About.Current(); ok {
		about = &cur
	}
	return Render(c, a.Views.About(about))
}

func (a *App) handleServices(c echo.Context) error {
	return Render(c, a.Views.Services())
}

func (a *App) handleGallery(c echo.Context) error {
	active := c.QueryParam("category")
	if active == "" {
		active = CategoryAll
	}
	return Render(c, a.Views.Gallery(GalleryData{
		Items:      FilterByCategory(a.Gallery.Items(), active),
		Categories: Categories,
		Active:     active,
	}))
}

func (a *App) handleProducts(c echo.Context) error {
	active := c.QueryParam("category")
	if active == "" {
		active = CategoryAll
	}
	phone := ""
	if info, ok := a.Contact.Current(); ok {
		phone = info.Phone
	}
	return Render(c, a.Views.Products(ProductsData{
		Items:      FilterByCategory(a.Products.Items(), active),
		Categories: Categories,
		Active:     active,
		Phone:      phone,
	}))
}

func (a *App) handleCatalog(c echo.Context) error {
	pages := a.Catalog.Items()
	total := len(pages)
	page, _ := strconv.Atoi(c.QueryParam("page"))
	page = ClampPage(page, total)
	data := CatalogData{
		Pages:      pages,
		Page:       page,
		Total:      total,
		Fullscreen: c.QueryParam("view") == "fullscreen",
	}
	if total > 0 {
		data.Current = &pages[page-1]
	}
	return Render(c, a.Views.Catalog(data))
}

func (a *App) handleContact(c echo.Context) error {
	var info *ContactInfo
	if cur, ok := a.Contact.Current(); ok {
		info = &cur
	}
	return Render(c, a.Views.Contact(ContactData{Info: info, CSRFToken: CsrfToken(c)}))
}

// handleContactSubmit validates the form and redirects into the WhatsApp
// deep link. Nothing is persisted server-side; the messaging app is the
// delivery channel.
func (a *App) handleContactSubmit(c echo.Context) error {
	msg := ContactMessage{
		Name:    c.FormValue("name"),
		Email:   c.FormValue("email"),
		Phone:   c.FormValue("phone"),
		Service: c.FormValue("service"),
		Message: c.FormValue("message"),
	}
	var info *ContactInfo
	if cur, ok := a.Contact.Current(); ok {
		info = &cur
	}
	if err := msg.Validate(); err != nil {
		return Render(c, a.Views.Contact(ContactData{
			Info:      info,
			Form:      msg,
			Error:     "Lütfen tüm zorunlu alanları doldurun.",
			CSRFToken: CsrfToken(c),
		}))
	}
	if info == nil || DialDigits(info.Phone) == "" {
		return Render(c, a.Views.Contact(ContactData{
			Info:      info,
			Form:      msg,
			Error:     "İletişim numarası henüz ayarlanmadı.",
			CSRFToken: CsrfToken(c),
		}))
	}
	return c.Redirect(http.StatusSeeOther, WhatsAppLink(info.Phone, msg))
}

func (a *App) handleBlogPost(c echo.Context) error {
	id := c.Param("id")
	posts := a.Blog.Items()
	for _, p := range posts {
		if p.ID == id {
			return Render(c, a.Views.BlogPost(p, posts))
		}
	}
	return RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.staticDir + "/favicon.svg")
}

// handleRobots generates robots.txt dynamically using the site URL.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /admin/\n\nSitemap: %s/sitemap.xml\n", a.Config.URL)
	return c.String(http.StatusOK, body)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, a.Views.ServerError())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
