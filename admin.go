package verdant

import (
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

func (a *App) handleAdmin(c echo.Context) error {
	if !IsAdmin(c) {
		return Render(c, a.Views.AdminLogin(false, CsrfToken(c)))
	}
	return a.renderAdminDashboard(c, c.QueryParam("msg"))
}

func (a *App) handleAdminLogin(c echo.Context) error {
	if !a.loginLimiter.Allow(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	pass := c.FormValue("password")
	if subtle.ConstantTimeCompare([]byte(pass), []byte(a.Config.AdminPassword)) == 1 {
		if err := setAdminSession(c); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	return Render(c, a.Views.AdminLogin(true, CsrfToken(c)))
}

func handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

func (a *App) renderAdminDashboard(c echo.Context, msg string) error {
	data := AdminData{
		Stats:      GalleryStats(a.Gallery.Items(), time.Now()),
		Gallery:    a.Gallery.Items(),
		Products:   a.Products.Items(),
		Catalog:    a.Catalog.Items(),
		Posts:      a.Blog.Items(),
		Categories: Categories,
		Message:    msg,
		CSRFToken:  CsrfToken(c),
	}
	if about, ok := a.About.Current(); ok {
		data.About = &about
	}
	if hero, ok := a.Hero.Current(); ok {
		data.Hero = &hero
	}
	if info, ok := a.Contact.Current(); ok {
		data.Contact = &info
	}
	if logos, ok := a.Logos.Current(); ok {
		data.Logos = &logos
	}
	return Render(c, a.Views.AdminDashboard(data))
}

// --- Gallery ---

func (a *App) handleGalleryUpload(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	files, err := formUploads(c, "images")
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return a.renderAdminDashboard(c, "Dosya seçilmedi.")
	}
	item := GalleryItem{
		Title:       strings.TrimSpace(c.FormValue("title")),
		Description: strings.TrimSpace(c.FormValue("description")),
		Category:    c.FormValue("category"),
	}
	added, rejected := a.Gallery.AddBatch(func(int) GalleryItem { return item }, files)
	return a.renderAdminDashboard(c, batchMessage(len(added), rejected))
}

func (a *App) handleGalleryDelete(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	if err := a.Gallery.Remove(c.Param("id"), c.FormValue("image_url")); err != nil {
		return a.renderAdminDashboard(c, "Silme işlemi başarısız oldu.")
	}
	return a.renderAdminDashboard(c, "Öğe silindi.")
}

// --- Products ---

func (a *App) handleProductUpload(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	files, err := formUploads(c, "images")
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return a.renderAdminDashboard(c, "Dosya seçilmedi.")
	}
	item := ProductItem{
		Title:       strings.TrimSpace(c.FormValue("title")),
		Description: strings.TrimSpace(c.FormValue("description")),
		Category:    c.FormValue("category"),
	}
	added, rejected := a.Products.AddBatch(func(int) ProductItem { return item }, files)
	return a.renderAdminDashboard(c, batchMessage(len(added), rejected))
}

func (a *App) handleProductDelete(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	if err := a.Products.Remove(c.Param("id"), c.FormValue("image_url")); err != nil {
		return a.renderAdminDashboard(c, "Silme işlemi başarısız oldu.")
	}
	return a.renderAdminDashboard(c, "Ürün silindi.")
}

// --- Catalog ---

func (a *App) handleCatalogUpload(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	files, err := formUploads(c, "pages")
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return a.renderAdminDashboard(c, "Dosya seçilmedi.")
	}
	added, rejected := a.Catalog.AddPages(files)
	return a.renderAdminDashboard(c, batchMessage(len(added), rejected))
}

func (a *App) handleCatalogDelete(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	if err := a.Catalog.Remove(c.Param("id"), c.FormValue("image_url")); err != nil {
		return a.renderAdminDashboard(c, "Silme işlemi başarısız oldu.")
	}
	return a.renderAdminDashboard(c, "Sayfa silindi.")
}

// --- Blog ---

func (a *App) handleBlogCreate(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	post := BlogPost{
		Title:    strings.TrimSpace(c.FormValue("title")),
		Content:  c.FormValue("content"),
		Category: c.FormValue("category"),
	}
	if post.Title == "" || post.Content == "" || post.Category == "" {
		return a.renderAdminDashboard(c, "Başlık, içerik ve kategori zorunludur.")
	}
	up, err := formUpload(c, "image")
	if err != nil {
		return err
	}
	if _, err := a.Blog.Add(post, up); err != nil {
		return a.renderAdminDashboard(c, "Blog yazısı eklenemedi.")
	}
	return a.renderAdminDashboard(c, "Blog yazısı eklendi.")
}

func (a *App) handleBlogUpdate(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	var fields BlogPostFields
	if v := strings.TrimSpace(c.FormValue("title")); v != "" {
		fields.Title = &v
	}
	if v := c.FormValue("content"); v != "" {
		fields.Content = &v
	}
	if v := c.FormValue("category"); v != "" {
		fields.Category = &v
	}
	if err := a.Blog.Update(c.Param("id"), fields); err != nil {
		return a.renderAdminDashboard(c, "Güncelleme başarısız oldu.")
	}
	return a.renderAdminDashboard(c, "Blog yazısı güncellendi.")
}

func (a *App) handleBlogDelete(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	id := c.Param("id")
	post, err := a.Blog.Get(id)
	if err != nil {
		return a.renderAdminDashboard(c, "Blog yazısı bulunamadı.")
	}
	if err := a.Blog.Remove(id, post.ImageURL); err != nil {
		return a.renderAdminDashboard(c, "Silme işlemi başarısız oldu.")
	}
	return a.renderAdminDashboard(c, "Blog yazısı silindi.")
}

// --- About / team ---

func (a *App) handleAboutUpdate(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	cur, ok := a.About.Current()
	if !ok {
		return a.renderAdminDashboard(c, "Hakkımızda içeriği bulunamadı.")
	}
	cur.Title = strings.TrimSpace(c.FormValue("title"))
	cur.Content = c.FormValue("content")
	cur.Mission = c.FormValue("mission")
	cur.Vision = c.FormValue("vision")
	cur.History = c.FormValue("history")
	if v := c.FormValue("image_url"); v != "" {
		cur.ImageURL = v
	}
	cur.Values = splitLines(c.FormValue("values"))
	cur.Stats = AboutStats{
		YearsExperience:    atoiOrZero(c.FormValue("years_experience")),
		CompletedProjects:  atoiOrZero(c.FormValue("completed_projects")),
		TeamSize:           atoiOrZero(c.FormValue("team_size")),
		ClientSatisfaction: atoiOrZero(c.FormValue("client_satisfaction")),
	}
	if raw := strings.TrimSpace(c.FormValue("team_members")); raw != "" {
		var team []TeamMember
		if err := json.Unmarshal([]byte(raw), &team); err != nil {
			return a.renderAdminDashboard(c, "Ekip üyeleri alanı geçersiz.")
		}
		cur.TeamMembers = team
	}
	if err := a.About.Update(cur); err != nil {
		return a.renderAdminDashboard(c, "Güncelleme başarısız oldu.")
	}
	return a.renderAdminDashboard(c, "Hakkımızda içeriği güncellendi.")
}

func (a *App) handleTeamMemberAdd(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	cur, ok := a.About.Current()
	if !ok {
		return a.renderAdminDashboard(c, "Hakkımızda içeriği bulunamadı.")
	}
	member := TeamMember{
		Name: strings.TrimSpace(c.FormValue("name")),
		Role: strings.TrimSpace(c.FormValue("role")),
		Bio:  c.FormValue("bio"),
	}
	if member.Name == "" || member.Role == "" {
		return a.renderAdminDashboard(c, "İsim ve görev zorunludur.")
	}
	if up, err := formUpload(c, "photo"); err != nil {
		return err
	} else if up != nil {
		url, err := a.About.UploadTeamPhoto(*up)
		if err != nil {
			return a.renderAdminDashboard(c, "Fotoğraf yüklenemedi.")
		}
		member.ImageURL = url
	}
	cur.TeamMembers = append(cur.TeamMembers, member)
	if err := a.About.Update(cur); err != nil {
		return a.renderAdminDashboard(c, "Güncelleme başarısız oldu.")
	}
	return a.renderAdminDashboard(c, "Ekip üyesi eklendi.")
}

// --- Hero / contact / logo ---

func (a *App) handleHeroUpdate(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	err := a.Hero.Update(HeroContent{
		Title:           strings.TrimSpace(c.FormValue("title")),
		Description:     c.FormValue("description"),
		BackgroundImage: c.FormValue("background_image"),
	})
	if err != nil {
		return a.renderAdminDashboard(c, "Güncelleme başarısız oldu.")
	}
	return a.renderAdminDashboard(c, "Hero içeriği güncellendi.")
}

func (a *App) handleContactInfoUpdate(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	err := a.Contact.Update(ContactInfo{
		Phone:   strings.TrimSpace(c.FormValue("phone")),
		Email:   strings.TrimSpace(c.FormValue("email")),
		Address: strings.TrimSpace(c.FormValue("address")),
	})
	if err != nil {
		return a.renderAdminDashboard(c, "Güncelleme başarısız oldu.")
	}
	return a.renderAdminDashboard(c, "İletişim bilgileri güncellendi.")
}

func (a *App) handleLogoUpload(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	up, err := formUpload(c, "logo")
	if err != nil {
		return err
	}
	if up == nil {
		return a.renderAdminDashboard(c, "Dosya seçilmedi.")
	}
	slot := LogoHeader
	if c.FormValue("slot") == string(LogoFooter) {
		slot = LogoFooter
	}
	if err := a.Logos.SetLogo(slot, *up); err != nil {
		return a.renderAdminDashboard(c, "Logo güncellenemedi.")
	}
	return a.renderAdminDashboard(c, "Logo güncellendi.")
}

// --- Form helpers ---

// formUpload reads a single optional file field; nil when the field is
// absent.
func formUpload(c echo.Context, field string) (*Upload, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}
	up, err := readUpload(fh)
	if err != nil {
		return nil, err
	}
	return &up, nil
}

// formUploads reads every file submitted under a multi-file field.
func formUploads(c echo.Context, field string) ([]Upload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil
	}
	var ups []Upload
	for _, fh := range form.File[field] {
		up, err := readUpload(fh)
		if err != nil {
			return nil, err
		}
		ups = append(ups, up)
	}
	return ups, nil
}

func readUpload(fh *multipart.FileHeader) (Upload, error) {
	src, err := fh.Open()
	if err != nil {
		return Upload{}, err
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		return Upload{}, err
	}
	return Upload{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func batchMessage(added int, rejected []UploadError) string {
	if len(rejected) == 0 {
		return fmt.Sprintf("%d dosya yüklendi.", added)
	}
	return fmt.Sprintf("%d dosya yüklendi, %d dosya reddedildi.", added, len(rejected))
}

func splitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if v := strings.TrimSpace(line); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func atoiOrZero(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}
