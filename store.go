package verdant

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = sql.ErrNoRows

// DecodeError reports a serialized sub-field (values, team_members, stats)
// that could not be parsed back into its structured form.
type DecodeError struct {
	Table string
	Field string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s.%s: %v", e.Table, e.Field, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Store wraps a SQLite database holding every content table of the site.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and runs schema migrations.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL for concurrent read/write, busy timeout so writers wait instead of
	// failing with SQLITE_BUSY, synchronous=NORMAL is safe under WAL.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
		PRAGMA cache_size=-8000;
	`); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS gallery_items (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    category TEXT NOT NULL DEFAULT '',
    image_url TEXT NOT NULL,
    created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS product_items (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    category TEXT NOT NULL DEFAULT '',
    image_url TEXT NOT NULL,
    created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS catalog_pages (
    id TEXT PRIMARY KEY,
    page_number INTEGER NOT NULL,
    image_url TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS blog_posts (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    content TEXT NOT NULL,
    category TEXT NOT NULL,
    image_url TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS about_content (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL DEFAULT '',
    content TEXT NOT NULL DEFAULT '',
    mission TEXT NOT NULL DEFAULT '',
    vision TEXT NOT NULL DEFAULT '',
    "values" TEXT NOT NULL DEFAULT '[]',
    history TEXT NOT NULL DEFAULT '',
    team_members TEXT NOT NULL DEFAULT '[]',
    stats TEXT NOT NULL DEFAULT '{}',
    image_url TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS hero_content (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    background_image TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS contact_info (
    id TEXT PRIMARY KEY,
    phone TEXT NOT NULL DEFAULT '',
    email TEXT NOT NULL DEFAULT '',
    address TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS logo_settings (
    id TEXT PRIMARY KEY,
    header_logo TEXT NOT NULL DEFAULT '',
    footer_logo TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL
);
`)
	return err
}

// EnsureDefaults inserts an empty row for each singleton table that has
// none, so the admin panel always has something to edit.
func (s *Store) EnsureDefaults() error {
	for _, table := range []string{"about_content", "hero_content", "contact_info", "logo_settings"} {
		var n int
		if err := s.db.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&n); err != nil {
			return err
		}
		if n > 0 {
			continue
		}
		_, err := s.db.Exec(
			fmt.Sprintf(`INSERT INTO %s (id, created_at) VALUES (?, ?)`, table),
			uuid.NewString(), nowStamp(),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func nowStamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// --- Gallery and product items ---
//
// Both tables share one row shape; the exported methods pin the table name.

type imageRow struct {
	id, title, description, category, imageURL, createdAt string
}

func (s *Store) listImageRows(table string) ([]imageRow, error) {
	rows, err := s.db.Query(
		`SELECT id, title, description, category, image_url, created_at FROM ` + table +
			` ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []imageRow
	for rows.Next() {
		var r imageRow
		if err := rows.Scan(&r.id, &r.title, &r.description, &r.category, &r.imageURL, &r.createdAt); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

func (s *Store) insertImageRow(table string, r imageRow) (imageRow, error) {
	r.id = uuid.NewString()
	r.createdAt = nowStamp()
	_, err := s.db.Exec(
		`INSERT INTO `+table+` (id, title, description, category, image_url, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		r.id, r.title, r.description, r.category, r.imageURL, r.createdAt)
	return r, err
}

func (s *Store) deleteRow(table, id string) error {
	_, err := s.db.Exec(`DELETE FROM `+table+` WHERE id = ?`, id)
	return err
}

// ListGalleryItems returns all gallery items, newest first.
func (s *Store) ListGalleryItems() ([]GalleryItem, error) {
	rows, err := s.listImageRows("gallery_items")
	if err != nil {
		return nil, err
	}
	items := make([]GalleryItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, GalleryItem{
			ID: r.id, Title: r.title, Description: r.description,
			Category: r.category, ImageURL: r.imageURL, CreatedAt: r.createdAt,
		})
	}
	return items, nil
}

// InsertGalleryItem stores a new gallery item, assigning id and created_at.
func (s *Store) InsertGalleryItem(it GalleryItem) (GalleryItem, error) {
	r, err := s.insertImageRow("gallery_items", imageRow{
		title: it.Title, description: it.Description,
		category: it.Category, imageURL: it.ImageURL,
	})
	if err != nil {
		return GalleryItem{}, err
	}
	it.ID, it.CreatedAt = r.id, r.createdAt
	return it, nil
}

// DeleteGalleryItem removes a gallery item by id.
func (s *Store) DeleteGalleryItem(id string) error {
	return s.deleteRow("gallery_items", id)
}

// ListProductItems returns all products, newest first.
func (s *Store) ListProductItems() ([]ProductItem, error) {
	rows, err := s.listImageRows("product_items")
	if err != nil {
		return nil, err
	}
	items := make([]ProductItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, ProductItem{
			ID: r.id, Title: r.title, Description: r.description,
			Category: r.category, ImageURL: r.imageURL, CreatedAt: r.createdAt,
		})
	}
	return items, nil
}

// InsertProductItem stores a new product, assigning id and created_at.
func (s *Store) InsertProductItem(it ProductItem) (ProductItem, error) {
	r, err := s.insertImageRow("product_items", imageRow{
		title: it.Title, description: it.Description,
		category: it.Category, imageURL: it.ImageURL,
	})
	if err != nil {
		return ProductItem{}, err
	}
	it.ID, it.CreatedAt = r.id, r.createdAt
	return it, nil
}

// DeleteProductItem removes a product by id.
func (s *Store) DeleteProductItem(id string) error {
	return s.deleteRow("product_items", id)
}

// --- Catalog pages ---

// ListCatalogPages returns catalog pages in page-number order.
func (s *Store) ListCatalogPages() ([]CatalogPage, error) {
	rows, err := s.db.Query(`SELECT id, page_number, image_url FROM catalog_pages ORDER BY page_number ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []CatalogPage
	for rows.Next() {
		var p CatalogPage
		if err := rows.Scan(&p.ID, &p.PageNumber, &p.ImageURL); err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}
	return pages, rows.Err()
}

// InsertCatalogPage stores a new catalog page, assigning its id.
func (s *Store) InsertCatalogPage(p CatalogPage) (CatalogPage, error) {
	p.ID = uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO catalog_pages (id, page_number, image_url) VALUES (?, ?, ?)`,
		p.ID, p.PageNumber, p.ImageURL)
	return p, err
}

// MaxCatalogPageNumber returns the highest assigned page number, 0 when the
// catalog is empty. Bulk uploads number new pages after it.
func (s *Store) MaxCatalogPageNumber() (int, error) {
	var n sql.NullInt64
	if err := s.db.QueryRow(`SELECT MAX(page_number) FROM catalog_pages`).Scan(&n); err != nil {
		return 0, err
	}
	return int(n.Int64), nil
}

// DeleteCatalogPage removes a catalog page by id. Remaining pages keep their
// numbers; gaps are expected.
func (s *Store) DeleteCatalogPage(id string) error {
	return s.deleteRow("catalog_pages", id)
}

// --- Blog posts ---

// ListBlogPosts returns all posts, newest first.
func (s *Store) ListBlogPosts() ([]BlogPost, error) {
	rows, err := s.db.Query(
		`SELECT id, title, content, category, image_url, created_at FROM blog_posts ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []BlogPost
	for rows.Next() {
		var p BlogPost
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.Category, &p.ImageURL, &p.CreatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// GetBlogPost returns a single post by id.
func (s *Store) GetBlogPost(id string) (BlogPost, error) {
	var p BlogPost
	err := s.db.QueryRow(
		`SELECT id, title, content, category, image_url, created_at FROM blog_posts WHERE id = ?`, id).
		Scan(&p.ID, &p.Title, &p.Content, &p.Category, &p.ImageURL, &p.CreatedAt)
	return p, err
}

// InsertBlogPost stores a new post, assigning id and created_at.
func (s *Store) InsertBlogPost(p BlogPost) (BlogPost, error) {
	p.ID = uuid.NewString()
	p.CreatedAt = nowStamp()
	_, err := s.db.Exec(
		`INSERT INTO blog_posts (id, title, content, category, image_url, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID, p.Title, p.Content, p.Category, p.ImageURL, p.CreatedAt)
	return p, err
}

// BlogPostFields carries a partial blog post update; nil fields are left
// unchanged.
type BlogPostFields struct {
	Title    *string
	Content  *string
	Category *string
	ImageURL *string
}

// UpdateBlogPost applies the non-nil fields to the post with the given id.
func (s *Store) UpdateBlogPost(id string, f BlogPostFields) error {
	set := ""
	var args []any
	add := func(col string, v *string) {
		if v == nil {
			return
		}
		if set != "" {
			set += ", "
		}
		set += col + " = ?"
		args = append(args, *v)
	}
	add("title", f.Title)
	add("content", f.Content)
	add("category", f.Category)
	add("image_url", f.ImageURL)
	if set == "" {
		return nil
	}
	args = append(args, id)
	_, err := s.db.Exec(`UPDATE blog_posts SET `+set+` WHERE id = ?`, args...)
	return err
}

// DeleteBlogPost removes a post by id.
func (s *Store) DeleteBlogPost(id string) error {
	return s.deleteRow("blog_posts", id)
}

// --- Singleton content ---
//
// Singleton tables may hold legacy rows; the newest row wins.

// GetAboutContent returns the current about record, decoding its serialized
// sub-fields. Returns ErrNotFound when the table is empty.
func (s *Store) GetAboutContent() (AboutContent, error) {
	var c AboutContent
	var values, team, stats string
	err := s.db.QueryRow(
		`SELECT id, title, content, mission, vision, "values", history, team_members, stats, image_url, created_at
		 FROM about_content ORDER BY created_at DESC, rowid DESC LIMIT 1`).
		Scan(&c.ID, &c.Title, &c.Content, &c.Mission, &c.Vision, &values, &c.History, &team, &stats, &c.ImageURL, &c.CreatedAt)
	if err != nil {
		return AboutContent{}, err
	}
	if err := json.Unmarshal([]byte(values), &c.Values); err != nil {
		return AboutContent{}, &DecodeError{Table: "about_content", Field: "values", Err: err}
	}
	if err := json.Unmarshal([]byte(team), &c.TeamMembers); err != nil {
		return AboutContent{}, &DecodeError{Table: "about_content", Field: "team_members", Err: err}
	}
	if err := json.Unmarshal([]byte(stats), &c.Stats); err != nil {
		return AboutContent{}, &DecodeError{Table: "about_content", Field: "stats", Err: err}
	}
	return c, nil
}

// UpdateAboutContent replaces the editable fields of the about row with the
// given id, serializing the structured sub-fields.
func (s *Store) UpdateAboutContent(id string, c AboutContent) error {
	if c.Values == nil {
		c.Values = []string{}
	}
	if c.TeamMembers == nil {
		c.TeamMembers = []TeamMember{}
	}
	values, err := json.Marshal(c.Values)
	if err != nil {
		return err
	}
	team, err := json.Marshal(c.TeamMembers)
	if err != nil {
		return err
	}
	stats, err := json.Marshal(c.Stats)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(
		`UPDATE about_content SET title = ?, content = ?, mission = ?, vision = ?, "values" = ?, history = ?, team_members = ?, stats = ?, image_url = ? WHERE id = ?`,
		c.Title, c.Content, c.Mission, c.Vision, string(values), c.History, string(team), string(stats), c.ImageURL, id)
	return err
}

// GetHeroContent returns the current hero record.
func (s *Store) GetHeroContent() (HeroContent, error) {
	var h HeroContent
	err := s.db.QueryRow(
		`SELECT id, title, description, background_image, created_at
		 FROM hero_content ORDER BY created_at DESC, rowid DESC LIMIT 1`).
		Scan(&h.ID, &h.Title, &h.Description, &h.BackgroundImage, &h.CreatedAt)
	return h, err
}

// UpdateHeroContent replaces the hero row's editable fields.
func (s *Store) UpdateHeroContent(id string, h HeroContent) error {
	_, err := s.db.Exec(
		`UPDATE hero_content SET title = ?, description = ?, background_image = ? WHERE id = ?`,
		h.Title, h.Description, h.BackgroundImage, id)
	return err
}

// GetContactInfo returns the current contact record.
func (s *Store) GetContactInfo() (ContactInfo, error) {
	var c ContactInfo
	err := s.db.QueryRow(
		`SELECT id, phone, email, address, created_at
		 FROM contact_info ORDER BY created_at DESC, rowid DESC LIMIT 1`).
		Scan(&c.ID, &c.Phone, &c.Email, &c.Address, &c.CreatedAt)
	return c, err
}

// UpdateContactInfo replaces the contact row's editable fields.
func (s *Store) UpdateContactInfo(id string, c ContactInfo) error {
	_, err := s.db.Exec(
		`UPDATE contact_info SET phone = ?, email = ?, address = ? WHERE id = ?`,
		c.Phone, c.Email, c.Address, id)
	return err
}

// GetLogoSettings returns the current logo record.
func (s *Store) GetLogoSettings() (LogoSettings, error) {
	var l LogoSettings
	err := s.db.QueryRow(
		`SELECT id, header_logo, footer_logo, created_at
		 FROM logo_settings ORDER BY created_at DESC, rowid DESC LIMIT 1`).
		Scan(&l.ID, &l.HeaderLogo, &l.FooterLogo, &l.CreatedAt)
	return l, err
}

// UpdateLogoSettings replaces whichever logo URLs are non-empty.
func (s *Store) UpdateLogoSettings(id, headerLogo, footerLogo string) error {
	if headerLogo != "" {
		if _, err := s.db.Exec(`UPDATE logo_settings SET header_logo = ? WHERE id = ?`, headerLogo, id); err != nil {
			return err
		}
	}
	if footerLogo != "" {
		if _, err := s.db.Exec(`UPDATE logo_settings SET footer_logo = ? WHERE id = ?`, footerLogo, id); err != nil {
			return err
		}
	}
	return nil
}
