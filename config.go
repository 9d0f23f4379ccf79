package verdant

// SiteConfig holds all configuration for a verdant site.
type SiteConfig struct {
	Name        string // Site name (default "Verdant")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Site description for meta tags

	Addr         string // Listen address (default ":3000")
	DatabasePath string // SQLite path (default "data/site.db")

	AdminPassword string // Required: admin login password
	SessionSecret string // Required: session encryption secret
	CookieSecure  bool   // Set true for HTTPS

	// S3 selects the bucket backend. When nil, blobs are kept on local disk
	// under UploadsDir and served at /uploads.
	S3         *S3Config
	UploadsDir string // Local blob root (default "data/uploads")
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Verdant"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/site.db"
	}
	if c.UploadsDir == "" {
		c.UploadsDir = "data/uploads"
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance before
// the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for site-owned static assets (default
// "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithBlobStore overrides the bucket backend, e.g. for tests.
func WithBlobStore(b BlobStore) Option {
	return func(a *App) {
		a.Blobs = b
	}
}
