// Package verdant is a content engine for a landscaping business website
// built with Go, Echo, and templ: public pages for the gallery, products,
// catalog, blog and contact sections, plus a password-protected admin panel
// for content editors. Content rows live in SQLite; uploaded images live in
// S3-compatible buckets (or a local directory in development).
//
// Sites provide their own templ components via the ViewFuncs struct; the
// views package ships a default set so a site runs out of the box.
package verdant

import (
	"fmt"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// HomeData feeds the home page: hero section, gallery highlights, and the
// contact strip.
type HomeData struct {
	Hero       *HeroContent
	About      *AboutContent
	Highlights []GalleryItem
	Contact    *ContactInfo
	Posts      []BlogPost
}

// GalleryData feeds the gallery page with its category filter applied.
type GalleryData struct {
	Items      []GalleryItem
	Categories []string
	Active     string
}

// ProductsData feeds the products page; Phone builds per-product inquiry
// links.
type ProductsData struct {
	Items      []ProductItem
	Categories []string
	Active     string
	Phone      string
}

// CatalogData feeds the catalog page: the bounded page cursor plus the page
// image under it.
type CatalogData struct {
	Pages      []CatalogPage
	Page       int
	Total      int
	Current    *CatalogPage
	Fullscreen bool
}

// ContactData feeds the contact page and re-renders the form on validation
// failure.
type ContactData struct {
	Info      *ContactInfo
	Form      ContactMessage
	Error     string
	CSRFToken string
}

// AdminData feeds the admin dashboard with every editable resource.
type AdminData struct {
	Stats      DashboardStats
	Gallery    []GalleryItem
	Products   []ProductItem
	Catalog    []CatalogPage
	Posts      []BlogPost
	About      *AboutContent
	Hero       *HeroContent
	Contact    *ContactInfo
	Logos      *LogoSettings
	Categories []string
	Message    string
	CSRFToken  string
}

// ViewFuncs holds the templ components the engine renders. This is the
// inversion-of-control point that lets sites own all templates.
type ViewFuncs struct {
	Home           func(data HomeData) templ.Component
	About          func(about *AboutContent) templ.Component
	Services       func() templ.Component
	Gallery        func(data GalleryData) templ.Component
	Products       func(data ProductsData) templ.Component
	Catalog        func(data CatalogData) templ.Component
	Contact        func(data ContactData) templ.Component
	BlogPost       func(post BlogPost, posts []BlogPost) templ.Component
	AdminLogin     func(showError bool, csrfToken string) templ.Component
	AdminDashboard func(data AdminData) templ.Component
	NotFound       func() templ.Component
	ServerError    func() templ.Component
}

// App is the central application. It wires together the store, buckets,
// resource accessors, handlers, middleware, and site-provided templates.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Store  *Store
	Blobs  BlobStore
	Views  ViewFuncs
	Log    *zap.Logger

	Gallery  *Gallery
	Products *Products
	Catalog  *Catalog
	Blog     *Blog
	About    *About
	Hero     *Hero
	Contact  *Contact
	Logos    *Logos

	loginLimiter *LoginLimiter
	customRoutes []func(*App)
	staticDir    string
}

// New creates an App with the given configuration and view functions.
func New(cfg SiteConfig, views ViewFuncs, log *zap.Logger, opts ...Option) *App {
	cfg.setDefaults()
	if log == nil {
		log = zap.NewNop()
	}

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Views:     views,
		Log:       log,
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Init opens the store and bucket backend and builds the resource
// accessors, each performing its initial fetch. Split from Start so tests
// can initialize without binding a port.
func (a *App) Init() error {
	if a.Config.AdminPassword == "" {
		return fmt.Errorf("verdant: AdminPassword is required")
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("verdant: SessionSecret is required")
	}

	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("verdant: init store: %w", err)
	}
	a.Store = store
	if err := store.EnsureDefaults(); err != nil {
		return fmt.Errorf("verdant: seed singletons: %w", err)
	}

	if a.Blobs == nil {
		if a.Config.S3 != nil {
			blobs, err := NewS3BlobStore(*a.Config.S3)
			if err != nil {
				return fmt.Errorf("verdant: init bucket store: %w", err)
			}
			a.Blobs = blobs
		} else {
			a.Blobs = NewDirBlobStore(a.Config.UploadsDir, "/uploads")
		}
	}

	a.Gallery = NewGallery(store, a.Blobs, a.Log)
	a.Products = NewProducts(store, a.Blobs, a.Log)
	a.Catalog = NewCatalog(store, a.Blobs, a.Log)
	a.Blog = NewBlog(store, a.Blobs, a.Log)
	a.About = NewAbout(store, a.Blobs, a.Log)
	a.Hero = NewHero(store, a.Log)
	a.Contact = NewContact(store, a.Log)
	a.Logos = NewLogos(store, a.Blobs, a.Log)

	a.loginLimiter = NewLoginLimiter(5, time.Minute)

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

// Start initializes the application and runs the HTTP server.
func (a *App) Start() error {
	if err := a.Init(); err != nil {
		return err
	}
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/public", a.staticDir)
	if dir, ok := a.Blobs.(*DirBlobStore); ok {
		e.Static("/uploads", dir.root)
	}
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)

	// Public pages
	e.GET("/", a.handleHome)
	e.GET("/about/", a.handleAbout)
	e.GET("/services/", a.handleServices)
	e.GET("/gallery/", a.handleGallery)
	e.GET("/products/", a.handleProducts)
	e.GET("/catalog/", a.handleCatalog)
	e.GET("/contact/", a.handleContact)
	e.POST("/contact/", a.handleContactSubmit)
	e.GET("/blog/:id/", a.handleBlogPost)

	// Admin panel
	e.GET("/admin/", a.handleAdmin)
	e.POST("/admin/login/", a.handleAdminLogin)
	e.POST("/admin/logout/", handleAdminLogout)
	e.POST("/admin/gallery/", a.handleGalleryUpload)
	e.DELETE("/admin/gallery/:id/", a.handleGalleryDelete)
	e.POST("/admin/products/", a.handleProductUpload)
	e.DELETE("/admin/products/:id/", a.handleProductDelete)
	e.POST("/admin/catalog/", a.handleCatalogUpload)
	e.DELETE("/admin/catalog/:id/", a.handleCatalogDelete)
	e.POST("/admin/blog/", a.handleBlogCreate)
	e.POST("/admin/blog/:id/", a.handleBlogUpdate)
	e.DELETE("/admin/blog/:id/", a.handleBlogDelete)
	e.POST("/admin/about/", a.handleAboutUpdate)
	e.POST("/admin/about/team/", a.handleTeamMemberAdd)
	e.POST("/admin/hero/", a.handleHeroUpdate)
	e.POST("/admin/contact/", a.handleContactInfoUpdate)
	e.POST("/admin/logo/", a.handleLogoUpload)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}
