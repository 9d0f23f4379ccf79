package verdant

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrUpdateUnsupported is returned by accessors whose items are managed by
// delete-and-recreate rather than in-place edits.
var ErrUpdateUnsupported = errors.New("resource does not support in-place updates")

// Gallery is the accessor for gallery photos.
type Gallery struct {
	*Collection[GalleryItem]
}

// NewGallery builds the gallery accessor and performs its initial fetch.
func NewGallery(store *Store, blobs BlobStore, log *zap.Logger) *Gallery {
	c := newCollection("gallery", BucketGallery, blobs, log,
		store.ListGalleryItems,
		store.InsertGalleryItem,
		store.DeleteGalleryItem,
		func(it GalleryItem, url string) GalleryItem { it.ImageURL = url; return it },
	)
	c.makeThumb = MakeThumbnail
	return &Gallery{c}
}

// Products is the accessor for product photos.
type Products struct {
	*Collection[ProductItem]
}

// NewProducts builds the products accessor and performs its initial fetch.
func NewProducts(store *Store, blobs BlobStore, log *zap.Logger) *Products {
	c := newCollection("products", BucketProducts, blobs, log,
		store.ListProductItems,
		store.InsertProductItem,
		store.DeleteProductItem,
		func(it ProductItem, url string) ProductItem { it.ImageURL = url; return it },
	)
	c.makeThumb = MakeThumbnail
	return &Products{c}
}

// Catalog is the accessor for catalog pages.
type Catalog struct {
	*Collection[CatalogPage]
	store *Store
}

// NewCatalog builds the catalog accessor and performs its initial fetch.
func NewCatalog(store *Store, blobs BlobStore, log *zap.Logger) *Catalog {
	c := newCollection("catalog", BucketCatalog, blobs, log,
		store.ListCatalogPages,
		store.InsertCatalogPage,
		store.DeleteCatalogPage,
		func(p CatalogPage, url string) CatalogPage { p.ImageURL = url; return p },
	)
	c.makeThumb = MakeThumbnail
	return &Catalog{Collection: c, store: store}
}

// AddPages bulk-uploads catalog pages. Array position determines the page
// number, continuing after the current maximum; a rejected file leaves a gap
// rather than shifting later pages.
func (c *Catalog) AddPages(files []Upload) ([]CatalogPage, []UploadError) {
	base, err := c.store.MaxCatalogPageNumber()
	if err != nil {
		return nil, []UploadError{{Name: "catalog", Err: fmt.Errorf("read page numbers: %w", err)}}
	}
	return c.AddBatch(func(i int) CatalogPage {
		return CatalogPage{PageNumber: base + i + 1}
	}, files)
}

// Blog is the accessor for blog posts.
type Blog struct {
	*Collection[BlogPost]
	store *Store
}

// NewBlog builds the blog accessor and performs its initial fetch.
func NewBlog(store *Store, blobs BlobStore, log *zap.Logger) *Blog {
	c := newCollection("blog", BucketBlog, blobs, log,
		store.ListBlogPosts,
		store.InsertBlogPost,
		store.DeleteBlogPost,
		func(p BlogPost, url string) BlogPost { p.ImageURL = url; return p },
	)
	return &Blog{Collection: c, store: store}
}

// Update applies a partial edit to a post and refreshes the cache.
func (b *Blog) Update(id string, fields BlogPostFields) error {
	if err := b.store.UpdateBlogPost(id, fields); err != nil {
		return fmt.Errorf("update blog post: %w", err)
	}
	b.refreshAfterMutation()
	return nil
}

// Get returns one post by id, bypassing the cache.
func (b *Blog) Get(id string) (BlogPost, error) {
	return b.store.GetBlogPost(id)
}

// About is the accessor for the singleton about record, including team
// member photo uploads.
type About struct {
	*Singleton[AboutContent]
	store *Store
	blobs BlobStore
}

// NewAbout builds the about accessor and performs its initial fetch.
func NewAbout(store *Store, blobs BlobStore, log *zap.Logger) *About {
	return &About{
		Singleton: newSingleton("about", log, store.GetAboutContent),
		store:     store,
		blobs:     blobs,
	}
}

// Update replaces the about record's editable fields.
func (a *About) Update(c AboutContent) error {
	cur, ok := a.Current()
	if !ok {
		return ErrNotFound
	}
	return a.mutate(func() error { return a.store.UpdateAboutContent(cur.ID, c) })
}

// UploadTeamPhoto stores a team member portrait in the team bucket and
// returns its public URL. The caller links it into a TeamMember entry.
func (a *About) UploadTeamPhoto(up Upload) (string, error) {
	if err := ValidateUpload(up); err != nil {
		return "", err
	}
	key := ObjectKey(up.Name)
	if err := a.blobs.Upload(BucketTeam, key, up.Data, up.ContentType); err != nil {
		return "", fmt.Errorf("upload team photo: %w", err)
	}
	return a.blobs.PublicURL(BucketTeam, key), nil
}

// Hero is the accessor for the singleton hero record.
type Hero struct {
	*Singleton[HeroContent]
	store *Store
}

// NewHero builds the hero accessor and performs its initial fetch.
func NewHero(store *Store, log *zap.Logger) *Hero {
	return &Hero{
		Singleton: newSingleton("hero", log, store.GetHeroContent),
		store:     store,
	}
}

// Update replaces the hero record's editable fields.
func (h *Hero) Update(c HeroContent) error {
	cur, ok := h.Current()
	if !ok {
		return ErrNotFound
	}
	return h.mutate(func() error { return h.store.UpdateHeroContent(cur.ID, c) })
}

// Contact is the accessor for the singleton contact record.
type Contact struct {
	*Singleton[ContactInfo]
	store *Store
}

// NewContact builds the contact accessor and performs its initial fetch.
func NewContact(store *Store, log *zap.Logger) *Contact {
	return &Contact{
		Singleton: newSingleton("contact", log, store.GetContactInfo),
		store:     store,
	}
}

// Update replaces the contact record's editable fields.
func (c *Contact) Update(info ContactInfo) error {
	cur, ok := c.Current()
	if !ok {
		return ErrNotFound
	}
	return c.mutate(func() error { return c.store.UpdateContactInfo(cur.ID, info) })
}

// Logos is the accessor for the singleton logo record.
type Logos struct {
	*Singleton[LogoSettings]
	store *Store
	blobs BlobStore
}

// NewLogos builds the logo accessor and performs its initial fetch.
func NewLogos(store *Store, blobs BlobStore, log *zap.Logger) *Logos {
	return &Logos{
		Singleton: newSingleton("logos", log, store.GetLogoSettings),
		store:     store,
		blobs:     blobs,
	}
}

// LogoSlot selects which logo an upload replaces.
type LogoSlot string

const (
	LogoHeader LogoSlot = "header"
	LogoFooter LogoSlot = "footer"
)

// SetLogo uploads a new logo into the logos bucket and links it into the
// selected slot.
func (l *Logos) SetLogo(slot LogoSlot, up Upload) error {
	cur, ok := l.Current()
	if !ok {
		return ErrNotFound
	}
	if err := ValidateUpload(up); err != nil {
		return err
	}
	key := ObjectKey(up.Name)
	if err := l.blobs.Upload(BucketLogos, key, up.Data, up.ContentType); err != nil {
		return fmt.Errorf("upload logo: %w", err)
	}
	url := l.blobs.PublicURL(BucketLogos, key)
	header, footer := "", ""
	if slot == LogoFooter {
		footer = url
	} else {
		header = url
	}
	return l.mutate(func() error { return l.store.UpdateLogoSettings(cur.ID, header, footer) })
}
