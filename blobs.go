package verdant

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Bucket names used by the site. Each resource type uploads into its own
// bucket so keys only have to be unique within a resource.
const (
	BucketGallery  = "gallery"
	BucketProducts = "products"
	BucketCatalog  = "catalog"
	BucketBlog     = "blog"
	BucketLogos    = "logos"
	BucketTeam     = "team"
)

// BlobStore stores uploaded image files under bucket/key and serves them at
// a stable public URL.
type BlobStore interface {
	Upload(bucket, key string, data []byte, contentType string) error
	PublicURL(bucket, key string) string
	Delete(bucket, key string) error
}

// ObjectKey builds a collision-resistant storage key: millisecond timestamp
// prefix plus the original name with every non-alphanumeric rune stripped,
// keeping only the extension dot.
func ObjectKey(originalName string) string {
	ext := filepath.Ext(originalName)
	base := strings.TrimSuffix(filepath.Base(originalName), ext)
	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		}
	}
	var cleanExt strings.Builder
	for _, r := range ext {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.':
			cleanExt.WriteRune(r)
		}
	}
	return strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + b.String() + cleanExt.String()
}

// KeyFromURL derives a blob's storage key from its public URL: the last
// path segment.
func KeyFromURL(blobURL string) string {
	trimmed := strings.TrimRight(blobURL, "/")
	if i := strings.LastIndex(trimmed, "/"); i >= 0 {
		return trimmed[i+1:]
	}
	return trimmed
}

// DirBlobStore keeps blobs on local disk under root/<bucket>/<key> and
// serves them below baseURL. Used for development and tests; production
// sites use S3BlobStore.
type DirBlobStore struct {
	root    string
	baseURL string
}

// NewDirBlobStore creates a disk-backed blob store rooted at dir. Files are
// addressed as baseURL/<bucket>/<key>.
func NewDirBlobStore(dir, baseURL string) *DirBlobStore {
	return &DirBlobStore{root: dir, baseURL: strings.TrimSuffix(baseURL, "/")}
}

func (d *DirBlobStore) Upload(bucket, key string, data []byte, contentType string) error {
	dir := filepath.Join(d.root, bucket)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create bucket dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, key), data, 0o644); err != nil {
		return fmt.Errorf("write blob: %w", err)
	}
	return nil
}

func (d *DirBlobStore) PublicURL(bucket, key string) string {
	return d.baseURL + "/" + bucket + "/" + key
}

func (d *DirBlobStore) Delete(bucket, key string) error {
	return os.Remove(filepath.Join(d.root, bucket, key))
}
