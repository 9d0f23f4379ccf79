package verdant

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// MaxUploadSize is the per-file ceiling for admin uploads. The upload relay
// deliberately does not enforce it.
const MaxUploadSize = 5 << 20 // 5MB

var (
	// ErrFileTooLarge rejects an upload over MaxUploadSize.
	ErrFileTooLarge = errors.New("file exceeds 5MB limit")
	// ErrNotImage rejects an upload whose content type is not image/*.
	ErrNotImage = errors.New("file is not an image")
)

// Upload is a file received from an admin form, fully read into memory.
type Upload struct {
	Name        string
	ContentType string
	Data        []byte
}

// ValidateUpload applies the admin-side upload rules: size ceiling and an
// image MIME prefix. The upload relay skips these checks.
func ValidateUpload(up Upload) error {
	if len(up.Data) > MaxUploadSize {
		return fmt.Errorf("%s: %w", up.Name, ErrFileTooLarge)
	}
	if !strings.HasPrefix(up.ContentType, "image/") {
		return fmt.Errorf("%s: %w", up.Name, ErrNotImage)
	}
	return nil
}

// UploadError records one rejected file of a batch.
type UploadError struct {
	Name string
	Err  error
}

func (e UploadError) Error() string {
	return fmt.Sprintf("%s: %v", e.Name, e.Err)
}

// Collection bridges one remote table and bucket to a cached, UI-consumable
// slice. All mutations go through the store and trigger a refresh; a failed
// refresh leaves the previous cache intact (stale but consistent).
type Collection[T any] struct {
	name   string
	bucket string
	blobs  BlobStore
	log    *zap.Logger

	list      func() ([]T, error)
	insert    func(T) (T, error)
	remove    func(id string) error
	withImage func(T, string) T
	makeThumb func([]byte) ([]byte, error) // optional, best effort

	mu    sync.RWMutex
	items []T
}

func newCollection[T any](name, bucket string, blobs BlobStore, log *zap.Logger,
	list func() ([]T, error),
	insert func(T) (T, error),
	remove func(id string) error,
	withImage func(T, string) T,
) *Collection[T] {
	c := &Collection[T]{
		name:      name,
		bucket:    bucket,
		blobs:     blobs,
		log:       log,
		list:      list,
		insert:    insert,
		remove:    remove,
		withImage: withImage,
	}
	if err := c.Refresh(); err != nil {
		// Recoverable: the cache starts empty and the next refresh retries.
		log.Warn("initial fetch failed", zap.String("collection", name), zap.Error(err))
	}
	return c
}

// Items returns a copy of the cached collection.
func (c *Collection[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of cached items.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Refresh re-fetches the full collection and replaces the cache. On failure
// the previous cache is kept.
func (c *Collection[T]) Refresh() error {
	items, err := c.list()
	if err != nil {
		return fmt.Errorf("refresh %s: %w", c.name, err)
	}
	c.mu.Lock()
	c.items = items
	c.mu.Unlock()
	return nil
}

// refreshAfterMutation refreshes and only logs a failure; the mutation
// itself already succeeded and the stale cache is acceptable.
func (c *Collection[T]) refreshAfterMutation() {
	if err := c.Refresh(); err != nil {
		c.log.Warn("refresh after mutation failed", zap.String("collection", c.name), zap.Error(err))
	}
}

// Add validates and uploads the file (when given), links its public URL into
// the item, and inserts the row. Any step failure aborts the operation; an
// already-uploaded blob is not rolled back but logged as orphaned.
func (c *Collection[T]) Add(item T, up *Upload) (T, error) {
	var zero T
	if up != nil {
		if err := ValidateUpload(*up); err != nil {
			return zero, err
		}
		key := ObjectKey(up.Name)
		if err := c.blobs.Upload(c.bucket, key, up.Data, up.ContentType); err != nil {
			return zero, fmt.Errorf("upload %s: %w", c.name, err)
		}
		c.uploadThumb(key, up.Data)
		item = c.withImage(item, c.blobs.PublicURL(c.bucket, key))

		inserted, err := c.insert(item)
		if err != nil {
			c.log.Warn("orphaned blob: insert failed after upload",
				zap.String("collection", c.name),
				zap.String("bucket", c.bucket),
				zap.String("key", key),
				zap.Error(err))
			return zero, fmt.Errorf("insert %s: %w", c.name, err)
		}
		c.refreshAfterMutation()
		return inserted, nil
	}

	inserted, err := c.insert(item)
	if err != nil {
		return zero, fmt.Errorf("insert %s: %w", c.name, err)
	}
	c.refreshAfterMutation()
	return inserted, nil
}

// AddBatch processes files sequentially. make builds the row for slot i, so
// per-slot fields (catalog page numbers) stay tied to array position. A file
// failing validation or upload is reported and skipped; the rest of the
// batch continues.
func (c *Collection[T]) AddBatch(make func(i int) T, files []Upload) (added []T, rejected []UploadError) {
	for i := range files {
		up := files[i]
		item, err := c.addOne(make(i), up)
		if err != nil {
			c.log.Warn("batch file rejected",
				zap.String("collection", c.name),
				zap.String("file", up.Name),
				zap.Error(err))
			rejected = append(rejected, UploadError{Name: up.Name, Err: err})
			continue
		}
		added = append(added, item)
	}
	if len(added) > 0 {
		c.refreshAfterMutation()
	}
	return added, rejected
}

// addOne is Add without the trailing refresh, so a batch refreshes once.
func (c *Collection[T]) addOne(item T, up Upload) (T, error) {
	var zero T
	if err := ValidateUpload(up); err != nil {
		return zero, err
	}
	key := ObjectKey(up.Name)
	if err := c.blobs.Upload(c.bucket, key, up.Data, up.ContentType); err != nil {
		return zero, fmt.Errorf("upload: %w", err)
	}
	c.uploadThumb(key, up.Data)
	item = c.withImage(item, c.blobs.PublicURL(c.bucket, key))
	inserted, err := c.insert(item)
	if err != nil {
		c.log.Warn("orphaned blob: insert failed after upload",
			zap.String("collection", c.name),
			zap.String("bucket", c.bucket),
			zap.String("key", key),
			zap.Error(err))
		return zero, fmt.Errorf("insert: %w", err)
	}
	return inserted, nil
}

// Remove best-effort deletes the backing blob, then deletes the row. A
// failed blob deletion never blocks the row deletion.
func (c *Collection[T]) Remove(id, blobURL string) error {
	if key := KeyFromURL(blobURL); key != "" {
		if err := c.blobs.Delete(c.bucket, key); err != nil {
			c.log.Warn("orphaned blob: delete failed",
				zap.String("collection", c.name),
				zap.String("bucket", c.bucket),
				zap.String("key", key),
				zap.Error(err))
		}
	}
	if err := c.remove(id); err != nil {
		return fmt.Errorf("delete %s: %w", c.name, err)
	}
	c.refreshAfterMutation()
	return nil
}

// uploadThumb generates and stores an admin-grid thumbnail next to the
// original. Thumbnails are a convenience; failures are only logged.
func (c *Collection[T]) uploadThumb(key string, data []byte) {
	if c.makeThumb == nil {
		return
	}
	thumb, err := c.makeThumb(data)
	if err != nil {
		c.log.Debug("thumbnail skipped", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.blobs.Upload(c.bucket, ThumbKey(key), thumb, "image/jpeg"); err != nil {
		c.log.Debug("thumbnail upload failed", zap.String("key", key), zap.Error(err))
	}
}
