package verdant

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// Relay is a small standalone upload endpoint for sites that keep images on
// the web host's own disk instead of a bucket backend. It accepts a multipart
// file, stores it under its uploads directory with a timestamped name, and
// answers with the public path. Validation is the caller's concern.
type Relay struct {
	Echo *echo.Echo
	Log  *zap.Logger

	dir string
}

// NewRelay creates a Relay writing uploaded files into dir.
func NewRelay(dir string, log *zap.Logger) *Relay {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Relay{
		Echo: echo.New(),
		Log:  log,
		dir:  dir,
	}
	r.Echo.Use(middleware.Recover())
	r.Echo.Use(middleware.CORS())

	r.Echo.GET("/api/health", r.handleHealth)
	r.Echo.POST("/api/upload", r.handleUpload)
	r.Echo.Static("/uploads", dir)
	return r
}

// Start binds the relay to addr after ensuring the uploads directory exists.
func (r *Relay) Start(addr string) error {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("relay: create uploads dir: %w", err)
	}
	if err := r.Echo.Start(addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (r *Relay) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

func (r *Relay) handleUpload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "No file uploaded"})
	}
	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Upload failed"})
	}
	defer src.Close()

	name := fmt.Sprintf("%d%s", time.Now().UnixMilli(), filepath.Ext(fh.Filename))
	dst, err := os.Create(filepath.Join(r.dir, name))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Upload failed"})
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Upload failed"})
	}

	r.Log.Info("file uploaded", zap.String("name", name), zap.Int64("size", fh.Size))
	return c.JSON(http.StatusOK, map[string]string{"url": "/uploads/" + name})
}
