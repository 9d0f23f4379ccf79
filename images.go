package verdant

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"strings"

	"golang.org/x/image/draw"
)

const (
	thumbWidth  = 400
	jpegQuality = 80
)

// ThumbKey derives the storage key for a blob's thumbnail.
func ThumbKey(key string) string {
	if i := strings.LastIndex(key, "."); i > 0 {
		key = key[:i]
	}
	return key + ".thumb.jpg"
}

// MakeThumbnail downscales an uploaded image to the admin-grid width and
// re-encodes it as JPEG. The original blob is stored unchanged; thumbnails
// are derived copies.
func MakeThumbnail(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > thumbWidth {
		newH := h * thumbWidth / w
		dst := image.NewRGBA(image.Rect(0, 0, thumbWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
