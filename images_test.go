package verdant

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func encodeTestPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: 120, B: 60, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestMakeThumbnailDownscales(t *testing.T) {
	data := encodeTestPNG(t, 1200, 900)

	thumb, err := MakeThumbnail(data)
	if err != nil {
		t.Fatalf("MakeThumbnail failed: %v", err)
	}

	img, format, err := image.Decode(bytes.NewReader(thumb))
	if err != nil {
		t.Fatalf("thumbnail does not decode: %v", err)
	}
	if format != "jpeg" {
		t.Errorf("expected jpeg thumbnail, got %s", format)
	}
	if w := img.Bounds().Dx(); w != 400 {
		t.Errorf("expected width 400, got %d", w)
	}
	if h := img.Bounds().Dy(); h != 300 {
		t.Errorf("aspect ratio should be kept, got height %d", h)
	}
}

func TestMakeThumbnailKeepsSmallImages(t *testing.T) {
	data := encodeTestPNG(t, 200, 150)

	thumb, err := MakeThumbnail(data)
	if err != nil {
		t.Fatalf("MakeThumbnail failed: %v", err)
	}
	img, _, err := image.Decode(bytes.NewReader(thumb))
	if err != nil {
		t.Fatalf("thumbnail does not decode: %v", err)
	}
	if img.Bounds().Dx() != 200 {
		t.Errorf("small images should not be upscaled, got width %d", img.Bounds().Dx())
	}
}

func TestMakeThumbnailRejectsNonImage(t *testing.T) {
	if _, err := MakeThumbnail([]byte("not an image")); err == nil {
		t.Fatal("expected decode error")
	}
}
