package screenshot

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFromGLFlipsRows(t *testing.T) {
	// 1x2: bottom row red, top row blue.
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	img, err := FromGL(pixels, 1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("top pixel = %v, want blue", got)
	}
	if got := img.RGBAAt(0, 1); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("bottom pixel = %v, want red", got)
	}
}

func TestFromGLSizeMismatch(t *testing.T) {
	tests := []struct {
		name   string
		pixels []byte
		w, h   int
	}{
		{"short", make([]byte, 7), 1, 2},
		{"zero width", nil, 0, 2},
	}
	for _, tt := range tests {
		if _, err := FromGL(tt.pixels, tt.w, tt.h); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestSavePixels(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	c := New(dir, "dicebox")
	c.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	pixels := make([]byte, 2*2*4)
	first, err := c.SavePixels(pixels, 2, 2)
	if err != nil {
		t.Fatalf("SavePixels: %v", err)
	}
	if want := filepath.Join(dir, "dicebox_2026-01-02_03-04-05.png"); first != want {
		t.Errorf("path = %s, want %s", first, want)
	}

	second, err := c.SavePixels(pixels, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if second == first {
		t.Error("second capture in the same second overwrote the first")
	}

	f, err := os.Open(first)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
		t.Errorf("bounds = %v", b)
	}
}
