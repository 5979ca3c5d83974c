package image

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeTestPNG(t *testing.T, width, height int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 200, G: 50, B: 50, A: 255})
		}
	}

	path := filepath.Join(t.TempDir(), "test.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating test image: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encoding test image: %v", err)
	}
	return path
}

func TestFileLoaderLoad(t *testing.T) {
	path := writeTestPNG(t, 24, 16)

	img, format, err := NewFileLoader().Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if format != "png" {
		t.Errorf("format = %s, want png", format)
	}
	if b := img.Bounds(); b.Dx() != 24 || b.Dy() != 16 {
		t.Errorf("image is %dx%d, want 24x16", b.Dx(), b.Dy())
	}
}

func TestFileLoaderErrors(t *testing.T) {
	loader := NewFileLoader()

	tests := []struct {
		name string
		path string
	}{
		{name: "empty path", path: ""},
		{name: "missing file", path: filepath.Join(t.TempDir(), "nope.png")},
		{name: "directory", path: t.TempDir()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := loader.Load(tt.path); err == nil {
				t.Error("Load did not error")
			}
		})
	}

	// Not an image.
	garbage := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(garbage, []byte("plain text"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := loader.Load(garbage); err == nil {
		t.Error("Load accepted a non-image file")
	}
}

func TestValidateImagePath(t *testing.T) {
	path := writeTestPNG(t, 8, 8)
	if err := ValidateImagePath(path); err != nil {
		t.Errorf("ValidateImagePath(%s) error: %v", path, err)
	}
	if err := ValidateImagePath(""); err == nil {
		t.Error("empty path passed validation")
	}
	if err := ValidateImagePath(t.TempDir()); err == nil {
		t.Error("directory passed validation")
	}
}

func TestGetImageDimensions(t *testing.T) {
	path := writeTestPNG(t, 320, 240)

	w, h, err := GetImageDimensions(path)
	if err != nil {
		t.Fatalf("GetImageDimensions error: %v", err)
	}
	if w != 320 || h != 240 {
		t.Errorf("dimensions = %dx%d, want 320x240", w, h)
	}
}

func TestIsImageFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"photo.jpg", true},
		{"photo.JPEG", true},
		{"sketch.png", true},
		{"anim.gif", true},
		{"modern.webp", true},
		{"notes.txt", false},
		{"archive.tar.gz", false},
		{"noext", false},
	}
	for _, tt := range tests {
		if got := IsImageFile(tt.path); got != tt.want {
			t.Errorf("IsImageFile(%q) = %t, want %t", tt.path, got, tt.want)
		}
	}
}
