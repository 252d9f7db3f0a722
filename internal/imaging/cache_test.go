package imaging

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writeTestPNG encodes a solid-color image to a temp file and returns its path.
func writeTestPNG(t *testing.T, width, height int, c color.Color) string {
	t.Helper()
	img := newSolidImage(width, height, c)

	path := filepath.Join(t.TempDir(), "test.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode PNG: %v", err)
	}
	return path
}

func newSolidImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestCache_Load(t *testing.T) {
	path := writeTestPNG(t, 20, 10, color.RGBA{255, 0, 0, 255})
	cache := NewCache()

	img, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if img.Bounds().Dx() != 20 || img.Bounds().Dy() != 10 {
		t.Errorf("bounds: got %v", img.Bounds())
	}

	// Second load must serve the cached instance.
	again, err := cache.Load(path)
	if err != nil {
		t.Fatalf("cached Load failed: %v", err)
	}
	if img != again {
		t.Error("expected the cached image instance")
	}
}

func TestCache_LoadMissingFile(t *testing.T) {
	cache := NewCache()
	if _, err := cache.Load(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("Load should fail for a missing file")
	}
}

func TestCache_LoadInvalidData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	cache := NewCache()
	if _, err := cache.Load(path); err == nil {
		t.Error("Load should fail for undecodable data")
	}
}

func TestCache_EvictAndClear(t *testing.T) {
	path := writeTestPNG(t, 4, 4, color.RGBA{0, 255, 0, 255})
	cache := NewCache()

	first, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	cache.Evict(path)
	second, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load after Evict failed: %v", err)
	}
	if first == second {
		t.Error("Evict should force a reload")
	}

	cache.Clear()
	third, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load after Clear failed: %v", err)
	}
	if second == third {
		t.Error("Clear should force a reload")
	}

	// Evicting an unknown path must not panic or error.
	cache.Evict("never-loaded")
}

func TestLoadInfo(t *testing.T) {
	path := writeTestPNG(t, 32, 16, color.RGBA{0, 0, 255, 255})
	cache := NewCache()

	info, err := LoadInfo(cache, path)
	if err != nil {
		t.Fatalf("LoadInfo failed: %v", err)
	}
	if info.Width != 32 || info.Height != 16 {
		t.Errorf("size: got %dx%d, want 32x16", info.Width, info.Height)
	}
	if info.Format != "png" {
		t.Errorf("format: got %s, want png", info.Format)
	}
	if info.FileSizeBytes <= 0 {
		t.Errorf("file size: got %d", info.FileSizeBytes)
	}
}

func TestGetDimensions(t *testing.T) {
	path := writeTestPNG(t, 7, 9, color.RGBA{1, 2, 3, 255})
	cache := NewCache()

	dims, err := GetDimensions(cache, path)
	if err != nil {
		t.Fatalf("GetDimensions failed: %v", err)
	}
	if dims.Width != 7 || dims.Height != 9 {
		t.Errorf("got %dx%d, want 7x9", dims.Width, dims.Height)
	}
}
