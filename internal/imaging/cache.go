package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"
	"sync"
)

// Cache provides thread-safe caching of decoded images to avoid redundant
// disk reads.
//
// Decoded image.Image values are keyed by the exact path string used to load
// them. Entries stay in memory until Evict or Clear; long-running hosts
// analyzing many files should clear periodically.
type Cache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewCache creates an empty image cache, ready for concurrent use.
func NewCache() *Cache {
	return &Cache{images: make(map[string]image.Image)}
}

// Load returns the image at path, reading and decoding it on the first call
// and serving the cached copy afterwards.
//
// Supported formats are PNG, JPEG and GIF. Returns an error if the file
// cannot be opened or decoded.
func (c *Cache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// Evict removes one cached image by its load path. Unknown paths are a no-op.
func (c *Cache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// Clear drops every cached image.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.mu.Unlock()
}

// Info is the metadata reported for a loaded image file.
type Info struct {
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	Format        string `json:"format"`     // "png", "jpeg", "gif" or "unknown" (by extension)
	HasAlpha      bool   `json:"has_alpha"`  // true if the decoded type carries an alpha channel
	FileSizeBytes int64  `json:"file_size_bytes"`
}

// LoadInfo loads an image through the cache and returns its metadata.
func LoadInfo(cache *Cache, path string) (*Info, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	format := "unknown"
	switch filepath.Ext(path) {
	case ".png":
		format = "png"
	case ".jpg", ".jpeg":
		format = "jpeg"
	case ".gif":
		format = "gif"
	}

	hasAlpha := false
	switch img.(type) {
	case *image.RGBA, *image.NRGBA, *image.RGBA64, *image.NRGBA64:
		hasAlpha = true
	}

	bounds := img.Bounds()
	return &Info{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        format,
		HasAlpha:      hasAlpha,
		FileSizeBytes: stat.Size(),
	}, nil
}

// Dimensions is a lightweight result holding only an image's size.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// GetDimensions loads an image through the cache and returns its dimensions.
func GetDimensions(cache *Cache, path string) (*Dimensions, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}
	bounds := img.Bounds()
	return &Dimensions{Width: bounds.Dx(), Height: bounds.Dy()}, nil
}
