package phosphor

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// Snapshotter saves images under timestamped names.
type Snapshotter struct {
	dir    string
	prefix string
	now    func() time.Time
}

// NewSnapshotter creates a snapshotter writing prefix_<time>.png into dir.
// An empty dir means the working directory.
func NewSnapshotter(dir, prefix string) *Snapshotter {
	return &Snapshotter{dir: dir, prefix: prefix, now: time.Now}
}

// Filename returns the path the next snapshot would be written to.
func (s *Snapshotter) Filename() string {
	name := fmt.Sprintf("%s_%s.png", s.prefix, s.now().Format("2006-01-02_15-04-05"))
	if s.dir != "" {
		name = filepath.Join(s.dir, name)
	}
	return name
}

// Capture writes img and returns its path.
func (s *Snapshotter) Capture(img image.Image) (string, error) {
	if s.dir != "" {
		if err := os.MkdirAll(s.dir, 0o755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}
	path := s.Filename()
	return path, SavePNG(path, img)
}

// FromGLPixels builds an image from RGBA framebuffer rows, which OpenGL
// returns bottom row first.
func FromGLPixels(pixels []byte, width, height int) (*image.RGBA, error) {
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	row := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * row
		copy(img.Pix[y*img.Stride:y*img.Stride+row], pixels[src:src+row])
	}
	return img, nil
}

// SavePNG encodes img to path.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return f.Close()
}
