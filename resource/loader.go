// Package resource loads image resources used as polygon fill patterns.
//
// Files are sniffed by content before decoding, so a mislabelled or
// non-image file fails early with a clear error. PNG, JPEG, GIF, BMP, TIFF
// and WebP are decoded.
package resource

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"os"
	"path/filepath"

	"github.com/gogpu/drawlib"
	"github.com/h2non/filetype"
	"github.com/mitchellh/go-homedir"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// headerSize is the number of leading bytes needed to sniff a file type.
const headerSize = 262

// ErrNotImage is returned when a file's content is not a recognized image.
var ErrNotImage = errors.New("resource: not an image")

// Loader decodes image files. Relative paths are resolved against BaseDir.
// The zero value resolves relative paths against the working directory.
type Loader struct {
	BaseDir string
}

// NewLoader returns a loader rooted at baseDir.
func NewLoader(baseDir string) *Loader {
	return &Loader{BaseDir: baseDir}
}

// Resolve expands a leading "~" and joins relative paths to BaseDir.
func (l *Loader) Resolve(path string) (string, error) {
	p, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("resource: %w", err)
	}
	if !filepath.IsAbs(p) && l.BaseDir != "" {
		base, err := homedir.Expand(l.BaseDir)
		if err != nil {
			return "", fmt.Errorf("resource: %w", err)
		}
		p = filepath.Join(base, p)
	}
	return filepath.Clean(p), nil
}

// Load decodes the image at path and returns it with its size. Every error
// wraps drawlib.ErrResourceUnavailable.
func (l *Loader) Load(path string) (image.Image, int, int, error) {
	data, err := l.read(path)
	if err != nil {
		return nil, 0, 0, err
	}
	img, err := Decode(data)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("resource %q: %w", path, err)
	}
	b := img.Bounds()
	return img, b.Dx(), b.Dy(), nil
}

// Dimensions returns the size of the image at path without decoding the
// pixel data.
func (l *Loader) Dimensions(path string) (int, int, error) {
	data, err := l.read(path)
	if err != nil {
		return 0, 0, err
	}
	if err := sniff(data); err != nil {
		return 0, 0, fmt.Errorf("resource %q: %w", path, err)
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, fmt.Errorf("resource %q: decode config: %v: %w", path, err, drawlib.ErrResourceUnavailable)
	}
	return cfg.Width, cfg.Height, nil
}

func (l *Loader) read(path string) ([]byte, error) {
	p, err := l.Resolve(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", drawlib.ErrResourceUnavailable, err)
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("resource: open file: %w: %w", drawlib.ErrResourceUnavailable, err)
	}
	return data, nil
}

// Decode sniffs and decodes image data.
func Decode(data []byte) (image.Image, error) {
	if err := sniff(data); err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode: %v: %w", err, drawlib.ErrResourceUnavailable)
	}
	return img, nil
}

// MIME returns the sniffed MIME type of data, or "" when unknown.
func MIME(data []byte) string {
	kind, err := filetype.Match(header(data))
	if err != nil || kind == filetype.Unknown {
		return ""
	}
	return kind.MIME.Value
}

func sniff(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty data: %w", drawlib.ErrResourceUnavailable)
	}
	if !filetype.IsImage(header(data)) {
		return fmt.Errorf("%w: %w", ErrNotImage, drawlib.ErrResourceUnavailable)
	}
	return nil
}

func header(data []byte) []byte {
	if len(data) > headerSize {
		return data[:headerSize]
	}
	return data
}
