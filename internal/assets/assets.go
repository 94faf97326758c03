// Package assets resolves image references against the static directory and
// measures them by decoding only the image header.
package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

var (
	ErrRemote   = errors.New("remote image reference")
	ErrNotFound = errors.New("image not found")
	ErrInvalid  = errors.New("image has no usable dimensions")
)

// Loader maps "/images/x.png" style references onto files under Root.
type Loader struct {
	Root   string
	Prefix string
}

func NewLoader(root, prefix string) *Loader {
	return &Loader{Root: root, Prefix: prefix}
}

// Path returns the file backing ref.
func (l *Loader) Path(ref string) (string, error) {
	if strings.Contains(ref, "://") || strings.HasPrefix(ref, "//") {
		return "", fmt.Errorf("%w: %s", ErrRemote, ref)
	}
	rel := strings.TrimPrefix(ref, l.Prefix)
	rel = strings.TrimPrefix(rel, "/")
	if rel == "" || strings.Contains(rel, "..") {
		return "", fmt.Errorf("%w: %s", ErrNotFound, ref)
	}
	return filepath.Join(l.Root, filepath.FromSlash(rel)), nil
}

// Size returns the pixel dimensions of a local image.
func (l *Loader) Size(ref string) (int, int, error) {
	path, err := l.Path(ref)
	if err != nil {
		return 0, 0, err
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, 0, fmt.Errorf("%w: %s", ErrNotFound, ref)
		}
		return 0, 0, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("decode %s: %w", ref, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return 0, 0, fmt.Errorf("%w: %s", ErrInvalid, ref)
	}
	return cfg.Width, cfg.Height, nil
}

// Measure returns the width/height ratio of a local image.
func (l *Loader) Measure(ref string) (float64, error) {
	w, h, err := l.Size(ref)
	if err != nil {
		return 0, err
	}
	return float64(w) / float64(h), nil
}

// Check measures every reference and logs the ones that would fall back to
// the placeholder. It returns the failing references.
func (l *Loader) Check(refs []string) []string {
	var missing []string
	for _, ref := range refs {
		if _, err := l.Measure(ref); err != nil {
			if errors.Is(err, ErrRemote) {
				continue
			}
			slog.Warn("Image asset unavailable, placeholder will be shown", "ref", ref, "err", err)
			missing = append(missing, ref)
		}
	}
	return missing
}
