package output

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
)

// Save writes img to path, creating parent directories. The format follows
// the file extension.
func Save(img image.Image, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := imaging.Save(img, path, imaging.JPEGQuality(95)); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// ParseFormat maps a format name such as "png" or "jpg" to an encoder format
func ParseFormat(name string) (imaging.Format, error) {
	f, err := imaging.FormatFromExtension(strings.TrimPrefix(strings.ToLower(name), "."))
	if err != nil {
		return 0, fmt.Errorf("unsupported image format %q: %w", name, err)
	}
	return f, nil
}

// ContentType returns the MIME type served for a format
func ContentType(f imaging.Format) string {
	switch f {
	case imaging.JPEG:
		return "image/jpeg"
	case imaging.GIF:
		return "image/gif"
	case imaging.TIFF:
		return "image/tiff"
	case imaging.BMP:
		return "image/bmp"
	default:
		return "image/png"
	}
}

// Extension returns the file extension, without a dot, that Save maps back to f
func Extension(f imaging.Format) string {
	switch f {
	case imaging.JPEG:
		return "jpg"
	case imaging.GIF:
		return "gif"
	case imaging.TIFF:
		return "tif"
	case imaging.BMP:
		return "bmp"
	default:
		return "png"
	}
}

// Encode writes img to w in the given format
func Encode(w io.Writer, img image.Image, f imaging.Format) error {
	return imaging.Encode(w, img, f, imaging.JPEGQuality(95))
}

// EncodeBytes returns img encoded in the given format
func EncodeBytes(img image.Image, f imaging.Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, img, f); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}

// Thumbnail scales img down to fit in a size x size box, keeping the aspect
// ratio. Images already inside the box are returned unchanged.
func Thumbnail(img image.Image, size uint) image.Image {
	return resize.Thumbnail(size, size, img, resize.Bilinear)
}

// RenderPath returns dir/<scene>/render_<timestamp>.<ext>
func RenderPath(dir, sceneName string, f imaging.Format, now time.Time) string {
	name := fmt.Sprintf("render_%s.%s", now.Format("20060102_150405"), Extension(f))
	return filepath.Join(dir, sanitizeName(sceneName), name)
}

// ThumbnailPath returns the sibling path used for the thumbnail of path
func ThumbnailPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_thumb" + ext
}

func sanitizeName(name string) string {
	name = strings.TrimPrefix(name, "file:")
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "scene"
	}
	return b.String()
}
