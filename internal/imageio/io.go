// Package imageio loads and saves the pixel buffers the scrambling
// engine operates on. Decoding and encoding stay out of the engine
// itself; the engine only ever sees decoded RGBA buffers.
package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	// Extra decode support beyond the stdlib formats.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/altunenes/scrambler"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the output format is not
	// supported.
	ErrUnsupportedFormat = errors.New("imageio: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("imageio: empty data")
)

// LoadImage loads an image from the given file path, auto-detecting the
// format. Supported inputs: PNG, JPEG, BMP, TIFF, WebP.
func LoadImage(path string) (*scrambler.Pixmap, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("imageio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// LoadImageFromBytes loads an image from a byte slice, auto-detecting
// the format.
func LoadImageFromBytes(data []byte) (*scrambler.Pixmap, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes an image from the given reader, auto-detecting the
// format.
func Decode(r io.Reader) (*scrambler.Pixmap, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode: %w", err)
	}

	scrambler.Logger().Debug("decoded image",
		"format", format,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())

	return scrambler.FromImage(img), nil
}

// SaveImage saves the pixmap to the given file path. The output format
// is chosen from the extension: .png, .jpg or .jpeg. quality applies to
// JPEG only and is clamped to 1-100.
func SaveImage(path string, pm *scrambler.Pixmap, quality int) error {
	ext := strings.ToLower(filepath.Ext(path))

	var encode func(io.Writer) error
	switch ext {
	case ".png":
		encode = func(w io.Writer) error { return EncodePNG(w, pm) }
	case ".jpg", ".jpeg":
		encode = func(w io.Writer) error { return EncodeJPEG(w, pm, quality) }
	default:
		return fmt.Errorf("imageio: save %q: %w", ext, ErrUnsupportedFormat)
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}

	if err := encode(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// EncodePNG encodes the pixmap as PNG to the given writer.
func EncodePNG(w io.Writer, pm *scrambler.Pixmap) error {
	if err := png.Encode(w, pm.ToImage()); err != nil {
		return fmt.Errorf("imageio: encode PNG: %w", err)
	}
	return nil
}

// EncodeJPEG encodes the pixmap as JPEG to the given writer with the
// given quality (1-100).
func EncodeJPEG(w io.Writer, pm *scrambler.Pixmap, quality int) error {
	if quality < 1 {
		quality = 1
	}
	if quality > 100 {
		quality = 100
	}

	if err := jpeg.Encode(w, pm.ToImage(), &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("imageio: encode JPEG: %w", err)
	}
	return nil
}
