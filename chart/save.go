package chart

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
)

// ErrUnsupportedFormat is returned for output paths whose extension has no encoder.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Image formats supported by Save.
const (
	FormatPNG  = "png"
	FormatJPEG = "jpeg"
)

const jpegQuality = 95

// FormatFor returns the image format implied by the extension of path
func FormatFor(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png":
		return FormatPNG, nil
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Save encodes img to path, choosing the format from the file extension
func Save(img image.Image, path string) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}

	switch format {
	case FormatJPEG:
		err = gg.SaveJPG(path, img, jpegQuality)
	default:
		err = gg.SavePNG(path, img)
	}
	if err != nil {
		return fmt.Errorf("failed to save image to %s: %w", path, err)
	}
	return nil
}
