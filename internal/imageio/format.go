package imageio

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies an output image encoding.
type Format uint8

const (
	// FormatPNG is lossless PNG, the default.
	FormatPNG Format = iota

	// FormatJPEG is baseline JPEG at DefaultJPEGQuality.
	FormatJPEG

	// FormatGIF is GIF with a 256-level gray palette.
	FormatGIF

	// FormatBMP is 8-bit paletted BMP.
	FormatBMP

	// FormatTIFF is uncompressed 8-bit gray TIFF.
	FormatTIFF
)

// DefaultJPEGQuality is the quality used when saving JPEG files.
const DefaultJPEGQuality = 95

// String returns the conventional lower-case name of the format.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	case FormatGIF:
		return "gif"
	case FormatBMP:
		return "bmp"
	case FormatTIFF:
		return "tiff"
	default:
		return "unknown"
	}
}

// FormatFromPath picks the output format from the file extension.
// Returns ErrUnsupportedFormat for unknown or missing extensions.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png":
		return FormatPNG, nil
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	case ".gif":
		return FormatGIF, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	default:
		return 0, fmt.Errorf("%w: extension %q", ErrUnsupportedFormat, ext)
	}
}
