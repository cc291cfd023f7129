package imageutil

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // Register WebP decoder
)

// Format names accepted by EncodeImage.
const (
	FormatPNG  = "png"
	FormatJPEG = "jpg"
	FormatGIF  = "gif"
	FormatBMP  = "bmp"
	FormatTIFF = "tiff"
)

// LoadImage loads an image from the specified path.
// Supports PNG, JPEG, GIF, BMP, TIFF and WebP.
func LoadImage(path string) (*RGBAImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, err := DecodeImage(f)
	if err != nil {
		return nil, err
	}
	return RGBAImageFromImage(img), nil
}

// DecodeImage decodes any registered image format from r.
func DecodeImage(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// NormalizeFormat maps a file extension or format name to one of the
// Format constants. Unknown names fall back to PNG.
func NormalizeFormat(name string) string {
	switch strings.TrimPrefix(strings.ToLower(name), ".") {
	case "jpg", "jpeg":
		return FormatJPEG
	case "gif":
		return FormatGIF
	case "bmp":
		return FormatBMP
	case "tif", "tiff":
		return FormatTIFF
	default:
		return FormatPNG
	}
}

// EncodeImage writes img to w in the given format.
func EncodeImage(w io.Writer, img image.Image, format string) error {
	switch NormalizeFormat(format) {
	case FormatJPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
	case FormatGIF:
		return gif.Encode(w, img, nil)
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return png.Encode(w, img)
	}
}

// SaveImage saves an image to the specified path.
// Format is determined by file extension.
func SaveImage(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := EncodeImage(f, img, filepath.Ext(path)); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}
