package imageutil

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRGBAImage(t *testing.T) {
	img := NewRGBAImage(100, 50)
	assert.Equal(t, 100, img.Width())
	assert.Equal(t, 50, img.Height())
}

func TestRGBAImageGetSetRGB(t *testing.T) {
	img := NewRGBAImage(10, 10)
	c := RGB{R: 100, G: 150, B: 200}
	img.SetRGB(5, 5, c)

	assert.Equal(t, c, img.GetRGB(5, 5))
	assert.Equal(t, uint8(255), img.RGBAAt(5, 5).A, "pixels written through SetRGB are opaque")
}

func TestRGBAImageClone(t *testing.T) {
	img := NewRGBAImage(10, 10)
	img.SetRGB(5, 5, RGB{R: 255, G: 0, B: 0})

	clone := img.Clone()
	assert.Equal(t, img.GetRGB(5, 5), clone.GetRGB(5, 5))

	// Modify clone, original should be unchanged
	clone.SetRGB(5, 5, RGB{R: 0, G: 255, B: 0})
	assert.Equal(t, uint8(0), img.GetRGB(5, 5).G, "modifying clone should not affect original")
}

func TestRGBFromColorDropsAlpha(t *testing.T) {
	// 50% transparent pure red, premultiplied.
	c := color.RGBA{R: 128, G: 0, B: 0, A: 128}
	got := RGBFromColor(c)
	assert.Equal(t, RGB{R: 255, G: 0, B: 0}, got)

	assert.Equal(t, RGB{R: 10, G: 20, B: 30}, RGBFromColor(color.NRGBA{R: 10, G: 20, B: 30, A: 0}))
}

func TestRGBAImageFromImageRebasesOrigin(t *testing.T) {
	src := image.NewNRGBA(image.Rect(10, 20, 13, 22))
	src.SetNRGBA(12, 21, color.NRGBA{R: 1, G: 2, B: 3, A: 255})

	img := RGBAImageFromImage(src)
	require.Equal(t, 3, img.Width())
	require.Equal(t, 2, img.Height())
	assert.Equal(t, RGB{R: 1, G: 2, B: 3}, img.GetRGB(2, 1))
}

func TestNormalizeFormat(t *testing.T) {
	cases := map[string]string{
		".PNG":  FormatPNG,
		"jpeg":  FormatJPEG,
		".jpg":  FormatJPEG,
		"gif":   FormatGIF,
		".bmp":  FormatBMP,
		"tif":   FormatTIFF,
		".tiff": FormatTIFF,
		"":      FormatPNG,
		"xyz":   FormatPNG,
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeFormat(in), "format %q", in)
	}
}

func TestEncodeDecodeLosslessFormats(t *testing.T) {
	img := CreateColorBarsImage(16, 4)
	for _, format := range []string{FormatPNG, FormatBMP, FormatTIFF} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, EncodeImage(&buf, img, format))

			decoded, err := DecodeImage(&buf)
			require.NoError(t, err)
			assert.Equal(t, 0, CalculateMaxDiff(img, RGBAImageFromImage(decoded)))
		})
	}
}

func TestDecodeImageRejectsGarbage(t *testing.T) {
	_, err := DecodeImage(bytes.NewReader([]byte("definitely not an image")))
	assert.Error(t, err)
}

func TestSaveAndLoadImage(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "bars.png")

	img := CreateColorBarsImage(32, 8)
	require.NoError(t, SaveImage(img, path))

	loaded, err := LoadImage(path)
	require.NoError(t, err)
	assert.Equal(t, 0, CalculateMaxDiff(img, loaded))
	assert.Zero(t, CalculateMSE(img, loaded))
}

func TestLoadImageMissingFile(t *testing.T) {
	_, err := LoadImage(filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestResize(t *testing.T) {
	img := CreateGradientImage(100, 100)

	resized := Resize(img, 50, 50, InterpolationArea)
	assert.Equal(t, 50, resized.Width())
	assert.Equal(t, 50, resized.Height())

	resized = Resize(img, 200, 200, InterpolationLinear)
	assert.Equal(t, 200, resized.Width())
	assert.Equal(t, 200, resized.Height())
}

func TestFitWidth(t *testing.T) {
	img := CreateSolidImage(400, 100, RGB{R: 10, G: 20, B: 30})

	fitted := FitWidth(img, 200, InterpolationNearest)
	assert.Equal(t, 200, fitted.Width())
	assert.Equal(t, 50, fitted.Height())
	assert.Equal(t, RGB{R: 10, G: 20, B: 30}, fitted.GetRGB(100, 25))

	assert.Same(t, img, FitWidth(img, 800, InterpolationNearest))
	assert.Same(t, img, FitWidth(img, 0, InterpolationNearest))

	thin := FitWidth(CreateSolidImage(1000, 1, RGB{}), 10, InterpolationNearest)
	assert.Equal(t, 1, thin.Height())
}

func TestCreateImageFromPixels(t *testing.T) {
	pixels := []RGB{{1, 1, 1}, {2, 2, 2}, {3, 3, 3}, {4, 4, 4}, {5, 5, 5}, {6, 6, 6}}
	img := CreateImageFromPixels(3, 2, pixels)
	assert.Equal(t, RGB{3, 3, 3}, img.GetRGB(2, 0))
	assert.Equal(t, RGB{4, 4, 4}, img.GetRGB(0, 1))
}

func TestCalculateMaxDiffSizeMismatch(t *testing.T) {
	assert.Equal(t, 256, CalculateMaxDiff(NewRGBAImage(2, 2), NewRGBAImage(3, 2)))
}
