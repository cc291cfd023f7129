package rgbpca

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/wbrown/rgbpca/imageutil"
)

// DefaultOutputDir is where reconstructions are written unless configured.
const DefaultOutputDir = "result"

// ToImage converts a reconstructed matrix to an image. Pixel (x, y) takes
// row y*Width + x; each channel is clamped to [0, 255] and then truncated,
// not rounded.
func ToImage(p *PixelMatrix) *imageutil.RGBAImage {
	img := imageutil.NewRGBAImage(p.Width, p.Height)
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			row := p.Row(p.Index(x, y))
			img.SetRGB(x, y, imageutil.RGB{
				R: truncateChannel(row[0]),
				G: truncateChannel(row[1]),
				B: truncateChannel(row[2]),
			})
		}
	}
	return img
}

func truncateChannel(v float64) uint8 {
	return uint8(clampChannel(v))
}

// OutputName is the file name of the reconstruction without axis k.
func OutputName(k int, format string) string {
	return fmt.Sprintf("reconstructed%d.%s", k, imageutil.NormalizeFormat(format))
}

// WriteResults encodes the three reconstructions and writes them to dir,
// creating it if needed. All three images are encoded before anything
// touches the disk, and files written by a failed call are removed again,
// so a run never leaves a partial set behind. It returns the written paths
// in axis order.
func WriteResults(dir, format string, outs [Axes]*PixelMatrix) ([]string, error) {
	var encoded [Axes]bytes.Buffer
	for k, out := range outs {
		if out == nil {
			return nil, fmt.Errorf("%w: missing reconstruction for axis %d", ErrWrite, k)
		}
		if err := imageutil.EncodeImage(&encoded[k], ToImage(out), format); err != nil {
			return nil, fmt.Errorf("%w: encode axis %d: %v", ErrWrite, k, err)
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWrite, err)
	}

	paths := make([]string, 0, Axes)
	for k := range outs {
		path := filepath.Join(dir, OutputName(k, format))
		if err := os.WriteFile(path, encoded[k].Bytes(), 0o644); err != nil {
			removeAll(paths)
			// A failed write can leave a truncated file behind.
			if fi, statErr := os.Lstat(path); statErr == nil && fi.Mode().IsRegular() {
				os.Remove(path)
			}
			return nil, fmt.Errorf("%w: %v", ErrWrite, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func removeAll(paths []string) {
	for _, p := range paths {
		os.Remove(p)
	}
}
