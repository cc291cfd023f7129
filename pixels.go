package rgbpca

import (
	"image"

	"gonum.org/v1/gonum/mat"

	"github.com/wbrown/rgbpca/imageutil"
)

// Channels is the number of colour channels per observation.
const Channels = 3

// RGBSource is a decoded image that can be sampled pixel by pixel.
// *imageutil.RGBAImage satisfies it.
type RGBSource interface {
	Width() int
	Height() int
	GetRGB(x, y int) imageutil.RGB
}

// PixelMatrix is an N x 3 table of colour samples stored row-major.
// Row i holds the (R, G, B) of the pixel at x = i % Width, y = i / Width.
type PixelMatrix struct {
	Width, Height int
	Data          []float64
}

// NewPixelMatrix allocates a zeroed matrix for a width x height image.
func NewPixelMatrix(width, height int) *PixelMatrix {
	return &PixelMatrix{
		Width:  width,
		Height: height,
		Data:   make([]float64, width*height*Channels),
	}
}

// SamplePixels copies every pixel of src into a new PixelMatrix,
// preserving the row-major index y*Width + x.
func SamplePixels(src RGBSource) *PixelMatrix {
	w, h := src.Width(), src.Height()
	p := NewPixelMatrix(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := src.GetRGB(x, y)
			p.SetRow(y*w+x, [Channels]float64{float64(c.R), float64(c.G), float64(c.B)})
		}
	}
	return p
}

// SampleImage samples any image.Image. Alpha is discarded.
func SampleImage(img image.Image) *PixelMatrix {
	if rgba, ok := img.(*imageutil.RGBAImage); ok {
		return SamplePixels(rgba)
	}
	return SamplePixels(imageutil.RGBAImageFromImage(img))
}

// Len returns the number of rows (pixels).
func (p *PixelMatrix) Len() int {
	return len(p.Data) / Channels
}

// Index returns the row index of image coordinate (x, y).
func (p *PixelMatrix) Index(x, y int) int {
	return y*p.Width + x
}

// Row returns row i.
func (p *PixelMatrix) Row(i int) [Channels]float64 {
	off := i * Channels
	return [Channels]float64{p.Data[off], p.Data[off+1], p.Data[off+2]}
}

// SetRow overwrites row i.
func (p *PixelMatrix) SetRow(i int, v [Channels]float64) {
	copy(p.Data[i*Channels:], v[:])
}

// Matrix returns an N x 3 gonum view sharing the backing slice, or nil
// when the matrix is empty (gonum has no zero-row matrices).
func (p *PixelMatrix) Matrix() *mat.Dense {
	if p.Len() == 0 {
		return nil
	}
	return mat.NewDense(p.Len(), Channels, p.Data)
}
