package imageutil

import (
	"image"

	"golang.org/x/image/draw"
)

// Interpolation specifies the interpolation method for resizing.
type Interpolation int

const (
	// InterpolationArea uses Catmull-Rom, the high quality choice for
	// downscaling previews.
	InterpolationArea Interpolation = iota

	// InterpolationLinear uses bilinear interpolation.
	InterpolationLinear

	// InterpolationNearest uses nearest-neighbor interpolation. It never
	// invents colours, which keeps small synthetic images exact.
	InterpolationNearest
)

func (interp Interpolation) scaler() draw.Scaler {
	switch interp {
	case InterpolationLinear:
		return draw.BiLinear
	case InterpolationNearest:
		return draw.NearestNeighbor
	default:
		return draw.CatmullRom
	}
}

// Resize resizes an RGBA image to the specified dimensions using the
// given interpolation method.
func Resize(img *RGBAImage, width, height int, interp Interpolation) *RGBAImage {
	dst := NewRGBAImage(width, height)
	interp.scaler().Scale(dst.RGBA, image.Rect(0, 0, width, height),
		img.RGBA, img.Bounds(), draw.Src, nil)
	return dst
}

// FitWidth scales an image down so it is at most maxWidth pixels wide,
// keeping the aspect ratio. Images that already fit are returned as is.
// The height never drops below one pixel.
func FitWidth(img *RGBAImage, maxWidth int, interp Interpolation) *RGBAImage {
	if maxWidth <= 0 || img.Width() <= maxWidth {
		return img
	}
	height := img.Height() * maxWidth / img.Width()
	if height < 1 {
		height = 1
	}
	return Resize(img, maxWidth, height, interp)
}
