package imageutil

import "math"

// CreateGradientImage creates a diagonal colour gradient: red grows with
// x, green with y, blue with x+y. It gives the colour cloud a real spread
// along all three channels.
func CreateGradientImage(width, height int) *RGBAImage {
	img := NewRGBAImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGB(x, y, RGB{
				R: scaleTo255(x, width),
				G: scaleTo255(y, height),
				B: scaleTo255(x+y, width+height-1),
			})
		}
	}
	return img
}

func scaleTo255(v, n int) uint8 {
	if n <= 1 {
		return 0
	}
	return uint8(255 * v / (n - 1))
}

// CreateSolidImage creates a solid color image.
func CreateSolidImage(width, height int, c RGB) *RGBAImage {
	img := NewRGBAImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGB(x, y, c)
		}
	}
	return img
}

// CreateColorBarsImage creates a color bars test pattern.
func CreateColorBarsImage(width, height int) *RGBAImage {
	img := NewRGBAImage(width, height)
	colors := []RGB{
		{255, 255, 255}, // White
		{255, 255, 0},   // Yellow
		{0, 255, 255},   // Cyan
		{0, 255, 0},     // Green
		{255, 0, 255},   // Magenta
		{255, 0, 0},     // Red
		{0, 0, 255},     // Blue
		{0, 0, 0},       // Black
	}

	barWidth := width / len(colors)
	if barWidth == 0 {
		barWidth = 1
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			colorIdx := x / barWidth
			if colorIdx >= len(colors) {
				colorIdx = len(colors) - 1
			}
			img.SetRGB(x, y, colors[colorIdx])
		}
	}
	return img
}

// CreateImageFromPixels builds a width x height image from a row-major
// list of colours.
func CreateImageFromPixels(width, height int, pixels []RGB) *RGBAImage {
	img := NewRGBAImage(width, height)
	for i, c := range pixels {
		img.SetRGB(i%width, i/width, c)
	}
	return img
}

// CalculateMSE calculates the Mean Squared Error between two RGBA images.
func CalculateMSE(img1, img2 *RGBAImage) float64 {
	if img1.Width() != img2.Width() || img1.Height() != img2.Height() {
		return math.MaxFloat64
	}

	width, height := img1.Width(), img1.Height()
	var sumSq float64
	count := float64(width * height * 3) // 3 channels

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c1 := img1.RGBAAt(x, y)
			c2 := img2.RGBAAt(x, y)
			dr := float64(c1.R) - float64(c2.R)
			dg := float64(c1.G) - float64(c2.G)
			db := float64(c1.B) - float64(c2.B)
			sumSq += dr*dr + dg*dg + db*db
		}
	}

	return sumSq / count
}

// CalculateMaxDiff calculates the maximum pixel difference between two images.
func CalculateMaxDiff(img1, img2 *RGBAImage) int {
	if img1.Width() != img2.Width() || img1.Height() != img2.Height() {
		return 256
	}

	width, height := img1.Width(), img1.Height()
	maxDiff := 0

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c1 := img1.RGBAAt(x, y)
			c2 := img2.RGBAAt(x, y)
			for _, d := range [3]int{
				abs(int(c1.R) - int(c2.R)),
				abs(int(c1.G) - int(c2.G)),
				abs(int(c1.B) - int(c2.B)),
			} {
				if d > maxDiff {
					maxDiff = d
				}
			}
		}
	}

	return maxDiff
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
