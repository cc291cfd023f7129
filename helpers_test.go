package rgbpca

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/wbrown/rgbpca/imageutil"
)

const epsTight = 1e-9

// rgbw is the 2x2 red/green/blue/white scenario image.
func rgbw() *imageutil.RGBAImage {
	return imageutil.CreateImageFromPixels(2, 2, []imageutil.RGB{
		{R: 255, G: 0, B: 0},
		{R: 0, G: 255, B: 0},
		{R: 0, G: 0, B: 255},
		{R: 255, G: 255, B: 255},
	})
}

// randomImage fills a width x height image with deterministic noise.
func randomImage(width, height int, seed uint64) *imageutil.RGBAImage {
	rng := rand.New(rand.NewSource(int64(seed ^ 0x9e3779b97f4a7c15)))
	img := imageutil.NewRGBAImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGB(x, y, imageutil.RGB{
				R: uint8(rng.Intn(256)),
				G: uint8(rng.Intn(256)),
				B: uint8(rng.Intn(256)),
			})
		}
	}
	return img
}

// decompose runs sampling, moments and the eigensolver on img.
func decompose(t *testing.T, img RGBSource) (*PixelMatrix, *Moments, *EigenDecomposition) {
	t.Helper()
	p := SamplePixels(img)
	m, err := EstimateMoments(p)
	require.NoError(t, err)
	e, err := Decompose(m.Covariance)
	require.NoError(t, err)
	return p, m, e
}

func requireMatrixClose(t *testing.T, want, got mat.Matrix, tol float64) {
	t.Helper()
	require.Truef(t, mat.EqualApprox(want, got, tol),
		"matrices differ:\nwant\n%v\ngot\n%v",
		mat.Formatted(want), mat.Formatted(got))
}

func requireInRange(t *testing.T, p *PixelMatrix) {
	t.Helper()
	for i, v := range p.Data {
		require.GreaterOrEqualf(t, v, MinChannel, "value %d below range", i)
		require.LessOrEqualf(t, v, MaxChannel, "value %d above range", i)
	}
}

func rowOf(p *PixelMatrix, i int) []float64 {
	r := p.Row(i)
	return r[:]
}
