package rgbpca

import (
	"gonum.org/v1/gonum/mat"
)

// Moments holds the first and second moments of an image's colour cloud.
type Moments struct {
	// Width and Height are the sampled image's dimensions.
	Width, Height int
	// N is the number of pixels.
	N int
	// Mean is the per-channel arithmetic mean.
	Mean [Channels]float64
	// Centered is the N x 3 pixel table with Mean subtracted from every row.
	Centered *mat.Dense
	// Covariance is the population covariance Centeredᵀ·Centered / N.
	Covariance *mat.SymDense
}

// EstimateMoments computes the mean vector, the centered data and the
// population covariance (divided by N, not N-1) of p.
//
// An image without pixels has no mean and yields ErrEmptyImage.
func EstimateMoments(p *PixelMatrix) (*Moments, error) {
	n := p.Len()
	if n == 0 {
		return nil, ErrEmptyImage
	}

	var sum [Channels]float64
	for i := 0; i < n; i++ {
		row := p.Row(i)
		for c := 0; c < Channels; c++ {
			sum[c] += row[c]
		}
	}
	m := &Moments{Width: p.Width, Height: p.Height, N: n}
	for c := 0; c < Channels; c++ {
		m.Mean[c] = sum[c] / float64(n)
	}

	centered := make([]float64, len(p.Data))
	for i := 0; i < n; i++ {
		off := i * Channels
		for c := 0; c < Channels; c++ {
			centered[off+c] = p.Data[off+c] - m.Mean[c]
		}
	}
	m.Centered = mat.NewDense(n, Channels, centered)

	// SymOuterK computes alpha·X·Xᵀ; with X = Centeredᵀ that is the
	// scaled Gram matrix of the columns, symmetric by construction.
	m.Covariance = mat.NewSymDense(Channels, nil)
	m.Covariance.SymOuterK(1/float64(n), m.Centered.T())
	return m, nil
}

// MeanVector returns Mean as a gonum vector.
func (m *Moments) MeanVector() *mat.VecDense {
	return mat.NewVecDense(Channels, []float64{m.Mean[0], m.Mean[1], m.Mean[2]})
}
