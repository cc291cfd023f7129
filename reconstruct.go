package rgbpca

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// Color range every reconstructed channel is clamped to.
const (
	MinChannel = 0.0
	MaxChannel = 255.0
)

// Axes is the number of eigen-axes, one reconstruction per axis.
const Axes = Channels

// KeepAll keeps every eigen-axis; projecting with it is the identity.
var KeepAll = [Axes]bool{true, true, true}

// Projector returns V·D·Vᵀ where D is the diagonal 0/1 matrix given by
// keep. With orthonormal V this is the orthogonal projection onto the span
// of the kept eigenvectors, expressed in the RGB basis.
func Projector(v mat.Matrix, keep [Axes]bool) *mat.Dense {
	diag := make([]float64, Axes)
	for k, kept := range keep {
		if kept {
			diag[k] = 1
		}
	}

	var vd mat.Dense
	vd.Mul(v, mat.NewDiagDense(Axes, diag))

	p := mat.NewDense(Axes, Axes, nil)
	p.Mul(&vd, v.T())
	return p
}

// SuppressionOperator returns the rank-2 projector that removes the
// component along eigenvector k and keeps the other two.
func SuppressionOperator(v mat.Matrix, k int) (*mat.Dense, error) {
	keep, err := suppressMask(k)
	if err != nil {
		return nil, err
	}
	return Projector(v, keep), nil
}

func suppressMask(k int) ([Axes]bool, error) {
	if k < 0 || k >= Axes {
		return [Axes]bool{}, fmt.Errorf("%w: %d", ErrAxis, k)
	}
	keep := KeepAll
	keep[k] = false
	return keep, nil
}

// Reconstruct projects every centered pixel with SuppressionOperator(k),
// adds the mean back and clamps each channel to [0, 255]. The result is a
// fresh matrix in the original pixel order.
func Reconstruct(m *Moments, e *EigenDecomposition, k int) (*PixelMatrix, error) {
	keep, err := suppressMask(k)
	if err != nil {
		return nil, err
	}
	return ReconstructWith(m, e, keep)
}

// ReconstructWith reconstructs using an arbitrary set of kept axes.
// Keeping every axis reproduces the input pixels up to rounding.
func ReconstructWith(m *Moments, e *EigenDecomposition, keep [Axes]bool) (*PixelMatrix, error) {
	if m == nil || m.N == 0 || m.Centered == nil {
		return nil, ErrEmptyImage
	}
	if e == nil || e.Vectors == nil {
		return nil, ErrDecomposition
	}
	p := Projector(e.Vectors, keep)

	// Rows are pixels, so each projected row is (P·x)ᵀ = xᵀ·Pᵀ.
	var projected mat.Dense
	projected.Mul(m.Centered, p.T())

	out := &PixelMatrix{
		Width:  m.Width,
		Height: m.Height,
		Data:   make([]float64, m.N*Channels),
	}
	raw := projected.RawMatrix()
	for i := 0; i < m.N; i++ {
		row := raw.Data[i*raw.Stride : i*raw.Stride+Channels]
		off := i * Channels
		for c := 0; c < Channels; c++ {
			out.Data[off+c] = clampChannel(row[c] + m.Mean[c])
		}
	}
	return out, nil
}

// ReconstructAll produces the three single-axis suppressions, index k
// holding the image without axis k. The branches only read shared inputs,
// so with parallel set they run concurrently.
func ReconstructAll(ctx context.Context, m *Moments, e *EigenDecomposition, parallel bool) ([Axes]*PixelMatrix, error) {
	var outs [Axes]*PixelMatrix

	if !parallel {
		for k := 0; k < Axes; k++ {
			if err := ctx.Err(); err != nil {
				return outs, err
			}
			out, err := Reconstruct(m, e, k)
			if err != nil {
				return outs, err
			}
			outs[k] = out
		}
		return outs, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	for k := 0; k < Axes; k++ {
		k := k
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := Reconstruct(m, e, k)
			if err != nil {
				return err
			}
			outs[k] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return [Axes]*PixelMatrix{}, err
	}
	return outs, nil
}

func clampChannel(v float64) float64 {
	return math.Max(MinChannel, math.Min(MaxChannel, v))
}
