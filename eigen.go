package rgbpca

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// EigenDecomposition pairs the eigenvalues of a covariance matrix with its
// orthonormal eigenvectors. Column k of Vectors belongs to Values[k].
// The order is the solver's; nothing may assume it is sorted.
type EigenDecomposition struct {
	Values  [Channels]float64
	Vectors *mat.Dense
}

// Decompose diagonalizes a symmetric 3x3 matrix with gonum's symmetric
// eigensolver. A zero matrix is valid input: every direction is then an
// eigenvector and any orthonormal basis comes back.
func Decompose(cov mat.Symmetric) (*EigenDecomposition, error) {
	if n := cov.SymmetricDim(); n != Channels {
		return nil, fmt.Errorf("%w: expected %dx%d matrix, got %dx%d",
			ErrDecomposition, Channels, Channels, n, n)
	}

	var es mat.EigenSym
	if ok := es.Factorize(cov, true); !ok {
		return nil, fmt.Errorf("%w: solver did not converge", ErrDecomposition)
	}

	d := &EigenDecomposition{Vectors: mat.NewDense(Channels, Channels, nil)}
	copy(d.Values[:], es.Values(nil))
	es.VectorsTo(d.Vectors)
	return d, nil
}

// Vector returns eigenvector k as a column vector.
func (d *EigenDecomposition) Vector(k int) *mat.VecDense {
	return mat.VecDenseCopyOf(d.Vectors.ColView(k))
}

// Reconstruct rebuilds V·diag(λ)·Vᵀ, which equals the decomposed matrix
// up to rounding.
func (d *EigenDecomposition) Reconstruct() *mat.SymDense {
	var vl mat.Dense
	vl.Mul(d.Vectors, mat.NewDiagDense(Channels, d.Values[:]))

	var full mat.Dense
	full.Mul(&vl, d.Vectors.T())

	s := mat.NewSymDense(Channels, nil)
	for i := 0; i < Channels; i++ {
		for j := i; j < Channels; j++ {
			s.SetSym(i, j, full.At(i, j))
		}
	}
	return s
}

// ExplainedVariance returns each eigenvalue's share of the total variance.
// A flat image has zero total variance and yields all zeros.
func (d *EigenDecomposition) ExplainedVariance() [Channels]float64 {
	var total float64
	for _, v := range d.Values {
		total += v
	}
	var share [Channels]float64
	if total <= 0 {
		return share
	}
	for k, v := range d.Values {
		share[k] = v / total
	}
	return share
}
