package rgbpca

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/wbrown/rgbpca/imageutil"
)

func requireOrthonormal(t *testing.T, v *mat.Dense) {
	t.Helper()
	var vtv mat.Dense
	vtv.Mul(v.T(), v)
	requireMatrixClose(t, eye(), &vtv, 1e-10)
}

func eye() *mat.Dense {
	return mat.NewDense(Channels, Channels, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
}

func TestDecomposeReconstructsCovariance(t *testing.T) {
	for _, img := range []*imageutil.RGBAImage{
		randomImage(16, 16, 7),
		imageutil.CreateGradientImage(32, 8),
		imageutil.CreateColorBarsImage(64, 4),
		rgbw(),
	} {
		_, m, e := decompose(t, img)
		requireOrthonormal(t, e.Vectors)
		requireMatrixClose(t, m.Covariance, e.Reconstruct(), 1e-8)

		// Each column satisfies Σ·v = λ·v.
		for k := 0; k < Axes; k++ {
			var sv mat.VecDense
			sv.MulVec(m.Covariance, e.Vector(k))
			var lv mat.VecDense
			lv.ScaleVec(e.Values[k], e.Vector(k))
			requireMatrixClose(t, &lv, &sv, 1e-8)
		}
	}
}

func TestDecomposeEigenvaluesNonNegative(t *testing.T) {
	_, _, e := decompose(t, randomImage(20, 20, 3))
	for k, v := range e.Values {
		assert.GreaterOrEqual(t, v, -1e-9, "eigenvalue %d", k)
	}
}

func TestDecomposeZeroMatrix(t *testing.T) {
	e, err := Decompose(mat.NewSymDense(Channels, nil))
	require.NoError(t, err)
	for _, v := range e.Values {
		assert.InDelta(t, 0, v, 1e-12)
	}
	requireOrthonormal(t, e.Vectors)

	flat := &EigenDecomposition{Vectors: eye()}
	assert.Equal(t, [Channels]float64{}, flat.ExplainedVariance())
}

func TestDecomposeRejectsWrongShape(t *testing.T) {
	_, err := Decompose(mat.NewSymDense(2, []float64{1, 0, 0, 1}))
	assert.ErrorIs(t, err, ErrDecomposition)
}

func TestExplainedVarianceSumsToOne(t *testing.T) {
	_, _, e := decompose(t, randomImage(10, 10, 11))
	share := e.ExplainedVariance()
	assert.InDelta(t, 1.0, share[0]+share[1]+share[2], 1e-12)
}
