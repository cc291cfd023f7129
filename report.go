package rgbpca

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/mat"
)

// WriteReport prints the colour statistics of a run for human inspection:
// channel means, covariance, eigenvalues and eigenvectors.
func WriteReport(w io.Writer, res *Result) {
	m, e := res.Moments, res.Eigen
	fmt.Fprintf(w, "Image: %dx%d (%d pixels)\n", res.Width, res.Height, m.N)
	fmt.Fprintf(w, "Mean R: %.2f, G: %.2f, B: %.2f\n", m.Mean[0], m.Mean[1], m.Mean[2])
	fmt.Fprintf(w, "Cov matrix:\n  %v\n", formatMatrix(m.Covariance))
	fmt.Fprintf(w, "Eigenvalues:\n  %v\n",
		formatMatrix(mat.NewVecDense(Axes, e.Values[:])))
	fmt.Fprintf(w, "Eigenvectors:\n  %v\n", formatMatrix(e.Vectors))

	share := e.ExplainedVariance()
	for k := 0; k < Axes; k++ {
		fmt.Fprintf(w, "Axis %d: lambda=%.4f (%.2f%% of variance)\n",
			k, e.Values[k], 100*share[k])
	}
}

// WriteOutputs lists the files a run produced.
func WriteOutputs(w io.Writer, paths []string) {
	fmt.Fprintf(w, "The %d modified images were saved:\n", len(paths))
	for _, p := range paths {
		fmt.Fprintf(w, "  %s\n", p)
	}
}

func formatMatrix(m mat.Matrix) fmt.Formatter {
	return mat.Formatted(m, mat.Prefix("  "), mat.Squeeze())
}
