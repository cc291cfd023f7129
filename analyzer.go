package rgbpca

import (
	"context"
	"fmt"
	"image"
	"io"
	"time"

	"github.com/wbrown/rgbpca/imageutil"
)

// Result is everything one analysis produces.
type Result struct {
	Width, Height int
	Moments       *Moments
	Eigen         *EigenDecomposition
	// Outputs[k] is the image reconstructed without eigen-axis k.
	Outputs [Axes]*PixelMatrix
	// Paths lists the written files, empty when nothing was written.
	Paths []string
}

// Stats holds per-stage timings of the last run.
type Stats struct {
	Decode      time.Duration
	Moments     time.Duration
	Decompose   time.Duration
	Reconstruct time.Duration
	Write       time.Duration
}

// Analyzer runs the colour decomposition pipeline. Its configuration is
// fixed after construction; a single Analyzer must not run concurrently
// with itself because it records Stats.
type Analyzer struct {
	// Configuration options
	OutputDir   string
	Format      string
	Parallel    bool
	MontagePath string
	TileWidth   int

	report io.Writer
	stats  Stats
}

// AnalyzerOption is a functional option for configuring an Analyzer.
type AnalyzerOption func(*Analyzer)

// NewAnalyzer creates a new Analyzer with the given options.
// Default values: OutputDir="result", Format="png", Parallel=false,
// no report, no montage, TileWidth=256.
func NewAnalyzer(opts ...AnalyzerOption) *Analyzer {
	a := &Analyzer{
		OutputDir: DefaultOutputDir,
		Format:    imageutil.FormatPNG,
		TileWidth: 256,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// WithOutputDir sets the results directory.
func WithOutputDir(dir string) AnalyzerOption {
	return func(a *Analyzer) {
		a.OutputDir = dir
	}
}

// WithFormat sets the output image format (png, jpg, gif, bmp, tiff).
func WithFormat(format string) AnalyzerOption {
	return func(a *Analyzer) {
		a.Format = imageutil.NormalizeFormat(format)
	}
}

// WithParallel computes the three reconstructions concurrently.
func WithParallel(parallel bool) AnalyzerOption {
	return func(a *Analyzer) {
		a.Parallel = parallel
	}
}

// WithReport prints the diagnostic report to w.
func WithReport(w io.Writer) AnalyzerOption {
	return func(a *Analyzer) {
		a.report = w
	}
}

// WithMontage also writes a captioned side-by-side sheet to path.
func WithMontage(path string, tileWidth int) AnalyzerOption {
	return func(a *Analyzer) {
		a.MontagePath = path
		a.TileWidth = tileWidth
	}
}

// Stats returns the timings of the most recent run.
func (a *Analyzer) Stats() Stats {
	return a.stats
}

// Analyze runs the numeric core on a decoded image: moments, eigen
// decomposition and the three single-axis reconstructions. It touches no
// files.
func (a *Analyzer) Analyze(ctx context.Context, img image.Image) (*Result, error) {
	start := time.Now()
	pixels := SampleImage(img)
	moments, err := EstimateMoments(pixels)
	if err != nil {
		return nil, stageErr(StageMoments, err)
	}
	afterMoments := time.Now()
	a.stats.Moments = afterMoments.Sub(start)

	eig, err := Decompose(moments.Covariance)
	if err != nil {
		return nil, stageErr(StageDecompose, err)
	}
	afterDecompose := time.Now()
	a.stats.Decompose = afterDecompose.Sub(afterMoments)

	outs, err := ReconstructAll(ctx, moments, eig, a.Parallel)
	if err != nil {
		return nil, stageErr(StageReconstruct, err)
	}
	a.stats.Reconstruct = time.Since(afterDecompose)

	return &Result{
		Width:   pixels.Width,
		Height:  pixels.Height,
		Moments: moments,
		Eigen:   eig,
		Outputs: outs,
	}, nil
}

// Run loads the image at path, analyzes it and writes the three
// reconstructions (and the montage, if configured). Any failure aborts
// the run; the returned error names the failing stage.
func (a *Analyzer) Run(ctx context.Context, path string) (*Result, error) {
	a.stats = Stats{}
	if err := CheckPath(path); err != nil {
		return nil, stageErr(StageInput, err)
	}

	start := time.Now()
	img, err := imageutil.LoadImage(path)
	if err != nil {
		return nil, stageErr(StageDecode, fmt.Errorf("%w: %v", ErrDecode, err))
	}
	a.stats.Decode = time.Since(start)

	res, err := a.Analyze(ctx, img)
	if err != nil {
		return nil, err
	}
	if a.report != nil {
		WriteReport(a.report, res)
	}

	start = time.Now()
	res.Paths, err = WriteResults(a.OutputDir, a.Format, res.Outputs)
	if err != nil {
		return nil, stageErr(StageWrite, err)
	}
	a.stats.Write = time.Since(start)

	if a.MontagePath != "" {
		if err := SaveMontage(a.MontagePath, img, res, a.TileWidth); err != nil {
			return nil, stageErr(StageMontage, err)
		}
		res.Paths = append(res.Paths, a.MontagePath)
	}

	if a.report != nil {
		WriteOutputs(a.report, res.Paths)
	}
	return res, nil
}
