package rgbpca

import (
	"errors"
	"fmt"
)

// Sentinel errors. Match them with errors.Is; they are wrapped with the
// failing stage before they reach the caller.
var (
	// ErrPathNotFound is returned when the input path does not exist.
	// It is the only recoverable condition: interactive callers re-prompt.
	ErrPathNotFound = errors.New("rgbpca: input path not found")

	// ErrDecode means the file exists but is not a supported image.
	ErrDecode = errors.New("rgbpca: cannot decode image")

	// ErrEmptyImage is returned for images with zero pixels, where the
	// mean is undefined.
	ErrEmptyImage = errors.New("rgbpca: image has no pixels")

	// ErrDecomposition is returned when the symmetric eigensolver fails
	// or is handed something other than a 3x3 matrix.
	ErrDecomposition = errors.New("rgbpca: eigen decomposition failed")

	// ErrWrite is returned when the results directory or an output file
	// cannot be created or written.
	ErrWrite = errors.New("rgbpca: cannot write results")

	// ErrAxis is returned for an eigen-axis index outside 0..2.
	ErrAxis = errors.New("rgbpca: axis out of range")
)

// Pipeline stage names used in StageError.
const (
	StageInput       = "input"
	StageDecode      = "decode"
	StageMoments     = "moments"
	StageDecompose   = "decompose"
	StageReconstruct = "reconstruct"
	StageWrite       = "write"
	StageMontage     = "montage"
)

// StageError records which pipeline stage failed.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func stageErr(stage string, err error) error {
	if err == nil {
		return nil
	}
	var se *StageError
	if errors.As(err, &se) {
		return err
	}
	return &StageError{Stage: stage, Err: err}
}
