package domain

import "errors"

// Domain errors represent failures of the conversion pipeline.
// Per-source errors are absorbed by the packer (the source is skipped);
// batch and writer errors are fatal for the run.
var (
	// ErrEmptyInput indicates a source yielded no extractable text.
	// Recoverable: the source is skipped with a warning.
	ErrEmptyInput = errors.New("empty input")

	// ErrInvalidInput indicates malformed or unreadable source content.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates a file type outside the recognised set.
	ErrUnsupportedType = errors.New("unsupported file type")

	// ErrWrite indicates a batch artifact could not be persisted.
	// Fatal for the run; batches already written remain valid.
	ErrWrite = errors.New("write failed")

	// ErrEstimationInconsistency indicates a serialized batch exceeded
	// its admission estimate. This is an internal fault, never expected
	// under correct estimator behaviour, and is fatal for the run.
	ErrEstimationInconsistency = errors.New("size estimate inconsistency")

	// ErrBatchSealed indicates an append to a batch that was already closed.
	ErrBatchSealed = errors.New("batch sealed")
)
