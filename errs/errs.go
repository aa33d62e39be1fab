// Package errs defines the sentinel errors returned across galspc packages.
//
// Errors are wrapped with context (offsets, counts) using fmt.Errorf and %w, so callers
// should match them with errors.Is rather than by comparing strings.
package errs

import "errors"

// Decode errors. Each is fatal to the decode of one file only.
var (
	ErrMalformedHeader    = errors.New("malformed SPC header")
	ErrUnsupportedVersion = errors.New("unsupported SPC format version")
	ErrUnsupportedSubfile = errors.New("unsupported SPC subfile layout")
	ErrPointCountMismatch = errors.New("SPC point count mismatch")
)

// Transform and encode errors.
var (
	ErrInvalidThreshold      = errors.New("invalid threshold")
	ErrEmptyDocument         = errors.New("document has no source bytes")
	ErrPreservationRequired  = errors.New("y values not representable without altering the header")
	ErrValueNotRepresentable = errors.New("value not representable in fixed-point encoding")
)

// Snapshot and store errors.
var (
	ErrSnapshotCorrupted  = errors.New("snapshot corrupted")
	ErrInvalidCompression = errors.New("invalid compression type")
	ErrSizeLimitExceeded  = errors.New("decompressed data exceeds size limit")
	ErrInvalidFileName    = errors.New("invalid file name")
	ErrFileExists         = errors.New("file already exists")
)
