// Package errs defines the sentinel errors shared across the downsample
// module. Callers match them with errors.Is.
package errs

import "errors"

// Input-contract violations detected by validation before any bucketing
// work begins.
var (
	// ErrShapeMismatch reports row input that does not have exactly 2 columns.
	ErrShapeMismatch = errors.New("series must have exactly 2 columns")

	// ErrNotSorted reports a series whose x column is not non-decreasing.
	ErrNotSorted = errors.New("series must be sorted on the x column")

	// ErrOutOfRange reports a target count larger than the series length.
	ErrOutOfRange = errors.New("target count exceeds series length")

	// ErrTooFewPoints reports a target count below the minimum of 3 points.
	ErrTooFewPoints = errors.New("cannot downsample to fewer than 3 points")

	// ErrUnknownMethod reports an unrecognized downsampling method option.
	ErrUnknownMethod = errors.New("unknown downsampling method")
)

// Frame decoding errors.
var (
	// ErrFrameTooSmall reports input shorter than the fixed frame header.
	ErrFrameTooSmall = errors.New("frame data smaller than header")

	// ErrInvalidMagic reports data that does not start with the frame magic.
	ErrInvalidMagic = errors.New("invalid frame magic")

	// ErrUnsupportedVersion reports a frame version this build cannot decode.
	ErrUnsupportedVersion = errors.New("unsupported frame version")

	// ErrChecksumMismatch reports payload corruption detected via checksum.
	ErrChecksumMismatch = errors.New("frame payload checksum mismatch")

	// ErrPayloadTruncated reports a payload shorter than its length prefix.
	ErrPayloadTruncated = errors.New("frame payload truncated")
)
