package psd

import "errors"

// Errors returned while assembling a PSD file.
var (
	// ErrUnsupportedCompression is returned when a caller requests a ZIP
	// compression variant. Only raw and RLE output are implemented.
	ErrUnsupportedCompression = errors.New("psd: compression method not supported")

	// ErrInvalidImage is returned when channel encoding is requested for
	// an image with zero height, or otherwise inconsistent dimensions.
	ErrInvalidImage = errors.New("psd: invalid image dimensions")
)
