package algodft

import "errors"

// Sentinel errors returned by Engine operations.
var (
	// ErrInvalidLength is returned when the requested transform size is
	// not valid. Init takes the base-2 logarithm of the size, so any
	// negative value is rejected.
	ErrInvalidLength = errors.New("algodft: invalid FFT length")

	// ErrNotInitialized is returned when Transform is called on an
	// Engine that was never initialized.
	ErrNotInitialized = errors.New("algodft: engine not initialized")

	// ErrLengthMismatch is returned when input slice sizes don't match
	// the size fixed by the last Init call.
	ErrLengthMismatch = errors.New("algodft: slice length mismatch")

	// ErrNilSlice is returned when a nil slice is passed to a transform method.
	ErrNilSlice = errors.New("algodft: nil slice")
)
