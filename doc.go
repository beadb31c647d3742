// Package algodft implements an in-place, radix-2 Cooley-Tukey FFT over
// split complex data (separate real and imaginary float64 slices).
//
// The transform size is a power of two, fixed when an Engine is created
// and reused across any number of Transform calls. This amortizes the
// setup cost (working buffers and the bit-reversal target table) over
// repeated transforms of equal length, which is the common shape of
// block-based DSP workloads.
//
// An Engine is not safe for concurrent Transform calls; use one Engine
// per goroutine. Independent Engines share no state.
package algodft
