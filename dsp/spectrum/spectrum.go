// Package spectrum derives magnitude and power spectra from the split
// complex output of an algodft.Engine.
package spectrum

import (
	"errors"

	algodft "github.com/cwbudde/algo-dft"
	"github.com/cwbudde/algo-vecmath"
)

var (
	errNilEngine        = errors.New("spectrum: nil engine")
	errMismatchedLength = errors.New("spectrum: slice length mismatch")
)

// Magnitude returns |X[k]| = sqrt(re[k]^2 + im[k]^2) for each bin.
//
// This uses SIMD-optimized implementations when available (AVX2, SSE2,
// NEON), so it is the preferred path for large spectra.
func Magnitude(re, im []float64) []float64 {
	if len(re) == 0 || len(re) != len(im) {
		return nil
	}

	out := make([]float64, len(re))
	vecmath.Magnitude(out, re, im)

	return out
}

// MagnitudeInto computes |X[k]| into dst without allocating.
// All three slices must have the same length.
func MagnitudeInto(dst, re, im []float64) error {
	if len(dst) != len(re) || len(re) != len(im) {
		return errMismatchedLength
	}

	vecmath.Magnitude(dst, re, im)

	return nil
}

// Power returns |X[k]|^2 = re[k]^2 + im[k]^2 for each bin.
func Power(re, im []float64) []float64 {
	if len(re) == 0 || len(re) != len(im) {
		return nil
	}

	out := make([]float64, len(re))
	vecmath.Power(out, re, im)

	return out
}

// PowerInto computes |X[k]|^2 into dst without allocating.
// All three slices must have the same length.
func PowerInto(dst, re, im []float64) error {
	if len(dst) != len(re) || len(re) != len(im) {
		return errMismatchedLength
	}

	vecmath.Power(dst, re, im)

	return nil
}

// Energy returns the total energy sum |X[k]|^2 of a split spectrum.
// By Parseval's theorem this equals N times the energy of the time
// sequence the spectrum was computed from.
func Energy(re, im []float64) float64 {
	total := 0.0
	for i := range re {
		total += re[i]*re[i] + im[i]*im[i]
	}

	return total
}

// OneSided runs a forward transform of the real samples through eng and
// returns the one-sided magnitude spectrum: bins 0 (DC) through N/2
// (Nyquist), N/2+1 values. The samples slice is not modified. The
// engine must be sized to len(samples).
func OneSided(eng *algodft.Engine, samples []float64) ([]float64, error) {
	if eng == nil {
		return nil, errNilEngine
	}

	n := eng.Len()
	if len(samples) != n {
		return nil, errMismatchedLength
	}

	re := append([]float64(nil), samples...)
	im := make([]float64, n)

	if err := eng.Forward(re, im); err != nil {
		return nil, err
	}

	bins := n/2 + 1
	out := make([]float64, bins)
	vecmath.Magnitude(out, re[:bins], im[:bins])

	return out, nil
}
