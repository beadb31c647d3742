// Package window provides analysis window functions for spectral
// measurements with the algodft engine.
package window

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
	TypeFlatTop
)

var (
	errInvalidSize      = errors.New("window: size must be positive")
	errMismatchedLength = errors.New("window: samples and coefficients differ in length")
	errEmptyCoeffs      = errors.New("window: empty coefficients")
	errZeroCoherentGain = errors.New("window: zero coherent gain")
)

// String returns the window's conventional name.
func (t Type) String() string {
	switch t {
	case TypeRectangular:
		return "rectangular"
	case TypeHann:
		return "hann"
	case TypeHamming:
		return "hamming"
	case TypeBlackman:
		return "blackman"
	case TypeFlatTop:
		return "flattop"
	default:
		return "unknown"
	}
}

// Generate returns symmetric window coefficients of the given size.
// Unknown types fall back to the rectangular window. Returns nil when
// size is not positive.
func Generate(t Type, size int) []float64 {
	if size <= 0 {
		return nil
	}

	coeffs := make([]float64, size)
	if size == 1 {
		coeffs[0] = 1
		return coeffs
	}

	for i := range size {
		x := float64(i) / float64(size-1)
		coeffs[i] = evalWindow(t, x)
	}

	return coeffs
}

func evalWindow(t Type, x float64) float64 {
	switch t {
	case TypeHann:
		return 0.5 - 0.5*math.Cos(2*math.Pi*x)
	case TypeHamming:
		return 0.54 - 0.46*math.Cos(2*math.Pi*x)
	case TypeBlackman:
		return 0.42 - 0.5*math.Cos(2*math.Pi*x) + 0.08*math.Cos(4*math.Pi*x)
	case TypeFlatTop:
		return 1 -
			1.93*math.Cos(2*math.Pi*x) +
			1.29*math.Cos(4*math.Pi*x) -
			0.388*math.Cos(6*math.Pi*x) +
			0.028*math.Cos(8*math.Pi*x)
	default:
		return 1
	}
}

// Apply multiplies buf in-place by the selected window.
func Apply(t Type, buf []float64) {
	if len(buf) == 0 {
		return
	}

	coeffs := Generate(t, len(buf))
	vecmath.MulBlockInPlace(buf, coeffs)
}

// Hann returns Hann window coefficients.
func Hann(size int) ([]float64, error) {
	if size <= 0 {
		return nil, errInvalidSize
	}

	return Generate(TypeHann, size), nil
}

// Hamming returns Hamming window coefficients.
func Hamming(size int) ([]float64, error) {
	if size <= 0 {
		return nil, errInvalidSize
	}

	return Generate(TypeHamming, size), nil
}

// Blackman returns Blackman window coefficients.
func Blackman(size int) ([]float64, error) {
	if size <= 0 {
		return nil, errInvalidSize
	}

	return Generate(TypeBlackman, size), nil
}

// FlatTop returns 5-term flat-top window coefficients.
func FlatTop(size int) ([]float64, error) {
	if size <= 0 {
		return nil, errInvalidSize
	}

	return Generate(TypeFlatTop, size), nil
}

// ApplyCoefficients multiplies samples with coefficients and returns a new slice.
func ApplyCoefficients(samples, coeffs []float64) ([]float64, error) {
	if len(samples) != len(coeffs) {
		return nil, errMismatchedLength
	}

	out := make([]float64, len(samples))
	vecmath.MulBlock(out, samples, coeffs)

	return out, nil
}

// ApplyCoefficientsInPlace multiplies samples with coefficients in place.
func ApplyCoefficientsInPlace(samples, coeffs []float64) error {
	if len(samples) != len(coeffs) {
		return errMismatchedLength
	}

	vecmath.MulBlockInPlace(samples, coeffs)

	return nil
}

// EquivalentNoiseBandwidth returns the ENBW in bins for a window.
func EquivalentNoiseBandwidth(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	sum := 0.0
	sumSquares := 0.0

	for _, c := range coeffs {
		sum += c
		sumSquares += c * c
	}

	if sum == 0 {
		return 0, errZeroCoherentGain
	}

	return float64(len(coeffs)) * sumSquares / (sum * sum), nil
}
