package algodft

import (
	"math"

	imath "github.com/cwbudde/algo-dft/internal/math"
)

// Engine computes in-place radix-2 FFTs of one fixed, power-of-two size.
//
// The size is set by New or Init and reused across any number of
// Transform calls; the working buffers and the bit-reversal target table
// are allocated once per initialization. An Engine must not be used for
// concurrent Transform calls — create one Engine per goroutine instead.
//
// The zero Engine is valid but uninitialized; Transform on it returns
// ErrNotInitialized.
type Engine struct {
	n    int
	logN int
	invN float64

	// Working storage, one slot per sample. Values are overwritten on
	// every Transform; the slot order itself never changes after Init.
	workRe []float64
	workIm []float64

	// revTarget[k] is the output position of working slot k: the
	// bit-reversal of k over logN bits. Always a permutation of 0..n-1.
	revTarget []int

	// Split scratch for the []complex128 convenience methods, allocated
	// lazily on first use so split-form callers never pay for it.
	splitRe []float64
	splitIm []float64
}

// New returns an Engine for transforms of length 1<<logN.
// logN = 0 gives the trivial length-1 pass-through transform.
func New(logN int) (*Engine, error) {
	e := &Engine{}
	if err := e.Init(logN); err != nil {
		return nil, err
	}

	return e, nil
}

// Init sizes the engine for transforms of length 1<<logN, replacing any
// prior state. It must not be called concurrently with Transform.
func (e *Engine) Init(logN int) error {
	if logN < 0 {
		return ErrInvalidLength
	}

	n := 1 << uint(logN)

	e.n = n
	e.logN = logN
	e.invN = 1.0 / float64(n)
	e.workRe = make([]float64, n)
	e.workIm = make([]float64, n)
	e.revTarget = imath.ComputeBitReversalIndices(n)
	e.splitRe = nil
	e.splitIm = nil

	return nil
}

// Len returns the transform size N, or 0 for an uninitialized Engine.
func (e *Engine) Len() int {
	return e.n
}

// Log2Len returns log2 of the transform size.
func (e *Engine) Log2Len() int {
	return e.logN
}

// Transform computes the DFT of the split complex sequence (re, im) in
// the given direction, overwriting both slices with the result in
// natural bin order. The inverse direction folds the 1/N normalization
// into the transform. Both slices must have exactly Len() elements.
func (e *Engine) Transform(re, im []float64, dir Direction) error {
	if e.revTarget == nil {
		return ErrNotInitialized
	}

	if re == nil || im == nil {
		return ErrNilSlice
	}

	if len(re) != e.n || len(im) != e.n {
		return ErrLengthMismatch
	}

	e.load(re, im, dir)
	e.butterflies(dir)
	e.unscramble(re, im)

	return nil
}

// Forward computes the unnormalized forward DFT of (re, im) in place.
func (e *Engine) Forward(re, im []float64) error {
	return e.Transform(re, im, Forward)
}

// Inverse computes the inverse DFT of (re, im) in place, scaled by 1/N.
func (e *Engine) Inverse(re, im []float64) error {
	return e.Transform(re, im, Inverse)
}

// load copies the caller's samples into the working slots. The inverse
// direction scales by 1/N here so no separate normalization pass runs.
func (e *Engine) load(re, im []float64, dir Direction) {
	if dir == Inverse {
		for k := range e.n {
			e.workRe[k] = re[k] * e.invN
			e.workIm[k] = im[k] * e.invN
		}

		return
	}

	copy(e.workRe, re)
	copy(e.workIm, im)
}

// butterflies runs the logN decimation-in-frequency stages over the
// working slots. Stage geometry starts at numFlies = span = N/2 with
// block spacing N and halves each stage while the twiddle index step
// doubles; the running twiddle factor is regenerated by complex
// multiplication instead of a precomputed table.
func (e *Engine) butterflies(dir Direction) {
	n := e.n
	numFlies := n >> 1
	span := n >> 1
	spacing := n
	wIndexStep := 1

	for range e.logN {
		angleInc := float64(wIndexStep) * imath.TwoPi / float64(n)
		if dir == Forward {
			// Forward and inverse rotate conjugately.
			angleInc = -angleInc
		}

		wMulRe := math.Cos(angleInc)
		wMulIm := math.Sin(angleInc)

		for start := 0; start < n; start += spacing {
			// Twiddle restarts at W^0 for every block.
			wRe, wIm := 1.0, 0.0

			for k := range numFlies {
				top := start + k
				bot := top + span

				topRe, topIm := e.workRe[top], e.workIm[top]
				botRe, botIm := e.workRe[bot], e.workIm[bot]

				e.workRe[top] = topRe + botRe
				e.workIm[top] = topIm + botIm

				diffRe := topRe - botRe
				diffIm := topIm - botIm
				e.workRe[bot] = diffRe*wRe - diffIm*wIm
				e.workIm[bot] = diffRe*wIm + diffIm*wRe

				wRe, wIm = wRe*wMulRe-wIm*wMulIm, wRe*wMulIm+wIm*wMulRe
			}
		}

		numFlies >>= 1
		span >>= 1
		spacing >>= 1
		wIndexStep <<= 1
	}
}

// unscramble writes each working slot to its bit-reversed output
// position, undoing the scrambled order the DIF stages leave behind.
func (e *Engine) unscramble(re, im []float64) {
	for k, target := range e.revTarget {
		re[target] = e.workRe[k]
		im[target] = e.workIm[k]
	}
}
