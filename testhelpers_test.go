package algodft

import (
	"math"
	"math/rand"
	"testing"
)

// Shared test helper functions used across multiple test files

func randomSplit(n int, seed int64) (re, im []float64) {
	rnd := rand.New(rand.NewSource(seed))

	re = make([]float64, n)
	im = make([]float64, n)

	for i := range n {
		re[i] = rnd.Float64()*2 - 1
		im[i] = rnd.Float64()*2 - 1
	}

	return re, im
}

// naiveDFT is the O(N^2) reference: X[k] = sum_j x[j] * exp(-2*pi*i*j*k/N)
// for the forward direction, conjugate rotation and 1/N scaling for the
// inverse.
func naiveDFT(re, im []float64, dir Direction) (outRe, outIm []float64) {
	n := len(re)
	outRe = make([]float64, n)
	outIm = make([]float64, n)

	sign := -1.0
	if dir == Inverse {
		sign = 1.0
	}

	for k := range n {
		var sumRe, sumIm float64

		for j := range n {
			angle := sign * 2 * math.Pi * float64(j) * float64(k) / float64(n)
			c, s := math.Cos(angle), math.Sin(angle)
			sumRe += re[j]*c - im[j]*s
			sumIm += re[j]*s + im[j]*c
		}

		outRe[k] = sumRe
		outIm[k] = sumIm
	}

	if dir == Inverse {
		for k := range n {
			outRe[k] /= float64(n)
			outIm[k] /= float64(n)
		}
	}

	return outRe, outIm
}

func maxMagnitude(re, im []float64) float64 {
	peak := 0.0
	for i := range re {
		if m := math.Hypot(re[i], im[i]); m > peak {
			peak = m
		}
	}

	return peak
}

// assertSplitClose fails when any bin of (gotRe, gotIm) deviates from
// (wantRe, wantIm) by more than tol relative to the largest bin.
func assertSplitClose(t *testing.T, gotRe, gotIm, wantRe, wantIm []float64, tol float64) {
	t.Helper()

	if len(gotRe) != len(wantRe) || len(gotIm) != len(wantIm) {
		t.Fatalf("length mismatch: got (%d, %d), want (%d, %d)",
			len(gotRe), len(gotIm), len(wantRe), len(wantIm))
	}

	scale := maxMagnitude(wantRe, wantIm)
	if scale < 1 {
		scale = 1
	}

	for i := range gotRe {
		diff := math.Hypot(gotRe[i]-wantRe[i], gotIm[i]-wantIm[i])
		if diff > tol*scale {
			t.Fatalf("bin %d: got (%g, %g), want (%g, %g), diff %g (tol %g)",
				i, gotRe[i], gotIm[i], wantRe[i], wantIm[i], diff, tol*scale)
		}
	}
}
