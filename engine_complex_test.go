package algodft

import (
	"fmt"
	"math/cmplx"
	"math/rand"
	"testing"
)

func randomComplex(n int, seed int64) []complex128 {
	rnd := rand.New(rand.NewSource(seed))

	data := make([]complex128, n)
	for i := range n {
		data[i] = complex(rnd.Float64()*2-1, rnd.Float64()*2-1)
	}

	return data
}

func TestComplexRoundTrip(t *testing.T) {
	t.Parallel()

	for logN := 0; logN <= 10; logN++ {
		t.Run(fmt.Sprintf("n=%d", 1<<uint(logN)), func(t *testing.T) {
			t.Parallel()

			eng, err := New(logN)
			if err != nil {
				t.Fatalf("New(%d): %v", logN, err)
			}

			data := randomComplex(eng.Len(), 555+int64(logN))
			want := append([]complex128(nil), data...)

			if err := eng.ForwardComplex(data); err != nil {
				t.Fatalf("ForwardComplex: %v", err)
			}

			if err := eng.InverseComplex(data); err != nil {
				t.Fatalf("InverseComplex: %v", err)
			}

			for i := range data {
				if cmplx.Abs(data[i]-want[i]) > 1e-9 {
					t.Fatalf("bin %d = %v, want %v", i, data[i], want[i])
				}
			}
		})
	}
}

func TestComplexMatchesSplit(t *testing.T) {
	t.Parallel()

	const logN = 7

	eng, err := New(logN)
	if err != nil {
		t.Fatalf("New(%d): %v", logN, err)
	}

	n := eng.Len()
	re, im := randomSplit(n, 888)

	data := make([]complex128, n)
	for i := range n {
		data[i] = complex(re[i], im[i])
	}

	if err := eng.Forward(re, im); err != nil {
		t.Fatalf("Forward: %v", err)
	}

	if err := eng.ForwardComplex(data); err != nil {
		t.Fatalf("ForwardComplex: %v", err)
	}

	for i := range n {
		if real(data[i]) != re[i] || imag(data[i]) != im[i] {
			t.Fatalf("bin %d: complex path %v, split path (%g, %g)",
				i, data[i], re[i], im[i])
		}
	}
}

func TestComplexErrors(t *testing.T) {
	t.Parallel()

	t.Run("uninitialized", func(t *testing.T) {
		t.Parallel()

		var eng Engine

		if err := eng.ForwardComplex([]complex128{}); err != ErrNotInitialized {
			t.Fatalf("err = %v, want ErrNotInitialized", err)
		}
	})

	t.Run("nil slice", func(t *testing.T) {
		t.Parallel()

		eng, err := New(2)
		if err != nil {
			t.Fatalf("New(2): %v", err)
		}

		if err := eng.ForwardComplex(nil); err != ErrNilSlice {
			t.Fatalf("err = %v, want ErrNilSlice", err)
		}
	})

	t.Run("length mismatch", func(t *testing.T) {
		t.Parallel()

		eng, err := New(2)
		if err != nil {
			t.Fatalf("New(2): %v", err)
		}

		if err := eng.ForwardComplex(make([]complex128, 3)); err != ErrLengthMismatch {
			t.Fatalf("err = %v, want ErrLengthMismatch", err)
		}
	})
}
