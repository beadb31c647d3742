package algodft

// TransformComplex computes the DFT of data in place in the given
// direction. It is a convenience wrapper over Transform for callers that
// keep interleaved complex samples; the split scratch it needs lives on
// the Engine, so steady-state calls do not allocate.
func (e *Engine) TransformComplex(data []complex128, dir Direction) error {
	if e.revTarget == nil {
		return ErrNotInitialized
	}

	if data == nil {
		return ErrNilSlice
	}

	if len(data) != e.n {
		return ErrLengthMismatch
	}

	if e.splitRe == nil {
		e.splitRe = make([]float64, e.n)
		e.splitIm = make([]float64, e.n)
	}

	for i, v := range data {
		e.splitRe[i] = real(v)
		e.splitIm[i] = imag(v)
	}

	if err := e.Transform(e.splitRe, e.splitIm, dir); err != nil {
		return err
	}

	for i := range data {
		data[i] = complex(e.splitRe[i], e.splitIm[i])
	}

	return nil
}

// ForwardComplex computes the unnormalized forward DFT of data in place.
func (e *Engine) ForwardComplex(data []complex128) error {
	return e.TransformComplex(data, Forward)
}

// InverseComplex computes the inverse DFT of data in place, scaled by 1/N.
func (e *Engine) InverseComplex(data []complex128) error {
	return e.TransformComplex(data, Inverse)
}
