package app

// FPSRing is a circular buffer of smoothed fps readings, feeding the
// settings-panel sparkline.
type FPSRing struct {
	buf   []float64
	pos   int
	count int
}

// NewFPSRing creates a new circular buffer with the given capacity.
func NewFPSRing(capacity int) *FPSRing {
	return &FPSRing{
		buf: make([]float64, capacity),
	}
}

// Push adds a value to the ring buffer.
func (r *FPSRing) Push(val float64) {
	r.buf[r.pos] = val
	r.pos = (r.pos + 1) % len(r.buf)
	if r.count < len(r.buf) {
		r.count++
	}
}

// Values returns all stored values in chronological order.
func (r *FPSRing) Values() []float64 {
	if r.count == 0 {
		return nil
	}
	result := make([]float64, r.count)
	if r.count < len(r.buf) {
		copy(result, r.buf[:r.count])
	} else {
		start := r.pos
		n := copy(result, r.buf[start:])
		copy(result[n:], r.buf[:start])
	}
	return result
}

// Len returns the number of stored values.
func (r *FPSRing) Len() int {
	return r.count
}
