package column

// Bitmap is a validity mask: bit i set means row i holds a value, bit i
// clear means row i is logically null regardless of underlying storage.
// The zero value is an "all valid" mask of any length, so columns without
// nulls never allocate one.
type Bitmap struct {
	bits []uint64
	n    int
}

// NewBitmap allocates a mask of n bits, all valid
func NewBitmap(n int) Bitmap {
	b := Bitmap{bits: make([]uint64, (n+63)/64), n: n}
	for i := range b.bits {
		b.bits[i] = ^uint64(0)
	}
	return b
}

// Valid reports whether row i is valid. An unallocated mask is all valid.
func (b Bitmap) Valid(i int) bool {
	if b.bits == nil {
		return true
	}
	return b.bits[i/64]&(1<<(uint(i)%64)) != 0
}

// SetNull marks row i as null. Panics on an unallocated mask.
func (b Bitmap) SetNull(i int) {
	b.bits[i/64] &^= 1 << (uint(i) % 64)
}

// SetValid marks row i as valid. Panics on an unallocated mask.
func (b Bitmap) SetValid(i int) {
	b.bits[i/64] |= 1 << (uint(i) % 64)
}

// Allocated reports whether the mask has backing storage
func (b Bitmap) Allocated() bool {
	return b.bits != nil
}

// Covers reports whether the mask can answer Valid for rows [0, n).
// The zero mask covers any length.
func (b Bitmap) Covers(n int) bool {
	return b.bits == nil || b.n >= n
}

// andBitmaps intersects two masks over n rows. The zero mask is the
// identity on either side.
func andBitmaps(a, b Bitmap, n int) Bitmap {
	if !a.Allocated() {
		return b
	}
	if !b.Allocated() {
		return a
	}
	out := NewBitmap(n)
	for i := 0; i < n; i++ {
		if !a.Valid(i) || !b.Valid(i) {
			out.SetNull(i)
		}
	}
	return out
}

// gatherBitmap builds the mask for a gathered column: out bit k mirrors
// src bit indices[k]. Returns the zero mask when src is all valid.
func gatherBitmap(src Bitmap, indices []int) Bitmap {
	if !src.Allocated() {
		return Bitmap{}
	}
	out := NewBitmap(len(indices))
	for k, idx := range indices {
		if !src.Valid(idx) {
			out.SetNull(k)
		}
	}
	return out
}

// concatBitmaps stitches per-part masks into one mask of total length.
// lengths[i] is the row count of part i. Returns the zero mask when every
// part is all valid.
func concatBitmaps(masks []Bitmap, lengths []int) Bitmap {
	allValid := true
	total := 0
	for i, m := range masks {
		total += lengths[i]
		if m.Allocated() {
			allValid = false
		}
	}
	if allValid {
		return Bitmap{}
	}
	out := NewBitmap(total)
	pos := 0
	for i, m := range masks {
		for r := 0; r < lengths[i]; r++ {
			if !m.Valid(r) {
				out.SetNull(pos + r)
			}
		}
		pos += lengths[i]
	}
	return out
}
