package view

import "go.uber.org/zap"

// Element enumerates the four fixed element widths a window can carry.
type Element interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// View is a one-dimensional window over a caller-owned buffer. Len
// measures a number of elements, not necessarily a size in bytes. The
// zero value is a valid, empty view.
type View[E Element] struct {
	elems []E
}

// Aliases for the four concrete widths, matching what generated code
// names in its signatures.
type (
	U8  = View[uint8]
	U16 = View[uint16]
	U32 = View[uint32]
	U64 = View[uint64]
)

// Of returns a view over elems. The view does not own elems; it is
// valid only as long as elems' backing array is.
func Of[E Element](elems []E) View[E] {
	return View[E]{elems: elems}
}

// Len returns the number of elements in the window.
func (v View[E]) Len() uint64 {
	return uint64(len(v.elems))
}

// IsEmpty reports whether the window contains no elements.
func (v View[E]) IsEmpty() bool {
	return len(v.elems) == 0
}

// Elems returns the windowed elements for reading and writing. The
// returned slice aliases the underlying buffer.
func (v View[E]) Elems() []E {
	return v.elems
}

// Prefix returns v[0:j].
//
// It returns an empty view if j is out of bounds.
func (v View[E]) Prefix(j uint64) View[E] {
	if j > uint64(len(v.elems)) {
		clamped("Prefix", 0, j, uint64(len(v.elems)))
		return View[E]{}
	}
	return View[E]{elems: v.elems[:j]}
}

// Suffix returns v[i:].
//
// It returns an empty view if i is out of bounds.
func (v View[E]) Suffix(i uint64) View[E] {
	if i > uint64(len(v.elems)) {
		clamped("Suffix", i, 0, uint64(len(v.elems)))
		return View[E]{}
	}
	return View[E]{elems: v.elems[i:]}
}

// Range returns v[i:j].
//
// It returns an empty view if i or j is out of bounds.
func (v View[E]) Range(i, j uint64) View[E] {
	if i > j || j > uint64(len(v.elems)) {
		clamped("Range", i, j, uint64(len(v.elems)))
		return View[E]{}
	}
	return View[E]{elems: v.elems[i:j]}
}

// ClampedPrefix returns up to the first n elements of v.
func (v View[E]) ClampedPrefix(n uint64) View[E] {
	if uint64(len(v.elems)) > n {
		return View[E]{elems: v.elems[:n]}
	}
	return v
}

// ClampedSuffix returns up to the last n elements of v.
func (v View[E]) ClampedSuffix(n uint64) View[E] {
	if m := uint64(len(v.elems)); m > n {
		return View[E]{elems: v.elems[m-n:]}
	}
	return v
}

// Equal reports whether v and o denote the same window: the same base
// and the same count. All empty views are equal to one another.
func (v View[E]) Equal(o View[E]) bool {
	if len(v.elems) != len(o.elems) {
		return false
	}
	return len(v.elems) == 0 || &v.elems[0] == &o.elems[0]
}

// Copy copies min(dst.Len(), src.Len()) elements from src to dst and
// returns the number copied. Overlapping windows are handled like the
// built-in copy. Empty views are valid and result in a no-op.
func Copy[E Element](dst, src View[E]) uint64 {
	return uint64(copy(dst.elems, src.elems))
}

func clamped(op string, i, j, n uint64) {
	Logger().Debug("sub-window clamped to empty",
		zap.String("op", op),
		zap.Uint64("i", i),
		zap.Uint64("j", j),
		zap.Uint64("len", n),
	)
}
