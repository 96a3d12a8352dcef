package view

// Table is a two-dimensional window over a caller-owned buffer, such as
// one plane of an image. Width, height and stride measure a number of
// elements, not necessarily a size in bytes. The zero value is a valid,
// empty table.
//
// Stride is the element distance between the starts of adjacent rows,
// allowing padded or aligned rows. Well-formed tables have
// stride >= width; the type records what it is given and does not
// enforce that relationship.
//
// The table exposes construction and field access only. Callers address
// element (x, y) as base elems[y*stride + x] themselves, staying within
// [0, width) columns and [0, height) rows. A table whose width or
// height is zero denotes an empty region that must not be read or
// written through.
type Table[E Element] struct {
	elems  []E
	width  uint64
	height uint64
	stride uint64
}

// Aliases for the four concrete widths.
type (
	TableU8  = Table[uint8]
	TableU16 = Table[uint16]
	TableU32 = Table[uint32]
	TableU64 = Table[uint64]
)

// TableOf returns a table over elems with the given geometry. The table
// does not own elems.
func TableOf[E Element](elems []E, width, height, stride uint64) Table[E] {
	return Table[E]{elems: elems, width: width, height: height, stride: stride}
}

// Elems returns the underlying elements. The returned slice aliases the
// caller's buffer.
func (t Table[E]) Elems() []E { return t.elems }

// Width returns the number of usable elements per row.
func (t Table[E]) Width() uint64 { return t.width }

// Height returns the number of rows.
func (t Table[E]) Height() uint64 { return t.height }

// Stride returns the element distance between adjacent row starts.
func (t Table[E]) Stride() uint64 { return t.stride }

// IsEmpty reports whether the table denotes an empty region.
func (t Table[E]) IsEmpty() bool {
	return t.width == 0 || t.height == 0
}
