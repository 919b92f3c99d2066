package String_View

import (
	"String_View/contract"
)

// Char enumerates the supported character widths: narrow bytes, UTF-16
// code units and full code points.
type Char interface {
	byte | uint16 | rune
}

// Dynamic marks a view whose length is only known at runtime.
const Dynamic = -1

// View
// View is a read-only, non-owning window over a run of characters. It
// never copies or frees the underlying buffer; the view is valid exactly
// as long as the buffer it was built from. Use it as a value type, like
// time.Time. Sharing a view across goroutines is safe as long as nobody
// mutates the buffer underneath it.
type View[C Char] struct {
	data  []C
	fixed bool // length was recorded from a fixed-size source
}

// Len returns the number of characters in the view.
func (v View[C]) Len() int {
	return len(v.data)
}

// ByteLen returns the view's content size in bytes.
func (v View[C]) ByteLen() int {
	return len(v.data) * elemSize[C]()
}

// IsEmpty reports whether the view has no characters.
func (v View[C]) IsEmpty() bool {
	return len(v.data) == 0
}

// Extent returns Dynamic, or the fixed length the view was built with.
func (v View[C]) Extent() int {
	if !v.fixed {
		return Dynamic
	}
	return len(v.data)
}

// At returns the character at index i. An out-of-range index is a
// precondition violation.
func (v View[C]) At(i int) C {
	contract.Require(i >= 0 && i < len(v.data), "index %d out of range [0,%d)", i, len(v.data))
	return v.data[i]
}

// WithExtent converts between extents. Any extent converts to Dynamic and
// a fixed extent converts to an equal fixed extent; refitting a dynamic
// view to a fixed extent is a precondition violation, the runtime analogue
// of the narrowing this rules out.
func (v View[C]) WithExtent(extent int) View[C] {
	if extent == Dynamic {
		return View[C]{data: v.data}
	}
	contract.Require(v.fixed, "cannot refit a dynamic view to fixed extent %d", extent)
	contract.Require(extent == len(v.data), "fixed extent %d does not match view length %d", extent, len(v.data))
	return v
}

// elemSize
func elemSize[C Char]() int {
	var z C
	switch any(z).(type) {
	case uint16:
		return 2
	case rune:
		return 4
	default:
		return 1
	}
}
