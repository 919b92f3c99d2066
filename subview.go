package String_View

import (
	"iter"

	"String_View/contract"
)

// Subviews re-slice the same buffer; nothing is copied and the result
// carries a dynamic extent.

// First returns a view of the first n characters.
func (v View[C]) First(n int) View[C] {
	contract.Require(n >= 0 && n <= len(v.data), "first(%d) out of range [0,%d]", n, len(v.data))
	return View[C]{data: v.data[:n]}
}

// Last returns a view of the last n characters.
func (v View[C]) Last(n int) View[C] {
	contract.Require(n >= 0 && n <= len(v.data), "last(%d) out of range [0,%d]", n, len(v.data))
	return View[C]{data: v.data[len(v.data)-n:]}
}

// Subview returns a view of count characters starting at offset.
func (v View[C]) Subview(offset, count int) View[C] {
	contract.Require(offset >= 0 && offset <= len(v.data), "offset %d out of range [0,%d]", offset, len(v.data))
	contract.Require(count >= 0 && count <= len(v.data)-offset, "count %d out of range [0,%d]", count, len(v.data)-offset)
	return View[C]{data: v.data[offset : offset+count]}
}

// All iterates the view front to back. The sequence is restartable and
// yields element copies, never references into the buffer.
func (v View[C]) All() iter.Seq2[int, C] {
	return func(yield func(int, C) bool) {
		for i, c := range v.data {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Backward iterates the view back to front.
func (v View[C]) Backward() iter.Seq2[int, C] {
	return func(yield func(int, C) bool) {
		for i := len(v.data) - 1; i >= 0; i-- {
			if !yield(i, v.data[i]) {
				return
			}
		}
	}
}
