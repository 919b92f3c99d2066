package String_View

import "String_View/contract"

// ZView
// ZView is a view whose final character is guaranteed to be the zero
// terminator, for interop with terminator-expecting consumers. The
// guarantee is checked once, at construction.
type ZView[C Char] struct {
	v View[C]
}

// ZViewOf wraps a terminator-including slice. A missing final terminator
// is a precondition violation.
func ZViewOf[C Char](s []C) ZView[C] {
	contract.Require(len(s) > 0 && s[len(s)-1] == 0, "zero-terminated view requires a final terminator")
	return ZView[C]{v: View[C]{data: s}}
}

// Len returns the logical content length, terminator excluded.
func (z ZView[C]) Len() int {
	if z.v.Len() == 0 {
		return 0
	}
	return z.v.Len() - 1
}

// View returns the content excluding the terminator. O(1), no scanning.
func (z ZView[C]) View() View[C] {
	if z.v.Len() == 0 {
		return View[C]{}
	}
	return z.v.First(z.v.Len() - 1)
}

// Rescan re-derives the content by scanning the wrapped range for the
// terminator again. Useful after in-place truncation left an earlier
// embedded terminator than the nominal end.
func (z ZView[C]) Rescan() View[C] {
	return EnsureSentinel(z.v.data, 0)
}

// Raw hands back the terminator-including slice unchanged, without
// re-validation.
func (z ZView[C]) Raw() []C {
	return z.v.data
}
