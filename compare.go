package String_View

import "bytes"

// Equal reports whether both views hold the same character sequence.
// Views of different lengths are never equal, prefix match or not.
func (v View[C]) Equal(o View[C]) bool {
	if len(v.data) != len(o.data) {
		return false
	}
	return v.Compare(o) == 0
}

// Compare orders two views lexicographically, byte fast path included.
func (v View[C]) Compare(o View[C]) int {
	if a, ok := any(v.data).([]byte); ok {
		return bytes.Compare(a, any(o.data).([]byte))
	}
	n := min(len(v.data), len(o.data))
	for i := 0; i < n; i++ {
		switch {
		case v.data[i] < o.data[i]:
			return -1
		case v.data[i] > o.data[i]:
			return 1
		}
	}
	switch {
	case len(v.data) < len(o.data):
		return -1
	case len(v.data) > len(o.data):
		return 1
	}
	return 0
}

// Less reports v < o. Derived from Compare so the ordering logic lives in
// one place; the remaining relations follow from Equal and Less.
func (v View[C]) Less(o View[C]) bool {
	return v.Compare(o) < 0
}

// Foreign operands are wrapped as views and delegated, so comparing a view
// against a slice or string is symmetric with comparing two views and
// shares one implementation.

// EqualSlice compares against a raw slice.
func (v View[C]) EqualSlice(s []C) bool {
	return v.Equal(FromSlice(s))
}

// CompareSlice orders against a raw slice.
func (v View[C]) CompareSlice(s []C) int {
	return v.Compare(FromSlice(s))
}

// EqualString compares against a Go string decoded at this view's width.
func (v View[C]) EqualString(s string) bool {
	return v.Equal(FromSlice(stringToElems[C](s)))
}

// CompareString orders against a Go string decoded at this view's width.
func (v View[C]) CompareString(s string) int {
	return v.Compare(FromSlice(stringToElems[C](s)))
}
