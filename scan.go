package String_View

import (
	"bytes"

	"String_View/contract"
)

// EnsureSentinel scans s for the first occurrence of sentinel and returns
// a view of everything before it. The slice length is the scan bound;
// reaching it without finding the sentinel violates the scan
// postcondition. Empty or nil input yields an empty view without scanning.
func EnsureSentinel[C Char](s []C, sentinel C) View[C] {
	if len(s) == 0 {
		return View[C]{}
	}
	i := scanFor(s, sentinel)
	contract.Ensure(i < len(s), "sentinel %d not found within %d characters", sentinel, len(s))
	return View[C]{data: s[:i:i]}
}

// EnsureZ scans s for the zero terminator and wraps the content together
// with its terminator as a ZView.
func EnsureZ[C Char](s []C) ZView[C] {
	if len(s) == 0 {
		// A terminator can never be present; fail the wrap precondition
		// without touching memory.
		return ZViewOf[C](nil)
	}
	n := EnsureSentinel(s, 0).Len()
	return ZViewOf(s[: n+1 : n+1])
}

// EnsureZPtr scans at most max characters starting at p. Interop entry for
// callers holding a raw terminator-expecting pointer.
func EnsureZPtr[C Char](p *C, max int) ZView[C] {
	return EnsureZ(FromPtr(p, max).data)
}

// scanFor returns the first index of sentinel in s, or len(s) when it is
// absent. Byte sequences go through the platform scan primitive; the
// other widths take the generic loop. Results are identical either way.
func scanFor[C Char](s []C, sentinel C) int {
	if b, ok := any(s).([]byte); ok {
		if i := bytes.IndexByte(b, byte(sentinel)); i >= 0 {
			return i
		}
		return len(s)
	}
	return scanLinear(s, sentinel)
}

// scanLinear is the width-independent fallback scan.
func scanLinear[C Char](s []C, sentinel C) int {
	for i, c := range s {
		if c == sentinel {
			return i
		}
	}
	return len(s)
}
