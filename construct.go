package String_View

import (
	"unsafe"

	"String_View/contract"
)

// Container is the capability surface a foreign sequence type must expose
// to be viewed directly: a backing slice and a logical element count.
type Container[C Char] interface {
	Data() []C
	Len() int
}

// FromSlice views the whole slice. No terminator stripping happens here: a
// zero character in the last slot stays visible content. A nil slice
// yields an empty view.
func FromSlice[C Char](s []C) View[C] {
	return View[C]{data: s}
}

// FromFixed views a fixed character buffer the way C array literals are
// read: if the final element is the terminator, it is excluded from the
// visible content. The resulting view carries a fixed extent. Only this
// factory strips; every other source keeps its trailing zeros.
func FromFixed[C Char](buf []C) View[C] {
	n := len(buf)
	if n > 0 && buf[n-1] == 0 {
		n--
	}
	return View[C]{data: buf[:n:n], fixed: true}
}

// FromString reinterprets the string's bytes without copying. The view
// shares the string's memory, which is safe because views are read-only.
// Embedded zero bytes remain ordinary content.
func FromString(s string) View[byte] {
	if len(s) == 0 {
		return View[byte]{}
	}
	return View[byte]{data: unsafe.Slice(unsafe.StringData(s), len(s))}
}

// FromPtr views n characters starting at p. A nil pointer or a zero count
// yields an empty view without touching memory.
func FromPtr[C Char](p *C, n int) View[C] {
	if p == nil || n == 0 {
		return View[C]{}
	}
	contract.Require(n > 0, "negative view length %d", n)
	return View[C]{data: unsafe.Slice(p, n)}
}

// FromRange views the half-open range [first, last). Both pointers must
// come from the same buffer; a nil pair yields an empty view.
func FromRange[C Char](first, last *C) View[C] {
	if first == nil && last == nil {
		return View[C]{}
	}
	contract.Require(first != nil && last != nil, "pointer pair must be both set or both nil")
	lo := uintptr(unsafe.Pointer(first))
	hi := uintptr(unsafe.Pointer(last))
	size := unsafe.Sizeof(*first)
	contract.Require(hi >= lo && (hi-lo)%size == 0, "malformed pointer pair")
	return FromPtr(first, int((hi-lo)/size))
}

// FromContainer views any container exposing its backing data and count.
func FromContainer[C Char](c Container[C]) View[C] {
	if c == nil {
		return View[C]{}
	}
	return View[C]{data: c.Data()[:c.Len()]}
}
