package String_View

import "unicode/utf16"

// String materializes an owned string from the view's content. This is
// the only allocating operation on a view.
func (v View[C]) String() string {
	switch s := any(v.data).(type) {
	case []byte:
		return string(s)
	case []uint16:
		return string(utf16.Decode(s))
	case []rune:
		return string(s)
	}
	return ""
}

// Slice returns an owned copy of the characters, never the backing store.
func (v View[C]) Slice() []C {
	c := make([]C, len(v.data))
	copy(c, v.data)
	return c
}

// stringToElems decodes s at the width of C: bytes stay raw, UTF-16 gets
// encoded code units, runes get code points.
func stringToElems[C Char](s string) []C {
	var z C
	switch any(z).(type) {
	case uint16:
		enc := utf16.Encode([]rune(s))
		out := make([]C, len(enc))
		for i, u := range enc {
			out[i] = C(u)
		}
		return out
	case rune:
		rs := []rune(s)
		out := make([]C, len(rs))
		for i, r := range rs {
			out[i] = C(r)
		}
		return out
	default:
		out := make([]C, len(s))
		for i := 0; i < len(s); i++ {
			out[i] = C(s[i])
		}
		return out
	}
}
