package String_View

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareOrdering(t *testing.T) {
	cat := FromSlice([]byte("cat"))
	dog := FromSlice([]byte("dog"))

	assert.True(t, cat.Less(dog))
	assert.False(t, dog.Less(cat))
	assert.Equal(t, -1, cat.Compare(dog))
	assert.Equal(t, 1, dog.Compare(cat))
	assert.Equal(t, 0, cat.Compare(cat))
}

func TestEqualAcrossBuffers(t *testing.T) {
	// Equality is by content, not by buffer identity.
	a := FromSlice([]byte("cat"))
	b := FromSlice([]byte{'c', 'a', 't'})
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
}

func TestLengthMismatchNeverEqual(t *testing.T) {
	cat := FromSlice([]byte("cat"))
	ca := FromSlice([]byte("ca"))

	assert.False(t, cat.Equal(ca))
	assert.False(t, ca.Equal(cat))
	// Prefix ordering: the shorter sequence sorts first.
	assert.True(t, ca.Less(cat))
}

func TestForeignOperands(t *testing.T) {
	cat := FromSlice([]byte("cat"))

	assert.True(t, cat.EqualSlice([]byte("cat")))
	assert.False(t, cat.EqualSlice([]byte("ca")))
	assert.True(t, cat.EqualString("cat"))
	assert.Negative(t, cat.CompareString("dog"))
	assert.Positive(t, cat.CompareString("ca"))
	assert.Equal(t, 0, cat.CompareSlice([]byte("cat")))
}

func TestCompareWideWidths(t *testing.T) {
	// The generic loop must agree with the byte fast path's semantics.
	a := FromSlice([]rune("cat"))
	d := FromSlice([]rune("dog"))
	assert.True(t, a.Less(d))
	assert.True(t, a.EqualString("cat"))

	u := FromSlice([]uint16{'c', 'a', 't'})
	assert.True(t, u.EqualString("cat"))
	assert.Negative(t, u.CompareString("dog"))
}

func TestEmptyViewComparisons(t *testing.T) {
	empty := FromSlice[byte](nil)
	assert.True(t, empty.Equal(FromString("")))
	assert.True(t, empty.Less(FromString("a")))
	assert.False(t, FromString("a").Less(empty))
}
