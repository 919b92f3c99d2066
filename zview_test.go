package String_View

import (
	"testing"

	"github.com/stretchr/testify/require"

	"String_View/contract"
)

func TestZViewOf(t *testing.T) {
	z := ZViewOf([]byte{'a', 'b', 0})
	require.Equal(t, 2, z.Len())
	require.True(t, z.View().EqualString("ab"))

	expectViolation(t, contract.Precondition, func() {
		ZViewOf([]byte{'a', 'b'})
	})
	expectViolation(t, contract.Precondition, func() {
		ZViewOf[byte](nil)
	})
}

func TestZViewViewIdempotent(t *testing.T) {
	z := ZViewOf([]byte{'a', 'b', 0})
	first := z.View()
	second := z.View()
	require.True(t, first.Equal(second))
}

func TestZViewRescanHonorsEmbeddedTerminator(t *testing.T) {
	// After in-place truncation the nominal end may lie past an earlier
	// terminator; Rescan finds the earlier one, View does not.
	buf := []byte{'a', 0, 'b', 0}
	z := ZViewOf(buf)

	require.Equal(t, 3, z.View().Len())
	rescanned := z.Rescan()
	require.Equal(t, 1, rescanned.Len())
	require.True(t, rescanned.EqualString("a"))
}

func TestZViewRawSharesBacking(t *testing.T) {
	buf := []byte{'h', 'i', 0}
	z := ZViewOf(buf)

	raw := z.Raw()
	require.Len(t, raw, 3)
	require.Same(t, &buf[0], &raw[0])
	require.Equal(t, byte(0), raw[len(raw)-1])
}

func TestZViewWideWidths(t *testing.T) {
	z := ZViewOf([]uint16{'h', 'i', 0})
	require.Equal(t, 2, z.Len())
	require.Equal(t, "hi", z.View().String())
}
