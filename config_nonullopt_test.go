//go:build fixedstr_nonullopt

package fixedstr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNoNullOptTagForcesSized(t *testing.T) {
	require.True(t, noNullOptimization)
	require.True(t, DefaultOptions().NoNullOptimization)

	s, err := New[byte, [8]byte](Options{})
	require.NoError(t, err)
	require.Equal(t, LayoutSized, s.Layout())
	_, ok := s.(*sizedStorage[byte, [8]byte, uint8])
	require.True(t, ok)

	w, err := New[uint16, [300]uint16](Options{NoNullOptimization: false})
	require.NoError(t, err)
	require.Equal(t, LayoutSized, w.Layout())

	p, err := Resolve[int8, [128]int8](Options{})
	require.NoError(t, err)
	require.Equal(t, LayoutSized, p.Layout)
	require.Equal(t, Width8, p.SizeWidth)

	str, err := NewString[byte, [4]byte](Options{})
	require.NoError(t, err)
	require.Equal(t, LayoutSized, str.Layout())

	z, err := New[byte, [1]byte](Options{})
	require.NoError(t, err)
	require.Equal(t, LayoutEmpty, z.Layout())
}
