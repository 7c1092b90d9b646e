package fixedstr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCharTraits(t *testing.T) {
	var tr CharTraits[byte]
	require.Equal(t, 0, tr.Compare([]byte("abc"), []byte("abd"), 2))
	require.Equal(t, -1, tr.Compare([]byte("abc"), []byte("abd"), 3))
	require.Equal(t, 1, tr.Compare([]byte("b"), []byte("a"), 1))
	require.Equal(t, 0, tr.Compare(nil, nil, 0))
	require.Equal(t, 2, tr.Find([]byte("abc"), 'c'))
	require.Equal(t, -1, tr.Find([]byte("abc"), 'z'))
	var c byte
	tr.Assign(&c, 'q')
	require.Equal(t, byte('q'), c)
}

func TestCharTraitsWide(t *testing.T) {
	var tr CharTraits[uint16]
	require.Equal(t, -1, tr.Compare([]uint16{0x41, 0x100}, []uint16{0x41, 0xFFFF}, 2))
	var sr CharTraits[int8]
	require.Equal(t, -1, sr.Compare([]int8{-5}, []int8{3}, 1))
}

func TestFoldTraits(t *testing.T) {
	var tr FoldTraits
	require.Equal(t, 0, tr.Compare([]byte("HeLLo"), []byte("hello"), 5))
	require.Equal(t, -1, tr.Compare([]byte("ABC"), []byte("abd"), 3))
	require.Equal(t, 1, tr.Find([]byte("xY"), 'y'))
	require.Equal(t, -1, tr.Find([]byte("xY"), 'z'))
}
