package fixedstr

import (
	"bytes"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

func TestCompareCases(t *testing.T) {
	require.Equal(t, -1, Compare([]byte("ab"), []byte("abc")))
	require.Equal(t, 1, Compare([]byte("abc"), []byte("ab")))
	require.Equal(t, -1, Compare([]byte("abc"), []byte("abd")))
	require.Equal(t, 0, Compare([]byte("x"), []byte("x")))
	require.Equal(t, -1, Compare([]byte("abc"), []byte("b")))
	require.Equal(t, 1, Compare([]byte("b"), []byte("abc")))
	require.Equal(t, -1, Compare(nil, []byte("a")))
	require.Equal(t, 0, Compare[byte](nil, nil))
}

func TestCompareStrings(t *testing.T) {
	require.Equal(t, -1, CompareStrings("ab", "abc"))
	require.Equal(t, 1, CompareStrings("abc", "ab"))
	require.Equal(t, 0, CompareStrings("", ""))
	require.Equal(t, 1, CompareStrings("a", ""))
}

func TestCompareMatchesBytes(t *testing.T) {
	condition := func(a, b []byte) bool {
		return Compare(a, b) == bytes.Compare(a, b)
	}
	require.NoError(t, quick.Check(condition, &quick.Config{}))
}

func TestCompareAntisymmetric(t *testing.T) {
	condition := func(a, b []uint16) bool {
		return Compare(a, b) == -Compare(b, a)
	}
	require.NoError(t, quick.Check(condition, &quick.Config{}))
}

func TestCompareTraitsFold(t *testing.T) {
	require.Equal(t, 0, CompareTraits(FoldTraits{}, []byte("ABC"), []byte("abc")))
	require.Equal(t, -1, CompareTraits(FoldTraits{}, []byte("AB"), []byte("abc")))
	require.Equal(t, 1, CompareTraits(FoldTraits{}, []byte("abd"), []byte("ABC")))
}

func TestCompareStorage(t *testing.T) {
	a, err := New[byte, [8]byte](Options{})
	require.NoError(t, err)
	b, err := New[byte, [8]byte](Options{NoNullOptimization: true})
	require.NoError(t, err)
	require.Equal(t, encodedLayout, a.Layout())
	require.Equal(t, LayoutSized, b.Layout())
	fill(a, "ab")
	fill(b, "abc")
	require.Equal(t, -1, CompareStorage(a, b))
	require.Equal(t, 1, CompareStorage(b, a))
	fill(a, "abc")
	require.Equal(t, 0, CompareStorage(a, b))

	var z Storage[byte] = emptyStorage[byte]{}
	require.Equal(t, -1, CompareStorage(z, a))
	require.Equal(t, 0, CompareStorage(z, z))
}

func fill(s Storage[byte], text string) {
	copy(s.Data(), text)
	s.SetSize(len(text))
	s.Terminate()
}
