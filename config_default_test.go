//go:build !fixedstr_nonullopt && !fixedstr_uninit

package fixedstr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultBuildKeepsNullOptimization(t *testing.T) {
	require.Equal(t, Options{}, DefaultOptions())

	s, err := New[byte, [8]byte](Options{})
	require.NoError(t, err)
	_, ok := s.(*encodedStorage[byte, [8]byte])
	require.True(t, ok)

	str, err := NewString[byte, [6]byte](Options{})
	require.NoError(t, err)
	require.NoError(t, str.Assign([]byte("abcde")))
	str.Clear()
	require.Equal(t, []byte{0, 0, 0, 0, 0}, str.st.Data()[:5])
}
