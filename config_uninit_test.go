//go:build fixedstr_uninit

package fixedstr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUninitTagSkipsZeroFill(t *testing.T) {
	require.True(t, allowUninitMem)
	require.True(t, DefaultOptions().AllowUninit)

	s, err := NewString[byte, [6]byte](Options{})
	require.NoError(t, err)
	require.NoError(t, s.Assign([]byte("abcde")))
	s.Clear()
	require.True(t, s.Empty())
	require.Equal(t, []byte{0}, s.CStr())
	require.Equal(t, []byte{0, 'b', 'c', 'd', 'e'}, s.st.Data()[:5])
}
