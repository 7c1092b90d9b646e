package fixedstr

import (
	"fmt"
	"unsafe"
)

// MaxDigits is the longest decimal rendering of an integer that is
// bytes wide, counting the sign and one spare digit.
func MaxDigits(bytes int) int {
	return int(float64(bytes)*2.41) + 2
}

// RawToString writes the decimal form of v backward from the end of buf
// and returns the index of the first character written; the text is
// buf[i:]. It panics if buf is shorter than MaxDigits of v's size.
func RawToString[C Char, I Integer](buf []C, v I) int {
	return RawToStringTraits(CharTraits[C]{}, buf, v)
}

// RawToStringTraits is RawToString storing each character with tr.Assign.
func RawToStringTraits[C Char, I Integer, T Traits[C]](tr T, buf []C, v I) int {
	if need := MaxDigits(int(unsafe.Sizeof(v))); len(buf) < need {
		panic(fmt.Errorf("%w: have %d, need %d", ErrBufferTooSmall, len(buf), need))
	}
	if isSigned[I]() {
		return formatSigned(tr, buf, int64(v))
	}
	return formatUnsigned(tr, buf, uint64(v))
}

func isSigned[I Integer]() bool {
	return ^I(0) < 0
}

func formatSigned[C Char, T Traits[C]](tr T, buf []C, x int64) int {
	if x >= 0 {
		return formatUnsigned(tr, buf, uint64(x))
	}
	// negate in the unsigned domain so the minimum value survives
	i := formatUnsigned(tr, buf, -uint64(x))
	i--
	tr.Assign(&buf[i], '-')
	return i
}

func formatUnsigned[C Char, T Traits[C]](tr T, buf []C, u uint64) int {
	i := len(buf)
	if u == 0 {
		i--
		tr.Assign(&buf[i], '0')
		return i
	}
	for ; u > 0; u /= 10 {
		i--
		tr.Assign(&buf[i], C('0'+u%10))
	}
	return i
}
