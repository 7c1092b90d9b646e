package fixedstr

import (
	"fmt"
	"math"
)

// Width is the bit width of an unsigned size field.
type Width uint8

const (
	Width8  Width = 8
	Width16 Width = 16
	Width32 Width = 32
	Width64 Width = 64
)

var widths = [...]Width{Width8, Width16, Width32, Width64}

// Max returns the largest value a field of width w can hold.
func (w Width) Max() uint64 {
	switch w {
	case Width8:
		return math.MaxUint8
	case Width16:
		return math.MaxUint16
	case Width32:
		return math.MaxUint32
	case Width64:
		return math.MaxUint64
	default:
		return 0
	}
}

func (w Width) Bytes() int { return int(w) / 8 }

func (w Width) String() string {
	if w == 0 {
		return "none"
	}
	return fmt.Sprintf("uint%d", uint8(w))
}

// SmallestWidth returns the narrowest width able to represent n.
func SmallestWidth(n int) (Width, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", ErrCapacityRange, n)
	}
	for _, w := range widths {
		if uint64(n) <= w.Max() {
			return w, nil
		}
	}
	return 0, fmt.Errorf("%w: %d", ErrCapacityRange, n)
}
