package common

import (
	"math"
	"math/bits"
	"reflect"
)

// IsCharKind reports whether k can be used as a character element.
func IsCharKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int8, reflect.Int16, reflect.Int32,
		reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return true
	default:
		return false
	}
}

// IsSigned reports whether k is a signed integer kind.
func IsSigned(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	default:
		return false
	}
}

// FixedSize returns the byte width for fixed-size integer kinds.
func FixedSize(k reflect.Kind) int {
	switch k {
	case reflect.Int8, reflect.Uint8:
		return 1
	case reflect.Int16, reflect.Uint16:
		return 2
	case reflect.Int32, reflect.Uint32:
		return 4
	case reflect.Int64, reflect.Uint64:
		return 8
	case reflect.Int, reflect.Uint, reflect.Uintptr:
		return bits.UintSize / 8
	default:
		return -1
	}
}

// MaxOf returns the largest value representable by integer kind k,
// or 0 if k is not an integer kind.
func MaxOf(k reflect.Kind) uint64 {
	switch k {
	case reflect.Int8:
		return math.MaxInt8
	case reflect.Uint8:
		return math.MaxUint8
	case reflect.Int16:
		return math.MaxInt16
	case reflect.Uint16:
		return math.MaxUint16
	case reflect.Int32:
		return math.MaxInt32
	case reflect.Uint32:
		return math.MaxUint32
	case reflect.Int64:
		return math.MaxInt64
	case reflect.Uint64:
		return math.MaxUint64
	case reflect.Int:
		return math.MaxInt
	case reflect.Uint, reflect.Uintptr:
		return math.MaxUint
	default:
		return 0
	}
}
