package fixedstr

import "errors"

var (
	ErrNotArray       = errors.New("buffer type is not an array")
	ErrElemMismatch   = errors.New("buffer element type does not match character type")
	ErrZeroLength     = errors.New("buffer must hold at least the terminator slot")
	ErrCapacityRange  = errors.New("capacity out of range")
	ErrLengthExceeded = errors.New("length exceeds fixed capacity")
	ErrBufferTooSmall = errors.New("conversion buffer too small")
	ErrInvalidConfig  = errors.New("invalid configuration")
)
