package fixedstr

// Char is the set of element types a fixed string can be built from.
type Char interface {
	~uint8 | ~uint16 | ~uint32 | ~int8 | ~int16 | ~int32
}

// Integer is the set of types RawToString accepts.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Traits supplies the character operations used by the primitives.
//
// Compare looks at the first n elements of a and b and returns a negative,
// zero or positive result. Find returns the index of c in s, or -1.
type Traits[C Char] interface {
	Assign(dst *C, c C)
	Compare(a, b []C, n int) int
	Find(s []C, c C) int
}

// CharTraits orders characters by their numeric value.
type CharTraits[C Char] struct{}

func (CharTraits[C]) Assign(dst *C, c C) { *dst = c }

func (CharTraits[C]) Compare(a, b []C, n int) int {
	a, b = a[:n], b[:n]
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func (CharTraits[C]) Find(s []C, c C) int {
	for i := range s {
		if s[i] == c {
			return i
		}
	}
	return -1
}

// FoldTraits compares bytes ignoring ASCII case.
type FoldTraits struct{}

func (FoldTraits) Assign(dst *byte, c byte) { *dst = c }

func (FoldTraits) Compare(a, b []byte, n int) int {
	a, b = a[:n], b[:n]
	for i := range a {
		x, y := lower(a[i]), lower(b[i])
		if x != y {
			if x < y {
				return -1
			}
			return 1
		}
	}
	return 0
}

func (FoldTraits) Find(s []byte, c byte) int {
	c = lower(c)
	for i := range s {
		if lower(s[i]) == c {
			return i
		}
	}
	return -1
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
