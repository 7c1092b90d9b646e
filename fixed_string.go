package fixedstr

import (
	"fmt"
	"strings"
	"unicode/utf16"

	"go.uber.org/zap"
)

// String is a string of at most Cap() characters kept in fixed storage.
// Operations that would grow it past Cap() fail with ErrLengthExceeded
// and leave it unchanged.
type String[C Char] struct {
	st   Storage[C]
	opts Options
	mask uint32 // nonzero for signed characters narrower than 32 bits
}

// NewString returns an empty string whose capacity is len(A)-1. Like New
// it allocates the storage once; nothing is allocated after that.
func NewString[C Char, A any](opts Options) (*String[C], error) {
	p, err := Resolve[C, A](opts)
	if err != nil {
		return nil, err
	}
	opts.AllowUninit = opts.AllowUninit || allowUninitMem
	s := &String[C]{st: newStorage[C, A](p), opts: opts}
	if p.CharSigned && p.CharBytes < 4 {
		s.mask = 1<<(8*p.CharBytes) - 1
	}
	return s, nil
}

func (s *String[C]) Len() int       { return s.st.Size() }
func (s *String[C]) Cap() int       { return s.st.Cap() }
func (s *String[C]) Empty() bool    { return s.st.Size() == 0 }
func (s *String[C]) Layout() Layout { return s.st.Layout() }

// Data returns the characters without the terminator. The slice aliases
// the storage.
func (s *String[C]) Data() []C { return s.st.Data()[:s.st.Size()] }

// CStr returns the characters followed by the zero terminator.
func (s *String[C]) CStr() []C { return s.st.Data()[:s.st.Size()+1] }

func (s *String[C]) Assign(src []C) error {
	if len(src) > s.st.Cap() {
		return s.exceeded(len(src))
	}
	copy(s.st.Data(), src)
	s.st.SetSize(len(src))
	s.st.Terminate()
	return nil
}

func (s *String[C]) Append(src []C) error {
	n := s.st.Size()
	if len(src) > s.st.Cap()-n {
		return s.exceeded(n + len(src))
	}
	copy(s.st.Data()[n:], src)
	s.st.SetSize(n + len(src))
	s.st.Terminate()
	return nil
}

// Clear empties the string. Unless AllowUninit or the fixedstr_uninit
// build tag is set the old contents are zeroed as well.
func (s *String[C]) Clear() {
	if !s.opts.AllowUninit {
		clear(s.st.Data()[:s.st.Cap()])
	}
	s.st.SetSize(0)
	s.st.Terminate()
}

func (s *String[C]) Compare(o *String[C]) int { return Compare(s.Data(), o.Data()) }

func (s *String[C]) CompareSlice(o []C) int { return Compare(s.Data(), o) }

func (s *String[C]) Equal(o *String[C]) bool {
	return s.Len() == o.Len() && s.Compare(o) == 0
}

// FindFirstNotOf returns the index at or after pos of the first character
// not in set, or -1.
func (s *String[C]) FindFirstNotOf(set []C, pos int) int {
	d := s.Data()
	if pos < 0 {
		pos = 0
	}
	if pos >= len(d) {
		return -1
	}
	i := pos + FindNotOf(d[pos:], set)
	if i == len(d) {
		return -1
	}
	return i
}

// String renders the contents as UTF-8. Bytes are copied as is, uint16
// is decoded as UTF-16 and every other type is taken as code points.
func (s *String[C]) String() string {
	d := s.Data()
	switch v := any(d).(type) {
	case []byte:
		return string(v)
	case []uint16:
		return string(utf16.Decode(v))
	}
	var b strings.Builder
	for _, c := range d {
		if s.mask != 0 {
			// int8 and int16 hold code units, not negative numbers
			b.WriteRune(rune(uint32(c) & s.mask))
			continue
		}
		b.WriteRune(rune(c))
	}
	return b.String()
}

func (s *String[C]) exceeded(want int) error {
	Logger().Debug("fixed string capacity exceeded",
		zap.Int("capacity", s.st.Cap()),
		zap.Int("requested", want),
	)
	return fmt.Errorf("%w: %d > %d", ErrLengthExceeded, want, s.st.Cap())
}

// FormatInt replaces the contents of s with the decimal form of v.
func FormatInt[C Char, I Integer](s *String[C], v I) error {
	var tmp [24]C
	i := RawToString(tmp[:], v)
	return s.Assign(tmp[i:])
}

// AppendInt appends the decimal form of v to s.
func AppendInt[C Char, I Integer](s *String[C], v I) error {
	var tmp [24]C
	i := RawToString(tmp[:], v)
	return s.Append(tmp[i:])
}
