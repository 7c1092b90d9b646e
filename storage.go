package fixedstr

import "unsafe"

// Layout identifies one of the storage representations.
type Layout uint8

const (
	// LayoutEmpty has no storage; used when the capacity is zero.
	LayoutEmpty Layout = iota
	// LayoutSized carries an explicit size field next to the buffer.
	LayoutSized
	// LayoutEncoded stores capacity minus size in the terminator slot.
	LayoutEncoded
)

func (l Layout) String() string {
	switch l {
	case LayoutEmpty:
		return "empty"
	case LayoutSized:
		return "sized"
	case LayoutEncoded:
		return "encoded"
	default:
		return "unknown"
	}
}

// Storage is the inline buffer behind a fixed-capacity string.
//
// Data returns the whole buffer, Cap()+1 elements, terminator slot
// included. SetSize does not check n against Cap and does not terminate;
// callers follow it with Terminate. The set of implementations is closed.
type Storage[C Char] interface {
	Data() []C
	Size() int
	SetSize(n int) int
	Terminate()
	Cap() int
	Layout() Layout
	storage()
}

// nullTerm is the terminator shared by every zero-capacity storage.
// It is never written.
var nullTerm uint32

func bufView[C Char, A any](a *A) []C {
	var c C
	return unsafe.Slice((*C)(unsafe.Pointer(a)), unsafe.Sizeof(*a)/unsafe.Sizeof(c))
}

type emptyStorage[C Char] struct{}

func (emptyStorage[C]) Data() []C {
	return unsafe.Slice((*C)(unsafe.Pointer(&nullTerm)), 1)
}

func (emptyStorage[C]) Size() int       { return 0 }
func (emptyStorage[C]) SetSize(int) int { return 0 }
func (emptyStorage[C]) Terminate()      {}
func (emptyStorage[C]) Cap() int        { return 0 }
func (emptyStorage[C]) Layout() Layout  { return LayoutEmpty }
func (emptyStorage[C]) storage()        {}

type sizeWord interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

type sizedStorage[C Char, A any, W sizeWord] struct {
	size W
	buf  A
}

func (s *sizedStorage[C, A, W]) Data() []C { return bufView[C](&s.buf) }

func (s *sizedStorage[C, A, W]) Size() int { return int(s.size) }

func (s *sizedStorage[C, A, W]) SetSize(n int) int {
	s.size = W(n)
	return n
}

func (s *sizedStorage[C, A, W]) Terminate() {
	CharTraits[C]{}.Assign(&s.Data()[int(s.size)], 0)
}

func (s *sizedStorage[C, A, W]) Cap() int       { return len(s.Data()) - 1 }
func (s *sizedStorage[C, A, W]) Layout() Layout { return LayoutSized }
func (s *sizedStorage[C, A, W]) storage()       {}

// encodedStorage keeps Cap()-Size() in the last slot. When the string is
// full that slot holds 0 and doubles as the terminator.
type encodedStorage[C Char, A any] struct {
	buf A
}

func (s *encodedStorage[C, A]) Data() []C { return bufView[C](&s.buf) }

func (s *encodedStorage[C, A]) Size() int {
	d := s.Data()
	n := len(d) - 1
	return n - int(d[n])
}

func (s *encodedStorage[C, A]) SetSize(n int) int {
	d := s.Data()
	last := len(d) - 1
	// the slot holds a count, not text
	CharTraits[C]{}.Assign(&d[last], C(last-n))
	return n
}

func (s *encodedStorage[C, A]) Terminate() {
	CharTraits[C]{}.Assign(&s.Data()[s.Size()], 0)
}

func (s *encodedStorage[C, A]) Cap() int       { return len(s.Data()) - 1 }
func (s *encodedStorage[C, A]) Layout() Layout { return LayoutEncoded }
func (s *encodedStorage[C, A]) storage()       {}

// New returns storage for a string of capacity len(A)-1. A must be an
// array of C. The chosen layout is boxed behind Storage, which costs one
// heap allocation per call for non-empty capacities; the buffer itself is
// inline in that allocation and never grows.
func New[C Char, A any](opts Options) (Storage[C], error) {
	p, err := Resolve[C, A](opts)
	if err != nil {
		return nil, err
	}
	return newStorage[C, A](p), nil
}

func newStorage[C Char, A any](p Plan) Storage[C] {
	switch p.Layout {
	case LayoutEmpty:
		return emptyStorage[C]{}
	case LayoutEncoded:
		s := &encodedStorage[C, A]{}
		s.SetSize(0)
		return s
	}
	switch p.SizeWidth {
	case Width8:
		return &sizedStorage[C, A, uint8]{}
	case Width16:
		return &sizedStorage[C, A, uint16]{}
	case Width32:
		return &sizedStorage[C, A, uint32]{}
	default:
		return &sizedStorage[C, A, uint64]{}
	}
}
