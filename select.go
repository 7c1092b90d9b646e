package fixedstr

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/rawbytedev/fixedstr/internal/common"
	"go.uber.org/zap"
)

// Plan describes the storage chosen for one buffer type.
type Plan struct {
	Capacity   int
	Layout     Layout
	SizeWidth  Width // zero unless Layout is LayoutSized
	CharBytes  int
	CharMax    uint64
	CharSigned bool
}

// PayloadBytes is the inline footprint of the storage, padding excluded.
func (p Plan) PayloadBytes() int {
	if p.Layout == LayoutEmpty {
		return 0
	}
	return (p.Capacity+1)*p.CharBytes + p.SizeWidth.Bytes()
}

// Select picks the layout for capacity n over a character domain whose
// largest value is charMax.
func Select(n int, charMax uint64, noNullOpt bool) Layout {
	switch {
	case n == 0:
		return LayoutEmpty
	case !noNullOpt && uint64(n) <= charMax:
		return LayoutEncoded
	default:
		return LayoutSized
	}
}

type planKey struct {
	buf    reflect.Type
	char   reflect.Type
	noNull bool
}

var (
	plans   = make(map[planKey]Plan)
	plansMu sync.RWMutex
)

// Resolve returns the plan for buffer type A holding characters of type C.
// Plans are computed once per (A, C, NoNullOptimization) and cached. The
// fixedstr_nonullopt build tag forces NoNullOptimization for every caller.
func Resolve[C Char, A any](opts Options) (Plan, error) {
	key := planKey{
		buf:    reflect.TypeFor[A](),
		char:   reflect.TypeFor[C](),
		noNull: opts.NoNullOptimization || noNullOptimization,
	}
	plansMu.RLock()
	if p, ok := plans[key]; ok {
		plansMu.RUnlock()
		return p, nil
	}
	plansMu.RUnlock()

	plansMu.Lock()
	defer plansMu.Unlock()

	// Double-check
	if p, ok := plans[key]; ok {
		return p, nil
	}
	p, err := buildPlan(key)
	if err != nil {
		return Plan{}, err
	}
	plans[key] = p
	Logger().Debug("resolved storage plan",
		zap.Stringer("buffer", key.buf),
		zap.Int("capacity", p.Capacity),
		zap.Stringer("layout", p.Layout),
		zap.Stringer("size_width", p.SizeWidth),
	)
	return p, nil
}

func buildPlan(key planKey) (Plan, error) {
	bt := key.buf
	if bt.Kind() != reflect.Array {
		return Plan{}, fmt.Errorf("%w: %s", ErrNotArray, bt)
	}
	if bt.Elem() != key.char || !common.IsCharKind(key.char.Kind()) {
		return Plan{}, fmt.Errorf("%w: %s holds %s, want %s", ErrElemMismatch, bt, bt.Elem(), key.char)
	}
	if bt.Len() == 0 {
		return Plan{}, fmt.Errorf("%w: %s", ErrZeroLength, bt)
	}
	n := bt.Len() - 1
	w, err := SmallestWidth(n)
	if err != nil {
		return Plan{}, err
	}
	ck := key.char.Kind()
	p := Plan{
		Capacity:   n,
		CharBytes:  common.FixedSize(ck),
		CharMax:    common.MaxOf(ck),
		CharSigned: common.IsSigned(ck),
	}
	p.Layout = Select(n, p.CharMax, key.noNull)
	if p.Layout == LayoutSized {
		p.SizeWidth = w
	}
	return p, nil
}
