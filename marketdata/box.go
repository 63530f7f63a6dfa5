package marketdata

import (
	"fmt"

	"github.com/sgostarter/i/commerr"
)

type BoxKind int

const (
	BoxKindSingle BoxKind = iota
	BoxKindScenario
)

func (k BoxKind) String() string {
	switch k {
	case BoxKindSingle:
		return "single"
	case BoxKindScenario:
		return "scenario"
	default:
		return fmt.Sprintf("BoxKind(%d)", int(k))
	}
}

// Box holds either one value shared by every scenario or one value per scenario.
// The variant is fixed at construction. The zero Box is a single box of the zero value.
type Box[T any] struct {
	kind     BoxKind
	single   T
	scenario ScenarioValue[T]

	// scenarioCount of a single box; 0 until the box is bound into scenario market data.
	scenarioCount int
}

func SingleBox[T any](v T) Box[T] {
	return Box[T]{
		kind:   BoxKindSingle,
		single: v,
	}
}

func ScenarioBox[T any](values ...T) Box[T] {
	return ScenarioBoxOf[T](NewValueList(values...))
}

func ScenarioBoxOf[T any](sv ScenarioValue[T]) Box[T] {
	return Box[T]{
		kind:     BoxKindScenario,
		scenario: sv,
	}
}

func (b Box[T]) Kind() BoxKind {
	return b.kind
}

func (b Box[T]) IsSingleValue() bool {
	return b.kind == BoxKindSingle
}

// ScenarioCount is the number of scenarios the box was built or bound for; an unbound
// single box reports 0.
func (b Box[T]) ScenarioCount() int {
	switch b.kind {
	case BoxKindScenario:
		if b.scenario == nil {
			return 0
		}

		return b.scenario.ScenarioCount()
	default:
		return b.scenarioCount
	}
}

func (b Box[T]) Value(scenarioIndex int) (v T, err error) {
	switch b.kind {
	case BoxKindSingle:
		if scenarioIndex < 0 || (b.scenarioCount > 0 && scenarioIndex >= b.scenarioCount) {
			err = scenarioIndexError(scenarioIndex, b.scenarioCount)

			return
		}

		v = b.single
	case BoxKindScenario:
		if b.scenario == nil {
			err = scenarioIndexError(scenarioIndex, 0)

			return
		}

		v, err = b.scenario.ValueAt(scenarioIndex)
	default:
		err = fmt.Errorf("%w: box kind %s", commerr.ErrInvalidArgument, b.kind)
	}

	return
}

// ScenarioValue returns the per scenario representation. Single boxes have none, callers
// check IsSingleValue first.
func (b Box[T]) ScenarioValue() (ScenarioValue[T], error) {
	switch b.kind {
	case BoxKindScenario:
		return b.scenario, nil
	case BoxKindSingle:
		return nil, ErrSingleValueBox
	default:
		return nil, fmt.Errorf("%w: box kind %s", commerr.ErrInvalidArgument, b.kind)
	}
}

func (b Box[T]) String() string {
	switch b.kind {
	case BoxKindSingle:
		return fmt.Sprintf("SingleBox{%v}", b.single)
	default:
		return fmt.Sprintf("ScenarioBox{count: %d}", b.ScenarioCount())
	}
}

// Map applies fn to the single value, or to each scenario value, keeping the variant.
func Map[T, R any](b Box[T], fn func(T) (R, error)) (Box[R], error) {
	switch b.kind {
	case BoxKindSingle:
		r, err := fn(b.single)
		if err != nil {
			return Box[R]{}, err
		}

		return Box[R]{kind: BoxKindSingle, single: r, scenarioCount: b.scenarioCount}, nil
	case BoxKindScenario:
		n := b.ScenarioCount()
		rs := make([]R, n)

		for idx := 0; idx < n; idx++ {
			v, err := b.scenario.ValueAt(idx)
			if err != nil {
				return Box[R]{}, err
			}

			if rs[idx], err = fn(v); err != nil {
				return Box[R]{}, err
			}
		}

		return ScenarioBox(rs...), nil
	default:
		return Box[R]{}, fmt.Errorf("%w: box kind %s", commerr.ErrInvalidArgument, b.kind)
	}
}

//
// type-erased access used by the market data containers
//

type boxed interface {
	boxKind() BoxKind
	boxScenarioCount() int
	boundTo(scenarioCount int) boxed
	anyValue(scenarioIndex int) (any, error)
}

func (b Box[T]) boxKind() BoxKind {
	return b.kind
}

func (b Box[T]) boxScenarioCount() int {
	return b.ScenarioCount()
}

func (b Box[T]) boundTo(scenarioCount int) boxed {
	if b.kind == BoxKindSingle {
		b.scenarioCount = scenarioCount
	}

	return b
}

func (b Box[T]) anyValue(scenarioIndex int) (any, error) {
	return b.Value(scenarioIndex)
}
