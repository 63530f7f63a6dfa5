package marketdata

// ScenarioValue holds the values of one item of market data for every scenario, in some
// representation chosen by whoever built it.
type ScenarioValue[T any] interface {
	ScenarioCount() int
	ValueAt(scenarioIndex int) (T, error)
}

// ValueList is the plain sequence representation of a scenario value.
type ValueList[T any] struct {
	values []T
}

func NewValueList[T any](values ...T) ValueList[T] {
	return ValueList[T]{
		values: append([]T(nil), values...),
	}
}

func (vl ValueList[T]) ScenarioCount() int {
	return len(vl.values)
}

func (vl ValueList[T]) ValueAt(scenarioIndex int) (v T, err error) {
	if scenarioIndex < 0 || scenarioIndex >= len(vl.values) {
		err = scenarioIndexError(scenarioIndex, len(vl.values))

		return
	}

	v = vl.values[scenarioIndex]

	return
}

func (vl ValueList[T]) Values() []T {
	return append([]T(nil), vl.values...)
}

// FloatArray packs one float64 per scenario into a single array for vectorized pricing.
type FloatArray struct {
	values []float64
}

func NewFloatArray(values ...float64) FloatArray {
	return FloatArray{
		values: append([]float64(nil), values...),
	}
}

// FilledFloatArray repeats v for n scenarios.
func FilledFloatArray(n int, v float64) FloatArray {
	values := make([]float64, n)
	for idx := range values {
		values[idx] = v
	}

	return FloatArray{values: values}
}

func (fa FloatArray) ScenarioCount() int {
	return len(fa.values)
}

func (fa FloatArray) ValueAt(scenarioIndex int) (v float64, err error) {
	if scenarioIndex < 0 || scenarioIndex >= len(fa.values) {
		err = scenarioIndexError(scenarioIndex, len(fa.values))

		return
	}

	v = fa.values[scenarioIndex]

	return
}

func (fa FloatArray) Values() []float64 {
	return append([]float64(nil), fa.values...)
}

func (fa FloatArray) Equal(o FloatArray) bool {
	if len(fa.values) != len(o.values) {
		return false
	}

	for idx, v := range fa.values {
		if o.values[idx] != v {
			return false
		}
	}

	return true
}
