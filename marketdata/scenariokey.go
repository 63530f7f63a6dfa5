package marketdata

import (
	"fmt"

	"github.com/sgostarter/i/commerr"
)

// ScenarioValueFactory builds the composite scenario value U from a box of single values.
type ScenarioValueFactory[T any, U ScenarioValue[T]] func(box Box[T]) (U, error)

// ScenarioKey names the representation U wanted for the market data behind a Key, and
// carries the factory that can build it when the stored representation is different.
type ScenarioKey[T any, U ScenarioValue[T]] struct {
	key     Key[T]
	tag     string
	factory ScenarioValueFactory[T, U]
}

func NewScenarioKey[T any, U ScenarioValue[T]](key Key[T], tag string, factory ScenarioValueFactory[T, U]) ScenarioKey[T, U] {
	return ScenarioKey[T, U]{
		key:     key,
		tag:     tag,
		factory: factory,
	}
}

func (k ScenarioKey[T, U]) MarketDataKey() Key[T] {
	return k.key
}

// Tag names the representation U; two scenario keys with the same market data key and
// tag produce the same value.
func (k ScenarioKey[T, U]) Tag() string {
	return k.tag
}

func (k ScenarioKey[T, U]) CreateScenarioValue(box Box[T]) (u U, err error) {
	if k.factory == nil {
		err = fmt.Errorf("%w: scenario key %s has no factory", commerr.ErrInvalidArgument, k)

		return
	}

	return k.factory(box)
}

func (k ScenarioKey[T, U]) String() string {
	return k.key.String() + "@" + k.tag
}

func (k ScenarioKey[T, U]) cacheKey() string {
	var zero U

	return fmt.Sprintf("%T|%s|%s|%T", k.key, k.key, k.tag, zero)
}

const FloatArrayTag = "float-array"

// FloatArrayKey asks for the packed FloatArray form of a float64 item. Single values
// are broadcast to every scenario.
func FloatArrayKey(key Key[float64]) ScenarioKey[float64, FloatArray] {
	return NewScenarioKey[float64, FloatArray](key, FloatArrayTag, func(box Box[float64]) (FloatArray, error) {
		n := box.ScenarioCount()

		if box.IsSingleValue() {
			v, err := box.Value(0)
			if err != nil {
				return FloatArray{}, err
			}

			return FilledFloatArray(n, v), nil
		}

		values := make([]float64, n)

		for idx := 0; idx < n; idx++ {
			v, err := box.Value(idx)
			if err != nil {
				return FloatArray{}, err
			}

			values[idx] = v
		}

		return FloatArray{values: values}, nil
	})
}
