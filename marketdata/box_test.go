package marketdata

import (
	"errors"
	"strconv"
	"testing"

	"github.com/sgostarter/i/commerr"
	"github.com/stretchr/testify/assert"
)

func TestSingleBox(t *testing.T) {
	box := SingleBox(1.5)

	assert.True(t, box.IsSingleValue())
	assert.Equal(t, BoxKindSingle, box.Kind())
	assert.EqualValues(t, 0, box.ScenarioCount())

	for _, idx := range []int{0, 1, 100} {
		v, err := box.Value(idx)
		assert.Nil(t, err)
		assert.EqualValues(t, 1.5, v)
	}

	_, err := box.Value(-1)
	assert.ErrorIs(t, err, ErrScenarioIndexOutOfRange)

	_, err = box.ScenarioValue()
	assert.ErrorIs(t, err, ErrSingleValueBox)
	assert.ErrorIs(t, err, commerr.ErrInvalidArgument)
}

func TestSingleBoxBound(t *testing.T) {
	box := SingleBox("x").boundTo(2).(Box[string])

	assert.EqualValues(t, 2, box.ScenarioCount())

	v, err := box.Value(1)
	assert.Nil(t, err)
	assert.Equal(t, "x", v)

	_, err = box.Value(2)
	assert.ErrorIs(t, err, commerr.ErrOutOfRange)
}

func TestScenarioBox(t *testing.T) {
	box := ScenarioBox(10.0, 20.0, 30.0)

	assert.False(t, box.IsSingleValue())
	assert.EqualValues(t, 3, box.ScenarioCount())

	for idx, want := range []float64{10, 20, 30} {
		v, err := box.Value(idx)
		assert.Nil(t, err)
		assert.EqualValues(t, want, v)
	}

	_, err := box.Value(3)
	assert.ErrorIs(t, err, ErrScenarioIndexOutOfRange)

	_, err = box.Value(-1)
	assert.ErrorIs(t, err, ErrScenarioIndexOutOfRange)

	sv, err := box.ScenarioValue()
	assert.Nil(t, err)
	assert.IsType(t, ValueList[float64]{}, sv)

	// bound scenario boxes keep their own length
	assert.EqualValues(t, 3, box.boundTo(5).boxScenarioCount())
}

func TestScenarioBoxOf(t *testing.T) {
	box := ScenarioBoxOf[float64](NewFloatArray(1, 2))

	assert.EqualValues(t, 2, box.ScenarioCount())

	v, err := box.Value(1)
	assert.Nil(t, err)
	assert.EqualValues(t, 2, v)

	sv, err := box.ScenarioValue()
	assert.Nil(t, err)

	fa, ok := sv.(FloatArray)
	assert.True(t, ok)
	assert.Equal(t, []float64{1, 2}, fa.Values())
}

func TestValueListIsCopied(t *testing.T) {
	values := []int{1, 2}
	vl := NewValueList(values...)
	values[0] = 100

	v, err := vl.ValueAt(0)
	assert.Nil(t, err)
	assert.EqualValues(t, 1, v)

	out := vl.Values()
	out[1] = 100

	v, _ = vl.ValueAt(1)
	assert.EqualValues(t, 2, v)
}

func TestMap(t *testing.T) {
	toString := func(v float64) (string, error) {
		return strconv.FormatFloat(v, 'f', 1, 64), nil
	}

	single, err := Map(SingleBox(1.0), toString)
	assert.Nil(t, err)
	assert.True(t, single.IsSingleValue())

	v, _ := single.Value(0)
	assert.Equal(t, "1.0", v)

	scenario, err := Map(ScenarioBox(1.0, 2.0), toString)
	assert.Nil(t, err)
	assert.False(t, scenario.IsSingleValue())
	assert.EqualValues(t, 2, scenario.ScenarioCount())

	v, _ = scenario.Value(1)
	assert.Equal(t, "2.0", v)

	errBad := errors.New("bad")
	_, err = Map(ScenarioBox(1.0), func(float64) (int, error) {
		return 0, errBad
	})
	assert.ErrorIs(t, err, errBad)
}

func TestFloatArray(t *testing.T) {
	fa := FilledFloatArray(3, 2.5)

	assert.EqualValues(t, 3, fa.ScenarioCount())
	assert.True(t, fa.Equal(NewFloatArray(2.5, 2.5, 2.5)))
	assert.False(t, fa.Equal(NewFloatArray(2.5, 2.5)))

	_, err := fa.ValueAt(3)
	assert.ErrorIs(t, err, ErrScenarioIndexOutOfRange)
}
