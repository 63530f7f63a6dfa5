package timeseries

import (
	"fmt"
	"time"

	"github.com/sgostarter/i/commerr"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

const DateLayout = "2006-01-02"

// LoadYAML reads a "date: value" mapping. Values may be written as numbers or strings.
func LoadYAML(d []byte) (Series, error) {
	var raw map[string]string

	if err := yaml.Unmarshal(d, &raw); err != nil {
		return Empty(), err
	}

	points := make([]Point, 0, len(raw))

	for ds, vs := range raw {
		date, err := time.Parse(DateLayout, ds)
		if err != nil {
			return Empty(), fmt.Errorf("%w: bad date %q: %v", commerr.ErrInvalidArgument, ds, err)
		}

		v, err := cast.ToFloat64E(vs)
		if err != nil {
			return Empty(), fmt.Errorf("%w: bad value %q on %s: %v", commerr.ErrInvalidArgument, vs, ds, err)
		}

		points = append(points, Point{Date: date, Value: v})
	}

	return New(points...), nil
}

// MarshalYAML writes the series back in the LoadYAML layout.
func MarshalYAML(s Series) ([]byte, error) {
	m := make(map[string]float64, s.Len())

	for _, p := range s.points {
		m[p.Date.Format(DateLayout)] = p.Value
	}

	return yaml.Marshal(m)
}
