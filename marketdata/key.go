package marketdata

import "fmt"

const (
	KindCurve  = "curve"
	KindFxRate = "fx-rate"
	KindQuote  = "quote"
)

// AnyKey is the type-erased form of Key, used where the value type does not matter.
type AnyKey interface {
	fmt.Stringer

	KeyKind() string
	KeyName() string

	marketDataKey()
}

// Key identifies one item of market data whose single scenario value has type T.
// Keys are compared by kind, name and value type.
type Key[T any] struct {
	Kind string
	Name string
}

func NewKey[T any](kind, name string) Key[T] {
	return Key[T]{
		Kind: kind,
		Name: name,
	}
}

func CurveKey[T any](curveName string) Key[T] {
	return NewKey[T](KindCurve, curveName)
}

// FxRateKey identifies the rate converting one unit of base into counter.
func FxRateKey(base, counter string) Key[float64] {
	return NewKey[float64](KindFxRate, base+"/"+counter)
}

func QuoteKey(id string) Key[float64] {
	return NewKey[float64](KindQuote, id)
}

func (k Key[T]) KeyKind() string {
	return k.Kind
}

func (k Key[T]) KeyName() string {
	return k.Name
}

func (k Key[T]) String() string {
	return k.Kind + ":" + k.Name
}

func (Key[T]) marketDataKey() {}

// ObservableID identifies a time series of historical observations.
type ObservableID struct {
	Source string `yaml:"source" json:"source"`
	Name   string `yaml:"name" json:"name"`
	Field  string `yaml:"field,omitempty" json:"field,omitempty"`
}

func (id ObservableID) String() string {
	s := id.Source + "~" + id.Name
	if id.Field != "" {
		s += "/" + id.Field
	}

	return s
}

// StorageName is the file-safe name of the series in a timeseries.Storage.
func (id ObservableID) StorageName() string {
	s := id.Source + "_" + id.Name
	if id.Field != "" {
		s += "_" + id.Field
	}

	return s
}
