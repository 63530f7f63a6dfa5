package curvegroup

import (
	"fmt"
	"slices"
	"strings"
)

type (
	GroupName string
	CurveName string
	Currency  string
	// Index is a rate index name such as USD-LIBOR-3M or USD-SOFR.
	Index string
)

// Entry assigns roles to one curve of a group: it discounts cash flows in the discount
// currencies and projects forward rates for the indices. Entries are immutable.
type Entry struct {
	curveName          CurveName
	discountCurrencies []Currency
	indices            []Index
}

func NewEntry(curveName CurveName, discountCurrencies []Currency, indices []Index) Entry {
	return Entry{
		curveName:          curveName,
		discountCurrencies: sortedSet(discountCurrencies),
		indices:            sortedSet(indices),
	}
}

func DiscountEntry(curveName CurveName, discountCurrencies ...Currency) Entry {
	return NewEntry(curveName, discountCurrencies, nil)
}

func ForwardEntry(curveName CurveName, indices ...Index) Entry {
	return NewEntry(curveName, nil, indices)
}

func (e Entry) CurveName() CurveName {
	return e.curveName
}

func (e Entry) DiscountCurrencies() []Currency {
	return slices.Clone(e.discountCurrencies)
}

func (e Entry) Indices() []Index {
	return slices.Clone(e.indices)
}

func (e Entry) IsDiscountCurve(ccy Currency) bool {
	_, found := slices.BinarySearch(e.discountCurrencies, ccy)

	return found
}

func (e Entry) IsForwardCurve(index Index) bool {
	_, found := slices.BinarySearch(e.indices, index)

	return found
}

// Merge combines two partial entries of the same curve into one with the union of their
// roles.
func (e Entry) Merge(other Entry) (Entry, error) {
	if e.curveName != other.curveName {
		return Entry{}, fmt.Errorf("%w: a curve group entry can only be merged with an entry with the same curve name. "+
			"name: %s, other name: %s", ErrCurveNameMismatch, e.curveName, other.curveName)
	}

	return Entry{
		curveName:          e.curveName,
		discountCurrencies: sortedSet(append(slices.Clone(e.discountCurrencies), other.discountCurrencies...)),
		indices:            sortedSet(append(slices.Clone(e.indices), other.indices...)),
	}, nil
}

func (e Entry) Equal(other Entry) bool {
	return e.curveName == other.curveName &&
		slices.Equal(e.discountCurrencies, other.discountCurrencies) &&
		slices.Equal(e.indices, other.indices)
}

func (e Entry) String() string {
	ccys := make([]string, len(e.discountCurrencies))
	for idx, ccy := range e.discountCurrencies {
		ccys[idx] = string(ccy)
	}

	indices := make([]string, len(e.indices))
	for idx, index := range e.indices {
		indices[idx] = string(index)
	}

	return fmt.Sprintf("Entry{curveName=%s, discountCurrencies=[%s], indices=[%s]}",
		e.curveName, strings.Join(ccys, ","), strings.Join(indices, ","))
}

// MergeAll folds entries by curve name. Curves keep the order of their first appearance.
func MergeAll(entries ...Entry) ([]Entry, error) {
	merged := make([]Entry, 0, len(entries))
	positions := make(map[CurveName]int, len(entries))

	for _, entry := range entries {
		pos, ok := positions[entry.curveName]
		if !ok {
			positions[entry.curveName] = len(merged)
			merged = append(merged, entry)

			continue
		}

		m, err := merged[pos].Merge(entry)
		if err != nil {
			return nil, err
		}

		merged[pos] = m
	}

	return merged, nil
}

func sortedSet[E ~string](vs []E) []E {
	if len(vs) == 0 {
		return nil
	}

	s := slices.Clone(vs)
	slices.Sort(s)

	return slices.Compact(s)
}
