package curvegroup

import (
	"fmt"
	"slices"
	"strings"
)

// Definition is a finalized curve group: one merged entry per curve, and each currency
// and index served by a single curve.
type Definition struct {
	name    GroupName
	entries []Entry

	discountCurves map[Currency]CurveName
	forwardCurves  map[Index]CurveName
}

func NewDefinition(name GroupName, entries ...Entry) (*Definition, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: curve group", ErrEmptyName)
	}

	merged, err := MergeAll(entries...)
	if err != nil {
		return nil, err
	}

	slices.SortFunc(merged, func(a, b Entry) int {
		return strings.Compare(string(a.curveName), string(b.curveName))
	})

	def := &Definition{
		name:           name,
		entries:        merged,
		discountCurves: make(map[Currency]CurveName),
		forwardCurves:  make(map[Index]CurveName),
	}

	for _, entry := range merged {
		if entry.curveName == "" {
			return nil, fmt.Errorf("%w: curve in group %s", ErrEmptyName, name)
		}

		for _, ccy := range entry.discountCurrencies {
			if other, ok := def.discountCurves[ccy]; ok {
				return nil, fmt.Errorf("%w: group %s discounts %s with both %s and %s",
					ErrConflictingRole, name, ccy, other, entry.curveName)
			}

			def.discountCurves[ccy] = entry.curveName
		}

		for _, index := range entry.indices {
			if other, ok := def.forwardCurves[index]; ok {
				return nil, fmt.Errorf("%w: group %s forwards %s with both %s and %s",
					ErrConflictingRole, name, index, other, entry.curveName)
			}

			def.forwardCurves[index] = entry.curveName
		}
	}

	return def, nil
}

func NewDefinitionFromConfig(cfg DefinitionConfig) (*Definition, error) {
	entries := make([]Entry, 0, len(cfg.Curves))
	for _, c := range cfg.Curves {
		entries = append(entries, c.Entry())
	}

	return NewDefinition(cfg.Name, entries...)
}

func (def *Definition) Name() GroupName {
	return def.name
}

// Entries returns the entries ordered by curve name.
func (def *Definition) Entries() []Entry {
	return slices.Clone(def.entries)
}

func (def *Definition) Entry(curveName CurveName) (Entry, bool) {
	for _, entry := range def.entries {
		if entry.curveName == curveName {
			return entry, true
		}
	}

	return Entry{}, false
}

func (def *Definition) CurveNames() []CurveName {
	names := make([]CurveName, len(def.entries))
	for idx, entry := range def.entries {
		names[idx] = entry.curveName
	}

	return names
}

func (def *Definition) DiscountCurveName(ccy Currency) (CurveName, bool) {
	name, ok := def.discountCurves[ccy]

	return name, ok
}

func (def *Definition) ForwardCurveName(index Index) (CurveName, bool) {
	name, ok := def.forwardCurves[index]

	return name, ok
}

func (def *Definition) Currencies() []Currency {
	ccys := make([]Currency, 0, len(def.discountCurves))
	for ccy := range def.discountCurves {
		ccys = append(ccys, ccy)
	}

	slices.Sort(ccys)

	return ccys
}

func (def *Definition) Indices() []Index {
	indices := make([]Index, 0, len(def.forwardCurves))
	for index := range def.forwardCurves {
		indices = append(indices, index)
	}

	slices.Sort(indices)

	return indices
}

func (def *Definition) Config() DefinitionConfig {
	cfg := DefinitionConfig{
		Name:   def.name,
		Curves: make([]EntryConfig, len(def.entries)),
	}

	for idx, entry := range def.entries {
		cfg.Curves[idx] = entry.Config()
	}

	return cfg
}

func (def *Definition) Equal(other *Definition) bool {
	if def == nil || other == nil {
		return def == other
	}

	return def.name == other.name && slices.EqualFunc(def.entries, other.entries, func(a, b Entry) bool {
		return a.Equal(b)
	})
}
