package curvegroup

// EntryConfig is the serialized form of an Entry.
type EntryConfig struct {
	Name     CurveName  `yaml:"name" json:"name"`
	Discount []Currency `yaml:"discount,omitempty" json:"discount,omitempty"`
	Forward  []Index    `yaml:"forward,omitempty" json:"forward,omitempty"`
}

func (c EntryConfig) Entry() Entry {
	return NewEntry(c.Name, c.Discount, c.Forward)
}

func (e Entry) Config() EntryConfig {
	return EntryConfig{
		Name:     e.curveName,
		Discount: e.DiscountCurrencies(),
		Forward:  e.Indices(),
	}
}

// Fragment is one piece of a curve group definition as written in configuration. Several
// fragments may describe the same group, and the same curve within it.
type Fragment struct {
	Group  GroupName     `yaml:"group" json:"group"`
	Curves []EntryConfig `yaml:"curves" json:"curves"`
}

// DefinitionConfig is the serialized form of a Definition.
type DefinitionConfig struct {
	Name   GroupName     `yaml:"name" json:"name"`
	Curves []EntryConfig `yaml:"curves" json:"curves"`
}
