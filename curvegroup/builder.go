package curvegroup

import (
	"github.com/sgostarter/i/l"
)

// Builder collects configuration fragments and folds them into definitions. It is the
// one place where partial entries of a curve are merged. A Builder is not safe for
// concurrent use.
type Builder interface {
	AddFragments(fragments ...Fragment) Builder
	AddEntries(group GroupName, entries ...Entry) Builder

	Build() ([]*Definition, error)
}

func NewBuilder(logger l.Wrapper) Builder {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	return &builderImpl{
		logger:  logger.WithFields(l.StringField(l.ClsKey, "curveGroupBuilderImpl")),
		entries: make(map[GroupName][]Entry),
	}
}

type builderImpl struct {
	logger l.Wrapper

	groups  []GroupName
	entries map[GroupName][]Entry
}

func (impl *builderImpl) AddFragments(fragments ...Fragment) Builder {
	for _, f := range fragments {
		entries := make([]Entry, 0, len(f.Curves))
		for _, c := range f.Curves {
			entries = append(entries, c.Entry())
		}

		impl.AddEntries(f.Group, entries...)
	}

	return impl
}

func (impl *builderImpl) AddEntries(group GroupName, entries ...Entry) Builder {
	if _, ok := impl.entries[group]; !ok {
		impl.groups = append(impl.groups, group)
	}

	impl.entries[group] = append(impl.entries[group], entries...)

	return impl
}

// Build returns one definition per group, in the order groups were first added.
func (impl *builderImpl) Build() ([]*Definition, error) {
	defs := make([]*Definition, 0, len(impl.groups))

	for _, group := range impl.groups {
		def, err := NewDefinition(group, impl.entries[group]...)
		if err != nil {
			impl.logger.WithFields(l.StringField("group", string(group)), l.ErrorField(err)).Error("build curve group failed")

			return nil, err
		}

		impl.logger.WithFields(l.StringField("group", string(group)), l.IntField("fragments", len(impl.entries[group])),
			l.IntField("curves", len(def.entries))).Debug("curve group merged")

		defs = append(defs, def)
	}

	return defs, nil
}

// Combine folds fragments into definitions.
func Combine(fragments ...Fragment) ([]*Definition, error) {
	return NewBuilder(nil).AddFragments(fragments...).Build()
}
