package curvegroup

import (
	"testing"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const utFragments = `
group: USD
curves:
  - name: USD-OIS
    discount: [USD]
---
group: USD
curves:
  - name: USD-OIS
    forward: [USD-SOFR, USD-FED-FUND]
  - name: Lib3M
    forward: [USD-LIBOR-3M]
---
group: EUR
curves:
  - name: EUR-ESTR
    discount: [EUR]
    forward: [EUR-ESTR]
`

func TestParseFragments(t *testing.T) {
	fragments, err := ParseFragments([]byte(utFragments))
	require.NoError(t, err)
	require.Len(t, fragments, 3)

	assert.Equal(t, GroupName("USD"), fragments[1].Group)
	assert.Equal(t, []Index{"USD-SOFR", "USD-FED-FUND"}, fragments[1].Curves[0].Forward)

	fragments, err = ParseFragments(nil)
	assert.NoError(t, err)
	assert.Empty(t, fragments)

	_, err = ParseFragments([]byte("group: [x"))
	assert.Error(t, err)
}

func TestBuilder(t *testing.T) {
	fragments, err := ParseFragments([]byte(utFragments))
	require.NoError(t, err)

	defs, err := NewBuilder(l.NewConsoleLoggerWrapper()).AddFragments(fragments...).Build()
	require.NoError(t, err)
	require.Len(t, defs, 2)

	usd := defs[0]
	assert.Equal(t, GroupName("USD"), usd.Name())
	assert.Equal(t, []CurveName{"Lib3M", "USD-OIS"}, usd.CurveNames())

	ois, ok := usd.Entry("USD-OIS")
	require.True(t, ok)
	assert.True(t, ois.Equal(NewEntry("USD-OIS", []Currency{"USD"}, []Index{"USD-FED-FUND", "USD-SOFR"})))

	name, ok := usd.DiscountCurveName("USD")
	assert.True(t, ok)
	assert.Equal(t, CurveName("USD-OIS"), name)

	name, ok = usd.ForwardCurveName("USD-LIBOR-3M")
	assert.True(t, ok)
	assert.Equal(t, CurveName("Lib3M"), name)

	_, ok = usd.DiscountCurveName("EUR")
	assert.False(t, ok)

	assert.Equal(t, []Currency{"USD"}, usd.Currencies())
	assert.Equal(t, []Index{"USD-FED-FUND", "USD-LIBOR-3M", "USD-SOFR"}, usd.Indices())

	assert.Equal(t, GroupName("EUR"), defs[1].Name())
}

func TestDefinitionConflictingRole(t *testing.T) {
	_, err := NewDefinition("USD", DiscountEntry("USD-OIS", "USD"), DiscountEntry("Lib3M", "USD"))
	assert.ErrorIs(t, err, ErrConflictingRole)
	assert.ErrorIs(t, err, commerr.ErrAlreadyExists)

	_, err = NewDefinition("USD", ForwardEntry("USD-OIS", "USD-SOFR"), ForwardEntry("USD-SOFR", "USD-SOFR"))
	assert.ErrorIs(t, err, ErrConflictingRole)
}

func TestDefinitionEmptyNames(t *testing.T) {
	_, err := NewDefinition("", DiscountEntry("USD-OIS", "USD"))
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = NewDefinition("USD", DiscountEntry("", "USD"))
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestDefinitionConfig(t *testing.T) {
	def, err := NewDefinition("USD", DiscountEntry("USD-OIS", "USD"), ForwardEntry("Lib3M", "USD-LIBOR-3M"),
		ForwardEntry("USD-OIS", "USD-SOFR"))
	require.NoError(t, err)

	cfg := def.Config()
	assert.Equal(t, GroupName("USD"), cfg.Name)
	require.Len(t, cfg.Curves, 2)
	assert.Equal(t, CurveName("Lib3M"), cfg.Curves[0].Name)

	again, err := NewDefinitionFromConfig(cfg)
	require.NoError(t, err)
	assert.True(t, def.Equal(again))
}

func TestCombine(t *testing.T) {
	fragments, err := ParseFragments([]byte(utFragments))
	require.NoError(t, err)

	defs, err := Combine(fragments...)
	require.NoError(t, err)
	assert.Len(t, defs, 2)

	_, err = Combine(Fragment{Group: "X", Curves: []EntryConfig{
		{Name: "A", Discount: []Currency{"USD"}},
		{Name: "B", Discount: []Currency{"USD"}},
	}})
	assert.ErrorIs(t, err, ErrConflictingRole)
}
