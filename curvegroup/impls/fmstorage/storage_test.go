package fmstorage

import (
	"context"
	"testing"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libeasygo/stg/fs/rawfs"
	"github.com/sgostarter/libmarketdata/curvegroup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFMStorage(t *testing.T) {
	root := t.TempDir()

	ctx := context.Background()

	def, err := curvegroup.NewDefinition("USD",
		curvegroup.DiscountEntry("USD-OIS", "USD"),
		curvegroup.ForwardEntry("USD-OIS", "USD-SOFR"),
		curvegroup.ForwardEntry("Lib3M", "USD-LIBOR-3M"))
	require.NoError(t, err)

	s := NewFMStorageEx("", rawfs.NewFSStorage(root), "groups.json", true)

	_, err = s.Load(ctx, "USD")
	assert.ErrorIs(t, err, commerr.ErrNotFound)

	require.NoError(t, s.Save(ctx, def))

	loaded, err := s.Load(ctx, "USD")
	require.NoError(t, err)
	assert.True(t, def.Equal(loaded))

	names, err := s.List(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []curvegroup.GroupName{"USD"}, names)

	// a second instance reads what the first one wrote
	s2 := NewFMStorageEx("", rawfs.NewFSStorage(root), "groups.json", true)

	loaded, err = s2.Load(ctx, "USD")
	require.NoError(t, err)
	assert.True(t, def.Equal(loaded))

	require.NoError(t, s.Delete(ctx, "USD"))
	assert.ErrorIs(t, s.Delete(ctx, "USD"), commerr.ErrNotFound)

	names, err = s.List(ctx)
	assert.NoError(t, err)
	assert.Empty(t, names)
}
