package fmstorage

import (
	"context"
	"path/filepath"
	"sort"
	"sync"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/stg"
	"github.com/sgostarter/libeasygo/stg/fs/rawfs"
	"github.com/sgostarter/libeasygo/stg/mwf"
	"github.com/sgostarter/libmarketdata/curvegroup"
)

func NewFMStorage(root string, storage stg.FileStorage) curvegroup.Storage {
	return NewFMStorageEx(root, storage, "curve_groups.json", false)
}

func NewFMStorageEx(root string, storage stg.FileStorage, fileName string, prettySerial bool) curvegroup.Storage {
	if storage == nil {
		storage = rawfs.NewFSStorage("")
	}

	return &fmStorageImpl{
		groupStorage: mwf.NewMemWithFile[map[curvegroup.GroupName]curvegroup.DefinitionConfig, mwf.Serial, mwf.Lock](
			make(map[curvegroup.GroupName]curvegroup.DefinitionConfig), &mwf.JSONSerial{
				MarshalIndent: prettySerial,
			}, &sync.RWMutex{}, filepath.Join(root, fileName), storage),
	}
}

type fmStorageImpl struct {
	groupStorage *mwf.MemWithFile[map[curvegroup.GroupName]curvegroup.DefinitionConfig, mwf.Serial, mwf.Lock]
}

func (impl *fmStorageImpl) Save(_ context.Context, def *curvegroup.Definition) error {
	if def == nil {
		return commerr.ErrInvalidArgument
	}

	return impl.groupStorage.Change(func(oldD map[curvegroup.GroupName]curvegroup.DefinitionConfig) (
		map[curvegroup.GroupName]curvegroup.DefinitionConfig, error) {
		if len(oldD) == 0 {
			oldD = make(map[curvegroup.GroupName]curvegroup.DefinitionConfig)
		}

		oldD[def.Name()] = def.Config()

		return oldD, nil
	})
}

func (impl *fmStorageImpl) Load(_ context.Context, name curvegroup.GroupName) (def *curvegroup.Definition, err error) {
	var (
		cfg curvegroup.DefinitionConfig
		ok  bool
	)

	impl.groupStorage.Read(func(d map[curvegroup.GroupName]curvegroup.DefinitionConfig) {
		cfg, ok = d[name]
	})

	if !ok {
		err = commerr.ErrNotFound

		return
	}

	return curvegroup.NewDefinitionFromConfig(cfg)
}

func (impl *fmStorageImpl) List(_ context.Context) (names []curvegroup.GroupName, err error) {
	impl.groupStorage.Read(func(d map[curvegroup.GroupName]curvegroup.DefinitionConfig) {
		for name := range d {
			names = append(names, name)
		}
	})

	sort.Slice(names, func(i, j int) bool {
		return names[i] < names[j]
	})

	return
}

func (impl *fmStorageImpl) Delete(_ context.Context, name curvegroup.GroupName) error {
	return impl.groupStorage.Change(func(oldD map[curvegroup.GroupName]curvegroup.DefinitionConfig) (
		map[curvegroup.GroupName]curvegroup.DefinitionConfig, error) {
		if _, ok := oldD[name]; !ok {
			return nil, commerr.ErrNotFound
		}

		delete(oldD, name)

		return oldD, nil
	})
}
