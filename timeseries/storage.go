package timeseries

import (
	"os"
	"path"
)

type Storage interface {
	Load(name string) (Series, error)
	Save(name string, s Series) error
}

func NewFileStorage(root string) *FileStorage {
	return &FileStorage{
		root: root,
	}
}

// FileStorage keeps one yaml file per series under root.
type FileStorage struct {
	root string
}

func (stg *FileStorage) fileNameByName(name string) string {
	return path.Join(stg.root, name+".yaml")
}

func (stg *FileStorage) Load(name string) (s Series, err error) {
	d, err := os.ReadFile(stg.fileNameByName(name))
	if err != nil {
		return
	}

	s, err = LoadYAML(d)

	return
}

func (stg *FileStorage) Save(name string, s Series) (err error) {
	_ = os.MkdirAll(stg.root, 0700)

	d, err := MarshalYAML(s)
	if err != nil {
		return
	}

	err = os.WriteFile(stg.fileNameByName(name), d, 0600)

	return
}
