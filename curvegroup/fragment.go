package curvegroup

import (
	"bytes"
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseFragments reads one fragment per yaml document.
func ParseFragments(d []byte) (fragments []Fragment, err error) {
	decoder := yaml.NewDecoder(bytes.NewReader(d))

	for {
		var f Fragment

		err = decoder.Decode(&f)
		if errors.Is(err, io.EOF) {
			err = nil

			break
		}

		if err != nil {
			return
		}

		fragments = append(fragments, f)
	}

	return
}

func LoadFragmentsFile(fileName string) ([]Fragment, error) {
	d, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}

	return ParseFragments(d)
}
