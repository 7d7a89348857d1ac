package data

import (
	"fmt"

	"go.uber.org/multierr"
)

// Dataset is a binary feature matrix with its aligned label vector.
type Dataset struct {
	X     [][]int  `json:"x"`
	Y     []int    `json:"y"`
	Names []string `json:"names,omitempty"`
}

// Source hands a dataset to the training pipeline.
//
//go:generate mockgen -destination=mocks/mock_source.go -package=mocks binforest/internal/data Source
type Source interface {
	Load() (*Dataset, error)
}

func (d *Dataset) Rows() int { return len(d.X) }

func (d *Dataset) Features() int {
	if len(d.X) == 0 {
		return len(d.Names)
	}
	return len(d.X[0])
}

// Validate reports every shape problem and every non-binary cell at once.
func (d *Dataset) Validate() error {
	var err error
	if len(d.X) != len(d.Y) {
		err = multierr.Append(err, fmt.Errorf("%d linhas de features e %d rótulos", len(d.X), len(d.Y)))
	}
	nFeats := d.Features()
	if len(d.Names) > 0 && len(d.Names) != nFeats {
		err = multierr.Append(err, fmt.Errorf("%d nomes para %d features", len(d.Names), nFeats))
	}
	for i, row := range d.X {
		if len(row) != nFeats {
			err = multierr.Append(err, fmt.Errorf("linha %d: %d features, esperado %d", i, len(row), nFeats))
		}
		for j, v := range row {
			if v != 0 && v != 1 {
				err = multierr.Append(err, fmt.Errorf("linha %d, feature %d: valor %d não binário", i, j, v))
			}
		}
	}
	for i, v := range d.Y {
		if v != 0 && v != 1 {
			err = multierr.Append(err, fmt.Errorf("linha %d: rótulo %d não binário", i, v))
		}
	}
	return err
}
