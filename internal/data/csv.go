package data

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"binforest/internal/features"
)

// CSVSource reads a delimited file where one column holds the label and the
// rest are features. LabelColumn may be negative to count from the end.
type CSVSource struct {
	Path        string
	LabelColumn int
	Header      bool
	Binarize    bool
	Comma       rune
}

func (s CSVSource) Load() (*Dataset, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	if s.Comma != 0 {
		r.Comma = s.Comma
	}
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ler %s: %w", s.Path, err)
	}
	var names []string
	if s.Header && len(rows) > 0 {
		names = rows[0]
		rows = rows[1:]
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: CSV vazio", s.Path)
	}

	nCols := len(rows[0])
	label := s.LabelColumn
	if label < 0 {
		label += nCols
	}
	if label < 0 || label >= nCols {
		return nil, fmt.Errorf("coluna de rótulo %d fora de %d colunas", s.LabelColumn, nCols)
	}

	raw := make([][]float64, 0, len(rows))
	labels := make([]float64, 0, len(rows))
	for i, row := range rows {
		vals := make([]float64, 0, nCols-1)
		for j, cell := range row {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("linha %d, coluna %d: %w", i+1, j, err)
			}
			if j == label {
				labels = append(labels, v)
			} else {
				vals = append(vals, v)
			}
		}
		raw = append(raw, vals)
	}

	y, err := features.BinaryLabels(labels)
	if err != nil {
		return nil, err
	}
	var X [][]int
	if s.Binarize {
		X = features.Binarize(raw, features.Medians(raw))
	} else {
		X = make([][]int, len(raw))
		for i, vals := range raw {
			X[i] = make([]int, len(vals))
			for j, v := range vals {
				if v != 0 && v != 1 {
					return nil, fmt.Errorf("linha %d, feature %d: valor %v não binário", i+1, j, v)
				}
				X[i][j] = int(v)
			}
		}
	}

	d := &Dataset{X: X, Y: y}
	if names != nil {
		d.Names = append(append([]string{}, names[:label]...), names[label+1:]...)
	}
	return d, nil
}
