package features

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Medians returns the empirical median of every column of rows.
func Medians(rows [][]float64) []float64 {
	if len(rows) == 0 {
		return nil
	}
	nCols := len(rows[0])
	out := make([]float64, nCols)
	col := make([]float64, len(rows))
	for j := 0; j < nCols; j++ {
		for i := range rows {
			col[i] = rows[i][j]
		}
		sort.Float64s(col)
		out[j] = stat.Quantile(0.5, stat.Empirical, col, nil)
	}
	return out
}

// Binarize maps every cell to 1 when it is above its column threshold.
func Binarize(rows [][]float64, thresholds []float64) [][]int {
	out := make([][]int, len(rows))
	for i, row := range rows {
		out[i] = make([]int, len(row))
		for j, v := range row {
			out[i][j] = boolToInt(v > thresholds[j])
		}
	}
	return out
}

// BinaryLabels maps a column with at most two distinct values onto {0,1},
// the smaller value becoming 0. A column holding a single value maps 0 to 0
// and any value >= 1 to 1; other lone values are rejected.
func BinaryLabels(values []float64) ([]int, error) {
	distinct := map[float64]bool{}
	for _, v := range values {
		distinct[v] = true
	}
	if len(distinct) > 2 {
		return nil, fmt.Errorf("coluna de rótulo com %d valores distintos, esperado no máximo 2", len(distinct))
	}
	keys := make([]float64, 0, 2)
	for k := range distinct {
		keys = append(keys, k)
	}
	sort.Float64s(keys)
	var one float64
	switch {
	case len(keys) == 2:
		one = keys[1]
	case len(keys) == 1 && keys[0] == 0:
		one = 1
	case len(keys) == 1 && keys[0] >= 1:
		// a lone class above 1 is read as the upper class, as it maps when both are present
		one = keys[0]
	case len(keys) == 1:
		return nil, fmt.Errorf("coluna de rótulo com valor único %v, esperado 0 ou >= 1", keys[0])
	}
	out := make([]int, len(values))
	for i, v := range values {
		out[i] = boolToInt(v == one)
	}
	return out, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
