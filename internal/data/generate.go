package data

import (
	"encoding/csv"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
)

// SyntheticRule is the label rule of GenerateSynthetic before noise:
// (f0 AND f1) OR (NOT f0 AND f2).
func SyntheticRule(x []int) int {
	if x[0] == 1 {
		return x[1]
	}
	return x[2]
}

// GenerateSynthetic writes n rows of nFeatures random binary features and a
// label column (last) following SyntheticRule, flipped with probability noise.
func GenerateSynthetic(rng *rand.Rand, n, nFeatures int, noise float64, outPath string) error {
	if nFeatures < 3 {
		nFeatures = 3
	}
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := make([]string, 0, nFeatures+1)
	for j := 0; j < nFeatures; j++ {
		header = append(header, "f"+strconv.Itoa(j))
	}
	header = append(header, "label")
	if err := w.Write(header); err != nil {
		return err
	}

	x := make([]int, nFeatures)
	rec := make([]string, nFeatures+1)
	for i := 0; i < n; i++ {
		for j := range x {
			x[j] = rng.Intn(2)
			rec[j] = strconv.Itoa(x[j])
		}
		label := SyntheticRule(x)
		if rng.Float64() < noise {
			label = 1 - label
		}
		rec[nFeatures] = strconv.Itoa(label)
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
