package models

import (
	"math"
	"math/rand"
)

// BootstrapSize is the number of rows drawn per tree: ceil(0.1*n + 0.5).
func BootstrapSize(n int) int {
	return int(math.Ceil(0.1*float64(n) + 0.5))
}

// Bootstrap draws BootstrapSize(len(X)) rows with replacement and returns
// them without the first draw. The dropped row is deliberate; see DESIGN.md
// before changing it.
func Bootstrap(rng *rand.Rand, X [][]int, y []int) ([][]int, []int) {
	n := len(X)
	if n == 0 {
		return nil, nil
	}
	m := BootstrapSize(n)
	idx := make([]int, m)
	for i := range idx {
		idx[i] = rng.Intn(n)
	}
	Xb := make([][]int, 0, m-1)
	yb := make([]int, 0, m-1)
	for _, j := range idx[1:] {
		Xb = append(Xb, X[j])
		yb = append(yb, y[j])
	}
	return Xb, yb
}
