package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEntropy(t *testing.T) {
	require.Equal(t, 0.0, Entropy([]int{0, 0, 0, 0, 0, 0}))
	require.Equal(t, 0.0, Entropy([]int{1, 1, 1}))
	require.Equal(t, 0.0, Entropy(nil))
	require.InDelta(t, 1.0, Entropy([]int{0, 0, 1, 1}), 1e-12)

	p := 0.25
	want := -p*math.Log2(p) - (1-p)*math.Log2(1-p)
	require.InDelta(t, want, Entropy([]int{1, 0, 0, 0}), 1e-12)
}

func TestEntropyUnexpectedLabels(t *testing.T) {
	require.NotPanics(t, func() { Entropy([]int{2, -1}) })
	require.InDelta(t, 1.0, Entropy([]int{2, -1, 2, -1}), 1e-12)
	require.Equal(t, 0.0, Entropy([]int{7, 7}))
	require.InDelta(t, math.Log2(3), Entropy([]int{0, 1, 2}), 1e-12)
}

func TestEntropyOfSubset(t *testing.T) {
	y := []int{0, 1, 1, 0, 1}
	require.Equal(t, 0.0, entropyOf(y, []int{1, 2, 4}))
	require.Equal(t, 0.0, entropyOf(y, []int{}))
	require.InDelta(t, 1.0, entropyOf(y, []int{0, 1}), 1e-12)
}

func TestBestSplitPerfectFeature(t *testing.T) {
	X := [][]int{{0, 1}, {1, 0}, {0, 0}, {1, 1}}
	y := []int{0, 1, 0, 1}
	idx := []int{0, 1, 2, 3}
	h := Entropy(y)

	s := bestSplit(X, y, idx, []int{0, 1}, h)
	require.Equal(t, 0, s.Feature)
	require.InDelta(t, h, s.Gain, 1e-12)
	require.Equal(t, 0.0, s.EntropyNo)
	require.Equal(t, 0.0, s.EntropyYes)
	require.Equal(t, []int{0, 2}, s.No)
	require.Equal(t, []int{1, 3}, s.Yes)
}

func TestBestSplitGainNeverNegative(t *testing.T) {
	X := [][]int{{0, 1, 1}, {1, 0, 1}, {0, 0, 0}, {1, 1, 0}, {1, 1, 1}, {0, 1, 0}}
	y := []int{0, 1, 1, 0, 1, 0}
	idx := []int{0, 1, 2, 3, 4, 5}
	h := Entropy(y)
	for f := 0; f < 3; f++ {
		no, yes := partition(X, idx, f)
		ig := h - float64(len(no))/6*entropyOf(y, no) - float64(len(yes))/6*entropyOf(y, yes)
		require.GreaterOrEqual(t, ig, -1e-12)
	}
}

func TestBestSplitTieKeepsFirst(t *testing.T) {
	// features 1 and 2 are identical copies of the label
	X := [][]int{{0, 0, 0}, {0, 1, 1}, {1, 0, 0}, {1, 1, 1}}
	y := []int{0, 1, 0, 1}
	idx := []int{0, 1, 2, 3}

	s := bestSplit(X, y, idx, []int{2, 1, 0}, Entropy(y))
	require.Equal(t, 2, s.Feature)
	s = bestSplit(X, y, idx, []int{0, 1, 2}, Entropy(y))
	require.Equal(t, 1, s.Feature)
}

func TestBestSplitNoInformativeFeature(t *testing.T) {
	X := [][]int{{0}, {0}, {1}, {1}}
	y := []int{0, 1, 0, 1}
	s := bestSplit(X, y, []int{0, 1, 2, 3}, []int{0}, Entropy(y))
	require.Equal(t, -1, s.Feature)
	require.Equal(t, 0.0, s.Gain)
}
