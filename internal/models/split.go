package models

// Split is the outcome of evaluating the remaining features of a node.
// No and Yes hold the row indices where the chosen feature is 0 and 1.
type Split struct {
	Feature    int
	Gain       float64
	EntropyNo  float64
	EntropyYes float64
	No         []int
	Yes        []int
}

// bestSplit scans remaining in order and keeps the feature with the strictly
// highest information gain over a baseline of 0, so ties go to the earlier
// feature. A zero Gain means no feature is informative.
func bestSplit(X [][]int, y []int, idx []int, remaining []int, h float64) Split {
	best := Split{Feature: -1}
	n := float64(len(idx))
	for _, f := range remaining {
		no, yes := partition(X, idx, f)
		hNo := entropyOf(y, no)
		hYes := entropyOf(y, yes)
		ig := h - float64(len(no))/n*hNo - float64(len(yes))/n*hYes
		if ig > best.Gain {
			best = Split{Feature: f, Gain: ig, EntropyNo: hNo, EntropyYes: hYes, No: no, Yes: yes}
		}
	}
	return best
}

func partition(X [][]int, idx []int, f int) ([]int, []int) {
	no := make([]int, 0, len(idx))
	yes := make([]int, 0, len(idx))
	for _, i := range idx {
		if X[i][f] == 0 {
			no = append(no, i)
		} else {
			yes = append(yes, i)
		}
	}
	return no, yes
}
