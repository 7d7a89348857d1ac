package models

import (
	"fmt"
	"math/rand"
)

type RandomForest struct {
	NEstimators int
	MaxDepth    int
	Rand        *rand.Rand
	Trees       []*Node
}

func NewRandomForest(seed int64) *RandomForest {
	return &RandomForest{NEstimators: 11, MaxDepth: 3, Rand: rand.New(rand.NewSource(seed)), Trees: []*Node{}}
}

func (rf *RandomForest) Name() string { return "RandomForest" }

func (rf *RandomForest) Fit(X [][]int, y []int) error {
	if rf.Rand == nil {
		rf.Rand = rand.New(rand.NewSource(1))
	}
	trees, err := BuildForest(X, y, rf.MaxDepth, rf.NEstimators, rf.Rand)
	if err != nil {
		return err
	}
	rf.Trees = trees
	return nil
}

func (rf *RandomForest) Predict(X [][]int) ([]int, error) {
	if len(rf.Trees) == 0 {
		return nil, ErrNotFitted
	}
	out := make([]int, len(X))
	for i := range X {
		votes, err := Votes(rf.Trees, X[i])
		if err != nil {
			return nil, fmt.Errorf("linha %d: %w", i, err)
		}
		out[i] = votes.Label()
	}
	return out, nil
}

// BuildForest trains nTrees trees, each on its own bootstrap sample drawn
// from rng. The feature count comes from X so an empty sample still yields a
// (single leaf) tree.
func BuildForest(X [][]int, y []int, maxDepth, nTrees int, rng *rand.Rand) ([]*Node, error) {
	if nTrees <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrNoTrees, nTrees)
	}
	nFeats, err := checkShape(X, y)
	if err != nil {
		return nil, err
	}
	forest := make([]*Node, 0, nTrees)
	for k := 0; k < nTrees; k++ {
		Xb, yb := Bootstrap(rng, X, y)
		forest = append(forest, trainTree(Xb, yb, nFeats, maxDepth))
	}
	return forest, nil
}

// Tally counts the trees voting for label 0 and label 1.
type Tally [2]int

// Label is 0 only when label 0 wins outright; ties go to 1.
func (t Tally) Label() int {
	if t[0] > t[1] {
		return 0
	}
	return 1
}

func Votes(forest []*Node, x []int) (Tally, error) {
	var t Tally
	for _, tree := range forest {
		p, err := tree.Predict(x)
		if err != nil {
			return t, err
		}
		if p != 0 && p != 1 {
			return t, fmt.Errorf("%w: folha com %d", ErrInvalidLabel, p)
		}
		t[p]++
	}
	return t, nil
}

type ForestReport struct {
	Accuracy       float64   `json:"accuracy"`
	TreeAccuracies []float64 `json:"tree_accuracies"`
}

// TestForest scores the majority vote of forest on (X, y) and each member on
// its own.
func TestForest(X [][]int, y []int, forest []*Node) (ForestReport, error) {
	var r ForestReport
	if len(forest) == 0 {
		return r, ErrNoTrees
	}
	if len(X) != len(y) {
		return r, fmt.Errorf("%w: %d amostras, %d rótulos", ErrSampleMismatch, len(X), len(y))
	}
	r.TreeAccuracies = make([]float64, len(forest))
	for i, tree := range forest {
		acc, err := TestTree(X, y, tree)
		if err != nil {
			return r, fmt.Errorf("árvore %d: %w", i, err)
		}
		r.TreeAccuracies[i] = acc
	}
	preds := make([]int, len(X))
	for i := range X {
		t, err := Votes(forest, X[i])
		if err != nil {
			return r, fmt.Errorf("linha %d: %w", i, err)
		}
		preds[i] = t.Label()
	}
	r.Accuracy = accuracy(y, preds)
	return r, nil
}
