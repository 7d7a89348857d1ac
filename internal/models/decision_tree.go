package models

import "fmt"

type DecisionTree struct {
	MaxDepth int
	Root     *Node
}

func NewDecisionTree() *DecisionTree {
	return &DecisionTree{MaxDepth: 3}
}

func (dt *DecisionTree) Name() string { return "DecisionTree" }

func (dt *DecisionTree) Fit(X [][]int, y []int) error {
	root, err := TrainTree(X, y, dt.MaxDepth)
	if err != nil {
		return err
	}
	dt.Root = root
	return nil
}

func (dt *DecisionTree) Predict(X [][]int) ([]int, error) {
	return predictAll(X, dt.Root)
}

// TrainTree grows an ID3 tree over binary features. The root sits at depth 1
// and nodes deeper than maxDepth become majority leaves, so no path holds more
// than maxDepth split nodes.
func TrainTree(X [][]int, y []int, maxDepth int) (*Node, error) {
	nFeats, err := checkShape(X, y)
	if err != nil {
		return nil, err
	}
	return trainTree(X, y, nFeats, maxDepth), nil
}

func trainTree(X [][]int, y []int, nFeats int, maxDepth int) *Node {
	idx := make([]int, len(X))
	for i := range idx {
		idx[i] = i
	}
	features := make([]int, nFeats)
	for i := range features {
		features[i] = i
	}
	b := builder{X: X, y: y, maxDepth: maxDepth}
	return b.build(idx, features, 1, entropyOf(y, idx))
}

type builder struct {
	X        [][]int
	y        []int
	maxDepth int
}

func (b *builder) build(idx []int, remaining []int, depth int, h float64) *Node {
	if h == 0 {
		if len(idx) == 0 {
			return leaf(0)
		}
		return leaf(b.y[idx[0]])
	}
	if depth > b.maxDepth || len(remaining) == 0 {
		return leaf(majority(b.y, idx))
	}
	s := bestSplit(b.X, b.y, idx, remaining, h)
	if s.Gain == 0 {
		return leaf(majority(b.y, idx))
	}
	// Branches own separate copies of the remaining features.
	left := without(remaining, s.Feature)
	right := without(remaining, s.Feature)
	return &Node{
		Value: s.Feature,
		Left:  b.build(s.No, left, depth+1, s.EntropyNo),
		Right: b.build(s.Yes, right, depth+1, s.EntropyYes),
	}
}

// majority is 1 only when ones strictly outnumber zeros.
func majority(y []int, idx []int) int {
	ones := 0
	for _, i := range idx {
		ones += y[i]
	}
	if ones > len(idx)-ones {
		return 1
	}
	return 0
}

func without(features []int, f int) []int {
	out := make([]int, 0, len(features))
	for _, g := range features {
		if g != f {
			out = append(out, g)
		}
	}
	return out
}

func predictAll(X [][]int, root *Node) ([]int, error) {
	if root == nil {
		return nil, ErrNotFitted
	}
	out := make([]int, len(X))
	for i := range X {
		p, err := root.Predict(X[i])
		if err != nil {
			return nil, fmt.Errorf("linha %d: %w", i, err)
		}
		out[i] = p
	}
	return out, nil
}

// TestTree returns the fraction of rows of X the tree labels correctly.
func TestTree(X [][]int, y []int, root *Node) (float64, error) {
	if len(X) != len(y) {
		return 0, fmt.Errorf("%w: %d amostras, %d rótulos", ErrSampleMismatch, len(X), len(y))
	}
	preds, err := predictAll(X, root)
	if err != nil {
		return 0, err
	}
	return accuracy(y, preds), nil
}

func accuracy(y, p []int) float64 {
	if len(y) == 0 {
		return 0
	}
	c := 0
	for i := range y {
		if y[i] == p[i] {
			c++
		}
	}
	return float64(c) / float64(len(y))
}
