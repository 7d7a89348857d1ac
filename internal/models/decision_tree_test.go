package models

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrainTreePerfectFeature(t *testing.T) {
	X := [][]int{{1, 0, 1}, {0, 0, 1}, {1, 1, 0}, {0, 1, 1}, {1, 0, 0}, {0, 1, 0}}
	y := []int{0, 1, 0, 1, 0, 1}

	root, err := TrainTree(X, y, 1)
	require.NoError(t, err)
	require.False(t, root.Decision)
	require.Equal(t, 0, root.Value)
	require.Equal(t, "0 _1 _0", Preorder(root))

	acc, err := TestTree(X, y, root)
	require.NoError(t, err)
	require.Equal(t, 1.0, acc)
}

func TestTrainTreePureLabels(t *testing.T) {
	root, err := TrainTree([][]int{{0, 1}, {1, 1}}, []int{1, 1}, 3)
	require.NoError(t, err)
	require.Equal(t, &Node{Decision: true, Value: 1}, root)
}

func TestTrainTreeZeroDepthIsMajorityLeaf(t *testing.T) {
	X := [][]int{{0}, {1}, {1}}
	root, err := TrainTree(X, []int{0, 1, 1}, 0)
	require.NoError(t, err)
	require.Equal(t, "_1", Preorder(root))

	// a 1-1 tie goes to label 0
	root, err = TrainTree([][]int{{0}, {1}}, []int{1, 0}, 0)
	require.NoError(t, err)
	require.Equal(t, "_0", Preorder(root))
}

func TestTrainTreeXOR(t *testing.T) {
	X := [][]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	y := []int{0, 1, 1, 0}

	// neither feature alone gains anything, so greedy ID3 stops at the root
	root, err := TrainTree(X, y, 2)
	require.NoError(t, err)
	require.Equal(t, "_0", Preorder(root))
	acc, err := TestTree(X, y, root)
	require.NoError(t, err)
	require.Equal(t, 0.5, acc)

	// an extra (0,1) sample breaks the symmetry and depth 2 separates XOR
	X = append(X, []int{0, 1})
	y = append(y, 1)
	root, err = TrainTree(X, y, 2)
	require.NoError(t, err)
	require.Equal(t, 2, root.Depth())
	acc, err = TestTree(X, y, root)
	require.NoError(t, err)
	require.Equal(t, 1.0, acc)

	root, err = TrainTree(X, y, 1)
	require.NoError(t, err)
	require.Equal(t, 1, root.Depth())
	acc, err = TestTree(X, y, root)
	require.NoError(t, err)
	require.Less(t, acc, 1.0)
}

func TestTrainTreeSiblingsKeepFeatures(t *testing.T) {
	var X [][]int
	var y []int
	add := func(x0, x1, label, times int) {
		for i := 0; i < times; i++ {
			X = append(X, []int{x0, x1})
			y = append(y, label)
		}
	}
	add(0, 0, 0, 3)
	add(0, 1, 1, 1)
	add(1, 0, 1, 3)
	add(1, 1, 0, 1)

	root, err := TrainTree(X, y, 2)
	require.NoError(t, err)
	require.Equal(t, "0 1 _0 _1 1 _1 _0", Preorder(root))
	acc, err := TestTree(X, y, root)
	require.NoError(t, err)
	require.Equal(t, 1.0, acc)
}

func randomDataset(rng *rand.Rand, n, f int) ([][]int, []int) {
	X := make([][]int, n)
	y := make([]int, n)
	for i := range X {
		X[i] = make([]int, f)
		for j := range X[i] {
			X[i][j] = rng.Intn(2)
		}
		y[i] = rng.Intn(2)
	}
	return X, y
}

func checkPaths(t *testing.T, n *Node, seen map[int]bool) {
	if n.Decision {
		require.Contains(t, []int{0, 1}, n.Value)
		require.Nil(t, n.Left)
		require.Nil(t, n.Right)
		return
	}
	require.False(t, seen[n.Value], "feature %d repeated on a path", n.Value)
	require.NotNil(t, n.Left)
	require.NotNil(t, n.Right)
	seen[n.Value] = true
	checkPaths(t, n.Left, seen)
	checkPaths(t, n.Right, seen)
	delete(seen, n.Value)
}

func TestTrainTreeDepthBound(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	X, y := randomDataset(rng, 300, 8)
	for d := 0; d <= 6; d++ {
		root, err := TrainTree(X, y, d)
		require.NoError(t, err)
		require.LessOrEqual(t, root.Depth(), d)
		checkPaths(t, root, map[int]bool{})
	}
}

func TestTrainTreeErrors(t *testing.T) {
	_, err := TrainTree([][]int{{0}, {1}}, []int{0}, 2)
	require.ErrorIs(t, err, ErrSampleMismatch)

	_, err = TrainTree([][]int{{0, 1}, {1}}, []int{0, 1}, 2)
	require.ErrorIs(t, err, ErrRaggedRows)

	_, err = TrainTree([][]int{{0}, {1}}, []int{0, 2}, 2)
	require.ErrorIs(t, err, ErrInvalidLabel)
}

func TestTrainTreeEmpty(t *testing.T) {
	root, err := TrainTree(nil, nil, 3)
	require.NoError(t, err)
	require.Equal(t, "_0", Preorder(root))
}

func TestPredict(t *testing.T) {
	root := &Node{Value: 2, Left: leaf(0), Right: &Node{Value: 0, Left: leaf(1), Right: leaf(0)}}

	p, err := root.Predict([]int{0, 0, 0})
	require.NoError(t, err)
	require.Equal(t, 0, p)
	p, err = root.Predict([]int{0, 0, 1})
	require.NoError(t, err)
	require.Equal(t, 1, p)
	p, err = root.Predict([]int{1, 0, 1})
	require.NoError(t, err)
	require.Equal(t, 0, p)

	_, err = root.Predict([]int{0, 1})
	require.ErrorIs(t, err, ErrFeatureOutOfRange)

	var empty *Node
	_, err = empty.Predict([]int{0})
	require.ErrorIs(t, err, ErrNotFitted)
}

func TestTestTreeIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	X, y := randomDataset(rng, 120, 5)
	root, err := TrainTree(X, y, 3)
	require.NoError(t, err)

	a, err := TestTree(X, y, root)
	require.NoError(t, err)
	b, err := TestTree(X, y, root)
	require.NoError(t, err)
	require.Equal(t, a, b)
	require.GreaterOrEqual(t, a, 0.0)
	require.LessOrEqual(t, a, 1.0)

	_, err = TestTree(X, y[1:], root)
	require.ErrorIs(t, err, ErrSampleMismatch)
}

func TestDecisionTreeModel(t *testing.T) {
	X := [][]int{{0, 1}, {1, 1}, {0, 0}, {1, 0}}
	y := []int{1, 0, 1, 0}

	dt := NewDecisionTree()
	_, err := dt.Predict(X)
	require.ErrorIs(t, err, ErrNotFitted)

	require.NoError(t, dt.Fit(X, y))
	preds, err := dt.Predict(X)
	require.NoError(t, err)
	require.Equal(t, y, preds)
	require.Equal(t, "DecisionTree", dt.Name())
}

func TestNodeString(t *testing.T) {
	root := &Node{Value: 1, Left: leaf(0), Right: leaf(1)}
	require.Equal(t, "[f1 == 0]\n  -> 0\n[f1 == 1]\n  -> 1\n", root.String())
	require.Equal(t, 2, root.Leaves())
}
