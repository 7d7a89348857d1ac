package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"binforest/internal/models"
)

// Point is the training accuracy of a tree and a forest grown to one depth.
type Point struct {
	MaxDepth  int
	TreeAcc   float64
	ForestAcc float64
	TreeDepth int
	Leaves    int
}

// DepthCurve trains a tree and a forest for every max_depth in [0, maxDepth].
// Each forest draws from its own generator seeded with seed so points differ
// only by depth.
func DepthCurve(X [][]int, y []int, maxDepth, trees int, seed int64) ([]Point, error) {
	out := make([]Point, 0, maxDepth+1)
	for d := 0; d <= maxDepth; d++ {
		root, err := models.TrainTree(X, y, d)
		if err != nil {
			return nil, err
		}
		treeAcc, err := models.TestTree(X, y, root)
		if err != nil {
			return nil, err
		}
		rf := models.NewRandomForest(seed)
		rf.NEstimators = trees
		rf.MaxDepth = d
		if err := rf.Fit(X, y); err != nil {
			return nil, err
		}
		rep, err := models.TestForest(X, y, rf.Trees)
		if err != nil {
			return nil, err
		}
		out = append(out, Point{MaxDepth: d, TreeAcc: treeAcc, ForestAcc: rep.Accuracy, TreeDepth: root.Depth(), Leaves: root.Leaves()})
	}
	return out, nil
}

func WriteCSV(path string, points []Point) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.Write([]string{"max_depth", "tree_acc", "forest_acc", "tree_depth", "leaves"}); err != nil {
		return err
	}
	for _, p := range points {
		rec := []string{
			strconv.Itoa(p.MaxDepth),
			fmt.Sprintf("%.6f", p.TreeAcc),
			fmt.Sprintf("%.6f", p.ForestAcc),
			strconv.Itoa(p.TreeDepth),
			strconv.Itoa(p.Leaves),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func PlotPNG(path string, points []Point) error {
	p := plot.New()
	p.Title.Text = "Acurácia por profundidade"
	p.X.Label.Text = "max_depth"
	p.Y.Label.Text = "Acurácia"
	p.Y.Min = 0
	p.Y.Max = 1

	tree := make(plotter.XYs, len(points))
	forest := make(plotter.XYs, len(points))
	for i, pt := range points {
		tree[i].X, tree[i].Y = float64(pt.MaxDepth), pt.TreeAcc
		forest[i].X, forest[i].Y = float64(pt.MaxDepth), pt.ForestAcc
	}
	if err := plotutil.AddLinePoints(p, "Árvore", tree, "Floresta", forest); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return p.Save(8*vg.Inch, 4*vg.Inch, path)
}
