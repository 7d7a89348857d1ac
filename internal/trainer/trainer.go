package trainer

import (
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"binforest/internal/data"
	"binforest/internal/models"
)

type Params struct {
	MaxDepth int
	Trees    int
	Seed     int64
}

type Result struct {
	Dataset      *data.Dataset
	Tree         *models.DecisionTree
	TreeAccuracy float64
	Forest       *models.RandomForest
	ForestReport models.ForestReport
}

// Run loads src, then trains and scores a single tree and a forest on the
// full dataset.
func Run(src data.Source, p Params, logger *zap.Logger) (*Result, error) {
	ds, err := src.Load()
	if err != nil {
		return nil, fmt.Errorf("carregar dados: %w", err)
	}
	if err := ds.Validate(); err != nil {
		return nil, fmt.Errorf("dataset inválido: %w", err)
	}
	logger.Info("Dataset carregado", zap.Int("amostras", ds.Rows()), zap.Int("features", ds.Features()))

	res := &Result{Dataset: ds}

	res.Tree = models.NewDecisionTree()
	res.Tree.MaxDepth = p.MaxDepth
	if err := res.Tree.Fit(ds.X, ds.Y); err != nil {
		return nil, fmt.Errorf("treinar árvore: %w", err)
	}
	res.TreeAccuracy, err = models.TestTree(ds.X, ds.Y, res.Tree.Root)
	if err != nil {
		return nil, err
	}
	logger.Info("Árvore treinada",
		zap.Float64("accuracy", res.TreeAccuracy),
		zap.Int("depth", res.Tree.Root.Depth()),
		zap.String("preorder", models.Preorder(res.Tree.Root)),
	)

	res.Forest = &models.RandomForest{
		NEstimators: p.Trees,
		MaxDepth:    p.MaxDepth,
		Rand:        rand.New(rand.NewSource(p.Seed)),
	}
	if err := res.Forest.Fit(ds.X, ds.Y); err != nil {
		return nil, fmt.Errorf("treinar floresta: %w", err)
	}
	res.ForestReport, err = models.TestForest(ds.X, ds.Y, res.Forest.Trees)
	if err != nil {
		return nil, err
	}
	for i, acc := range res.ForestReport.TreeAccuracies {
		logger.Info("DT", zap.Int("tree", i), zap.Float64("accuracy", acc))
	}
	logger.Info("Floresta treinada",
		zap.Int("trees", len(res.Forest.Trees)),
		zap.Float64("accuracy", res.ForestReport.Accuracy),
	)
	return res, nil
}
