package models

import (
	"errors"
	"fmt"
)

var (
	ErrSampleMismatch    = errors.New("número de amostras difere do número de rótulos")
	ErrRaggedRows        = errors.New("linhas com número de features diferente")
	ErrNoTrees           = errors.New("floresta sem árvores")
	ErrFeatureOutOfRange = errors.New("feature fora do vetor de entrada")
	ErrNotFitted         = errors.New("modelo não treinado")
	ErrInvalidLabel      = errors.New("rótulo fora de {0,1}")
)

type Model interface {
	Fit(X [][]int, y []int) error
	Predict(X [][]int) ([]int, error)
	Name() string
}

// checkShape returns the feature count of X after verifying it is aligned
// with y and rectangular.
func checkShape(X [][]int, y []int) (int, error) {
	if len(X) != len(y) {
		return 0, fmt.Errorf("%w: %d amostras, %d rótulos", ErrSampleMismatch, len(X), len(y))
	}
	for i, v := range y {
		if v != 0 && v != 1 {
			return 0, fmt.Errorf("%w: rótulo %d na linha %d", ErrInvalidLabel, v, i)
		}
	}
	if len(X) == 0 {
		return 0, nil
	}
	nFeats := len(X[0])
	for i := range X {
		if len(X[i]) != nFeats {
			return 0, fmt.Errorf("%w: linha %d tem %d, esperado %d", ErrRaggedRows, i, len(X[i]), nFeats)
		}
	}
	return nFeats, nil
}

var (
	_ Model = (*DecisionTree)(nil)
	_ Model = (*RandomForest)(nil)
)
