package reedmuller

import (
	"fmt"

	"github.com/sirupsen/logrus"
	mat2 "gonum.org/v1/gonum/mat"
)

// Strategy selects how the Hadamard transform is computed while decoding.
type Strategy string

const (
	// FastHadamard uses the in-place O(n log n) butterfly.
	FastHadamard Strategy = "fht"
	// Kronecker multiplies by the m precomputed stage matrices, O(m n^2).
	Kronecker Strategy = "kronecker"
)

// ParseStrategy converts a name into a Strategy. The empty string selects FastHadamard.
func ParseStrategy(name string) (Strategy, error) {
	switch Strategy(name) {
	case "", FastHadamard:
		return FastHadamard, nil
	case Kronecker:
		return Kronecker, nil
	}
	return "", fmt.Errorf("%w: unknown strategy %q", ErrInvalidParameter, name)
}

// Transform applies the n x n Hadamard transform to w in place.
type Transform interface {
	Apply(w *mat2.VecDense)
}

// NewTransform builds the Transform for strategy on a code with parameters p.
func NewTransform(p Parameters, strategy Strategy) (Transform, error) {
	switch strategy {
	case FastHadamard:
		return fastTransform{}, nil
	case Kronecker:
		if p.Order() > MaxKroneckerOrder {
			return nil, fmt.Errorf("%w: kronecker strategy requires m <= %v but found %v", ErrInvalidParameter, MaxKroneckerOrder, p.Order())
		}
		stages, err := KroneckerStages(p.Order())
		if err != nil {
			return nil, err
		}
		return &kroneckerTransform{stages: stages}, nil
	}
	return nil, fmt.Errorf("%w: unknown strategy %q", ErrInvalidParameter, strategy)
}

// FHT performs the fast Hadamard transform on a in place.
// After it returns a holds a multiplied by the len(a) x len(a) Hadamard matrix.
// len(a) must be a power of two.
func FHT(a []float64) {
	n := len(a)
	if n == 0 || n&(n-1) != 0 {
		panic(fmt.Sprintf("length == %v must be a power of two", n))
	}

	for h := 1; h < n; h <<= 1 {
		for i := 0; i < n; i += h << 1 {
			for j := i; j < i+h; j++ {
				x, y := a[j], a[j+h]
				a[j], a[j+h] = x+y, x-y
			}
		}
	}
}

type fastTransform struct{}

func (fastTransform) Apply(w *mat2.VecDense) {
	raw := w.RawVector()
	if raw.Inc == 1 {
		FHT(raw.Data[:w.Len()])
		return
	}

	//strided views are transformed through a copy
	data := make([]float64, w.Len())
	for i := range data {
		data[i] = w.AtVec(i)
	}
	FHT(data)
	for i, v := range data {
		w.SetVec(i, v)
	}
}

// hadamardKernel is the 2x2 Hadamard matrix [[1,1],[1,-1]].
var hadamardKernel = mat2.NewDense(2, 2, []float64{
	1, 1,
	1, -1,
})

func identity(size int) *mat2.DiagDense {
	ones := make([]float64, size)
	for i := range ones {
		ones[i] = 1
	}
	return mat2.NewDiagDense(size, ones)
}

// KroneckerStage returns I(2^(m-i)) ⊗ H ⊗ I(2^(i-1)) for i in [1,m].
func KroneckerStage(m, i int) (*mat2.Dense, error) {
	if i < 1 || i > m {
		return nil, fmt.Errorf("%w: stage == %v must be in [1,%v]", ErrInvalidParameter, i, m)
	}

	var left, stage mat2.Dense
	left.Kronecker(identity(1<<(m-i)), hadamardKernel)
	stage.Kronecker(&left, identity(1<<(i-1)))
	return &stage, nil
}

// KroneckerStages returns the m stage matrices in the order they are applied.
func KroneckerStages(m int) ([]*mat2.Dense, error) {
	if _, err := NewParameters(m); err != nil {
		return nil, err
	}

	logrus.Debugf("Creating %v kronecker stages of size %v", m, 1<<m)
	stages := make([]*mat2.Dense, m)
	for i := 1; i <= m; i++ {
		stage, err := KroneckerStage(m, i)
		if err != nil {
			return nil, err
		}
		stages[i-1] = stage
	}
	return stages, nil
}

type kroneckerTransform struct {
	stages []*mat2.Dense
}

func (k *kroneckerTransform) Apply(w *mat2.VecDense) {
	// w is a row vector so each stage computes w = w * S
	for _, stage := range k.stages {
		w.MulVec(stage.T(), w)
	}
}
