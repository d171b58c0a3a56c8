package reedmuller

import (
	mat "github.com/nathanhack/sparsemat"
	"github.com/sirupsen/logrus"
)

// Generator creates the k x n generator matrix of RM(1,m).
// Row 0 is all ones, row r (1<=r<=m) has a 1 in column c when bit r-1 of c is set,
// so column c is the evaluation of the constant and the m coordinate functions at c.
func Generator(m int) (mat.SparseMat, error) {
	p, err := NewParameters(m)
	if err != nil {
		return nil, err
	}
	k, n := p.MessageLength(), p.CodewordLength()

	logrus.Debugf("Creating %v generator matrix", p)
	G := mat.DOKMat(k, n)
	for c := 0; c < n; c++ {
		G.Set(0, c, 1)
		for r := 0; r < m; r++ {
			if (c>>r)&1 == 1 {
				G.Set(r+1, c, 1)
			}
		}
	}

	logrus.Debugf("Generator Matrix complete")
	return mat.CSRMatCopy(G), nil
}
