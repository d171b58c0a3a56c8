package internal

import (
	mat "github.com/nathanhack/sparsemat"
	"github.com/sirupsen/logrus"
)

//Rank calculates the rank of M over GF(2) using row reduction on a copy of M.
func Rank(M mat.SparseMat) int {
	rows, cols := M.Dims()
	work := mat.CSRMatCopy(M)

	rank := 0
	for c := 0; c < cols && rank < rows; c++ {
		pivot := findPivotRowGF2(work, c, rank)
		if pivot == -1 {
			continue
		}
		work.SwapRows(rank, pivot)

		// in GF2 subtract is add
		prow := work.Row(rank)
		for _, r := range work.Column(c).NonzeroArray() {
			if r == rank {
				continue
			}
			row := work.Row(r)
			row.Add(row, prow)
			work.SetRow(r, row)
		}
		rank++
	}
	logrus.Debugf("Rank of %vx%v matrix is %v", rows, cols, rank)
	return rank
}

func findPivotRowGF2(M mat.SparseMat, col, fromRow int) int {
	for _, r := range M.Column(col).NonzeroArray() {
		if r >= fromRow {
			return r
		}
	}
	return -1
}

//DistinctColumns returns true when no two columns of M are equal.
func DistinctColumns(M mat.SparseMat) bool {
	_, cols := M.Dims()
	seen := make(map[string]int, cols)
	for c := 0; c < cols; c++ {
		key := M.Column(c).String()
		if prev, has := seen[key]; has {
			logrus.Debugf("Column %v equals column %v", c, prev)
			return false
		}
		seen[key] = c
	}
	return true
}
