package internal

import (
	"strconv"
	"testing"

	mat "github.com/nathanhack/sparsemat"
)

func TestRank(t *testing.T) {
	tests := []struct {
		input    mat.SparseMat
		expected int
	}{
		{mat.CSRIdentity(5), 5},
		{mat.CSRMat(2, 2, 1, 1, 1, 1), 1},
		{mat.CSRMat(3, 7, 1, 0, 0, 1, 1, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 1), 3},
		{ //one linearly dependent row
			mat.CSRMat(4, 5, 1, 1, 0, 0, 0, 0, 1, 1, 0, 0, 1, 0, 1, 0, 0, 0, 0, 0, 1, 1),
			3,
		},
		{mat.CSRMat(2, 3), 0},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			actual := Rank(test.input)
			if actual != test.expected {
				t.Fatalf("expected %v but found %v", test.expected, actual)
			}
		})
	}
}

func TestDistinctColumns(t *testing.T) {
	tests := []struct {
		input    mat.SparseMat
		expected bool
	}{
		{mat.CSRMat(2, 4, 1, 1, 1, 1, 0, 1, 0, 1), false},
		{mat.CSRMat(2, 3, 0, 1, 1, 1, 0, 1), true},
		{mat.CSRMat(3, 3, 1, 1, 0, 0, 0, 0, 1, 1, 1), false},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			actual := DistinctColumns(test.input)
			if actual != test.expected {
				t.Fatalf("expected %v but found %v", test.expected, actual)
			}
		})
	}
}
