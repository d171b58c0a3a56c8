package experiment

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/AlexShukel/MullerCodes/linearblock/reedmuller"
)

func TestRun(t *testing.T) {
	orders := []int{3, 5}
	probabilities := []float64{0.2, 0.0}

	var progress bytes.Buffer
	result, err := Run(context.Background(), orders, probabilities, 200, 2, reedmuller.FastHadamard, &progress)
	if err != nil {
		t.Fatalf("expected no error but found: %v", err)
	}

	records := result.Records()
	if len(records) != len(orders)*len(probabilities) {
		t.Fatalf("expected %v but found %v", len(orders)*len(probabilities), len(records))
	}

	//probabilities come back sorted and a noiseless channel always decodes
	for i, m := range orders {
		r := records[i]
		if r.M != m || r.N != 1<<m || r.Pe != 0 {
			t.Fatalf("expected m=%v n=%v pe=0 but found %+v", m, 1<<m, r)
		}
		if r.SuccessRate != 100 {
			t.Fatalf("expected %v but found %v", 100, r.SuccessRate)
		}
	}
	if !strings.Contains(progress.String(), "Simulating Pe = 0.20: ") {
		t.Fatalf("expected progress for 0.20 but found %q", progress.String())
	}
}

func TestRun_InvalidParameter(t *testing.T) {
	tests := []struct {
		orders        []int
		probabilities []float64
	}{
		{nil, []float64{0.1}},
		{[]int{3}, nil},
		{[]int{3}, []float64{1.5}},
		{[]int{0}, []float64{0.1}},
	}
	for _, test := range tests {
		_, err := Run(context.Background(), test.orders, test.probabilities, 10, 1, reedmuller.FastHadamard, nil)
		if !errors.Is(err, reedmuller.ErrInvalidParameter) {
			t.Fatalf("expected %v but found %v", reedmuller.ErrInvalidParameter, err)
		}
	}
}

func TestResult_WriteTable(t *testing.T) {
	result, err := Run(context.Background(), []int{3, 4}, []float64{0}, 10, 1, reedmuller.Kronecker, nil)
	if err != nil {
		t.Fatalf("expected no error but found: %v", err)
	}

	var buf bytes.Buffer
	result.WriteTable(&buf)

	expected := "=== FINAL RESULTS TABLE ===\n" +
		"| Pe   | m=3 (n=8) | m=4 (n=16) |\n" +
		"|------|--------------|--------------|\n" +
		"| 0.00 | 100.0%       | 100.0%       |\n"
	if buf.String() != expected {
		t.Fatalf("expected %q but found %q", expected, buf.String())
	}
}
