package chart

import (
	"bytes"
	"strings"
	"testing"

	"github.com/AlexShukel/MullerCodes/benchmarking"
	"github.com/AlexShukel/MullerCodes/cmd/internal/tools"
)

func TestSeries(t *testing.T) {
	var half benchmarking.Stats
	half.Success.Update(1)
	half.Success.Update(0)
	stat := &tools.SimulationStats{Stats: map[float64]benchmarking.Stats{0.2: half}}

	actual := series(stat, []float64{0.1, 0.2})
	if len(actual) != 2 {
		t.Fatalf("expected %v but found %v", 2, len(actual))
	}
	if actual[0].Value != nil {
		t.Fatalf("expected %v but found %v", nil, actual[0].Value)
	}
	if actual[1].Value != 50.0 {
		t.Fatalf("expected %v but found %v", 50.0, actual[1].Value)
	}
}

func TestRender(t *testing.T) {
	var full benchmarking.Stats
	full.Success.Update(1)
	stats := []*tools.SimulationStats{{Stats: map[float64]benchmarking.Stats{0.01: full}}}

	var buf bytes.Buffer
	err := Render(&buf, "Crossover Probability", []string{"RM(1,3)"}, stats)
	if err != nil {
		t.Fatalf("expected no error but found: %v", err)
	}
	if !strings.Contains(buf.String(), "RM(1,3)") {
		t.Fatalf("expected the series name in the rendered chart")
	}
}
