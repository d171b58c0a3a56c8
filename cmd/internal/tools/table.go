package tools

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

//Parameters returns the channel parameters found in data in increasing order.
func Parameters(data ...*SimulationStats) []float64 {
	found := map[float64]bool{}
	for _, d := range data {
		if d == nil {
			continue
		}
		for p := range d.Stats {
			found[p] = true
		}
	}
	keys := maps.Keys(found)
	slices.Sort(keys)
	return keys
}

//PrintTable writes the success rate per channel parameter to stdout.
func PrintTable(data *SimulationStats) {
	WriteTable(os.Stdout, data)
}

//WriteTable writes a markdown table with one row per channel parameter.
func WriteTable(w io.Writer, data *SimulationStats) {
	fmt.Fprintln(w, "| Parameter | Trials | Success | Message BER | Channel BER |")
	fmt.Fprintln(w, "|"+strings.Repeat("------|", 5))
	for _, p := range Parameters(data) {
		s := data.Stats[p]
		fmt.Fprintf(w, "| %v | %v | %0.1f%% | %0.4f | %0.4f |\n", p, s.Trials(), s.SuccessRate()*100, s.MessageBitError.Mean, s.ChannelBitError.Mean)
	}
}
