package experiment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlexShukel/MullerCodes/benchmarking"
	"github.com/AlexShukel/MullerCodes/cmd/internal/tools"
	"github.com/AlexShukel/MullerCodes/cmd/internal/tools/bsc"
	"github.com/AlexShukel/MullerCodes/cmd/internal/tools/chart"
	"github.com/AlexShukel/MullerCodes/linearblock/reedmuller"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	Orders           []int
	ErrorProbability []float64
	Trials           uint
	Threads          uint
	Strategy         string
	OutputFile       string
	ChartFile        string
)

//Record is the outcome of one (m, pe) configuration, SuccessRate is in percent.
type Record struct {
	M           int     `json:"m"`
	N           int     `json:"n"`
	Pe          float64 `json:"pe"`
	SuccessRate float64 `json:"successRate"`
}

//Result holds the stats of every simulated code keyed by crossover probability.
type Result struct {
	Codes []*reedmuller.ReedMuller
	Stats []*tools.SimulationStats
}

var ExperimentRun = func(cmd *cobra.Command, args []string) {
	strategy, err := reedmuller.ParseStrategy(Strategy)
	if err != nil {
		fmt.Println(err)
		return
	}

	ctx, cancel := tools.SignalContext()
	defer cancel()

	fmt.Printf("Running simulations... (%v trials per configuration)\n", Trials)
	result, err := Run(ctx, Orders, ErrorProbability, int(Trials), int(Threads), strategy, os.Stdout)
	if err != nil {
		logrus.Errorf("%v", err)
		return
	}

	bs, err := json.MarshalIndent(result.Records(), "", "  ")
	if err != nil {
		fmt.Println(err)
		return
	}
	err = os.WriteFile(OutputFile, bs, 0644)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("\nData successfully saved to %v\n", OutputFile)

	if ChartFile != "" {
		f, err := os.Create(ChartFile)
		if err != nil {
			fmt.Println(err)
			return
		}
		defer f.Close()

		names := make([]string, len(result.Codes))
		for i, rm := range result.Codes {
			names[i] = rm.Parameters.String()
		}
		err = chart.Render(f, "Crossover Probability", names, result.Stats)
		if err != nil {
			fmt.Println(err)
			return
		}
		logrus.Infof("Chart saved to %v", ChartFile)
	}

	fmt.Println()
	result.WriteTable(os.Stdout)
}

//Run sends trials random messages through a binary symmetric channel for every order in orders
// and every crossover probability in probabilities. Progress is written to progress when it is not nil.
func Run(ctx context.Context, orders []int, probabilities []float64, trials, threads int, strategy reedmuller.Strategy, progress io.Writer) (*Result, error) {
	if len(orders) == 0 || len(probabilities) == 0 {
		return nil, fmt.Errorf("%w: at least one order and one probability are required", reedmuller.ErrInvalidParameter)
	}
	for _, pe := range probabilities {
		if pe < 0 || pe > 1 {
			return nil, fmt.Errorf("%w: crossover probability %v must be in [0, 1]", reedmuller.ErrInvalidParameter, pe)
		}
	}
	if progress == nil {
		progress = io.Discard
	}

	result := &Result{
		Codes: make([]*reedmuller.ReedMuller, len(orders)),
		Stats: make([]*tools.SimulationStats, len(orders)),
	}
	for i, m := range orders {
		rm, err := reedmuller.New(m, strategy)
		if err != nil {
			return nil, err
		}
		result.Codes[i] = rm
		result.Stats[i] = &tools.SimulationStats{
			TypeInfo: "BSC:experiment",
			ECCInfo:  tools.Md5Sum(rm.G),
			Stats:    map[float64]benchmarking.Stats{},
		}
	}

	for _, pe := range probabilities {
		fmt.Fprintf(progress, "Simulating Pe = %0.2f: ", pe)
		for i, rm := range result.Codes {
			stats, err := bsc.RunBSC(ctx, rm, pe, trials, threads, benchmarking.Stats{}, nil, false)
			if err != nil {
				return nil, fmt.Errorf("%v at pe=%v: %w", rm.Parameters, pe, err)
			}
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			result.Stats[i].Stats[pe] = stats
			fmt.Fprintf(progress, "[m=%v: %0.1f%%] ", rm.Parameters.Order(), stats.SuccessRate()*100)
		}
		fmt.Fprintln(progress)
	}
	return result, nil
}

//Records flattens the result ordered by probability then by order.
func (r *Result) Records() []Record {
	records := make([]Record, 0)
	for _, pe := range tools.Parameters(r.Stats...) {
		for i, rm := range r.Codes {
			s, has := r.Stats[i].Stats[pe]
			if !has {
				continue
			}
			records = append(records, Record{
				M:           rm.Parameters.Order(),
				N:           rm.Parameters.CodewordLength(),
				Pe:          pe,
				SuccessRate: s.SuccessRate() * 100,
			})
		}
	}
	return records
}

//WriteTable writes a markdown table with a row per probability and a column per code.
func (r *Result) WriteTable(w io.Writer) {
	fmt.Fprintln(w, "=== FINAL RESULTS TABLE ===")

	header := "| Pe   |"
	separator := "|------|"
	for _, rm := range r.Codes {
		header += fmt.Sprintf(" m=%v (n=%v) |", rm.Parameters.Order(), rm.Parameters.CodewordLength())
		separator += strings.Repeat("-", 14) + "|"
	}
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, separator)

	for _, pe := range tools.Parameters(r.Stats...) {
		row := fmt.Sprintf("| %0.2f |", pe)
		for i := range r.Codes {
			cell := ""
			if s, has := r.Stats[i].Stats[pe]; has {
				cell = fmt.Sprintf("%0.1f%%", s.SuccessRate()*100)
			}
			row += fmt.Sprintf(" %-12v |", cell)
		}
		fmt.Fprintln(w, row)
	}
}
