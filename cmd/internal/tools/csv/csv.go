package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/AlexShukel/MullerCodes/benchmarking"
	"github.com/AlexShukel/MullerCodes/cmd/internal/tools"
	"github.com/spf13/cobra"
)

var OutputFile string
var MessageError bool
var ChannelError bool

var CSVRun = func(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		fmt.Println("requires at least one RESULTS_JSON")
		return
	}

	stats := make([]*tools.SimulationStats, len(args))
	names := make([]string, len(args))
	var err error
	for i, resultFile := range args {
		stats[i], err = tools.LoadResults(resultFile)
		if err != nil {
			fmt.Println(err)
			return
		}
		if stats[i] == nil {
			fmt.Printf("results file %v does not exist\n", resultFile)
			return
		}
		names[i] = strings.TrimSuffix(resultFile, filepath.Ext(resultFile))
	}

	f, err := os.Create(OutputFile)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer f.Close()

	err = Write(f, names, stats, column())
	if err != nil {
		fmt.Println(err)
	}
}

//Column is the value written for each simulated channel parameter.
type Column struct {
	Name  string // names the value and its unit in the header
	Value func(benchmarking.Stats) float64
}

var (
	// SuccessRate is in percent like the charts and experiment records.
	SuccessRate     = Column{"Success Rate (%)", func(s benchmarking.Stats) float64 { return s.SuccessRate() * 100 }}
	MessageBitError = Column{"Message Bit Error Rate", func(s benchmarking.Stats) float64 { return s.MessageBitError.Mean }}
	ChannelBitError = Column{"Channel Bit Error Rate", func(s benchmarking.Stats) float64 { return s.ChannelBitError.Mean }}
)

func column() Column {
	switch {
	case MessageError:
		return MessageBitError
	case ChannelError:
		return ChannelBitError
	default:
		return SuccessRate
	}
}

//Write writes one record per results with a column per channel parameter found in any of them.
// Parameters a result was not simulated at are left empty.
func Write(out io.Writer, names []string, stats []*tools.SimulationStats, value Column) error {
	w := csv.NewWriter(out)

	parameters := tools.Parameters(stats...)
	header := []string{fmt.Sprintf("Results File: %v", value.Name)}
	for _, p := range parameters {
		header = append(header, fmt.Sprintf("%v", p))
	}

	err := w.Write(header)
	if err != nil {
		return err
	}

	for i, s := range stats {
		record := make([]string, len(header))
		record[0] = names[i]

		for j, p := range parameters {
			if v, has := s.Stats[p]; has {
				record[j+1] = fmt.Sprintf("%v", value.Value(v))
			}
		}

		err = w.Write(record)
		if err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
