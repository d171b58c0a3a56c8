package cmd

import (
	bpskreedmuller "github.com/AlexShukel/MullerCodes/cmd/internal/tools/bpsk/reedmuller"
	bscreedmuller "github.com/AlexShukel/MullerCodes/cmd/internal/tools/bsc/reedmuller"
	"github.com/AlexShukel/MullerCodes/cmd/internal/tools/chart"
	"github.com/AlexShukel/MullerCodes/cmd/internal/tools/csv"
	"github.com/AlexShukel/MullerCodes/cmd/internal/tools/experiment"
	"github.com/AlexShukel/MullerCodes/cmd/internal/tools/transmit"

	"github.com/spf13/cobra"
)

// toolsCmd represents the tools command
var toolsCmd = &cobra.Command{
	Use:     "tools",
	Aliases: []string{"t"},
	Short:   "Tools for ECCs",
	Long:    `Tools for ECCs`,
}

// toolsChansimCmd represents the chansim command
var toolsChansimCmd = &cobra.Command{
	Use:     "chansim",
	Aliases: []string{"cs", "c"},
	Short:   "Channel simulators",
	Long:    `Channel simulators for linearblock ECCs`,
}

// toolsBscCmd represents the bsc command
var toolsBscCmd = &cobra.Command{
	Use:   "bsc",
	Short: "A binary symmetric channel simulator",
	Long:  `A binary symmetric channel simulator for linearblock ECCs using hard decisions`,
}

// toolsBscReedMullerCmd represents the bsc reedmuller command
var toolsBscReedMullerCmd = &cobra.Command{
	Use:     "reedmuller ECC_JSON_FILE RESULT_JSON",
	Aliases: []string{"rm", "r"},
	Short:   "A Reed-Muller BSC simulator with maximum-likelihood decoding",
	Long: `A Reed-Muller BSC simulator with maximum-likelihood decoding.
Results are saved periodically to RESULT_JSON and rerunning with a larger trial count continues them.`,
	Run: bscreedmuller.ReedMullerRun,
}

// toolsBpskCmd represents the bpsk command
var toolsBpskCmd = &cobra.Command{
	Use:   "bpsk",
	Short: "A BPSK over AWGN channel simulator",
	Long:  `A BPSK modulated additive white gaussian noise channel simulator for linearblock ECCs`,
}

// toolsBpskReedMullerCmd represents the bpsk reedmuller command
var toolsBpskReedMullerCmd = &cobra.Command{
	Use:     "reedmuller ECC_JSON_FILE RESULT_JSON",
	Aliases: []string{"rm", "r"},
	Short:   "A Reed-Muller BPSK simulator with soft or hard decision decoding",
	Long:    `A Reed-Muller BPSK simulator with soft or hard decision maximum-likelihood decoding`,
	Run:     bpskreedmuller.ReedMullerRun,
}

// toolsExperimentCmd represents the experiment command
var toolsExperimentCmd = &cobra.Command{
	Use:     "experiment",
	Aliases: []string{"e"},
	Short:   "Compares the success rate of several Reed-Muller codes over a BSC",
	Long: `Simulates every order against every crossover probability, saves the success rates
as JSON records and prints a table of them.`,
	Args: cobra.NoArgs,
	Run:  experiment.ExperimentRun,
}

// toolsTransmitCmd represents the transmit command
var toolsTransmitCmd = &cobra.Command{
	Use:   "transmit [TEXT]",
	Short: "Sends a text or a single message through a BSC with a Reed-Muller code",
	Long: `Sends a text through a BSC with and without a Reed-Muller code and prints what arrived.
With --vector a single message is encoded, sent and decoded showing the flipped positions.`,
	Args: cobra.ArbitraryArgs,
	Run:   transmit.TransmitRun,
}

// toolsResultsCmd represents the results command
var toolsResultsCmd = &cobra.Command{
	Use:     "results",
	Aliases: []string{"r"},
	Short:   "A tool to organize results for graphing and comparison",
	Long:    `A tool to organize results for graphing and comparison`,
}

// toolsCSVCmd represents the csv command
var toolsCSVCmd = &cobra.Command{
	Use:     "csv RESULTS_JSON [RESULTS_JSON] ...",
	Aliases: []string{"c"},
	Short:   "Export to a CSV file",
	Long:    `Export to a CSV file`,
	Run:     csv.CSVRun,
}

// toolsChartCmd represents the chart command
var toolsChartCmd = &cobra.Command{
	Use:     "chart RESULTS_JSON [RESULTS_JSON] ...",
	Aliases: []string{"ch"},
	Short:   "Export to an html chart",
	Long:    `Export the success rates to an html line chart`,
	Run:     chart.ChartRun,
}

func init() {
	rootCmd.AddCommand(toolsCmd)
	toolsCmd.AddCommand(toolsChansimCmd)
	toolsCmd.AddCommand(toolsExperimentCmd)
	toolsCmd.AddCommand(toolsTransmitCmd)
	toolsCmd.AddCommand(toolsResultsCmd)

	toolsChansimCmd.AddCommand(toolsBscCmd)
	toolsBscCmd.AddCommand(toolsBscReedMullerCmd)
	toolsBscReedMullerCmd.Flags().UintVarP(&bscreedmuller.Trials, "trials", "t", 10_000, "the number of trials per probability")
	toolsBscReedMullerCmd.Flags().Float64SliceVarP(&bscreedmuller.ErrorProbability, "probability", "p", []float64{0.01, 0.05, 0.1, 0.2, 0.25}, "probability of crossover errors to test [0, 1]")
	toolsBscReedMullerCmd.Flags().UintVar(&bscreedmuller.Threads, "threads", 0, "number of threads to use (0 means to use the # of threads equal to the # of CPUs)")
	toolsBscReedMullerCmd.Flags().StringVarP(&bscreedmuller.Strategy, "strategy", "s", "", "overrides the hadamard transform saved with the ECC: fht or kronecker")

	toolsChansimCmd.AddCommand(toolsBpskCmd)
	toolsBpskCmd.AddCommand(toolsBpskReedMullerCmd)
	toolsBpskReedMullerCmd.Flags().UintVarP(&bpskreedmuller.Trials, "trials", "t", 10_000, "the number of trials per E_b/N_0")
	toolsBpskReedMullerCmd.Flags().Float64SliceVarP(&bpskreedmuller.EbPerN0, "ebn0", "e", []float64{0.25, 0.5, 1, 2, 4}, "E_b/N_0 values to test (linear, > 0)")
	toolsBpskReedMullerCmd.Flags().UintVar(&bpskreedmuller.Threads, "threads", 0, "number of threads to use (0 means to use the # of threads equal to the # of CPUs)")
	toolsBpskReedMullerCmd.Flags().BoolVar(&bpskreedmuller.Hard, "hard", false, "slice the received values to bits before decoding")

	toolsExperimentCmd.Flags().IntSliceVarP(&experiment.Orders, "order", "m", []int{3, 4, 5, 6}, "the orders m of the codes to compare")
	toolsExperimentCmd.Flags().Float64SliceVarP(&experiment.ErrorProbability, "probability", "p", []float64{0.01, 0.05, 0.1, 0.2, 0.25}, "probability of crossover errors to test [0, 1]")
	toolsExperimentCmd.Flags().UintVarP(&experiment.Trials, "trials", "t", 10_000, "the number of trials per configuration")
	toolsExperimentCmd.Flags().UintVar(&experiment.Threads, "threads", 0, "number of threads to use (0 means to use the # of threads equal to the # of CPUs)")
	toolsExperimentCmd.Flags().StringVarP(&experiment.Strategy, "strategy", "s", "fht", "the hadamard transform used while decoding: fht or kronecker")
	toolsExperimentCmd.Flags().StringVarP(&experiment.OutputFile, "output", "o", "simulation_results.json", "filename of the JSON records")
	toolsExperimentCmd.Flags().StringVar(&experiment.ChartFile, "chart", "", "when set an html chart of the success rates is saved here")

	toolsTransmitCmd.Flags().UintVarP(&transmit.Order, "order", "m", 3, "the order m of the code")
	toolsTransmitCmd.Flags().Float64VarP(&transmit.ErrorProbability, "probability", "p", 0.05, "probability of crossover errors [0, 1]")
	toolsTransmitCmd.Flags().IntVarP(&transmit.Flips, "flips", "f", -1, "flip exactly this many bits per transmission instead of using the probability (-1 disables)")
	toolsTransmitCmd.Flags().StringVar(&transmit.Vector, "vector", "", "a message of m+1 bits (e.g. 1011) to send instead of TEXT")
	toolsTransmitCmd.Flags().StringVarP(&transmit.Strategy, "strategy", "s", "fht", "the hadamard transform used while decoding: fht or kronecker")

	toolsResultsCmd.AddCommand(toolsCSVCmd)
	toolsCSVCmd.Flags().StringVarP(&csv.OutputFile, "output", "o", "results.csv", "filename of the combined csv")
	toolsCSVCmd.Flags().BoolVarP(&csv.MessageError, "message", "m", false, "outputs the message bit error rate instead of the success rate")
	toolsCSVCmd.Flags().BoolVarP(&csv.ChannelError, "channel", "c", false, "outputs the channel bit error rate instead of the success rate")

	toolsResultsCmd.AddCommand(toolsChartCmd)
	toolsChartCmd.Flags().StringVarP(&chart.OutputFile, "output", "o", "results.html", "filename of the chart")
	toolsChartCmd.Flags().StringVarP(&chart.XAxisName, "xaxis", "x", "Channel Parameter", "name of the x axis")
}
