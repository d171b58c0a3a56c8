package cmd

import (
	"github.com/AlexShukel/MullerCodes/cmd/internal/create/reedmuller"

	"github.com/spf13/cobra"
)

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:     "create",
	Aliases: []string{"c"},
	Short:   "used to create a new ECC",
	Long:    `create provides the ability to make a new ECC and save it so it can be used later by the tools.`,
}

// createlinearblockCmd represents the linearblock command
var createlinearblockCmd = &cobra.Command{
	Use:     "linearblock",
	Aliases: []string{"lb", "l"},
	Short:   "creates linearblock ECCs",
	Long:    `Creates linearblock ECCs.`,
}

// createReedMullerCmd represents the reedmuller command
var createReedMullerCmd = &cobra.Command{
	Use:     "reedmuller OUTPUT_RM_JSON",
	Aliases: []string{"rm", "r"},
	Short:   "Creates a new Reed-Muller (1,m) code",
	Long: `Creates a new first order Reed-Muller code with codeword size 2^m and message size m+1.
The decoder is a maximum-likelihood decoder using a Hadamard transform.`,
	Args: cobra.ExactArgs(1),
	Run:  reedmuller.ReedMullerRun,
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.AddCommand(createlinearblockCmd)

	createlinearblockCmd.AddCommand(createReedMullerCmd)
	createReedMullerCmd.Flags().UintVarP(&reedmuller.Order, "order", "m", 3, "the order m >=1, sets codeword size == 2^m and message size == m+1")
	createReedMullerCmd.Flags().StringVarP(&reedmuller.Strategy, "strategy", "s", "fht", "the hadamard transform used while decoding: fht or kronecker")
}
