package reedmuller

import (
	"context"
	"fmt"
	"reflect"

	"github.com/AlexShukel/MullerCodes/benchmarking"
	"github.com/AlexShukel/MullerCodes/cmd/internal/tools"
	"github.com/AlexShukel/MullerCodes/cmd/internal/tools/bpsk"
	"github.com/AlexShukel/MullerCodes/linearblock/reedmuller"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	Trials  uint
	EbPerN0 []float64
	Threads uint
	Hard    bool
)

var ReedMullerRun = func(cmd *cobra.Command, args []string) {
	if len(args) != 2 {
		fmt.Println("requires both ECC_JSON_FILE RESULT_JSON")
		return
	}

	ecc, err := tools.LoadReedMullerECC(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, e := range EbPerN0 {
		if e <= 0 {
			fmt.Printf("E_b/N_0 %v must be > 0\n", e)
			return
		}
	}

	data, err := tools.LoadResults(args[1])
	if err != nil {
		fmt.Println(err)
		return
	}

	if data == nil {
		data = &tools.SimulationStats{
			TypeInfo: typeInfo(),
			ECCInfo:  tools.Md5Sum(ecc.G),
			Stats:    make(map[float64]benchmarking.Stats),
		}
	}

	if data.TypeInfo != typeInfo() {
		fmt.Printf("results loaded do not match the same type expected %v but found %v\n", typeInfo(), data.TypeInfo)
		return
	}
	if data.ECCInfo != tools.Md5Sum(ecc.G) {
		fmt.Println("results loaded do not match the ECC")
		return
	}

	ctx, cancel := tools.SignalContext()
	defer cancel()

	logrus.Infof("Simulating %v over a BPSK channel (hard decisions: %v)", ecc, Hard)
	run := func(ctx context.Context, e float64, trials, threads int, previousStats benchmarking.Stats, checkpoints benchmarking.Checkpoints) (benchmarking.Stats, error) {
		return bpsk.RunBPSK(ctx, ecc, e, Hard, trials, threads, previousStats, checkpoints, false)
	}
	err = tools.Simulate(ctx, data, EbPerN0, int(Trials), int(Threads), args[1], run)
	if err != nil {
		logrus.Errorf("%v", err)
	}

	err = tools.SaveResults(args[1], data)
	if err != nil {
		fmt.Println(err)
		return
	}
	tools.PrintTable(data)
}

func typeInfo() string {
	t := reflect.TypeOf(reedmuller.ReedMuller{})
	decisions := "soft"
	if Hard {
		decisions = "hard"
	}
	return fmt.Sprintf("BPSK-%v:%v/%v", decisions, t.PkgPath(), t.Name())
}
