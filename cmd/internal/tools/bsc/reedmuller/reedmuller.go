package reedmuller

import (
	"context"
	"fmt"
	"reflect"

	"github.com/AlexShukel/MullerCodes/benchmarking"
	"github.com/AlexShukel/MullerCodes/cmd/internal/tools"
	"github.com/AlexShukel/MullerCodes/cmd/internal/tools/bsc"
	"github.com/AlexShukel/MullerCodes/linearblock/reedmuller"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	Trials           uint
	ErrorProbability []float64
	Threads          uint
	Strategy         string
)

var ReedMullerRun = func(cmd *cobra.Command, args []string) {
	if len(args) != 2 {
		fmt.Println("requires both ECC_JSON_FILE RESULT_JSON")
		return
	}

	//first get the ECC to use
	ecc, err := tools.LoadReedMullerECC(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}

	if Strategy != "" {
		strategy, err := reedmuller.ParseStrategy(Strategy)
		if err != nil {
			fmt.Println(err)
			return
		}
		ecc, err = reedmuller.New(ecc.Parameters.Order(), strategy)
		if err != nil {
			fmt.Println(err)
			return
		}
	}

	for _, p := range ErrorProbability {
		if p < 0 || p > 1 {
			fmt.Printf("crossover probability %v must be in [0, 1]\n", p)
			return
		}
	}

	//next we see if the RESULT_JSON exists if so we load it and validate we're running it against the right thing
	data, err := tools.LoadResults(args[1])
	if err != nil {
		fmt.Println(err)
		return
	}

	//if data is nil then we create it
	if data == nil {
		data = &tools.SimulationStats{
			TypeInfo: typeInfo(),
			ECCInfo:  tools.Md5Sum(ecc.G),
			Stats:    make(map[float64]benchmarking.Stats),
		}
	}

	//in either case lets validate it
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

	logrus.Infof("Simulating %v over a binary symmetric channel", ecc)
	run := func(ctx context.Context, p float64, trials, threads int, previousStats benchmarking.Stats, checkpoints benchmarking.Checkpoints) (benchmarking.Stats, error) {
		return bsc.RunBSC(ctx, ecc, p, trials, threads, previousStats, checkpoints, false)
	}
	err = tools.Simulate(ctx, data, ErrorProbability, int(Trials), int(Threads), args[1], run)
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
	return fmt.Sprintf("BSC:%v/%v", t.PkgPath(), t.Name())
}
