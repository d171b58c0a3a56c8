package reedmuller

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/AlexShukel/MullerCodes/linearblock/reedmuller"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	Order    uint
	Strategy string
)

var ReedMullerRun = func(cmd *cobra.Command, args []string) {
	strategy, err := reedmuller.ParseStrategy(Strategy)
	if err != nil {
		fmt.Println(err)
		return
	}

	rm, err := reedmuller.New(int(Order), strategy)
	if err != nil {
		fmt.Println("Unable to create Reed-Muller code: ", err)
		return
	}

	if !rm.Validate() {
		fmt.Println("Generated Reed-Muller code failed validation")
		return
	}
	logrus.Infof("Created %v, rate %0.4f, corrects up to %v errors", rm, rm.CodeRate(), rm.Parameters.CorrectableErrors())

	bs, err := json.Marshal(rm)
	if err != nil {
		fmt.Println("Unable to serialize the Reed-Muller code: ", err)
		return
	}

	err = os.WriteFile(args[0], bs, 0644)
	if err != nil {
		fmt.Println("unable to write file: ", err)
	}
}
