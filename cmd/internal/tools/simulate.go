package tools

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/AlexShukel/MullerCodes/benchmarking"
	"github.com/cheggaaa/pb/v3"
	"github.com/sirupsen/logrus"
)

//Runner runs trials for a single channel parameter continuing from previousStats.
type Runner func(ctx context.Context, parameter float64, trials, threads int, previousStats benchmarking.Stats, checkpoints benchmarking.Checkpoints) (benchmarking.Stats, error)

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

//Simulate grows the trial count for every parameter in steps, saving data to outputFilename
// periodically so an interrupted simulation can be resumed.
func Simulate(ctx context.Context, data *SimulationStats, parameters []float64, trials, threads int, outputFilename string, run Runner) error {
	checkpointMux := sync.Mutex{}
	checkpointCount := 0

	numberOfThread := threads
	if numberOfThread <= 0 {
		numberOfThread = runtime.NumCPU()
	}

	trialsPerIter := numberOfThread * 10
	bar := pb.StartNew(trials * len(parameters))
	defer bar.Finish()
	for t := trialsPerIter; ; t += trialsPerIter {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		step := min(t, trials)
		for _, p := range parameters {
			parameter := p
			checkpoint := func(stats benchmarking.Stats) {
				//we want to save the checkpoint
				checkpointMux.Lock()
				defer checkpointMux.Unlock()

				data.Stats[parameter] = stats

				if checkpointCount%trialsPerIter == 0 {
					err := SaveResults(outputFilename, data)
					if err != nil {
						logrus.Errorf("checkpoint failed: %v", err)
					}
				}
				checkpointCount++
			}

			before := data.Stats[parameter].Trials()
			stats, err := run(ctx, parameter, step, numberOfThread, data.Stats[parameter], checkpoint)
			checkpointMux.Lock()
			data.Stats[parameter] = stats
			checkpointMux.Unlock()
			if err != nil {
				return fmt.Errorf("simulation at %v failed: %w", parameter, err)
			}
			bar.Add(stats.Trials() - before)
		}

		if step == trials {
			return nil
		}
	}
}
