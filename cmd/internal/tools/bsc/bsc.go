package bsc

import (
	"context"

	"github.com/AlexShukel/MullerCodes/benchmarking"
	"github.com/AlexShukel/MullerCodes/linearblock/reedmuller"
	mat "github.com/nathanhack/sparsemat"
)

//RunBSC simulates rm over a binary symmetric channel that flips each codeword bit with crossoverProbability.
func RunBSC(ctx context.Context,
	rm *reedmuller.ReedMuller,
	crossoverProbability float64, trials, threads int,
	previousStats benchmarking.Stats,
	checkpoints benchmarking.Checkpoints,
	showProgress bool) (benchmarking.Stats, error) {

	createMessage := func(trial int) mat.SparseVector {
		return benchmarking.RandomMessage(rm.MessageLength())
	}

	channel := func(originalCodeword mat.SparseVector) (erroredCodeword mat.SparseVector) {
		return benchmarking.RandomFlipBits(originalCodeword, crossoverProbability)
	}

	return benchmarking.BenchmarkBSCContinueStats(ctx, trials, threads, createMessage, rm.Encode, channel, rm.Decode, checkpoints, previousStats, showProgress)
}
