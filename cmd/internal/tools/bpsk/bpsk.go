package bpsk

import (
	"context"

	"github.com/AlexShukel/MullerCodes/benchmarking"
	"github.com/AlexShukel/MullerCodes/linearblock"
	"github.com/AlexShukel/MullerCodes/linearblock/reedmuller"
	mat "github.com/nathanhack/sparsemat"
	mat2 "gonum.org/v1/gonum/mat"
)

//RunBPSK simulates rm over an AWGN channel with BPSK modulation at the given E_b/N_0.
// When hard is set each received value is sliced to a bit before decoding, otherwise
// the decoder correlates the raw received values.
func RunBPSK(ctx context.Context,
	rm *reedmuller.ReedMuller,
	EbPerN0 float64, hard bool, trials, threads int,
	previousStats benchmarking.Stats,
	checkpoints benchmarking.Checkpoints,
	showProgress bool) (benchmarking.Stats, error) {

	createMessage := func(trial int) mat.SparseVector {
		return benchmarking.RandomMessage(rm.MessageLength())
	}

	encode := func(message mat.SparseVector) (codeword mat2.Vector, err error) {
		c, err := rm.Encode(message)
		if err != nil {
			return nil, err
		}
		return linearblock.BitsToBPSK(c), nil
	}

	channel := func(codeword mat2.Vector) (channelInducedCodeword mat2.Vector) {
		return benchmarking.RandomNoiseBPSK(codeword, EbPerN0)
	}

	decode := func(channelInducedCodeword mat2.Vector) (message mat.SparseVector, err error) {
		if hard {
			return rm.Decode(linearblock.BPSKToBits(channelInducedCodeword, 0))
		}
		return rm.DecodeSoft(channelInducedCodeword)
	}

	return benchmarking.BenchmarkBPSKContinueStats(ctx, trials, threads, createMessage, encode, channel, decode, checkpoints, previousStats, showProgress)
}
