package benchmarking

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/cheggaaa/pb/v3"
	"github.com/nathanhack/avgstd"
	mat "github.com/nathanhack/sparsemat"
	"github.com/nathanhack/threadpool"
	mat2 "gonum.org/v1/gonum/mat"
)

type Stats struct {
	Success         avgstd.AvgStd // 1 when the decoded message equals the original message, else 0
	MessageBitError avgstd.AvgStd // fraction of message bits decoded incorrectly
	ChannelBitError avgstd.AvgStd // fraction of codeword bits the channel corrupted
}

//SuccessRate is the fraction of trials where the whole message was recovered.
func (s Stats) SuccessRate() float64 {
	return s.Success.Mean
}

//Trials is the number of trials these stats were collected over.
func (s Stats) Trials() int {
	return s.Success.Count
}

func (s Stats) String() string {
	return fmt.Sprintf("{Success:%0.04f(+/-%0.04f), Message:%0.04f(+/-%0.04f), Channel:%0.04f(+/-%0.04f)}",
		s.Success.Mean, math.Sqrt(s.Success.SampledVariance()),
		s.MessageBitError.Mean, math.Sqrt(s.MessageBitError.SampledVariance()),
		s.ChannelBitError.Mean, math.Sqrt(s.ChannelBitError.SampledVariance()),
	)
}

type Checkpoints func(updatedStats Stats)

type BinaryMessageConstructor func(trial int) (message mat.SparseVector)

//specfic to BSC
type BinarySymmetricChannelEncoder func(message mat.SparseVector) (codeword mat.SparseVector, err error)
type BinarySymmetricChannel func(codeword mat.SparseVector) (channelInducedCodeword mat.SparseVector)
type BinarySymmetricChannelDecoder func(channelInducedCodeword mat.SparseVector) (message mat.SparseVector, err error)

//specific to BPSK
type BPSKChannelEncoder func(message mat.SparseVector) (codeword mat2.Vector, err error)
type BPSKChannel func(codeword mat2.Vector) (channelInducedCodeword mat2.Vector)
type BPSKChannelDecoder func(channelInducedCodeword mat2.Vector) (message mat.SparseVector, err error)

// outcome is the result of a single trial
type outcome struct {
	success       bool
	messageErrors float64
	channelErrors float64
}

func BenchmarkBSC(ctx context.Context,
	trials int, threads int,
	createMessage BinaryMessageConstructor,
	encode BinarySymmetricChannelEncoder,
	channel BinarySymmetricChannel,
	decode BinarySymmetricChannelDecoder,
	checkpoints Checkpoints,
	showProgress bool) (Stats, error) {
	return BenchmarkBSCContinueStats(ctx, trials, threads, createMessage, encode, channel, decode, checkpoints, Stats{}, showProgress)
}

func BenchmarkBSCContinueStats(ctx context.Context,
	trials int, threads int,
	createMessage BinaryMessageConstructor,
	encode BinarySymmetricChannelEncoder,
	channel BinarySymmetricChannel,
	decode BinarySymmetricChannelDecoder,
	checkpoints Checkpoints,
	previousStats Stats,
	showProgress bool) (Stats, error) {

	trial := func(i int) (outcome, error) {
		//we create a random message
		message := createMessage(i)

		// encode to get our codeword
		codeword, err := encode(message)
		if err != nil {
			return outcome{}, err
		}

		// send through the channel to get channel induced errors
		channelInducedCodeword := channel(codeword)

		// decode the message (if possible)
		decoded, err := decode(channelInducedCodeword)
		if err != nil {
			return outcome{}, err
		}

		messageErrors := decoded.HammingDistance(message)
		return outcome{
			success:       messageErrors == 0,
			messageErrors: float64(messageErrors) / float64(message.Len()),
			channelErrors: float64(codeword.HammingDistance(channelInducedCodeword)) / float64(codeword.Len()),
		}, nil
	}

	return run(ctx, trials, threads, trial, checkpoints, previousStats, showProgress)
}

func BenchmarkBPSK(ctx context.Context,
	trials int, threads int,
	createMessage BinaryMessageConstructor,
	encode BPSKChannelEncoder,
	channel BPSKChannel,
	decode BPSKChannelDecoder,
	checkpoints Checkpoints, showProgress bool) (Stats, error) {
	return BenchmarkBPSKContinueStats(ctx, trials, threads, createMessage, encode, channel, decode, checkpoints, Stats{}, showProgress)
}

func BenchmarkBPSKContinueStats(ctx context.Context,
	trials int, threads int,
	createMessage BinaryMessageConstructor,
	encode BPSKChannelEncoder,
	channel BPSKChannel,
	decode BPSKChannelDecoder,
	checkpoints Checkpoints,
	previousStats Stats,
	showProgress bool) (Stats, error) {

	trial := func(i int) (outcome, error) {
		//we create a random message
		message := createMessage(i)

		// encode to get our codeword
		codeword, err := encode(message)
		if err != nil {
			return outcome{}, err
		}

		// send through the channel to get channel induced errors
		channelInducedCodeword := channel(codeword)

		// decode the message (if possible)
		decoded, err := decode(channelInducedCodeword)
		if err != nil {
			return outcome{}, err
		}

		messageErrors := decoded.HammingDistance(message)
		return outcome{
			success:       messageErrors == 0,
			messageErrors: float64(messageErrors) / float64(message.Len()),
			channelErrors: float64(HammingDistanceBPSK(codeword, channelInducedCodeword)) / float64(codeword.Len()),
		}, nil
	}

	return run(ctx, trials, threads, trial, checkpoints, previousStats, showProgress)
}

// run executes the trials not yet counted in previousStats on a threadpool.
// The first trial error stops the remaining trials and is returned with the stats collected so far.
func run(ctx context.Context,
	trials, threads int,
	trial func(i int) (outcome, error),
	checkpoints Checkpoints,
	previousStats Stats,
	showProgress bool) (Stats, error) {
	trialsToRun := trials - previousStats.Trials()
	if trialsToRun <= 0 {
		return previousStats, nil
	}

	var bar *pb.ProgressBar
	if showProgress {
		bar = pb.StartNew(trialsToRun)
	}

	pool := threadpool.NewFixedSize(ctx, threads, trialsToRun)
	statsMux := sync.Mutex{}
	var firstErr error

	for i := previousStats.Trials(); i < trials; i++ {
		tmp := i
		pool.Add(func() {
			if showProgress {
				bar.Increment()
			}

			statsMux.Lock()
			stop := firstErr != nil || ctx.Err() != nil
			statsMux.Unlock()
			if stop {
				return
			}

			result, err := trial(tmp)

			statsMux.Lock()
			defer statsMux.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = fmt.Errorf("trial %v: %w", tmp, err)
				}
				return
			}

			success := 0.0
			if result.success {
				success = 1
			}
			previousStats.Success.Update(success)
			previousStats.MessageBitError.Update(result.messageErrors)
			previousStats.ChannelBitError.Update(result.channelErrors)
			if checkpoints != nil {
				checkpoints(previousStats) //give them the updated checkpoint
			}
		})
	}
	pool.Wait()
	if showProgress {
		bar.Finish()
	}
	return previousStats, firstErr
}

//HammingDistanceBPSK calculates number of bits different.
// Assumes >=0 is 1 and <0 is 0
// If a and b are different sizes it assumes they are
// both aligned with the zero index (the difference is at the end)
func HammingDistanceBPSK(a, b mat2.Vector) int {
	min := a.Len()
	max := b.Len()
	if min > max {
		min = b.Len()
		max = a.Len()
	}

	count := 0
	for i := 0; i < min; i++ {
		aOne := a.AtVec(i) >= 0
		bOne := b.AtVec(i) >= 0
		if aOne != bOne {
			count++
		}
	}
	return max - min + count
}
