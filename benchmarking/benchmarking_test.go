package benchmarking

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/AlexShukel/MullerCodes/linearblock"
	"github.com/AlexShukel/MullerCodes/linearblock/reedmuller"
	mat "github.com/nathanhack/sparsemat"
	mat2 "gonum.org/v1/gonum/mat"
)

func ExampleBenchmarkBSC() {
	rm, _ := reedmuller.New(3, reedmuller.FastHadamard)

	createMessage := func(trial int) mat.SparseVector {
		t := trial % 16
		message := mat.CSRVec(4)
		for i := 0; i < 4; i++ {
			message.Set(i, (t&(1<<i))>>i)
		}
		return message
	}

	channel := func(originalCodeword mat.SparseVector) (erroredCodeword mat.SparseVector) {
		//RM(1,3) has a minimum distance of 4 so it always fixes one flipped bit
		return RandomFlipBitCount(originalCodeword, 1)
	}

	checkpoint := func(updatedStats Stats) {}

	stats, _ := BenchmarkBSC(context.Background(), 1000, 1, createMessage, rm.Encode, channel, rm.Decode, checkpoint, false)

	fmt.Println("Stats :", stats)
	//Output:
	// Stats : {Success:1.0000(+/-0.0000), Message:0.0000(+/-0.0000), Channel:0.1250(+/-0.0000)}
}

func ExampleBenchmarkBPSK() {
	rm, _ := reedmuller.New(4, reedmuller.Kronecker)

	createMessage := func(trial int) mat.SparseVector {
		return RandomMessage(rm.MessageLength())
	}

	encode := func(message mat.SparseVector) (codeword mat2.Vector, err error) {
		c, err := rm.Encode(message)
		if err != nil {
			return nil, err
		}
		return linearblock.BitsToBPSK(c), nil
	}

	channel := func(codeword mat2.Vector) (channelInducedCodeword mat2.Vector) {
		//at this E_b/N_0 the noise never crosses zero
		return RandomNoiseBPSK(codeword, 200)
	}

	stats, _ := BenchmarkBPSK(context.Background(), 1000, 0, createMessage, encode, channel, rm.DecodeSoft, nil, false)

	fmt.Println("Stats :", stats)
	//Output:
	// Stats : {Success:1.0000(+/-0.0000), Message:0.0000(+/-0.0000), Channel:0.0000(+/-0.0000)}
}

func TestBenchmarkBSC_SuccessRateDecreases(t *testing.T) {
	rm, err := reedmuller.New(3, reedmuller.FastHadamard)
	if err != nil {
		t.Fatalf("expected no error but found: %v", err)
	}
	createMessage := func(trial int) mat.SparseVector {
		return RandomMessage(rm.MessageLength())
	}

	probabilities := []float64{0.01, 0.05, 0.1, 0.2, 0.25}
	rates := make([]float64, len(probabilities))
	for i, p := range probabilities {
		crossover := p
		channel := func(codeword mat.SparseVector) mat.SparseVector {
			return RandomFlipBits(codeword, crossover)
		}
		stats, err := BenchmarkBSC(context.Background(), 4000, 0, createMessage, rm.Encode, channel, rm.Decode, nil, false)
		if err != nil {
			t.Fatalf("expected no error but found: %v", err)
		}
		if stats.Trials() != 4000 {
			t.Fatalf("expected %v but found %v", 4000, stats.Trials())
		}
		rates[i] = stats.SuccessRate()
	}

	for i := 1; i < len(rates); i++ {
		if rates[i] > rates[i-1]+0.02 {
			t.Fatalf("expected non-increasing success rates but found %v", rates)
		}
	}
	if rates[0] < 0.95 {
		t.Fatalf("expected a success rate >= 0.95 at p=0.01 but found %v", rates[0])
	}
}

func TestBenchmarkBSCContinueStats(t *testing.T) {
	rm, _ := reedmuller.New(2, reedmuller.FastHadamard)
	createMessage := func(trial int) mat.SparseVector {
		return RandomMessage(rm.MessageLength())
	}
	channel := func(codeword mat.SparseVector) mat.SparseVector { return codeword }

	tests := []struct {
		first, second int
		expected      int
	}{
		{10, 25, 25},
		{10, 10, 10},
		{10, 5, 10},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			checkpoints := 0
			checkpoint := func(updatedStats Stats) { checkpoints++ }

			stats, err := BenchmarkBSC(context.Background(), test.first, 2, createMessage, rm.Encode, channel, rm.Decode, checkpoint, false)
			if err != nil {
				t.Fatalf("expected no error but found: %v", err)
			}
			stats, err = BenchmarkBSCContinueStats(context.Background(), test.second, 2, createMessage, rm.Encode, channel, rm.Decode, checkpoint, stats, false)
			if err != nil {
				t.Fatalf("expected no error but found: %v", err)
			}
			if stats.Trials() != test.expected {
				t.Fatalf("expected %v but found %v", test.expected, stats.Trials())
			}
			if checkpoints != test.expected {
				t.Fatalf("expected %v but found %v", test.expected, checkpoints)
			}
			if stats.SuccessRate() != 1 {
				t.Fatalf("expected %v but found %v", 1, stats.SuccessRate())
			}
		})
	}
}

func TestBenchmarkBSC_Error(t *testing.T) {
	rm, _ := reedmuller.New(3, reedmuller.FastHadamard)
	createMessage := func(trial int) mat.SparseVector {
		//one bit too long
		return RandomMessage(rm.MessageLength() + 1)
	}
	channel := func(codeword mat.SparseVector) mat.SparseVector { return codeword }

	stats, err := BenchmarkBSC(context.Background(), 20, 1, createMessage, rm.Encode, channel, rm.Decode, nil, false)
	if !errors.Is(err, reedmuller.ErrInvalidLength) {
		t.Fatalf("expected %v but found %v", reedmuller.ErrInvalidLength, err)
	}
	if stats.Trials() != 0 {
		t.Fatalf("expected %v but found %v", 0, stats.Trials())
	}
}

func TestRandomFlipBits(t *testing.T) {
	input := mat.CSRVec(1000)

	if actual := RandomFlipBits(input, 0); actual.HammingWeight() != 0 {
		t.Fatalf("expected %v but found %v", 0, actual.HammingWeight())
	}
	if actual := RandomFlipBits(input, 1); actual.HammingWeight() != input.Len() {
		t.Fatalf("expected %v but found %v", input.Len(), actual.HammingWeight())
	}
	if input.HammingWeight() != 0 {
		t.Fatalf("expected the input to be unchanged")
	}
}

func TestRandomFlipBitCount(t *testing.T) {
	input := mat.CSRVec(8, 1, 0, 1, 1, 0, 0, 1, 0)
	for count := 0; count <= 10; count++ {
		actual := RandomFlipBitCount(input, count)
		expected := count
		if expected > input.Len() {
			expected = input.Len()
		}
		if d := actual.HammingDistance(input); d != expected {
			t.Fatalf("expected %v but found %v", expected, d)
		}
	}
}

func TestHammingDistanceBPSK(t *testing.T) {
	tests := []struct {
		a, b     []float64
		expected int
	}{
		{[]float64{1, -1, 1}, []float64{1, -1, 1}, 0},
		{[]float64{1, -1, 1}, []float64{-0.2, -1, 0.3}, 1},
		{[]float64{1, -1, 1, 1}, []float64{1, 1}, 3},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			actual := HammingDistanceBPSK(mat2.NewVecDense(len(test.a), test.a), mat2.NewVecDense(len(test.b), test.b))
			if actual != test.expected {
				t.Fatalf("expected %v but found %v", test.expected, actual)
			}
		})
	}
}

func TestBenchmarkBSC_Threads(t *testing.T) {
	rm, _ := reedmuller.New(3, reedmuller.FastHadamard)
	createMessage := func(trial int) mat.SparseVector {
		return RandomMessage(rm.MessageLength())
	}
	channel := func(codeword mat.SparseVector) mat.SparseVector { return codeword }

	//zero or fewer threads means one per CPU
	for _, threads := range []int{-1, 0, 1, 3} {
		stats, err := BenchmarkBSC(context.Background(), 57, threads, createMessage, rm.Encode, channel, rm.Decode, nil, false)
		if err != nil {
			t.Fatalf("expected no error but found: %v", err)
		}
		if stats.Trials() != 57 {
			t.Fatalf("expected %v but found %v", 57, stats.Trials())
		}
	}
}
