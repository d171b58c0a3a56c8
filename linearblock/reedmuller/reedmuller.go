package reedmuller

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/AlexShukel/MullerCodes/linearblock"
	mat "github.com/nathanhack/sparsemat"
	"github.com/sirupsen/logrus"
	mat2 "gonum.org/v1/gonum/mat"
)

// ReedMuller is a first order Reed-Muller code RM(1,m) with a maximum-likelihood decoder.
// Hard decisions are decoded by correlating the received word against every affine
// boolean function of m variables, which is the Hadamard transform of its BPSK form.
//
// A ReedMuller is read-only after New returns and is safe for concurrent use.
type ReedMuller struct {
	*linearblock.LinearBlock
	Parameters Parameters
	Strategy   Strategy

	transform Transform
}

// New creates the RM(1,m) code whose decoder computes the Hadamard transform using strategy.
func New(m int, strategy Strategy) (*ReedMuller, error) {
	params, err := NewParameters(m)
	if err != nil {
		return nil, err
	}
	if strategy == "" {
		strategy = FastHadamard
	}

	transform, err := NewTransform(params, strategy)
	if err != nil {
		return nil, err
	}

	G, err := Generator(m)
	if err != nil {
		return nil, err
	}

	logrus.Debugf("Created %v using %v decoding", params, strategy)
	return &ReedMuller{
		LinearBlock: &linearblock.LinearBlock{G: G},
		Parameters:  params,
		Strategy:    strategy,
		transform:   transform,
	}, nil
}

//Decode takes in a received hard decision vector and returns the most likely message.
func (rm *ReedMuller) Decode(received mat.SparseVector) (message mat.SparseVector, err error) {
	n := rm.Parameters.CodewordLength()
	if received.Len() != n {
		return nil, fmt.Errorf("%w: received length == %v required but found %v", ErrInvalidLength, n, received.Len())
	}

	return rm.decode(linearblock.BitsToBPSK(received)), nil
}

//DecodeSoft decodes a received BPSK vector where positive values lean towards a 1.
// The received vector is not modified.
func (rm *ReedMuller) DecodeSoft(received mat2.Vector) (message mat.SparseVector, err error) {
	n := rm.Parameters.CodewordLength()
	if received.Len() != n {
		return nil, fmt.Errorf("%w: received length == %v required but found %v", ErrInvalidLength, n, received.Len())
	}

	return rm.decode(mat2.VecDenseCopyOf(received)), nil
}

// decode transforms w in place and reads the message off the correlation peak.
func (rm *ReedMuller) decode(w *mat2.VecDense) mat.SparseVector {
	rm.transform.Apply(w)

	peak := Peak(w)

	m := rm.Parameters.Order()
	message := mat.CSRVec(rm.Parameters.MessageLength())
	for r := 0; r < m; r++ {
		message.Set(r+1, (peak>>r)&1)
	}

	// a 1 maps to +1 so a positive peak means the all ones row was added
	if w.AtVec(peak) > 0 {
		message.Set(0, 1)
	}
	return message
}

// Peak returns the index of the value with the largest magnitude.
// Ties go to the lowest index.
func Peak(w mat2.Vector) int {
	maxIdx := -1
	maxVal := math.Inf(-1)
	for i := 0; i < w.Len(); i++ {
		if abs := math.Abs(w.AtVec(i)); abs > maxVal {
			maxVal = abs
			maxIdx = i
		}
	}
	return maxIdx
}

func (rm *ReedMuller) String() string {
	return fmt.Sprintf("%v (%v)", rm.Parameters, rm.Strategy)
}

//// For JSON marshalling
type reedMuller struct {
	M        int
	Strategy Strategy
	G        mat.SparseMat
}

type reedMullerIn struct {
	M        int
	Strategy Strategy
	G        *mat.CSRMatrix
}

func (rm *ReedMuller) MarshalJSON() ([]byte, error) {
	return json.Marshal(reedMuller{
		M:        rm.Parameters.Order(),
		Strategy: rm.Strategy,
		G:        rm.G,
	})
}

//UnmarshalJSON rebuilds the code from its order and strategy.
// When a generator matrix is present it must match the rebuilt one.
func (rm *ReedMuller) UnmarshalJSON(bytes []byte) error {
	var in reedMullerIn
	err := json.Unmarshal(bytes, &in)
	if err != nil {
		return err
	}

	built, err := New(in.M, in.Strategy)
	if err != nil {
		return err
	}

	if in.G != nil {
		rows, cols := in.G.Dims()
		if rows != built.MessageLength() || cols != built.CodewordLength() || !built.G.Equals(in.G) {
			return fmt.Errorf("generator matrix does not match RM(1,%v)", in.M)
		}
	}

	*rm = *built
	return nil
}
