package linearblock

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/AlexShukel/MullerCodes/linearblock/internal"
	mat "github.com/nathanhack/sparsemat"
)

// ErrInvalidLength is returned when a vector does not match the code's dimensions.
var ErrInvalidLength = errors.New("invalid length")

//LinearBlock is a binary linear block code described by its k x n generator matrix.
type LinearBlock struct {
	G mat.SparseMat // the generator matrix, one row per message bit
}

//// For JSON unmarshalling
type linearblock struct {
	G mat.CSRMatrix
}

//UnmarshalJSON is needed because LinearBlock has a mat.SparseMat and requires special handling
func (l *LinearBlock) UnmarshalJSON(bytes []byte) error {
	var lb linearblock
	err := json.Unmarshal(bytes, &lb)
	if err != nil {
		return err
	}

	l.G = &lb.G
	return nil
}

//Encode takes in a message and encodes it using the generator matrix, returning a codeword.
// Each codeword bit is the GF(2) sum of the message bits selected by the matching column of G.
func (l *LinearBlock) Encode(message mat.SparseVector) (codeword mat.SparseVector, err error) {
	rows, cols := l.G.Dims()
	if message.Len() != rows {
		return nil, fmt.Errorf("%w: message length == %v is required but found %v", ErrInvalidLength, rows, message.Len())
	}

	codeword = mat.CSRVec(cols)
	codeword.MulMat(message, l.G)
	return codeword, nil
}

func (l *LinearBlock) MessageLength() int {
	k, _ := l.G.Dims()
	return k
}
func (l *LinearBlock) CodewordLength() int {
	_, n := l.G.Dims()
	return n
}
func (l *LinearBlock) CodeRate() float64 {
	return float64(l.MessageLength()) / float64(l.CodewordLength())
}

//MinimumDistance returns the smallest hamming weight of a nonzero codeword.
// Every message is enumerated so this is only practical for small message lengths.
func (l *LinearBlock) MinimumDistance() int {
	k := l.MessageLength()
	if k >= 31 {
		panic(fmt.Sprintf("message length == %v is too large to enumerate", k))
	}

	min := l.CodewordLength()
	message := mat.CSRVec(k)
	for u := 1; u < 1<<k; u++ {
		for i := 0; i < k; i++ {
			message.Set(i, (u>>i)&1)
		}
		codeword, err := l.Encode(message)
		if err != nil {
			panic(err)
		}
		if w := codeword.HammingWeight(); w < min {
			min = w
		}
	}
	return min
}

//Validate tests that the rows of G are linearly independent and that no two columns of G are equal.
func (l *LinearBlock) Validate() bool {
	if internal.Rank(l.G) != l.MessageLength() {
		return false
	}
	return internal.DistinctColumns(l.G)
}

func (l *LinearBlock) String() string {
	buf := strings.Builder{}
	buf.WriteString("{\nG:\n")
	buf.WriteString(l.G.String())
	buf.WriteString("\n}\n")
	return buf.String()
}
