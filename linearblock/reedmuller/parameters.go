package reedmuller

import (
	"errors"
	"fmt"

	"github.com/AlexShukel/MullerCodes/linearblock"
)

const (
	// MaxOrder is the largest m accepted by New.
	MaxOrder = 20
	// MaxKroneckerOrder is the largest m the Kronecker strategy accepts; its stages hold m dense n x n matrices.
	MaxKroneckerOrder = 10
)

var (
	// ErrInvalidLength is returned when a message or received vector has the wrong length.
	ErrInvalidLength = linearblock.ErrInvalidLength
	// ErrInvalidParameter is returned for an unsupported order or strategy.
	ErrInvalidParameter = errors.New("invalid parameter")
)

// Parameters holds the order m of a RM(1,m) code. The codeword and message
// lengths are always derived from m.
type Parameters struct {
	m int
}

// NewParameters validates m and returns the code parameters for RM(1,m).
func NewParameters(m int) (Parameters, error) {
	if m < 1 || m > MaxOrder {
		return Parameters{}, fmt.Errorf("%w: order m == %v must be in [1,%v]", ErrInvalidParameter, m, MaxOrder)
	}
	return Parameters{m: m}, nil
}

// Order returns m.
func (p Parameters) Order() int { return p.m }

// CodewordLength returns n = 2^m.
func (p Parameters) CodewordLength() int { return 1 << p.m }

// MessageLength returns k = m+1.
func (p Parameters) MessageLength() int { return p.m + 1 }

// MinimumDistance returns 2^(m-1), the distance between any two distinct codewords.
func (p Parameters) MinimumDistance() int { return 1 << (p.m - 1) }

// CorrectableErrors returns the number of flipped bits that are always corrected.
func (p Parameters) CorrectableErrors() int { return (p.MinimumDistance() - 1) / 2 }

func (p Parameters) String() string {
	return fmt.Sprintf("RM(1,%v) n=%v k=%v", p.m, p.CodewordLength(), p.MessageLength())
}
