package transmit

import (
	"fmt"
	"strings"

	"github.com/AlexShukel/MullerCodes/benchmarking"
	"github.com/AlexShukel/MullerCodes/linearblock/reedmuller"
	mat "github.com/nathanhack/sparsemat"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	Order            uint
	ErrorProbability float64
	Flips            int
	Strategy         string
	Vector           string
)

//Report compares sending a text with and without the code over the same channel.
type Report struct {
	Uncoded       string // the text sent without any coding
	Decoded       string // the text sent encoded then decoded
	UncodedErrors int    // bits flipped in the uncoded transmission
	ChannelErrors int    // bits flipped across all the codewords
	MessageErrors int    // bits still wrong after decoding
	Codewords     int
}

//VectorReport follows a single message through the channel.
type VectorReport struct {
	Message  mat.SparseVector
	Codeword mat.SparseVector
	Received mat.SparseVector
	Flipped  []int // positions the channel flipped
	Decoded  mat.SparseVector
}

//Success is true when the decoded message equals the one sent.
func (r VectorReport) Success() bool {
	return r.Decoded.Equals(r.Message)
}

var TransmitRun = func(cmd *cobra.Command, args []string) {
	if len(args) < 1 && Vector == "" {
		fmt.Println("requires TEXT or --vector")
		return
	}
	if ErrorProbability < 0 || ErrorProbability > 1 {
		fmt.Printf("crossover probability %v must be in [0, 1]\n", ErrorProbability)
		return
	}

	strategy, err := reedmuller.ParseStrategy(Strategy)
	if err != nil {
		fmt.Println(err)
		return
	}
	rm, err := reedmuller.New(int(Order), strategy)
	if err != nil {
		fmt.Println(err)
		return
	}
	channel := NewChannel(ErrorProbability, Flips)

	if Vector != "" {
		message, err := ParseVector(Vector)
		if err != nil {
			fmt.Println(err)
			return
		}
		report, err := TransmitVector(rm, message, channel)
		if err != nil {
			logrus.Errorf("%v", err)
			return
		}
		fmt.Printf("Message:  %v\n", bitString(report.Message))
		fmt.Printf("Codeword: %v\n", bitString(report.Codeword))
		fmt.Printf("Received: %v (%v errors at %v)\n", bitString(report.Received), len(report.Flipped), report.Flipped)
		fmt.Printf("Decoded:  %v (success: %v)\n", bitString(report.Decoded), report.Success())
		return
	}

	text := strings.Join(args, " ")
	report, err := Transmit(rm, text, channel)
	if err != nil {
		logrus.Errorf("%v", err)
		return
	}

	logrus.Infof("Sent %v codewords of %v", report.Codewords, rm)
	fmt.Printf("Original:       %v\n", text)
	fmt.Printf("Without coding: %v (%v bits flipped)\n", report.Uncoded, report.UncodedErrors)
	fmt.Printf("With coding:    %v (%v bits flipped, %v bits wrong after decoding)\n", report.Decoded, report.ChannelErrors, report.MessageErrors)
}

//NewChannel returns a channel flipping exactly flips bits per use when flips >= 0,
// otherwise a binary symmetric channel with crossoverProbability.
func NewChannel(crossoverProbability float64, flips int) benchmarking.BinarySymmetricChannel {
	if flips >= 0 {
		return func(codeword mat.SparseVector) mat.SparseVector {
			return benchmarking.RandomFlipBitCount(codeword, flips)
		}
	}
	return func(codeword mat.SparseVector) mat.SparseVector {
		return benchmarking.RandomFlipBits(codeword, crossoverProbability)
	}
}

//ParseVector reads a string of 0s and 1s.
func ParseVector(s string) (mat.SparseVector, error) {
	v := mat.CSRVec(len(s))
	for i, c := range s {
		switch c {
		case '0':
		case '1':
			v.Set(i, 1)
		default:
			return nil, fmt.Errorf("vector %q must only contain 0 and 1", s)
		}
	}
	return v, nil
}

func bitString(v mat.SparseVector) string {
	var sb strings.Builder
	for i := 0; i < v.Len(); i++ {
		sb.WriteString(fmt.Sprint(v.At(i)))
	}
	return sb.String()
}

//TransmitVector encodes message, sends it through channel once and decodes what arrived.
func TransmitVector(rm *reedmuller.ReedMuller, message mat.SparseVector, channel benchmarking.BinarySymmetricChannel) (VectorReport, error) {
	codeword, err := rm.Encode(message)
	if err != nil {
		return VectorReport{}, err
	}
	received := channel(codeword)
	decoded, err := rm.Decode(received)
	if err != nil {
		return VectorReport{}, err
	}

	flipped := make([]int, 0)
	for i := 0; i < codeword.Len(); i++ {
		if codeword.At(i) != received.At(i) {
			flipped = append(flipped, i)
		}
	}
	return VectorReport{
		Message:  message,
		Codeword: codeword,
		Received: received,
		Flipped:  flipped,
		Decoded:  decoded,
	}, nil
}

//Transmit sends text through channel twice, once as raw bits and once
// split into messages of rm, each encoded, sent and decoded.
func Transmit(rm *reedmuller.ReedMuller, text string, channel benchmarking.BinarySymmetricChannel) (Report, error) {
	bits := BytesToBits([]byte(text))

	uncoded := channel(bits)
	report := Report{
		Uncoded:       string(BitsToBytes(uncoded)),
		UncodedErrors: uncoded.HammingDistance(bits),
	}

	k := rm.MessageLength()
	decoded := mat.CSRVec(bits.Len())
	for i, message := range Chunk(bits, k) {
		codeword, err := rm.Encode(message)
		if err != nil {
			return Report{}, err
		}
		received := channel(codeword)
		result, err := rm.Decode(received)
		if err != nil {
			return Report{}, err
		}

		report.Codewords++
		report.ChannelErrors += received.HammingDistance(codeword)
		for j := 0; j < k && i*k+j < bits.Len(); j++ {
			decoded.Set(i*k+j, result.At(j))
		}
	}

	report.Decoded = string(BitsToBytes(decoded))
	report.MessageErrors = decoded.HammingDistance(bits)
	return report, nil
}

//BytesToBits unpacks data most significant bit first.
func BytesToBits(data []byte) mat.SparseVector {
	bits := mat.CSRVec(len(data) * 8)
	for i, b := range data {
		for j := 0; j < 8; j++ {
			bits.Set(i*8+j, int(b>>(7-j))&1)
		}
	}
	return bits
}

//BitsToBytes packs bits most significant bit first, a trailing partial byte is dropped.
func BitsToBytes(bits mat.SparseVector) []byte {
	data := make([]byte, bits.Len()/8)
	for i := range data {
		for j := 0; j < 8; j++ {
			data[i] = data[i]<<1 | byte(bits.At(i*8+j))
		}
	}
	return data
}

//Chunk splits bits into vectors of length k, the last one is padded with zeros.
func Chunk(bits mat.SparseVector, k int) []mat.SparseVector {
	chunks := make([]mat.SparseVector, 0, (bits.Len()+k-1)/k)
	for i := 0; i < bits.Len(); i += k {
		chunk := mat.CSRVec(k)
		for j := 0; j < k && i+j < bits.Len(); j++ {
			chunk.Set(j, bits.At(i+j))
		}
		chunks = append(chunks, chunk)
	}
	return chunks
}
