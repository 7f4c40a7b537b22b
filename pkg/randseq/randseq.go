// 31 July 2020

package randseq

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	. "github.com/andrew-torda/freqkmer/pkg/seq/common"
)

// Source is what we need from a random number generator.
// A *rand.Rand is fine.
type Source interface {
	Intn(n int) int
}

// NewSource gives us a generator. A seed of zero means take the seed
// from the clock, so every run differs. Anything else is reproducible.
func NewSource(iseed int64) *rand.Rand {
	if iseed == 0 {
		iseed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(iseed))
}

// Generate returns a sequence of seqlen bases, each picked
// uniformly from the alphabet.
func Generate(seqlen int, rnd Source) (string, error) {
	if seqlen < 0 {
		return "", fmt.Errorf("%w: sequence length %d", ErrInvalidLength, seqlen)
	}
	var sb strings.Builder
	sb.Grow(seqlen)
	for i := 0; i < seqlen; i++ {
		sb.WriteByte(Alphabet[rnd.Intn(NSym)])
	}
	return sb.String(), nil
}

// Seqs makes nseq sequences, each of length seqlen.
func Seqs(nseq, seqlen int, rnd Source) ([]string, error) {
	if nseq < 0 {
		return nil, fmt.Errorf("%w: number of sequences %d", ErrInvalidLength, nseq)
	}
	seqs := make([]string, 0, nseq)
	for i := 0; i < nseq; i++ {
		s, err := Generate(seqlen, rnd)
		if err != nil {
			return nil, err
		}
		seqs = append(seqs, s)
	}
	return seqs, nil
}

// RandSeqArgs is the set of arguments passed to the main function
type RandSeqArgs struct {
	Iseed int64     // random number seed, zero for the clock
	Wrtr  io.Writer // where we write to
	Cmmt  string    // Comment for the sequences
	Nseq  int       // number of sequences
	Len   int       // Length of sequences
}

// writeseq writes one sequence with a comment line. n is the number of
// the sequence, so the output has comment lines "> something 1, > something 2..."
func writeseq(w io.Writer, cmmt string, width, n int, s string) error {
	_, err := fmt.Fprintf(w, "> %s %[2]*d\n%s\n", cmmt, width, n, s)
	return err
}

// RandSeqMain writes random sequences to an io.Writer.
func RandSeqMain(args *RandSeqArgs) error {
	seqs, err := Seqs(args.Nseq, args.Len, NewSource(args.Iseed))
	if err != nil {
		return err
	}
	width := len(fmt.Sprintf("%d", args.Nseq))
	for i, s := range seqs {
		if err := writeseq(args.Wrtr, args.Cmmt, width, i+1, s); err != nil {
			return fmt.Errorf("writing sequence %d: %w", i+1, err)
		}
	}
	return nil
}
