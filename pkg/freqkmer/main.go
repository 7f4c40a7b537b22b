// 5 Aug 2021
// Generate random DNA sequences and, for each one, find the substrings
// of length k that occur most often.

package freqkmer

import (
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"time"

	"github.com/andrew-torda/freqkmer/pkg/kmer"
	"github.com/andrew-torda/freqkmer/pkg/randseq"
	. "github.com/andrew-torda/freqkmer/pkg/seq/common"
	"github.com/andrew-torda/freqkmer/pkg/seqcalc"
)

const (
	DfltNseq = 5
	DfltLen  = 10
	DfltK    = 3
)

const (
	seqHeader = "These are random genomes generated:"
	rptHeader = "This is the dictionary containing all of the random genomes" +
		" along with the most frequent nucleotides in them:"
)

// Args is what the command line gives us.
type Args struct {
	Nseq        int       // number of sequences
	Len         int       // length of each sequence
	K           int       // window length
	Seed        int64     // random number seed, zero for the clock
	Composition bool      // also print base usage at each site
	Time        bool      // print timing to stderr
	Wrtr        io.Writer // output, stdout if nil
}

// Report maps each sequence to its table of most frequent substrings.
// Identical sequences share one entry.
type Report map[string]kmer.Table

// Check looks for values that make no sense, before we do any work.
func (args *Args) Check() error {
	if args.Nseq < 0 {
		return fmt.Errorf("%w: number of sequences %d", ErrInvalidLength, args.Nseq)
	}
	if args.Len < 0 {
		return fmt.Errorf("%w: sequence length %d", ErrInvalidLength, args.Len)
	}
	if args.K <= 0 {
		return fmt.Errorf("%w: window length %d", ErrInvalidWindow, args.K)
	}
	return nil
}

// Build counts substrings of length k in each sequence and keeps the
// most frequent. If a sequence appears twice, the last one wins.
func Build(seqs []string, k int) (Report, error) {
	rpt := make(Report, len(seqs))
	for _, s := range seqs {
		t, err := kmer.Count(s, k)
		if err != nil {
			return nil, err
		}
		rpt[s] = kmer.MaxFreq(t)
	}
	return rpt, nil
}

// Seqs returns the sequences in the report in lexical order.
func (rpt Report) Seqs() []string {
	seqs := make([]string, 0, len(rpt))
	for s := range rpt {
		seqs = append(seqs, s)
	}
	sort.Strings(seqs)
	return seqs
}

// Write prints one line per sequence, followed by its table.
func (rpt Report) Write(w io.Writer) error {
	for _, s := range rpt.Seqs() {
		if _, err := fmt.Fprintln(w, s, rpt[s]); err != nil {
			return err
		}
	}
	return nil
}

// writeSeqs prints the sequences, one per line, in the order made.
func writeSeqs(w io.Writer, seqs []string) error {
	if _, err := fmt.Fprintf(w, "%s\n\n", seqHeader); err != nil {
		return err
	}
	for _, s := range seqs {
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}

// writeUsage prints the fraction of each base at each site.
func writeUsage(w io.Writer, seqs []string) error {
	counts, err := seqcalc.UsageSite(seqs)
	if err != nil {
		return err
	}
	seqcalc.Fractions(counts)
	if _, err := fmt.Fprintf(w, "\nBase usage over %d sequences:\n", len(seqs)); err != nil {
		return err
	}
	return seqcalc.WriteUsage(w, counts)
}

// Mymain does the work. It generates the sequences, prints them, then
// prints the report.
func Mymain(args *Args) error {
	startTime := time.Now()
	if err := args.Check(); err != nil {
		return err
	}
	w := args.Wrtr
	if w == nil {
		w = os.Stdout
	}

	seqs, err := randseq.Seqs(args.Nseq, args.Len, randseq.NewSource(args.Seed))
	if err != nil {
		return err
	}
	if err := writeSeqs(w, seqs); err != nil {
		return err
	}

	rpt, err := Build(seqs, args.K)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\n%s\n", rptHeader); err != nil {
		return err
	}
	if err := rpt.Write(w); err != nil {
		return err
	}

	if args.Composition {
		if err := writeUsage(w, seqs); err != nil {
			return err
		}
	}
	if args.Time {
		logger := log.New(os.Stderr, "", 0)
		logger.Printf("%d sequences of length %d, k=%d took %v",
			args.Nseq, args.Len, args.K, time.Since(startTime))
	}
	return nil
}
