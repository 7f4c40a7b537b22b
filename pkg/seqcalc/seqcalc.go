// 6 Apr 2020
// seqcalc does simple, common calculations on a set of sequences of
// the same length: how often each base turns up at each site and how
// variable each site is.

package seqcalc

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/andrew-torda/matrix"

	. "github.com/andrew-torda/freqkmer/pkg/seq/common"
)

// UsageSite counts how many of each base appear at each site.
// counts.Mat looks like [number_of_bases][length_of_seq], rows in the
// order of Alphabet.
// We store it as a float32, since it will later usually be normalised
// and converted to a fraction.
func UsageSite(seqs []string) (*matrix.FMatrix2d, error) {
	var ncol int
	if len(seqs) > 0 {
		ncol = len(seqs[0])
	}
	counts := matrix.NewFMatrix2d(NSym, ncol)
	for iseq, s := range seqs {
		if len(s) != ncol {
			return nil, fmt.Errorf("%w: sequence %d has length %d, first has %d",
				ErrDiffLen, iseq+1, len(s), ncol)
		}
		for i := 0; i < len(s); i++ {
			irow := SymIndex(s[i])
			if irow < 0 {
				return nil, fmt.Errorf("%w: %q in sequence %d at %d", ErrBadSym, s[i], iseq+1, i+1)
			}
			counts.Mat[irow][i] += 1
		}
	}
	return counts, nil
}

// Fractions converts counts to normalised frequencies, in place. If
// 'A' occurs 2 times in five sequences, its entry changes from 2 to 0.4.
// A column with nothing in it stays at zero.
func Fractions(counts *matrix.FMatrix2d) {
	nrow, ncol := counts.Size()
	for icol := 0; icol < ncol; icol++ {
		var total float32
		for irow := 0; irow < nrow; irow++ {
			total += counts.Mat[irow][icol]
		}
		if total == 0 {
			continue
		}
		for irow := 0; irow < nrow; irow++ {
			counts.Mat[irow][icol] /= total
		}
	}
}

// Entropy works on a matrix of fractions and returns the entropy of
// each column. Logs go to base NSym, so a column where every base is
// equally likely gives 1.
func Entropy(frac *matrix.FMatrix2d) []float32 {
	nrow, ncol := frac.Size()
	ent := make([]float32, ncol)
	lbase := math.Log(float64(NSym))
	for icol := range ent {
		var h float64
		for irow := 0; irow < nrow; irow++ {
			if p := float64(frac.Mat[irow][icol]); p > 0 {
				h -= p * math.Log(p)
			}
		}
		ent[icol] = float32(h / lbase)
	}
	return ent
}

// WriteUsage prints one line per base with its fraction at each site,
// then a line with the entropy of each site. frac should have been
// through Fractions.
func WriteUsage(w io.Writer, frac *matrix.FMatrix2d) error {
	var sb strings.Builder
	_, ncol := frac.Size()
	sb.WriteString("site")
	for icol := 0; icol < ncol; icol++ {
		fmt.Fprintf(&sb, "%6d", icol+1)
	}
	sb.WriteByte('\n')
	for irow, row := range frac.Mat {
		fmt.Fprintf(&sb, "%-4c", Alphabet[irow])
		for _, x := range row {
			fmt.Fprintf(&sb, "%6.2f", x)
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("H   ")
	for _, h := range Entropy(frac) {
		fmt.Fprintf(&sb, "%6.2f", h)
	}
	sb.WriteByte('\n')
	_, err := io.WriteString(w, sb.String())
	return err
}
