// 5 Aug 2021
// Count substrings of fixed length (k-mers) in a sequence and keep the
// most frequent ones.

package kmer

import (
	"fmt"
	"sort"
	"strings"

	. "github.com/andrew-torda/freqkmer/pkg/seq/common"
)

// Table maps a substring to the number of times it occurs.
type Table map[string]int

// Count slides a window of length k along s, one position at a time,
// and counts each substring it sees. If k is longer than s, the table
// is empty.
func Count(s string, k int) (Table, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: window length %d", ErrInvalidWindow, k)
	}
	t := make(Table)
	for i := 0; i+k <= len(s); i++ {
		t[s[i:i+k]]++
	}
	return t, nil
}

// Max returns the biggest count in the table, 0 if it is empty.
func (t Table) Max() int {
	var max int
	for _, n := range t {
		if n > max {
			max = n
		}
	}
	return max
}

// MaxFreq returns a new table with only the entries whose count is the
// maximum. Ties are all kept. t is not touched.
func MaxFreq(t Table) Table {
	max := t.Max()
	ret := make(Table)
	for s, n := range t {
		if n == max {
			ret[s] = n
		}
	}
	return ret
}

// Keys returns the substrings in lexical order.
func (t Table) Keys() []string {
	keys := make([]string, 0, len(t))
	for s := range t {
		keys = append(keys, s)
	}
	sort.Strings(keys)
	return keys
}

// String prints the table as {SUB=n, SUB=n} with keys sorted.
func (t Table) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, s := range t.Keys() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s=%d", s, t[s])
	}
	sb.WriteByte('}')
	return sb.String()
}
