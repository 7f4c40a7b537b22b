// 29 Apr 2020

package common

import (
	"errors"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

// Alphabet is the set of bases, in the order used for rows of any
// per-base table.
const Alphabet = "ATCG"

// NSym is the number of symbols in Alphabet
const NSym = len(Alphabet)

var (
	ErrInvalidLength = errors.New("invalid length")
	ErrInvalidWindow = errors.New("invalid window")
	ErrDiffLen       = errors.New("sequences of different length")
	ErrBadSym        = errors.New("symbol not in alphabet")
)

// SymIndex returns the position of c in Alphabet, or -1.
func SymIndex(c byte) int {
	switch c {
	case 'A':
		return 0
	case 'T':
		return 1
	case 'C':
		return 2
	case 'G':
		return 3
	}
	return -1
}
