// brokenio is a wrapper around an io.Writer. It allows us to make
// writes fail, either after a given number of bytes or at random.
// Typical use: in a test, you have a writer for the output. You write
// w = brokenio.NewWriter(w) to wrap it. Everything then functions as
// before, but with artificial errors, so we can see that errors from
// printing get back to the caller.

package brokenio

import (
	"errors"
	"io"
	"math/rand"
)

// ErrBroken is returned by a write which we decided should fail.
var ErrBroken = errors.New("brokenio: artificial write failure")

// A BrknWrtr is modelled on the various Writers in the standard library,
// but with variables controlling when writes fail.
type BrknWrtr struct {
	wrtr_orig io.Writer  // Wrapped writer
	limit     int        // fail once this many bytes have gone through, <0 means never
	probFail  float32    // probability that any one write fails
	rnd       *rand.Rand // for probFail
	nCalled   int
	nByte     int
}

// NewWriter returns a new writer - a wrapper around the old one.
// By default it never fails.
func NewWriter(w io.Writer) *BrknWrtr {
	return &BrknWrtr{wrtr_orig: w, limit: -1}
}

// SetLimit makes writes fail once n bytes have been written.
// The write that crosses the limit writes what fits, then fails.
func (w *BrknWrtr) SetLimit(n int) { w.limit = n }

// SetProbFail sets the probability of a write failing. It must be
// between zero and 1. We do not check if the argument is valid.
func (w *BrknWrtr) SetProbFail(prob float32, iseed int64) {
	w.probFail = prob
	w.rnd = rand.New(rand.NewSource(iseed))
}

// NCalled is how many times Write was called
func (w *BrknWrtr) NCalled() int { return w.nCalled }

// NByte is how many bytes got through to the wrapped writer
func (w *BrknWrtr) NByte() int { return w.nByte }

// Write wraps the original writer and sums up the amount of data that
// has gone through.
func (w *BrknWrtr) Write(p []byte) (n int, err error) {
	w.nCalled++
	if w.rnd != nil && w.rnd.Float32() < w.probFail {
		return 0, ErrBroken
	}
	q := p
	if w.limit >= 0 {
		if room := w.limit - w.nByte; room < len(p) {
			if room < 0 {
				room = 0
			}
			q = p[:room]
		}
	}
	n, err = w.wrtr_orig.Write(q)
	w.nByte += n
	if err == nil && n < len(p) {
		err = ErrBroken
	}
	return n, err
}
