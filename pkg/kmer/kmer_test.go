// 5 Aug 2021

package kmer_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "github.com/andrew-torda/freqkmer/pkg/kmer"
	"github.com/andrew-torda/freqkmer/pkg/randseq"
	. "github.com/andrew-torda/freqkmer/pkg/seq/common"
)

var countTests = []struct {
	s      string
	k      int
	count  Table
	maxfrq Table
}{
	{"ATCGATCG", 3,
		Table{"ATC": 2, "TCG": 2, "CGA": 1, "GAT": 1},
		Table{"ATC": 2, "TCG": 2}},
	{"AAAA", 2, Table{"AA": 3}, Table{"AA": 3}},
	{"AT", 5, Table{}, Table{}},
	{"", 1, Table{}, Table{}},
	{"ATCG", 2,
		Table{"AT": 1, "TC": 1, "CG": 1},
		Table{"AT": 1, "TC": 1, "CG": 1}},
	{"GATTACA", 7, Table{"GATTACA": 1}, Table{"GATTACA": 1}},
	{"ACGT", 1,
		Table{"A": 1, "C": 1, "G": 1, "T": 1},
		Table{"A": 1, "C": 1, "G": 1, "T": 1}},
}

func TestCount(t *testing.T) {
	for _, tt := range countTests {
		got, err := Count(tt.s, tt.k)
		if err != nil {
			t.Fatalf("Count(%q, %d): %v", tt.s, tt.k, err)
		}
		if diff := cmp.Diff(tt.count, got); diff != "" {
			t.Errorf("Count(%q, %d) (-want +got):\n%s", tt.s, tt.k, diff)
		}
		if diff := cmp.Diff(tt.maxfrq, MaxFreq(got)); diff != "" {
			t.Errorf("MaxFreq(Count(%q, %d)) (-want +got):\n%s", tt.s, tt.k, diff)
		}
	}
}

func TestBadWindow(t *testing.T) {
	for _, k := range []int{0, -1, -100} {
		if _, err := Count("ACGT", k); !errors.Is(err, ErrInvalidWindow) {
			t.Fatalf("Count with k=%d wanted ErrInvalidWindow, got %v", k, err)
		}
	}
}

// TestProperties runs over random sequences and checks the things that
// must always hold.
func TestProperties(t *testing.T) {
	rnd := rand.New(rand.NewSource(1637))
	for i := 0; i < 200; i++ {
		s, _ := randseq.Generate(rnd.Intn(60), rnd)
		k := 1 + rnd.Intn(6)
		tbl, err := Count(s, k)
		if err != nil {
			t.Fatal(err)
		}
		var sum int
		for _, n := range tbl {
			sum += n
		}
		if want := len(s) - k + 1; k <= len(s) && sum != want {
			t.Fatalf("%s k=%d counts sum to %d wanted %d", s, k, sum, want)
		} else if k > len(s) && len(tbl) != 0 {
			t.Fatalf("%s k=%d should be empty, got %v", s, k, tbl)
		}

		mf := MaxFreq(tbl)
		if len(tbl) > 0 && len(mf) == 0 {
			t.Fatalf("MaxFreq of non-empty table %v is empty", tbl)
		}
		max := tbl.Max()
		for sub, n := range mf {
			if tbl[sub] != n || n != max {
				t.Fatalf("MaxFreq entry %s=%d, table has %d, max %d", sub, n, tbl[sub], max)
			}
		}
		if diff := cmp.Diff(mf, MaxFreq(mf)); diff != "" {
			t.Fatalf("MaxFreq not idempotent on %v:\n%s", tbl, diff)
		}
	}
}

// TestNoAlias makes sure filtering leaves the input alone.
func TestNoAlias(t *testing.T) {
	tbl, _ := Count("ATCGATCG", 3)
	before := Table{}
	for k, v := range tbl {
		before[k] = v
	}
	mf := MaxFreq(tbl)
	mf["ATC"] = 99
	if diff := cmp.Diff(before, tbl); diff != "" {
		t.Fatalf("input table changed (-before +after):\n%s", diff)
	}
}

func TestMaxEmpty(t *testing.T) {
	if m := (Table{}).Max(); m != 0 {
		t.Fatal("max of empty table got", m)
	}
	if m := MaxFreq(nil); m == nil || len(m) != 0 {
		t.Fatal("MaxFreq(nil) should be empty and not nil, got", m)
	}
}
