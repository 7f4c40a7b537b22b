// 5 Aug 2021

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/andrew-torda/freqkmer/pkg/freqkmer"
	. "github.com/andrew-torda/freqkmer/pkg/seq/common"
)

func main() {
	f := flag.NewFlagSet("freqkmer", flag.ExitOnError)
	var args freqkmer.Args

	f.IntVar(&args.Nseq, "n", freqkmer.DfltNseq, "number of sequences")
	f.IntVar(&args.Len, "l", freqkmer.DfltLen, "length of sequences")
	f.IntVar(&args.K, "k", freqkmer.DfltK, "length of substrings to count")
	f.Int64Var(&args.Seed, "r", 0, "random number seed, 0 for the clock")
	f.BoolVar(&args.Composition, "c", false, "print base usage at each site")
	f.BoolVar(&args.Time, "t", false, "print out timing information")
	if err := f.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(f.Output(), err)
		os.Exit(ExitUsageError)
	}
	if f.NArg() != 0 {
		fmt.Fprintln(f.Output(), "Unexpected arguments", f.Args())
		f.Usage()
		os.Exit(ExitUsageError)
	}

	args.Wrtr = os.Stdout
	if err := freqkmer.Mymain(&args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
