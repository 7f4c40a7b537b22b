package freqkmer_test

import (
	"log"
	"os"

	"github.com/andrew-torda/freqkmer/pkg/freqkmer"
)

func ExampleReport_Write() {
	rpt, err := freqkmer.Build([]string{"ATCG", "AAAA", "ATCGATCG"}, 3)
	if err != nil {
		log.Fatal(err)
	}
	rpt.Write(os.Stdout)
	// Output:
	// AAAA {AAA=2}
	// ATCG {ATC=1, TCG=1}
	// ATCGATCG {ATC=2, TCG=2}
}
