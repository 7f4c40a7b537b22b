// 31 July 2020

/*

Randseq is for making random DNA sequences for testing the code.
Usage:
	randseq [options] nseq length
will generate nseq sequences of length length over A, T, C and G and
write them to standard output in fasta format.

Flags:
	-m
		comment to put after the ">" of each sequence
	-r
		random number seed. Zero means take it from the clock.

*/
package main
