// 5 Aug 2021

/*

Freqkmer makes random DNA sequences and finds the most frequent
substrings of a given length in each of them.
Usage:
	freqkmer [options]

It prints the sequences, one per line, then each sequence again with
the substrings of length k that occur most often in it and their counts.
Ties are all kept. If k is longer than the sequences, the tables are empty.

Flags:
	-n
		number of sequences (default 5)
	-l
		length of each sequence (default 10)
	-k
		length of the substrings to count (default 3)
	-r
		random number seed. Zero (the default) means take it from the clock.
	-c
		also print the fraction of each base at each site and the entropy
		of each site
	-t
		print timing information to standard error

Exit status is 0 on success, 1 if a length or window is negative or the
window is zero, 2 for a usage error.
*/
package main
