// 31 July 2020

/*
Randacc makes random fasta files which look like the Reference Viral
Database, for testing and benchmarking rvdbacc.
Usage:
	randacc [options] fname nseq length
will generate nseq sequences of length length and write them to fname.
A fname of - means stdout.

Flags:
	-b n
		n accessions will not match the accession pattern
	-d n
		n accessions will repeat the first one
	-s n
		n identifiers will have only two fields. rvdbacc stops on these.
	-r
		random number seed
*/
package main
