// 31 July 2020

package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/andrew-torda/rvdbacc/pkg/randacc"
	. "github.com/andrew-torda/rvdbacc/pkg/seq/common"
)

func main() {
	f := flag.NewFlagSet("randacc", flag.ExitOnError)
	const iseed int64 = 1637
	var args randacc.RandAccArgs

	f.IntVar(&args.NBad, "b", 0, "number of bad accessions")
	f.IntVar(&args.NDup, "d", 0, "number of repeated accessions")
	f.IntVar(&args.NShort, "s", 0, "number of short identifiers")
	f.Int64Var(&args.Iseed, "r", iseed, "random number seed")
	if err := f.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(f.Output(), err)
		os.Exit(ExitUsageError)
	}
	if f.NArg() != 3 {
		fmt.Fprintln(f.Output(), "Wrong number of args\nrandacc [..] file nseq length")
		f.Usage()
		os.Exit(ExitUsageError)
	}

	const emsg = "Failed converting %s to positive integer\n"
	if nseq, err := strconv.ParseUint(f.Arg(1), 10, 32); err != nil {
		fmt.Fprintf(os.Stderr, emsg, f.Arg(1))
		os.Exit(ExitUsageError)
	} else {
		args.Nseq = int(nseq)
	}
	if nlen, err := strconv.ParseUint(f.Arg(2), 10, 32); err != nil {
		fmt.Fprintf(os.Stderr, emsg, f.Arg(2))
		os.Exit(ExitUsageError)
	} else {
		args.Len = int(nlen)
	}

	fname := f.Arg(0)
	if IsStd(fname) {
		args.Wrtr = os.Stdout
	} else {
		ft, err := os.Create(fname)
		if err != nil {
			fmt.Fprintln(os.Stderr, "File for output:", err)
			os.Exit(ExitFailure)
		}
		defer ft.Close()
		args.Wrtr = ft
	}
	if err := randacc.RandAccMain(&args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
}
