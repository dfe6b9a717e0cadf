// 31 July 2020

// Package randacc writes random archives that look like the RVDB, for
// testing and benchmarking. Headers look like
//     >acc|GENBANK|MH171300.1|random virus 17
package randacc

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
)

const (
	nPadWhite = 9  // For padding for adding whitespace to sequences
	lineLen   = 60 // sequence characters per line
)

// Dbs are the databases in the real archive.
var Dbs = []string{"GENBANK", "REFSEQ", "NEOVIRUS", "GENOMIC"}

var letters = []byte{'a', 'c', 'g', 't', 'A', 'C', 'G', 'T', 'n'}

// RandAccArgs is the set of arguments passed to RandAccMain.
type RandAccArgs struct {
	Iseed  int64     // random number seed
	Wrtr   io.Writer // where we write to
	Cmmt   string    // Comment for the sequences
	Nseq   int       // number of sequences
	Len    int       // Length of sequences
	Dbs    []string  // database names, Dbs if empty
	NBad   int       // this many accessions will not match the pattern
	NDup   int       // this many accessions repeat an earlier one
	NShort int       // this many identifiers are cut short
}

// getseq returns a byte slice with a random sequence in it and some
// white space thrown in.
func getseq(seqlen int, rnd *rand.Rand) []byte {
	space := seqlen + (seqlen / nPadWhite)
	ret := make([]byte, 0, space+seqlen/lineLen+1)
	for i := 0; i < seqlen; i++ {
		if i > 0 && i%lineLen == 0 {
			ret = append(ret, '\n')
		}
		ret = append(ret, letters[rnd.Intn(len(letters))])
		if rnd.Intn(nPadWhite*10) == 0 {
			ret = append(ret, ' ')
		}
	}
	return ret
}

const upper = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// getacc makes an accession. Some have a second letter, some an
// underscore and some a version. The counter n makes it unique.
func getacc(n int, rnd *rand.Rand) string {
	b := []byte{upper[rnd.Intn(len(upper))]}
	if rnd.Intn(2) == 0 {
		b = append(b, upper[rnd.Intn(len(upper))])
		if rnd.Intn(3) == 0 {
			b = append(b, '_')
		}
	}
	s := fmt.Sprintf("%s%06d", b, n%1000000)
	if rnd.Intn(2) == 0 {
		s += fmt.Sprintf(".%d", rnd.Intn(10))
	}
	return s
}

// pickBroken decides which records get which sort of damage. Record 0
// is always left alone so that duplicates have something to copy.
func pickBroken(args *RandAccArgs, rnd *rand.Rand) map[int]byte {
	broken := make(map[int]byte)
	kinds := []struct {
		n int
		c byte
	}{{args.NBad, 'b'}, {args.NDup, 'd'}, {args.NShort, 's'}}
	for _, k := range kinds {
		for i := 0; i < k.n && len(broken) < args.Nseq-1; {
			j := 1 + rnd.Intn(args.Nseq-1)
			if _, ok := broken[j]; !ok {
				broken[j] = k.c
				i++
			}
		}
	}
	return broken
}

// RandAccMain writes random records to args.Wrtr.
func RandAccMain(args *RandAccArgs) error {
	if args.Nseq > 1000000 {
		return fmt.Errorf("at most 1000000 sequences, not %d", args.Nseq)
	}
	if args.NBad+args.NDup+args.NShort >= args.Nseq && args.Nseq > 0 {
		return fmt.Errorf("%d sequences is not enough for the broken ones", args.Nseq)
	}
	dbs := args.Dbs
	if len(dbs) == 0 {
		dbs = Dbs
	}
	cmmt := args.Cmmt
	if cmmt == "" {
		cmmt = "random virus"
	}
	rnd := rand.New(rand.NewSource(args.Iseed))
	var broken map[int]byte
	if args.Nseq > 0 {
		broken = pickBroken(args, rnd)
	}

	w := bufio.NewWriter(args.Wrtr)
	var first string
	for i := 0; i < args.Nseq; i++ {
		db := dbs[rnd.Intn(len(dbs))]
		acc := getacc(i, rnd)
		switch broken[i] {
		case 'b':
			acc = "bad" + acc
		case 'd':
			acc = first
		}
		if i == 0 {
			first = acc
		}
		var err error
		if broken[i] == 's' {
			_, err = fmt.Fprintf(w, ">acc|%s %s %d\n", db, cmmt, i+1)
		} else {
			_, err = fmt.Fprintf(w, ">acc|%s|%s|%s %d\n", db, acc, cmmt, i+1)
		}
		if err != nil {
			return err
		}
		w.Write(getseq(args.Len, rnd))
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return w.Flush()
}
