// 14 Oct 2026

package accession

import (
	"sort"

	"github.com/andrew-torda/rvdbacc/pkg/seq"
)

// NBadSample is how many bad accessions we remember, for printing.
const NBadSample = 10

// DbCount is the number of records from one source database.
type DbCount struct {
	Db string
	N  int
}

// Stats is what comes out of a validation pass.
type Stats struct {
	NRec    int       // records seen
	NBad    int       // accessions not matching Pattern
	NDb     int       // distinct databases
	NAcc    int       // distinct accessions
	Dbs     []DbCount // sorted by name
	BadSmpl []string  // first few bad accessions
}

// NDup is the number of records whose accession was seen before.
func (s Stats) NDup() int { return s.NRec - s.NAcc }

// Clean means every accession matched and none was repeated.
func (s Stats) Clean() bool { return s.NBad == 0 && s.NDup() == 0 }

// Validator tallies identifiers. The zero value is not ready, use
// NewValidator.
type Validator struct {
	nrec    int
	nbad    int
	dbs     map[string]int
	accs    map[string]struct{}
	badSmpl []string
}

func NewValidator() *Validator {
	return &Validator{
		dbs:  make(map[string]int),
		accs: make(map[string]struct{}),
	}
}

// Add looks at one record. An identifier with fewer than three fields
// is an error and the pass should stop.
func (v *Validator) Add(s seq.Seq) error {
	f, err := splitRec(s.ID(), v.nrec+1)
	if err != nil {
		return err
	}
	v.nrec++
	if !Valid(f.Acc) {
		v.nbad++
		if len(v.badSmpl) < NBadSample {
			v.badSmpl = append(v.badSmpl, f.Acc)
		}
	}
	v.dbs[f.Db]++
	v.accs[f.Acc] = struct{}{}
	return nil
}

// Stats returns the tallies so far.
func (v *Validator) Stats() Stats {
	st := Stats{
		NRec:    v.nrec,
		NBad:    v.nbad,
		NDb:     len(v.dbs),
		NAcc:    len(v.accs),
		Dbs:     make([]DbCount, 0, len(v.dbs)),
		BadSmpl: append([]string(nil), v.badSmpl...),
	}
	for db, n := range v.dbs {
		st.Dbs = append(st.Dbs, DbCount{Db: db, N: n})
	}
	sort.Slice(st.Dbs, func(i, j int) bool { return st.Dbs[i].Db < st.Dbs[j].Db })
	return st
}
