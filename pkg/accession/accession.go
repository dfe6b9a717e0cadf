// 14 Oct 2026

// Package accession takes apart RVDB sequence identifiers. An identifier
// looks like
//
//	acc|GENBANK|MH171300.1|Marine
//
// and is split on "|" into a constant tag, the source database, the
// accession and whatever is left.
package accession

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/andrew-torda/rvdbacc/pkg/seq"
)

const (
	Sep       = "|"
	nMinFld   = 3
	maxIDShow = 40 // RVDB headers can be long, this much goes in errors
)

// Pattern is what an accession has to look like. One or two capitals,
// maybe an underscore, five or six digits and maybe a version.
var Pattern = regexp.MustCompile(`^[A-Z]{1,2}_?[0-9]{5,6}(\.[0-9])?$`)

// ErrShortID means an identifier did not have enough fields.
var ErrShortID = errors.New("identifier has fewer than 3 fields")

// FieldError says which record had a bad identifier.
type FieldError struct {
	Rec    int // record number, counting from 1
	ID     string
	NField int
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("record %d: %q has %d field(s): %v",
		e.Rec, seq.TrimStr(e.ID, maxIDShow), e.NField, ErrShortID)
}

func (e *FieldError) Unwrap() error { return ErrShortID }

// Fields is an identifier split up.
type Fields struct {
	Tag  string // index 0, always "acc" in RVDB
	Db   string // index 1
	Acc  string // index 2
	Rest string // anything after, still joined by Sep
}

// Split takes an identifier apart. If there are fewer than three fields
// the error is a *FieldError with Rec left as zero.
func Split(id string) (Fields, error) {
	f := strings.SplitN(id, Sep, nMinFld+1)
	if len(f) < nMinFld {
		return Fields{}, &FieldError{ID: id, NField: len(f)}
	}
	flds := Fields{Tag: f[0], Db: f[1], Acc: f[2]}
	if len(f) > nMinFld {
		flds.Rest = f[nMinFld]
	}
	return flds, nil
}

// Valid says if acc looks like an accession.
func Valid(acc string) bool { return Pattern.MatchString(acc) }

// Line is what goes in the output, "GENBANK|MH171300.1", without a newline.
func (f Fields) Line() string { return f.Db + Sep + f.Acc }

// splitRec is Split, but puts the record number in the error.
func splitRec(id string, nrec int) (Fields, error) {
	f, err := Split(id)
	if err != nil {
		var fe *FieldError
		if errors.As(err, &fe) {
			fe.Rec = nrec
		}
	}
	return f, err
}
