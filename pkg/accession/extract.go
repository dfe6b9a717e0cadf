// 14 Oct 2026

package accession

import (
	"bufio"
	"encoding/hex"
	"io"

	"github.com/zeebo/blake3"

	"github.com/andrew-torda/rvdbacc/pkg/seq"
)

// Extractor writes one "db|accession" line per record. Nothing is
// checked beyond there being enough fields.
type Extractor struct {
	wrtr  *bufio.Writer
	hsh   *blake3.Hasher
	nline int
}

// NewExtractor writes to w. The caller opens w once for the whole pass,
// calls Flush at the end and then closes w.
func NewExtractor(w io.Writer) *Extractor {
	hsh := blake3.New()
	return &Extractor{
		wrtr: bufio.NewWriter(io.MultiWriter(w, hsh)),
		hsh:  hsh,
	}
}

// Add writes the line for one record.
func (e *Extractor) Add(s seq.Seq) error {
	f, err := splitRec(s.ID(), e.nline+1)
	if err != nil {
		return err
	}
	if _, err := e.wrtr.WriteString(f.Line()); err != nil {
		return err
	}
	if err := e.wrtr.WriteByte('\n'); err != nil {
		return err
	}
	e.nline++
	return nil
}

// Flush pushes out anything buffered.
func (e *Extractor) Flush() error { return e.wrtr.Flush() }

// NLine is the number of lines written.
func (e *Extractor) NLine() int { return e.nline }

// Sum is the BLAKE3-256 digest, in hex, of everything flushed so far.
func (e *Extractor) Sum() string { return hex.EncodeToString(e.hsh.Sum(nil)) }
