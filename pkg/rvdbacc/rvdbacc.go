// 14 Oct 2026

// Package rvdbacc pulls accessions and their source databases out of the
// Reference Viral Database (https://rvdb.dbi.udel.edu/). One pass checks
// the accessions, a second pass writes "GENBANK|MH171300.1" lines.
package rvdbacc

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/andrew-torda/rvdbacc/pkg/accession"
	"github.com/andrew-torda/rvdbacc/pkg/cliconfig"
	"github.com/andrew-torda/rvdbacc/pkg/seq"
	. "github.com/andrew-torda/rvdbacc/pkg/seq/common"
)

var (
	// ErrNoRewind means we were asked to read stdin twice.
	ErrNoRewind = errors.New("cannot read stdin twice, give an input file")
	// ErrNotClean is returned in strict mode if accessions are bad or repeated.
	ErrNotClean = errors.New("accessions are not clean")
)

// progressEvery is how often we say how far we got, at debug level.
const progressEvery = 100000

// Runner does the passes. Out is where the summary goes. Data is where
// the lines go if the output is "-", os.Stdout if nil.
type Runner struct {
	Cfg  cliconfig.Config
	Log  zerolog.Logger
	Out  io.Writer
	Data io.Writer
}

// Extracted is what we know after the extraction pass.
type Extracted struct {
	NLine int
	Sum   string // BLAKE3-256 of the output, hex
}

func (r *Runner) seqOpts() *seq.Options {
	return &seq.Options{KeepSeq: r.Cfg.KeepSeq}
}

// progress wraps fn so it logs every progressEvery records.
func (r *Runner) progress(pass string, fn func(seq.Seq) error) func(seq.Seq) error {
	n := 0
	return func(s seq.Seq) error {
		if err := fn(s); err != nil {
			return err
		}
		if n++; n%progressEvery == 0 {
			r.Log.Debug().Str("pass", pass).Int("n_record", n).Msg("progress")
		}
		return nil
	}
}

// Check is the validation pass.
func (r *Runner) Check() (accession.Stats, error) {
	v := accession.NewValidator()
	nrec, err := seq.Visit(r.Cfg.InFname, r.seqOpts(), r.progress("check", v.Add))
	if err != nil {
		return v.Stats(), fmt.Errorf("checking %s: %w", r.Cfg.InFname, err)
	}
	st := v.Stats()
	if nrec == 0 {
		r.Log.Warn().Str("input", r.Cfg.InFname).Msg("no sequences found")
	}
	r.Log.Info().Int("n_record", st.NRec).Int("bad_regex_count", st.NBad).
		Int("n_db", st.NDb).Int("n_accession", st.NAcc).Msg("check done")
	if st.NBad > 0 {
		r.Log.Warn().Int("bad_regex_count", st.NBad).Strs("sample", st.BadSmpl).
			Msg("accessions do not match " + accession.Pattern.String())
	}
	if st.NDup() > 0 {
		r.Log.Warn().Int("n_dup", st.NDup()).Msg("accessions are repeated")
	}
	return st, nil
}

// createOut opens the output once for the whole pass.
func (r *Runner) createOut(fname string) (io.WriteCloser, error) {
	if IsStd(fname) {
		if r.Data != nil {
			return nopWrtClsr{r.Data}, nil
		}
		return nopWrtClsr{os.Stdout}, nil
	}
	return os.Create(fname)
}

type nopWrtClsr struct{ io.Writer }

func (nopWrtClsr) Close() error { return nil }

// Extract is the extraction pass.
func (r *Runner) Extract() (ex Extracted, err error) {
	out, err := r.createOut(r.Cfg.OutFname)
	if err != nil {
		return ex, fmt.Errorf("creating output: %w", err)
	}
	defer func() {
		if e := out.Close(); e != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", r.Cfg.OutFname, e)
		}
	}()

	e := accession.NewExtractor(out)
	_, err = seq.Visit(r.Cfg.InFname, r.seqOpts(), r.progress("extract", e.Add))
	if err == nil {
		err = e.Flush()
	}
	ex = Extracted{NLine: e.NLine(), Sum: e.Sum()}
	if IsBrokenPipe(err) {
		r.Log.Debug().Int("n_line", ex.NLine).Msg("output closed early")
		return ex, nil
	}
	if err != nil {
		return ex, fmt.Errorf("extracting %s: %w", r.Cfg.InFname, err)
	}
	r.Log.Info().Int("n_line", ex.NLine).Str("output", r.Cfg.OutFname).
		Str("blake3", ex.Sum).Msg("extract done")
	if r.Cfg.SumFile && !IsStd(r.Cfg.OutFname) {
		if err := writeSum(r.Cfg.OutFname, ex.Sum); err != nil {
			return ex, err
		}
	}
	return ex, nil
}

// SumName is where the digest of fname goes.
func SumName(fname string) string { return fname + ".b3" }

// writeSum writes a digest file in the same form as b3sum.
func writeSum(fname, sum string) error {
	line := fmt.Sprintf("%s  %s\n", sum, filepath.Base(fname))
	if err := os.WriteFile(SumName(fname), []byte(line), 0o644); err != nil {
		return fmt.Errorf("writing digest: %w", err)
	}
	return nil
}

// Run does both passes, reading the input twice.
func (r *Runner) Run() (accession.Stats, Extracted, error) {
	if IsStd(r.Cfg.InFname) {
		return accession.Stats{}, Extracted{}, ErrNoRewind
	}
	st, err := r.Check()
	if err != nil {
		return st, Extracted{}, err
	}
	r.WriteSummary(st)
	if r.Cfg.Strict && !st.Clean() {
		return st, Extracted{}, fmt.Errorf("%w: %d bad, %d repeated", ErrNotClean, st.NBad, st.NDup())
	}
	ex, err := r.Extract()
	if err == nil && !IsStd(r.Cfg.OutFname) && ex.NLine != st.NRec {
		err = fmt.Errorf("wrote %d lines for %d records, input changed?", ex.NLine, st.NRec)
	}
	return st, ex, err
}

// WriteSummary prints the tallies, one per line.
func (r *Runner) WriteSummary(st accession.Stats) {
	if r.Out == nil {
		return
	}
	fmt.Fprintln(r.Out, "bad_regex_count", st.NBad)
	fmt.Fprintln(r.Out, "n_db", st.NDb)
	fmt.Fprintln(r.Out, "n_accession", st.NAcc)
	fmt.Fprintln(r.Out, "n_record", st.NRec)
	for _, d := range st.Dbs {
		fmt.Fprintln(r.Out, "db", d.Db, d.N)
	}
}
