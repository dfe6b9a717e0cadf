// Reader for fasta format files.

package seq

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

const NL = '\n'

const defaultReadSize = 64 * 1024

var rdsize int = defaultReadSize

// setFastaRdSize is only used during testing and benchmarking
func setFastaRdSize(i int) {
	if i < 16 {
		panic("setFastaRdSize given buffer length less than 16")
	}
	rdsize = i
}

// Reader hands out one record at a time. A record starts with a ">"
// at the start of a line. Anything before the first ">" is ignored.
type Reader struct {
	rdr   *bufio.Reader
	opts  Options
	long  []byte // for lines longer than the buffer
	cmmt  string // comment of the record being built
	seq   []byte // partial sequence
	inRec bool
	nrec  int
	err   error // sticky. io.EOF when we are finished.
}

// NewReader wraps rdr. s_opts may be nil.
func NewReader(rdr io.Reader, s_opts *Options) *Reader {
	r := &Reader{rdr: bufio.NewReaderSize(rdr, rdsize)}
	if s_opts != nil {
		r.opts = *s_opts
	}
	return r
}

// readLine returns the next line, without the newline or carriage return.
// The slice is only valid until the next call. At the end of input we get
// whatever was left and io.EOF.
func (r *Reader) readLine() ([]byte, error) {
	line, err := r.rdr.ReadSlice(NL)
	if err == bufio.ErrBufferFull {
		r.long = append(r.long[:0], line...)
		for err == bufio.ErrBufferFull {
			line, err = r.rdr.ReadSlice(NL)
			r.long = append(r.long, line...)
		}
		line = r.long
	}
	line = bytes.TrimSuffix(line, []byte{NL})
	line = bytes.TrimSuffix(line, []byte{'\r'})
	return line, err
}

// appendNoWhite appends s to t, dropping white space.
func appendNoWhite(t, s []byte) []byte {
	for _, c := range s {
		switch c {
		case ' ', '\t', '\r', '\v', '\f':
			continue
		}
		t = append(t, c)
	}
	return t
}

// flush finishes the record being built.
func (r *Reader) flush() Seq {
	s := Seq{cmmt: r.cmmt, seq: r.seq}
	r.cmmt = ""
	r.seq = nil
	r.nrec++
	return s
}

// Next returns the next record. At the end of input it returns io.EOF.
// Any other error means the input could not be read and is returned on
// every following call.
func (r *Reader) Next() (Seq, error) {
	if r.err != nil {
		return Seq{}, r.err
	}
	for {
		line, err := r.readLine()
		if err != nil && err != io.EOF {
			r.err = fmt.Errorf("reading after record %d: %w", r.nrec, err)
			return Seq{}, r.err
		}
		atEOF := err == io.EOF
		if len(line) > 0 && line[0] == cmmt_char {
			cmmt := string(line[1:])
			if r.inRec {
				s := r.flush()
				r.cmmt = cmmt
				return s, nil
			}
			r.inRec = true
			r.cmmt = cmmt
		} else if r.inRec && r.opts.KeepSeq {
			r.seq = appendNoWhite(r.seq, line)
		}
		if atEOF {
			r.err = io.EOF
			if r.inRec {
				r.inRec = false
				return r.flush(), nil
			}
			return Seq{}, io.EOF
		}
	}
}

// NRec is the number of records handed out so far.
func (r *Reader) NRec() int { return r.nrec }

// ForEach reads fasta formatted data and calls fn for each record in
// order. It stops at the first error from fn or from reading and returns
// the number of records seen.
func ForEach(rdr io.Reader, s_opts *Options, fn func(Seq) error) (int, error) {
	r := NewReader(rdr, s_opts)
	for {
		s, err := r.Next()
		if err == io.EOF {
			return r.NRec(), nil
		}
		if err != nil {
			return r.NRec(), err
		}
		if err := fn(s); err != nil {
			return r.NRec(), err
		}
	}
}

// Visit opens fname (see Open) and calls ForEach on it.
func Visit(fname string, s_opts *Options, fn func(Seq) error) (int, error) {
	fp, err := Open(fname)
	if err != nil {
		return 0, err
	}
	defer fp.Close()
	return ForEach(fp, s_opts, fn)
}
