// 20 Dec 2017

// Package seq reads sequences, which usually begin their lives in
// fasta format. The archives we look at are big (close to a million
// records), so records are handed out one at a time and the sequence
// itself is only kept if somebody asks for it.
package seq

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Constants
const cmmt_char byte = '>' // and this introduces comments in fasta format

// Seq is one record. cmmt is everything after the ">" on the
// header line.
type Seq struct {
	cmmt string
	seq  []byte
}

// Options contains the choices passed in from the caller.
type Options struct {
	KeepSeq bool // Keep the sequence. Otherwise we only keep the comment.
}

// NewSeq makes a sequence. Mainly for testing.
func NewSeq(cmmt string, s []byte) Seq { return Seq{cmmt: cmmt, seq: s} }

// GetSeq returns the sequence as the original byte slice
func (s Seq) GetSeq() []byte { return s.seq }

// GetCmmt returns the comment, without the leading ">"
func (s Seq) GetCmmt() string { return s.cmmt }

// Len
func (s Seq) Len() int { return len(s.seq) }

// isWhite is any unicode space, plus the ASCII separators 0x1c to 0x1f
// which other fasta readers also split words on.
func isWhite(r rune) bool { return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f) }

// ID returns the first word of the comment. For an RVDB header
//     >acc|GENBANK|MH171300.1|Marine virus AFVG_250M1064, complete genome
// this is "acc|GENBANK|MH171300.1|Marine". Words are split on any white
// space, not just blanks and tabs. An empty comment gives an empty ID.
func (s Seq) ID() string {
	c := strings.TrimLeftFunc(s.cmmt, isWhite)
	if i := strings.IndexFunc(c, isWhite); i != -1 {
		return c[:i]
	}
	return c
}

// TrimStr trims a string to n bytes if it is longer. It will not cut a
// utf-8 character in half.
func TrimStr(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
