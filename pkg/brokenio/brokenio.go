// brokenio is a wrapper around an io.ReadCloser. It allows us to set
// rates of failed read operations.
// Typical use: You get a file pointer or a reader from a compressed
// archive. You write
// reader = brokenio.NewReader(reader) to wrap the old reader. Everything then
// functions as before, but with artificial errors.
// When we introduce an error, we return an error wrapping ErrBroken.
// When we introduce a failure on the first read, we return without an
// error. This is what one often sees on a zero length file.

package brokenio

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
)

// ErrBroken is wrapped by every error we make up.
var ErrBroken = errors.New("brokenio")

// A BrknRdrClsr is modelled on the various Readers in the standard library,
// but with variables controlling the frequency of errors.
// These values are the fraction of time an error will take place,
// so a value of 0.05 means failure in 5% of the cases.
// If verbose is true, print out the amount of data when the file is closed.
type BrknRdrClsr struct {
	rdr_orig     io.ReadCloser // Wrapped reader
	probZeroFile float32       // Probability of returning a zero length file
	probFail     float32
	fracFail     float32
	nCalled      int
	nByte        int
	verbose      bool
}

// dfltReader sets default values for a new brokenio reader.
var dfltReader = BrknRdrClsr{
	fracFail: 0.5,
}

// SetVerbose sets the verbosity flag to true or false
func (r *BrknRdrClsr) SetVerbose(newV bool) { r.verbose = newV }

// SetFracFail sets the amount of the bytes which will be trashed
func (r *BrknRdrClsr) SetFracFail(frac float32) { r.fracFail = frac }

// SetProbZeroFile sets the rate at which we simply return 0 bytes on the
// first read. It must be a value from 0 to 1. We do not check if the
// argument is valid.
func (r *BrknRdrClsr) SetProbZeroFile(prob float32) { r.probZeroFile = prob }

// SetProbFail set the probability of a file reading failure.
// It must be between zero and 1.
func (r *BrknRdrClsr) SetProbFail(prob float32) { r.probFail = prob }

// NewReader returns a new Reader - a wrapper around the old one
func NewReader(rIn io.ReadCloser) *BrknRdrClsr {
	var rOut = dfltReader
	rOut.rdr_orig = rIn
	return &rOut
}

// trashSlice wipes out the second part of a slice.
// The amount to wipe out is given by a fraction, so 0.3
// will wipe out the second 30 % of a slice
func trashSlice(p []byte, frac float32) (int, error) {
	nkeep := int(float32(len(p)) * (1. - frac))
	if nkeep == len(p) {
		return nkeep, nil
	}
	q := p[nkeep:]
	for i := range q {
		q[i] = 0
	}
	return nkeep, fmt.Errorf("%w: randomly wiped out last %d of %d", ErrBroken, len(p)-nkeep, len(p))
}

// Read wraps the original reader and sums up the amount of data that
// has gone through. It generates an error with a probability given by probFail.
// On the first call, we might return zero data to simulate a zero length file
// which is a rather common occurrence.
func (r *BrknRdrClsr) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	if r.nCalled == 0 && r.probZeroFile > 0 {
		if rand.Float32() < r.probZeroFile {
			return 0, io.EOF
		}
	}
	n, err = r.rdr_orig.Read(p)
	r.nCalled++
	r.nByte += n
	if rand.Float32() < r.probFail && r.fracFail > 0 {
		return trashSlice(p[:n], r.fracFail)
	}
	return n, err
}

// Close wraps the original Close method.
func (r *BrknRdrClsr) Close() error {
	if r.verbose {
		fmt.Println("Closing", r.nCalled, "calls and", r.nByte, "bytes")
	}
	return r.rdr_orig.Close()
}
