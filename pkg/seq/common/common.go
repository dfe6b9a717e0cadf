// 29 Apr 2020

package common

import (
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

// StdName is the file name which means stdin or stdout.
const StdName = "-"

// IsStd says if a file name refers to stdin / stdout.
func IsStd(fname string) bool { return fname == "" || fname == StdName }

// WrtTemp writes a string to a temporary file and returns
// the filename. It is used all over the place in testing.
func WrtTemp(s string) (string, error) {
	f_tmp, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		return "", fmt.Errorf("tempfile fail: %w", err)
	}
	defer f_tmp.Close()

	if _, err := io.WriteString(f_tmp, s); err != nil {
		return "", fmt.Errorf("writing string to temp file %v: %w", f_tmp.Name(), err)
	}
	return f_tmp.Name(), nil
}

// IsBrokenPipe says if an error came from writing to a closed pipe,
// as happens with "rvdbacc extract -o - | head".
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
