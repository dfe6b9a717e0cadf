//go:build !windows

package rvdbacc

import (
	"os/signal"
	"syscall"
)

// ignorePipe lets a write to a closed stdout come back as EPIPE instead
// of killing us, so "rvdbacc extract -o - | head" exits 0.
func ignorePipe() { signal.Ignore(syscall.SIGPIPE) }
