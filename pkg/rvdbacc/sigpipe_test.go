//go:build !windows

package rvdbacc_test

import (
	"io"
	"os"
	"os/signal"
	"syscall"
	"testing"

	"github.com/rs/zerolog"

	"github.com/andrew-torda/rvdbacc/pkg/cliconfig"
	"github.com/andrew-torda/rvdbacc/pkg/randacc"
	. "github.com/andrew-torda/rvdbacc/pkg/rvdbacc"
	. "github.com/andrew-torda/rvdbacc/pkg/seq/common"
)

// TestReaderGone is "rvdbacc extract -o - | head -1". The reader of the
// pipe goes away and the rest of the output is dropped without an error.
func TestReaderGone(t *testing.T) {
	dir := isolate(t)
	const nseq = 5000 // far more than one bufio buffer of output
	in := mkArchive(t, dir, randacc.RandAccArgs{Nseq: nseq, Len: 10, Iseed: 3})
	pr, pw, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer pw.Close()
	pr.Close()

	cfg := cliconfig.DefaultConfig()
	cfg.InFname = in
	cfg.OutFname = StdName
	r := Runner{Cfg: cfg, Log: zerolog.Nop(), Data: pw}
	ex, err := r.Extract()
	if err != nil {
		t.Fatal("closed pipe should not be an error, got", err)
	}
	if ex.NLine == 0 || ex.NLine > nseq {
		t.Error("n_line", ex.NLine)
	}
}

func TestIgnorePipe(t *testing.T) {
	isolate(t)
	if code := Mymain([]string{"--help"}, io.Discard, io.Discard); code != ExitSuccess {
		t.Fatal("help, exit", code)
	}
	if !signal.Ignored(syscall.SIGPIPE) {
		t.Error("SIGPIPE would still kill us when stdout is closed")
	}
}
