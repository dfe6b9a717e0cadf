// 3 Aug 2020

package seq

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/edsrzf/mmap-go"
	"github.com/ulikunitz/xz"

	. "github.com/andrew-torda/rvdbacc/pkg/seq/common"
)

// rdrClsr glues a reader to whatever has to be closed afterwards.
type rdrClsr struct {
	io.Reader
	clsr func() error
}

func (r *rdrClsr) Close() error { return r.clsr() }

// Open returns a reader for fname.
//  "" or "-"  stdin
//  *.gz       gzip compressed
//  *.xz       xz compressed
//  otherwise  the file is mapped into memory.
// Closing the reader unmaps / closes everything.
func Open(fname string) (io.ReadCloser, error) {
	if IsStd(fname) {
		return io.NopCloser(os.Stdin), nil
	}
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	switch {
	case strings.HasSuffix(fname, ".gz"):
		gz, err := gzip.NewReader(fp)
		if err != nil {
			fp.Close()
			return nil, fmt.Errorf("%s: %w", fname, err)
		}
		return &rdrClsr{Reader: gz, clsr: func() error {
			gz.Close()
			return fp.Close()
		}}, nil
	case strings.HasSuffix(fname, ".xz"):
		xr, err := xz.NewReader(bufio.NewReader(fp))
		if err != nil {
			fp.Close()
			return nil, fmt.Errorf("%s: %w", fname, err)
		}
		return &rdrClsr{Reader: xr, clsr: fp.Close}, nil
	}
	return byMmap(fp)
}

// byMmap maps a file read-only. Zero length files cannot be mapped and
// neither can pipes, so they are just read.
func byMmap(fp *os.File) (io.ReadCloser, error) {
	fi, err := fp.Stat()
	if err != nil {
		fp.Close()
		return nil, err
	}
	if !fi.Mode().IsRegular() || fi.Size() == 0 {
		return fp, nil
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		fp.Close()
		return nil, fmt.Errorf("mapping %s: %w", fp.Name(), err)
	}
	return &rdrClsr{Reader: bytes.NewReader(mm), clsr: func() error {
		err := mm.Unmap()
		if e := fp.Close(); err == nil {
			err = e
		}
		return err
	}}, nil
}
