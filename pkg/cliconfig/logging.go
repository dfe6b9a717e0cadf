package cliconfig

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// NewLogger is a console logger on w. Colour only goes to a terminal, so
// logs sent to a file or a pipe stay free of escape codes.
func NewLogger(w io.Writer, lvl zerolog.Level) zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: !isTerm(w)}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

func isTerm(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
