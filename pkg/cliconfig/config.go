// 14 Oct 2026

package cliconfig

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"
)

// The names the original archive and report had.
const (
	DefaultInFname  = "C-RVDBv23.0.fasta"
	DefaultOutFname = "virus_accession_numbers_C-RVDBv23.0.txt"
)

// Config is everything rvdbacc needs to know.
type Config struct {
	InFname  string
	OutFname string
	Strict   bool // stop if accessions are bad or repeated
	SumFile  bool // write a .b3 digest next to the output
	KeepSeq  bool // keep sequences when reading. We never need them.
	LogLevel string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		InFname:  DefaultInFname,
		OutFname: DefaultOutFname,
		LogLevel: zerolog.LevelWarnValue,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.InFname == "" {
		return errors.New("input file name is empty")
	}
	if c.OutFname == "" {
		return errors.New("output file name is empty")
	}
	if c.OutFname != "-" && filepath.Clean(c.OutFname) == filepath.Clean(c.InFname) {
		return fmt.Errorf("output %s would overwrite the input", c.OutFname)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

// Level turns LogLevel into a zerolog level. Validate should have been
// called first.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.WarnLevel
	}
	return lvl
}

// VbstyLevel maps a count of -v flags to a log level name.
func VbstyLevel(vbsty int) string {
	switch {
	case vbsty <= 0:
		return zerolog.LevelWarnValue
	case vbsty == 1:
		return zerolog.LevelInfoValue
	default:
		return zerolog.LevelDebugValue
	}
}
