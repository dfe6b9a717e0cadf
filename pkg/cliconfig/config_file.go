package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig is the TOML version of Config. Pointers let us tell
// "false" from "not set".
type FileConfig struct {
	Input    string `toml:"input"`
	Output   string `toml:"output"`
	Strict   *bool  `toml:"strict"`
	Sum      *bool  `toml:"sum"`
	KeepSeq  *bool  `toml:"keep_seq"`
	LogLevel string `toml:"log_level"`
}

// LoadFileConfig reads and parses a TOML config file.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.rvdbacc/config.toml, or "" if there is no
// home directory.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".rvdbacc", "config.toml")
	}
	return ""
}

// FileExists checks if a regular file exists at the path
func FileExists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}

// ApplyFileConfig copies values from the file into cfg, except for
// the ones whose flag is in changed.
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) {
	s := newConfigSetter(changed)
	s.setString("input", fc.Input, &cfg.InFname)
	s.setString("output", fc.Output, &cfg.OutFname)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setBool("strict", fc.Strict, &cfg.Strict)
	s.setBool("sum", fc.Sum, &cfg.SumFile)
	s.setBool("keep-seq", fc.KeepSeq, &cfg.KeepSeq)
}

// configSetter only sets a value if it is there and the flag was not
// given on the command line.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) configSetter {
	return configSetter{changed: changed}
}

func (s configSetter) setString(flag, v string, dst *string) {
	if v != "" && !s.changed[flag] {
		*dst = v
	}
}

func (s configSetter) setBool(flag string, v *bool, dst *bool) {
	if v != nil && !s.changed[flag] {
		*dst = *v
	}
}
