package cliconfig

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mod     func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"stdout", func(c *Config) { c.OutFname = "-" }, ""},
		{"no input", func(c *Config) { c.InFname = "" }, "input"},
		{"no output", func(c *Config) { c.OutFname = "" }, "output"},
		{"overwrite", func(c *Config) { c.OutFname = "./" + c.InFname }, "overwrite"},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, "log level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mod(&cfg)
			err := cfg.Validate()
			switch {
			case tt.wantErr == "" && err != nil:
				t.Fatal("unexpected error:", err)
			case tt.wantErr != "" && (err == nil || !strings.Contains(err.Error(), tt.wantErr)):
				t.Fatalf("want error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"":      zerolog.WarnLevel,
		"debug": zerolog.DebugLevel,
		"info":  zerolog.InfoLevel,
		"nope":  zerolog.WarnLevel,
	}
	for s, want := range cases {
		c := Config{LogLevel: s}
		if got := c.Level(); got != want {
			t.Errorf("%q: got %v want %v", s, got, want)
		}
	}
	for vbsty, want := range map[int]string{0: "warn", 1: "info", 2: "debug", 5: "debug"} {
		if got := VbstyLevel(vbsty); got != want {
			t.Errorf("vbsty %d: got %s want %s", vbsty, got, want)
		}
	}
}

func TestLoadFileConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `input = "/data/C-RVDBv26.0.fasta.xz"
output = "acc26.txt"
strict = true
keep_seq = false
log_level = "info"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	fc, err := LoadFileConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	trueVal, falseVal := true, false
	want := FileConfig{
		Input:    "/data/C-RVDBv26.0.fasta.xz",
		Output:   "acc26.txt",
		Strict:   &trueVal,
		KeepSeq:  &falseVal,
		LogLevel: "info",
	}
	if diff := cmp.Diff(want, fc); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}

	if !FileExists(path) || FileExists(dir) || FileExists(filepath.Join(dir, "nope")) {
		t.Error("FileExists confused")
	}
}

func TestLoadFileConfigBroken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	os.WriteFile(path, []byte("input = \n"), 0o600)
	if _, err := LoadFileConfig(path); err == nil {
		t.Fatal("broken toml accepted")
	}
	if _, err := LoadFileConfig(path + ".missing"); err == nil {
		t.Fatal("missing file accepted")
	}
}

func TestApplyFileConfig(t *testing.T) {
	trueVal := true
	fc := FileConfig{Input: "in.fa", Output: "out.txt", Strict: &trueVal, Sum: &trueVal}
	tests := []struct {
		name    string
		changed map[string]bool
		want    Config
	}{
		{
			name:    "file wins over defaults",
			changed: map[string]bool{},
			want: Config{InFname: "in.fa", OutFname: "out.txt", Strict: true, SumFile: true,
				LogLevel: "warn"},
		},
		{
			name:    "respects changed flags",
			changed: map[string]bool{"input": true, "strict": true},
			want: Config{InFname: DefaultInFname, OutFname: "out.txt", SumFile: true,
				LogLevel: "warn"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			ApplyFileConfig(&cfg, fc, tt.changed)
			if diff := cmp.Diff(tt.want, cfg); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestApplyEnvConfig(t *testing.T) {
	t.Setenv("RVDBACC_INPUT", "env.fa")
	t.Setenv("RVDBACC_OUTPUT", "env.txt")
	t.Setenv("RVDBACC_STRICT", "yes") // does not parse, ignored
	t.Setenv("RVDBACC_LOG_LEVEL", "debug")

	cfg := DefaultConfig()
	ApplyEnvConfig(&cfg, map[string]bool{"output": true})
	want := Config{InFname: "env.fa", OutFname: DefaultOutFname, LogLevel: "debug"}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	t.Setenv("RVDBACC_STRICT", "true")
	ApplyEnvConfig(&cfg, nil)
	if !cfg.Strict {
		t.Error("RVDBACC_STRICT=true ignored")
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, zerolog.InfoLevel)
	log.Debug().Msg("hidden")
	log.Info().Int("n_record", 3).Msg("shown")
	s := buf.String()
	if strings.Contains(s, "hidden") || !strings.Contains(s, "shown") || !strings.Contains(s, "n_record") {
		t.Fatalf("logger output %q", s)
	}
}

// TestLoggerNoColor writes to a buffer and a plain file, neither is a
// terminal.
func TestLoggerNoColor(t *testing.T) {
	var buf bytes.Buffer
	bufLog := NewLogger(&buf, zerolog.InfoLevel)
	bufLog.Warn().Str("input", "x.fa").Msg("no sequences found")
	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("escape codes in %q", buf.String())
	}

	fname := filepath.Join(t.TempDir(), "log")
	f, err := os.Create(fname)
	if err != nil {
		t.Fatal(err)
	}
	fileLog := NewLogger(f, zerolog.InfoLevel)
	fileLog.Error().Msg("broken")
	f.Close()
	b, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "broken") || strings.Contains(string(b), "\x1b[") {
		t.Errorf("log file holds %q", b)
	}
}
