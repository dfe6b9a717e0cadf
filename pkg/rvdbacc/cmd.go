package rvdbacc

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/andrew-torda/rvdbacc/pkg/cliconfig"
	. "github.com/andrew-torda/rvdbacc/pkg/seq/common"
)

const example = `  rvdbacc -i C-RVDBv23.0.fasta -o virus_accession_numbers_C-RVDBv23.0.txt
  rvdbacc check --strict -i C-RVDBv26.0.fasta.xz
  rvdbacc extract -i C-RVDBv26.0.fasta.gz -o - | head`

// errUsage marks errors that come from a bad command line.
var errUsage = errors.New("usage")

// newRootCmd builds the command tree. Output and logs go to stdout and
// stderr so tests can catch them.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string
	var vbsty int
	var runner Runner

	setup := func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 {
			return fmt.Errorf("%w: unexpected arguments %v", errUsage, args)
		}
		changed := map[string]bool{}
		cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

		cfgFile := cfgPath
		if cfgFile == "" {
			cfgFile = cliconfig.DefaultConfigPath()
		}
		if cfgFile != "" && cliconfig.FileExists(cfgFile) {
			fc, err := cliconfig.LoadFileConfig(cfgFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			cliconfig.ApplyFileConfig(&cfg, fc, changed)
		} else if cfgPath != "" {
			return fmt.Errorf("%w: config file %s not found", errUsage, cfgPath)
		}
		cliconfig.ApplyEnvConfig(&cfg, changed)
		if changed["verbose"] && !changed["log-level"] {
			cfg.LogLevel = cliconfig.VbstyLevel(vbsty)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}

		runner = Runner{Cfg: cfg, Log: cliconfig.NewLogger(stderr, cfg.Level()), Out: stdout}
		if IsStd(cfg.OutFname) {
			runner.Out = stderr // keep the summary out of the data
		}
		runner.Log.Debug().Interface("config", cfg).Msg("configuration")
		cmd.Root().SilenceUsage = true
		return nil
	}

	root := &cobra.Command{
		Use:   "rvdbacc",
		Short: "Check and extract accession numbers from an RVDB fasta archive",
		Long: `rvdbacc reads a Reference Viral Database fasta file twice. The first pass
checks that the third "|" field of every identifier looks like an accession
and that no accession repeats. The second pass writes "database|accession"
lines, one per record, in input order.`,
		Example:           example,
		PersistentPreRunE: setup,
		SilenceErrors:     true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, err := runner.Run()
			return err
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVarP(&cfg.InFname, "input", "i", cfg.InFname, "fasta input, - for stdin, .gz and .xz are decompressed")
	pf.StringVarP(&cfg.OutFname, "output", "o", cfg.OutFname, "output, - for stdout")
	pf.StringVar(&cfgPath, "config", "", "TOML config file (default $HOME/.rvdbacc/config.toml)")
	pf.BoolVar(&cfg.Strict, "strict", cfg.Strict, "fail if accessions are bad or repeated")
	pf.BoolVar(&cfg.SumFile, "sum", cfg.SumFile, "write a BLAKE3 digest of the output to <output>.b3")
	pf.BoolVar(&cfg.KeepSeq, "keep-seq", cfg.KeepSeq, "keep sequences in memory while reading")
	pf.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	pf.CountVarP(&vbsty, "verbose", "v", "more logging, repeat for more")

	root.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Only check accessions and print the tallies",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := runner.Check()
			if err != nil {
				return err
			}
			runner.WriteSummary(st)
			if runner.Cfg.Strict && !st.Clean() {
				return fmt.Errorf("%w: %d bad, %d repeated", ErrNotClean, st.NBad, st.NDup())
			}
			return nil
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "extract",
		Short: "Only write the database|accession lines",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := runner.Extract()
			return err
		},
	})
	return root
}

// Mymain runs the command line in args (without the program name) and
// returns an exit code.
func Mymain(args []string, stdout, stderr io.Writer) int {
	ignorePipe()
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	err := root.Execute()
	if err == nil {
		return ExitSuccess
	}
	log := cliconfig.NewLogger(stderr, zerolog.ErrorLevel)
	log.Error().Err(err).Msg("rvdbacc")
	if errors.Is(err, errUsage) || !root.SilenceUsage {
		return ExitUsageError
	}
	return ExitFailure
}
