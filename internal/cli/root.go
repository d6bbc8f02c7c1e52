// internal/cli/root.go
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"strscan-core/textscan"
	"strscan/internal/config"
	"strscan/internal/logging"
	"strscan/internal/scanio"
	"strscan/internal/version"
	"strscan/internal/writers"
)

// app carries the per-invocation state shared by every subcommand: the
// stream endpoints (injectable for tests), the layered config, and the
// logger. Commands stay orchestration-only; scanning lives in strscan-core.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	cfgFile  string
	verbose  bool
	quiet    bool
	noHeader bool

	cfg config.Config
	log *slog.Logger
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	if cfg.Output != "" && !writers.Known(cfg.Output) {
		return fmt.Errorf("invalid output %q (want %s)", cfg.Output, writers.Formats())
	}
	if a.noHeader {
		cfg.Header = false
	}
	a.cfg = cfg
	a.log = logging.New(a.stderr, a.verbose, a.quiet)
	return nil
}

// format resolves the effective output format: explicit setting, else table
// when stdout is a terminal, else plain text.
func (a *app) format() string {
	if a.cfg.Output != "" {
		return a.cfg.Output
	}
	if f, ok := a.stdout.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return writers.FormatTable
	}
	return writers.FormatText
}

func (a *app) collect(cmd *cobra.Command, args, fastaFiles []string) ([]scanio.Seq, error) {
	return scanio.Collect(cmd.Context(), a.stdin, args, fastaFiles)
}

func write[T any](a *app, spec writers.Spec[T], items []T) error {
	return writers.Write(a.stdout, a.format(), a.cfg.Header, spec, items)
}

// NewRootCommand builds the strscan command tree against the given streams.
func NewRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:     "strscan",
		Short:   "Deterministic string and DNA sequence scanning",
		Long:    "strscan runs stateless scanning primitives (reversal, counting,\noverlapping pattern search, DNA validation, GC content) over inline text,\nstdin, or FASTA files.",
		Version: version.Version,

		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default strscan.yaml)")
	pf.StringP("output", "o", "", "output format: "+writers.Formats()+" (default: table on a terminal, text otherwise)")
	pf.IntP("threads", "t", 0, "worker threads for multi-input scans (0 = all CPUs)")
	pf.BoolVar(&a.noHeader, "no-header", false, "suppress the header line in text output")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.BoolVarP(&a.quiet, "quiet", "q", false, "log errors only")

	root.AddCommand(
		newReverseCommand(a),
		newCountCommand(a),
		newFindCommand(a),
		newValidateCommand(a),
		newGCCommand(a),
		newFreqCommand(a),
		newDedupeCommand(a),
		newPalindromeCommand(a),
		newDistanceCommand(a),
	)
	return root
}

// Execute runs the command tree and maps errors onto exit codes: 0 ok (or
// broken pipe), 2 for the single-character contract violation, 130 on
// cancellation, 1 otherwise.
func Execute(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer, argv []string) int {
	cmd := NewRootCommand(stdin, stdout, stderr)
	if argv == nil {
		argv = []string{}
	}
	cmd.SetArgs(argv)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		if writers.IsBrokenPipe(err) {
			return 0
		}
		_, _ = fmt.Fprintf(stderr, "strscan: %v\n", err)
		switch {
		case errors.Is(err, textscan.ErrNotSingleChar):
			return 2
		case errors.Is(err, context.Canceled):
			return 130
		}
		return 1
	}
	return 0
}
