// Package cli provides the feather-cli command.
package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bjaus/feather"
	"github.com/bjaus/feather/internal/arrowtable"
	"github.com/bjaus/feather/internal/config"
	"github.com/bjaus/feather/internal/errs"
	"github.com/bjaus/feather/internal/logger"
	"github.com/bjaus/feather/internal/source"
)

// Version information (set at build time).
var Version = "0.1.3"

type options struct {
	cfgFile string
	schema  bool
	count   bool
	head    int
	tail    int
}

// NewRootCmd creates the feather-cli command.
func NewRootCmd() *cobra.Command {
	var opts options

	rootCmd := &cobra.Command{
		Use:   "feather-cli FILE",
		Short: "Inspect Feather files from the command line",
		Long: `feather-cli prints the metadata, schema, row count, or rows of a Feather
(Arrow IPC) file. FILE may be a local path or s3://bucket/key.

With no flags the metadata is printed. When several flags are given the first
of --schema, --count, --head, --tail wins.`,
		Version:       Version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], opts)
		},
	}

	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	flags := rootCmd.Flags()
	flags.BoolVar(&opts.schema, "schema", false, "Show schema information")
	flags.BoolVar(&opts.count, "count", false, "Show record count")
	flags.IntVar(&opts.head, "head", 0, "Show first N records")
	flags.IntVar(&opts.tail, "tail", 0, "Show last N records")
	flags.String("format", config.DefaultFormat, "Output format for --head/--tail (table|markdown|csv|tsv|json|jsonl|yaml|html|go-template=...)")
	flags.String("border", config.DefaultBorder, "Table border style (ascii|rounded|heavy|double|none)")
	flags.Int("max-width", 0, "Maximum table column width, 0 for no limit")
	flags.StringVar(&opts.cfgFile, "config", "", "config file (default: ./feather-cli.yaml)")
	flags.String("log-level", config.DefaultLogLevel, "Log level (debug|info|warn|error|disabled)")

	_ = rootCmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		var names []string
		for _, f := range feather.Formats() {
			names = append(names, f.String())
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("border", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return feather.Borders(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("log-level", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return logger.Levels(), cobra.ShellCompDirectiveNoFileComp
	})

	return rootCmd
}

// Execute runs feather-cli with args and returns the process exit code.
// Output goes to stdout only when the whole action succeeds; every error is
// one line on stderr.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, errorLine(err))
		return 1
	}
	return 0
}

// action is what a single invocation prints.
type action int

const (
	actionMetadata action = iota
	actionSchema
	actionCount
	actionHead
	actionTail
)

func (a action) String() string {
	switch a {
	case actionSchema:
		return "schema"
	case actionCount:
		return "count"
	case actionHead:
		return "head"
	case actionTail:
		return "tail"
	default:
		return "metadata"
	}
}

// failurePrefix scopes a read failure to the action that hit it.
func (a action) failurePrefix() string {
	switch a {
	case actionSchema:
		return "Error reading schema"
	case actionCount:
		return "Error counting records"
	case actionHead, actionTail:
		return "Error displaying data"
	default:
		return "Error reading metadata"
	}
}

// pickAction applies the flag priority: schema, count, head, tail, metadata.
// --head and --tail count as given when set on the command line, even to 0.
func pickAction(flags *pflag.FlagSet, opts options) action {
	switch {
	case opts.schema:
		return actionSchema
	case opts.count:
		return actionCount
	case flags.Changed("head"):
		return actionHead
	case flags.Changed("tail"):
		return actionTail
	default:
		return actionMetadata
	}
}

// failure is an error from running an action against a file.
type failure struct {
	action action
	path   string
	err    error
}

func (f *failure) Error() string {
	switch {
	case errs.IsFileNotFound(f.err):
		return fmt.Sprintf("Error: File '%s' not found", f.path)
	case errs.IsUsage(f.err):
		return "Error: " + f.err.Error()
	default:
		return fmt.Sprintf("%s: %v", f.action.failurePrefix(), f.err)
	}
}

func (f *failure) Unwrap() error { return f.err }

func errorLine(err error) string {
	var f *failure
	if errors.As(err, &f) {
		return f.Error()
	}
	return "Error: " + err.Error()
}

func run(cmd *cobra.Command, path string, opts options) error {
	cfg, err := config.Load(opts.cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	log := logger.New(&logger.Config{
		Level:  cfg.LogLevel,
		Format: "console",
		Output: cmd.ErrOrStderr(),
	}).With().Str("path", path).Logger()
	ctx := log.WithContext(cmd.Context())

	act := pickAction(cmd.Flags(), opts)
	n := 0
	switch act {
	case actionHead:
		n = opts.head
	case actionTail:
		n = opts.tail
	}
	if n < 0 {
		return errs.Newf(errs.ErrKindUsage, "--%s must be non-negative, got %d", act, n)
	}

	log.Debug().
		Str("action", act.String()).
		Str("config", cfg.File).
		Msg("running")

	out, err := render(ctx, path, act, n, cfg)
	if err != nil {
		return &failure{action: act, path: path, err: err}
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

// render produces the complete output of act so nothing is printed when a
// later step fails.
func render(ctx context.Context, path string, act action, n int, cfg *config.Config) ([]byte, error) {
	blob, err := source.Open(ctx, path, source.S3Config{
		Endpoint:  cfg.S3Endpoint,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		Region:    cfg.S3Region,
		UseSSL:    cfg.S3UseSSL,
	})
	if err != nil {
		return nil, err
	}
	defer blob.Close()

	tbl, err := arrowtable.Open(ctx, blob)
	if err != nil {
		return nil, err
	}
	defer tbl.Close()

	var buf bytes.Buffer
	switch act {
	case actionSchema:
		err = feather.WriteSchema(&buf, tbl.Schema())
	case actionCount:
		err = feather.WriteCount(&buf, tbl.RowCount())
	case actionHead:
		err = display(ctx, &buf, tbl, n, feather.Head, cfg)
	case actionTail:
		err = display(ctx, &buf, tbl, n, feather.Tail, cfg)
	default:
		err = feather.WriteMetadata(&buf, tbl.Schema(), tbl.RowCount())
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func display(ctx context.Context, w io.Writer, tbl *arrowtable.Table, n int, mode feather.Mode, cfg *config.Config) error {
	s, err := feather.Select(n, tbl.RowCount(), mode)
	if err != nil {
		return errs.Wrap(errs.ErrKindUsage, "invalid row count", err)
	}
	fr, err := tbl.Frame(s)
	if err != nil {
		return err
	}
	fr.Border = cfg.BorderStyle()
	if cfg.MaxWidth > 0 {
		fr.MaxWidths = slices.Repeat([]int{cfg.MaxWidth}, len(fr.Header))
	}

	logger.FromContext(ctx).Debug().
		Str("mode", mode.String()).
		Int("offset", s.Offset).
		Int("length", s.Length).
		Str("format", cfg.Format).
		Msg("rendering rows")

	return feather.Write(w, cfg.OutputFormat(), fr)
}
