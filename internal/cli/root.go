// Package cli provides the command-line interface for standardcheck.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/leapstack-labs/standardcheck/internal/cli/commands"
	"github.com/leapstack-labs/standardcheck/internal/cli/config"
	"github.com/leapstack-labs/standardcheck/internal/cli/output"
	"github.com/spf13/cobra"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// rendererKey is used to store renderer in context.
type rendererKey struct{}

const shortUsage = `Usage: standardcheck [OPTION]... [FILE]...
Check if files would be portable to the selected standards. Defaults to TESTING.
Try 'standardcheck --help' for more information.
`

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "standardcheck [flags] [FILE]...",
		Short: "Check file paths against filesystem portability standards",
		Long: `standardcheck reports which rules of a set of filesystem standards each
given path breaks: path and component length, forbidden characters, file
size, directory entry count, case-insensitive duplicates, and links.

Each violation is printed as KIND:STANDARD:"PATH". The exit status is 0 when
every path complies, 1 when any rule is broken and 2 on a usage error.`,
		Example: `  # Check against the built-in self-test standard
  standardcheck short.txt

  # Check several files against FAT32 and ISO 9660 level 1
  standardcheck -s FAT32,ISO_9660_1988_LEVEL1 photos/*.jpg

  # Use a tab as the field delimiter
  standardcheck -d $'\t' -s POSIX report.pdf

  # Skip temporary files
  standardcheck -x '**/*.tmp' -s NTFS $(find . -type f)`,
		Version:      Version,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		// Errors are printed by Execute so usage errors can go to stdout.
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.LoadConfig(cfgFile, cmd.Flags())
			if err != nil {
				if errors.Is(err, config.ErrBadDelimiter) {
					return &UsageError{Msg: "standardcheck: Bad delimiter", Err: err}
				}
				return err
			}

			logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)
			ctx := context.WithValue(cmd.Context(), config.ConfigKey(), cfg)
			ctx = context.WithValue(ctx, config.LoggerKey(), logger)

			renderer := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.Output))
			ctx = context.WithValue(ctx, rendererKey{}, renderer)
			cmd.SetContext(ctx)

			if configFile := config.GetConfigFileUsed(); configFile != "" {
				logger.Debug("using config file", "path", configFile)
			}
			return nil
		},
		RunE: runCheck,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Msg: "standardcheck: " + err.Error(), Err: err}
	})

	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&cfgFile, "config", "c", "", "config file (default: ./standardcheck.yaml)")
	pf.String("catalog", "", "YAML catalog replacing the built-in standards")
	pf.BoolP("verbose", "v", false, "Verbose output")
	pf.StringP("output", "o", config.DefaultOutput, "Output format ("+strings.Join(config.OutputModes(), "|")+")")

	// Check flags
	f := rootCmd.Flags()
	f.StringSliceP("standards", "s", []string{config.DefaultStandard}, "Comma separated standards to check against")
	f.StringP("delimiter", "d", config.DefaultDelimiter, "Field delimiter for plain output")
	f.StringSliceP("exclude", "x", nil, "Skip paths matching these glob patterns (** allowed)")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return config.OutputModes(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("standards", commands.CompleteStandards)

	// Add subcommands
	rootCmd.AddCommand(commands.NewVersionCommand(Version, BuildDate, GitCommit))
	rootCmd.AddCommand(commands.NewStandardsCommand())
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Execute runs the root command with the process arguments.
func Execute() error {
	return ExecuteArgs(os.Args[1:], os.Stdout, os.Stderr)
}

// ExecuteArgs runs the root command with args and reports errors the way
// the tool does: usage errors with the short usage on out, other failures
// on errOut. Violations are not an error message of their own.
func ExecuteArgs(args []string, out, errOut io.Writer) error {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	err := rootCmd.Execute()
	var usageErr *UsageError
	switch {
	case err == nil, errors.Is(err, ErrViolationsFound):
	case errors.As(err, &usageErr):
		_, _ = fmt.Fprintln(out, usageErr.Msg)
		_, _ = fmt.Fprint(out, shortUsage)
	default:
		_, _ = fmt.Fprintf(errOut, "Error: %v\n", err)
	}
	return err
}

// GetRenderer retrieves the renderer from the command context.
func GetRenderer(ctx context.Context) *output.Renderer {
	if r, ok := ctx.Value(rendererKey{}).(*output.Renderer); ok {
		return r
	}
	// Return default renderer if none in context
	return output.NewRenderer(os.Stdout, os.Stderr, output.ModeAuto)
}
