package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/leapstack-labs/standardcheck/internal/cli/config"
	"github.com/leapstack-labs/standardcheck/internal/cli/output"
	"github.com/leapstack-labs/standardcheck/pkg/standard"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Catalog  *standard.Catalog
	Renderer *output.Renderer
}

// ErrBadFormat is returned for an unknown --format value.
var ErrBadFormat = errors.New("bad format")

var formats = []string{"text", "markdown", "json"}

// NewCommandContext loads the configured catalog and builds a renderer.
// A non-empty format overrides the configured output mode.
func NewCommandContext(cmd *cobra.Command, format string) (*CommandContext, error) {
	if format != "" && !slices.Contains(formats, strings.ToLower(format)) {
		return nil, fmt.Errorf("%w %q (want %s)", ErrBadFormat, format, strings.Join(formats, "|"))
	}

	cfg := config.GetConfig(cmd.Context())
	logger := config.GetLogger(cmd.Context())

	catalog, err := cfg.LoadCatalog()
	if err != nil {
		return nil, err
	}

	mode := output.Mode(cfg.Output)
	if format != "" {
		mode = output.Mode(format)
	}
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Catalog:  catalog,
		Renderer: r,
	}, nil
}

// CompleteStandards completes standard names from the configured catalog.
func CompleteStandards(cmd *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	catalog, err := config.GetConfig(cmd.Context()).LoadCatalog()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	all := catalog.All()
	names := make([]string, 0, len(all))
	for _, s := range all {
		names = append(names, s.Name)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
