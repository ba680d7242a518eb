package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/leapstack-labs/standardcheck/internal/cli/config"
	"github.com/leapstack-labs/standardcheck/internal/cli/output"
	"github.com/leapstack-labs/standardcheck/pkg/compliance"
	"github.com/leapstack-labs/standardcheck/pkg/core"
	"github.com/leapstack-labs/standardcheck/pkg/fsmeta"
	"github.com/leapstack-labs/standardcheck/pkg/standard"
	"github.com/spf13/cobra"
)

// runCheck evaluates every positional path against the selected standards.
// Standards are resolved before any path is looked at, so a bad name fails
// the whole run without output.
func runCheck(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := config.GetConfig(ctx)
	logger := config.GetLogger(ctx)
	r := GetRenderer(ctx)

	catalog, err := cfg.LoadCatalog()
	if err != nil {
		return err
	}

	standards, err := catalog.Resolve(strings.Join(cfg.Standards, ","))
	if err != nil {
		var unknown *standard.UnknownStandardError
		switch {
		case errors.As(err, &unknown):
			return &UsageError{Msg: "Invalid standard: " + unknown.Name, Err: err}
		case errors.Is(err, standard.ErrNoStandards):
			return &UsageError{Msg: "standardcheck: no standards selected", Err: err}
		}
		return err
	}

	if len(args) == 0 {
		if r.EffectiveMode() == output.ModeJSON {
			empty := &compliance.Result{Standards: standardNames(standards), Violations: []core.Violation{}}
			if err := r.JSON(empty); err != nil {
				return fmt.Errorf("writing result: %w", err)
			}
			return nil
		}
		r.Println("no input")
		return nil
	}

	engine, err := compliance.New(fsmeta.OS(),
		compliance.WithLogger(logger),
		compliance.WithExclude(cfg.Exclude...),
	)
	if err != nil {
		return fmt.Errorf("configuring exclude patterns: %w", err)
	}

	logger.Debug("checking paths", "paths", len(args), "standards", len(standards))
	result := engine.Run(args, standards, compliance.ReporterFunc(func(v core.Violation) {
		r.Violation(v, cfg.Delimiter)
	}))

	switch r.EffectiveMode() {
	case output.ModeJSON:
		if result.Violations == nil {
			result.Violations = []core.Violation{}
		}
		if err := r.JSON(result); err != nil {
			return fmt.Errorf("writing result: %w", err)
		}
	case output.ModeText, output.ModeMarkdown:
		r.Summary(output.RunSummary{
			Paths:      result.Paths,
			Skipped:    result.Skipped,
			Violations: len(result.Violations),
			Standards:  result.Standards,
		})
	}

	if result.Violated() {
		return ErrViolationsFound
	}
	return nil
}

func standardNames(standards []standard.Standard) []string {
	names := make([]string, 0, len(standards))
	for _, s := range standards {
		names = append(names, s.Name)
	}
	return names
}
