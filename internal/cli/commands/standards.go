package commands

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/leapstack-labs/standardcheck/internal/cli/output"
	"github.com/leapstack-labs/standardcheck/pkg/check"
	"github.com/leapstack-labs/standardcheck/pkg/core"
	"github.com/leapstack-labs/standardcheck/pkg/standard"
	"github.com/spf13/cobra"
)

// StandardsOptions holds options for the standards command.
type StandardsOptions struct {
	Format string // Output format
	Kind   string // Only standards that can report this error kind
}

// NewStandardsCommand creates the standards command.
func NewStandardsCommand() *cobra.Command {
	opts := &StandardsOptions{}
	cmd := &cobra.Command{
		Use:   "standards [name]",
		Short: "List the standards in the catalog",
		Long: `List every standard in the catalog with its limits, or show the
rules a single standard enforces.

An unset limit is shown as n/a and is not checked. An explicit limit of 0
is checked like any other value.`,
		Example: `  # List all standards
  standardcheck standards

  # Show what FAT32 checks
  standardcheck standards fat32

  # Which standards forbid symlinks?
  standardcheck standards --kind ERR_SYMLINK

  # List standards from a custom catalog as JSON
  standardcheck standards --catalog site.yaml --format json`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeStandardArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := NewCommandContext(cmd, opts.Format)
			if err != nil {
				return err
			}
			if len(args) > 0 {
				return showStandard(cmdCtx, args[0])
			}
			return listStandards(cmdCtx, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")
	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return formats, cobra.ShellCompDirectiveNoFileComp
	})
	cmd.Flags().StringVarP(&opts.Kind, "kind", "k", "", "Only standards that can report this error kind")
	_ = cmd.RegisterFlagCompletionFunc("kind", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return kindCodes(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func completeStandardArg(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return CompleteStandards(cmd, args, toComplete)
}

// StandardsJSONOutput is the JSON output structure for the catalog listing.
type StandardsJSONOutput struct {
	Standards []standard.Standard `json:"standards"`
	Count     int                 `json:"count"`
}

// CheckJSON describes one configured check of a standard.
type CheckJSON struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Group       string `json:"group"`
	Kind        string `json:"kind"`
	Description string `json:"description"`
}

// StandardJSONOutput is the JSON output structure for a single standard.
type StandardJSONOutput struct {
	Standard standard.Standard `json:"standard"`
	Checks   []CheckJSON       `json:"checks"`
}

var tableHeader = []string{"Name", "Characters", "Max size", "Max entries", "Max name", "Max path", "Dupes", "Symlinks", "Hardlinks"}

func listStandards(c *CommandContext, opts *StandardsOptions) error {
	r := c.Renderer
	all := c.Catalog.All()
	if opts.Kind != "" {
		kind, ok := core.ParseErrorKind(opts.Kind)
		if !ok {
			return fmt.Errorf("unknown error kind %q (want one of %s)", opts.Kind, strings.Join(kindCodes(), ", "))
		}
		all = filterByKind(all, kind)
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(StandardsJSONOutput{Standards: all, Count: len(all)})
	case output.ModeMarkdown:
		r.Println("# Standards")
		r.Println("")
		r.Table(tableHeader, standardRows(all))
		r.Println("")
		return nil
	default:
		r.Table(tableHeader, standardRows(all))
		r.Println(r.Styles().Muted.Render(fmt.Sprintf("%d standards. Use 'standardcheck standards <name>' for details.", len(all))))
		return nil
	}
}

// filterByKind keeps the standards with a configured check reporting kind.
func filterByKind(all []standard.Standard, kind core.ErrorKind) []standard.Standard {
	var out []standard.Standard
	for _, s := range all {
		for _, d := range check.ConfiguredFor(s) {
			if d.Kind == kind {
				out = append(out, s)
				break
			}
		}
	}
	return out
}

func kindCodes() []string {
	kinds := core.AllErrorKinds()
	codes := make([]string, 0, len(kinds))
	for _, k := range kinds {
		codes = append(codes, k.String())
	}
	return codes
}

func standardRows(all []standard.Standard) [][]string {
	rows := make([][]string, 0, len(all))
	for _, s := range all {
		rows = append(rows, []string{
			s.Name,
			truncate(charsetLabel(s.Charset), 24),
			sizeLabel(s.SizeLimit),
			countLabel(s.MaxEntries),
			countLabel(s.MaxComponentLength),
			countLabel(s.MaxPathLength),
			yesNo(s.DuplicatesAllowed),
			yesNo(s.SymlinksAllowed),
			yesNo(s.HardlinksAllowed),
		})
	}
	return rows
}

func showStandard(c *CommandContext, name string) error {
	r := c.Renderer
	s, err := c.Catalog.Lookup(name)
	if err != nil {
		return err
	}
	checks := check.ConfiguredFor(s)

	switch r.EffectiveMode() {
	case output.ModeJSON:
		out := StandardJSONOutput{Standard: s, Checks: make([]CheckJSON, 0, len(checks))}
		for _, d := range checks {
			out.Checks = append(out.Checks, CheckJSON{
				ID:          d.ID,
				Name:        d.Name,
				Group:       d.Group,
				Kind:        d.Kind.String(),
				Description: d.Description,
			})
		}
		return r.JSON(out)
	case output.ModeMarkdown:
		return showStandardMarkdown(r, s, checks)
	default:
		return showStandardText(r, s, checks)
	}
}

func showStandardText(r *output.Renderer, s standard.Standard, checks []check.Def) error {
	styles := r.Styles()

	r.Println(styles.Header1.Render(s.Name))
	r.Println("")
	r.Printf("  %s: %s\n", styles.Bold.Render("Characters"), charsetLabel(s.Charset))
	r.Printf("  %s: %s\n", styles.Bold.Render("Max size"), sizeLabel(s.SizeLimit))
	r.Printf("  %s: %s\n", styles.Bold.Render("Max entries"), countLabel(s.MaxEntries))
	r.Printf("  %s: %s\n", styles.Bold.Render("Max name length"), countLabel(s.MaxComponentLength))
	r.Printf("  %s: %s\n", styles.Bold.Render("Max path length"), countLabel(s.MaxPathLength))
	r.Printf("  %s: %s\n", styles.Bold.Render("Case duplicates"), allowed(s.DuplicatesAllowed))
	r.Printf("  %s: %s\n", styles.Bold.Render("Symlinks"), allowed(s.SymlinksAllowed))
	r.Printf("  %s: %s\n", styles.Bold.Render("Hard links"), allowed(s.HardlinksAllowed))
	r.Println("")

	r.Println(styles.Header2.Render("Checks"))
	if len(checks) == 0 {
		r.Println(styles.Muted.Render("  none, every path complies"))
		return nil
	}
	for _, d := range checks {
		r.Printf("  %s  %s  %s\n",
			styles.Muted.Render(d.ID),
			styles.Code.Render(d.Kind.String()),
			d.Description,
		)
	}
	return nil
}

func showStandardMarkdown(r *output.Renderer, s standard.Standard, checks []check.Def) error {
	r.Printf("# %s\n\n", s.Name)
	r.Printf("- **Characters:** %s\n", charsetLabel(s.Charset))
	r.Printf("- **Max size:** %s\n", sizeLabel(s.SizeLimit))
	r.Printf("- **Max entries:** %s\n", countLabel(s.MaxEntries))
	r.Printf("- **Max name length:** %s\n", countLabel(s.MaxComponentLength))
	r.Printf("- **Max path length:** %s\n", countLabel(s.MaxPathLength))
	r.Printf("- **Case duplicates:** %s\n", allowed(s.DuplicatesAllowed))
	r.Printf("- **Symlinks:** %s\n", allowed(s.SymlinksAllowed))
	r.Printf("- **Hard links:** %s\n", allowed(s.HardlinksAllowed))
	r.Println("")
	r.Println("## Checks")
	r.Println("")
	for _, d := range checks {
		r.Printf("- **%s** `%s` - %s\n", d.ID, d.Kind.String(), d.Description)
	}
	r.Println("")
	return nil
}

// Helper functions

func charsetLabel(cs *standard.Charset) string {
	if cs == nil {
		return "any"
	}
	verb := "deny"
	if cs.Mode == standard.Whitelist {
		verb = "only"
	}
	return verb + " " + strconv.Quote(cs.Chars)
}

func sizeLabel(l standard.Limit) string {
	n, ok := l.Value()
	if !ok {
		return l.String()
	}
	return humanize.IBytes(n)
}

func countLabel(l standard.Limit) string {
	n, ok := l.Value()
	if !ok {
		return l.String()
	}
	return humanize.BigComma(new(big.Int).SetUint64(n))
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func allowed(b bool) string {
	if b {
		return "allowed"
	}
	return "not allowed"
}

func truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:maxLen-3])) + "..."
}
