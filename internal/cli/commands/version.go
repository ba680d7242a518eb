package commands

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/leapstack-labs/standardcheck/pkg/standard"
	"github.com/spf13/cobra"
)

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Standards int    `json:"builtin_standards"`
}

// NewVersionCommand creates the version command.
func NewVersionCommand(version, buildDate, commit string) *cobra.Command {
	var short, asJSON bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Print the standardcheck version, the commit and date it was built from, and the size of the built-in catalog.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := BuildInfo{
				Version:   version,
				Commit:    commit,
				BuildDate: buildDate,
				GoVersion: runtime.Version(),
				Standards: standard.Default().Len(),
			}
			out := cmd.OutOrStdout()
			switch {
			case asJSON:
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			case short:
				_, err := fmt.Fprintln(out, info.Version)
				return err
			}
			_, err := fmt.Fprintf(out, "standardcheck v%s\ncommit %s, built %s with %s\n%d built-in standards\n",
				info.Version, info.Commit, info.BuildDate, info.GoVersion, info.Standards)
			return err
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "Print only the version number")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print build information as JSON")
	cmd.MarkFlagsMutuallyExclusive("short", "json")
	return cmd
}
