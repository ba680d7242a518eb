package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/standardcheck/internal/cli"
	"github.com/leapstack-labs/standardcheck/internal/cli/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// generateCLIDocs writes index.md for the root command plus one page per
// visible subcommand.
func generateCLIDocs(outDir string) error {
	log.Printf("Generating CLI docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	rootCmd := cli.NewRootCmd()

	if err := writeFile(outDir, "index.md", renderCLIIndex(rootCmd)); err != nil {
		return err
	}
	log.Printf("  Generated index.md")

	for _, cmd := range visibleCommands(rootCmd) {
		if err := writeFile(outDir, cmd.Name()+".md", renderCommandPage(cmd)); err != nil {
			return err
		}
		log.Printf("  Generated %s.md", cmd.Name())
	}
	return nil
}

func visibleCommands(root *cobra.Command) []*cobra.Command {
	var out []*cobra.Command
	for _, cmd := range root.Commands() {
		if cmd.Hidden || cmd.Name() == "help" || cmd.Name() == "__complete" {
			continue
		}
		out = append(out, cmd)
	}
	return out
}

func renderCLIIndex(rootCmd *cobra.Command) []byte {
	w := NewMarkdownWriter()
	w.Frontmatter("CLI Reference", "Command-line interface reference for standardcheck")
	w.GeneratedMarker()

	w.Header(1, "CLI Reference")
	w.Paragraph(rootCmd.Long)

	w.Header(2, "Installation")
	w.CodeBlock("bash", "go install github.com/leapstack-labs/standardcheck/cmd/standardcheck@latest")

	w.Header(2, "Usage")
	w.CodeBlock("bash", "standardcheck [-s STANDARDS] [-d DELIM] [-x PATTERN]... PATH...")

	w.Header(2, "Commands")
	var rows [][]string
	for _, cmd := range visibleCommands(rootCmd) {
		link := fmt.Sprintf("[%s](/cli/%s)", InlineCode(cmd.Name()), cmd.Name())
		rows = append(rows, []string{link, cleanDescription(cmd.Short)})
	}
	w.Table([]string{"Command", "Description"}, rows)

	w.Header(2, "Check Options")
	writeFlagsTable(w, rootCmd.LocalNonPersistentFlags())

	w.Header(2, "Global Options")
	w.Paragraph("These flags are available for all commands:")
	writeFlagsTable(w, rootCmd.PersistentFlags())

	w.Header(2, "Configuration")
	w.Paragraph(fmt.Sprintf("Settings are read from %s, searched upward from the working directory, "+
		"then from %s-prefixed environment variables, then from flags. Later sources win.",
		InlineCode(config.ConfigFileNames[0]), InlineCode(config.EnvPrefix)))
	w.Table([]string{"Variable", "Description"}, [][]string{
		{InlineCode(config.EnvPrefix + "STANDARDS"), "Comma-separated standards"},
		{InlineCode(config.EnvPrefix + "DELIMITER"), "Field delimiter for plain output"},
		{InlineCode(config.EnvPrefix + "EXCLUDE"), "Comma-separated exclude patterns"},
		{InlineCode(config.EnvPrefix + "CATALOG"), "Path to a catalog YAML file"},
		{InlineCode(config.EnvPrefix + "OUTPUT"), "Output mode"},
		{InlineCode(config.EnvPrefix + "VERBOSE"), "Debug logging on stderr"},
	})

	w.Header(2, "Output")
	w.Paragraph("In plain mode every violation is one line on stdout:")
	w.CodeBlock("text", `ERR_PATHLEN:TESTING:"some/long/path"`)
	w.Paragraph("The path is quoted but not escaped. Diagnostics go to stderr.")

	w.Header(2, "Exit Codes")
	w.Table([]string{"Code", "Meaning"}, [][]string{
		{InlineCode(fmt.Sprint(cli.ExitOK)), "No violations, or no input paths"},
		{InlineCode(fmt.Sprint(cli.ExitViolations)), "At least one violation was reported"},
		{InlineCode(fmt.Sprint(cli.ExitUsage)), "Bad arguments, configuration, or catalog"},
	})

	return w.Bytes()
}

func renderCommandPage(cmd *cobra.Command) []byte {
	w := NewMarkdownWriter()
	w.Frontmatter(cmd.Name(), cmd.Short)
	w.GeneratedMarker()

	w.Header(1, cmd.Name())
	if cmd.Long != "" {
		w.Paragraph(cmd.Long)
	} else {
		w.Paragraph(cmd.Short)
	}

	w.Header(2, "Usage")
	w.CodeBlock("bash", cmd.UseLine())

	if cmd.HasLocalFlags() {
		w.Header(2, "Options")
		writeFlagsTable(w, cmd.LocalFlags())
	}
	if cmd.HasInheritedFlags() {
		w.Header(2, "Global Options")
		writeFlagsTable(w, cmd.InheritedFlags())
	}

	if cmd.Example != "" {
		w.Header(2, "Examples")
		w.CodeBlock("bash", cleanExample(cmd.Example))
	}
	return w.Bytes()
}

func writeFlagsTable(w *MarkdownWriter, flags *pflag.FlagSet) {
	var rows [][]string
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Hidden || f.Name == "help" {
			return
		}
		short := ""
		if f.Shorthand != "" {
			short = "-" + f.Shorthand
		}
		def := f.DefValue
		if def != "" && def != "[]" && def != "false" && def != "true" {
			def = InlineCode(def)
		}
		rows = append(rows, []string{InlineCode("--" + f.Name), short, def, cleanDescription(f.Usage)})
	})
	w.Table([]string{"Option", "Short", "Default", "Description"}, rows)
}

// cleanExample strips the indentation shared by all non-blank lines.
func cleanExample(example string) string {
	lines := strings.Split(example, "\n")
	indent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		n := len(line) - len(strings.TrimLeft(line, " \t"))
		if indent < 0 || n < indent {
			indent = n
		}
	}
	if indent <= 0 {
		return strings.TrimSpace(example)
	}
	for i, line := range lines {
		if len(line) >= indent {
			lines[i] = line[indent:]
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func writeFile(dir, name string, data []byte) error {
	if err := os.WriteFile(filepath.Join(dir, name), data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}
