package main

import (
	"fmt"
	"log"
	"math/big"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/leapstack-labs/standardcheck/pkg/check"
	"github.com/leapstack-labs/standardcheck/pkg/core"
	"github.com/leapstack-labs/standardcheck/pkg/standard"
)

// generateStandardsDocs writes the built-in catalog and the check table.
func generateStandardsDocs(outDir string) error {
	log.Printf("Generating standards docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := writeFile(outDir, "index.md", renderCatalog(standard.Default())); err != nil {
		return err
	}
	log.Printf("  Generated index.md")

	if err := writeFile(outDir, "checks.md", renderChecks()); err != nil {
		return err
	}
	log.Printf("  Generated checks.md")
	return nil
}

func renderCatalog(cat *standard.Catalog) []byte {
	w := NewMarkdownWriter()
	w.Frontmatter("Standards", "Built-in filesystem standards")
	w.GeneratedMarker()

	w.Header(1, "Standards")
	w.Paragraph(fmt.Sprintf("The built-in catalog has %d standards. Names are matched without regard to case. "+
		"An unset limit (n/a) is not checked.", cat.Len()))

	var rows [][]string
	for _, s := range cat.All() {
		rows = append(rows, []string{
			InlineCode(s.Name),
			docLimit(s.MaxPathLength, false),
			docLimit(s.MaxComponentLength, false),
			docLimit(s.SizeLimit, true),
			docLimit(s.MaxEntries, false),
			docCharset(s.Charset),
			docAllowed(s.SymlinksAllowed),
			docAllowed(s.HardlinksAllowed),
			docAllowed(s.DuplicatesAllowed),
		})
	}
	w.Table([]string{"Name", "Path", "Component", "File size", "Entries", "Characters", "Symlinks", "Hardlinks", "Case duplicates"}, rows)
	return w.Bytes()
}

func renderChecks() []byte {
	w := NewMarkdownWriter()
	w.Frontmatter("Checks", "Rules evaluated for every path and standard")
	w.GeneratedMarker()

	w.Header(1, "Checks")
	w.Paragraph("For each path, every selected standard is checked in catalog order, " +
		"and within a standard the checks run in the order below.")

	var rows [][]string
	for _, d := range check.Defs() {
		rows = append(rows, []string{d.ID, InlineCode(d.Name), InlineCode(d.Kind.String()), cleanDescription(d.Description)})
	}
	w.Table([]string{"ID", "Check", "Reports", "Description"}, rows)

	w.Header(2, "Error Kinds")
	var kinds [][]string
	for _, k := range core.AllErrorKinds() {
		kinds = append(kinds, []string{InlineCode(k.String()), k.Name()})
	}
	w.Table([]string{"Code", "Name"}, kinds)
	return w.Bytes()
}

func docLimit(l standard.Limit, bytes bool) string {
	n, ok := l.Value()
	switch {
	case !ok:
		return "n/a"
	case bytes:
		return humanize.IBytes(n)
	default:
		return humanize.BigComma(new(big.Int).SetUint64(n))
	}
}

func docCharset(cs *standard.Charset) string {
	if cs == nil {
		return "any"
	}
	if cs.Mode == standard.Whitelist {
		return "only " + InlineCode(strconv.Quote(cs.Chars))
	}
	return "not " + InlineCode(strconv.Quote(cs.Chars))
}

func docAllowed(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
