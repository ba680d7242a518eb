package output

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/leapstack-labs/standardcheck/pkg/core"
)

// FormatViolation renders one violation in the line protocol:
// KIND<d>STANDARD<d>"PATH". The path is quoted verbatim, without escaping.
func FormatViolation(v core.Violation, delim string) string {
	var b strings.Builder
	b.WriteString(v.Kind.String())
	b.WriteString(delim)
	b.WriteString(v.Standard)
	b.WriteString(delim)
	b.WriteByte('"')
	b.WriteString(v.Path)
	b.WriteByte('"')
	return b.String()
}

// Violation writes v as soon as it is found. Plain mode uses the line
// protocol, text mode a styled row, markdown a table row under a header
// written before the first one. JSON output is written once at the end
// by the caller, so nothing is streamed for it.
func (r *Renderer) Violation(v core.Violation, delim string) {
	switch r.EffectiveMode() {
	case ModeJSON:
		return
	case ModeMarkdown:
		if r.rows == 0 {
			r.Println("| Kind | Standard | Path |")
			r.Println("| --- | --- | --- |")
		}
		r.rows++
		r.Println("| `" + v.Kind.String() + "` | " + markdownCell(v.Standard) + " | " + markdownCode(v.Path) + " |")
	case ModeText:
		s := r.styles
		std := s.Standard.Render(v.Standard)
		if v.IsSystem() {
			std = s.Muted.Width(16).Render(v.Standard)
		}
		r.Println(s.Kind.Render(v.Kind.String()) + " " + std + " " + s.Path.Render(v.Path))
	default:
		r.Println(FormatViolation(v, delim))
	}
}

// RunSummary describes a finished run for the text summary line.
type RunSummary struct {
	Paths      int
	Skipped    int
	Violations int
	Standards  []string
}

// Summary writes a one line summary after a text or markdown run. Other
// modes rely on the exit status and print nothing.
func (r *Renderer) Summary(s RunSummary) {
	mode := r.EffectiveMode()
	if mode != ModeText && mode != ModeMarkdown {
		return
	}
	checked := english.Plural(s.Paths, "path", "") + " against " + strings.Join(s.Standards, ", ")
	if s.Skipped > 0 {
		checked += " (" + humanize.Comma(int64(s.Skipped)) + " excluded)"
	}
	if mode == ModeMarkdown {
		if r.rows > 0 {
			r.Println("")
		}
		if s.Violations == 0 {
			r.Println("**" + markdownCell(checked) + ":** no violations")
		} else {
			r.Println("**" + markdownCell(checked) + ":** " + english.Plural(s.Violations, "violation", ""))
		}
		return
	}
	styles := r.styles
	if s.Violations == 0 {
		r.Println(styles.Success.Render("✓ " + checked + ": no violations"))
		return
	}
	r.Println(styles.Error.Render("✗ " + checked + ": " + english.Plural(s.Violations, "violation", "")))
}

func markdownCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// markdownCode renders s as inline code inside a table cell.
func markdownCode(s string) string {
	s = markdownCell(s)
	if strings.Contains(s, "`") {
		return "`` " + s + " ``"
	}
	return "`" + s + "`"
}
