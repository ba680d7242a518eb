package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles holds the lipgloss styles used by commands.
type Styles struct {
	Header1 lipgloss.Style
	Header2 lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Code    lipgloss.Style

	// Kind and Standard style the columns of a violation line.
	Kind     lipgloss.Style
	Standard lipgloss.Style
	Path     lipgloss.Style
}

// NewStyles builds styles for w. Without a terminal every style renders
// plain text.
func NewStyles(w io.Writer, isTTY bool) *Styles {
	lr := lipgloss.NewRenderer(w)
	if isTTY {
		lr.SetColorProfile(termenv.EnvColorProfile())
	} else {
		lr.SetColorProfile(termenv.Ascii)
	}

	return &Styles{
		Header1:  lr.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Header2:  lr.NewStyle().Bold(true).Underline(true),
		Bold:     lr.NewStyle().Bold(true),
		Muted:    lr.NewStyle().Foreground(lipgloss.Color("8")),
		Success:  lr.NewStyle().Foreground(lipgloss.Color("10")),
		Error:    lr.NewStyle().Foreground(lipgloss.Color("9")),
		Warning:  lr.NewStyle().Foreground(lipgloss.Color("11")),
		Info:     lr.NewStyle().Foreground(lipgloss.Color("14")),
		Code:     lr.NewStyle().Foreground(lipgloss.Color("13")),
		Kind:     lr.NewStyle().Bold(true).Foreground(lipgloss.Color("9")).Width(14),
		Standard: lr.NewStyle().Foreground(lipgloss.Color("14")).Width(16),
		Path:     lr.NewStyle(),
	}
}
