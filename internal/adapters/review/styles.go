package review

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	accentColor  = lipgloss.Color("#FF6B6B")
	successColor = lipgloss.Color("#4ECDC4")
	warningColor = lipgloss.Color("#FFE66D")
	subtleColor  = lipgloss.Color("#666666")
)

// Styles holds the terminal styles used by reports and the interactive review
type Styles struct {
	Title   lipgloss.Style
	Header  lipgloss.Style
	Subtle  lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Prompt  lipgloss.Style
	Count   lipgloss.Style
}

// NewStyles builds styles whose color profile matches w. Writers that are
// not terminals get plain text.
func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)

	return Styles{
		Title:   r.NewStyle().Bold(true).Foreground(accentColor),
		Header:  r.NewStyle().Bold(true),
		Subtle:  r.NewStyle().Foreground(subtleColor),
		Success: r.NewStyle().Foreground(successColor),
		Warning: r.NewStyle().Foreground(warningColor),
		Prompt:  r.NewStyle().Bold(true).Foreground(accentColor),
		Count:   r.NewStyle().Width(8).Align(lipgloss.Right),
	}
}
