package diagnostic

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	summaryStyle = lipgloss.NewStyle().Bold(true)
)

// Report writes a human-readable listing of all diagnostics followed by a
// one-line summary. Nothing is written when there are no diagnostics.
func Report(w io.Writer, d *Diagnostics) error {
	if d == nil || d.Len() == 0 {
		return nil
	}

	for _, diag := range d.All() {
		label := severityStyle(diag.Severity).Render(diag.Severity.String())
		if _, err := fmt.Fprintf(w, "%s: %s\n", label, diag.String()); err != nil {
			return err
		}
	}

	summary := fmt.Sprintf("%d error(s), %d warning(s), %d info", len(d.Errors), len(d.Warnings), len(d.Infos))
	_, err := fmt.Fprintln(w, summaryStyle.Render(summary))

	return err
}

func severityStyle(s DiagnosticSeverity) lipgloss.Style {
	switch s {
	case DiagnosticError:
		return errorStyle
	case DiagnosticWarning:
		return warningStyle
	default:
		return infoStyle
	}
}
