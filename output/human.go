package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/openbiblio/authormail/record"
)

var (
	bold = lipgloss.NewStyle().Bold(true)
	dim  = lipgloss.NewStyle().Faint(true)
	cyan = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// truncate cuts a string to maxLen runes, appending "…" if truncated.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-1]) + "…"
}

// WriteHuman renders a terminal preview of an extraction result.
func WriteHuman(w io.Writer, result *record.Result) error {
	fmt.Fprintln(w, bold.Render(fmt.Sprintf("Extracted %d contact(s) from %d record(s)",
		len(result.Records), result.TotalProcessed)))

	if len(result.Records) == 0 {
		return nil
	}
	fmt.Fprintln(w)

	var rows [][]string
	for _, r := range result.Records {
		rows = append(rows, []string{
			bold.Render(truncate(r.Title, 48)),
			r.Author,
			cyan.Render(r.Email),
			dim.Render(r.Source),
		})
	}

	t := table.New().
		Headers("Title", "Author", "Email", "Source").
		Rows(rows...).
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8")))

	fmt.Fprintln(w, t.Render())
	return nil
}
