package cmd

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
)

// renderTable renders a header row plus data rows as an ASCII table,
// followed by an optional summary line. Shared by the terminal commands and
// the email report body.
func renderTable(rows [][]string, summary string) string {
	out := new(bytes.Buffer)
	table := tablewriter.NewWriter(out)
	table.Header(rows[0])
	for _, row := range rows[1:] {
		if err := table.Append(row); err != nil {
			return fmt.Sprintf("Error rendering table: %v", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Sprintf("Error rendering table: %v", err)
	}
	if summary != "" {
		fmt.Fprintf(out, "%s\n", summary)
	}
	return out.String()
}

// windowLabel maps the --window flag values to readable titles.
func windowLabel(window string) (string, error) {
	switch window {
	case "short":
		return "last 4 weeks", nil
	case "medium":
		return "last 6 months", nil
	case "long":
		return "all time", nil
	}
	return "", fmt.Errorf("invalid window %q: want short, medium, or long", window)
}
