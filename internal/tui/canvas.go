package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// The frame is a slice of rows, each exactly Dimensions.Width cells wide.
// Regions are fitted into blocks and either joined side by side or stamped
// on top of the rows already drawn.

// fit clips s to exactly width cells, with no tail on truncation.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	if gap := width - ansi.StringWidth(s); gap > 0 {
		s += strings.Repeat(" ", gap)
	}
	return s
}

// fitBlock clips every line of s to width and pads or cuts to height rows.
func fitBlock(s string, width, height int) []string {
	lines := strings.Split(s, "\n")
	out := make([]string, max(0, height))
	for i := range out {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		out[i] = fit(line, width)
	}
	return out
}

// stamp draws block over rows with its top-left cell at (x, y). Rows keep
// their width; block lines falling outside rows are dropped.
func stamp(rows []string, block string, x, y, width int) {
	for i, line := range strings.Split(block, "\n") {
		r := y + i
		if r < 0 || r >= len(rows) {
			continue
		}
		under := rows[r]
		end := x + ansi.StringWidth(line)
		rows[r] = fit(fit(under, x)+line+ansi.TruncateLeft(under, end, ""), width)
	}
}
