package textfmt

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// Duration formats d as minutes and tenths of seconds, e.g. "1m 3.3s".
func Duration(d time.Duration) string {
	secs := d.Seconds()
	minutes := math.Floor(secs / 60)
	return fmt.Sprintf("%.0fm %.1fs", minutes, secs-minutes*60)
}

func Bytes(n uint64) string {
	return humanize.IBytes(n)
}

// Count formats n with thousands separators.
func Count(n int) string {
	return humanize.Comma(int64(n))
}

// Table aligns rows into columns joined by sep. Rows may have different lengths.
func Table(rows [][]string, sep string, alignRight bool) string {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			pad := strings.Repeat(" ", widths[i]-lipgloss.Width(cell))
			if alignRight {
				cells[i] = pad + cell
			} else {
				cells[i] = cell + pad
			}
		}
		lines = append(lines, strings.TrimRight(strings.Join(cells, sep), " "))
	}
	return strings.Join(lines, "\n")
}

// TableColumns splits rows across side-by-side column groups of at most
// perColumn rows each, repeating header above every group.
func TableColumns(rows [][]string, perColumn int, header []string, sep string, alignRight bool) string {
	if perColumn <= 0 || len(rows) == 0 {
		return Table(rows, sep, alignRight)
	}
	var groups [][][]string
	for start := 0; start < len(rows); start += perColumn {
		group := rows[start:min(start+perColumn, len(rows))]
		if header != nil {
			group = append([][]string{header}, group...)
		}
		groups = append(groups, group)
	}

	combined := make([][]string, len(groups[0]))
	for i := range combined {
		for _, g := range groups {
			if i >= len(g) {
				break
			}
			combined[i] = append(combined[i], g[i]...)
		}
	}
	return Table(combined, sep, alignRight)
}
