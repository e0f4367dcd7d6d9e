package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

func padRune(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(strings.ReplaceAll(s, "\t", "    "))
	if len(r) > width {
		r = r[:width]
	}
	if len(r) < width {
		r = append(r, []rune(strings.Repeat(" ", width-len(r)))...)
	}
	return string(r)
}

// composeOverlay draws overlay centered over base. Both are reduced to plain
// text so the result is exactly cols by rows.
func composeOverlay(base, overlay string, cols, rows int) string {
	ow, oh := blockSize(overlay)
	return composeOverlayAt(base, overlay, cols, rows, (rows-min(oh, rows))/2, (cols-min(ow, cols))/2)
}

func composeOverlayAt(base, overlay string, cols, rows, startRow, startCol int) string {
	if cols <= 0 || rows <= 0 {
		return base
	}
	baseLines := strings.Split(ansi.Strip(base), "\n")
	if len(baseLines) < rows {
		baseLines = append(baseLines, make([]string, rows-len(baseLines))...)
	}
	for i := 0; i < rows; i++ {
		baseLines[i] = padRune(baseLines[i], cols)
	}

	overlayLines := strings.Split(strings.TrimRight(ansi.Strip(overlay), "\n"), "\n")
	ow, _ := blockSize(overlay)
	ow = min(ow, cols)
	startRow = max(startRow, 0)
	startCol = max(startCol, 0)

	for i, line := range overlayLines {
		row := startRow + i
		if row >= rows {
			break
		}
		dst := []rune(baseLines[row])
		src := []rune(line)
		if len(src) > ow {
			src = src[:ow]
		}
		for j := 0; j < ow && startCol+j < len(dst); j++ {
			dst[startCol+j] = ' '
		}
		for j := 0; j < len(src) && startCol+j < len(dst); j++ {
			dst[startCol+j] = src[j]
		}
		baseLines[row] = string(dst)
	}
	return strings.Join(baseLines[:rows], "\n")
}

func blockSize(s string) (w, h int) {
	lines := strings.Split(strings.TrimRight(ansi.Strip(s), "\n"), "\n")
	w = 1
	for _, line := range lines {
		w = max(w, len([]rune(line)))
	}
	return w, len(lines)
}

func trimForWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(strings.ReplaceAll(ansi.Strip(s), "\n", " "))
	if len(r) <= width {
		return string(r)
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}
