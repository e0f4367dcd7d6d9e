package ui

type LayoutMode int

const (
	LayoutTooSmall LayoutMode = iota
	LayoutCompact
	LayoutWide
)

// DetermineLayoutMode decides whether side panels fit next to a menu.
func DetermineLayoutMode(cols, rows int) LayoutMode {
	if cols < 40 || rows < 12 {
		return LayoutTooSmall
	}
	if cols >= 90 && rows >= 20 {
		return LayoutWide
	}
	return LayoutCompact
}
