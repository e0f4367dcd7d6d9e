package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type Theme struct {
	Title         lipgloss.Style
	Panel         lipgloss.Style
	PanelTitle    lipgloss.Style
	Body          lipgloss.Style
	Item          lipgloss.Style
	ItemFocused   lipgloss.Style
	Dialog        lipgloss.Style
	DialogTitle   lipgloss.Style
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
	Accent        lipgloss.Style
	Muted         lipgloss.Style
	Fail          lipgloss.Style
	// Marks are the radio glyphs for unselected and selected options.
	Marks [2]string
}

var asciiBorder = lipgloss.Border{
	Top: "-", Bottom: "-", Left: "|", Right: "|",
	TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
}

// ThemeFor returns the named theme. asciiOnly swaps box drawing for plain
// ASCII; asciiOnly or noColor drops every color by switching lipgloss to
// the termenv Ascii profile.
func ThemeFor(variant string, asciiOnly, noColor bool) Theme {
	if asciiOnly || noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	var t Theme
	switch normalizeStyle(variant) {
	case "retro":
		t = retroTheme()
	case "cozy":
		t = cozyTheme()
	default:
		t = arcadeTheme()
	}
	t.Marks = [2]string{"( )", "(*)"}
	if asciiOnly {
		t.Panel = t.Panel.BorderStyle(asciiBorder)
		t.Dialog = t.Dialog.BorderStyle(asciiBorder)
	} else {
		t.Marks = [2]string{"○", "●"}
	}
	return t
}

func DefaultTheme() Theme {
	return ThemeFor("arcade", false, false)
}

func normalizeStyle(v string) string {
	switch v {
	case "retro", "cozy", "arcade":
		return v
	default:
		return "arcade"
	}
}

func arcadeTheme() Theme {
	amber := lipgloss.Color("#FFC857")
	brick := lipgloss.Color("#FF6F91")
	ink := lipgloss.Color("#0E1420")
	powder := lipgloss.Color("#EAF2FF")
	blue := lipgloss.Color("#5EEBFF")
	border := lipgloss.Color("#4B5F8A")

	return Theme{
		Title: lipgloss.NewStyle().
			Foreground(blue).
			Bold(true).
			Padding(0, 1),
		Panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		PanelTitle: lipgloss.NewStyle().
			Foreground(blue).
			Bold(true),
		Body: lipgloss.NewStyle().
			Foreground(powder),
		Item: lipgloss.NewStyle().
			Foreground(powder),
		ItemFocused: lipgloss.NewStyle().
			Background(blue).
			Foreground(ink).
			Bold(true),
		Dialog: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(blue).
			Padding(1, 2),
		DialogTitle: lipgloss.NewStyle().
			Foreground(blue).
			Bold(true),
		Button: lipgloss.NewStyle().
			Foreground(powder),
		ButtonFocused: lipgloss.NewStyle().
			Background(amber).
			Foreground(ink).
			Bold(true),
		Accent: lipgloss.NewStyle().
			Foreground(amber).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9CAAC6")),
		Fail: lipgloss.NewStyle().
			Foreground(brick).
			Bold(true),
	}
}

func cozyTheme() Theme {
	honey := lipgloss.Color("#F2B872")
	rose := lipgloss.Color("#D17A86")
	night := lipgloss.Color("#1E2430")
	slate := lipgloss.Color("#30394A")
	paper := lipgloss.Color("#F4F6FA")
	sky := lipgloss.Color("#86B6F6")

	return Theme{
		Title:         lipgloss.NewStyle().Foreground(honey).Bold(true).Padding(0, 1),
		Panel:         lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(slate).Padding(0, 1),
		PanelTitle:    lipgloss.NewStyle().Foreground(honey).Bold(true),
		Body:          lipgloss.NewStyle().Foreground(paper),
		Item:          lipgloss.NewStyle().Foreground(paper),
		ItemFocused:   lipgloss.NewStyle().Background(sky).Foreground(night).Bold(true),
		Dialog:        lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(honey).Padding(1, 2),
		DialogTitle:   lipgloss.NewStyle().Foreground(honey).Bold(true),
		Button:        lipgloss.NewStyle().Foreground(paper),
		ButtonFocused: lipgloss.NewStyle().Background(honey).Foreground(night).Bold(true),
		Accent:        lipgloss.NewStyle().Foreground(sky).Bold(true),
		Muted:         lipgloss.NewStyle().Foreground(lipgloss.Color("#A3ACC2")),
		Fail:          lipgloss.NewStyle().Foreground(rose).Bold(true),
	}
}

func retroTheme() Theme {
	lime := lipgloss.Color("#9CF5A2")
	amber := lipgloss.Color("#E5D47A")
	red := lipgloss.Color("#FF6B6B")
	deep := lipgloss.Color("#07150A")
	forest := lipgloss.Color("#12301A")
	glow := lipgloss.Color("#C5F7C4")

	return Theme{
		Title:         lipgloss.NewStyle().Foreground(lime).Bold(true).Padding(0, 1),
		Panel:         lipgloss.NewStyle().BorderStyle(lipgloss.DoubleBorder()).BorderForeground(forest).Padding(0, 1),
		PanelTitle:    lipgloss.NewStyle().Foreground(amber).Bold(true),
		Body:          lipgloss.NewStyle().Foreground(glow),
		Item:          lipgloss.NewStyle().Foreground(glow),
		ItemFocused:   lipgloss.NewStyle().Background(lime).Foreground(deep).Bold(true),
		Dialog:        lipgloss.NewStyle().BorderStyle(lipgloss.DoubleBorder()).BorderForeground(amber).Padding(1, 2),
		DialogTitle:   lipgloss.NewStyle().Foreground(amber).Bold(true),
		Button:        lipgloss.NewStyle().Foreground(glow),
		ButtonFocused: lipgloss.NewStyle().Background(amber).Foreground(deep).Bold(true),
		Accent:        lipgloss.NewStyle().Foreground(lime).Bold(true),
		Muted:         lipgloss.NewStyle().Foreground(lipgloss.Color("#73A17A")),
		Fail:          lipgloss.NewStyle().Foreground(red).Bold(true),
	}
}
