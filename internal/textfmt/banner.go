// Package textfmt formats text printed outside the full-screen UI: banners,
// tables, durations and highlighted commands.
package textfmt

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

const fallbackWidth = 80

var (
	correctStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	incorrectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// Banner centers " msg " in a line of width runes, padded with pad.
func Banner(msg string, pad rune, width int) string {
	body := " " + msg + " "
	gap := width - lipgloss.Width(body)
	if gap <= 0 {
		return body
	}
	left := gap / 2
	return strings.Repeat(string(pad), left) + body + strings.Repeat(string(pad), gap-left)
}

// PrintBanner writes a full-width banner. The style is applied only when w is a terminal.
func PrintBanner(w io.Writer, msg string, style lipgloss.Style) error {
	f, tty := terminal(w)
	width := fallbackWidth
	if tty {
		width = TerminalWidth(f.Fd())
	}
	banner := Banner(msg, '=', width)
	if tty {
		banner = style.Render(banner)
	}
	_, err := fmt.Fprintln(w, banner)
	return err
}

// Correct prints the success banner.
func Correct(w io.Writer) error {
	return PrintBanner(w, "ACCESS GRANTED", correctStyle)
}

func Incorrect(w io.Writer) error {
	return PrintBanner(w, "INCORRECT", incorrectStyle)
}

// TerminalWidth returns the column count of the terminal on fd, or 80.
func TerminalWidth(fd uintptr) int {
	width, _, err := term.GetSize(int(fd))
	if err != nil || width <= 0 {
		return fallbackWidth
	}
	return width
}

// IsTerminal reports whether w is a terminal file.
func IsTerminal(w any) bool {
	_, ok := terminal(w)
	return ok
}

func terminal(w any) (*os.File, bool) {
	f, ok := w.(*os.File)
	if !ok {
		return nil, false
	}
	return f, isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
