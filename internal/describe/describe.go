// Package describe serves the bundled game descriptions.
package describe

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
)

var ErrNotFound = errors.New("description not found")

//go:embed descriptions/*.md
var files embed.FS

const dir = "descriptions"

// Get returns the text of descriptions/<name>.
func Get(name string) (string, error) {
	if name == "" || strings.Contains(name, "/") {
		return "", fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	b, err := fs.ReadFile(files, path.Join(dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %q", ErrNotFound, name)
		}
		return "", err
	}
	return string(b), nil
}

// Names lists the bundled description files.
func Names() []string {
	entries, err := fs.ReadDir(files, dir)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

// Render formats markdown for a terminal of the given width. Styled output
// goes through glamour; otherwise the text is only word-wrapped.
func Render(text string, width int, styled bool) (string, error) {
	if width <= 0 {
		width = 80
	}
	if !styled {
		return wordwrap.String(strings.TrimSpace(text), width) + "\n", nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return r.Render(text)
}
