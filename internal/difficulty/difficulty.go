// Package difficulty names the difficulty levels and loads the per-game
// presets that turn a level into game arguments.
package difficulty

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var ErrUnknownDifficulty = errors.New("unknown difficulty")

type Difficulty string

const (
	Easy   Difficulty = "easy"
	Normal Difficulty = "normal"
	Hard   Difficulty = "hard"
)

// All lists the difficulties from easiest to hardest.
var All = []Difficulty{Easy, Normal, Hard}

var titleCaser = cases.Title(language.English)

// Parse accepts any capitalization of a difficulty name.
func Parse(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range All {
		if d == known {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w %q (want easy, normal or hard)", ErrUnknownDifficulty, s)
}

func (d Difficulty) String() string { return string(d) }

// Label is the display form, e.g. "Normal".
func (d Difficulty) Label() string {
	return titleCaser.String(string(d))
}
