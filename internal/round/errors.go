package round

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
	shlex "github.com/anmitsu/go-shlex"
)

var (
	// ErrConfig is returned before any output when a game is misconfigured.
	ErrConfig = errors.New("invalid round config")
	// ErrInterrupted is returned when the player aborts or the context is cancelled.
	ErrInterrupted = errors.New("interrupted")
)

// MismatchError reports input that does not equal the expected command.
type MismatchError struct {
	Expected string
	Got      string
	// Distance is the Levenshtein edit distance between Got and Expected.
	Distance int
	// Word is the index of the first differing shell word, or -1 when the
	// words agree and only spacing or quoting differs.
	Word int
}

func newMismatch(expected, got string) *MismatchError {
	return &MismatchError{
		Expected: expected,
		Got:      got,
		Distance: levenshtein.ComputeDistance(expected, got),
		Word:     firstDifferentWord(splitWords(expected), splitWords(got)),
	}
}

func (e *MismatchError) Error() string {
	return "Commands do not match"
}

// Hint describes how far off the input was.
func (e *MismatchError) Hint() string {
	edits := "edits"
	if e.Distance == 1 {
		edits = "edit"
	}
	if e.Word < 0 {
		return fmt.Sprintf("%d %s away, check spacing and quotes", e.Distance, edits)
	}
	return fmt.Sprintf("%d %s away, first difference at word %d", e.Distance, edits, e.Word+1)
}

func splitWords(s string) []string {
	words, err := shlex.Split(s, true)
	if err != nil {
		return strings.Fields(s)
	}
	return words
}

func firstDifferentWord(want, got []string) int {
	for i := 0; i < max(len(want), len(got)); i++ {
		if i >= len(want) || i >= len(got) || want[i] != got[i] {
			return i
		}
	}
	return -1
}

func interrupted(cause error) error {
	if cause == nil {
		return ErrInterrupted
	}
	return fmt.Errorf("%w: %w", ErrInterrupted, cause)
}
