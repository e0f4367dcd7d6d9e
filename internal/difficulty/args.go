package difficulty

import (
	"fmt"
	"sort"
	"strings"
)

// MissingKeyError reports a preset that lacks an argument a game requires.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("missing difficulty argument %q", e.Key)
}

// Args are the game arguments of one preset.
type Args map[string]any

func (a Args) clone() Args {
	out := make(Args, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Only fails when a holds keys outside allowed.
func (a Args) Only(allowed ...string) error {
	ok := make(map[string]bool, len(allowed))
	for _, k := range allowed {
		ok[k] = true
	}
	var unknown []string
	for k := range a {
		if !ok[k] {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	return fmt.Errorf("unknown difficulty arguments: %s", strings.Join(unknown, ", "))
}

func (a Args) Int(key string) (int, error) {
	v, ok := a[key]
	if !ok {
		return 0, &MissingKeyError{Key: key}
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n == float64(int(n)) {
			return int(n), nil
		}
	}
	return 0, fmt.Errorf("difficulty argument %q must be an integer, got %v", key, v)
}

func (a Args) Float(key string) (float64, error) {
	v, ok := a[key]
	if !ok {
		return 0, &MissingKeyError{Key: key}
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	}
	return 0, fmt.Errorf("difficulty argument %q must be a number, got %v", key, v)
}
