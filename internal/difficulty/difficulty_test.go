package difficulty

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skiddie/internal/lateinit"
)

func TestParseAndLabel(t *testing.T) {
	for in, want := range map[string]Difficulty{"easy": Easy, " NORMAL ": Normal, "Hard": Hard} {
		got, err := Parse(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := Parse("nightmare")
	assert.ErrorIs(t, err, ErrUnknownDifficulty)
	assert.Equal(t, "Normal", Normal.Label())
	assert.Equal(t, "hard", Hard.String())
}

func TestPresetsRequireRead(t *testing.T) {
	p := NewPresets("")
	_, err := p.Args("shell_scripter", Normal)
	require.Error(t, err)
	assert.True(t, errors.Is(err, lateinit.ErrUnset))
	assert.Contains(t, err.Error(), "before Read")
}

func TestBundledPresets(t *testing.T) {
	p := NewPresets(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, p.Read())

	games, err := p.Games()
	require.NoError(t, err)
	assert.Equal(t, []string{"shell_scripter"}, games)

	args, err := p.Args("shell_scripter", Hard)
	require.NoError(t, err)
	n, err := args.Int("max_args")
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	f, err := args.Float("pipe_probability")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, f, 1e-9)

	args["max_args"] = 99
	again, err := p.Args("shell_scripter", Hard)
	require.NoError(t, err)
	n, _ = again.Int("max_args")
	assert.Equal(t, 5, n, "Args returns a copy")

	desc, err := p.Descriptions("shell_scripter")
	require.NoError(t, err)
	assert.Contains(t, desc, "rounds_to_win")

	_, err = p.Args("port_scanner", Easy)
	assert.Error(t, err)
	_, err = p.Args("shell_scripter", Difficulty("insane"))
	assert.ErrorIs(t, err, ErrUnknownDifficulty)
}

func TestOverrideMergesRecursively(t *testing.T) {
	path := filepath.Join(t.TempDir(), "difficulty.yaml")
	override := `
games:
  shell_scripter:
    difficulties:
      easy:
        rounds_to_win: 3
`
	require.NoError(t, os.WriteFile(path, []byte(override), 0o644))
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	p := NewPresets(path)
	require.NoError(t, p.Read())
	args, err := p.Args("shell_scripter", Easy)
	require.NoError(t, err)
	rounds, _ := args.Int("rounds_to_win")
	maxArgs, _ := args.Int("max_args")
	assert.Equal(t, 3, rounds, "override wins")
	assert.Equal(t, 3, maxArgs, "untouched keys keep template values")

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after, "override file is never written")
}

func TestOverrideRejectsUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "difficulty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("colour: blue\n"), 0o644))
	assert.Error(t, NewPresets(path).Read())
}

func TestArgsAccessors(t *testing.T) {
	a := Args{"n": 3, "p": 0.25, "whole": 2.0, "s": "x"}
	_, err := a.Int("missing")
	var mk *MissingKeyError
	require.ErrorAs(t, err, &mk)
	assert.Equal(t, "missing", mk.Key)

	n, err := a.Int("whole")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	_, err = a.Int("p")
	assert.Error(t, err)
	_, err = a.Float("s")
	assert.Error(t, err)
	f, err := a.Float("n")
	require.NoError(t, err)
	assert.Equal(t, 3.0, f)

	assert.NoError(t, a.Only("n", "p", "whole", "s"))
	assert.ErrorContains(t, a.Only("n"), "p, s, whole")
}

func TestRecursiveUpdate(t *testing.T) {
	base := map[string]any{"a": map[string]any{"x": 1, "y": 2}, "b": 1}
	got := recursiveUpdate(base, map[string]any{"a": map[string]any{"y": 3}, "c": 4})
	assert.Equal(t, map[string]any{"a": map[string]any{"x": 1, "y": 3}, "b": 1, "c": 4}, got)
	assert.Equal(t, 2, base["a"].(map[string]any)["y"], "base is not modified")
}
