package games

import (
	"context"
	"errors"
	"testing"

	"skiddie/internal/difficulty"
	"skiddie/internal/round"
)

type stubGame struct {
	name string
	got  difficulty.Args
	err  error
}

func (g *stubGame) Name() string            { return g.name }
func (g *stubGame) DescriptionFile() string { return g.name + ".md" }
func (g *stubGame) Play(_ context.Context, _ Env, args difficulty.Args) (round.Stats, error) {
	g.got = args
	return round.Stats{Rounds: 2}, g.err
}

type stubPresets map[string]difficulty.Args

func (p stubPresets) Args(game string, d difficulty.Difficulty) (difficulty.Args, error) {
	a, ok := p[game+"/"+string(d)]
	if !ok {
		return nil, difficulty.ErrUnknownDifficulty
	}
	out := difficulty.Args{}
	for k, v := range a {
		out[k] = v
	}
	return out, nil
}

func TestRegistry(t *testing.T) {
	r, err := NewRegistry(&stubGame{name: "shell_scripter"}, &stubGame{name: "hash_cracker"})
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	list := r.List()
	if len(list) != 2 || list[0].Name() != "hash_cracker" {
		t.Fatalf("expected sorted list, got %v", list)
	}
	for _, name := range []string{"shell_scripter", "Shell_Scripter", "shell-scripter"} {
		if _, err := r.Get(name); err != nil {
			t.Fatalf("Get(%q): %v", name, err)
		}
	}
	if _, err := r.Get("pong"); !errors.Is(err, ErrUnknownGame) {
		t.Fatalf("expected ErrUnknownGame, got %v", err)
	}
	if err := r.Register(&stubGame{name: "hash_cracker"}); err == nil {
		t.Fatalf("duplicate registration should fail")
	}
	if got := Title(list[1]); got != "Shell Scripter" {
		t.Fatalf("Title = %q", got)
	}
}

func TestSessionAppliesOverridesAndTimes(t *testing.T) {
	g := &stubGame{name: "shell_scripter"}
	presets := stubPresets{"shell_scripter/easy": {"rounds_to_win": 15, "min_args": 0}}
	s := &Session{Game: g, Difficulty: difficulty.Easy, Overrides: difficulty.Args{"rounds_to_win": 2}}
	if err := s.Play(context.Background(), Env{}, presets); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if g.got["rounds_to_win"] != 2 || g.got["min_args"] != 0 {
		t.Fatalf("unexpected args %v", g.got)
	}
	if !s.Completed || s.Stats.Rounds != 2 || s.Duration < 0 {
		t.Fatalf("unexpected session %+v", s)
	}
	if presets["shell_scripter/easy"]["rounds_to_win"] != 15 {
		t.Fatalf("overrides must not leak into presets")
	}
}

func TestSessionFailures(t *testing.T) {
	s := &Session{Game: &stubGame{name: "shell_scripter"}, Difficulty: difficulty.Hard}
	if err := s.Play(context.Background(), Env{}, stubPresets{}); !errors.Is(err, difficulty.ErrUnknownDifficulty) {
		t.Fatalf("expected preset error, got %v", err)
	}

	g := &stubGame{name: "shell_scripter", err: round.ErrInterrupted}
	s = &Session{Game: g, Difficulty: difficulty.Easy}
	err := s.Play(context.Background(), Env{}, stubPresets{"shell_scripter/easy": {}})
	if !errors.Is(err, round.ErrInterrupted) || s.Completed {
		t.Fatalf("interrupted session must not be completed: %v %+v", err, s)
	}
}
