package generate

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	shlex "github.com/anmitsu/go-shlex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func catalog() []Template {
	return []Template{
		{
			Name:     "grep",
			Optional: []Argument{{Flags: []string{"-i"}}, {Flags: []string{"-v"}}, {Flags: []string{"-m"}, Values: []string{"1", "3"}}},
			Positional: []Argument{
				{Values: []string{"^[0-9]+$", "error", "a b"}},
			},
			Stdin:  true,
			Stdout: true,
		},
		{
			Name:     "sort",
			Optional: []Argument{{Flags: []string{"-r"}}, {Flags: []string{"-n"}}, {Flags: []string{"-k"}, Values: []string{"2"}}},
			Stdin:    true,
			Stdout:   true,
		},
		{
			Name:     "find",
			Optional: []Argument{{Flags: []string{"-name"}, Values: []string{"*.png", "it's"}}},
			Stdout:   true,
		},
		{Name: "touch"},
	}
}

func TestConfigErrors(t *testing.T) {
	base := Config{Templates: Simple("cat"), MinArgs: 1, MaxArgs: 2}
	cases := map[string]func(c *Config){
		"no templates":        func(c *Config) { c.Templates = nil },
		"unnamed template":    func(c *Config) { c.Templates = []Template{{Name: " "}} },
		"empty argument":      func(c *Config) { c.Templates = []Template{{Name: "ls", Optional: []Argument{{}}}} },
		"negative min":        func(c *Config) { c.MinArgs = -1 },
		"inverted bounds":     func(c *Config) { c.MinArgs, c.MaxArgs = 3, 2 },
		"redirect above one":  func(c *Config) { c.RedirectProbability = 1.5 },
		"pipe below zero":     func(c *Config) { c.PipeProbability = -0.1 },
		"unknown sampling":    func(c *Config) { c.Sampling = "roundrobin" },
		"overlapping pools": func(c *Config) {
			c.ArgNames = []string{"a.txt"}
			c.OutputNames = []string{"a.txt"}
		},
		"empty argument name": func(c *Config) { c.ArgNames = []string{""} },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := base
			mutate(&cfg)
			_, err := New(cfg, seeded(1))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrConfig), "error %v should wrap ErrConfig", err)
		})
	}

	_, err := New(base, seeded(1))
	require.NoError(t, err)
}

func TestDefaultPoolsDisjoint(t *testing.T) {
	outputs := map[string]bool{}
	for _, n := range DefaultOutputNames {
		outputs[n] = true
	}
	for _, n := range DefaultArgNames {
		if outputs[n] {
			t.Fatalf("%q appears in both default pools", n)
		}
	}
}

func TestNoRedirectScenario(t *testing.T) {
	g, err := New(Config{Templates: Simple("cat", "grep", "sort"), MinArgs: 1, MaxArgs: 1}, seeded(7))
	require.NoError(t, err)

	args := map[string]bool{}
	for _, n := range DefaultArgNames {
		args[n] = true
	}
	for i := 0; i < 200; i++ {
		line := g.Generate().Render()
		fields := strings.Split(line, " ")
		require.Len(t, fields, 2, "line %q", line)
		assert.Contains(t, []string{"cat", "grep", "sort"}, fields[0])
		assert.True(t, args[fields[1]], "unexpected argument in %q", line)
		assert.NotContains(t, line, "|")
		assert.NotContains(t, line, ">")
	}
}

func TestArgumentCountWithinBounds(t *testing.T) {
	for _, bounds := range [][2]int{{0, 0}, {0, 3}, {2, 5}, {4, 4}} {
		cfg := Config{Templates: catalog(), MinArgs: bounds[0], MaxArgs: bounds[1], RedirectProbability: 0.5, PipeProbability: 0.5}
		g, err := New(cfg, seeded(uint64(bounds[1])))
		require.NoError(t, err)
		for i := 0; i < 300; i++ {
			it := g.Generate()
			assert.GreaterOrEqual(t, len(it.Args), bounds[0])
			assert.LessOrEqual(t, len(it.Args), bounds[1])
			if it.Redirect != nil && it.Redirect.Kind == RedirectPipe {
				assert.GreaterOrEqual(t, len(it.Redirect.Pipe.Args), bounds[0])
				assert.LessOrEqual(t, len(it.Redirect.Pipe.Args), bounds[1])
			}
		}
	}
}

func TestOptionalArgumentsNotRepeated(t *testing.T) {
	g, err := New(Config{Templates: catalog()[1:2], MinArgs: 3, MaxArgs: 3}, seeded(3))
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		it := g.Generate()
		seen := map[string]bool{}
		for _, a := range it.Args {
			flag := a.Words[0]
			require.False(t, seen[flag], "flag %s repeated in %q", flag, it.Render())
			seen[flag] = true
		}
	}
}

func TestRedirectShapes(t *testing.T) {
	g, err := New(Config{Templates: catalog(), MinArgs: 0, MaxArgs: 2, RedirectProbability: 1, PipeProbability: 0.5}, seeded(11))
	require.NoError(t, err)

	var pipes, files int
	for i := 0; i < 400; i++ {
		it := g.Generate()
		if it.Program == "touch" {
			assert.Nil(t, it.Redirect, "touch has no stdout")
			continue
		}
		require.NotNil(t, it.Redirect)
		switch it.Redirect.Kind {
		case RedirectPipe:
			pipes++
			require.NotNil(t, it.Redirect.Pipe)
			assert.Nil(t, it.Redirect.Pipe.Redirect, "pipes nest one level")
			assert.Contains(t, []string{"grep", "sort"}, it.Redirect.Pipe.Program)
			assert.Contains(t, it.Render(), " | ")
		default:
			files++
			assert.Contains(t, DefaultOutputNames, it.Redirect.Target)
		}
	}
	assert.Positive(t, pipes)
	assert.Positive(t, files)
}

func TestPipeFallsBackToFile(t *testing.T) {
	g, err := New(Config{
		Templates:           []Template{{Name: "ls", Stdout: true}},
		RedirectProbability: 1,
		PipeProbability:     1,
	}, seeded(5))
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		it := g.Generate()
		require.NotNil(t, it.Redirect)
		assert.NotEqual(t, RedirectPipe, it.Redirect.Kind)
	}
}

func TestSeededGeneratorsReproduce(t *testing.T) {
	cfg := Config{Templates: catalog(), MinArgs: 1, MaxArgs: 4, RedirectProbability: 0.4, PipeProbability: 0.5}
	a, err := New(cfg, seeded(42))
	require.NoError(t, err)
	b, err := New(cfg, seeded(42))
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		require.Equal(t, a.Generate().Render(), b.Generate().Render())
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	g, err := New(Config{Templates: catalog(), MinArgs: 0, MaxArgs: 3, RedirectProbability: 0.5, PipeProbability: 0.5}, seeded(9))
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		it := g.Generate()
		require.Equal(t, it.Render(), it.Render())
		assert.Equal(t, strings.TrimSpace(it.Render()), it.Render())
	}
}

func TestRenderRoundTripsThroughShlex(t *testing.T) {
	g, err := New(Config{Templates: catalog(), MinArgs: 0, MaxArgs: 4}, seeded(13))
	require.NoError(t, err)
	for i := 0; i < 300; i++ {
		it := g.Generate()
		words, err := shlex.Split(it.Render(), true)
		require.NoError(t, err, it.Render())
		require.Equal(t, it.Words(), words, it.Render())
	}
}

func TestRenderDistinguishesItems(t *testing.T) {
	a := Item{Program: "grep", Args: []Arg{{Words: []string{"a b"}}}}
	b := Item{Program: "grep", Args: []Arg{{Words: []string{"a"}}, {Words: []string{"b"}}}}
	c := Item{Program: "echo", Args: []Arg{{Words: []string{">"}}}, Redirect: nil}
	d := Item{Program: "echo", Redirect: &Redirect{Kind: RedirectFile, Target: "x"}}
	assert.NotEqual(t, a.Render(), b.Render())
	assert.Equal(t, `echo ">"`, c.Render())
	assert.Equal(t, "echo > x", d.Render())

	pipe := Item{Program: "cat", Args: []Arg{{Words: []string{"in.txt"}}}, Redirect: &Redirect{
		Kind: RedirectPipe,
		Pipe: &Item{Program: "sort", Args: []Arg{{Words: []string{"-r"}}}},
	}}
	assert.Equal(t, "cat in.txt | sort -r", pipe.Render())
	appendTo := Item{Program: "ls", Redirect: &Redirect{Kind: RedirectAppend, Target: "out.txt"}}
	assert.Equal(t, "ls >> out.txt", appendTo.Render())
}

func TestQuote(t *testing.T) {
	cases := map[string]string{
		"":           `""`,
		"-r":         "-r",
		"a/b.txt":    "a/b.txt",
		"*.png":      `"*.png"`,
		"a b":        `"a b"`,
		"^[0-9]+$":   `'^[0-9]+$'`,
		"it's $HOME": `'it'\''s $HOME'`,
	}
	for in, want := range cases {
		if got := Quote(in); got != want {
			t.Fatalf("Quote(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestCycleWindows(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	c := NewCycle(items, seeded(21))
	first := make([]int, len(items))
	for i := range first {
		first[i] = c.Next()
	}
	assert.ElementsMatch(t, items, first)
	for i := range items {
		assert.Equal(t, first[i], c.Next(), "second window repeats the shuffle")
	}

	taken := Take(items, 12, seeded(4))
	require.Len(t, taken, 12)
	for start := 0; start+len(items) <= 10; start += len(items) {
		assert.ElementsMatch(t, items, taken[start:start+len(items)])
	}
	assert.Nil(t, Take([]int{}, 3, seeded(1)))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, items, "input is not reordered")
}

func TestUniformSampling(t *testing.T) {
	g, err := New(Config{Templates: Simple("a", "b"), Sampling: SampleUniform}, seeded(2))
	require.NoError(t, err)
	seen := map[string]int{}
	for i := 0; i < 100; i++ {
		seen[g.Generate().Program]++
	}
	assert.Len(t, seen, 2)
}
