package generate

import (
	"math/rand/v2"
)

// Source produces items. *Generator is the production Source; tests use fixed lists.
type Source interface {
	Generate() Item
}

// Generator produces command lines from a validated Config.
type Generator struct {
	cfg         Config
	rng         *rand.Rand
	next        func() Template
	nextPipe    func() Template
	hasPipeable bool
}

// New validates cfg and returns a Generator drawing from rng.
func New(cfg Config, rng *rand.Rand) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()
	g := &Generator{cfg: cfg, rng: rng}
	g.next = g.sampler(cfg.Templates)

	var pipeable []Template
	for _, t := range cfg.Templates {
		if t.Stdin {
			pipeable = append(pipeable, t)
		}
	}
	if len(pipeable) > 0 {
		g.hasPipeable = true
		g.nextPipe = g.sampler(pipeable)
	}
	return g, nil
}

func (g *Generator) sampler(templates []Template) func() Template {
	if g.cfg.Sampling == SampleUniform {
		return func() Template { return templates[g.rng.IntN(len(templates))] }
	}
	return NewCycle(templates, g.rng).Next
}

// Generate returns a fresh item.
func (g *Generator) Generate() Item {
	return g.item(g.next(), true)
}

func (g *Generator) item(t Template, redirectable bool) Item {
	it := Item{Program: t.Name}
	for _, a := range t.Positional {
		it.Positional = append(it.Positional, g.words(a)...)
	}

	n := g.cfg.MinArgs + g.rng.IntN(g.cfg.MaxArgs-g.cfg.MinArgs+1)
	optional := append([]Argument(nil), t.Optional...)
	g.rng.Shuffle(len(optional), func(i, j int) { optional[i], optional[j] = optional[j], optional[i] })
	for i := 0; i < n; i++ {
		if i < len(optional) {
			it.Args = append(it.Args, Arg{Words: g.words(optional[i])})
			continue
		}
		it.Args = append(it.Args, Arg{Words: []string{g.pick(g.cfg.ArgNames)}})
	}

	if !redirectable || !t.Stdout || g.rng.Float64() >= g.cfg.RedirectProbability {
		return it
	}
	if g.hasPipeable && g.rng.Float64() < g.cfg.PipeProbability {
		nested := g.item(g.nextPipe(), false)
		it.Redirect = &Redirect{Kind: RedirectPipe, Pipe: &nested}
		return it
	}
	kind := RedirectFile
	if g.rng.IntN(2) == 1 {
		kind = RedirectAppend
	}
	it.Redirect = &Redirect{Kind: kind, Target: g.pick(g.cfg.OutputNames)}
	return it
}

func (g *Generator) words(a Argument) []string {
	var out []string
	if len(a.Flags) > 0 {
		out = append(out, g.pick(a.Flags))
	}
	if len(a.Values) > 0 {
		out = append(out, g.pick(a.Values))
	}
	return out
}

func (g *Generator) pick(from []string) string {
	return from[g.rng.IntN(len(from))]
}
