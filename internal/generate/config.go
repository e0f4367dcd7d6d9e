package generate

import (
	"errors"
	"fmt"
	"strings"
)

// ErrConfig is wrapped by every generator configuration error.
var ErrConfig = errors.New("invalid generator config")

type Sampling string

const (
	// SampleCycle shuffles the templates once and cycles through them so no
	// template repeats before every other one has been used.
	SampleCycle   Sampling = "cycle"
	SampleUniform Sampling = "uniform"
)

// Argument is one argument slot of a template. It renders as a random flag
// followed by a random value; either list may be empty but not both.
type Argument struct {
	Flags  []string `yaml:"flags"`
	Values []string `yaml:"values"`
}

// Template is a command the generator can produce.
type Template struct {
	Name       string     `yaml:"name"`
	Positional []Argument `yaml:"positional"`
	Optional   []Argument `yaml:"optional"`
	// Stdin reports whether the command reads standard input and so can be a pipe target.
	Stdin bool `yaml:"stdin"`
	// Stdout reports whether the command's output may be redirected.
	Stdout bool `yaml:"stdout"`
}

// Config controls generated item difficulty.
type Config struct {
	Templates           []Template
	MinArgs             int
	MaxArgs             int
	RedirectProbability float64
	PipeProbability     float64
	ArgNames            []string
	OutputNames         []string
	Sampling            Sampling
}

// Simple returns bare templates that read stdin and write stdout.
func Simple(names ...string) []Template {
	out := make([]Template, 0, len(names))
	for _, n := range names {
		out = append(out, Template{Name: n, Stdin: true, Stdout: true})
	}
	return out
}

func (c Config) withDefaults() Config {
	if len(c.ArgNames) == 0 {
		c.ArgNames = DefaultArgNames
	}
	if len(c.OutputNames) == 0 {
		c.OutputNames = DefaultOutputNames
	}
	if c.Sampling == "" {
		c.Sampling = SampleCycle
	}
	return c
}

// Validate reports the first configuration problem, wrapped in ErrConfig.
func (c Config) Validate() error {
	c = c.withDefaults()
	if len(c.Templates) == 0 {
		return fmt.Errorf("%w: templates must not be empty", ErrConfig)
	}
	for i, t := range c.Templates {
		if strings.TrimSpace(t.Name) == "" {
			return fmt.Errorf("%w: template %d has no name", ErrConfig, i)
		}
		for _, a := range append(append([]Argument(nil), t.Positional...), t.Optional...) {
			if len(a.Flags) == 0 && len(a.Values) == 0 {
				return fmt.Errorf("%w: template %q has an argument with no flags or values", ErrConfig, t.Name)
			}
		}
	}
	if c.MinArgs < 0 || c.MaxArgs < 0 {
		return fmt.Errorf("%w: min_args and max_args must be >= 0 (got %d, %d)", ErrConfig, c.MinArgs, c.MaxArgs)
	}
	if c.MinArgs > c.MaxArgs {
		return fmt.Errorf("%w: min_args %d > max_args %d", ErrConfig, c.MinArgs, c.MaxArgs)
	}
	if !inUnit(c.RedirectProbability) {
		return fmt.Errorf("%w: redirect_probability %v outside [0, 1]", ErrConfig, c.RedirectProbability)
	}
	if !inUnit(c.PipeProbability) {
		return fmt.Errorf("%w: pipe_probability %v outside [0, 1]", ErrConfig, c.PipeProbability)
	}
	switch c.Sampling {
	case SampleCycle, SampleUniform:
	default:
		return fmt.Errorf("%w: unknown sampling %q", ErrConfig, c.Sampling)
	}
	outputs := make(map[string]struct{}, len(c.OutputNames))
	for _, n := range c.OutputNames {
		if n == "" {
			return fmt.Errorf("%w: empty output name", ErrConfig)
		}
		outputs[n] = struct{}{}
	}
	for _, n := range c.ArgNames {
		if n == "" {
			return fmt.Errorf("%w: empty argument name", ErrConfig)
		}
		if _, ok := outputs[n]; ok {
			return fmt.Errorf("%w: %q is both an argument name and an output name", ErrConfig, n)
		}
	}
	return nil
}

func inUnit(p float64) bool {
	return p >= 0 && p <= 1
}
