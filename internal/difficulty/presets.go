package difficulty

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"sort"

	gap "github.com/muesli/go-app-paths"
	"gopkg.in/yaml.v3"

	"skiddie/internal/lateinit"
)

const (
	PresetsKind            = "difficulty_presets"
	SupportedSchemaVersion = 1
)

//go:embed presets.yaml
var templateYAML []byte

var gamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_]{2,63}$`)

type presetFile struct {
	Kind          string                `yaml:"kind"`
	SchemaVersion int                   `yaml:"schema_version"`
	Games         map[string]gamePreset `yaml:"games"`
}

type gamePreset struct {
	Descriptions map[string]string   `yaml:"descriptions"`
	Difficulties map[Difficulty]Args `yaml:"difficulties"`
}

func (f presetFile) Validate() error {
	if f.Kind != PresetsKind {
		return fmt.Errorf("kind must be %q", PresetsKind)
	}
	if f.SchemaVersion != SupportedSchemaVersion {
		return fmt.Errorf("unsupported schema_version %d", f.SchemaVersion)
	}
	for name, g := range f.Games {
		if !gamePattern.MatchString(name) {
			return fmt.Errorf("invalid game name %q", name)
		}
		for d := range g.Difficulties {
			if _, err := Parse(string(d)); err != nil {
				return fmt.Errorf("game %s: %w", name, err)
			}
		}
		for _, d := range All {
			if _, ok := g.Difficulties[d]; !ok {
				return fmt.Errorf("game %s: missing %s difficulty", name, d)
			}
		}
	}
	return nil
}

// Presets are the bundled difficulty presets, optionally overridden by a
// user file. The user file is only ever read.
type Presets struct {
	overridePath string
	data         lateinit.Value[presetFile]
}

// NewPresets uses overridePath, when non-empty, as the user override file.
func NewPresets(overridePath string) *Presets {
	return &Presets{
		overridePath: overridePath,
		data:         lateinit.New[presetFile]("difficulty presets cannot be used before Read is called"),
	}
}

// DefaultOverridePath is difficulty.yaml in the user config directory.
func DefaultOverridePath() (string, error) {
	return gap.NewScope(gap.User, "skiddie").ConfigPath("difficulty.yaml")
}

// Read loads the bundled presets and merges the override file over them.
// A missing override file is not an error.
func (p *Presets) Read() error {
	var base map[string]any
	if err := yaml.Unmarshal(templateYAML, &base); err != nil {
		return fmt.Errorf("parse bundled presets: %w", err)
	}
	if p.overridePath != "" {
		b, err := os.ReadFile(p.overridePath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return fmt.Errorf("read %s: %w", p.overridePath, err)
		default:
			var override map[string]any
			if err := yaml.Unmarshal(b, &override); err != nil {
				return fmt.Errorf("parse %s: %w", p.overridePath, err)
			}
			base = recursiveUpdate(base, override)
		}
	}

	merged, err := yaml.Marshal(base)
	if err != nil {
		return err
	}
	var file presetFile
	dec := yaml.NewDecoder(bytes.NewReader(merged))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return fmt.Errorf("decode presets: %w", err)
	}
	if err := file.Validate(); err != nil {
		return fmt.Errorf("validate presets: %w", err)
	}
	p.data.Set(file)
	return nil
}

func (p *Presets) game(name string) (gamePreset, error) {
	file, err := p.data.Get()
	if err != nil {
		return gamePreset{}, err
	}
	g, ok := file.Games[name]
	if !ok {
		return gamePreset{}, fmt.Errorf("no difficulty presets for game %q", name)
	}
	return g, nil
}

// Args returns a copy of the arguments for game at d.
func (p *Presets) Args(game string, d Difficulty) (Args, error) {
	g, err := p.game(game)
	if err != nil {
		return nil, err
	}
	args, ok := g.Difficulties[d]
	if !ok {
		return nil, fmt.Errorf("%w %q for game %q", ErrUnknownDifficulty, d, game)
	}
	return args.clone(), nil
}

// Descriptions maps each argument of game to a one-line explanation.
func (p *Presets) Descriptions(game string) (map[string]string, error) {
	g, err := p.game(game)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(g.Descriptions))
	for k, v := range g.Descriptions {
		out[k] = v
	}
	return out, nil
}

func (p *Presets) Games() ([]string, error) {
	file, err := p.data.Get()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(file.Games))
	for name := range file.Games {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// recursiveUpdate returns base with override merged in. Nested maps merge
// key by key; any other override value replaces the base value.
func recursiveUpdate(base, override map[string]any) map[string]any {
	out := make(map[string]any, len(base))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		ov, oIsMap := v.(map[string]any)
		bv, bIsMap := out[k].(map[string]any)
		if oIsMap && bIsMap {
			out[k] = recursiveUpdate(bv, ov)
			continue
		}
		out[k] = v
	}
	return out
}
