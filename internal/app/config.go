package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"

	"skiddie/internal/difficulty"
)

// EnvPrefix prefixes every environment variable read into Config.
const EnvPrefix = "SKIDDIE_"

// Config controls runtime behavior of the CLI.
type Config struct {
	LogPath   string `env:"LOG_PATH"`
	ASCIIOnly bool   `env:"ASCII_ONLY"`
	NoColor   bool   `env:"NO_COLOR"`
	// Plain reads answers line by line instead of with the inline editor.
	Plain bool `env:"PLAIN"`
	Debug bool `env:"DEBUG"`
	// Seed fixes the random source. Zero seeds from the clock, or from the
	// date in daily mode.
	Seed      uint64 `env:"SEED"`
	Mode      string `env:"MODE"`
	ConfigDir string `env:"CONFIG_DIR"`
	UI        UIConfig
}

type UIConfig struct {
	StyleVariant string `env:"STYLE"`
	MotionLevel  string `env:"MOTION"`
	AltScreen    bool   `env:"ALT_SCREEN"`
}

func DefaultConfig() Config {
	return Config{
		Mode: string(ModeFreePlay),
		UI: UIConfig{
			StyleVariant: "arcade",
			MotionLevel:  "full",
			AltScreen:    true,
		},
	}
}

// LoadConfig starts from DefaultConfig and applies SKIDDIE_* variables. The
// conventional NO_COLOR variable is honored as well.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return cfg, fmt.Errorf("read environment: %w", err)
	}
	if os.Getenv("NO_COLOR") != "" {
		cfg.NoColor = true
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.UI.StyleVariant {
	case "", "arcade", "cozy", "retro":
	default:
		return fmt.Errorf("invalid ui style variant %q", c.UI.StyleVariant)
	}
	if c.UI.StyleVariant == "" {
		c.UI.StyleVariant = "arcade"
	}
	switch c.UI.MotionLevel {
	case "", "off", "reduced", "full":
	default:
		return fmt.Errorf("invalid ui motion level %q", c.UI.MotionLevel)
	}
	if c.UI.MotionLevel == "" {
		c.UI.MotionLevel = "full"
	}
	mode, err := parseMode(c.Mode)
	if err != nil {
		return err
	}
	c.Mode = string(mode)
	return nil
}

// OverridePath is the difficulty override file: difficulty.yaml in
// ConfigDir, or in the user config directory when ConfigDir is unset.
func (c Config) OverridePath() (string, error) {
	if c.ConfigDir != "" {
		return filepath.Join(c.ConfigDir, "difficulty.yaml"), nil
	}
	return difficulty.DefaultOverridePath()
}
