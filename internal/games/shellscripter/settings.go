package shellscripter

import (
	"skiddie/internal/difficulty"
)

const (
	KeyRoundsToWin         = "rounds_to_win"
	KeyMinArgs             = "min_args"
	KeyMaxArgs             = "max_args"
	KeyRedirectProbability = "redirect_probability"
	KeyPipeProbability     = "pipe_probability"
)

// Settings are the difficulty arguments the game understands.
type Settings struct {
	RoundsToWin         int
	MinArgs             int
	MaxArgs             int
	RedirectProbability float64
	PipeProbability     float64
}

// SettingsFrom reads Settings out of preset arguments. Unknown keys are an
// error so a typo in an override file does not go unnoticed.
func SettingsFrom(args difficulty.Args) (Settings, error) {
	var s Settings
	if err := args.Only(KeyRoundsToWin, KeyMinArgs, KeyMaxArgs, KeyRedirectProbability, KeyPipeProbability); err != nil {
		return s, err
	}
	var err error
	if s.RoundsToWin, err = args.Int(KeyRoundsToWin); err != nil {
		return s, err
	}
	if s.MinArgs, err = args.Int(KeyMinArgs); err != nil {
		return s, err
	}
	if s.MaxArgs, err = args.Int(KeyMaxArgs); err != nil {
		return s, err
	}
	if s.RedirectProbability, err = args.Float(KeyRedirectProbability); err != nil {
		return s, err
	}
	if s.PipeProbability, err = args.Float(KeyPipeProbability); err != nil {
		return s, err
	}
	return s, nil
}
