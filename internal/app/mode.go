package app

import (
	"fmt"
	"hash/fnv"
	"strings"
	"time"
)

type GameMode string

const (
	ModeFreePlay GameMode = "free"
	// ModeDailyDrill seeds from the local date so every run on the same
	// day produces the same commands.
	ModeDailyDrill GameMode = "daily"
)

func parseMode(raw string) (GameMode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", string(ModeFreePlay):
		return ModeFreePlay, nil
	case string(ModeDailyDrill), "dailydrill":
		return ModeDailyDrill, nil
	default:
		return "", fmt.Errorf("invalid game mode %q", raw)
	}
}

// seedFor picks the random seed for a session.
func seedFor(mode GameMode, seed uint64, now time.Time) uint64 {
	if seed != 0 {
		return seed
	}
	if mode == ModeDailyDrill {
		h := fnv.New64a()
		_, _ = h.Write([]byte(now.Format(time.DateOnly)))
		return h.Sum64()
	}
	return uint64(now.UnixNano())
}
