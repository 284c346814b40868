package scoring

import (
	"fmt"
	"strings"
)

// GameType is the closed set of games the platform scores.
type GameType string

const (
	GameMemory GameType = "memory"
	GameColor  GameType = "color"
	GameNumber GameType = "number"
)

// GameTypes lists every supported game type in catalog order.
var GameTypes = []GameType{GameMemory, GameColor, GameNumber}

// ParseGameType accepts the short names and the legacy "<type>_game" tags.
func ParseGameType(s string) (GameType, error) {
	name := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "_game")
	for _, t := range GameTypes {
		if string(t) == name {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: unknown game type %q", ErrInvalidInput, s)
}

func (t GameType) Valid() bool {
	for _, known := range GameTypes {
		if t == known {
			return true
		}
	}
	return false
}

func (t GameType) String() string { return string(t) }
