// Package catalog loads the game definitions seeded at startup.
package catalog

import (
	"errors"
	"fmt"
	"os"

	"github.com/cognigames/cogni-backend/internal/scoring"
	"gopkg.in/yaml.v3"
)

type Definition struct {
	ID   int              `yaml:"id"`
	Type scoring.GameType `yaml:"type"`
	Name string           `yaml:"name"`
}

type File struct {
	Games []Definition `yaml:"games"`
}

var displayNames = map[scoring.GameType]string{
	scoring.GameColor:  "Color Game",
	scoring.GameMemory: "Memory Game",
	scoring.GameNumber: "Number Game",
}

func DisplayName(t scoring.GameType) string {
	if name, ok := displayNames[t]; ok {
		return name
	}
	return string(t)
}

// Defaults is used when no catalog file is present.
func Defaults() []Definition {
	return []Definition{
		{ID: 1, Type: scoring.GameColor, Name: DisplayName(scoring.GameColor)},
		{ID: 2, Type: scoring.GameMemory, Name: DisplayName(scoring.GameMemory)},
		{ID: 3, Type: scoring.GameNumber, Name: DisplayName(scoring.GameNumber)},
	}
}

// LoadFile reads a catalog file. A missing file yields Defaults.
func LoadFile(path string) ([]Definition, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Defaults(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read games config: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) ([]Definition, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse games config: %w", err)
	}

	seenIDs := make(map[int]bool, len(file.Games))
	seenTypes := make(map[scoring.GameType]bool, len(file.Games))
	defs := make([]Definition, 0, len(file.Games))
	for _, def := range file.Games {
		gameType, err := scoring.ParseGameType(string(def.Type))
		if err != nil {
			return nil, fmt.Errorf("game %d: %w", def.ID, err)
		}
		if def.ID <= 0 {
			return nil, fmt.Errorf("game %q: id must be positive", def.Type)
		}
		if seenIDs[def.ID] {
			return nil, fmt.Errorf("duplicate game id %d", def.ID)
		}
		if seenTypes[gameType] {
			return nil, fmt.Errorf("duplicate game type %q", gameType)
		}
		seenIDs[def.ID] = true
		seenTypes[gameType] = true

		def.Type = gameType
		if def.Name == "" {
			def.Name = DisplayName(gameType)
		}
		defs = append(defs, def)
	}
	return defs, nil
}
