// Package scoring turns the raw trials of one game session into a score.
//
// The weights, the time normalization and the baseline are fixed so that
// scores stay comparable with everything recorded before.
package scoring

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput marks malformed or inconsistent trial data.
var ErrInvalidInput = errors.New("invalid input")

const (
	// BaselineScore is added once per session, not per trial.
	BaselineScore = 100.0

	CorrectnessWeight = 0.8
	TimeWeight        = 0.2

	// TimeScale converts elapsed milliseconds into fractions of a point.
	TimeScale = 1000.0
)

// Trial is one recorded attempt within a session.
type Trial interface {
	GameType() GameType
	Score() (float64, error)
}

// ColorTrial asks the player to name a single color.
type ColorTrial struct {
	CorrectAnswer string  `json:"correct"`
	UserAnswer    string  `json:"user"`
	Time          float64 `json:"time"`
}

func (ColorTrial) GameType() GameType { return GameColor }

func (t ColorTrial) Score() (float64, error) {
	if err := checkElapsed(t.Time); err != nil {
		return 0, err
	}
	correct := 0.0
	if t.UserAnswer == t.CorrectAnswer {
		correct = 1.0
	}
	return correct*CorrectnessWeight - timePenalty(t.Time), nil
}

// NumberTrial asks the player to repeat a sequence of integers.
type NumberTrial struct {
	CorrectAnswers []int   `json:"correct"`
	UserAnswers    []int   `json:"user"`
	Time           float64 `json:"time"`
}

func (NumberTrial) GameType() GameType { return GameNumber }

func (t NumberTrial) Score() (float64, error) {
	if err := checkElapsed(t.Time); err != nil {
		return 0, err
	}
	length := len(t.CorrectAnswers)
	if length == 0 {
		return 0, fmt.Errorf("%w: number trial has no answers", ErrInvalidInput)
	}
	if len(t.UserAnswers) != length {
		return 0, fmt.Errorf("%w: number trial has %d user answers for %d correct answers",
			ErrInvalidInput, len(t.UserAnswers), length)
	}
	matching := 0
	for i, want := range t.CorrectAnswers {
		if t.UserAnswers[i] == want {
			matching++
		}
	}
	return float64(matching)/float64(length)*CorrectnessWeight - timePenalty(t.Time), nil
}

// MemoryTrial is one round of the card matching game.
type MemoryTrial struct {
	WrongMatches int     `json:"wrongMatches"`
	Time         float64 `json:"time"`
}

func (MemoryTrial) GameType() GameType { return GameMemory }

func (t MemoryTrial) Score() (float64, error) {
	if err := checkElapsed(t.Time); err != nil {
		return 0, err
	}
	if t.WrongMatches < 0 {
		return 0, fmt.Errorf("%w: wrong matches must not be negative", ErrInvalidInput)
	}
	return -float64(t.WrongMatches)*CorrectnessWeight - timePenalty(t.Time), nil
}

// ComputeSessionScore sums the per-trial scores of a session and adds the
// baseline. The result grows with the number of trials; it is not a mean.
func ComputeSessionScore(gameType GameType, trials []Trial) (float64, error) {
	if !gameType.Valid() {
		return 0, fmt.Errorf("%w: unknown game type %q", ErrInvalidInput, string(gameType))
	}
	if len(trials) == 0 {
		return 0, fmt.Errorf("%w: session has no trials", ErrInvalidInput)
	}

	total := 0.0
	for i, trial := range trials {
		if trial == nil || trial.GameType() != gameType {
			return 0, fmt.Errorf("%w: trial %d is not a %s trial", ErrInvalidInput, i, gameType)
		}
		score, err := trial.Score()
		if err != nil {
			return 0, fmt.Errorf("trial %d: %w", i, err)
		}
		total += score
	}
	return total + BaselineScore, nil
}

func timePenalty(elapsedMs float64) float64 {
	return elapsedMs * TimeWeight / TimeScale
}

func checkElapsed(elapsedMs float64) error {
	if math.IsNaN(elapsedMs) || math.IsInf(elapsedMs, 0) {
		return fmt.Errorf("%w: elapsed time is not a finite number", ErrInvalidInput)
	}
	if elapsedMs < 0 {
		return fmt.Errorf("%w: elapsed time must not be negative", ErrInvalidInput)
	}
	return nil
}
