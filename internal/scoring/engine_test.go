package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-9

func TestComputeSessionScore_Color(t *testing.T) {
	tests := []struct {
		name  string
		trial ColorTrial
		want  float64
	}{
		{"match", ColorTrial{CorrectAnswer: "red", UserAnswer: "red", Time: 1}, 100.7998},
		{"miss", ColorTrial{CorrectAnswer: "red", UserAnswer: "blue", Time: 1}, 99.9998},
		{"match zero time", ColorTrial{CorrectAnswer: "green", UserAnswer: "green"}, 100.8},
		{"case sensitive", ColorTrial{CorrectAnswer: "Red", UserAnswer: "red", Time: 2500}, 99.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeSessionScore(GameColor, []Trial{tt.trial})
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, epsilon)
		})
	}
}

func TestComputeSessionScore_ColorMatchesFormula(t *testing.T) {
	for _, elapsed := range []float64{0, 1, 10.5, 999, 1000, 123456} {
		for _, match := range []bool{true, false} {
			trial := ColorTrial{CorrectAnswer: "red", UserAnswer: "blue", Time: elapsed}
			want := 100 - elapsed*0.2/1000
			if match {
				trial.UserAnswer = "red"
				want += 0.8
			}
			got, err := ComputeSessionScore(GameColor, []Trial{trial})
			require.NoError(t, err)
			assert.InDelta(t, want, got, epsilon, "elapsed=%v match=%v", elapsed, match)
		}
	}
}

func TestNumberTrial_PartialMatch(t *testing.T) {
	for _, elapsed := range []float64{0, 1, 750} {
		trial := NumberTrial{CorrectAnswers: []int{1, 0, 1}, UserAnswers: []int{1, 1, 1}, Time: elapsed}
		got, err := trial.Score()
		require.NoError(t, err)
		assert.InDelta(t, (2.0/3.0)*0.8-elapsed*0.2/1000, got, epsilon)
	}
}

func TestComputeSessionScore_Number(t *testing.T) {
	trials := []Trial{
		NumberTrial{CorrectAnswers: []int{4, 8, 15, 16}, UserAnswers: []int{4, 8, 15, 16}, Time: 1000},
		NumberTrial{CorrectAnswers: []int{23, 42}, UserAnswers: []int{42, 23}, Time: 0},
	}
	got, err := ComputeSessionScore(GameNumber, trials)
	require.NoError(t, err)
	assert.InDelta(t, 100+(0.8-0.2)+0, got, epsilon)
}

func TestComputeSessionScore_Memory(t *testing.T) {
	trials := []Trial{
		MemoryTrial{WrongMatches: 20, Time: 1},
		MemoryTrial{WrongMatches: 20, Time: 1},
	}
	got, err := ComputeSessionScore(GameMemory, trials)
	require.NoError(t, err)
	assert.InDelta(t, 67.9996, got, epsilon)
}

func TestMemoryTrial_Monotonic(t *testing.T) {
	prev := math.Inf(1)
	for wrong := 0; wrong <= 10; wrong++ {
		got, err := MemoryTrial{WrongMatches: wrong, Time: 500}.Score()
		require.NoError(t, err)
		assert.Less(t, got, prev, "wrong=%d", wrong)
		prev = got
	}

	prev = math.Inf(1)
	for _, elapsed := range []float64{0, 1, 100, 5000, 60000} {
		got, err := MemoryTrial{WrongMatches: 3, Time: elapsed}.Score()
		require.NoError(t, err)
		assert.Less(t, got, prev, "time=%v", elapsed)
		prev = got
	}
}

func TestComputeSessionScore_SumsAcrossTrials(t *testing.T) {
	trial := ColorTrial{CorrectAnswer: "red", UserAnswer: "red", Time: 1}
	one, err := ComputeSessionScore(GameColor, []Trial{trial})
	require.NoError(t, err)
	three, err := ComputeSessionScore(GameColor, []Trial{trial, trial, trial})
	require.NoError(t, err)

	assert.InDelta(t, (one-BaselineScore)*3, three-BaselineScore, epsilon)
}

func TestComputeSessionScore_EmptySession(t *testing.T) {
	for _, gt := range GameTypes {
		t.Run(gt.String(), func(t *testing.T) {
			_, err := ComputeSessionScore(gt, nil)
			assert.ErrorIs(t, err, ErrInvalidInput)

			_, err = ComputeSessionScore(gt, []Trial{})
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestComputeSessionScore_InvalidTrials(t *testing.T) {
	tests := []struct {
		name     string
		gameType GameType
		trials   []Trial
	}{
		{"number length mismatch", GameNumber, []Trial{NumberTrial{CorrectAnswers: []int{1, 2, 3}, UserAnswers: []int{1, 2}}}},
		{"number empty sequences", GameNumber, []Trial{NumberTrial{CorrectAnswers: []int{}, UserAnswers: []int{}}}},
		{"color negative time", GameColor, []Trial{ColorTrial{CorrectAnswer: "red", UserAnswer: "red", Time: -1}}},
		{"number negative time", GameNumber, []Trial{NumberTrial{CorrectAnswers: []int{1}, UserAnswers: []int{1}, Time: -0.5}}},
		{"memory negative time", GameMemory, []Trial{MemoryTrial{WrongMatches: 1, Time: -10}}},
		{"memory NaN time", GameMemory, []Trial{MemoryTrial{Time: math.NaN()}}},
		{"color infinite time", GameColor, []Trial{ColorTrial{Time: math.Inf(1)}}},
		{"memory negative wrong matches", GameMemory, []Trial{MemoryTrial{WrongMatches: -1}}},
		{"shape mismatch", GameColor, []Trial{MemoryTrial{WrongMatches: 1}}},
		{"nil trial", GameMemory, []Trial{nil}},
		{"unknown game type", GameType("chess"), []Trial{MemoryTrial{}}},
		{"second trial invalid", GameMemory, []Trial{MemoryTrial{WrongMatches: 1}, MemoryTrial{Time: -1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeSessionScore(tt.gameType, tt.trials)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestParseGameType(t *testing.T) {
	tests := []struct {
		in      string
		want    GameType
		wantErr bool
	}{
		{"color", GameColor, false},
		{"color_game", GameColor, false},
		{"Memory", GameMemory, false},
		{" number_game ", GameNumber, false},
		{"chess", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseGameType(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidInput, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}
