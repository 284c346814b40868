package scoring

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type sessionEnvelope struct {
	Trials []json.RawMessage `json:"trials"`
}

// DecodeTrials parses a submitted session body into trials of the given
// type. The body is either {"trials": [...]} or a bare JSON array, and each
// element must carry exactly the fields of that game's trial shape.
func DecodeTrials(gameType GameType, body []byte) ([]Trial, error) {
	if !gameType.Valid() {
		return nil, fmt.Errorf("%w: unknown game type %q", ErrInvalidInput, string(gameType))
	}

	body = bytes.TrimSpace(body)
	var raw []json.RawMessage
	switch {
	case len(body) == 0:
		return nil, fmt.Errorf("%w: empty request body", ErrInvalidInput)
	case body[0] == '[':
		if err := json.Unmarshal(body, &raw); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	default:
		var env sessionEnvelope
		if err := json.Unmarshal(body, &env); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		raw = env.Trials
	}

	trials := make([]Trial, 0, len(raw))
	for i, item := range raw {
		trial, err := decodeTrial(gameType, item)
		if err != nil {
			return nil, fmt.Errorf("%w: trial %d: %v", ErrInvalidInput, i, err)
		}
		trials = append(trials, trial)
	}
	return trials, nil
}

// Wire shapes use pointers so a missing field can be told apart from a
// zero value.
type colorWire struct {
	Correct *string  `json:"correct" validate:"required,min=1"`
	User    *string  `json:"user" validate:"required"`
	Time    *float64 `json:"time" validate:"required"`
}

type numberWire struct {
	Correct []int    `json:"correct" validate:"required"`
	User    []int    `json:"user" validate:"required"`
	Time    *float64 `json:"time" validate:"required"`
}

type memoryWire struct {
	WrongMatches *int     `json:"wrongMatches" validate:"required"`
	Time         *float64 `json:"time" validate:"required"`
}

var trialValidator = newTrialValidator()

func newTrialValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})
	return v
}

func decodeTrial(gameType GameType, item json.RawMessage) (Trial, error) {
	item = bytes.TrimSpace(item)
	if len(item) == 0 || item[0] != '{' {
		return nil, errors.New("trial must be a JSON object")
	}

	switch gameType {
	case GameColor:
		var w colorWire
		if err := decodeWire(item, &w); err != nil {
			return nil, err
		}
		return ColorTrial{CorrectAnswer: *w.Correct, UserAnswer: *w.User, Time: *w.Time}, nil
	case GameNumber:
		var w numberWire
		if err := decodeWire(item, &w); err != nil {
			return nil, err
		}
		return NumberTrial{CorrectAnswers: w.Correct, UserAnswers: w.User, Time: *w.Time}, nil
	default:
		var w memoryWire
		if err := decodeWire(item, &w); err != nil {
			return nil, err
		}
		return MemoryTrial{WrongMatches: *w.WrongMatches, Time: *w.Time}, nil
	}
}

func decodeWire(item json.RawMessage, w interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(item))
	dec.DisallowUnknownFields()
	if err := dec.Decode(w); err != nil {
		return err
	}

	err := trialValidator.Struct(w)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	missing := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		missing = append(missing, fe.Field())
	}
	return fmt.Errorf("missing or empty fields: %s", strings.Join(missing, ", "))
}
