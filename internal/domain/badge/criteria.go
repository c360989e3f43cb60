package badge

import (
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
)

// Kind discriminates the criterion variants stored with each badge.
type Kind string

const (
	KindStreak      Kind = "streak"
	KindPoints      Kind = "points"
	KindPredictions Kind = "predictions"
)

var ErrUnknownCriterionKind = errors.New("unknown badge criterion kind")

// Snapshot is the live fan state a criterion is tested against.
type Snapshot struct {
	Points             int64
	CurrentStreak      int
	CorrectPredictions int
}

// Criterion is a closed set of predicate variants, one per criterion kind.
type Criterion interface {
	Kind() Kind
	Met(state Snapshot) bool
}

// StreakAtLeast fires once the fan's daily-engagement streak reaches Days.
type StreakAtLeast struct {
	Days int
}

func (c StreakAtLeast) Kind() Kind { return KindStreak }

func (c StreakAtLeast) Met(state Snapshot) bool {
	return state.CurrentStreak >= c.Days
}

// PointsAtLeast fires once the fan's cumulative points reach Points.
type PointsAtLeast struct {
	Points int64
}

func (c PointsAtLeast) Kind() Kind { return KindPoints }

func (c PointsAtLeast) Met(state Snapshot) bool {
	return state.Points >= c.Points
}

// CorrectPredictionsAtLeast fires once the fan has Count settled-correct
// predictions.
type CorrectPredictionsAtLeast struct {
	Count int
}

func (c CorrectPredictionsAtLeast) Kind() Kind { return KindPredictions }

func (c CorrectPredictionsAtLeast) Met(state Snapshot) bool {
	return state.CorrectPredictions >= c.Count
}

type criterionJSON struct {
	Type  string `json:"type"`
	Value int64  `json:"value"`
}

// ParseCriterion decodes the stored {"type":...,"value":...} form into its
// typed variant.
func ParseCriterion(raw []byte) (Criterion, error) {
	var decoded criterionJSON
	if err := sonic.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("unmarshal badge criterion: %w", err)
	}
	if decoded.Value < 0 {
		return nil, fmt.Errorf("badge criterion value must be >= 0, got %d", decoded.Value)
	}

	switch Kind(decoded.Type) {
	case KindStreak:
		return StreakAtLeast{Days: int(decoded.Value)}, nil
	case KindPoints:
		return PointsAtLeast{Points: decoded.Value}, nil
	case KindPredictions:
		return CorrectPredictionsAtLeast{Count: int(decoded.Value)}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCriterionKind, decoded.Type)
	}
}

// EncodeCriterion renders a criterion back into its stored JSON form.
func EncodeCriterion(c Criterion) ([]byte, error) {
	var value int64
	switch v := c.(type) {
	case StreakAtLeast:
		value = int64(v.Days)
	case PointsAtLeast:
		value = v.Points
	case CorrectPredictionsAtLeast:
		value = int64(v.Count)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownCriterionKind, c)
	}

	return sonic.Marshal(criterionJSON{Type: string(c.Kind()), Value: value})
}
