package prediction

import (
	"errors"
	"time"
)

// Type is the dimension of a match a fan predicts on. A fan may hold at most
// one prediction per (match, type).
type Type string

const (
	TypeWinner     Type = "winner"
	TypeTopScorer  Type = "top_scorer"
	TypeManOfMatch Type = "man_of_match"
)

var AllTypes = map[Type]struct{}{
	TypeWinner:     {},
	TypeTopScorer:  {},
	TypeManOfMatch: {},
}

var (
	ErrDuplicate   = errors.New("prediction already exists for this match and type")
	ErrUnknownType = errors.New("unknown prediction type")
)

// Prediction is a fan's guess for one dimension of one match. IsCorrect is
// nil until the match outcome is settled and is written exactly once.
type Prediction struct {
	ID           string
	FanID        string
	MatchID      string
	Type         Type
	Value        string
	IsCorrect    *bool
	PointsEarned int64
	CreatedAt    time.Time
	SettledAt    *time.Time
}

func (p Prediction) Settled() bool {
	return p.IsCorrect != nil
}
