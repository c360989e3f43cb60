package engagement

import "github.com/cricvibe/cricvibe-api/internal/domain/prediction"

// Bounties are the fixed participation awards paid at submission time.
// The product pays prediction bounties before the outcome is known; keeping
// the amounts here lets a correctness-based payout replace them without
// touching call sites.
type Bounties struct {
	ByPredictionType map[prediction.Type]int64
	FantasyTeam      int64
}

func DefaultBounties() Bounties {
	return Bounties{
		ByPredictionType: map[prediction.Type]int64{
			prediction.TypeWinner:     50,
			prediction.TypeTopScorer:  100,
			prediction.TypeManOfMatch: 150,
		},
		FantasyTeam: 30,
	}
}

// ForPrediction returns the submission bounty for one prediction type.
func (b Bounties) ForPrediction(t prediction.Type) int64 {
	return b.ByPredictionType[t]
}
