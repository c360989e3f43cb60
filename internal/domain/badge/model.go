package badge

import "time"

// Badge is static reference data describing one achievement and the
// criterion that earns it.
type Badge struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Criterion   Criterion
}

// Award records the fact "fan earned badge at time T". At most one award
// exists per (fan, badge) pair; the pair never transitions back.
type Award struct {
	FanID    string
	BadgeID  string
	EarnedAt time.Time
}
