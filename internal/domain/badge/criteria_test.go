package badge

import (
	"errors"
	"testing"
)

func TestParseCriterion_Variants(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		kind  Kind
		met   Snapshot
		unmet Snapshot
	}{
		{
			name:  "streak",
			raw:   `{"type":"streak","value":7}`,
			kind:  KindStreak,
			met:   Snapshot{CurrentStreak: 7},
			unmet: Snapshot{CurrentStreak: 6},
		},
		{
			name:  "points",
			raw:   `{"type":"points","value":500}`,
			kind:  KindPoints,
			met:   Snapshot{Points: 500},
			unmet: Snapshot{Points: 499},
		},
		{
			name:  "predictions",
			raw:   `{"type":"predictions","value":10}`,
			kind:  KindPredictions,
			met:   Snapshot{CorrectPredictions: 12},
			unmet: Snapshot{CorrectPredictions: 9},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			criterion, err := ParseCriterion([]byte(tc.raw))
			if err != nil {
				t.Fatalf("parse criterion failed: %v", err)
			}
			if criterion.Kind() != tc.kind {
				t.Fatalf("expected kind %s, got %s", tc.kind, criterion.Kind())
			}
			if !criterion.Met(tc.met) {
				t.Fatalf("expected criterion met for %+v", tc.met)
			}
			if criterion.Met(tc.unmet) {
				t.Fatalf("expected criterion unmet for %+v", tc.unmet)
			}
		})
	}
}

func TestParseCriterion_UnknownKind(t *testing.T) {
	_, err := ParseCriterion([]byte(`{"type":"followers","value":3}`))
	if !errors.Is(err, ErrUnknownCriterionKind) {
		t.Fatalf("expected ErrUnknownCriterionKind, got %v", err)
	}
}

func TestEncodeCriterion_RoundTrip(t *testing.T) {
	encoded, err := EncodeCriterion(PointsAtLeast{Points: 1000})
	if err != nil {
		t.Fatalf("encode criterion failed: %v", err)
	}

	decoded, err := ParseCriterion(encoded)
	if err != nil {
		t.Fatalf("parse encoded criterion failed: %v", err)
	}
	if decoded != (PointsAtLeast{Points: 1000}) {
		t.Fatalf("unexpected round-trip result: %#v", decoded)
	}
}
