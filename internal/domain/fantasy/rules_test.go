package fantasy

import (
	"errors"
	"fmt"
	"testing"
)

func rosterOf(n int) []string {
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		ids = append(ids, fmt.Sprintf("plr-%02d", i+1))
	}
	return ids
}

func TestValidateRoster_ExactSize(t *testing.T) {
	cleaned, err := ValidateRoster(rosterOf(11), DefaultRules())
	if err != nil {
		t.Fatalf("expected 11-player roster to pass, got %v", err)
	}
	if len(cleaned) != 11 {
		t.Fatalf("expected 11 cleaned ids, got %d", len(cleaned))
	}
}

func TestValidateRoster_WrongSize(t *testing.T) {
	for _, n := range []int{0, 10, 12} {
		if _, err := ValidateRoster(rosterOf(n), DefaultRules()); !errors.Is(err, ErrInvalidRosterSize) {
			t.Fatalf("expected ErrInvalidRosterSize for %d players, got %v", n, err)
		}
	}
}

func TestValidateRoster_DuplicatePlayer(t *testing.T) {
	ids := rosterOf(11)
	ids[10] = ids[0]

	if _, err := ValidateRoster(ids, DefaultRules()); !errors.Is(err, ErrDuplicatePlayer) {
		t.Fatalf("expected ErrDuplicatePlayer, got %v", err)
	}
}

func TestValidateRoster_TrimsAndRejectsEmpty(t *testing.T) {
	ids := rosterOf(11)
	ids[3] = "  plr-99  "
	cleaned, err := ValidateRoster(ids, DefaultRules())
	if err != nil {
		t.Fatalf("expected roster to pass, got %v", err)
	}
	if cleaned[3] != "plr-99" {
		t.Fatalf("expected trimmed id, got %q", cleaned[3])
	}

	ids[3] = "   "
	if _, err := ValidateRoster(ids, DefaultRules()); err == nil {
		t.Fatal("expected empty player id to be rejected")
	}
}
