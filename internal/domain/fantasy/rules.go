package fantasy

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidRosterSize = errors.New("invalid roster size")
	ErrDuplicatePlayer   = errors.New("duplicate player in roster")
)

// Rules stores fantasy roster validation parameters.
type Rules struct {
	RosterSize int
}

func DefaultRules() Rules {
	return Rules{RosterSize: 11}
}

// ValidateRoster enforces the fixed roster size and rejects duplicate player
// ids. Returns the trimmed id list on success.
func ValidateRoster(playerIDs []string, rules Rules) ([]string, error) {
	if len(playerIDs) != rules.RosterSize {
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrInvalidRosterSize, rules.RosterSize, len(playerIDs))
	}

	cleaned := make([]string, 0, len(playerIDs))
	seen := make(map[string]struct{}, len(playerIDs))
	for _, id := range playerIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			return nil, fmt.Errorf("player id cannot be empty")
		}
		if _, ok := seen[id]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePlayer, id)
		}
		seen[id] = struct{}{}
		cleaned = append(cleaned, id)
	}

	return cleaned, nil
}
