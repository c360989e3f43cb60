package app

import "strings"

// Traced queries are collapsed to one line and capped so span attributes
// stay readable for the wide leaderboard and settlement statements.
const tracedQueryCap = 512

func formatDBQueryForTrace(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return ""
	}

	flat := strings.Join(fields, " ")
	if len(flat) > tracedQueryCap {
		flat = flat[:tracedQueryCap] + "..."
	}

	return flat
}
