package widget

import "strings"

// Validators are pure, total predicates: they never fail and have no
// side effects. They classify scraped records, they do not reject them.

// ValidateTeamName reports whether s is non-empty after trimming.
func ValidateTeamName(s string) bool {
	return strings.TrimSpace(s) != ""
}

// ValidateMatch reports whether the record has both team names and a
// date. It says nothing about scores or status.
func ValidateMatch(m Match) bool {
	return ValidateTeamName(m.HomeTeam) && ValidateTeamName(m.AwayTeam) && m.Date != ""
}

// IsPlayedMatch reports whether both scores are present.
func IsPlayedMatch(m Match) bool {
	return m.HomeScore != nil && m.AwayScore != nil
}

// IsUpcomingMatch reports whether the record is not played and shows a
// kickoff time.
func IsUpcomingMatch(m Match) bool {
	return !IsPlayedMatch(m) && strings.TrimSpace(m.Kickoff) != ""
}
