package widget

// Match is a single scheduled or completed game scraped from the page.
// Records are transient per probe run and never persisted. Malformed
// records are logged by callers, never rejected here.
type Match struct {
	HomeTeam string `json:"homeTeam"`
	AwayTeam string `json:"awayTeam"`

	// Scores are nil until the match has been played.
	HomeScore *int `json:"homeScore,omitempty"`
	AwayScore *int `json:"awayScore,omitempty"`

	Date string `json:"date"`

	// Kickoff is the displayed time of day, empty for played matches on
	// most layouts.
	Kickoff string `json:"kickoff,omitempty"`

	// Status is the page's own tag when one is shown, e.g. "FT",
	// "postponed", "canceled".
	Status string `json:"status,omitempty"`

	Link string `json:"link,omitempty"`
}
