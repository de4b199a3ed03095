package widget

// Strategy is one guess at the widget's DOM shape: a container selector
// for the repeating match element plus sub-selector alternatives for
// each field. Strategies are tried in order and the first whose
// container selector yields at least one element wins.
type Strategy struct {
	Name      string   `json:"name"`
	Container string   `json:"container"`
	Home      []string `json:"home"`
	Away      []string `json:"away"`
	Score     []string `json:"score"`
	Date      []string `json:"date"`
	Time      []string `json:"time"`
	Status    []string `json:"status"`
	Link      []string `json:"link"`
}

// DefaultStrategies returns the ordered selector guesses for the live
// widget. The first entry is the current markup; the rest are fallbacks
// for older or regional layouts.
func DefaultStrategies() []Strategy {
	return []Strategy{
		{
			Name:      "match-row",
			Container: ".match-row, [class*='match-row'], [class*='matchRow']",
			Home:      []string{".team-home", "[class*='home'] [class*='name']", "[class*='home-team']"},
			Away:      []string{".team-away", "[class*='away'] [class*='name']", "[class*='away-team']"},
			Score:     []string{".score", "[class*='score']", "[class*='result']"},
			Date:      []string{".match-date", "[class*='date']", "time[datetime]"},
			Time:      []string{".match-time", "[class*='kickoff']", "[class*='time']"},
			Status:    []string{".match-status", "[class*='status']"},
			Link:      []string{"a[href]"},
		},
		{
			Name:      "fixture-card",
			Container: "[class*='fixture'], [data-testid*='fixture'], [data-testid*='match']",
			Home:      []string{"[class*='home']", "[itemprop='homeTeam']"},
			Away:      []string{"[class*='away']", "[itemprop='awayTeam']"},
			Score:     []string{"[class*='score']"},
			Date:      []string{"[class*='date']", "time"},
			Time:      []string{"[class*='time']"},
			Status:    []string{"[class*='status']"},
			Link:      []string{"a[href]"},
		},
		{
			Name:      "table-row",
			Container: "table tr:has(td)",
			Home:      []string{"td:nth-child(1)", "td:first-child"},
			Away:      []string{"td:nth-child(3)", "td:last-child"},
			Score:     []string{"td:nth-child(2)"},
			Date:      []string{"td[class*='date']", "td:nth-child(4)"},
			Time:      []string{"td[class*='time']"},
			Status:    []string{"td[class*='status']"},
			Link:      []string{"a[href]"},
		},
		{
			Name:      "list-item",
			Container: "ul li[class*='match'], ol li[class*='match'], li[class*='game']",
			Home:      []string{"span:first-child", "[class*='home']"},
			Away:      []string{"span:last-child", "[class*='away']"},
			Score:     []string{"[class*='score']"},
			Date:      []string{"[class*='date']"},
			Time:      []string{"[class*='time']"},
			Status:    []string{"[class*='status']"},
			Link:      []string{"a[href]"},
		},
	}
}
