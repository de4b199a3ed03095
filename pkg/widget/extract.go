package widget

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-rod/rod"
)

// extractJS runs in the page context. It walks the strategy list, stops
// at the first container selector that yields elements, and resolves
// every sub-field independently, defaulting to "".
const extractJS = `(strategies) => {
	const pickText = (el, sels) => {
		for (const sel of sels || []) {
			try {
				const sub = el.querySelector(sel);
				if (sub && sub.textContent && sub.textContent.trim()) {
					return sub.textContent.trim();
				}
			} catch (e) { /* bad selector guess, keep going */ }
		}
		return '';
	};
	const pickHref = (el, sels) => {
		for (const sel of sels || []) {
			try {
				const a = el.querySelector(sel);
				if (a && a.href) return a.href;
			} catch (e) { /* ignore */ }
		}
		return '';
	};
	for (const s of strategies) {
		let els;
		try {
			els = document.querySelectorAll(s.container);
		} catch (e) {
			continue;
		}
		if (!els || els.length === 0) continue;
		const matches = [];
		for (const el of els) {
			matches.push({
				homeTeam: pickText(el, s.home),
				awayTeam: pickText(el, s.away),
				score:    pickText(el, s.score),
				date:     pickText(el, s.date),
				kickoff:  pickText(el, s.time),
				status:   pickText(el, s.status),
				link:     pickHref(el, s.link),
			});
		}
		return { strategy: s.name, matches: matches };
	}
	return { strategy: '', matches: [] };
}`

// rawMatch mirrors what the page-context script produces; the score is
// still a display string at this point.
type rawMatch struct {
	HomeTeam string `json:"homeTeam"`
	AwayTeam string `json:"awayTeam"`
	Score    string `json:"score"`
	Date     string `json:"date"`
	Kickoff  string `json:"kickoff"`
	Status   string `json:"status"`
	Link     string `json:"link"`
}

type extraction struct {
	Strategy string     `json:"strategy"`
	Matches  []rawMatch `json:"matches"`
}

// Extract locates match elements on the page using the strategy list
// and returns the decoded records plus the name of the winning strategy
// (empty when nothing matched). An empty result is not an error; only
// evaluation transport failures are.
func Extract(page *rod.Page, strategies []Strategy) ([]Match, string, error) {
	res, err := page.Eval(extractJS, strategies)
	if err != nil {
		return nil, "", fmt.Errorf("failed to evaluate extraction script: %w", err)
	}

	ext, err := decodeExtraction(res.Value.Val())
	if err != nil {
		return nil, "", err
	}

	matches := make([]Match, 0, len(ext.Matches))
	for _, raw := range ext.Matches {
		matches = append(matches, raw.toMatch())
	}
	return matches, ext.Strategy, nil
}

// decodeExtraction converts the loosely typed eval result into the
// extraction struct via a JSON round trip.
func decodeExtraction(v interface{}) (extraction, error) {
	var ext extraction
	data, err := json.Marshal(v)
	if err != nil {
		return ext, fmt.Errorf("failed to encode extraction result: %w", err)
	}
	if err := json.Unmarshal(data, &ext); err != nil {
		return ext, fmt.Errorf("failed to decode extraction result: %w", err)
	}
	return ext, nil
}

func (r rawMatch) toMatch() Match {
	home, away := parseScore(r.Score)
	return Match{
		HomeTeam:  r.HomeTeam,
		AwayTeam:  r.AwayTeam,
		HomeScore: home,
		AwayScore: away,
		Date:      r.Date,
		Kickoff:   r.Kickoff,
		Status:    r.Status,
		Link:      r.Link,
	}
}

// parseScore splits a display score like "2 - 1" or "0:0" into numeric
// halves. Both sides must parse or neither is returned; anything else
// ("-", "vs", "") means an unplayed or unreadable score.
func parseScore(s string) (home, away *int) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var parts []string
	for _, sep := range []string{"-", ":", "–"} {
		if strings.Contains(s, sep) {
			parts = strings.SplitN(s, sep, 2)
			break
		}
	}
	if len(parts) != 2 {
		return nil, nil
	}

	h, errH := strconv.Atoi(strings.TrimSpace(parts[0]))
	a, errA := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errH != nil || errA != nil {
		return nil, nil
	}
	return &h, &a
}
