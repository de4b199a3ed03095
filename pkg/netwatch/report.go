package netwatch

import (
	"fmt"
	"html/template"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Report summarizes a recorded traffic sequence. Maps count requests per
// dimension; status counts cover only records that received a matched
// response.
type Report struct {
	Total           int            `json:"total"`
	Resolved        int            `json:"resolved"`
	AvgResponseTime time.Duration  `json:"avgResponseTime"`
	CacheHinted     int            `json:"cacheHinted"`
	ByMethod        map[string]int `json:"byMethod"`
	ByDomain        map[string]int `json:"byDomain"`
	ByType          map[string]int `json:"byType"`
	ByStatus        map[int]int    `json:"byStatus"`
}

// Traffic type buckets, checked in order; first match wins.
const (
	TypeAPI    = "api"
	TypeData   = "data"
	TypeAssets = "assets"
	TypeOther  = "other"
)

var assetMarkers = []string{
	".js", ".css", ".png", ".jpg", ".jpeg", ".gif", ".svg",
	".woff", ".woff2", ".ico", "/static/", "/assets/",
}

// ClassifyURL assigns a coarse traffic type by substring matching on the
// URL, in the order api, data, assets, other.
func ClassifyURL(rawURL string) string {
	lower := strings.ToLower(rawURL)
	switch {
	case strings.Contains(lower, "api"):
		return TypeAPI
	case strings.Contains(lower, "data"):
		return TypeData
	}
	for _, marker := range assetMarkers {
		if strings.Contains(lower, marker) {
			return TypeAssets
		}
	}
	return TypeOther
}

// Summarize aggregates the records into a Report. URLs that do not parse
// or have no hostname are skipped from the domain counts; everything
// else about them still counts. Deterministic for identical input.
func Summarize(records []Record) Report {
	rep := Report{
		ByMethod: make(map[string]int),
		ByDomain: make(map[string]int),
		ByType:   make(map[string]int),
		ByStatus: make(map[int]int),
	}

	var totalResponse time.Duration
	for _, r := range records {
		rep.Total++
		rep.ByMethod[r.Method]++
		rep.ByType[ClassifyURL(r.URL)]++

		if u, err := url.Parse(r.URL); err == nil && u.Hostname() != "" {
			rep.ByDomain[u.Hostname()]++
		}

		if r.Resolved {
			rep.Resolved++
			rep.ByStatus[r.Status]++
			totalResponse += r.ResponseTime
			if r.CacheHinted {
				rep.CacheHinted++
			}
		}
	}

	if rep.Resolved > 0 {
		rep.AvgResponseTime = totalResponse / time.Duration(rep.Resolved)
	}
	return rep
}

// LogSummary emits one log line per report dimension.
func (r Report) LogSummary(log *logrus.Logger) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	log.WithFields(logrus.Fields{
		"total":       r.Total,
		"resolved":    r.Resolved,
		"cacheHinted": r.CacheHinted,
		"avgResponse": r.AvgResponseTime,
	}).Info("network summary")
	log.WithField("byMethod", r.ByMethod).Info("requests by method")
	log.WithField("byDomain", r.ByDomain).Info("requests by domain")
	log.WithField("byType", r.ByType).Info("requests by type")
	log.WithField("byStatus", r.ByStatus).Info("requests by status")
}

type reportRow struct {
	Key   string
	Count int
}

type reportSection struct {
	Caption string
	Rows    []reportRow
}

type reportPage struct {
	GeneratedAt string
	Report      Report
	Sections    []reportSection
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Network Report</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; margin-bottom: 1.5em; }
th, td { border: 1px solid #ccc; padding: 4px 10px; text-align: left; }
caption { font-weight: bold; text-align: left; padding: 4px 0; }
</style>
</head>
<body>
<h1>Network Report</h1>
<p>Generated {{.GeneratedAt}}: {{.Report.Total}} requests, {{.Report.Resolved}} resolved,
{{.Report.CacheHinted}} cache-hinted, avg response {{.Report.AvgResponseTime}}</p>
{{range .Sections}}<table>
<caption>{{.Caption}}</caption>
<tr><th>Key</th><th>Count</th></tr>
{{range .Rows}}<tr><td>{{.Key}}</td><td>{{.Count}}</td></tr>
{{end}}</table>
{{end}}</body>
</html>
`))

// WriteHTML renders the report to a static HTML file at path, creating
// parent directories. Row order is sorted for stable output.
func WriteHTML(rep Report, path string) error {
	page := reportPage{
		GeneratedAt: time.Now().Format(time.RFC3339),
		Report:      rep,
		Sections: []reportSection{
			{Caption: "By method", Rows: sortedRows(rep.ByMethod)},
			{Caption: "By domain", Rows: sortedRows(rep.ByDomain)},
			{Caption: "By type", Rows: sortedRows(rep.ByType)},
			{Caption: "By status", Rows: sortedStatusRows(rep.ByStatus)},
		},
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	if err := reportTemplate.Execute(f, page); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}

func sortedRows(m map[string]int) []reportRow {
	rows := make([]reportRow, 0, len(m))
	for k, v := range m {
		rows = append(rows, reportRow{Key: k, Count: v})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Key < rows[j].Key })
	return rows
}

func sortedStatusRows(m map[int]int) []reportRow {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	rows := make([]reportRow, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, reportRow{Key: fmt.Sprintf("%d", k), Count: m[k]})
	}
	return rows
}
