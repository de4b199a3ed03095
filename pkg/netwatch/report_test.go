package netwatch

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize_ByMethod(t *testing.T) {
	records := []Record{
		{URL: "https://a.example/x", Method: "GET"},
		{URL: "https://a.example/y", Method: "GET"},
		{URL: "https://a.example/z", Method: "POST"},
	}

	rep := Summarize(records)

	assert.Equal(t, 3, rep.Total)
	assert.Equal(t, map[string]int{"GET": 2, "POST": 1}, rep.ByMethod)
}

func TestSummarize_UnparsableURLSkippedFromDomains(t *testing.T) {
	records := []Record{
		{URL: "https://a.example/x", Method: "GET"},
		{URL: "://not-a-url", Method: "GET"},
		{URL: "/relative/path", Method: "GET"},
	}

	var rep Report
	require.NotPanics(t, func() { rep = Summarize(records) })

	assert.Equal(t, 3, rep.Total)
	assert.Equal(t, map[string]int{"a.example": 1}, rep.ByDomain)
	// Skipped URLs still count everywhere else.
	assert.Equal(t, 3, rep.ByMethod["GET"])
}

func TestSummarize_StatusOnlyForResolved(t *testing.T) {
	records := []Record{
		{URL: "https://a.example/1", Method: "GET", Resolved: true, Status: 200, ResponseTime: 100 * time.Millisecond},
		{URL: "https://a.example/2", Method: "GET", Resolved: true, Status: 200, ResponseTime: 300 * time.Millisecond, CacheHinted: true},
		{URL: "https://a.example/3", Method: "GET"},
	}

	rep := Summarize(records)

	assert.Equal(t, 2, rep.Resolved)
	assert.Equal(t, map[int]int{200: 2}, rep.ByStatus)
	assert.Equal(t, 200*time.Millisecond, rep.AvgResponseTime)
	assert.Equal(t, 1, rep.CacheHinted)
}

func TestClassifyURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://site.example/api/v1/matches", TypeAPI},
		{"https://site.example/livedata/feed", TypeData},
		{"https://cdn.example/bundle.js", TypeAssets},
		{"https://cdn.example/logo.png", TypeAssets},
		{"https://site.example/static/app.bin", TypeAssets},
		{"https://site.example/page", TypeOther},
		// "api" wins over the asset extension: first match in order.
		{"https://site.example/api/client.js", TypeAPI},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyURL(tt.url))
		})
	}
}

func TestSummarize_Empty(t *testing.T) {
	rep := Summarize(nil)

	assert.Equal(t, 0, rep.Total)
	assert.Empty(t, rep.ByMethod)
	assert.Equal(t, time.Duration(0), rep.AvgResponseTime)
}

func TestWriteHTML(t *testing.T) {
	records := []Record{
		{URL: "https://a.example/api/x", Method: "GET", Resolved: true, Status: 200},
		{URL: "https://b.example/img.png", Method: "GET", Resolved: true, Status: 304, CacheHinted: true},
	}
	rep := Summarize(records)

	path := filepath.Join(t.TempDir(), "out", "report.html")
	require.NoError(t, WriteHTML(rep, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	html := string(data)
	assert.Contains(t, html, "Network Report")
	assert.Contains(t, html, "a.example")
	assert.Contains(t, html, "304")
	assert.Contains(t, html, "By method")
	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
}
