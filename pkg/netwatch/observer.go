package netwatch

import (
	"strings"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"github.com/sirupsen/logrus"
)

// Record is one observed network request and, once matched, its response.
type Record struct {
	// URL and Method come from the request-will-be-sent event.
	URL    string `json:"url"`
	Method string `json:"method"`

	// Start is when the request event was observed.
	Start time.Time `json:"start"`

	// ResponseTime is the delay between the request and response events.
	// Zero until a response is matched.
	ResponseTime time.Duration `json:"responseTime"`

	// Status is the HTTP status code, 0 until a response is matched.
	Status int `json:"status"`

	// CacheHinted is true when the matched response carried a
	// Cache-Control or ETag header. Header presence only: it does not
	// verify an actual cache hit.
	CacheHinted bool `json:"cacheHinted"`

	// Resolved marks records whose response event was seen.
	Resolved bool `json:"resolved"`
}

// Observer accumulates Records for a single page. Create one per page;
// its state is never shared across tests.
type Observer struct {
	mu      sync.Mutex
	records []Record
	clock   Clock
	log     *logrus.Logger
}

// NewObserver returns an empty observer. A nil clock means the system
// clock; a nil logger means the standard logrus logger.
func NewObserver(clock Clock, log *logrus.Logger) *Observer {
	if clock == nil {
		clock = systemClock{}
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Observer{clock: clock, log: log}
}

// Attach subscribes to the page's request/response lifecycle events.
// The event goroutine ends when the page closes, so teardown is tied to
// the page lifetime and listeners never leak into the next test.
func (o *Observer) Attach(page *rod.Page) {
	wait := page.EachEvent(
		func(e *proto.NetworkRequestWillBeSent) {
			o.HandleRequest(e)
		},
		func(e *proto.NetworkResponseReceived) {
			o.HandleResponse(e)
		},
	)
	go wait()
}

// HandleRequest appends a new unresolved record for the request.
func (o *Observer) HandleRequest(e *proto.NetworkRequestWillBeSent) {
	if e == nil || e.Request == nil {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.records = append(o.records, Record{
		URL:    e.Request.URL,
		Method: e.Request.Method,
		Start:  o.clock.Now(),
	})
}

// HandleResponse matches the response to the earliest unresolved record
// with the same URL and fills in status, response time and the cache
// hint. Matching is by URL, not request ID: when several in-flight
// requests share a URL the response can be attributed to the wrong one.
// That approximation is part of the observed behavior under test and is
// kept as-is. A response with no matching record is ignored.
func (o *Observer) HandleResponse(e *proto.NetworkResponseReceived) {
	if e == nil || e.Response == nil {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	for i := range o.records {
		r := &o.records[i]
		if r.Resolved || r.URL != e.Response.URL {
			continue
		}
		r.Status = e.Response.Status
		r.ResponseTime = o.clock.Now().Sub(r.Start)
		r.CacheHinted = hasCacheHeaders(e.Response.Headers)
		r.Resolved = true
		return
	}
}

// Records returns a snapshot copy of everything observed so far.
func (o *Observer) Records() []Record {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]Record, len(o.records))
	copy(out, o.records)
	return out
}

func hasCacheHeaders(headers proto.NetworkHeaders) bool {
	for name := range headers {
		switch strings.ToLower(name) {
		case "cache-control", "etag":
			return true
		}
	}
	return false
}
