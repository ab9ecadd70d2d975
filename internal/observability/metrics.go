package observability

import (
	"strconv"
	"sync"
	"time"
)

// Metrics provides basic in-memory counters.
type Metrics struct {
	mu            sync.Mutex
	requestCount  map[string]int64
	errorCount    map[string]int64
	decisionCount map[string]int64
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		requestCount:  make(map[string]int64),
		errorCount:    make(map[string]int64),
		decisionCount: make(map[string]int64),
	}
}

// RecordRequest increments counters for requests.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := path + "|" + method + "|" + strconv.Itoa(status)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestCount[key]++
}

// RecordError increments error counters.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	key := path + "|" + method + "|" + code
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorCount[key]++
}

// RecordAuthDecision increments authorization outcome counters. Outcome is
// "granted", "anonymous", or the denial reason.
func (m *Metrics) RecordAuthDecision(resource, method, outcome string) {
	if m == nil {
		return
	}
	key := resource + "|" + method + "|" + outcome
	m.mu.Lock()
	defer m.mu.Unlock()
	m.decisionCount[key]++
}

// AuthDecisionCount returns the current counter for an authorization outcome.
func (m *Metrics) AuthDecisionCount(resource, method, outcome string) int64 {
	if m == nil {
		return 0
	}
	key := resource + "|" + method + "|" + outcome
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.decisionCount[key]
}
