package observability

import "testing"

func TestAuthDecisionCounters(t *testing.T) {
	metrics := NewMetrics()

	metrics.RecordAuthDecision("campaigns", "DELETE", "granted")
	metrics.RecordAuthDecision("campaigns", "DELETE", "granted")
	metrics.RecordAuthDecision("campaigns", "DELETE", "permission denied")

	if got := metrics.AuthDecisionCount("campaigns", "DELETE", "granted"); got != 2 {
		t.Fatalf("granted count: got %d", got)
	}
	if got := metrics.AuthDecisionCount("campaigns", "DELETE", "permission denied"); got != 1 {
		t.Fatalf("denied count: got %d", got)
	}
	if got := metrics.AuthDecisionCount("campaigns", "GET", "granted"); got != 0 {
		t.Fatalf("unrelated count: got %d", got)
	}
}

func TestNilMetricsAreSafe(t *testing.T) {
	var metrics *Metrics
	metrics.RecordRequest("/x", "GET", 200, 0)
	metrics.RecordError("/x", "GET", "INTERNAL_ERROR")
	metrics.RecordAuthDecision("x", "GET", "granted")
	if got := metrics.AuthDecisionCount("x", "GET", "granted"); got != 0 {
		t.Fatalf("nil metrics count: got %d", got)
	}
}
