package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestRecordRequest(t *testing.T) {
	tests := []struct {
		name       string
		tool       string
		duration   float64
		success    bool
		wantStatus string
	}{
		{
			name:       "successful request",
			tool:       "getanimeranking",
			duration:   0.05,
			success:    true,
			wantStatus: "success",
		},
		{
			name:       "failed request",
			tool:       "getanimeranking",
			duration:   1.0,
			success:    false,
			wantStatus: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			RecordRequest(tt.tool, tt.duration, tt.success)

			counter, err := RequestsTotal.GetMetricWithLabelValues(tt.tool, tt.wantStatus)
			if err != nil {
				t.Fatalf("failed to get metric: %v", err)
			}

			var m dto.Metric
			if err := counter.Write(&m); err != nil {
				t.Fatalf("failed to write metric: %v", err)
			}

			if m.Counter.GetValue() < 1 {
				t.Error("expected counter to be incremented")
			}
		})
	}
}

func TestRecordAPICall(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		status     int
		wantStatus string
	}{
		{
			name:       "successful call",
			method:     "GET",
			status:     200,
			wantStatus: "200",
		},
		{
			name:       "upstream rejection",
			method:     "PATCH",
			status:     404,
			wantStatus: "404",
		},
		{
			name:       "transport failure",
			method:     "DELETE",
			status:     0,
			wantStatus: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			RecordAPICall(tt.method, 0.1, tt.status)

			counter, err := MALAPIRequestsTotal.GetMetricWithLabelValues(tt.method, tt.wantStatus)
			if err != nil {
				t.Fatalf("failed to get metric: %v", err)
			}

			var m dto.Metric
			if err := counter.Write(&m); err != nil {
				t.Fatalf("failed to write metric: %v", err)
			}

			if m.Counter.GetValue() < 1 {
				t.Error("expected counter to be incremented")
			}
		})
	}
}

func TestAuthCounters(t *testing.T) {
	before := getCounterValue(t, AuthCompleted)
	AuthCompleted.Inc()
	if getCounterValue(t, AuthCompleted) != before+1 {
		t.Error("expected auth completed counter to increment")
	}

	AuthFailures.WithLabelValues("invalid_state").Inc()
	failures, err := AuthFailures.GetMetricWithLabelValues("invalid_state")
	if err != nil {
		t.Fatalf("failed to get metric: %v", err)
	}
	var m dto.Metric
	if err := failures.Write(&m); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	if m.Counter.GetValue() < 1 {
		t.Error("expected auth failures counter to be incremented")
	}
}

func TestMetricsRegistered(t *testing.T) {
	metrics := []prometheus.Collector{
		RequestsTotal,
		RequestDuration,
		RequestInFlight,
		MALAPILatency,
		MALAPIRequestsTotal,
		AuthRequired,
		AuthFailures,
		AuthCompleted,
		PanicsRecovered,
		HTTPRequestsTotal,
	}

	for i, m := range metrics {
		if m == nil {
			t.Errorf("metric at index %d is nil", i)
		}
	}
}

func TestNamespace(t *testing.T) {
	if Namespace != "mal_mcp" {
		t.Errorf("expected namespace 'mal_mcp', got '%s'", Namespace)
	}
}

// Helper to get counter value
func getCounterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	return m.Counter.GetValue()
}
