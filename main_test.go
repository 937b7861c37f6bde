package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	dto "github.com/prometheus/client_model/go"

	"github.com/ktanaka/mal-mcp-server/metrics"
)

func TestCountRequests(t *testing.T) {
	handler := countRequests(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want 418 passed through", rec.Code)
	}

	counter, err := metrics.HTTPRequestsTotal.GetMetricWithLabelValues("GET", "418")
	if err != nil {
		t.Fatalf("failed to get metric: %v", err)
	}
	var m dto.Metric
	if err := counter.Write(&m); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	if m.Counter.GetValue() < 1 {
		t.Error("expected request counter to be incremented")
	}
}

func TestCountRequestsDefaultsTo200(t *testing.T) {
	handler := countRequests(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	counter, err := metrics.HTTPRequestsTotal.GetMetricWithLabelValues("GET", "200")
	if err != nil {
		t.Fatalf("failed to get metric: %v", err)
	}
	var m dto.Metric
	if err := counter.Write(&m); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	if m.Counter.GetValue() < 1 {
		t.Error("expected request counter to be incremented")
	}
}
