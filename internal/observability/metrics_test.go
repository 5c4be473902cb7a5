package observability

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestMetricsHandlerExposesCounters(t *testing.T) {
	m := NewMetrics()
	m.ObserveAPI("GET", "/recipes/popular", "200", 12*time.Millisecond)
	m.ObserveStore("recommend", errors.New("boom"), time.Millisecond)
	m.IncRecommendation("content")
	m.IncRatingMutation("upsert", "create")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		`rg_api_requests_total{method="GET",route="/recipes/popular",status="200"} 1`,
		`rg_graph_store_duration_seconds_count{op="recommend",outcome="error"} 1`,
		`rg_recommendations_total{mode="content"} 1`,
		`rg_rating_mutations_total{op="upsert",transition="create"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("metrics output missing %q", want)
		}
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveAPI("GET", "/", "200", time.Millisecond)
	m.ApiInflightInc()
	m.ApiInflightDec()
	m.SetBreakerState("neo4j", 2)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
}
