package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestHandlerServesCollectors(t *testing.T) {
	FramesRendered.WithLabelValues("rain").Inc()
	FetchesTotal.WithLabelValues("demo", "ok").Inc()
	RefreshesTotal.Inc()

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	NewServer(":0").Handler().ServeHTTP(w, req)

	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{
		`nimbus_frames_rendered_total{scene="rain"}`,
		`nimbus_fetches_total{source="demo",status="ok"}`,
		"nimbus_refreshes_total",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("expected %s in metrics output", want)
		}
	}
}

func TestHealthEndpoint(t *testing.T) {
	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	NewServer(":0").Handler().ServeHTTP(w, req)

	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status"`) {
		t.Error("expected status field in JSON response")
	}
}

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(FramesRendered.WithLabelValues("fog"))
	FramesRendered.WithLabelValues("fog").Add(3)
	if got := testutil.ToFloat64(FramesRendered.WithLabelValues("fog")); got != before+3 {
		t.Errorf("fog frames = %v, want %v", got, before+3)
	}
}
