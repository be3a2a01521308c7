package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/lox/nimbus/internal/forecast"
	"github.com/lox/nimbus/internal/httputil"
	"github.com/lox/nimbus/internal/metrics"
	"github.com/lox/nimbus/internal/models"
)

const DefaultWttrURL = "https://wttr.in"

// Wttr fetches current conditions from wttr.in's JSON format.
type Wttr struct {
	httpClient *http.Client
	baseURL    string
	city       string
	locator    *Locator
	logger     *slog.Logger

	// newBackOff builds the retry policy for one fetch.
	newBackOff func() backoff.BackOff
}

// NewWttr returns a client for city. An empty city is resolved with
// locator on every fetch; a nil locator leaves it to wttr.in.
func NewWttr(baseURL, city string, locator *Locator, logger *slog.Logger) *Wttr {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Wttr{
		httpClient: httputil.NewClient(),
		baseURL:    strings.TrimRight(baseURL, "/"),
		city:       city,
		locator:    locator,
		logger:     logger,
		newBackOff: func() backoff.BackOff {
			bo := backoff.NewExponentialBackOff()
			bo.MaxElapsedTime = 20 * time.Second
			return bo
		},
	}
}

type wttrResponse struct {
	CurrentCondition []wttrCondition `json:"current_condition"`
	NearestArea      []wttrArea      `json:"nearest_area"`
}

type wttrCondition struct {
	TempC         string      `json:"temp_C"`
	TempF         string      `json:"temp_F"`
	FeelsLikeC    string      `json:"FeelsLikeC"`
	Humidity      string      `json:"humidity"`
	WindspeedKmph string      `json:"windspeedKmph"`
	Visibility    string      `json:"visibility"`
	WeatherDesc   []wttrValue `json:"weatherDesc"`
}

type wttrArea struct {
	AreaName []wttrValue `json:"areaName"`
	Country  []wttrValue `json:"country"`
}

type wttrValue struct {
	Value string `json:"value"`
}

func first(vs []wttrValue) string {
	if len(vs) == 0 {
		return ""
	}
	return vs[0].Value
}

func (w *Wttr) Fetch(ctx context.Context) models.Snapshot {
	start := time.Now()
	snap, err := w.fetch(ctx)
	elapsed := time.Since(start)

	metrics.FetchLatency.WithLabelValues("wttr").Observe(elapsed.Seconds())
	if err != nil {
		metrics.FetchesTotal.WithLabelValues("wttr", "error").Inc()
		w.logger.Warn("weather fetch failed", "city", w.city, "duration", elapsed, "error", err)
		return *models.ErrorSnapshot(err.Error())
	}

	metrics.FetchesTotal.WithLabelValues("wttr", "ok").Inc()
	w.logger.Info("weather fetched", "location", snap.Location, "weather", snap.Type, "desc", snap.Description, "duration", elapsed)
	return snap
}

func (w *Wttr) fetch(ctx context.Context) (models.Snapshot, error) {
	city := w.city
	if city == "" && w.locator != nil {
		var err error
		if city, err = w.locator.City(ctx); err != nil {
			w.logger.Debug("location lookup failed, letting wttr.in guess", "error", err)
			city = ""
		}
	}

	body, err := w.get(ctx, w.baseURL+"/"+url.PathEscape(city)+"?format=j1")
	if err != nil {
		return models.Snapshot{}, err
	}

	var data wttrResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return models.Snapshot{}, fmt.Errorf("unmarshal: %w", err)
	}
	return data.snapshot(city)
}

func (w *Wttr) get(ctx context.Context, rawURL string) ([]byte, error) {
	var body []byte
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, "GET", rawURL, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("create request: %w", err))
		}

		resp, err := w.httpClient.Do(req)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("fetch weather: %w", err))
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return fmt.Errorf("fetch weather: status %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			b, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
			return backoff.Permanent(fmt.Errorf("fetch weather: status %d: %s", resp.StatusCode, strings.TrimSpace(string(b))))
		}

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("read body: %w", err))
		}
		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(w.newBackOff(), ctx)); err != nil {
		return nil, err
	}
	return body, nil
}

func (r *wttrResponse) snapshot(city string) (models.Snapshot, error) {
	if len(r.CurrentCondition) == 0 {
		return models.Snapshot{}, fmt.Errorf("no current conditions returned for %q", city)
	}
	cur := r.CurrentCondition[0]
	desc := first(cur.WeatherDesc)

	snap := models.Snapshot{
		Type:        forecast.ClassifyCondition(desc),
		Description: desc,
		TempC:       cur.TempC,
		TempF:       cur.TempF,
		FeelsLikeC:  cur.FeelsLikeC,
		Humidity:    cur.Humidity,
		WindKmph:    cur.WindspeedKmph,
		Visibility:  cur.Visibility,
	}
	if len(r.NearestArea) > 0 {
		area := r.NearestArea[0]
		snap.Location = strings.Trim(first(area.AreaName)+", "+first(area.Country), ", ")
	}
	return snap, nil
}
