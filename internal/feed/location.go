package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/lox/nimbus/internal/httputil"
	"github.com/lox/nimbus/internal/metrics"
)

const DefaultLocatorURL = "https://ipinfo.io/json"

// Locator resolves the caller's city from their public IP. wttr.in can do
// this itself but often lands on the ISP's data-centre city instead.
type Locator struct {
	httpClient *http.Client
	url        string
}

func NewLocator(url string) *Locator {
	return &Locator{
		httpClient: httputil.NewClientWithTimeout(5 * time.Second),
		url:        url,
	}
}

type ipinfoResponse struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

// City returns "City,CC", or just the city when no country is reported.
func (l *Locator) City(ctx context.Context) (string, error) {
	start := time.Now()
	city, err := l.city(ctx)

	status := "ok"
	if err != nil {
		status = "error"
	}
	metrics.FetchesTotal.WithLabelValues("ipinfo", status).Inc()
	metrics.FetchLatency.WithLabelValues("ipinfo").Observe(time.Since(start).Seconds())
	return city, err
}

func (l *Locator) city(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", l.url, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch location: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var data ipinfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", fmt.Errorf("decode location: %w", err)
	}
	if data.City == "" {
		return "", fmt.Errorf("no city in location response")
	}
	if data.Country == "" {
		return data.City, nil
	}
	return data.City + "," + data.Country, nil
}
