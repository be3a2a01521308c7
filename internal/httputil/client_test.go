package httputil

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClientSetsUserAgent(t *testing.T) {
	agents := make(chan string, 2)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		agents <- r.Header.Get("User-Agent")
	}))
	defer srv.Close()

	client := NewClient()
	if client.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", client.Timeout, DefaultTimeout)
	}

	plain, _ := http.NewRequest("GET", srv.URL, nil)
	resp, err := client.Do(plain)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	req, _ := http.NewRequest("GET", srv.URL, nil)
	req.Header.Set("User-Agent", "custom")
	resp, err = client.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	if got := <-agents; got != UserAgent {
		t.Errorf("default User-Agent = %q, want %q", got, UserAgent)
	}
	if got := <-agents; got != "custom" {
		t.Errorf("explicit User-Agent = %q, want custom", got)
	}
	if plain.Header.Get("User-Agent") != "" {
		t.Error("caller's request was modified")
	}
}

func TestNewClientWithTimeout(t *testing.T) {
	if got := NewClientWithTimeout(5 * time.Second).Timeout; got != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", got)
	}
}
