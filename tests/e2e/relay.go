//go:build e2e

package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Relay stands in for the analytics webhook and records every event it receives.
type Relay struct {
	server *httptest.Server

	mu     sync.Mutex
	events []map[string]any
}

func NewRelay(t *testing.T) *Relay {
	r := &Relay{}
	r.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		r.mu.Lock()
		r.events = append(r.events, body)
		r.mu.Unlock()
		w.WriteHeader(http.StatusAccepted)
	}))
	t.Cleanup(r.server.Close)
	return r
}

func (r *Relay) URL() string {
	return r.server.URL
}

func (r *Relay) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

// Events returns the received events with the given name.
func (r *Relay) Events(name string) []map[string]any {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []map[string]any
	for _, e := range r.events {
		if e["event"] == name {
			out = append(out, e)
		}
	}
	return out
}

// WaitFor blocks until n events with the given name have arrived.
func (r *Relay) WaitFor(t *testing.T, name string, n int) []map[string]any {
	t.Helper()
	require.Eventually(t, func() bool {
		return len(r.Events(name)) >= n
	}, 5*time.Second, 20*time.Millisecond, "relay did not receive %d %s event(s)", n, name)
	return r.Events(name)
}
