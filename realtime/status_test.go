// ABOUTME: Tests for the realtime status monitor
// ABOUTME: Uses an httptest websocket server standing in for the hosted channel
package realtime

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/salespulse/config"
	"github.com/harperreed/salespulse/store"
)

func monitorConfig(t *testing.T, url string) *config.Store {
	t.Helper()

	cfg := config.NewStore(store.NewMemory())
	require.NoError(t, cfg.SetURL(url))
	require.NoError(t, cfg.SetAccessKey("test-key"))
	return cfg
}

func TestEndpoint(t *testing.T) {
	cfg := monitorConfig(t, "https://example.supabase.co")
	m := NewMonitor(cfg, nil)

	endpoint, err := m.Endpoint()
	require.NoError(t, err)
	assert.Equal(t, "wss://example.supabase.co/realtime/v1/websocket?apikey=test-key", endpoint)
}

func TestWatchRequiresConfiguration(t *testing.T) {
	m := NewMonitor(config.NewStore(store.NewMemory()), nil)
	err := m.Watch(context.Background(), func(Status) {})
	assert.Error(t, err)
}

func TestWatchReportsTransitions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/realtime/v1/websocket", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))

		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		_ = conn.Write(r.Context(), websocket.MessageText, []byte(`{"event":"system"}`))
		_ = conn.Close(websocket.StatusNormalClosure, "bye")
	}))
	defer srv.Close()

	m := NewMonitor(monitorConfig(t, srv.URL), nil)

	statuses := make(chan Status, 4)
	done := make(chan error, 1)
	go func() {
		done <- m.Watch(context.Background(), func(s Status) { statuses <- s })
	}()

	assert.Equal(t, StatusConnected, waitStatus(t, statuses))
	assert.Equal(t, StatusDisconnected, waitStatus(t, statuses))

	select {
	case err := <-done:
		assert.Error(t, err, "a server-side close is a lost connection")
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after disconnect")
	}
}

func TestWatchCanceledContextIsClean(t *testing.T) {
	hold := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		<-hold
		_ = conn.Close(websocket.StatusNormalClosure, "bye")
	}))
	defer srv.Close()
	defer close(hold)

	ctx, cancel := context.WithCancel(context.Background())
	m := NewMonitor(monitorConfig(t, srv.URL), nil)

	statuses := make(chan Status, 4)
	done := make(chan error, 1)
	go func() {
		done <- m.Watch(ctx, func(s Status) { statuses <- s })
	}()

	assert.Equal(t, StatusConnected, waitStatus(t, statuses))
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err, "cancellation is a clean shutdown")
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after cancellation")
	}
	assert.Equal(t, StatusDisconnected, waitStatus(t, statuses))
}

func TestWatchDialFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	m := NewMonitor(monitorConfig(t, srv.URL), nil)

	var got []Status
	err := m.Watch(context.Background(), func(s Status) { got = append(got, s) })
	assert.Error(t, err)
	assert.Equal(t, []Status{StatusDisconnected}, got)
}

func waitStatus(t *testing.T, ch <-chan Status) Status {
	t.Helper()

	select {
	case s := <-ch:
		return s
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for status change")
		return ""
	}
}
