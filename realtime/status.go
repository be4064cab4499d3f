// ABOUTME: Realtime connection-status monitor over the backend's websocket channel
// ABOUTME: Presentational indicator only; no data flows from here into the sync core
package realtime

import (
	"context"
	"fmt"
	"log"
	"net/url"

	"github.com/coder/websocket"

	"github.com/harperreed/salespulse/config"
)

// Status is the connection state surfaced to the UI.
type Status string

const (
	StatusConnected    Status = "connected"
	StatusDisconnected Status = "disconnected"
)

// realtimePath is the websocket mount point on the project URL.
const realtimePath = "/realtime/v1/websocket"

// Monitor watches the realtime channel and reports connection-state changes.
type Monitor struct {
	cfg    *config.Store
	logger *log.Logger
}

// NewMonitor creates a realtime status monitor.
func NewMonitor(cfg *config.Store, logger *log.Logger) *Monitor {
	if logger == nil {
		logger = log.Default()
	}
	return &Monitor{cfg: cfg, logger: logger}
}

// Endpoint returns the websocket URL derived from the configured backend URL.
func (m *Monitor) Endpoint() (string, error) {
	u, err := url.Parse(m.cfg.URL())
	if err != nil {
		return "", fmt.Errorf("invalid backend URL: %w", err)
	}

	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	}
	u.Path = realtimePath
	u.RawQuery = "apikey=" + url.QueryEscape(m.cfg.AccessKey())
	return u.String(), nil
}

// Watch connects to the realtime channel and invokes onChange with connection
// state transitions until the context is canceled or the connection drops.
// A canceled context is a clean shutdown, not an error.
func (m *Monitor) Watch(ctx context.Context, onChange func(Status)) error {
	if !m.cfg.IsConfigured() {
		return fmt.Errorf("realtime monitor requires backend URL and access key")
	}

	endpoint, err := m.Endpoint()
	if err != nil {
		return err
	}

	conn, _, err := websocket.Dial(ctx, endpoint, nil)
	if err != nil {
		onChange(StatusDisconnected)
		return fmt.Errorf("realtime connection failed: %w", err)
	}
	defer func() { _ = conn.Close(websocket.StatusNormalClosure, "done") }()

	m.logger.Printf("realtime channel connected")
	onChange(StatusConnected)

	// Messages on this channel are ignored; only the connection state
	// matters to the indicator.
	for {
		if _, _, err := conn.Read(ctx); err != nil {
			onChange(StatusDisconnected)
			if ctx.Err() != nil {
				return nil
			}
			m.logger.Printf("realtime channel dropped: %v", err)
			return fmt.Errorf("realtime connection lost: %w", err)
		}
	}
}
