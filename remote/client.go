// ABOUTME: REST client for the hosted Supabase-style datastore
// ABOUTME: Covers row selects, inserts, patches, RPC calls, and the connection probe
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/harperreed/salespulse/config"
)

// restPath is the PostgREST mount point on the project URL.
const restPath = "/rest/v1"

// defaultTimeout bounds every remote call so a hung request cannot wedge a
// sync run.
const defaultTimeout = 30 * time.Second

// Client issues requests against the remote datastore's REST surface.
// Connection settings are read from the injected configuration store on every
// call, so settings changed mid-process take effect immediately.
type Client struct {
	cfg    *config.Store
	http   *http.Client
	logger *log.Logger
}

// NewClient creates a REST client bound to the given configuration store.
// If logger is nil, a default logger writing to stderr is used.
func NewClient(cfg *config.Store, logger *log.Logger) *Client {
	if logger == nil {
		logger = log.Default()
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: defaultTimeout},
		logger: logger,
	}
}

// TestConnection probes the REST root with the stored credentials. It returns
// false without network I/O when the store is not configured, and treats any
// transport error or non-2xx status uniformly as "not connected".
func (c *Client) TestConnection(ctx context.Context) bool {
	if !c.cfg.IsConfigured() {
		c.logger.Printf("connection test skipped: supabase URL and key not configured")
		return false
	}

	req, err := c.newRequest(ctx, http.MethodGet, c.restURL(""), nil)
	if err != nil {
		c.logger.Printf("connection test failed: %v", err)
		return false
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Printf("connection test failed: %v", err)
		return false
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Printf("connection test failed: status %d", resp.StatusCode)
		return false
	}
	return true
}

// Select fetches rows from table where column equals value. A limit of zero
// means no limit.
func (c *Client) Select(ctx context.Context, table, column, value string, limit int) ([]map[string]any, error) {
	query := fmt.Sprintf("%s=eq.%s", column, url.QueryEscape(value))
	if limit > 0 {
		query += fmt.Sprintf("&limit=%d", limit)
	}
	return c.selectRows(ctx, table, query)
}

// SelectLimit fetches up to limit unfiltered rows from table. Used to probe
// whether a table exists at all.
func (c *Client) SelectLimit(ctx context.Context, table string, limit int) ([]map[string]any, error) {
	return c.selectRows(ctx, table, fmt.Sprintf("limit=%d", limit))
}

// Exists reports whether a row with the given id is present in table.
func (c *Client) Exists(ctx context.Context, table, id string) (bool, error) {
	rows, err := c.Select(ctx, table, "id", id, 1)
	if err != nil {
		return false, err
	}
	return len(rows) > 0, nil
}

// Insert posts a new row to table. The server is asked not to echo the row
// back.
func (c *Client) Insert(ctx context.Context, table string, row any) error {
	body, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("failed to encode %s row: %w", table, err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, c.restURL("/"+table), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Prefer", "return=minimal")

	return c.do(req)
}

// Update patches the rows in table where column equals value.
func (c *Client) Update(ctx context.Context, table, column, value string, row any) error {
	body, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("failed to encode %s row: %w", table, err)
	}

	target := fmt.Sprintf("%s?%s=eq.%s", c.restURL("/"+table), column, url.QueryEscape(value))
	req, err := c.newRequest(ctx, http.MethodPatch, target, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Prefer", "return=minimal")

	return c.do(req)
}

// CallRPC invokes a remote procedure. A nil args posts an empty JSON object.
func (c *Client) CallRPC(ctx context.Context, fn string, args any) error {
	if args == nil {
		args = map[string]any{}
	}
	body, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("failed to encode rpc args: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, c.restURL("/rpc/"+fn), bytes.NewReader(body))
	if err != nil {
		return err
	}

	return c.do(req)
}

func (c *Client) selectRows(ctx context.Context, table, query string) ([]map[string]any, error) {
	target := fmt.Sprintf("%s?%s", c.restURL("/"+table), query)
	req, err := c.newRequest(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("select from %s failed: %w", table, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("select from %s failed: status %d: %s", table, resp.StatusCode, readBodySnippet(resp.Body))
	}

	var rows []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("select from %s returned malformed response: %w", table, err)
	}
	return rows, nil
}

// newRequest builds a request carrying the access key as both the apikey
// header and a bearer token; the remote API accepts either.
func (c *Client) newRequest(ctx context.Context, method, target string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	key := c.cfg.AccessKey()
	req.Header.Set("apikey", key)
	req.Header.Set("Authorization", "Bearer "+key)
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func (c *Client) do(req *http.Request) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s failed: %w", req.Method, req.URL.Path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%s %s failed: status %d: %s", req.Method, req.URL.Path, resp.StatusCode, readBodySnippet(resp.Body))
	}
	return nil
}

func (c *Client) restURL(path string) string {
	return strings.TrimRight(c.cfg.URL(), "/") + restPath + path
}

func readBodySnippet(r io.Reader) string {
	data, _ := io.ReadAll(io.LimitReader(r, 256))
	return strings.TrimSpace(string(data))
}
