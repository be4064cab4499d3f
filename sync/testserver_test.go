// ABOUTME: Fake PostgREST-style backend for sync tests
// ABOUTME: Records call order and serves in-memory tables with injectable failures
package sync

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	gosync "sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/harperreed/salespulse/config"
	"github.com/harperreed/salespulse/remote"
	"github.com/harperreed/salespulse/store"
)

// fakeBackend is an in-memory stand-in for the hosted datastore's REST
// surface. It understands the subset of PostgREST the sync core uses:
// eq-filtered selects, minimal-return inserts and patches, and rpc calls.
type fakeBackend struct {
	mu     gosync.Mutex
	tables map[string][]map[string]any
	calls  []string

	// missing tables 404 on select until provisioned via rpc.
	missing map[string]bool
	// existence checks for these ids fail with a 500.
	failIDs map[string]bool

	srv *httptest.Server
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()

	b := &fakeBackend{
		tables:  make(map[string][]map[string]any),
		missing: make(map[string]bool),
		failIDs: make(map[string]bool),
	}
	b.srv = httptest.NewServer(http.HandlerFunc(b.handle))
	t.Cleanup(b.srv.Close)
	return b
}

func (b *fakeBackend) handle(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	path := strings.TrimPrefix(r.URL.Path, "/rest/v1")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		b.calls = append(b.calls, "GET root")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
		return
	}

	if fn, ok := strings.CutPrefix(path, "rpc/"); ok {
		b.calls = append(b.calls, "RPC "+fn)
		if fn == provisionFn {
			delete(b.missing, settingsTable)
			if _, ok := b.tables[settingsTable]; !ok {
				b.tables[settingsTable] = nil
			}
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}

	table := path
	col, val := filterOf(r)

	switch r.Method {
	case http.MethodGet:
		b.calls = append(b.calls, strings.TrimSpace(fmt.Sprintf("GET %s %s", table, val)))
		if b.missing[table] {
			http.Error(w, `{"message":"relation does not exist"}`, http.StatusNotFound)
			return
		}
		if col == "id" && b.failIDs[val] {
			http.Error(w, `{"message":"boom"}`, http.StatusInternalServerError)
			return
		}
		rows := b.match(table, col, val)
		if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && limit > 0 && len(rows) > limit {
			rows = rows[:limit]
		}
		if rows == nil {
			rows = []map[string]any{}
		}
		_ = json.NewEncoder(w).Encode(rows)

	case http.MethodPost:
		b.calls = append(b.calls, "POST "+table)
		var row map[string]any
		if err := json.NewDecoder(r.Body).Decode(&row); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		b.tables[table] = append(b.tables[table], row)
		w.WriteHeader(http.StatusCreated)

	case http.MethodPatch:
		b.calls = append(b.calls, "PATCH "+table)
		var patch map[string]any
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		for _, row := range b.match(table, col, val) {
			for k, v := range patch {
				row[k] = v
			}
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		http.Error(w, "unsupported", http.StatusMethodNotAllowed)
	}
}

func (b *fakeBackend) match(table, col, val string) []map[string]any {
	if col == "" {
		return b.tables[table]
	}
	var rows []map[string]any
	for _, row := range b.tables[table] {
		if fmt.Sprintf("%v", row[col]) == val {
			rows = append(rows, row)
		}
	}
	return rows
}

func filterOf(r *http.Request) (col, val string) {
	for key, values := range r.URL.Query() {
		if key == "limit" || len(values) == 0 {
			continue
		}
		if v, ok := strings.CutPrefix(values[0], "eq."); ok {
			return key, v
		}
	}
	return "", ""
}

func (b *fakeBackend) rows(table string) []map[string]any {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]map[string]any(nil), b.tables[table]...)
}

func (b *fakeBackend) callLog() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.calls...)
}

func (b *fakeBackend) callCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.calls)
}

// callIndex returns the position of the first call starting with prefix, or -1.
func (b *fakeBackend) callIndex(prefix string) int {
	for i, c := range b.callLog() {
		if strings.HasPrefix(c, prefix) {
			return i
		}
	}
	return -1
}

// newTestEnv wires a configured config store and REST client against the
// fake backend.
func newTestEnv(t *testing.T, b *fakeBackend) (*config.Store, *remote.Client) {
	t.Helper()

	cfg := config.NewStore(store.NewMemory())
	require.NoError(t, cfg.SetURL(b.srv.URL))
	require.NoError(t, cfg.SetAccessKey("test-key"))
	return cfg, remote.NewClient(cfg, nil)
}
