// ABOUTME: Cloud sync CLI command
// ABOUTME: Runs the orchestrated mirror of all local collections
package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/harperreed/salespulse/remote"
	"github.com/harperreed/salespulse/store"
	"github.com/harperreed/salespulse/sync"
)

// SyncCommand mirrors every locally stored collection into the remote
// datastore.
func SyncCommand(repo store.Repository, args []string) error {
	fs := flag.NewFlagSet("sync", flag.ExitOnError)
	_ = fs.Parse(args)

	cfg := loadConfig(repo)
	client := remote.NewClient(cfg, nil)
	orch := sync.NewOrchestrator(repo, cfg, client, sync.NewConsoleNotifier(), nil)

	result := orch.SyncAll(context.Background())
	if !result.Ran {
		return fmt.Errorf("sync did not run: backend not configured")
	}
	if !result.AllSynced() {
		return fmt.Errorf("sync finished partially; see log for per-record detail")
	}
	return nil
}
