// ABOUTME: Connection status CLI command
// ABOUTME: One-shot probe or live realtime channel indicator
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/harperreed/salespulse/realtime"
	"github.com/harperreed/salespulse/remote"
	"github.com/harperreed/salespulse/store"
)

// StatusCommand shows backend connectivity. With -watch it follows the
// realtime channel until interrupted.
func StatusCommand(repo store.Repository, args []string) error {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	watch := fs.Bool("watch", false, "Follow the realtime channel")
	_ = fs.Parse(args)

	cfg := loadConfig(repo)

	if !*watch {
		if remote.NewClient(cfg, nil).TestConnection(context.Background()) {
			fmt.Println("✓ Connected")
			return nil
		}
		fmt.Println("✗ Not connected")
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	monitor := realtime.NewMonitor(cfg, nil)
	return monitor.Watch(ctx, func(s realtime.Status) {
		switch s {
		case realtime.StatusConnected:
			fmt.Println("✓ Realtime channel connected")
		case realtime.StatusDisconnected:
			fmt.Println("✗ Realtime channel disconnected")
		}
	})
}
