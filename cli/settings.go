// ABOUTME: Settings CLI commands for backend connection configuration
// ABOUTME: Handles set/show/test plus cloud push and pull of the settings row
package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/harperreed/salespulse/remote"
	"github.com/harperreed/salespulse/store"
	"github.com/harperreed/salespulse/sync"
)

// SettingsSetCommand stores backend connection settings.
func SettingsSetCommand(repo store.Repository, args []string) error {
	fs := flag.NewFlagSet("settings set", flag.ExitOnError)
	url := fs.String("url", "", "Backend project URL")
	key := fs.String("key", "", "Backend access key")
	aux := fs.String("aux", "", "Language model API key")
	_ = fs.Parse(args)

	if *url == "" && *key == "" && *aux == "" {
		return fmt.Errorf("nothing to set: pass -url, -key, or -aux")
	}

	cfg := loadConfig(repo)
	if *url != "" {
		if err := cfg.SetURL(*url); err != nil {
			return fmt.Errorf("failed to store URL: %w", err)
		}
	}
	if *key != "" {
		if err := cfg.SetAccessKey(*key); err != nil {
			return fmt.Errorf("failed to store access key: %w", err)
		}
	}
	if *aux != "" {
		if err := cfg.SetAuxiliaryKey(*aux); err != nil {
			return fmt.Errorf("failed to store auxiliary key: %w", err)
		}
	}

	fmt.Println("✓ Settings saved")
	return nil
}

// SettingsShowCommand prints current settings with keys masked.
func SettingsShowCommand(repo store.Repository, args []string) error {
	fs := flag.NewFlagSet("settings show", flag.ExitOnError)
	_ = fs.Parse(args)

	cfg := loadConfig(repo)
	fmt.Printf("Backend URL:    %s\n", valueOrUnset(cfg.URL()))
	fmt.Printf("Access key:     %s\n", masked(cfg.AccessKey()))
	fmt.Printf("Auxiliary key:  %s\n", masked(cfg.AuxiliaryKey()))
	if cfg.IsConfigured() {
		fmt.Println("Status:         configured")
	} else {
		fmt.Println("Status:         not configured")
	}
	return nil
}

// SettingsTestCommand probes the remote backend with the stored credentials.
func SettingsTestCommand(repo store.Repository, args []string) error {
	fs := flag.NewFlagSet("settings test", flag.ExitOnError)
	_ = fs.Parse(args)

	cfg := loadConfig(repo)
	client := remote.NewClient(cfg, nil)

	if client.TestConnection(context.Background()) {
		fmt.Println("✓ Connected to backend")
		return nil
	}
	return fmt.Errorf("could not connect to backend")
}

// SettingsPushCommand mirrors local settings into the cloud settings row.
func SettingsPushCommand(repo store.Repository, args []string) error {
	fs := flag.NewFlagSet("settings push", flag.ExitOnError)
	_ = fs.Parse(args)

	cfg := loadConfig(repo)
	if !cfg.IsConfigured() {
		return fmt.Errorf("backend not configured: run 'salespulse settings set' first")
	}

	persister := sync.NewSettingsPersister(cfg, remote.NewClient(cfg, nil), nil)
	persister.SaveToCloud(context.Background())
	fmt.Println("✓ Settings pushed to cloud (best effort)")
	return nil
}

// SettingsPullCommand overwrites local settings from the cloud settings row.
func SettingsPullCommand(repo store.Repository, args []string) error {
	fs := flag.NewFlagSet("settings pull", flag.ExitOnError)
	_ = fs.Parse(args)

	cfg := loadConfig(repo)
	if !cfg.IsConfigured() {
		return fmt.Errorf("backend not configured: run 'salespulse settings set' first")
	}

	persister := sync.NewSettingsPersister(cfg, remote.NewClient(cfg, nil), nil)
	if !persister.LoadFromCloud(context.Background()) {
		return fmt.Errorf("no settings row found in cloud")
	}
	fmt.Println("✓ Settings pulled from cloud")
	return nil
}

func valueOrUnset(v string) string {
	if v == "" {
		return "(not set)"
	}
	return v
}

func masked(v string) string {
	if v == "" {
		return "(not set)"
	}
	if len(v) <= 8 {
		return "********"
	}
	return v[:4] + "…" + v[len(v)-4:]
}
