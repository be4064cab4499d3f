// ABOUTME: Shared CLI helpers for command wiring
// ABOUTME: Builds configuration stores with environment variable overrides applied
package cli

import (
	"os"

	"github.com/harperreed/salespulse/config"
	"github.com/harperreed/salespulse/store"
)

// Environment variables overriding stored configuration:
// - SALESPULSE_SUPABASE_URL
// - SALESPULSE_SUPABASE_KEY
// - SALESPULSE_ANTHROPIC_KEY.
const (
	envSupabaseURL  = "SALESPULSE_SUPABASE_URL"
	envSupabaseKey  = "SALESPULSE_SUPABASE_KEY"
	envAnthropicKey = "SALESPULSE_ANTHROPIC_KEY"
)

// loadConfig builds a configuration store over the repository with any
// environment overrides applied (overrides are not persisted).
func loadConfig(repo store.Repository) *config.Store {
	cfg := config.NewStore(repo)
	cfg.Override(os.Getenv(envSupabaseURL), os.Getenv(envSupabaseKey), os.Getenv(envAnthropicKey))
	return cfg
}
