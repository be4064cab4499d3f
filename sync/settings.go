// ABOUTME: Settings persister mirroring the configuration store into a singleton remote row
// ABOUTME: Save never raises; load treats the remote row as authoritative once reachable
package sync

import (
	"context"
	"log"
	"time"

	"github.com/harperreed/salespulse/config"
	"github.com/harperreed/salespulse/remote"
)

const (
	settingsTable = "app_settings"
	settingsRowID = "global"

	// provisionFn is the remote procedure that creates the settings table
	// when the probe finds it missing.
	provisionFn = "create_app_settings"
)

type settingsRow struct {
	ID           string `json:"id"`
	SupabaseURL  string `json:"supabase_url"`
	SupabaseKey  string `json:"supabase_key"`
	AuxiliaryKey string `json:"auxiliary_key,omitempty"`
	UpdatedBy    string `json:"updated_by,omitempty"`
	UpdatedAt    string `json:"updated_at"`
}

// SettingsPersister mirrors the configuration store into a fixed-id remote
// row so settings converge across installations once a connection exists.
// Local storage remains the always-available source; everything here is
// best-effort.
type SettingsPersister struct {
	cfg    *config.Store
	client *remote.Client
	logger *log.Logger
}

// NewSettingsPersister creates a settings persister.
func NewSettingsPersister(cfg *config.Store, client *remote.Client, logger *log.Logger) *SettingsPersister {
	if logger == nil {
		logger = log.Default()
	}
	return &SettingsPersister{cfg: cfg, client: client, logger: logger}
}

// SaveToCloud writes the singleton settings row, provisioning the table if
// the probe fails. Every failure is logged and swallowed; this never raises
// to the caller.
func (p *SettingsPersister) SaveToCloud(ctx context.Context) {
	if !p.cfg.IsConfigured() {
		return
	}

	if _, err := p.client.SelectLimit(ctx, settingsTable, 1); err != nil {
		p.logger.Printf("settings table probe failed, attempting to provision: %v", err)
		if err := p.client.CallRPC(ctx, provisionFn, nil); err != nil {
			p.logger.Printf("settings table provisioning failed: %v", err)
		}
	}

	row := settingsRow{
		ID:           settingsRowID,
		SupabaseURL:  p.cfg.URL(),
		SupabaseKey:  p.cfg.AccessKey(),
		AuxiliaryKey: p.cfg.AuxiliaryKey(),
		UpdatedBy:    p.cfg.InstallID(),
		UpdatedAt:    time.Now().Format(time.RFC3339),
	}

	rows, err := p.client.Select(ctx, settingsTable, "id", settingsRowID, 1)
	if err != nil {
		p.logger.Printf("settings row lookup failed: %v", err)
		return
	}

	if len(rows) > 0 {
		if err := p.client.Update(ctx, settingsTable, "id", settingsRowID, row); err != nil {
			p.logger.Printf("settings row update failed: %v", err)
		}
		return
	}

	if err := p.client.Insert(ctx, settingsTable, row); err != nil {
		p.logger.Printf("settings row insert failed: %v", err)
	}
}

// LoadFromCloud fetches the singleton settings row and, when found,
// overwrites the local configuration store with the remote values. Returns
// whether a row was found and applied.
func (p *SettingsPersister) LoadFromCloud(ctx context.Context) bool {
	if !p.cfg.IsConfigured() {
		return false
	}

	rows, err := p.client.Select(ctx, settingsTable, "id", settingsRowID, 1)
	if err != nil {
		p.logger.Printf("settings row fetch failed: %v", err)
		return false
	}
	if len(rows) == 0 {
		return false
	}

	row := rows[0]
	if url := stringField(row, "supabase_url"); url != "" {
		if err := p.cfg.SetURL(url); err != nil {
			p.logger.Printf("failed to apply remote URL: %v", err)
		}
	}
	if key := stringField(row, "supabase_key"); key != "" {
		if err := p.cfg.SetAccessKey(key); err != nil {
			p.logger.Printf("failed to apply remote access key: %v", err)
		}
	}
	if aux := stringField(row, "auxiliary_key"); aux != "" {
		if err := p.cfg.SetAuxiliaryKey(aux); err != nil {
			p.logger.Printf("failed to apply remote auxiliary key: %v", err)
		}
	}
	return true
}

func stringField(row map[string]any, key string) string {
	if v, ok := row[key].(string); ok {
		return v
	}
	return ""
}
