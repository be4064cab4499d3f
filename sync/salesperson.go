// ABOUTME: Salesperson sync service mirroring salesperson records into the remote datastore
// ABOUTME: Substitutes placeholder emails and default conversion rates on insert
package sync

import (
	"context"
	"log"

	"github.com/harperreed/salespulse/config"
	"github.com/harperreed/salespulse/models"
	"github.com/harperreed/salespulse/remote"
)

// SalespersonService mirrors salesperson records into the remote datastore.
type SalespersonService struct {
	cfg    *config.Store
	client *remote.Client
	logger *log.Logger
}

// NewSalespersonService creates a salesperson sync service.
func NewSalespersonService(cfg *config.Store, client *remote.Client, logger *log.Logger) *SalespersonService {
	if logger == nil {
		logger = log.Default()
	}
	return &SalespersonService{cfg: cfg, client: client, logger: logger}
}

// SyncToRemote pushes salesperson records, insert-only and sequential.
// Returns true when the batch ran to completion.
func (s *SalespersonService) SyncToRemote(ctx context.Context, people []models.Salesperson) bool {
	if !s.cfg.IsConfigured() || len(people) == 0 {
		s.logger.Printf("salesperson sync skipped: incomplete data")
		return false
	}

	var stats Stats
	for _, p := range people {
		exists, err := s.client.Exists(ctx, tableSalespeople, p.ID)
		if err != nil {
			s.logger.Printf("salesperson %s: existence check failed: %v", p.ID, err)
			stats.Failed++
			continue
		}
		if exists {
			stats.Skipped++
			continue
		}
		if err := s.client.Insert(ctx, tableSalespeople, newSalespersonRow(p)); err != nil {
			s.logger.Printf("salesperson %s: insert failed: %v", p.ID, err)
			stats.Failed++
			continue
		}
		stats.Inserted++
	}

	s.logger.Printf("salesperson sync complete: %s", stats)
	return true
}
