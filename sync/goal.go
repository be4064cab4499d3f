// ABOUTME: Goal sync service mirroring goal records into the remote datastore
// ABOUTME: Un-scoped goals are mirrored as company-wide rows
package sync

import (
	"context"
	"log"

	"github.com/harperreed/salespulse/config"
	"github.com/harperreed/salespulse/models"
	"github.com/harperreed/salespulse/remote"
)

// GoalService mirrors goal records into the remote datastore.
type GoalService struct {
	cfg    *config.Store
	client *remote.Client
	logger *log.Logger
}

// NewGoalService creates a goal sync service.
func NewGoalService(cfg *config.Store, client *remote.Client, logger *log.Logger) *GoalService {
	if logger == nil {
		logger = log.Default()
	}
	return &GoalService{cfg: cfg, client: client, logger: logger}
}

// SyncToRemote pushes goal records, insert-only and sequential. Returns true
// when the batch ran to completion.
func (s *GoalService) SyncToRemote(ctx context.Context, goals []models.Goal) bool {
	if !s.cfg.IsConfigured() || len(goals) == 0 {
		s.logger.Printf("goal sync skipped: incomplete data")
		return false
	}

	var stats Stats
	for _, g := range goals {
		exists, err := s.client.Exists(ctx, tableGoals, g.ID)
		if err != nil {
			s.logger.Printf("goal %s: existence check failed: %v", g.ID, err)
			stats.Failed++
			continue
		}
		if exists {
			stats.Skipped++
			continue
		}
		if err := s.client.Insert(ctx, tableGoals, newGoalRow(g)); err != nil {
			s.logger.Printf("goal %s: insert failed: %v", g.ID, err)
			stats.Failed++
			continue
		}
		stats.Inserted++
	}

	s.logger.Printf("goal sync complete: %s", stats)
	return true
}
