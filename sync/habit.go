// ABOUTME: Habit sync service mirroring habit records into the remote datastore
// ABOUTME: Handles both individual and team habit collections with one code path
package sync

import (
	"context"
	"log"

	"github.com/harperreed/salespulse/config"
	"github.com/harperreed/salespulse/models"
	"github.com/harperreed/salespulse/remote"
)

// HabitService mirrors habit records into the remote datastore. Individual
// and team habits live in separate local collections but share one remote
// table, tagged by owner kind.
type HabitService struct {
	cfg    *config.Store
	client *remote.Client
	logger *log.Logger
}

// NewHabitService creates a habit sync service.
func NewHabitService(cfg *config.Store, client *remote.Client, logger *log.Logger) *HabitService {
	if logger == nil {
		logger = log.Default()
	}
	return &HabitService{cfg: cfg, client: client, logger: logger}
}

// SyncToRemote pushes habit records, insert-only and sequential. Returns
// true when the batch ran to completion.
func (s *HabitService) SyncToRemote(ctx context.Context, habits []models.Habit) bool {
	if !s.cfg.IsConfigured() || len(habits) == 0 {
		s.logger.Printf("habit sync skipped: incomplete data")
		return false
	}

	var stats Stats
	for _, h := range habits {
		exists, err := s.client.Exists(ctx, tableHabits, h.ID)
		if err != nil {
			s.logger.Printf("habit %s: existence check failed: %v", h.ID, err)
			stats.Failed++
			continue
		}
		if exists {
			stats.Skipped++
			continue
		}
		if err := s.client.Insert(ctx, tableHabits, newHabitRow(h)); err != nil {
			s.logger.Printf("habit %s: insert failed: %v", h.ID, err)
			stats.Failed++
			continue
		}
		stats.Inserted++
	}

	s.logger.Printf("habit sync complete: %s", stats)
	return true
}
