// ABOUTME: Team sync service mirroring team records into the remote datastore
// ABOUTME: Ensures the default company exists before any team insert
package sync

import (
	"context"
	"log"

	"github.com/harperreed/salespulse/config"
	"github.com/harperreed/salespulse/models"
	"github.com/harperreed/salespulse/remote"
)

// TeamService mirrors team records into the remote datastore.
type TeamService struct {
	cfg       *config.Store
	client    *remote.Client
	companies *CompanyService
	logger    *log.Logger
}

// NewTeamService creates a team sync service. The company service is needed
// because team rows reference a company that must already exist remotely.
func NewTeamService(cfg *config.Store, client *remote.Client, companies *CompanyService, logger *log.Logger) *TeamService {
	if logger == nil {
		logger = log.Default()
	}
	return &TeamService{cfg: cfg, client: client, companies: companies, logger: logger}
}

// SyncToRemote pushes team records, insert-only and sequential. The default
// company is ensured first; a failure there is logged and the batch proceeds
// anyway. Returns true when the batch ran to completion.
func (s *TeamService) SyncToRemote(ctx context.Context, teams []models.Team) bool {
	if !s.cfg.IsConfigured() || len(teams) == 0 {
		s.logger.Printf("team sync skipped: incomplete data")
		return false
	}

	if !s.companies.EnsureDefault(ctx) {
		s.logger.Printf("team sync: default company could not be ensured, continuing")
	}

	var stats Stats
	for _, t := range teams {
		exists, err := s.client.Exists(ctx, tableTeams, t.ID)
		if err != nil {
			s.logger.Printf("team %s: existence check failed: %v", t.ID, err)
			stats.Failed++
			continue
		}
		if exists {
			stats.Skipped++
			continue
		}
		if err := s.client.Insert(ctx, tableTeams, newTeamRow(t)); err != nil {
			s.logger.Printf("team %s: insert failed: %v", t.ID, err)
			stats.Failed++
			continue
		}
		stats.Inserted++
	}

	s.logger.Printf("team sync complete: %s", stats)
	return true
}
