// ABOUTME: Company sync service mirroring company records into the remote datastore
// ABOUTME: Owns the lazily created default company that team rows hang off
package sync

import (
	"context"
	"log"

	"github.com/harperreed/salespulse/config"
	"github.com/harperreed/salespulse/models"
	"github.com/harperreed/salespulse/remote"
)

// defaultCompanyID is the fixed id of the singleton default company.
const defaultCompanyID = "company-default"

// DefaultCompany returns the singleton company record created remotely when
// no company has been set up. Immutable once created.
func DefaultCompany() models.Company {
	return models.Company{
		ID:      defaultCompanyID,
		Name:    "Default Company",
		Segment: "sales",
	}
}

// CompanyService mirrors company records into the remote datastore.
type CompanyService struct {
	cfg    *config.Store
	client *remote.Client
	logger *log.Logger
}

// NewCompanyService creates a company sync service.
func NewCompanyService(cfg *config.Store, client *remote.Client, logger *log.Logger) *CompanyService {
	if logger == nil {
		logger = log.Default()
	}
	return &CompanyService{cfg: cfg, client: client, logger: logger}
}

// SyncToRemote pushes company records, insert-only and sequential. Returns
// true when the batch ran to completion; individual record failures are
// logged and skipped without flipping the result.
func (s *CompanyService) SyncToRemote(ctx context.Context, companies []models.Company) bool {
	if !s.cfg.IsConfigured() || len(companies) == 0 {
		s.logger.Printf("company sync skipped: incomplete data")
		return false
	}

	var stats Stats
	for _, c := range companies {
		exists, err := s.client.Exists(ctx, tableCompanies, c.ID)
		if err != nil {
			s.logger.Printf("company %s: existence check failed: %v", c.ID, err)
			stats.Failed++
			continue
		}
		if exists {
			stats.Skipped++
			continue
		}
		if err := s.client.Insert(ctx, tableCompanies, newCompanyRow(c)); err != nil {
			s.logger.Printf("company %s: insert failed: %v", c.ID, err)
			stats.Failed++
			continue
		}
		stats.Inserted++
	}

	s.logger.Printf("company sync complete: %s", stats)
	return true
}

// EnsureDefault makes sure the default company row exists remotely, creating
// it if absent. Team rows carry a non-nullable foreign key to a company, so
// this runs before any team insert.
func (s *CompanyService) EnsureDefault(ctx context.Context) bool {
	if !s.cfg.IsConfigured() {
		s.logger.Printf("company sync skipped: incomplete data")
		return false
	}
	return s.SyncToRemote(ctx, []models.Company{DefaultCompany()})
}
