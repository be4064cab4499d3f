// ABOUTME: Sync orchestrator sequencing per-entity sync services in dependency order
// ABOUTME: Aggregates boolean outcomes into a full/partial/not-configured result
package sync

import (
	"context"
	"log"

	"github.com/harperreed/salespulse/config"
	"github.com/harperreed/salespulse/models"
	"github.com/harperreed/salespulse/remote"
	"github.com/harperreed/salespulse/store"
)

// Result carries the per-entity outcomes of one orchestrated sync run.
type Result struct {
	Ran         bool
	Companies   bool
	Teams       bool
	Salespeople bool
	Habits      bool
	TeamHabits  bool
	Goals       bool
}

// AllSynced reports whether the run happened and every entity sync reported
// success. Note the per-service leniency: "success" means the service's loop
// ran to completion, not that every record is present remotely.
func (r Result) AllSynced() bool {
	return r.Ran && r.Companies && r.Teams && r.Salespeople && r.Habits && r.TeamHabits && r.Goals
}

// Orchestrator reads the locally queued entity collections and pushes them
// through the per-entity sync services in dependency order: companies before
// teams, teams before salespeople, habits, and goals. There is no
// transactional wrapping; a partial failure leaves the remote store partially
// synced, and the next run's existence checks pick up where this one left off.
type Orchestrator struct {
	repo        store.Repository
	cfg         *config.Store
	companies   *CompanyService
	teams       *TeamService
	salespeople *SalespersonService
	habits      *HabitService
	goals       *GoalService
	notifier    Notifier
	logger      *log.Logger
}

// NewOrchestrator wires an orchestrator from a repository and configuration
// store, constructing the per-entity services over a shared REST client.
func NewOrchestrator(repo store.Repository, cfg *config.Store, client *remote.Client, notifier Notifier, logger *log.Logger) *Orchestrator {
	if logger == nil {
		logger = log.Default()
	}
	if notifier == nil {
		notifier = NopNotifier{}
	}

	companies := NewCompanyService(cfg, client, logger)
	return &Orchestrator{
		repo:        repo,
		cfg:         cfg,
		companies:   companies,
		teams:       NewTeamService(cfg, client, companies, logger),
		salespeople: NewSalespersonService(cfg, client, logger),
		habits:      NewHabitService(cfg, client, logger),
		goals:       NewGoalService(cfg, client, logger),
		notifier:    notifier,
		logger:      logger,
	}
}

// SyncAll mirrors every locally queued collection into the remote datastore.
// Without configuration it reports an error to the user and reads no local
// data. Absent or malformed local collections sync as empty.
func (o *Orchestrator) SyncAll(ctx context.Context) Result {
	if !o.cfg.IsConfigured() {
		o.notifier.Error("cloud sync not configured: set the backend URL and access key first")
		return Result{}
	}

	o.notifier.Info("syncing local data to cloud")

	teams := store.GetCollection[models.Team](o.repo, store.CollectionTeams)
	salespeople := store.GetCollection[models.Salesperson](o.repo, store.CollectionSalespeople)
	habits := store.GetCollection[models.Habit](o.repo, store.CollectionHabits)
	teamHabits := store.GetCollection[models.Habit](o.repo, store.CollectionTeamHabits)
	goals := store.GetCollection[models.Goal](o.repo, store.CollectionGoals)

	// Fixed order: parents before children. The services do not validate
	// foreign keys, so this ordering is the only thing keeping references
	// resolvable remotely.
	result := Result{Ran: true}
	result.Companies = o.companies.EnsureDefault(ctx)
	result.Teams = o.teams.SyncToRemote(ctx, teams)
	result.Salespeople = o.salespeople.SyncToRemote(ctx, salespeople)
	result.Habits = o.habits.SyncToRemote(ctx, habits)
	result.TeamHabits = o.habits.SyncToRemote(ctx, teamHabits)
	result.Goals = o.goals.SyncToRemote(ctx, goals)

	if result.AllSynced() {
		o.notifier.Success("all local data synced to cloud")
	} else {
		o.notifier.Error("sync finished with some collections not fully synced")
	}
	return result
}
