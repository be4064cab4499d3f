// ABOUTME: Team CLI commands
// ABOUTME: Creates and lists locally stored teams
package cli

import (
	"flag"
	"fmt"

	"github.com/google/uuid"

	"github.com/harperreed/salespulse/models"
	"github.com/harperreed/salespulse/store"
	"github.com/harperreed/salespulse/sync"
)

// TeamAddCommand creates a team in the local store. The id is assigned here,
// before any sync attempt.
func TeamAddCommand(repo store.Repository, args []string) error {
	fs := flag.NewFlagSet("team add", flag.ExitOnError)
	name := fs.String("name", "", "Team name")
	goal := fs.Float64("goal", 0, "Monthly sales goal")
	_ = fs.Parse(args)

	if *name == "" {
		return fmt.Errorf("team name is required (-name)")
	}

	team := models.Team{
		ID:          uuid.New().String(),
		Name:        *name,
		CompanyID:   sync.DefaultCompany().ID,
		MonthlyGoal: *goal,
	}

	teams := store.GetCollection[models.Team](repo, store.CollectionTeams)
	teams = append(teams, team)
	if err := store.PutCollection(repo, store.CollectionTeams, teams); err != nil {
		return err
	}

	fmt.Printf("✓ Added team %s (%s)\n", team.Name, team.ID)
	return nil
}

// TeamListCommand prints locally stored teams.
func TeamListCommand(repo store.Repository, args []string) error {
	fs := flag.NewFlagSet("team list", flag.ExitOnError)
	_ = fs.Parse(args)

	teams := store.GetCollection[models.Team](repo, store.CollectionTeams)
	if len(teams) == 0 {
		fmt.Println("No teams yet. Add one with 'salespulse team add -name <name>'")
		return nil
	}

	for _, t := range teams {
		fmt.Printf("%s  %-20s monthly goal: %.0f\n", t.ID, t.Name, t.MonthlyGoal)
	}
	return nil
}
