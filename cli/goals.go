// ABOUTME: Goal CLI commands
// ABOUTME: Creates, lists, and updates progress on locally stored goals
package cli

import (
	"flag"
	"fmt"

	"github.com/google/uuid"

	"github.com/harperreed/salespulse/models"
	"github.com/harperreed/salespulse/store"
)

// GoalAddCommand creates a goal in the local store. Goals may be scoped to a
// salesperson or a team; un-scoped goals are company-wide.
func GoalAddCommand(repo store.Repository, args []string) error {
	fs := flag.NewFlagSet("goal add", flag.ExitOnError)
	name := fs.String("name", "", "Goal name")
	target := fs.Float64("target", 0, "Target value")
	goalType := fs.String("type", models.GoalTypeRevenue, "revenue, conversion, or activity")
	ownerID := fs.String("owner", "", "Owning salesperson id (optional)")
	teamID := fs.String("team", "", "Owning team id (optional)")
	_ = fs.Parse(args)

	if *name == "" {
		return fmt.Errorf("goal name is required (-name)")
	}
	if *target <= 0 {
		return fmt.Errorf("goal target must be positive (-target)")
	}
	if *ownerID != "" && *teamID != "" {
		return fmt.Errorf("a goal is scoped to a salesperson or a team, not both")
	}

	goal := models.Goal{
		ID:          uuid.New().String(),
		Name:        *name,
		TargetValue: *target,
		Type:        *goalType,
		OwnerID:     *ownerID,
		TeamID:      *teamID,
	}

	goals := store.GetCollection[models.Goal](repo, store.CollectionGoals)
	goals = append(goals, goal)
	if err := store.PutCollection(repo, store.CollectionGoals, goals); err != nil {
		return err
	}

	fmt.Printf("✓ Added goal %s (%s)\n", goal.Name, goal.ID)
	return nil
}

// GoalListCommand prints locally stored goals with progress.
func GoalListCommand(repo store.Repository, args []string) error {
	fs := flag.NewFlagSet("goal list", flag.ExitOnError)
	_ = fs.Parse(args)

	goals := store.GetCollection[models.Goal](repo, store.CollectionGoals)
	if len(goals) == 0 {
		fmt.Println("No goals yet. Add one with 'salespulse goal add -name <name> -target <value>'")
		return nil
	}

	for _, g := range goals {
		scope := "company-wide"
		switch {
		case g.OwnerID != "":
			scope = "salesperson " + g.OwnerID
		case g.TeamID != "":
			scope = "team " + g.TeamID
		}
		fmt.Printf("%s  %-25s %.0f/%.0f (%.0f%%) %s, %s\n", g.ID, g.Name, g.CurrentValue, g.TargetValue, g.Percentage, g.Type, scope)
	}
	return nil
}

// GoalUpdateCommand sets a goal's current value and recomputes progress.
func GoalUpdateCommand(repo store.Repository, args []string) error {
	fs := flag.NewFlagSet("goal update", flag.ExitOnError)
	id := fs.String("id", "", "Goal id")
	value := fs.Float64("value", -1, "New current value")
	_ = fs.Parse(args)

	if *id == "" {
		return fmt.Errorf("goal id is required (-id)")
	}
	if *value < 0 {
		return fmt.Errorf("goal value is required (-value)")
	}

	goals := store.GetCollection[models.Goal](repo, store.CollectionGoals)
	for i := range goals {
		if goals[i].ID != *id {
			continue
		}
		goals[i].UpdateProgress(*value)
		if err := store.PutCollection(repo, store.CollectionGoals, goals); err != nil {
			return err
		}
		fmt.Printf("✓ Goal %s at %.0f%%\n", goals[i].Name, goals[i].Percentage)
		return nil
	}
	return fmt.Errorf("goal %s not found", *id)
}
