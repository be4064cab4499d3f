// ABOUTME: Habit CLI commands
// ABOUTME: Creates, lists, and completes locally stored habits
package cli

import (
	"flag"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/harperreed/salespulse/models"
	"github.com/harperreed/salespulse/store"
)

// HabitAddCommand creates a habit in the local store. A habit is owned by
// either a salesperson (-owner) or a team (-team), never both.
func HabitAddCommand(repo store.Repository, args []string) error {
	fs := flag.NewFlagSet("habit add", flag.ExitOnError)
	title := fs.String("title", "", "Habit title")
	desc := fs.String("desc", "", "Description (optional)")
	recurrence := fs.String("recurrence", models.RecurrenceDaily, "daily, weekly, or monthly")
	ownerID := fs.String("owner", "", "Owning salesperson id")
	teamID := fs.String("team", "", "Owning team id")
	verify := fs.Bool("verify", false, "Require evidence on completion")
	_ = fs.Parse(args)

	if *title == "" {
		return fmt.Errorf("habit title is required (-title)")
	}
	if (*ownerID == "") == (*teamID == "") {
		return fmt.Errorf("exactly one of -owner or -team is required")
	}

	habit := models.Habit{
		ID:                   uuid.New().String(),
		Title:                *title,
		Description:          *desc,
		Recurrence:           *recurrence,
		VerificationRequired: *verify,
		CreatedAt:            time.Now(),
	}

	collection := store.CollectionHabits
	if *teamID != "" {
		habit.OwnerKind = models.OwnerTeam
		habit.OwnerID = *teamID
		collection = store.CollectionTeamHabits
	} else {
		habit.OwnerKind = models.OwnerIndividual
		habit.OwnerID = *ownerID
	}

	habits := store.GetCollection[models.Habit](repo, collection)
	habits = append(habits, habit)
	if err := store.PutCollection(repo, collection, habits); err != nil {
		return err
	}

	fmt.Printf("✓ Added %s habit %s (%s)\n", habit.OwnerKind, habit.Title, habit.ID)
	return nil
}

// HabitListCommand prints locally stored habits, individual then team.
func HabitListCommand(repo store.Repository, args []string) error {
	fs := flag.NewFlagSet("habit list", flag.ExitOnError)
	_ = fs.Parse(args)

	individual := store.GetCollection[models.Habit](repo, store.CollectionHabits)
	team := store.GetCollection[models.Habit](repo, store.CollectionTeamHabits)

	if len(individual)+len(team) == 0 {
		fmt.Println("No habits yet. Add one with 'salespulse habit add -title <title> -owner <id>'")
		return nil
	}

	for _, h := range append(individual, team...) {
		status := " "
		if h.Completed {
			status = "x"
		}
		fmt.Printf("[%s] %s  %-30s %s %s/%s\n", status, h.ID, h.Title, h.Recurrence, h.OwnerKind, h.OwnerID)
	}
	return nil
}

// HabitCompleteCommand marks a habit done, searching both collections.
func HabitCompleteCommand(repo store.Repository, args []string) error {
	fs := flag.NewFlagSet("habit complete", flag.ExitOnError)
	id := fs.String("id", "", "Habit id")
	evidence := fs.String("evidence", "", "Completion evidence (for verified habits)")
	_ = fs.Parse(args)

	if *id == "" {
		return fmt.Errorf("habit id is required (-id)")
	}

	for _, collection := range []string{store.CollectionHabits, store.CollectionTeamHabits} {
		habits := store.GetCollection[models.Habit](repo, collection)
		for i := range habits {
			if habits[i].ID != *id {
				continue
			}
			habits[i].MarkCompleted(time.Now(), *evidence)
			if err := store.PutCollection(repo, collection, habits); err != nil {
				return err
			}
			fmt.Printf("✓ Completed habit %s\n", habits[i].Title)
			return nil
		}
	}
	return fmt.Errorf("habit %s not found", *id)
}
