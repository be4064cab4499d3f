// ABOUTME: Salesperson CLI commands
// ABOUTME: Creates and lists locally stored salespeople
package cli

import (
	"flag"
	"fmt"

	"github.com/google/uuid"

	"github.com/harperreed/salespulse/models"
	"github.com/harperreed/salespulse/store"
)

// SalespersonAddCommand creates a salesperson in the local store.
func SalespersonAddCommand(repo store.Repository, args []string) error {
	fs := flag.NewFlagSet("salesperson add", flag.ExitOnError)
	name := fs.String("name", "", "Salesperson name")
	email := fs.String("email", "", "Email address (optional)")
	teamID := fs.String("team", "", "Team id")
	goal := fs.Float64("goal", 0, "Current sales goal")
	_ = fs.Parse(args)

	if *name == "" {
		return fmt.Errorf("salesperson name is required (-name)")
	}
	if *teamID == "" {
		return fmt.Errorf("team id is required (-team)")
	}

	person := models.Salesperson{
		ID:          uuid.New().String(),
		Name:        *name,
		Email:       *email,
		TeamID:      *teamID,
		CurrentGoal: *goal,
	}

	people := store.GetCollection[models.Salesperson](repo, store.CollectionSalespeople)
	people = append(people, person)
	if err := store.PutCollection(repo, store.CollectionSalespeople, people); err != nil {
		return err
	}

	fmt.Printf("✓ Added salesperson %s (%s)\n", person.Name, person.ID)
	return nil
}

// SalespersonListCommand prints locally stored salespeople.
func SalespersonListCommand(repo store.Repository, args []string) error {
	fs := flag.NewFlagSet("salesperson list", flag.ExitOnError)
	_ = fs.Parse(args)

	people := store.GetCollection[models.Salesperson](repo, store.CollectionSalespeople)
	if len(people) == 0 {
		fmt.Println("No salespeople yet. Add one with 'salespulse salesperson add -name <name> -team <id>'")
		return nil
	}

	for _, p := range people {
		fmt.Printf("%s  %-20s team: %s  sales: %.0f  goal: %.0f\n", p.ID, p.Name, p.TeamID, p.TotalSales, p.CurrentGoal)
	}
	return nil
}
