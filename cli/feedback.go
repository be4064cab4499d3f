// ABOUTME: AI feedback CLI command
// ABOUTME: Generates coaching text from locally tracked habits and goals
package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/harperreed/salespulse/feedback"
	"github.com/harperreed/salespulse/models"
	"github.com/harperreed/salespulse/store"
)

// FeedbackCommand generates coaching feedback for the locally tracked
// habits and goals. Requires the auxiliary API key to be set.
func FeedbackCommand(repo store.Repository, args []string) error {
	fs := flag.NewFlagSet("feedback", flag.ExitOnError)
	_ = fs.Parse(args)

	cfg := loadConfig(repo)
	gen, err := feedback.NewGenerator(cfg.AuxiliaryKey(), nil)
	if err != nil {
		return fmt.Errorf("feedback unavailable: %w (set it with 'salespulse settings set -aux <key>')", err)
	}

	habits := store.GetCollection[models.Habit](repo, store.CollectionHabits)
	habits = append(habits, store.GetCollection[models.Habit](repo, store.CollectionTeamHabits)...)
	goals := store.GetCollection[models.Goal](repo, store.CollectionGoals)

	text, err := gen.Generate(context.Background(), feedback.BuildCoachPrompt(habits, goals))
	if err != nil {
		return err
	}

	fmt.Println(text)
	return nil
}
