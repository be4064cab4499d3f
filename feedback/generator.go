// ABOUTME: Coaching feedback text generation via the Anthropic API
// ABOUTME: Builds performance prompts from local habits and goals
package feedback

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/harperreed/salespulse/models"
)

const maxTokens = 1024

// Generator produces coaching feedback text from a prompt. The contract with
// the remote API is deliberately thin: send a prompt string, receive a string
// or an error.
type Generator struct {
	client anthropic.Client
	model  anthropic.Model
	logger *log.Logger
}

// NewGenerator creates a feedback generator. The API key comes from the
// configuration store's auxiliary key. Extra options are mainly for tests.
func NewGenerator(apiKey string, logger *log.Logger, opts ...option.RequestOption) (*Generator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("language model API key is not set")
	}
	if logger == nil {
		logger = log.Default()
	}

	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &Generator{
		client: anthropic.NewClient(opts...),
		model:  anthropic.ModelClaude3_5HaikuLatest,
		logger: logger,
	}, nil
}

// Generate sends the prompt and returns the generated text.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	msg, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     g.model,
		MaxTokens: maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("feedback generation failed: %w", err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("feedback generation returned no text")
	}
	return sb.String(), nil
}

// BuildCoachPrompt summarizes local habits and goals into a prompt asking for
// short, actionable coaching feedback.
func BuildCoachPrompt(habits []models.Habit, goals []models.Goal) string {
	var sb strings.Builder
	sb.WriteString("You are a sales performance coach. Based on the data below, ")
	sb.WriteString("write short, encouraging, actionable feedback (3-4 sentences).\n\n")

	completed := 0
	for _, h := range habits {
		if h.Completed {
			completed++
		}
	}
	fmt.Fprintf(&sb, "Habits: %d tracked, %d completed.\n", len(habits), completed)
	for _, h := range habits {
		status := "pending"
		if h.Completed {
			status = "done"
		}
		fmt.Fprintf(&sb, "- [%s] %s (%s)\n", status, h.Title, h.Recurrence)
	}

	sb.WriteString("\nGoals:\n")
	for _, g := range goals {
		fmt.Fprintf(&sb, "- %s: %.0f of %.0f (%.0f%%)\n", g.Name, g.CurrentValue, g.TargetValue, g.Percentage)
	}
	if len(goals) == 0 {
		sb.WriteString("- none set\n")
	}

	return sb.String()
}
