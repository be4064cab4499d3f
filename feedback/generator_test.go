// ABOUTME: Tests for the feedback generator
// ABOUTME: Covers prompt building and the thin API contract against a fake server
package feedback

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/salespulse/models"
)

func TestNewGeneratorRequiresKey(t *testing.T) {
	_, err := NewGenerator("", nil)
	assert.Error(t, err)
}

func TestBuildCoachPrompt(t *testing.T) {
	habits := []models.Habit{
		{ID: "h1", Title: "Prospect 10 accounts", Recurrence: models.RecurrenceDaily, Completed: true},
		{ID: "h2", Title: "Update pipeline notes", Recurrence: models.RecurrenceWeekly},
	}
	goals := []models.Goal{
		{ID: "g1", Name: "Q3 revenue", TargetValue: 500000, CurrentValue: 125000, Percentage: 25},
	}

	prompt := BuildCoachPrompt(habits, goals)

	assert.Contains(t, prompt, "2 tracked, 1 completed")
	assert.Contains(t, prompt, "[done] Prospect 10 accounts (daily)")
	assert.Contains(t, prompt, "[pending] Update pipeline notes (weekly)")
	assert.Contains(t, prompt, "Q3 revenue: 125000 of 500000 (25%)")
}

func TestBuildCoachPromptEmpty(t *testing.T) {
	prompt := BuildCoachPrompt(nil, nil)
	assert.Contains(t, prompt, "0 tracked, 0 completed")
	assert.Contains(t, prompt, "none set")
}

func TestGenerateReturnsText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "msg_1",
			"type": "message",
			"role": "assistant",
			"model": "claude-3-5-haiku-latest",
			"content": [{"type": "text", "text": "Strong week. Keep the prospecting streak going."}],
			"stop_reason": "end_turn",
			"usage": {"input_tokens": 10, "output_tokens": 12}
		}`))
	}))
	defer srv.Close()

	gen, err := NewGenerator("test-key", nil, option.WithBaseURL(srv.URL))
	require.NoError(t, err)

	text, err := gen.Generate(context.Background(), "How am I doing?")
	require.NoError(t, err)
	assert.Equal(t, "Strong week. Keep the prospecting streak going.", text)
}

func TestGenerateSurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"type":"error","error":{"type":"invalid_request_error","message":"bad"}}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	gen, err := NewGenerator("test-key", nil, option.WithBaseURL(srv.URL), option.WithMaxRetries(0))
	require.NoError(t, err)

	_, err = gen.Generate(context.Background(), "How am I doing?")
	assert.Error(t, err)
}
