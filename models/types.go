// ABOUTME: Data models for sales habit tracking entities
// ABOUTME: Defines Company, Team, Salesperson, Habit, and Goal structs
package models

import (
	"time"
)

type Company struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Segment  string `json:"segment,omitempty"`
	TeamSize int    `json:"team_size,omitempty"`
}

type Team struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	CompanyID   string  `json:"company_id"`
	MonthlyGoal float64 `json:"monthly_goal,omitempty"`
}

type Salesperson struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email,omitempty"`
	TeamID         string  `json:"team_id"`
	TotalSales     float64 `json:"total_sales"`
	CurrentGoal    float64 `json:"current_goal"`
	ConversionRate float64 `json:"conversion_rate,omitempty"`
}

type Habit struct {
	ID                   string     `json:"id"`
	Title                string     `json:"title"`
	Description          string     `json:"description,omitempty"`
	Completed            bool       `json:"completed"`
	Recurrence           string     `json:"recurrence"`
	OwnerKind            string     `json:"owner_kind"`
	OwnerID              string     `json:"owner_id"`
	Verified             bool       `json:"verified,omitempty"`
	VerificationRequired bool       `json:"verification_required,omitempty"`
	Evidence             string     `json:"evidence,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	CompletedAt          *time.Time `json:"completed_at,omitempty"`
}

type Goal struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	TargetValue  float64 `json:"target_value"`
	CurrentValue float64 `json:"current_value"`
	Percentage   float64 `json:"percentage"`
	Type         string  `json:"type"`
	OwnerID      string  `json:"owner_id,omitempty"`
	TeamID       string  `json:"team_id,omitempty"`
}

// Habit recurrence constants.
const (
	RecurrenceDaily   = "daily"
	RecurrenceWeekly  = "weekly"
	RecurrenceMonthly = "monthly"
)

// Habit owner constants. A habit belongs to a salesperson or a team, never both.
const (
	OwnerIndividual = "individual"
	OwnerTeam       = "team"
)

// Goal type constants.
const (
	GoalTypeRevenue    = "revenue"
	GoalTypeConversion = "conversion"
	GoalTypeActivity   = "activity"
)

// Sync status constants.
const (
	SyncStatusIdle    = "idle"
	SyncStatusSyncing = "syncing"
	SyncStatusError   = "error"
)

// MarkCompleted marks the habit done and stamps the completion time.
// Evidence is only recorded when the habit requires verification.
func (h *Habit) MarkCompleted(at time.Time, evidence string) {
	h.Completed = true
	h.CompletedAt = &at
	if h.VerificationRequired {
		h.Evidence = evidence
		h.Verified = evidence != ""
	}
}

// UpdateProgress sets the current value and recomputes the percentage,
// clamped to 100.
func (g *Goal) UpdateProgress(value float64) {
	g.CurrentValue = value
	if g.TargetValue <= 0 {
		g.Percentage = 0
		return
	}
	pct := value / g.TargetValue * 100
	if pct > 100 {
		pct = 100
	}
	g.Percentage = pct
}

// IsCompanyWide reports whether the goal is scoped to neither a salesperson
// nor a team.
func (g *Goal) IsCompanyWide() bool {
	return g.OwnerID == "" && g.TeamID == ""
}
