// ABOUTME: Remote row shapes and explicit local-to-remote mappers per entity
// ABOUTME: Default substitutions for locally absent fields happen here, nowhere else
package sync

import (
	"fmt"
	"time"

	"github.com/harperreed/salespulse/models"
)

// Remote table names.
const (
	tableCompanies   = "companies"
	tableTeams       = "teams"
	tableSalespeople = "salespeople"
	tableHabits      = "habits"
	tableGoals       = "goals"
)

// defaultConversionRate is substituted when a local salesperson record
// carries no conversion rate.
const defaultConversionRate = 10.0

type companyRow struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Segment  string `json:"segment"`
	TeamSize int    `json:"team_size"`
}

func newCompanyRow(c models.Company) companyRow {
	return companyRow{
		ID:       c.ID,
		Name:     c.Name,
		Segment:  c.Segment,
		TeamSize: c.TeamSize,
	}
}

type teamRow struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	CompanyID   string  `json:"company_id"`
	MonthlyGoal float64 `json:"monthly_goal"`
}

func newTeamRow(t models.Team) teamRow {
	companyID := t.CompanyID
	if companyID == "" {
		companyID = DefaultCompany().ID
	}
	return teamRow{
		ID:          t.ID,
		Name:        t.Name,
		CompanyID:   companyID,
		MonthlyGoal: t.MonthlyGoal,
	}
}

type salespersonRow struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	TeamID         string  `json:"team_id"`
	TotalSales     float64 `json:"total_sales"`
	CurrentGoal    float64 `json:"current_goal"`
	ConversionRate float64 `json:"conversion_rate"`
}

func newSalespersonRow(p models.Salesperson) salespersonRow {
	email := p.Email
	if email == "" {
		email = fmt.Sprintf("salesperson%s@example.com", p.ID)
	}
	rate := p.ConversionRate
	if rate == 0 {
		rate = defaultConversionRate
	}
	return salespersonRow{
		ID:             p.ID,
		Name:           p.Name,
		Email:          email,
		TeamID:         p.TeamID,
		TotalSales:     p.TotalSales,
		CurrentGoal:    p.CurrentGoal,
		ConversionRate: rate,
	}
}

type habitRow struct {
	ID                   string  `json:"id"`
	Title                string  `json:"title"`
	Description          string  `json:"description"`
	Completed            bool    `json:"completed"`
	Recurrence           string  `json:"recurrence"`
	OwnerKind            string  `json:"owner_kind"`
	OwnerID              string  `json:"owner_id"`
	Verified             bool    `json:"verified"`
	VerificationRequired bool    `json:"verification_required"`
	Evidence             string  `json:"evidence,omitempty"`
	CreatedAt            string  `json:"created_at"`
	CompletedAt          *string `json:"completed_at,omitempty"`
}

func newHabitRow(h models.Habit) habitRow {
	recurrence := h.Recurrence
	if recurrence == "" {
		recurrence = models.RecurrenceDaily
	}

	createdAt := h.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	var completedAt *string
	if h.CompletedAt != nil {
		ts := h.CompletedAt.Format(time.RFC3339)
		completedAt = &ts
	}

	return habitRow{
		ID:                   h.ID,
		Title:                h.Title,
		Description:          h.Description,
		Completed:            h.Completed,
		Recurrence:           recurrence,
		OwnerKind:            h.OwnerKind,
		OwnerID:              h.OwnerID,
		Verified:             h.Verified,
		VerificationRequired: h.VerificationRequired,
		Evidence:             h.Evidence,
		CreatedAt:            createdAt.Format(time.RFC3339),
		CompletedAt:          completedAt,
	}
}

type goalRow struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	TargetValue  float64 `json:"target_value"`
	CurrentValue float64 `json:"current_value"`
	Percentage   float64 `json:"percentage"`
	Type         string  `json:"type"`
	OwnerID      string  `json:"owner_id,omitempty"`
	TeamID       string  `json:"team_id,omitempty"`
}

func newGoalRow(g models.Goal) goalRow {
	goalType := g.Type
	if goalType == "" {
		goalType = models.GoalTypeRevenue
	}
	return goalRow{
		ID:           g.ID,
		Name:         g.Name,
		TargetValue:  g.TargetValue,
		CurrentValue: g.CurrentValue,
		Percentage:   g.Percentage,
		Type:         goalType,
		OwnerID:      g.OwnerID,
		TeamID:       g.TeamID,
	}
}
