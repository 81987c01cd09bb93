// ABOUTME: Tool registrations and shared result helpers.
// ABOUTME: Client failures become error-flagged results, never unhandled faults.
package mcp

import (
	"fmt"
	"math"

	"github.com/harperreed/whoop-mcp/internal/whoop"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// whoop_get_overview
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "whoop_get_overview",
		Description: "Comprehensive daily overview with live metrics (strain, recovery, sleep, calories) and score gauges",
	}, s.handleOverview)

	// whoop_get_sleep
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "whoop_get_sleep",
		Description: "Detailed sleep analysis: performance score, contributors (hours vs needed, consistency, efficiency, sleep stress), and coaching insight",
	}, s.handleSleep)

	// whoop_get_recovery
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "whoop_get_recovery",
		Description: "Recovery score with its contributors (HRV, resting heart rate, sleep, and more) and coaching insight",
	}, s.handleRecovery)

	// whoop_get_strain
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "whoop_get_strain",
		Description: "Strain score with its contributors and the day's logged activities",
	}, s.handleStrain)

	// whoop_get_healthspan
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "whoop_get_healthspan",
		Description: "Healthspan analysis: WHOOP Age (biological age), pace of aging, and comparison to the previous period",
	}, s.handleHealthspan)
}

// dateInput is the shared input schema: every tool takes an optional date.
type dateInput struct {
	Date string `json:"date,omitempty" jsonschema:"Date in YYYY-MM-DD format (defaults to today if not provided)"`
}

// textResult wraps a formatted summary as tool content.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// errorResult converts a fetch failure into an error-flagged result.
func errorResult(domain string, err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("Error fetching %s data: %v", domain, err)},
		},
	}
}

// scoreSummary is the reshaped form of a deep-dive score gauge.
type scoreSummary struct {
	Score          int     `json:"score"`
	ScoreDisplay   string  `json:"scoreDisplay"`
	FillPercentage float64 `json:"fillPercentage"`
}

// contributorSummary is one reshaped contributors-tile row.
type contributorSummary struct {
	ID             string `json:"id"`
	Icon           string `json:"icon,omitempty"`
	Title          string `json:"title"`
	Status         string `json:"status"`
	StatusSubtitle string `json:"statusSubtitle,omitempty"`
	MetricStyle    string `json:"metricStyle,omitempty"`
}

// reshapeScore derives the 0-100 score from a gauge's fill percentage.
func reshapeScore(g *whoop.ScoreGauge) *scoreSummary {
	if g == nil {
		return nil
	}
	return &scoreSummary{
		Score:          int(math.Round(g.GaugeFillPercentage * 100)),
		ScoreDisplay:   g.ScoreDisplay,
		FillPercentage: g.GaugeFillPercentage,
	}
}

// reshapeContributors flattens a contributors tile; nil tile yields an
// empty list rather than a failure.
func reshapeContributors(tile *whoop.ContributorsTile) []contributorSummary {
	if tile == nil {
		return []contributorSummary{}
	}
	out := make([]contributorSummary, 0, len(tile.Metrics))
	for _, m := range tile.Metrics {
		out = append(out, contributorSummary{
			ID:             m.ID,
			Icon:           m.Icon,
			Title:          m.Title,
			Status:         m.Status,
			StatusSubtitle: m.StatusSubtitle,
			MetricStyle:    m.MetricStyle,
		})
	}
	return out
}
