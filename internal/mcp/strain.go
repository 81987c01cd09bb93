// ABOUTME: whoop_get_strain tool: reshapes the strain deep dive.
// ABOUTME: Adds the day's logged activities on top of the score/contributors pattern.
package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/harperreed/whoop-mcp/internal/whoop"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type activitySummary struct {
	Title        string `json:"title"`
	ScoreDisplay string `json:"scoreDisplay"`
	StartTime    string `json:"startTime,omitempty"`
	EndTime      string `json:"endTime,omitempty"`
	Status       string `json:"status,omitempty"`
}

type strainOutput struct {
	StrainScore  *scoreSummary        `json:"strainScore"`
	Contributors []contributorSummary `json:"contributors"`
	Activities   []activitySummary    `json:"activities"`
	Insight      string               `json:"insight,omitempty"`
}

func (s *Server) handleStrain(ctx context.Context, req *mcp.CallToolRequest, input dateInput) (*mcp.CallToolResult, *strainOutput, error) {
	dive, err := s.client.GetStrainDeepDive(ctx, input.Date)
	if err != nil {
		return errorResult("strain", err), nil, nil
	}
	out, text := reshapeStrain(dive)
	return textResult(text), out, nil
}

// reshapeStrain extracts the strain summary and activity list from a deep dive.
func reshapeStrain(dive *whoop.DeepDive) (*strainOutput, string) {
	activities := []activitySummary{}
	for _, a := range dive.Activities() {
		activities = append(activities, activitySummary{
			Title:        a.Title,
			ScoreDisplay: a.ScoreDisplay,
			StartTime:    a.StartTimeText,
			EndTime:      a.EndTimeText,
			Status:       a.Status,
		})
	}

	out := &strainOutput{
		StrainScore:  reshapeScore(dive.ScoreGauge()),
		Contributors: reshapeContributors(dive.ContributorsTile()),
		Activities:   activities,
		Insight:      dive.CoachInsight(),
	}

	var b strings.Builder
	b.WriteString("🔥 STRAIN\n")
	b.WriteString("═════════\n\n")
	if out.StrainScore != nil {
		fmt.Fprintf(&b, "Day Strain: %s\n", out.StrainScore.ScoreDisplay)
	} else {
		b.WriteString("Day Strain: not available\n")
	}
	writeContributors(&b, out.Contributors)
	if len(out.Activities) > 0 {
		b.WriteString("\n🏃 ACTIVITIES\n")
		b.WriteString("─────────────\n")
		for _, a := range out.Activities {
			line := fmt.Sprintf("  %s: %s", a.Title, a.ScoreDisplay)
			if a.StartTime != "" && a.EndTime != "" {
				line += fmt.Sprintf(" (%s - %s)", a.StartTime, a.EndTime)
			}
			b.WriteString(line + "\n")
		}
	}
	writeInsight(&b, out.Insight)

	return out, b.String()
}
