// ABOUTME: whoop_get_sleep tool: reshapes the sleep deep dive.
// ABOUTME: Extracts the score gauge, contributors, and coaching insight.
package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/harperreed/whoop-mcp/internal/whoop"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type sleepOutput struct {
	SleepPerformance *scoreSummary        `json:"sleepPerformance"`
	Contributors     []contributorSummary `json:"contributors"`
	Insight          string               `json:"insight,omitempty"`
}

func (s *Server) handleSleep(ctx context.Context, req *mcp.CallToolRequest, input dateInput) (*mcp.CallToolResult, *sleepOutput, error) {
	dive, err := s.client.GetSleepDeepDive(ctx, input.Date)
	if err != nil {
		return errorResult("sleep", err), nil, nil
	}
	out, text := reshapeSleep(dive)
	return textResult(text), out, nil
}

// reshapeSleep extracts the sleep performance summary from a deep dive.
func reshapeSleep(dive *whoop.DeepDive) (*sleepOutput, string) {
	out := &sleepOutput{
		SleepPerformance: reshapeScore(dive.ScoreGauge()),
		Contributors:     reshapeContributors(dive.ContributorsTile()),
		Insight:          dive.CoachInsight(),
	}

	var b strings.Builder
	b.WriteString("😴 SLEEP\n")
	b.WriteString("════════\n\n")
	if out.SleepPerformance != nil {
		fmt.Fprintf(&b, "Sleep Performance: %s (%d%%)\n", out.SleepPerformance.ScoreDisplay, out.SleepPerformance.Score)
	} else {
		b.WriteString("Sleep Performance: not available\n")
	}
	writeContributors(&b, out.Contributors)
	writeInsight(&b, out.Insight)

	return out, b.String()
}

func writeContributors(b *strings.Builder, contributors []contributorSummary) {
	if len(contributors) == 0 {
		return
	}
	b.WriteString("\n📊 CONTRIBUTORS\n")
	b.WriteString("───────────────\n")
	for _, c := range contributors {
		line := fmt.Sprintf("  %s: %s", c.Title, c.Status)
		if c.StatusSubtitle != "" {
			line += " (" + c.StatusSubtitle + ")"
		}
		b.WriteString(line + "\n")
	}
}

func writeInsight(b *strings.Builder, insight string) {
	if insight == "" {
		return
	}
	b.WriteString("\n💡 INSIGHT\n")
	b.WriteString("──────────\n")
	b.WriteString("  " + insight + "\n")
}
