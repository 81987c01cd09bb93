// ABOUTME: whoop_get_overview tool: reshapes the home payload.
// ABOUTME: Pulls live cycle metrics and the header score gauges.
package mcp

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/harperreed/whoop-mcp/internal/whoop"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type gaugeSummary struct {
	Title   string `json:"title"`
	Display string `json:"display"`
	Percent int    `json:"percent"`
}

type overviewOutput struct {
	CycleDay    string         `json:"cycleDay"`
	DateDisplay string         `json:"dateDisplay"`
	CycleID     int64          `json:"cycleId"`
	SleepState  string         `json:"sleepState"`
	Recovery    float64        `json:"recoveryScore"`
	DayStrain   float64        `json:"dayStrain"`
	SleepHours  float64        `json:"sleepHours"`
	Calories    float64        `json:"calories"`
	Scores      []gaugeSummary `json:"scores,omitempty"`
}

func (s *Server) handleOverview(ctx context.Context, req *mcp.CallToolRequest, input dateInput) (*mcp.CallToolResult, *overviewOutput, error) {
	home, err := s.client.GetHome(ctx, input.Date)
	if err != nil {
		return errorResult("overview", err), nil, nil
	}
	out, text := reshapeOverview(home)
	return textResult(text), out, nil
}

// reshapeOverview extracts live metrics and gauges from a home payload.
func reshapeOverview(home *whoop.HomeResponse) (*overviewOutput, string) {
	cycle := home.Metadata.CycleMetadata
	live := home.Metadata.LiveMetadata

	out := &overviewOutput{
		CycleDay:    cycle.CycleDay,
		DateDisplay: cycle.CycleDateDisplay,
		CycleID:     cycle.CycleID,
		SleepState:  cycle.SleepState,
		Recovery:    live.RecoveryScore,
		DayStrain:   live.DayStrain,
		SleepHours:  roundTenth(float64(live.MsOfSleep) / (1000 * 60 * 60)),
		Calories:    live.Calories,
	}
	if home.Header != nil {
		for _, g := range home.Header.Content.Gauges {
			out.Scores = append(out.Scores, gaugeSummary{
				Title:   g.Title,
				Display: g.ScoreDisplay + g.ScoreDisplaySuffix,
				Percent: int(math.Round(g.GaugeFillPercentage * 100)),
			})
		}
	}

	var b strings.Builder
	b.WriteString("🏠 WHOOP OVERVIEW\n")
	b.WriteString("═════════════════\n\n")
	fmt.Fprintf(&b, "📅 Date: %s (%s)\n", out.CycleDay, out.DateDisplay)
	fmt.Fprintf(&b, "🔄 Cycle ID: %d\n", out.CycleID)
	fmt.Fprintf(&b, "💤 Sleep State: %s\n\n", out.SleepState)
	b.WriteString("📊 LIVE METRICS\n")
	b.WriteString("───────────────\n")
	fmt.Fprintf(&b, "  Recovery: %.0f%%\n", out.Recovery)
	fmt.Fprintf(&b, "  Strain: %.1f\n", out.DayStrain)
	fmt.Fprintf(&b, "  Sleep: %.1f hours\n", out.SleepHours)
	fmt.Fprintf(&b, "  Calories: %.0f\n", out.Calories)
	if len(out.Scores) > 0 {
		b.WriteString("\n🎯 SCORES\n")
		b.WriteString("─────────\n")
		for _, g := range out.Scores {
			fmt.Fprintf(&b, "  %s: %s (%d%%)\n", g.Title, g.Display, g.Percent)
		}
	}

	return out, b.String()
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
