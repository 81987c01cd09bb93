// ABOUTME: whoop_get_recovery tool: reshapes the recovery deep dive.
// ABOUTME: Same section/item pattern as sleep, applied to recovery.
package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/harperreed/whoop-mcp/internal/whoop"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type recoveryOutput struct {
	RecoveryScore *scoreSummary        `json:"recoveryScore"`
	Contributors  []contributorSummary `json:"contributors"`
	Insight       string               `json:"insight,omitempty"`
}

func (s *Server) handleRecovery(ctx context.Context, req *mcp.CallToolRequest, input dateInput) (*mcp.CallToolResult, *recoveryOutput, error) {
	dive, err := s.client.GetRecoveryDeepDive(ctx, input.Date)
	if err != nil {
		return errorResult("recovery", err), nil, nil
	}
	out, text := reshapeRecovery(dive)
	return textResult(text), out, nil
}

// reshapeRecovery extracts the recovery summary from a deep dive.
func reshapeRecovery(dive *whoop.DeepDive) (*recoveryOutput, string) {
	out := &recoveryOutput{
		RecoveryScore: reshapeScore(dive.ScoreGauge()),
		Contributors:  reshapeContributors(dive.ContributorsTile()),
		Insight:       dive.CoachInsight(),
	}

	var b strings.Builder
	b.WriteString("💚 RECOVERY\n")
	b.WriteString("═══════════\n\n")
	if out.RecoveryScore != nil {
		fmt.Fprintf(&b, "Recovery Score: %s (%d%%)\n", out.RecoveryScore.ScoreDisplay, out.RecoveryScore.Score)
	} else {
		b.WriteString("Recovery Score: not available\n")
	}
	writeContributors(&b, out.Contributors)
	writeInsight(&b, out.Insight)

	return out, b.String()
}
