// ABOUTME: whoop_get_healthspan tool: reshapes the biological-age payload.
// ABOUTME: Calibrating accounts suppress numeric interpretation entirely.
package mcp

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/harperreed/whoop-mcp/internal/whoop"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type healthspanPeriod struct {
	WhoopAge        string `json:"whoopAge"`
	AgeStatus       string `json:"ageStatus,omitempty"`
	YearsDifference string `json:"yearsDifference,omitempty"`
	PaceOfAging     string `json:"paceOfAging"`
}

type healthspanOutput struct {
	NavigationTitle    string            `json:"navigationTitle"`
	NavigationSubtitle string            `json:"navigationSubtitle"`
	DateRange          string            `json:"dateRange,omitempty"`
	IsCalibrating      bool              `json:"isCalibrating"`
	CurrentPeriod      *healthspanPeriod `json:"currentPeriod,omitempty"`
	PreviousPeriod     *healthspanPeriod `json:"previousPeriod,omitempty"`
	PaceAssessment     string            `json:"paceAssessment,omitempty"`
}

func (s *Server) handleHealthspan(ctx context.Context, req *mcp.CallToolRequest, input dateInput) (*mcp.CallToolResult, *healthspanOutput, error) {
	hs, err := s.client.GetHealthspan(ctx, input.Date)
	if err != nil {
		return errorResult("healthspan", err), nil, nil
	}
	out, text := reshapeHealthspan(hs)
	return textResult(text), out, nil
}

// reshapeHealthspan extracts the WHOOP Age summary. Numeric fields are
// suppressed while the account is still calibrating, and absent unlocked
// content degrades to a status line rather than an error.
func reshapeHealthspan(hs *whoop.HealthspanResponse) (*healthspanOutput, string) {
	out := &healthspanOutput{
		NavigationTitle:    hs.NavigationTitle,
		NavigationSubtitle: hs.NavigationSubtitle,
	}

	var b strings.Builder
	b.WriteString("🧬 HEALTHSPAN (WHOOP AGE)\n")
	b.WriteString("═════════════════════════\n\n")

	content := hs.UnlockedContent
	if content == nil {
		b.WriteString("Healthspan data is not available for this account.\n")
		return out, b.String()
	}

	out.DateRange = content.DatePicker.CurrentDateRangeDisplay
	out.IsCalibrating = content.IsCalibrating

	fmt.Fprintf(&b, "📅 Period: %s\n", out.DateRange)
	if out.NavigationSubtitle != "" {
		fmt.Fprintf(&b, "⏰ %s\n", out.NavigationSubtitle)
	}
	b.WriteString("\n")

	if out.IsCalibrating {
		b.WriteString("⚙️ CALIBRATING\n")
		b.WriteString("  Your Healthspan is still being calculated; check back once calibration completes.\n")
		return out, b.String()
	}

	current := content.CurrentAmoeba
	previous := content.PreviousAmoeba
	out.CurrentPeriod = &healthspanPeriod{
		WhoopAge:        current.AgeValueDisplay,
		AgeStatus:       current.AgeSubtitleDisplay,
		YearsDifference: current.YearsDifferenceValueDisplay,
		PaceOfAging:     current.PaceOfAgingDisplay,
	}
	out.PreviousPeriod = &healthspanPeriod{
		WhoopAge:    previous.AgeValueDisplay,
		PaceOfAging: previous.PaceOfAgingDisplay,
	}
	out.PaceAssessment = classifyPace(current.PaceOfAgingDisplay)

	b.WriteString("🎯 CURRENT PERIOD\n")
	b.WriteString("─────────────────\n")
	fmt.Fprintf(&b, "  WHOOP Age: %s\n", out.CurrentPeriod.WhoopAge)
	fmt.Fprintf(&b, "  Status: %s\n", out.CurrentPeriod.AgeStatus)
	fmt.Fprintf(&b, "  Years Difference: %s\n", out.CurrentPeriod.YearsDifference)
	fmt.Fprintf(&b, "  Pace of Aging: %s\n\n", out.CurrentPeriod.PaceOfAging)
	b.WriteString("📊 PREVIOUS PERIOD\n")
	b.WriteString("──────────────────\n")
	fmt.Fprintf(&b, "  WHOOP Age: %s\n", out.PreviousPeriod.WhoopAge)
	fmt.Fprintf(&b, "  Pace of Aging: %s\n", out.PreviousPeriod.PaceOfAging)

	if out.PaceAssessment != "" {
		b.WriteString("\n💡 INTERPRETATION\n")
		b.WriteString("─────────────────\n")
		fmt.Fprintf(&b, "  You're aging %s (%s)\n", out.PaceAssessment, out.CurrentPeriod.PaceOfAging)
	}

	return out, b.String()
}

// classifyPace interprets a display value like "0.8x" relative to one
// biological year per chronological year. Unparseable displays yield "".
func classifyPace(display string) string {
	v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(display), "x"), 64)
	if err != nil {
		return ""
	}
	switch {
	case v < 1.0:
		return "slower than average"
	case v > 1.0:
		return "faster than average"
	default:
		return "at an average pace"
	}
}
