// ABOUTME: Exported text summaries for CLI use.
// ABOUTME: Same formatting the tools return as content.
package mcp

import "github.com/harperreed/whoop-mcp/internal/whoop"

// OverviewSummary formats a home payload as the overview tool would.
func OverviewSummary(home *whoop.HomeResponse) string {
	_, text := reshapeOverview(home)
	return text
}

// SleepSummary formats a sleep deep dive as the sleep tool would.
func SleepSummary(dive *whoop.DeepDive) string {
	_, text := reshapeSleep(dive)
	return text
}

// RecoverySummary formats a recovery deep dive as the recovery tool would.
func RecoverySummary(dive *whoop.DeepDive) string {
	_, text := reshapeRecovery(dive)
	return text
}

// StrainSummary formats a strain deep dive as the strain tool would.
func StrainSummary(dive *whoop.DeepDive) string {
	_, text := reshapeStrain(dive)
	return text
}

// HealthspanSummary formats a healthspan payload as the healthspan tool would.
func HealthspanSummary(hs *whoop.HealthspanResponse) string {
	_, text := reshapeHealthspan(hs)
	return text
}
