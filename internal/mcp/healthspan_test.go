// ABOUTME: Tests for healthspan reshaping: calibration, pace classification.
// ABOUTME: Also checks reshaping is deterministic across repeated runs.
package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/harperreed/whoop-mcp/internal/whoop"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHealthspan() *whoop.HealthspanResponse {
	return &whoop.HealthspanResponse{
		NavigationTitle:    "Healthspan",
		NavigationSubtitle: "Updated today",
		UnlockedContent: &whoop.UnlockedContent{
			DatePicker: whoop.DatePicker{CurrentDateRangeDisplay: "Aug 1 - Aug 27"},
			CurrentAmoeba: whoop.Amoeba{
				AgeValueDisplay:             "31.2",
				AgeSubtitleDisplay:          "2.8 years younger",
				YearsDifferenceValueDisplay: "-2.8",
				PaceOfAgingDisplay:          "0.8x",
			},
			PreviousAmoeba: whoop.Amoeba{
				AgeValueDisplay:    "31.5",
				PaceOfAgingDisplay: "0.9x",
			},
		},
	}
}

func TestHandleHealthspan(t *testing.T) {
	s := NewServer(&fakeWhoop{healthspan: testHealthspan()})

	res, out, err := s.handleHealthspan(context.Background(), nil, dateInput{})
	require.NoError(t, err)
	assert.False(t, res.IsError)

	assert.False(t, out.IsCalibrating)
	require.NotNil(t, out.CurrentPeriod)
	assert.Equal(t, "31.2", out.CurrentPeriod.WhoopAge)
	assert.Equal(t, "0.8x", out.CurrentPeriod.PaceOfAging)
	require.NotNil(t, out.PreviousPeriod)
	assert.Equal(t, "31.5", out.PreviousPeriod.WhoopAge)
	assert.Equal(t, "slower than average", out.PaceAssessment)

	text := res.Content[0].(*mcp.TextContent).Text
	assert.Contains(t, text, "aging slower than average (0.8x)")
}

func TestHealthspanCalibratingSuppressesNumbers(t *testing.T) {
	hs := testHealthspan()
	hs.UnlockedContent.IsCalibrating = true
	s := NewServer(&fakeWhoop{healthspan: hs})

	res, out, err := s.handleHealthspan(context.Background(), nil, dateInput{})
	require.NoError(t, err)

	assert.True(t, out.IsCalibrating)
	assert.Nil(t, out.CurrentPeriod)
	assert.Nil(t, out.PreviousPeriod)
	assert.Empty(t, out.PaceAssessment)

	text := res.Content[0].(*mcp.TextContent).Text
	assert.Contains(t, text, "CALIBRATING")
	assert.NotContains(t, text, "WHOOP Age: 31.2")
}

func TestHealthspanLockedDegrades(t *testing.T) {
	s := NewServer(&fakeWhoop{healthspan: &whoop.HealthspanResponse{NavigationTitle: "Healthspan"}})

	res, out, err := s.handleHealthspan(context.Background(), nil, dateInput{})
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Nil(t, out.CurrentPeriod)

	text := res.Content[0].(*mcp.TextContent).Text
	assert.Contains(t, text, "not available")
}

func TestClassifyPace(t *testing.T) {
	tests := []struct {
		display string
		want    string
	}{
		{"0.8x", "slower than average"},
		{"1.0x", "at an average pace"},
		{"1.3x", "faster than average"},
		{" 0.95x ", "slower than average"},
		{"n/a", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.display, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyPace(tt.display))
		})
	}
}

func TestReshapingIsDeterministic(t *testing.T) {
	hs := testHealthspan()
	out1, text1 := reshapeHealthspan(hs)
	out2, text2 := reshapeHealthspan(hs)

	b1, err := json.Marshal(out1)
	require.NoError(t, err)
	b2, err := json.Marshal(out2)
	require.NoError(t, err)
	assert.Equal(t, b1, b2, "structured output must be byte-identical across runs")
	assert.Equal(t, text1, text2)

	dive := testDive()
	s1, st1 := reshapeSleep(dive)
	s2, st2 := reshapeSleep(dive)
	sb1, err := json.Marshal(s1)
	require.NoError(t, err)
	sb2, err := json.Marshal(s2)
	require.NoError(t, err)
	assert.Equal(t, sb1, sb2)
	assert.Equal(t, st1, st2)
}
