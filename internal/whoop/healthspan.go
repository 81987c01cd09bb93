// ABOUTME: Typed payload for the healthspan (biological age) endpoint.
// ABOUTME: Calibrating accounts carry the flag but no meaningful numbers.
package whoop

// Amoeba is one period's biological-age reading.
type Amoeba struct {
	AgeValueDisplay             string `json:"age_value_display"`
	AgeTitleDisplay             string `json:"age_title_display"`
	AgeSubtitleDisplay          string `json:"age_subtitle_display"`
	YearsDifferenceValueDisplay string `json:"years_difference_value_display"`
	YearsDifferenceSubtitle     string `json:"years_difference_subtitle_display"`
	PaceOfAgingDisplay          string `json:"pace_of_aging_display"`
	PaceOfAgingSubtitle         string `json:"pace_of_aging_subtitle_display"`
	IsCalibrating               bool   `json:"is_calibrating"`
}

// DatePicker bounds the period the healthspan reading covers.
type DatePicker struct {
	CurrentDateRangeDisplay string `json:"current_date_range_display"`
	PreviousDateTime        string `json:"previous_date_time"`
	NextDateTime            string `json:"next_date_time"`
}

// UnlockedContent is the healthspan body once the feature is unlocked.
type UnlockedContent struct {
	DatePicker     DatePicker `json:"date_picker"`
	IsCalibrating  bool       `json:"is_calibrating"`
	CurrentAmoeba  Amoeba     `json:"whoop_age_amoeba"`
	PreviousAmoeba Amoeba     `json:"previous_whoop_age_amoeba"`
}

// HealthspanResponse is the healthspan-service payload for one date.
// UnlockedContent is nil for accounts that have not unlocked the feature.
type HealthspanResponse struct {
	NavigationTitle    string           `json:"navigation_title"`
	NavigationSubtitle string           `json:"navigation_subtitle"`
	UnlockedContent    *UnlockedContent `json:"unlocked_content"`
}
