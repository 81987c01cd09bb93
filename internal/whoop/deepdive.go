// ABOUTME: Deep-dive payload types shared by the sleep, recovery and strain endpoints.
// ABOUTME: Section items are a tagged union discriminated on the "type" field.
package whoop

import "encoding/json"

// Section item discriminators used by the deep-dive endpoints.
const (
	ItemTypeScoreGauge       = "SCORE_GAUGE"
	ItemTypeContributorsTile = "CONTRIBUTORS_TILE"
	ItemTypeActivity         = "ACTIVITY"
	ItemTypeCoachVow         = "WHOOP_COACH_VOW"
)

// ScoreGauge is the headline score dial of a deep dive.
type ScoreGauge struct {
	ID                  string  `json:"id"`
	ScoreDisplayTitle   string  `json:"score_display_title"`
	ScoreDisplay        string  `json:"score_display"`
	ScoreDisplaySuffix  string  `json:"score_display_suffix"`
	GaugeFillPercentage float64 `json:"gauge_fill_percentage"`
}

// ContributorMetric is one row of a contributors tile.
type ContributorMetric struct {
	ID             string `json:"id"`
	Icon           string `json:"icon"`
	Title          string `json:"title"`
	Status         string `json:"status"`
	StatusSubtitle string `json:"status_subtitle"`
	MetricStyle    string `json:"metric_style"`
}

// FooterItem is a tagged footer entry; only coach vows are interpreted.
type FooterItem struct {
	Type    string        `json:"type"`
	Content FooterContent `json:"content"`
}

type FooterContent struct {
	Vow string `json:"vow"`
}

// ContributorsTile lists the metrics feeding a deep-dive score.
type ContributorsTile struct {
	ID      string              `json:"id"`
	Metrics []ContributorMetric `json:"metrics"`
	Footer  struct {
		Items []FooterItem `json:"items"`
	} `json:"footer"`
}

// Activity is one logged activity row in a strain deep dive.
type Activity struct {
	Title         string `json:"title"`
	ScoreDisplay  string `json:"score_display"`
	StartTimeText string `json:"start_time_text"`
	EndTimeText   string `json:"end_time_text"`
	Status        string `json:"status"`
	SportID       int    `json:"sport_id"`
	InternalName  string `json:"internal_name"`
}

// SectionItem is one item of a deep-dive section. Exactly one of the typed
// fields is set according to Type; anything unrecognized keeps its raw bytes
// in Unknown and is otherwise ignored.
type SectionItem struct {
	Type         string
	Gauge        *ScoreGauge
	Contributors *ContributorsTile
	Activity     *Activity
	Unknown      json.RawMessage
}

func (it *SectionItem) UnmarshalJSON(data []byte) error {
	var probe struct {
		Type    string          `json:"type"`
		Content json.RawMessage `json:"content"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	it.Type = probe.Type

	// A content block that does not match its declared shape degrades to an
	// unknown item instead of failing the whole payload.
	switch probe.Type {
	case ItemTypeScoreGauge:
		var g ScoreGauge
		if err := json.Unmarshal(probe.Content, &g); err == nil {
			it.Gauge = &g
			return nil
		}
	case ItemTypeContributorsTile:
		var c ContributorsTile
		if err := json.Unmarshal(probe.Content, &c); err == nil {
			it.Contributors = &c
			return nil
		}
	case ItemTypeActivity:
		var a Activity
		if err := json.Unmarshal(probe.Content, &a); err == nil {
			it.Activity = &a
			return nil
		}
	}
	it.Unknown = probe.Content
	return nil
}

// Section groups deep-dive items.
type Section struct {
	ID          string        `json:"id"`
	SectionType string        `json:"section_type"`
	Items       []SectionItem `json:"items"`
}

// DeepDiveHeader titles a deep-dive payload.
type DeepDiveHeader struct {
	Title             string `json:"title"`
	DeepDiveScoreType string `json:"deep_dive_score_type"`
}

// DeepDive is the section/item breakdown for one domain and date.
type DeepDive struct {
	Header   DeepDiveHeader `json:"header"`
	Sections []Section      `json:"sections"`
}

// ScoreGauge returns the first score gauge across all sections, or nil.
func (d *DeepDive) ScoreGauge() *ScoreGauge {
	for _, s := range d.Sections {
		for _, it := range s.Items {
			if it.Gauge != nil {
				return it.Gauge
			}
		}
	}
	return nil
}

// ContributorsTile returns the first contributors tile, or nil.
func (d *DeepDive) ContributorsTile() *ContributorsTile {
	for _, s := range d.Sections {
		for _, it := range s.Items {
			if it.Contributors != nil {
				return it.Contributors
			}
		}
	}
	return nil
}

// Activities returns every logged activity in section order.
func (d *DeepDive) Activities() []Activity {
	var out []Activity
	for _, s := range d.Sections {
		for _, it := range s.Items {
			if it.Activity != nil {
				out = append(out, *it.Activity)
			}
		}
	}
	return out
}

// CoachInsight returns the coach vow attached to the contributors tile,
// or "" when none is present.
func (d *DeepDive) CoachInsight() string {
	tile := d.ContributorsTile()
	if tile == nil {
		return ""
	}
	for _, f := range tile.Footer.Items {
		if f.Type == ItemTypeCoachVow {
			return f.Content.Vow
		}
	}
	return ""
}
