// ABOUTME: Typed payloads for the Whoop login and home endpoints.
// ABOUTME: Only fields the tools extract are declared; the rest is dropped on decode.
package whoop

// loginRequest is the Cognito USER_PASSWORD_AUTH exchange body.
type loginRequest struct {
	AuthParameters loginParameters `json:"AuthParameters"`
	ClientID       string          `json:"ClientId"`
	AuthFlow       string          `json:"AuthFlow"`
}

type loginParameters struct {
	Username string `json:"USERNAME"`
	Password string `json:"PASSWORD"`
}

// AuthenticationResult carries the opaque access token and its lifetime in
// seconds as reported by the identity endpoint.
type AuthenticationResult struct {
	AccessToken  string `json:"AccessToken"`
	ExpiresIn    int    `json:"ExpiresIn"`
	TokenType    string `json:"TokenType"`
	RefreshToken string `json:"RefreshToken"`
	IDToken      string `json:"IdToken"`
}

// LoginResponse is the identity endpoint's success envelope.
type LoginResponse struct {
	AuthenticationResult *AuthenticationResult `json:"AuthenticationResult"`
}

// TimeInterval bounds a cycle or activity in wall-clock time.
type TimeInterval struct {
	LowerEndpoint string `json:"lower_endpoint"`
	UpperEndpoint string `json:"upper_endpoint,omitempty"`
}

// CycleMetadata describes the physiological day the home payload covers.
type CycleMetadata struct {
	CycleID          int64        `json:"cycle_id"`
	CycleDay         string       `json:"cycle_day"`
	CycleDateDisplay string       `json:"cycle_date_display"`
	During           TimeInterval `json:"during"`
	SleepState       string       `json:"sleep_state"`
	MultiDayCycle    bool         `json:"multi_day_cycle"`
}

// LiveMetadata carries the live cycle metrics shown on the home screen.
type LiveMetadata struct {
	DayStrain     float64 `json:"day_strain"`
	RecoveryScore float64 `json:"recovery_score"`
	MsOfSleep     int64   `json:"ms_of_sleep"`
	Calories      float64 `json:"calories"`
}

// HomeMetadata is the metadata block of the home payload.
type HomeMetadata struct {
	CycleMetadata CycleMetadata `json:"cycle_metadata"`
	LiveMetadata  LiveMetadata  `json:"whoop_live_metadata"`
}

// Gauge is a score dial in the home header.
type Gauge struct {
	Title               string  `json:"title"`
	ID                  string  `json:"id"`
	ScoreDisplay        string  `json:"score_display"`
	ScoreDisplaySuffix  string  `json:"score_display_suffix"`
	GaugeFillPercentage float64 `json:"gauge_fill_percentage"`
}

// HomeHeader wraps the header gauges.
type HomeHeader struct {
	Content HomeHeaderContent `json:"content"`
	Type    string            `json:"type"`
}

type HomeHeaderContent struct {
	ID     string  `json:"id"`
	Gauges []Gauge `json:"gauges"`
}

// HomeResponse is the home-service payload for one date.
type HomeResponse struct {
	Metadata HomeMetadata `json:"metadata"`
	Header   *HomeHeader  `json:"header"`
}
