package health

// Tone is the semantic colour family a record is drawn with
type Tone string

const (
	ToneGreen Tone = "green"
	ToneBlue  Tone = "blue"
	ToneAmber Tone = "amber"
	ToneRed   Tone = "red"
)

// AlertKind classifies an entry in the recent alerts list
type AlertKind string

const (
	AlertWarning AlertKind = "warning"
	AlertInfo    AlertKind = "info"
	AlertSuccess AlertKind = "success"
)

// Metric is one card on the overview page
type Metric struct {
	Title  string `json:"title"`
	Value  string `json:"value"`
	Status string `json:"status"`
	Trend  string `json:"trend"`
	Tone   Tone   `json:"tone"`
	Icon   string `json:"icon"`
}

// Alert is a recent health notification
type Alert struct {
	Kind    AlertKind `json:"kind"`
	Title   string    `json:"title"`
	Message string    `json:"message"`
	Time    string    `json:"time"`
}

// ScheduledTest is an upcoming examination
type ScheduledTest struct {
	Name string `json:"name"`
	Date string `json:"date"`
	Type string `json:"type"`
}

// Insight is a titled block of narrative text with optional bullet points
type Insight struct {
	Title  string   `json:"title"`
	Text   string   `json:"text,omitempty"`
	Points []string `json:"points,omitempty"`
}

// OverviewData holds everything the dashboard page renders
type OverviewData struct {
	Title       string          `json:"title"`
	Subtitle    string          `json:"subtitle"`
	LastUpdated string          `json:"last_updated"`
	Metrics     []Metric        `json:"metrics"`
	Alerts      []Alert         `json:"alerts"`
	Tests       []ScheduledTest `json:"upcoming_tests"`
	Insights    []Insight       `json:"insights"`
}

// Category is one scored area of the health analysis
type Category struct {
	Name            string   `json:"category"`
	Score           int      `json:"score"`
	Status          string   `json:"status"`
	Findings        []string `json:"findings"`
	Recommendations []string `json:"recommendations"`
}

// Tier returns the score tier of the category
func (c Category) Tier() Tier {
	return TierForScore(c.Score)
}

// RiskLevel is the qualitative level of a risk factor
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskModerate RiskLevel = "Moderate"
	RiskHigh     RiskLevel = "High"
)

// RiskFactor is a row in the risk factors assessment
type RiskFactor struct {
	Factor string    `json:"factor"`
	Value  string    `json:"value"`
	Risk   RiskLevel `json:"risk"`
}

// Tone maps the risk level to its display colour
func (r RiskFactor) Tone() Tone {
	switch r.Risk {
	case RiskLow:
		return ToneGreen
	case RiskModerate:
		return ToneAmber
	default:
		return ToneRed
	}
}

// AssessmentData holds everything the analysis page renders
type AssessmentData struct {
	Title         string       `json:"title"`
	Subtitle      string       `json:"subtitle"`
	LastAnalysis  string       `json:"last_analysis"`
	OverallScore  int          `json:"overall_score"`
	OverallStatus string       `json:"overall_status"`
	Categories    []Category   `json:"categories"`
	RiskFactors   []RiskFactor `json:"risk_factors"`
	Summary       Insight      `json:"summary"`
}

// Report bundles both pages for the non-interactive report command
type Report struct {
	Overview   *OverviewData   `json:"overview,omitempty"`
	Assessment *AssessmentData `json:"analysis,omitempty"`
}

// HealthScore is the figure shown in the navigation footer
type HealthScore struct {
	Score   int    `json:"score"`
	Max     int    `json:"max"`
	Caption string `json:"caption"`
}
