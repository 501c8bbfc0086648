package ui

// Tab identifies one page of the dashboard
type Tab string

const (
	TabDashboard Tab = "dashboard"
	TabUpload    Tab = "upload"
	TabAnalysis  Tab = "analysis"
	TabTrends    Tab = "trends"
	TabHistory   Tab = "history"
	TabAlerts    Tab = "alerts"
	TabReports   Tab = "reports"
	TabSettings  Tab = "settings"
)

// DefaultTab is mounted at startup and whenever an unknown tab is requested
const DefaultTab = TabDashboard

// TabInfo describes a navigation entry
type TabInfo struct {
	ID    Tab
	Label string
	Icon  string // emoji key
}

var tabs = []TabInfo{
	{ID: TabDashboard, Label: "Dashboard", Icon: "dashboard"},
	{ID: TabUpload, Label: "Upload Reports", Icon: "upload"},
	{ID: TabAnalysis, Label: "Health Analysis", Icon: "analysis"},
	{ID: TabTrends, Label: "Health Trends", Icon: "trends"},
	{ID: TabHistory, Label: "Report History", Icon: "history"},
	{ID: TabAlerts, Label: "Health Alerts", Icon: "alerts"},
	{ID: TabReports, Label: "My Reports", Icon: "reports"},
	{ID: TabSettings, Label: "Settings", Icon: "settings"},
}

// Tabs returns the navigation entries in menu order
func Tabs() []TabInfo {
	out := make([]TabInfo, len(tabs))
	copy(out, tabs)
	return out
}

// ParseTab reports whether id names a known tab
func ParseTab(id string) (Tab, bool) {
	for _, t := range tabs {
		if string(t.ID) == id {
			return t.ID, true
		}
	}
	return "", false
}

// ResolveTab maps id onto a known tab, falling back to DefaultTab
func ResolveTab(id string) Tab {
	if t, ok := ParseTab(id); ok {
		return t
	}
	return DefaultTab
}

// TabNames returns the ids of every known tab
func TabNames() []string {
	names := make([]string, 0, len(tabs))
	for _, t := range tabs {
		names = append(names, string(t.ID))
	}
	return names
}
