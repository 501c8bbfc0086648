package health

// The figures below are fixed demo data. Every accessor builds a fresh value
// so callers are free to modify what they get back.

// Overview returns the dashboard page data
func Overview() *OverviewData {
	return &OverviewData{
		Title:       "Health Dashboard",
		Subtitle:    "Comprehensive cardiovascular health insights",
		LastUpdated: "Today, 9:45 AM",
		Metrics: []Metric{
			{Title: "Blood Pressure", Value: "118/76", Status: "Normal", Trend: "+2%", Tone: ToneGreen, Icon: "pressure"},
			{Title: "Cholesterol", Value: "185 mg/dL", Status: "Optimal", Trend: "-5%", Tone: ToneGreen, Icon: "cholesterol"},
			{Title: "Heart Rate", Value: "68 BPM", Status: "Good", Trend: "+1%", Tone: ToneBlue, Icon: "pulse"},
			{Title: "Risk Score", Value: "13/100", Status: "Low Risk", Trend: "-8%", Tone: ToneGreen, Icon: "shield"},
		},
		Alerts: []Alert{
			{
				Kind:    AlertWarning,
				Title:   "Cholesterol Trend",
				Message: "LDL levels showing upward trend over last 3 months",
				Time:    "2 hours ago",
			},
			{
				Kind:    AlertInfo,
				Title:   "New Report Available",
				Message: "ECG analysis completed for report dated 2025-01-15",
				Time:    "1 day ago",
			},
			{
				Kind:    AlertSuccess,
				Title:   "Health Goal Achieved",
				Message: "Blood pressure maintained in optimal range for 30 days",
				Time:    "3 days ago",
			},
		},
		Tests: []ScheduledTest{
			{Name: "Lipid Profile", Date: "2025-02-01", Type: "Routine"},
			{Name: "ECG", Date: "2025-02-15", Type: "Follow-up"},
			{Name: "Stress Test", Date: "2025-03-01", Type: "Annual"},
		},
		Insights: []Insight{
			{
				Title: "Cardiovascular Risk Assessment",
				Text: "Based on your recent reports, your 10-year cardiovascular risk is 13% (Low). " +
					"Continue maintaining current lifestyle habits.",
			},
			{
				Title: "Recommended Actions",
				Points: []string{
					"Monitor cholesterol levels monthly",
					"Maintain regular exercise routine",
					"Schedule annual cardiac screening",
				},
			},
		},
	}
}

// Assessment returns the analysis page data
func Assessment() *AssessmentData {
	return &AssessmentData{
		Title:         "Health Analysis",
		Subtitle:      "AI-powered cardiovascular health assessment",
		LastAnalysis:  "January 15, 2025",
		OverallScore:  85,
		OverallStatus: "Good Health",
		Categories: []Category{
			{
				Name:   "Cardiovascular Risk",
				Score:  87,
				Status: "Low Risk",
				Findings: []string{
					"Blood pressure within optimal range (118/76)",
					"Total cholesterol levels are well-controlled",
					"HDL cholesterol above recommended levels",
					"No signs of arterial blockage",
				},
				Recommendations: []string{
					"Continue current exercise routine",
					"Maintain Mediterranean diet",
					"Regular monitoring every 6 months",
				},
			},
			{
				Name:   "Metabolic Health",
				Score:  92,
				Status: "Excellent",
				Findings: []string{
					"Glucose levels within normal range",
					"Insulin sensitivity optimal",
					"HbA1c levels indicate good glucose control",
					"Triglyceride levels normal",
				},
				Recommendations: []string{
					"Continue balanced nutrition",
					"Maintain regular meal timing",
					"Annual diabetes screening",
				},
			},
			{
				Name:   "Lipid Profile",
				Score:  78,
				Status: "Good",
				Findings: []string{
					"Total cholesterol: 185 mg/dL (optimal)",
					"LDL cholesterol: 110 mg/dL (near optimal)",
					"HDL cholesterol: 58 mg/dL (good)",
					"Triglycerides: 120 mg/dL (normal)",
				},
				Recommendations: []string{
					"Increase omega-3 fatty acids",
					"Consider statins if family history present",
					"Recheck in 3 months",
				},
			},
		},
		RiskFactors: []RiskFactor{
			{Factor: "Age", Value: "45 years", Risk: RiskModerate},
			{Factor: "Family History", Value: "Positive", Risk: RiskHigh},
			{Factor: "Smoking", Value: "Never", Risk: RiskLow},
			{Factor: "Physical Activity", Value: "Regular", Risk: RiskLow},
			{Factor: "BMI", Value: "23.5", Risk: RiskLow},
			{Factor: "Stress Level", Value: "Moderate", Risk: RiskModerate},
		},
		Summary: Insight{
			Title: "Comprehensive Health Analysis",
			Text: "Based on your medical reports from the past 6 months, our AI system has identified that you have a " +
				"low cardiovascular risk profile. Your consistent blood pressure readings, optimal cholesterol levels, " +
				"and healthy lifestyle choices contribute to this positive assessment. However, given your family " +
				"history of heart disease, we recommend maintaining regular monitoring and considering preventive " +
				"measures such as annual cardiac screening and continued lifestyle optimization.",
		},
	}
}

// Score returns the headline score shown in the navigation panel
func Score() HealthScore {
	return HealthScore{Score: 87, Max: 100, Caption: "Good cardiovascular health"}
}

// ReportTypes lists the report categories offered on the upload page
func ReportTypes() []string {
	return []string{
		"Blood Test Results",
		"ECG Report",
		"Echocardiogram",
		"Stress Test",
		"Lipid Profile",
		"Cardiac Catheterization",
		"Holter Monitor",
		"Other Medical Report",
	}
}

// FullReport bundles both pages
func FullReport() *Report {
	return &Report{Overview: Overview(), Assessment: Assessment()}
}
