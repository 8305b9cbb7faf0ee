package usecase

import "context"

// NameValue is one slice of a distribution chart.
type NameValue struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// GenderStat is one gender bucket with its average age.
type GenderStat struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Age   string `json:"age"`
}

// SeniorEmployee names one of the longest-serving employees.
type SeniorEmployee struct {
	UserName   string `json:"userName"`
	Department string `json:"department"`
}

// StaffAnalysisOutput aggregates the whole employee table in memory:
// constellation, education, gender/age and onboarding-time distributions
// plus the ten longest-serving employees.
type StaffAnalysisOutput struct {
	Total             int              `json:"total"`
	ConstellationList []NameValue      `json:"constellationList"`
	EducationList     []NameValue      `json:"educationList"`
	GenderList        []GenderStat     `json:"genderList"`
	OnboardingTime    map[string]int   `json:"onboardingTimeData"`
	WorkingYearsMaps  []SeniorEmployee `json:"workingYearsMaps"`
}

// AnalyticsUsecase defines the admin staff analysis report.
type AnalyticsUsecase interface {
	AnalyzeStaff(ctx context.Context) (*StaffAnalysisOutput, error)
}
