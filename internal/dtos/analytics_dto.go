package dtos

import (
	"github.com/talentflow-hq/talentflow/internal/models"
)

// AnalyticsSummary aggregates the hiring funnel for the dashboard.
type AnalyticsSummary struct {
	TotalJobs             int                  `json:"totalJobs"`
	ActiveJobs            int                  `json:"activeJobs"`
	TotalCandidates       int                  `json:"totalCandidates"`
	NewCandidatesThisWeek int                  `json:"newCandidatesThisWeek"`
	CandidatesByStage     map[models.Stage]int `json:"candidatesByStage"`
	TotalAssessments      int                  `json:"totalAssessments"`
	PublishedAssessments  int                  `json:"publishedAssessments"`
	AssessmentCompletion  float64              `json:"assessmentCompletion"`
}
