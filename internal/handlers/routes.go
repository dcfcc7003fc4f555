package handlers

import (
	"github.com/gin-gonic/gin"
)

// API bundles the handlers for route registration.
type API struct {
	Jobs        *JobHandler
	Candidates  *CandidateHandler
	Assessments *AssessmentHandler
	Analytics   *AnalyticsHandler
}

// Register mounts the REST surface under /api.
func (api *API) Register(r gin.IRouter) {
	group := r.Group("/api")
	{
		group.GET("/health", HealthCheck)

		// Job Routes
		group.GET("/jobs", api.Jobs.ListJobs)
		group.GET("/jobs/:id", api.Jobs.GetJob)
		group.POST("/jobs", api.Jobs.CreateJob)
		group.PUT("/jobs/:id", api.Jobs.UpdateJob)
		group.DELETE("/jobs/:id", api.Jobs.DeleteJob)

		// Candidate Routes
		group.GET("/candidates", api.Candidates.ListCandidates)
		group.GET("/candidates/:id", api.Candidates.GetCandidate)
		group.POST("/candidates", api.Candidates.CreateCandidate)
		group.PUT("/candidates/:id", api.Candidates.UpdateCandidate)
		group.POST("/candidates/:id/notes", api.Candidates.AddNote)

		// Assessment Routes
		group.GET("/assessments", api.Assessments.ListAssessments)
		group.GET("/assessments/:id", api.Assessments.GetAssessment)
		group.POST("/assessments", api.Assessments.CreateAssessment)
		group.PUT("/assessments/:id", api.Assessments.UpdateAssessment)
		group.DELETE("/assessments/:id", api.Assessments.DeleteAssessment)
		group.POST("/assessments/:id/publish", api.Assessments.PublishAssessment)
		group.POST("/assessments/:id/archive", api.Assessments.ArchiveAssessment)
		group.POST("/assessments/:id/responses", api.Assessments.SubmitResponse)
		group.GET("/assessments/:id/responses", api.Assessments.ListResponses)

		// Analytics
		group.GET("/analytics/summary", api.Analytics.Summary)
	}
}
