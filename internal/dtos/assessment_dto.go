package dtos

import (
	"github.com/talentflow-hq/talentflow/internal/assessment"
	"github.com/talentflow-hq/talentflow/internal/models"
)

type AssessmentCreationRequest struct {
	Title       string                     `json:"title" binding:"required"`
	Description string                     `json:"description"`
	Sections    []models.AssessmentSection `json:"sections"`
	Settings    *models.AssessmentSettings `json:"settings"`
}

// AssessmentUpdateRequest is a partial update. Status is not part of it;
// lifecycle moves happen through the publish/archive endpoints.
type AssessmentUpdateRequest struct {
	Title       *string                     `json:"title,omitempty"`
	Description *string                     `json:"description,omitempty"`
	Sections    *[]models.AssessmentSection `json:"sections,omitempty"`
	Settings    *models.AssessmentSettings  `json:"settings,omitempty"`
}

type AssessmentListResponse struct {
	Data []models.Assessment `json:"data"`
}

type ResponseSubmissionRequest struct {
	CandidateID uint             `json:"candidateId" binding:"required"`
	Answers     models.AnswerSet `json:"responses" binding:"required"`
	StartedAt   string           `json:"startedAt"`
}

type ResponseListResponse struct {
	Data []models.AssessmentResponse `json:"data"`
}

// ValidationFailedResponse reports response-set validation failures inline;
// they are data for the form, not transport faults.
type ValidationFailedResponse struct {
	Error    string               `json:"error"`
	Failures []assessment.Failure `json:"failures"`
}
