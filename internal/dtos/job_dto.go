package dtos

import (
	"github.com/talentflow-hq/talentflow/internal/models"
)

type JobCreationRequest struct {
	Title      string                `json:"title" binding:"required"`
	Department string                `json:"department" binding:"required"`
	Location   string                `json:"location"`
	Type       models.EmploymentType `json:"type" binding:"omitempty,oneof=Full-time Part-time Contract"`
	Salary     string                `json:"salary"`

	// Optional Fields
	Description  string           `json:"description"`
	Requirements []string         `json:"requirements"`
	Tags         []string         `json:"tags"`
	Status       models.JobStatus `json:"status" binding:"omitempty,oneof=active archived"` // Defaults to "active" if empty
}

// JobUpdateRequest is a partial update; nil fields are left untouched.
type JobUpdateRequest struct {
	Title        *string                `json:"title,omitempty"`
	Department   *string                `json:"department,omitempty"`
	Location     *string                `json:"location,omitempty"`
	Type         *models.EmploymentType `json:"type,omitempty" binding:"omitempty,oneof=Full-time Part-time Contract"`
	Salary       *string                `json:"salary,omitempty"`
	Status       *models.JobStatus      `json:"status,omitempty" binding:"omitempty,oneof=active archived"`
	Description  *string                `json:"description,omitempty"`
	Requirements *[]string              `json:"requirements,omitempty"`
	Tags         *[]string              `json:"tags,omitempty"`
	DisplayOrder *int                   `json:"order,omitempty"`
}

type JobListResponse struct {
	Data       []models.Job `json:"data"`
	Pagination Pagination   `json:"pagination"`
}
