package dtos

import (
	"github.com/talentflow-hq/talentflow/internal/models"
)

type CandidateCreationRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Position string `json:"position"`

	// Optional Fields
	Stage       models.Stage `json:"stage" binding:"omitempty,oneof=applied screened technical offer hired rejected"` // Defaults to "applied" if empty
	AppliedDate string       `json:"appliedDate"`                                                                     // Defaults to today if empty
	Location    string       `json:"location"`
	Avatar      string       `json:"avatar"`
}

// CandidateUpdateRequest is a partial update; nil fields are left untouched.
// A stage change appends a stage_change timeline event server-side.
type CandidateUpdateRequest struct {
	Name     *string       `json:"name,omitempty"`
	Email    *string       `json:"email,omitempty" binding:"omitempty,email"`
	Phone    *string       `json:"phone,omitempty"`
	Position *string       `json:"position,omitempty"`
	Stage    *models.Stage `json:"stage,omitempty" binding:"omitempty,oneof=applied screened technical offer hired rejected"`
	Location *string       `json:"location,omitempty"`
	Avatar   *string       `json:"avatar,omitempty"`
}

type NoteCreationRequest struct {
	Content string `json:"content" binding:"required"`
	Author  string `json:"author" binding:"required"`
}

type CandidateListResponse struct {
	Data       []models.Candidate `json:"data"`
	Pagination Pagination         `json:"pagination"`
}
