package models

import (
	"time"
)

// DateLayout is the wire format for date-only fields (postedDate, appliedDate).
const DateLayout = "2006-01-02"

// Today returns the current date in wire format.
func Today() string {
	return time.Now().Format(DateLayout)
}

type EmploymentType string

const (
	EmploymentFullTime EmploymentType = "Full-time"
	EmploymentPartTime EmploymentType = "Part-time"
	EmploymentContract EmploymentType = "Contract"
)

type JobStatus string

const (
	JobActive   JobStatus = "active"
	JobArchived JobStatus = "archived"
)

type Job struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Title        string         `gorm:"not null" json:"title"`
	Slug         string         `gorm:"uniqueIndex;not null" json:"slug"`
	Department   string         `gorm:"index" json:"department"`
	Location     string         `json:"location"`
	Type         EmploymentType `json:"type"`
	Salary       string         `json:"salary"`
	Status       JobStatus      `gorm:"index;default:'active'" json:"status"`
	Applicants   int            `json:"applicants"`
	PostedDate   string         `gorm:"index" json:"postedDate"`
	Description  string         `gorm:"type:text" json:"description,omitempty"`
	Requirements []string       `gorm:"serializer:json" json:"requirements,omitempty"`
	Tags         []string       `gorm:"serializer:json" json:"tags,omitempty"`

	// DisplayOrder is the authoritative sort position on the jobs board.
	DisplayOrder int `gorm:"index;column:display_order" json:"order"`
}

// Stage is a candidate's position in the hiring pipeline. The six stages are
// ordered for display, but transitions are unrestricted: a candidate can be
// placed into any stage from any other, including into and out of rejected.
type Stage string

const (
	StageApplied   Stage = "applied"
	StageScreened  Stage = "screened"
	StageTechnical Stage = "technical"
	StageOffer     Stage = "offer"
	StageHired     Stage = "hired"
	StageRejected  Stage = "rejected"
)

// Stages lists all pipeline stages in display order.
var Stages = []Stage{
	StageApplied,
	StageScreened,
	StageTechnical,
	StageOffer,
	StageHired,
	StageRejected,
}

func (s Stage) Valid() bool {
	for _, known := range Stages {
		if s == known {
			return true
		}
	}
	return false
}

type Candidate struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Name        string `gorm:"not null" json:"name"`
	Email       string `gorm:"index;not null" json:"email"`
	Phone       string `json:"phone"`
	Position    string `gorm:"index" json:"position"`
	Stage       Stage  `gorm:"index;default:'applied'" json:"stage"`
	AppliedDate string `gorm:"index" json:"appliedDate"`
	Location    string `json:"location"`
	Avatar      string `json:"avatar,omitempty"`
	Resume      string `json:"resume,omitempty"`

	// Notes and Timeline are append-only logs owned by the candidate.
	Notes    []CandidateNote `gorm:"serializer:json" json:"notes,omitempty"`
	Timeline []TimelineEvent `gorm:"serializer:json" json:"timeline,omitempty"`
}

type CandidateNote struct {
	ID        string   `json:"id"`
	Content   string   `json:"content"`
	Author    string   `json:"author"`
	CreatedAt string   `json:"createdAt"`
	Mentions  []string `json:"mentions,omitempty"`
}

type TimelineEventType string

const (
	EventStageChange        TimelineEventType = "stage_change"
	EventNoteAdded          TimelineEventType = "note_added"
	EventInterviewScheduled TimelineEventType = "interview_scheduled"
	EventEmailSent          TimelineEventType = "email_sent"
)

type TimelineEvent struct {
	ID          string            `json:"id"`
	Type        TimelineEventType `json:"type"`
	Description string            `json:"description"`
	Timestamp   string            `json:"timestamp"`
	Author      string            `json:"author"`
	Metadata    map[string]any    `json:"metadata,omitempty"`
}
