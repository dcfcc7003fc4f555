package models

import (
	"time"
)

type QuestionType string

const (
	QuestionSingleChoice QuestionType = "single-choice"
	QuestionMultiChoice  QuestionType = "multi-choice"
	QuestionShortText    QuestionType = "short-text"
	QuestionLongText     QuestionType = "long-text"
	QuestionNumeric      QuestionType = "numeric"
	QuestionFileUpload   QuestionType = "file-upload"
)

// IsChoice reports whether the type carries an options list.
func (t QuestionType) IsChoice() bool {
	return t == QuestionSingleChoice || t == QuestionMultiChoice
}

func (t QuestionType) Valid() bool {
	switch t {
	case QuestionSingleChoice, QuestionMultiChoice, QuestionShortText,
		QuestionLongText, QuestionNumeric, QuestionFileUpload:
		return true
	}
	return false
}

// ValidationRules holds per-type constraints. Which fields apply depends on
// the owning question's type; fields left over from a previous type are
// retained but ignored.
type ValidationRules struct {
	MinLength *int     `json:"minLength,omitempty"`
	MaxLength *int     `json:"maxLength,omitempty"`
	Min       *float64 `json:"min,omitempty"`
	Max       *float64 `json:"max,omitempty"`
	Pattern   string   `json:"pattern,omitempty"`
}

type ConditionOperator string

const (
	ConditionEquals    ConditionOperator = "equals"
	ConditionNotEquals ConditionOperator = "not_equals"
	ConditionContains  ConditionOperator = "contains"
)

// ConditionalRule makes a question's visibility depend on another question's
// answered value.
type ConditionalRule struct {
	DependsOn string            `json:"dependsOn"`
	Condition ConditionOperator `json:"condition"`
	Value     string            `json:"value"`
}

type AssessmentQuestion struct {
	ID          string           `json:"id"`
	Type        QuestionType     `json:"type"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Required    bool             `json:"required"`
	Options     []string         `json:"options,omitempty"`
	Validation  *ValidationRules `json:"validation,omitempty"`
	Conditional *ConditionalRule `json:"conditionalLogic,omitempty"`
	Order       int              `json:"order"`
}

type AssessmentSection struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description,omitempty"`
	Questions   []AssessmentQuestion `json:"questions"`
	Order       int                  `json:"order"`
}

type AssessmentStatus string

const (
	AssessmentDraft     AssessmentStatus = "draft"
	AssessmentPublished AssessmentStatus = "published"
	AssessmentArchived  AssessmentStatus = "archived"
)

type AssessmentSettings struct {
	TimeLimit           *int     `json:"timeLimit,omitempty"`
	AllowBackNavigation *bool    `json:"allowBackNavigation,omitempty"`
	RandomizeQuestions  *bool    `json:"randomizeQuestions,omitempty"`
	PassingScore        *float64 `json:"passingScore,omitempty"`
}

type Assessment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Title       string              `gorm:"not null" json:"title"`
	Description string              `gorm:"type:text" json:"description"`
	Sections    []AssessmentSection `gorm:"serializer:json" json:"sections"`
	Status      AssessmentStatus    `gorm:"index;default:'draft'" json:"status"`
	Responses   int                 `json:"responses"`
	CreatedDate string              `gorm:"index" json:"createdDate"`
	LastUpdated string              `gorm:"index" json:"lastUpdated"`
	Settings    *AssessmentSettings `gorm:"serializer:json" json:"settings,omitempty"`
}

// Question looks up a question anywhere in the assessment by id.
func (a *Assessment) Question(id string) *AssessmentQuestion {
	for si := range a.Sections {
		for qi := range a.Sections[si].Questions {
			if a.Sections[si].Questions[qi].ID == id {
				return &a.Sections[si].Questions[qi]
			}
		}
	}
	return nil
}

type ResponseStatus string

const (
	ResponseInProgress ResponseStatus = "in_progress"
	ResponseCompleted  ResponseStatus = "completed"
	ResponseAbandoned  ResponseStatus = "abandoned"
)

type AssessmentResponse struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	AssessmentID uint           `gorm:"index;not null" json:"assessmentId"`
	CandidateID  uint           `gorm:"index;not null" json:"candidateId"`
	Answers      AnswerSet      `gorm:"serializer:json" json:"responses"`
	StartedAt    string         `json:"startedAt"`
	CompletedAt  string         `json:"completedAt,omitempty"`
	Score        *float64       `json:"score,omitempty"`
	Status       ResponseStatus `gorm:"index;default:'in_progress'" json:"status"`
}
