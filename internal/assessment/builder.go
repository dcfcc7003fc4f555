// Package assessment implements the assessment schema operations and the
// response validation engine. Everything here is pure in-memory logic over
// the assessment structures; persistence is the caller's concern.
package assessment

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/talentflow-hq/talentflow/internal/models"
)

// Default options installed when a question becomes a choice type and has
// none yet.
var defaultOptions = []string{"Option 1", "Option 2"}

// AddSection appends a new empty section with a strictly increasing order
// index and returns a pointer to it.
func AddSection(a *models.Assessment) *models.AssessmentSection {
	section := models.AssessmentSection{
		ID:        uuid.NewString(),
		Title:     fmt.Sprintf("Section %d", len(a.Sections)+1),
		Questions: []models.AssessmentQuestion{},
		Order:     len(a.Sections) + 1,
	}
	a.Sections = append(a.Sections, section)
	return &a.Sections[len(a.Sections)-1]
}

// AddQuestion appends a new short-text question to the section and returns a
// pointer to it.
func AddQuestion(s *models.AssessmentSection) *models.AssessmentQuestion {
	question := models.AssessmentQuestion{
		ID:       uuid.NewString(),
		Type:     models.QuestionShortText,
		Title:    "New Question",
		Required: false,
		Order:    len(s.Questions) + 1,
	}
	s.Questions = append(s.Questions, question)
	return &s.Questions[len(s.Questions)-1]
}

// ChangeQuestionType switches a question to a new type. Moving away from a
// choice type clears the options list; moving to a choice type installs two
// placeholder options only when no options exist. Validation rules are kept
// as-is even when they no longer apply to the new type; the engine treats
// them as inherited state and ignores the mismatched fields at validation.
func ChangeQuestionType(q *models.AssessmentQuestion, newType models.QuestionType) {
	q.Type = newType
	if !newType.IsChoice() {
		q.Options = nil
		return
	}
	if q.Options == nil {
		q.Options = append([]string(nil), defaultOptions...)
	}
}

// AddOption appends a placeholder option to a choice question.
func AddOption(q *models.AssessmentQuestion) {
	q.Options = append(q.Options, fmt.Sprintf("Option %d", len(q.Options)+1))
}

// RemoveOption deletes the option at index i. Out-of-range indexes are a
// no-op.
func RemoveOption(q *models.AssessmentQuestion, i int) {
	if i < 0 || i >= len(q.Options) {
		return
	}
	q.Options = append(q.Options[:i], q.Options[i+1:]...)
}

// ReorderQuestions moves the question at fromIndex to toIndex within a single
// section. Cross-section moves are rejected upstream by construction: the
// operation only ever sees one section. Out-of-range indexes and same-index
// moves are no-ops. Order fields are not renumbered here; array position is
// authoritative until the assessment is persisted (see Renumber).
func ReorderQuestions(s *models.AssessmentSection, fromIndex, toIndex int) bool {
	n := len(s.Questions)
	if fromIndex < 0 || fromIndex >= n || toIndex < 0 || toIndex >= n || fromIndex == toIndex {
		return false
	}
	moved := s.Questions[fromIndex]
	rest := append(s.Questions[:fromIndex:fromIndex], s.Questions[fromIndex+1:]...)
	s.Questions = append(rest[:toIndex:toIndex], append([]models.AssessmentQuestion{moved}, rest[toIndex:]...)...)
	return true
}

// Renumber rewrites all order fields from array position. Called once at
// persist time so the stored order fields always match display order.
func Renumber(a *models.Assessment) {
	for si := range a.Sections {
		a.Sections[si].Order = si + 1
		for qi := range a.Sections[si].Questions {
			a.Sections[si].Questions[qi].Order = qi + 1
		}
	}
}
