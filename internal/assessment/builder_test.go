package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentflow-hq/talentflow/internal/models"
)

func TestAddSectionIncrementsOrder(t *testing.T) {
	a := &models.Assessment{}

	first := AddSection(a)
	second := AddSection(a)

	assert.Equal(t, 1, first.Order)
	assert.Equal(t, 2, second.Order)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Empty(t, first.Questions)
}

func TestAddQuestionDefaults(t *testing.T) {
	a := &models.Assessment{}
	s := AddSection(a)

	q := AddQuestion(s)

	assert.Equal(t, models.QuestionShortText, q.Type)
	assert.False(t, q.Required)
	assert.Equal(t, 1, q.Order)
	assert.Nil(t, q.Options)

	assert.Equal(t, 2, AddQuestion(s).Order)
}

func TestChangeQuestionTypeInstallsDefaultOptions(t *testing.T) {
	q := &models.AssessmentQuestion{ID: "q1", Type: models.QuestionShortText}

	ChangeQuestionType(q, models.QuestionSingleChoice)
	assert.Equal(t, []string{"Option 1", "Option 2"}, q.Options)
}

func TestChangeQuestionTypeAwayAndBackRestoresDefaults(t *testing.T) {
	q := &models.AssessmentQuestion{
		ID:      "q1",
		Type:    models.QuestionSingleChoice,
		Options: []string{"Option 1", "Option 2"},
	}

	ChangeQuestionType(q, models.QuestionNumeric)
	assert.Nil(t, q.Options)

	ChangeQuestionType(q, models.QuestionMultiChoice)
	assert.Equal(t, []string{"Option 1", "Option 2"}, q.Options)
}

func TestChangeQuestionTypeKeepsCustomOptionsBetweenChoiceTypes(t *testing.T) {
	q := &models.AssessmentQuestion{
		ID:      "q1",
		Type:    models.QuestionSingleChoice,
		Options: []string{"Red", "Green", "Blue"},
	}

	// Switching between the two choice types never touches options that
	// still exist.
	ChangeQuestionType(q, models.QuestionMultiChoice)
	assert.Equal(t, []string{"Red", "Green", "Blue"}, q.Options)
}

func TestChangeQuestionTypeRetainsStaleValidation(t *testing.T) {
	q := &models.AssessmentQuestion{
		ID:         "q1",
		Type:       models.QuestionShortText,
		Validation: &models.ValidationRules{MinLength: intPtr(10)},
	}

	// Validation carries over even though minLength means nothing to a
	// numeric question; the engine ignores the mismatched fields.
	ChangeQuestionType(q, models.QuestionNumeric)
	require.NotNil(t, q.Validation)
	assert.Equal(t, 10, *q.Validation.MinLength)

	assert.True(t, ValidateResponse(q, models.NumberAnswer(5)).OK())
}

func TestReorderQuestionsMovesWithoutRenumbering(t *testing.T) {
	s := &models.AssessmentSection{
		Questions: []models.AssessmentQuestion{
			{ID: "a", Order: 1},
			{ID: "b", Order: 2},
			{ID: "c", Order: 3},
		},
	}

	require.True(t, ReorderQuestions(s, 0, 2))

	ids := []string{s.Questions[0].ID, s.Questions[1].ID, s.Questions[2].ID}
	assert.Equal(t, []string{"b", "c", "a"}, ids)
	// Order fields are stale until persist-time renumbering.
	assert.Equal(t, 1, s.Questions[2].Order)
}

func TestReorderQuestionsRejectsBadIndexes(t *testing.T) {
	s := &models.AssessmentSection{
		Questions: []models.AssessmentQuestion{{ID: "a"}, {ID: "b"}},
	}

	assert.False(t, ReorderQuestions(s, 0, 0))
	assert.False(t, ReorderQuestions(s, -1, 1))
	assert.False(t, ReorderQuestions(s, 0, 2))
	assert.Equal(t, "a", s.Questions[0].ID)
}

func TestRenumberRewritesFromArrayPosition(t *testing.T) {
	a := &models.Assessment{
		Sections: []models.AssessmentSection{
			{
				ID:    "s1",
				Order: 9,
				Questions: []models.AssessmentQuestion{
					{ID: "a", Order: 3},
					{ID: "b", Order: 1},
				},
			},
		},
	}

	Renumber(a)

	assert.Equal(t, 1, a.Sections[0].Order)
	assert.Equal(t, 1, a.Sections[0].Questions[0].Order)
	assert.Equal(t, 2, a.Sections[0].Questions[1].Order)
}

func TestStatusTransitions(t *testing.T) {
	assert.True(t, CanTransition(models.AssessmentDraft, models.AssessmentPublished))
	assert.True(t, CanTransition(models.AssessmentPublished, models.AssessmentArchived))

	assert.False(t, CanTransition(models.AssessmentDraft, models.AssessmentArchived))
	assert.False(t, CanTransition(models.AssessmentPublished, models.AssessmentDraft))
	assert.False(t, CanTransition(models.AssessmentArchived, models.AssessmentPublished))
	assert.False(t, CanTransition(models.AssessmentArchived, models.AssessmentDraft))
}

func TestCheckSchemaChoiceInvariant(t *testing.T) {
	a := &models.Assessment{
		Sections: []models.AssessmentSection{{
			ID: "s1",
			Questions: []models.AssessmentQuestion{
				{ID: "q1", Type: models.QuestionSingleChoice, Options: []string{"only one"}},
				{ID: "q2", Type: models.QuestionShortText, Options: []string{"stray"}},
				{ID: "q3", Type: models.QuestionMultiChoice, Options: []string{"a", "b"}},
			},
		}},
	}

	result := CheckSchema(a)
	require.Len(t, result.Failures, 2)
	assert.Equal(t, "q1", result.Failures[0].QuestionID)
	assert.Equal(t, "q2", result.Failures[1].QuestionID)
}

func TestCheckSchemaConditionalReferences(t *testing.T) {
	a := &models.Assessment{
		Sections: []models.AssessmentSection{{
			ID: "s1",
			Questions: []models.AssessmentQuestion{
				{
					ID:          "q1",
					Type:        models.QuestionShortText,
					Conditional: &models.ConditionalRule{DependsOn: "missing", Condition: models.ConditionEquals},
				},
				{
					ID:          "q2",
					Type:        models.QuestionShortText,
					Conditional: &models.ConditionalRule{DependsOn: "q2", Condition: models.ConditionEquals},
				},
			},
		}},
	}

	result := CheckSchema(a)
	assert.Len(t, result.Failures, 2)
}
