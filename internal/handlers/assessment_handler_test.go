package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentflow-hq/talentflow/internal/dtos"
	"github.com/talentflow-hq/talentflow/internal/models"
)

func sampleSections() []models.AssessmentSection {
	return []models.AssessmentSection{{
		ID:    "section-1",
		Title: "Screening",
		Questions: []models.AssessmentQuestion{
			{
				ID:       "q1",
				Type:     models.QuestionSingleChoice,
				Title:    "Willing to relocate?",
				Required: true,
				Options:  []string{"Yes", "No"},
			},
			{
				ID:    "q2",
				Type:  models.QuestionShortText,
				Title: "Preferred city",
				Conditional: &models.ConditionalRule{
					DependsOn: "q1",
					Condition: models.ConditionEquals,
					Value:     "Yes",
				},
			},
		},
	}}
}

func createAssessment(t *testing.T, r *gin.Engine) models.Assessment {
	t.Helper()
	var a models.Assessment
	w := do(t, r, http.MethodPost, "/api/assessments", dtos.AssessmentCreationRequest{
		Title:    "Screening Assessment",
		Sections: sampleSections(),
	}, &a)
	require.Equal(t, http.StatusCreated, w.Code)
	return a
}

func TestCreateAssessmentStartsAsDraft(t *testing.T) {
	r, _ := testRouter(t)

	a := createAssessment(t, r)

	assert.Equal(t, models.AssessmentDraft, a.Status)
	assert.Equal(t, 0, a.Responses)
	assert.Equal(t, models.Today(), a.CreatedDate)

	// Order fields are assigned from array position at persist time.
	require.Len(t, a.Sections, 1)
	assert.Equal(t, 1, a.Sections[0].Order)
	assert.Equal(t, 1, a.Sections[0].Questions[0].Order)
	assert.Equal(t, 2, a.Sections[0].Questions[1].Order)
}

func TestCreateAssessmentRejectsInvalidSchema(t *testing.T) {
	r, _ := testRouter(t)

	w := do(t, r, http.MethodPost, "/api/assessments", dtos.AssessmentCreationRequest{
		Title: "Broken",
		Sections: []models.AssessmentSection{{
			ID: "s1",
			Questions: []models.AssessmentQuestion{{
				ID:      "q1",
				Type:    models.QuestionSingleChoice,
				Options: []string{"only one"},
			}},
		}},
	}, nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "q1")
}

func TestUpdateAssessmentRenumbersSections(t *testing.T) {
	r, _ := testRouter(t)
	a := createAssessment(t, r)

	sections := sampleSections()
	sections[0].Order = 99
	sections[0].Questions[0].Order = 42

	var updated models.Assessment
	w := do(t, r, http.MethodPut, fmt.Sprintf("/api/assessments/%d", a.ID),
		dtos.AssessmentUpdateRequest{Sections: &sections}, &updated)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, updated.Sections[0].Order)
	assert.Equal(t, 1, updated.Sections[0].Questions[0].Order)
	assert.Equal(t, models.Today(), updated.LastUpdated)
}

func TestPublishThenArchive(t *testing.T) {
	r, _ := testRouter(t)
	a := createAssessment(t, r)

	var published models.Assessment
	w := do(t, r, http.MethodPost, fmt.Sprintf("/api/assessments/%d/publish", a.ID), nil, &published)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.AssessmentPublished, published.Status)

	var archived models.Assessment
	w = do(t, r, http.MethodPost, fmt.Sprintf("/api/assessments/%d/archive", a.ID), nil, &archived)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.AssessmentArchived, archived.Status)
}

func TestArchiveDraftIsConflict(t *testing.T) {
	r, _ := testRouter(t)
	a := createAssessment(t, r)

	w := do(t, r, http.MethodPost, fmt.Sprintf("/api/assessments/%d/archive", a.ID), nil, nil)

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "cannot move assessment from draft to archived", errorMessage(t, w))
}

func TestSubmitResponseStoresValidAnswers(t *testing.T) {
	r, _ := testRouter(t)
	a := createAssessment(t, r)

	var response models.AssessmentResponse
	w := do(t, r, http.MethodPost, fmt.Sprintf("/api/assessments/%d/responses", a.ID),
		dtos.ResponseSubmissionRequest{
			CandidateID: 12,
			Answers: models.AnswerSet{
				"q1": models.TextAnswer("Yes"),
				"q2": models.TextAnswer("Berlin"),
			},
		}, &response)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, a.ID, response.AssessmentID)
	assert.Equal(t, models.ResponseCompleted, response.Status)
	assert.NotEmpty(t, response.CompletedAt)
	assert.Equal(t, response.CompletedAt, response.StartedAt)

	// The submission bumps the assessment's response counter.
	var reloaded models.Assessment
	do(t, r, http.MethodGet, fmt.Sprintf("/api/assessments/%d", a.ID), nil, &reloaded)
	assert.Equal(t, 1, reloaded.Responses)

	var list dtos.ResponseListResponse
	do(t, r, http.MethodGet, fmt.Sprintf("/api/assessments/%d/responses", a.ID), nil, &list)
	require.Len(t, list.Data, 1)
	assert.Equal(t, models.TextAnswer("Berlin"), list.Data[0].Answers.Get("q2"))
}

func TestSubmitResponseReportsValidationFailures(t *testing.T) {
	r, _ := testRouter(t)
	a := createAssessment(t, r)

	// q1 is required and the hidden q2 must not be reported.
	var failed dtos.ValidationFailedResponse
	w := do(t, r, http.MethodPost, fmt.Sprintf("/api/assessments/%d/responses", a.ID),
		dtos.ResponseSubmissionRequest{
			CandidateID: 12,
			Answers:     models.AnswerSet{"ignored": models.TextAnswer("x")},
		}, nil)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &failed))
	require.Len(t, failed.Failures, 1)
	assert.Equal(t, "q1", failed.Failures[0].QuestionID)

	// Nothing was stored.
	var reloaded models.Assessment
	do(t, r, http.MethodGet, fmt.Sprintf("/api/assessments/%d", a.ID), nil, &reloaded)
	assert.Equal(t, 0, reloaded.Responses)
}

func TestSubmitResponseUnknownAssessment(t *testing.T) {
	r, _ := testRouter(t)

	w := do(t, r, http.MethodPost, "/api/assessments/999/responses",
		dtos.ResponseSubmissionRequest{
			CandidateID: 1,
			Answers:     models.AnswerSet{"q1": models.TextAnswer("Yes")},
		}, nil)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestListResponsesUnknownAssessment(t *testing.T) {
	r, _ := testRouter(t)

	w := do(t, r, http.MethodGet, "/api/assessments/999/responses", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteAssessment(t *testing.T) {
	r, _ := testRouter(t)
	a := createAssessment(t, r)

	w := do(t, r, http.MethodDelete, fmt.Sprintf("/api/assessments/%d", a.ID), nil, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, r, http.MethodGet, fmt.Sprintf("/api/assessments/%d", a.ID), nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
