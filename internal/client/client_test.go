package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentflow-hq/talentflow/internal/dtos"
	"github.com/talentflow-hq/talentflow/internal/models"
)

func TestJobsListEncodesQueryParams(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		assert.Equal(t, "/api/jobs", r.URL.Path)
		_ = json.NewEncoder(w).Encode(dtos.JobListResponse{})
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.Jobs.List(context.Background(), JobListParams{
		Page:   2,
		Limit:  10,
		Status: "active",
		Search: "engineer",
	})

	require.NoError(t, err)
	assert.Equal(t, "limit=10&page=2&search=engineer&status=active", gotQuery)
}

func TestJobsListOmitsZeroParams(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode(dtos.JobListResponse{})
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.Jobs.List(context.Background(), JobListParams{})

	require.NoError(t, err)
	assert.Empty(t, gotQuery)
}

func TestGetDecodesBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/jobs/7", r.URL.Path)
		_ = json.NewEncoder(w).Encode(models.Job{ID: 7, Title: "Backend Engineer", Slug: "backend-engineer"})
	}))
	defer server.Close()

	job, err := New(server.URL).Jobs.Get(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, uint(7), job.ID)
	assert.Equal(t, "backend-engineer", job.Slug)
}

func TestErrorPayloadBecomesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Job not found"})
	}))
	defer server.Close()

	_, err := New(server.URL).Jobs.Get(context.Background(), 999)

	require.Error(t, err)
	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Job not found", apiErr.Message)
	assert.True(t, IsNotFound(err))
}

func TestErrorWithoutBodyGetsFallbackMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := New(server.URL).Jobs.Get(context.Background(), 1)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Equal(t, "request failed with status 500", apiErr.Message)
	assert.False(t, IsNotFound(err))
}

func TestNetworkFailureSurfacesAsStatus500(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	_, err := New(server.URL).Jobs.Get(context.Background(), 1)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
}

func TestUpdateStageSendsOnlyStage(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/candidates/3", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(models.Candidate{ID: 3, Stage: models.StageScreened})
	}))
	defer server.Close()

	candidate, err := New(server.URL).Candidates.UpdateStage(context.Background(), 3, models.StageScreened)

	require.NoError(t, err)
	assert.Equal(t, models.StageScreened, candidate.Stage)
	// Pointer fields left nil must be omitted from the payload.
	assert.Equal(t, map[string]any{"stage": "screened"}, gotBody)
}

func TestDeleteAcceptsNoContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	assert.NoError(t, New(server.URL).Jobs.Delete(context.Background(), 4))
}

func TestSubmitResponsePostsAnswers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/assessments/5/responses", r.URL.Path)
		var req dtos.ResponseSubmissionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, uint(12), req.CandidateID)
		assert.Equal(t, models.TextAnswer("hello"), req.Answers.Get("q1"))

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.AssessmentResponse{ID: 1, AssessmentID: 5, Status: models.ResponseCompleted})
	}))
	defer server.Close()

	resp, err := New(server.URL).Assessments.SubmitResponse(context.Background(), 5, dtos.ResponseSubmissionRequest{
		CandidateID: 12,
		Answers:     models.AnswerSet{"q1": models.TextAnswer("hello")},
	})

	require.NoError(t, err)
	assert.Equal(t, models.ResponseCompleted, resp.Status)
}
