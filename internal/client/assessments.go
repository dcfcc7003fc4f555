package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/talentflow-hq/talentflow/internal/dtos"
	"github.com/talentflow-hq/talentflow/internal/models"
)

type AssessmentsAPI struct {
	client *Client
}

// List returns all assessments, ordered by last-updated descending.
func (a *AssessmentsAPI) List(ctx context.Context) (*dtos.AssessmentListResponse, error) {
	var out dtos.AssessmentListResponse
	if err := a.client.request(ctx, http.MethodGet, "/api/assessments", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AssessmentsAPI) Get(ctx context.Context, id uint) (*models.Assessment, error) {
	var out models.Assessment
	if err := a.client.request(ctx, http.MethodGet, fmt.Sprintf("/api/assessments/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AssessmentsAPI) Create(ctx context.Context, req dtos.AssessmentCreationRequest) (*models.Assessment, error) {
	var out models.Assessment
	if err := a.client.request(ctx, http.MethodPost, "/api/assessments", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AssessmentsAPI) Update(ctx context.Context, id uint, req dtos.AssessmentUpdateRequest) (*models.Assessment, error) {
	var out models.Assessment
	if err := a.client.request(ctx, http.MethodPut, fmt.Sprintf("/api/assessments/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AssessmentsAPI) Delete(ctx context.Context, id uint) error {
	return a.client.request(ctx, http.MethodDelete, fmt.Sprintf("/api/assessments/%d", id), nil, nil)
}

func (a *AssessmentsAPI) Publish(ctx context.Context, id uint) (*models.Assessment, error) {
	var out models.Assessment
	if err := a.client.request(ctx, http.MethodPost, fmt.Sprintf("/api/assessments/%d/publish", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AssessmentsAPI) Archive(ctx context.Context, id uint) (*models.Assessment, error) {
	var out models.Assessment
	if err := a.client.request(ctx, http.MethodPost, fmt.Sprintf("/api/assessments/%d/archive", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AssessmentsAPI) SubmitResponse(ctx context.Context, assessmentID uint, req dtos.ResponseSubmissionRequest) (*models.AssessmentResponse, error) {
	var out models.AssessmentResponse
	if err := a.client.request(ctx, http.MethodPost, fmt.Sprintf("/api/assessments/%d/responses", assessmentID), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AssessmentsAPI) ListResponses(ctx context.Context, assessmentID uint) (*dtos.ResponseListResponse, error) {
	var out dtos.ResponseListResponse
	if err := a.client.request(ctx, http.MethodGet, fmt.Sprintf("/api/assessments/%d/responses", assessmentID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
