package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/talentflow-hq/talentflow/internal/dtos"
	"github.com/talentflow-hq/talentflow/internal/models"
)

type JobsAPI struct {
	client *Client
}

type JobListParams struct {
	Page   int
	Limit  int
	Status string
	Search string
}

func (a *JobsAPI) List(ctx context.Context, params JobListParams) (*dtos.JobListResponse, error) {
	query := encodeQuery(map[string]string{
		"page":   positiveInt(params.Page),
		"limit":  positiveInt(params.Limit),
		"status": params.Status,
		"search": params.Search,
	})
	var out dtos.JobListResponse
	if err := a.client.request(ctx, http.MethodGet, "/api/jobs"+query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *JobsAPI) Get(ctx context.Context, id uint) (*models.Job, error) {
	var out models.Job
	if err := a.client.request(ctx, http.MethodGet, fmt.Sprintf("/api/jobs/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *JobsAPI) Create(ctx context.Context, req dtos.JobCreationRequest) (*models.Job, error) {
	var out models.Job
	if err := a.client.request(ctx, http.MethodPost, "/api/jobs", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *JobsAPI) Update(ctx context.Context, id uint, req dtos.JobUpdateRequest) (*models.Job, error) {
	var out models.Job
	if err := a.client.request(ctx, http.MethodPut, fmt.Sprintf("/api/jobs/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *JobsAPI) Delete(ctx context.Context, id uint) error {
	return a.client.request(ctx, http.MethodDelete, fmt.Sprintf("/api/jobs/%d", id), nil, nil)
}

func positiveInt(n int) string {
	if n <= 0 {
		return ""
	}
	return strconv.Itoa(n)
}
