package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/talentflow-hq/talentflow/internal/dtos"
	"github.com/talentflow-hq/talentflow/internal/models"
)

type CandidatesAPI struct {
	client *Client
}

type CandidateListParams struct {
	Page   int
	Limit  int
	Stage  string
	Search string
}

func (a *CandidatesAPI) List(ctx context.Context, params CandidateListParams) (*dtos.CandidateListResponse, error) {
	query := encodeQuery(map[string]string{
		"page":   positiveInt(params.Page),
		"limit":  positiveInt(params.Limit),
		"stage":  params.Stage,
		"search": params.Search,
	})
	var out dtos.CandidateListResponse
	if err := a.client.request(ctx, http.MethodGet, "/api/candidates"+query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *CandidatesAPI) Get(ctx context.Context, id uint) (*models.Candidate, error) {
	var out models.Candidate
	if err := a.client.request(ctx, http.MethodGet, fmt.Sprintf("/api/candidates/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *CandidatesAPI) Create(ctx context.Context, req dtos.CandidateCreationRequest) (*models.Candidate, error) {
	var out models.Candidate
	if err := a.client.request(ctx, http.MethodPost, "/api/candidates", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *CandidatesAPI) Update(ctx context.Context, id uint, req dtos.CandidateUpdateRequest) (*models.Candidate, error) {
	var out models.Candidate
	if err := a.client.request(ctx, http.MethodPut, fmt.Sprintf("/api/candidates/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateStage is the restricted PUT used by the kanban board: it touches
// only the stage field.
func (a *CandidatesAPI) UpdateStage(ctx context.Context, id uint, stage models.Stage) (*models.Candidate, error) {
	return a.Update(ctx, id, dtos.CandidateUpdateRequest{Stage: &stage})
}

func (a *CandidatesAPI) AddNote(ctx context.Context, id uint, req dtos.NoteCreationRequest) (*models.Candidate, error) {
	var out models.Candidate
	if err := a.client.request(ctx, http.MethodPost, fmt.Sprintf("/api/candidates/%d/notes", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
