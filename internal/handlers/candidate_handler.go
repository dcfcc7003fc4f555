package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talentflow-hq/talentflow/internal/dtos"
	"github.com/talentflow-hq/talentflow/internal/services"
)

type CandidateHandler struct {
	CandidateService *services.CandidateService
}

func NewCandidateHandler(candidates *services.CandidateService) *CandidateHandler {
	return &CandidateHandler{CandidateService: candidates}
}

// ListCandidates is GET /api/candidates?page&limit&stage&search
func (h *CandidateHandler) ListCandidates(c *gin.Context) {
	query := services.CandidateListQuery{
		Page:   intQuery(c, "page", 1),
		Limit:  intQuery(c, "limit", 50),
		Stage:  c.Query("stage"),
		Search: c.Query("search"),
	}

	candidates, total, err := h.CandidateService.ListCandidates(query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.CandidateListResponse{
		Data:       candidates,
		Pagination: dtos.NewPagination(query.Page, query.Limit, int(total)),
	})
}

func (h *CandidateHandler) GetCandidate(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	candidate, err := h.CandidateService.GetCandidate(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, candidate)
}

func (h *CandidateHandler) CreateCandidate(c *gin.Context) {
	var req dtos.CandidateCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	candidate, err := h.CandidateService.CreateCandidate(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, candidate)
}

// UpdateCandidate is PUT /api/candidates/:id. The kanban board uses it as a
// restricted update carrying only the stage field.
func (h *CandidateHandler) UpdateCandidate(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dtos.CandidateUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	candidate, err := h.CandidateService.UpdateCandidate(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, candidate)
}

// AddNote is POST /api/candidates/:id/notes
func (h *CandidateHandler) AddNote(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dtos.NoteCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	candidate, err := h.CandidateService.AddNote(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, candidate)
}
