package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talentflow-hq/talentflow/internal/dtos"
	"github.com/talentflow-hq/talentflow/internal/services"
)

type JobHandler struct {
	JobService *services.JobService
}

// NewJobHandler creates the handler with dependencies
func NewJobHandler(jobs *services.JobService) *JobHandler {
	return &JobHandler{JobService: jobs}
}

// ListJobs is GET /api/jobs?page&limit&status&search
func (h *JobHandler) ListJobs(c *gin.Context) {
	query := services.JobListQuery{
		Page:   intQuery(c, "page", 1),
		Limit:  intQuery(c, "limit", 10),
		Status: c.Query("status"),
		Search: c.Query("search"),
	}

	jobs, total, err := h.JobService.ListJobs(query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.JobListResponse{
		Data:       jobs,
		Pagination: dtos.NewPagination(query.Page, query.Limit, int(total)),
	})
}

func (h *JobHandler) GetJob(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	job, err := h.JobService.GetJob(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dtos.JobCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	job, err := h.JobService.CreateJob(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) UpdateJob(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dtos.JobUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	job, err := h.JobService.UpdateJob(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) DeleteJob(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.JobService.DeleteJob(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
