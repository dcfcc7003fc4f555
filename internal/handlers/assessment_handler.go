package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talentflow-hq/talentflow/internal/assessment"
	"github.com/talentflow-hq/talentflow/internal/dtos"
	"github.com/talentflow-hq/talentflow/internal/models"
	"github.com/talentflow-hq/talentflow/internal/services"
)

type AssessmentHandler struct {
	AssessmentService *services.AssessmentService
}

func NewAssessmentHandler(assessments *services.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{AssessmentService: assessments}
}

// ListAssessments is GET /api/assessments, ordered by last-updated
// descending.
func (h *AssessmentHandler) ListAssessments(c *gin.Context) {
	assessments, err := h.AssessmentService.ListAssessments()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.AssessmentListResponse{Data: assessments})
}

func (h *AssessmentHandler) GetAssessment(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	a, err := h.AssessmentService.GetAssessment(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *AssessmentHandler) CreateAssessment(c *gin.Context) {
	var req dtos.AssessmentCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	if failed := checkSections(c, req.Sections); failed {
		return
	}
	a, err := h.AssessmentService.CreateAssessment(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (h *AssessmentHandler) UpdateAssessment(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dtos.AssessmentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	if req.Sections != nil {
		if failed := checkSections(c, *req.Sections); failed {
			return
		}
	}
	a, err := h.AssessmentService.UpdateAssessment(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *AssessmentHandler) DeleteAssessment(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.AssessmentService.DeleteAssessment(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// PublishAssessment is POST /api/assessments/:id/publish
func (h *AssessmentHandler) PublishAssessment(c *gin.Context) {
	h.transition(c, models.AssessmentPublished)
}

// ArchiveAssessment is POST /api/assessments/:id/archive
func (h *AssessmentHandler) ArchiveAssessment(c *gin.Context) {
	h.transition(c, models.AssessmentArchived)
}

func (h *AssessmentHandler) transition(c *gin.Context, to models.AssessmentStatus) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	a, err := h.AssessmentService.Transition(id, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// SubmitResponse is POST /api/assessments/:id/responses. Validation
// failures are reported inline with a 422 so the form can render them;
// they are not transport faults.
func (h *AssessmentHandler) SubmitResponse(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dtos.ResponseSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	response, result, err := h.AssessmentService.SubmitResponse(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	if !result.OK() {
		c.JSON(http.StatusUnprocessableEntity, dtos.ValidationFailedResponse{
			Error:    "response validation failed",
			Failures: result.Failures,
		})
		return
	}
	c.JSON(http.StatusCreated, response)
}

// ListResponses is GET /api/assessments/:id/responses
func (h *AssessmentHandler) ListResponses(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if _, err := h.AssessmentService.GetAssessment(id); err != nil {
		respondError(c, err)
		return
	}
	responses, err := h.AssessmentService.ListResponses(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.ResponseListResponse{Data: responses})
}

// checkSections rejects schema-invalid sections before they reach the
// store. Returns true when it already wrote the response.
func checkSections(c *gin.Context, sections []models.AssessmentSection) bool {
	draft := models.Assessment{Sections: sections}
	if result := assessment.CheckSchema(&draft); !result.OK() {
		c.JSON(http.StatusBadRequest, dtos.ValidationFailedResponse{
			Error:    "assessment schema is invalid",
			Failures: result.Failures,
		})
		return true
	}
	return false
}
