package services

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/talentflow-hq/talentflow/internal/assessment"
	"github.com/talentflow-hq/talentflow/internal/dtos"
	apperrors "github.com/talentflow-hq/talentflow/internal/errors"
	"github.com/talentflow-hq/talentflow/internal/models"
)

type AssessmentService struct {
	DB     *gorm.DB
	logger *zap.Logger
}

func NewAssessmentService(db *gorm.DB, logger *zap.Logger) *AssessmentService {
	return &AssessmentService{DB: db, logger: logger}
}

// ListAssessments returns all assessments ordered by last-updated
// descending.
func (s *AssessmentService) ListAssessments() ([]models.Assessment, error) {
	var assessments []models.Assessment
	if err := s.DB.Order("last_updated DESC").Find(&assessments).Error; err != nil {
		return nil, apperrors.Internal("listing assessments", err)
	}
	return assessments, nil
}

func (s *AssessmentService) GetAssessment(id uint) (*models.Assessment, error) {
	var a models.Assessment
	err := s.DB.First(&a, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("assessment not found", nil)
	}
	if err != nil {
		return nil, apperrors.Internal("loading assessment", err)
	}
	return &a, nil
}

// CreateAssessment persists a new draft. Order fields are renumbered from
// array position here, at persist time; in-memory reorders leave them
// stale on purpose.
func (s *AssessmentService) CreateAssessment(req *dtos.AssessmentCreationRequest) (*models.Assessment, error) {
	a := &models.Assessment{
		Title:       req.Title,
		Description: req.Description,
		Sections:    req.Sections,
		Status:      models.AssessmentDraft,
		Responses:   0,
		CreatedDate: models.Today(),
		LastUpdated: models.Today(),
		Settings:    req.Settings,
	}
	if a.Sections == nil {
		a.Sections = []models.AssessmentSection{}
	}
	assessment.Renumber(a)

	if err := s.DB.Create(a).Error; err != nil {
		return nil, apperrors.Internal("creating assessment", err)
	}
	s.logger.Info("assessment created", zap.Uint("id", a.ID), zap.String("title", a.Title))
	return a, nil
}

func (s *AssessmentService) UpdateAssessment(id uint, req *dtos.AssessmentUpdateRequest) (*models.Assessment, error) {
	a, err := s.GetAssessment(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		a.Title = *req.Title
	}
	if req.Description != nil {
		a.Description = *req.Description
	}
	if req.Sections != nil {
		a.Sections = *req.Sections
		assessment.Renumber(a)
	}
	if req.Settings != nil {
		a.Settings = req.Settings
	}
	a.LastUpdated = models.Today()

	if err := s.DB.Save(a).Error; err != nil {
		return nil, apperrors.Internal("updating assessment", err)
	}
	return a, nil
}

func (s *AssessmentService) DeleteAssessment(id uint) error {
	result := s.DB.Delete(&models.Assessment{}, id)
	if result.Error != nil {
		return apperrors.Internal("deleting assessment", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("assessment not found", nil)
	}
	return nil
}

// Transition moves an assessment through its lifecycle. Illegal moves are
// conflicts; responses already collected are never touched.
func (s *AssessmentService) Transition(id uint, to models.AssessmentStatus) (*models.Assessment, error) {
	a, err := s.GetAssessment(id)
	if err != nil {
		return nil, err
	}
	if !assessment.CanTransition(a.Status, to) {
		return nil, apperrors.Conflict(
			fmt.Sprintf("cannot move assessment from %s to %s", a.Status, to), nil)
	}

	a.Status = to
	a.LastUpdated = models.Today()
	if err := s.DB.Save(a).Error; err != nil {
		return nil, apperrors.Internal("updating assessment status", err)
	}
	s.logger.Info("assessment status changed", zap.Uint("id", a.ID), zap.String("status", string(to)))
	return a, nil
}

// SubmitResponse validates a candidate's answer set against the assessment
// and stores it when valid. Validation failures come back as data in the
// Result, not as an error.
func (s *AssessmentService) SubmitResponse(assessmentID uint, req *dtos.ResponseSubmissionRequest) (*models.AssessmentResponse, assessment.Result, error) {
	a, err := s.GetAssessment(assessmentID)
	if err != nil {
		return nil, assessment.Result{}, err
	}

	result := assessment.ValidateSubmission(a, req.Answers)
	if !result.OK() {
		return nil, result, nil
	}

	response := &models.AssessmentResponse{
		AssessmentID: a.ID,
		CandidateID:  req.CandidateID,
		Answers:      req.Answers,
		StartedAt:    req.StartedAt,
		CompletedAt:  nowISO(),
		Status:       models.ResponseCompleted,
	}
	if response.StartedAt == "" {
		response.StartedAt = response.CompletedAt
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(response).Error; err != nil {
			return err
		}
		return tx.Model(a).Update("responses", gorm.Expr("responses + 1")).Error
	})
	if err != nil {
		return nil, assessment.Result{}, apperrors.Internal("storing response", err)
	}
	return response, result, nil
}

func (s *AssessmentService) ListResponses(assessmentID uint) ([]models.AssessmentResponse, error) {
	var responses []models.AssessmentResponse
	err := s.DB.Where("assessment_id = ?", assessmentID).
		Order("id").
		Find(&responses).Error
	if err != nil {
		return nil, apperrors.Internal("listing responses", err)
	}
	return responses, nil
}
