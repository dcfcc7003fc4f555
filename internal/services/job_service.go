package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/talentflow-hq/talentflow/internal/dtos"
	apperrors "github.com/talentflow-hq/talentflow/internal/errors"
	"github.com/talentflow-hq/talentflow/internal/models"
)

type JobService struct {
	DB     *gorm.DB
	logger *zap.Logger
}

func NewJobService(db *gorm.DB, logger *zap.Logger) *JobService {
	return &JobService{DB: db, logger: logger}
}

type JobListQuery struct {
	Page   int
	Limit  int
	Status string
	Search string
}

// ListJobs returns one page of jobs ordered by display order, filtered by
// status and a case-insensitive title/department search.
func (s *JobService) ListJobs(q JobListQuery) ([]models.Job, int64, error) {
	query := s.DB.Model(&models.Job{})
	if q.Status != "" && q.Status != "all" {
		query = query.Where("status = ?", q.Status)
	}
	if q.Search != "" {
		needle := "%" + strings.ToLower(q.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(department) LIKE ?", needle, needle)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Internal("counting jobs", err)
	}

	var jobs []models.Job
	err := query.Order("display_order").
		Offset((q.Page - 1) * q.Limit).
		Limit(q.Limit).
		Find(&jobs).Error
	if err != nil {
		return nil, 0, apperrors.Internal("listing jobs", err)
	}
	return jobs, total, nil
}

func (s *JobService) GetJob(id uint) (*models.Job, error) {
	var job models.Job
	err := s.DB.First(&job, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("job not found", nil)
	}
	if err != nil {
		return nil, apperrors.Internal("loading job", err)
	}
	return &job, nil
}

func (s *JobService) CreateJob(req *dtos.JobCreationRequest) (*models.Job, error) {
	var count int64
	if err := s.DB.Model(&models.Job{}).Count(&count).Error; err != nil {
		return nil, apperrors.Internal("counting jobs", err)
	}

	job := &models.Job{
		Title:        req.Title,
		Slug:         s.uniqueSlug(Slugify(req.Title), 0),
		Department:   req.Department,
		Location:     req.Location,
		Type:         req.Type,
		Salary:       req.Salary,
		Status:       req.Status,
		PostedDate:   models.Today(),
		Description:  req.Description,
		Requirements: req.Requirements,
		Tags:         req.Tags,
		DisplayOrder: int(count) + 1,
	}
	if job.Status == "" {
		job.Status = models.JobActive
	}
	if job.Type == "" {
		job.Type = models.EmploymentFullTime
	}

	if err := s.DB.Create(job).Error; err != nil {
		return nil, apperrors.Internal("creating job", err)
	}
	s.logger.Info("job created", zap.Uint("id", job.ID), zap.String("slug", job.Slug))
	return job, nil
}

func (s *JobService) UpdateJob(id uint, req *dtos.JobUpdateRequest) (*models.Job, error) {
	job, err := s.GetJob(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil && *req.Title != job.Title {
		job.Title = *req.Title
		job.Slug = s.uniqueSlug(Slugify(*req.Title), job.ID)
	}
	if req.Department != nil {
		job.Department = *req.Department
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.Type != nil {
		job.Type = *req.Type
	}
	if req.Salary != nil {
		job.Salary = *req.Salary
	}
	if req.Status != nil {
		job.Status = *req.Status
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Requirements != nil {
		job.Requirements = *req.Requirements
	}
	if req.Tags != nil {
		job.Tags = *req.Tags
	}
	if req.DisplayOrder != nil {
		job.DisplayOrder = *req.DisplayOrder
	}

	if err := s.DB.Save(job).Error; err != nil {
		return nil, apperrors.Internal("updating job", err)
	}
	return job, nil
}

// DeleteJob hard-deletes a job. The board never calls this; archiving is
// the normal end of a posting's life.
func (s *JobService) DeleteJob(id uint) error {
	result := s.DB.Delete(&models.Job{}, id)
	if result.Error != nil {
		return apperrors.Internal("deleting job", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("job not found", nil)
	}
	return nil
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases a title and collapses everything non-alphanumeric into
// single hyphens.
func Slugify(title string) string {
	slug := slugStrip.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}

// uniqueSlug appends a numeric suffix until the slug is free. excludeID
// skips the job being renamed so it can keep its own slug.
func (s *JobService) uniqueSlug(base string, excludeID uint) string {
	slug := base
	for n := 2; ; n++ {
		var count int64
		s.DB.Model(&models.Job{}).Where("slug = ? AND id <> ?", slug, excludeID).Count(&count)
		if count == 0 {
			return slug
		}
		slug = fmt.Sprintf("%s-%d", base, n)
	}
}
