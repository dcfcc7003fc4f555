package services

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/talentflow-hq/talentflow/internal/dtos"
	apperrors "github.com/talentflow-hq/talentflow/internal/errors"
	"github.com/talentflow-hq/talentflow/internal/models"
)

type AnalyticsService struct {
	DB     *gorm.DB
	logger *zap.Logger
}

func NewAnalyticsService(db *gorm.DB, logger *zap.Logger) *AnalyticsService {
	return &AnalyticsService{DB: db, logger: logger}
}

// Summary aggregates the hiring funnel from the store.
func (s *AnalyticsService) Summary() (*dtos.AnalyticsSummary, error) {
	summary := &dtos.AnalyticsSummary{
		CandidatesByStage: make(map[models.Stage]int),
	}

	counts := []struct {
		model any
		where []any
		dest  *int
	}{
		{&models.Job{}, nil, &summary.TotalJobs},
		{&models.Job{}, []any{"status = ?", models.JobActive}, &summary.ActiveJobs},
		{&models.Candidate{}, nil, &summary.TotalCandidates},
		{&models.Assessment{}, nil, &summary.TotalAssessments},
		{&models.Assessment{}, []any{"status = ?", models.AssessmentPublished}, &summary.PublishedAssessments},
	}
	for _, c := range counts {
		query := s.DB.Model(c.model)
		if c.where != nil {
			query = query.Where(c.where[0], c.where[1:]...)
		}
		var n int64
		if err := query.Count(&n).Error; err != nil {
			return nil, apperrors.Internal("computing analytics", err)
		}
		*c.dest = int(n)
	}

	weekAgo := time.Now().AddDate(0, 0, -7).Format(models.DateLayout)
	var recent int64
	if err := s.DB.Model(&models.Candidate{}).Where("applied_date >= ?", weekAgo).Count(&recent).Error; err != nil {
		return nil, apperrors.Internal("computing analytics", err)
	}
	summary.NewCandidatesThisWeek = int(recent)

	var stageCounts []struct {
		Stage models.Stage
		N     int
	}
	err := s.DB.Model(&models.Candidate{}).
		Select("stage, COUNT(*) AS n").
		Group("stage").
		Scan(&stageCounts).Error
	if err != nil {
		return nil, apperrors.Internal("computing analytics", err)
	}
	for _, stage := range models.Stages {
		summary.CandidatesByStage[stage] = 0
	}
	for _, sc := range stageCounts {
		summary.CandidatesByStage[sc.Stage] = sc.N
	}

	var totalResponses, completedResponses int64
	if err := s.DB.Model(&models.AssessmentResponse{}).Count(&totalResponses).Error; err != nil {
		return nil, apperrors.Internal("computing analytics", err)
	}
	if err := s.DB.Model(&models.AssessmentResponse{}).
		Where("status = ?", models.ResponseCompleted).
		Count(&completedResponses).Error; err != nil {
		return nil, apperrors.Internal("computing analytics", err)
	}
	if totalResponses > 0 {
		summary.AssessmentCompletion = float64(completedResponses) / float64(totalResponses) * 100
	}

	return summary, nil
}
