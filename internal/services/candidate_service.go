package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/talentflow-hq/talentflow/internal/dtos"
	apperrors "github.com/talentflow-hq/talentflow/internal/errors"
	"github.com/talentflow-hq/talentflow/internal/mentions"
	"github.com/talentflow-hq/talentflow/internal/models"
)

type CandidateService struct {
	DB         *gorm.DB
	logger     *zap.Logger
	knownUsers []string
}

func NewCandidateService(db *gorm.DB, logger *zap.Logger, knownUsers []string) *CandidateService {
	return &CandidateService{DB: db, logger: logger, knownUsers: knownUsers}
}

type CandidateListQuery struct {
	Page   int
	Limit  int
	Stage  string
	Search string
}

// ListCandidates returns one page of candidates ordered by applied date
// descending, filtered by stage and a case-insensitive name/email/position
// search.
func (s *CandidateService) ListCandidates(q CandidateListQuery) ([]models.Candidate, int64, error) {
	query := s.DB.Model(&models.Candidate{})
	if q.Stage != "" && q.Stage != "all" {
		query = query.Where("stage = ?", q.Stage)
	}
	if q.Search != "" {
		needle := "%" + strings.ToLower(q.Search) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(position) LIKE ?",
			needle, needle, needle,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Internal("counting candidates", err)
	}

	var candidates []models.Candidate
	err := query.Order("applied_date DESC").
		Offset((q.Page - 1) * q.Limit).
		Limit(q.Limit).
		Find(&candidates).Error
	if err != nil {
		return nil, 0, apperrors.Internal("listing candidates", err)
	}
	return candidates, total, nil
}

func (s *CandidateService) GetCandidate(id uint) (*models.Candidate, error) {
	var candidate models.Candidate
	err := s.DB.First(&candidate, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("candidate not found", nil)
	}
	if err != nil {
		return nil, apperrors.Internal("loading candidate", err)
	}
	return &candidate, nil
}

func (s *CandidateService) CreateCandidate(req *dtos.CandidateCreationRequest) (*models.Candidate, error) {
	candidate := &models.Candidate{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Position:    req.Position,
		Stage:       req.Stage,
		AppliedDate: req.AppliedDate,
		Location:    req.Location,
		Avatar:      req.Avatar,
	}
	if candidate.Stage == "" {
		candidate.Stage = models.StageApplied
	}
	if candidate.AppliedDate == "" {
		candidate.AppliedDate = models.Today()
	}
	candidate.Timeline = []models.TimelineEvent{{
		ID:          uuid.NewString(),
		Type:        models.EventStageChange,
		Description: "Application received",
		Timestamp:   nowISO(),
		Author:      "System",
	}}

	if err := s.DB.Create(candidate).Error; err != nil {
		return nil, apperrors.Internal("creating candidate", err)
	}
	return candidate, nil
}

// UpdateCandidate applies a partial update. A stage change appends a
// stage_change event to the candidate's timeline; everything else updates
// in place.
func (s *CandidateService) UpdateCandidate(id uint, req *dtos.CandidateUpdateRequest) (*models.Candidate, error) {
	candidate, err := s.GetCandidate(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		candidate.Name = *req.Name
	}
	if req.Email != nil {
		candidate.Email = *req.Email
	}
	if req.Phone != nil {
		candidate.Phone = *req.Phone
	}
	if req.Position != nil {
		candidate.Position = *req.Position
	}
	if req.Location != nil {
		candidate.Location = *req.Location
	}
	if req.Avatar != nil {
		candidate.Avatar = *req.Avatar
	}
	if req.Stage != nil && *req.Stage != candidate.Stage {
		previous := candidate.Stage
		candidate.Stage = *req.Stage
		candidate.Timeline = prependEvent(candidate.Timeline, models.TimelineEvent{
			ID:          uuid.NewString(),
			Type:        models.EventStageChange,
			Description: fmt.Sprintf("Moved to %s stage", *req.Stage),
			Timestamp:   nowISO(),
			Author:      "System",
			Metadata:    map[string]any{"from": string(previous), "to": string(*req.Stage)},
		})
		s.logger.Info("candidate stage changed",
			zap.Uint("id", candidate.ID),
			zap.String("from", string(previous)),
			zap.String("to", string(*req.Stage)))
	}

	if err := s.DB.Save(candidate).Error; err != nil {
		return nil, apperrors.Internal("updating candidate", err)
	}
	return candidate, nil
}

// AddNote appends a note to the candidate. Mentions are extracted from the
// note text as structured spans matched against the known-user set; the
// stored mention list is exactly the distinct matched names. A note_added
// timeline event is recorded alongside.
func (s *CandidateService) AddNote(id uint, req *dtos.NoteCreationRequest) (*models.Candidate, error) {
	candidate, err := s.GetCandidate(id)
	if err != nil {
		return nil, err
	}

	spans := mentions.Extract(req.Content, s.knownUsers)
	note := models.CandidateNote{
		ID:        uuid.NewString(),
		Content:   req.Content,
		Author:    req.Author,
		CreatedAt: nowISO(),
		Mentions:  mentions.Names(spans),
	}
	candidate.Notes = append([]models.CandidateNote{note}, candidate.Notes...)

	summary := req.Content
	if runes := []rune(summary); len(runes) > 50 {
		summary = string(runes[:50]) + "..."
	}
	candidate.Timeline = prependEvent(candidate.Timeline, models.TimelineEvent{
		ID:          uuid.NewString(),
		Type:        models.EventNoteAdded,
		Description: "Added note: " + summary,
		Timestamp:   nowISO(),
		Author:      req.Author,
	})

	if err := s.DB.Save(candidate).Error; err != nil {
		return nil, apperrors.Internal("saving note", err)
	}
	return candidate, nil
}

// prependEvent keeps the timeline ordered newest-first, which is the
// display order.
func prependEvent(timeline []models.TimelineEvent, event models.TimelineEvent) []models.TimelineEvent {
	return append([]models.TimelineEvent{event}, timeline...)
}

func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}
