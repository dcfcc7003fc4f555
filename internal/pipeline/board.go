// Package pipeline models the candidate hiring pipeline as six fixed,
// ordered stages and mediates stage transitions between the board view and
// the API.
//
// A move is optimistic: the new stage is applied to the local candidate list
// and observers are notified synchronously before the server confirms. On
// confirmation failure the list is restored from the snapshot taken before
// the move and a failure notification is surfaced. There is no retry; the
// caller re-issues the move if they still want it.
package pipeline

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/talentflow-hq/talentflow/internal/models"
)

// StageUpdater is the slice of the transport client the board needs: a
// restricted update touching only the stage field.
type StageUpdater interface {
	UpdateStage(ctx context.Context, id uint, stage models.Stage) (*models.Candidate, error)
}

// Observer receives the full candidate list after every local change,
// including rollbacks.
type Observer func(candidates []models.Candidate)

// Severity of a user-facing notification.
type Severity string

const (
	SeverityInfo  Severity = "info"
	SeverityError Severity = "error"
)

// Notification is the user-facing signal for a confirmed or failed move.
type Notification struct {
	Severity Severity
	Title    string
	Message  string
}

// NotifyFunc surfaces notifications to the presentation layer.
type NotifyFunc func(Notification)

// Column is one lane of the kanban board.
type Column struct {
	Stage      models.Stage
	Title      string
	Candidates []models.Candidate
}

var columnTitles = map[models.Stage]string{
	models.StageApplied:   "Applied",
	models.StageScreened:  "Screened",
	models.StageTechnical: "Technical Interview",
	models.StageOffer:     "Offer",
	models.StageHired:     "Hired",
	models.StageRejected:  "Rejected",
}

// Board holds the local candidate list and coordinates optimistic stage
// moves against the API.
type Board struct {
	updater StageUpdater
	logger  *zap.Logger
	notify  NotifyFunc

	mu         sync.Mutex
	candidates []models.Candidate
	observers  []Observer

	// moveLocks serializes moves per candidate. Moves on different
	// candidates stay independent.
	moveMu    sync.Mutex
	moveLocks map[uint]*sync.Mutex
}

type BoardOption func(*Board)

func WithLogger(logger *zap.Logger) BoardOption {
	return func(b *Board) { b.logger = logger }
}

func WithNotifier(notify NotifyFunc) BoardOption {
	return func(b *Board) { b.notify = notify }
}

func NewBoard(updater StageUpdater, opts ...BoardOption) *Board {
	b := &Board{
		updater:   updater,
		logger:    zap.NewNop(),
		notify:    func(Notification) {},
		moveLocks: make(map[uint]*sync.Mutex),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// SetCandidates replaces the local list, typically after a page load.
func (b *Board) SetCandidates(candidates []models.Candidate) {
	b.mu.Lock()
	b.candidates = append([]models.Candidate(nil), candidates...)
	snapshot := append([]models.Candidate(nil), b.candidates...)
	observers := b.observers
	b.mu.Unlock()

	for _, observer := range observers {
		observer(snapshot)
	}
}

// Candidates returns a copy of the current local list.
func (b *Board) Candidates() []models.Candidate {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]models.Candidate(nil), b.candidates...)
}

// Subscribe registers an observer for local list changes. Observers run
// synchronously on the goroutine that caused the change.
func (b *Board) Subscribe(observer Observer) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.observers = append(b.observers, observer)
}

// Columns groups the local list into the six fixed lanes, in display order.
func (b *Board) Columns() []Column {
	b.mu.Lock()
	defer b.mu.Unlock()

	columns := make([]Column, 0, len(models.Stages))
	for _, stage := range models.Stages {
		column := Column{Stage: stage, Title: columnTitles[stage]}
		for _, candidate := range b.candidates {
			if candidate.Stage == stage {
				column.Candidates = append(column.Candidates, candidate)
			}
		}
		columns = append(columns, column)
	}
	return columns
}

// MoveCandidate transitions a candidate to targetStage. Dropping a card on
// its own column is a no-op: no request, no state change, no notification.
// Moves on the same candidate are serialized; the earlier move fully
// confirms or rolls back before the next one applies.
func (b *Board) MoveCandidate(ctx context.Context, id uint, targetStage models.Stage) error {
	if !targetStage.Valid() {
		return fmt.Errorf("unknown stage %q", targetStage)
	}

	lock := b.candidateLock(id)
	lock.Lock()
	defer lock.Unlock()

	b.mu.Lock()
	idx := -1
	for i := range b.candidates {
		if b.candidates[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		b.mu.Unlock()
		return fmt.Errorf("candidate %d not on the board", id)
	}
	if b.candidates[idx].Stage == targetStage {
		b.mu.Unlock()
		return nil
	}

	// Snapshot the full list before the speculative apply so rollback
	// restores exactly the pre-move state.
	snapshot := append([]models.Candidate(nil), b.candidates...)
	name := b.candidates[idx].Name
	b.candidates[idx].Stage = targetStage
	applied := append([]models.Candidate(nil), b.candidates...)
	observers := b.observers
	b.mu.Unlock()

	for _, observer := range observers {
		observer(applied)
	}

	if _, err := b.updater.UpdateStage(ctx, id, targetStage); err != nil {
		b.logger.Warn("stage update failed, rolling back",
			zap.Uint("candidate_id", id),
			zap.String("target_stage", string(targetStage)),
			zap.Error(err))

		b.mu.Lock()
		b.candidates = snapshot
		reverted := append([]models.Candidate(nil), b.candidates...)
		observers = b.observers
		b.mu.Unlock()

		for _, observer := range observers {
			observer(reverted)
		}

		b.notify(Notification{
			Severity: SeverityError,
			Title:    "Update Failed",
			Message:  "Failed to update candidate stage. Please try again.",
		})
		return err
	}

	b.notify(Notification{
		Severity: SeverityInfo,
		Title:    "Stage Updated",
		Message:  fmt.Sprintf("%s moved to %s", name, targetStage),
	})
	return nil
}

func (b *Board) candidateLock(id uint) *sync.Mutex {
	b.moveMu.Lock()
	defer b.moveMu.Unlock()
	lock, ok := b.moveLocks[id]
	if !ok {
		lock = &sync.Mutex{}
		b.moveLocks[id] = lock
	}
	return lock
}
