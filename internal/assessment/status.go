package assessment

import (
	"github.com/talentflow-hq/talentflow/internal/models"
)

// CanTransition reports whether an assessment may move between lifecycle
// states. Only draft→published and published→archived are legal; no
// transition removes responses already collected.
func CanTransition(from, to models.AssessmentStatus) bool {
	switch from {
	case models.AssessmentDraft:
		return to == models.AssessmentPublished
	case models.AssessmentPublished:
		return to == models.AssessmentArchived
	}
	return false
}
