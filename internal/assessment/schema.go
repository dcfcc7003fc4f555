package assessment

import (
	"fmt"
	"regexp"

	"github.com/talentflow-hq/talentflow/internal/models"
)

// CheckSchema verifies the structural invariants of an assessment before it
// is persisted: choice questions carry at least two options, non-choice
// questions carry none, conditional rules point at questions that exist, and
// pattern rules compile. Problems are reported as data, like response
// validation.
func CheckSchema(a *models.Assessment) Result {
	var result Result

	ids := make(map[string]bool)
	for si := range a.Sections {
		for qi := range a.Sections[si].Questions {
			ids[a.Sections[si].Questions[qi].ID] = true
		}
	}

	for si := range a.Sections {
		for qi := range a.Sections[si].Questions {
			q := &a.Sections[si].Questions[qi]

			if !q.Type.Valid() {
				result.fail(q.ID, fmt.Sprintf("unknown question type %q", q.Type))
				continue
			}

			if q.Type.IsChoice() {
				if len(q.Options) < 2 {
					result.fail(q.ID, "choice questions need at least two options")
				}
			} else if len(q.Options) > 0 {
				result.fail(q.ID, "only choice questions may carry options")
			}

			if q.Validation != nil && q.Validation.Pattern != "" {
				if _, err := regexp.Compile(q.Validation.Pattern); err != nil {
					result.fail(q.ID, "validation pattern does not compile")
				}
			}

			if q.Conditional != nil {
				if q.Conditional.DependsOn == q.ID {
					result.fail(q.ID, "a question cannot depend on itself")
				} else if !ids[q.Conditional.DependsOn] {
					result.fail(q.ID, "conditional rule references an unknown question")
				}
			}
		}
	}

	return result
}
