package assessment

import (
	"strings"

	"github.com/talentflow-hq/talentflow/internal/models"
)

// EvaluateConditional resolves whether a question is visible given the
// current answer set. Questions with no conditional rule are always visible.
func EvaluateConditional(q *models.AssessmentQuestion, answers models.AnswerSet) bool {
	rule := q.Conditional
	if rule == nil {
		return true
	}

	dep := answers.Get(rule.DependsOn)
	switch rule.Condition {
	case models.ConditionEquals:
		return answerEquals(dep, rule.Value)
	case models.ConditionNotEquals:
		return !answerEquals(dep, rule.Value)
	case models.ConditionContains:
		return answerContains(dep, rule.Value)
	default:
		// Unknown operator hides nothing.
		return true
	}
}

// answerEquals matches a single-valued answer against the comparison value.
// Multi-valued and numeric answers never equal a string comparison value.
func answerEquals(a models.Answer, value string) bool {
	return a.Kind == models.AnswerText && a.Text == value
}

// answerContains is membership for multi-valued answers and substring match
// for text answers.
func answerContains(a models.Answer, value string) bool {
	switch a.Kind {
	case models.AnswerChoices:
		for _, choice := range a.Choices {
			if choice == value {
				return true
			}
		}
		return false
	case models.AnswerText:
		return strings.Contains(a.Text, value)
	}
	return false
}
