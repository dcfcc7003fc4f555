package assessment

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/talentflow-hq/talentflow/internal/models"
)

// Failure describes one validation problem with a submitted answer.
// Failures are data, not errors: user input being wrong is an expected
// outcome, never a fault.
type Failure struct {
	QuestionID string `json:"questionId"`
	Reason     string `json:"reason"`
}

// Result is the outcome of validating one question or a whole submission.
type Result struct {
	Failures []Failure `json:"failures,omitempty"`
}

func (r Result) OK() bool {
	return len(r.Failures) == 0
}

func (r *Result) fail(questionID, reason string) {
	r.Failures = append(r.Failures, Failure{QuestionID: questionID, Reason: reason})
}

// ValidateResponse checks one answer against one question. The answer's
// accepted shape is decided by the question type; validation rule fields
// that do not match the type are ignored.
func ValidateResponse(q *models.AssessmentQuestion, answer models.Answer) Result {
	var result Result

	switch q.Type {
	case models.QuestionShortText, models.QuestionLongText:
		validateText(q, answer, &result)
	case models.QuestionSingleChoice:
		validateSingleChoice(q, answer, &result)
	case models.QuestionMultiChoice:
		validateMultiChoice(q, answer, &result)
	case models.QuestionNumeric:
		validateNumeric(q, answer, &result)
	case models.QuestionFileUpload:
		// Content checks are delegated to the upload collaborator; only
		// presence matters here.
		if q.Required && answerEmpty(answer) {
			result.fail(q.ID, "a file is required")
		}
	default:
		result.fail(q.ID, fmt.Sprintf("unknown question type %q", q.Type))
	}

	return result
}

func validateText(q *models.AssessmentQuestion, answer models.Answer, result *Result) {
	if answer.Kind == models.AnswerEmpty {
		if q.Required {
			result.fail(q.ID, "an answer is required")
		}
		return
	}
	if answer.Kind != models.AnswerText {
		result.fail(q.ID, "expected a text answer")
		return
	}

	trimmed := strings.TrimSpace(answer.Text)
	if trimmed == "" {
		if q.Required {
			result.fail(q.ID, "an answer is required")
		}
		return
	}

	rules := q.Validation
	if rules == nil {
		return
	}
	length := len([]rune(trimmed))
	if rules.MinLength != nil && length < *rules.MinLength {
		result.fail(q.ID, fmt.Sprintf("answer must be at least %d characters", *rules.MinLength))
	}
	if rules.MaxLength != nil && length > *rules.MaxLength {
		result.fail(q.ID, fmt.Sprintf("answer must be at most %d characters", *rules.MaxLength))
	}
	if rules.Pattern != "" {
		// An uncompilable pattern is a schema defect, not the respondent's
		// problem; it is skipped here and reported by CheckSchema.
		if re, err := regexp.Compile(rules.Pattern); err == nil && !re.MatchString(trimmed) {
			result.fail(q.ID, "answer does not match the required format")
		}
	}
}

func validateSingleChoice(q *models.AssessmentQuestion, answer models.Answer, result *Result) {
	if answerEmpty(answer) {
		if q.Required {
			result.fail(q.ID, "a selection is required")
		}
		return
	}
	if answer.Kind != models.AnswerText {
		result.fail(q.ID, "expected a single selected option")
		return
	}
	if !containsOption(q.Options, answer.Text) {
		result.fail(q.ID, fmt.Sprintf("%q is not one of the available options", answer.Text))
	}
}

func validateMultiChoice(q *models.AssessmentQuestion, answer models.Answer, result *Result) {
	if answer.Kind == models.AnswerEmpty || (answer.Kind == models.AnswerChoices && len(answer.Choices) == 0) {
		if q.Required {
			result.fail(q.ID, "at least one selection is required")
		}
		return
	}
	if answer.Kind != models.AnswerChoices {
		result.fail(q.ID, "expected a list of selected options")
		return
	}
	for _, choice := range answer.Choices {
		if !containsOption(q.Options, choice) {
			result.fail(q.ID, fmt.Sprintf("%q is not one of the available options", choice))
		}
	}
}

func validateNumeric(q *models.AssessmentQuestion, answer models.Answer, result *Result) {
	if answer.Kind == models.AnswerEmpty {
		if q.Required {
			result.fail(q.ID, "a number is required")
		}
		return
	}
	if answer.Kind != models.AnswerNumber {
		result.fail(q.ID, "expected a numeric answer")
		return
	}
	if math.IsNaN(answer.Number) || math.IsInf(answer.Number, 0) {
		result.fail(q.ID, "expected a finite number")
		return
	}

	rules := q.Validation
	if rules == nil {
		return
	}
	if rules.Min != nil && answer.Number < *rules.Min {
		result.fail(q.ID, fmt.Sprintf("value must be at least %v", *rules.Min))
	}
	if rules.Max != nil && answer.Number > *rules.Max {
		result.fail(q.ID, fmt.Sprintf("value must be at most %v", *rules.Max))
	}
}

// ValidateSubmission validates a full answer set against an assessment.
// Questions hidden by conditional logic are skipped entirely, including
// their required-ness.
func ValidateSubmission(a *models.Assessment, answers models.AnswerSet) Result {
	var result Result
	for si := range a.Sections {
		for qi := range a.Sections[si].Questions {
			q := &a.Sections[si].Questions[qi]
			if !EvaluateConditional(q, answers) {
				continue
			}
			qr := ValidateResponse(q, answers.Get(q.ID))
			result.Failures = append(result.Failures, qr.Failures...)
		}
	}
	return result
}

func answerEmpty(a models.Answer) bool {
	switch a.Kind {
	case models.AnswerEmpty:
		return true
	case models.AnswerText:
		return strings.TrimSpace(a.Text) == ""
	case models.AnswerChoices:
		return len(a.Choices) == 0
	}
	return false
}

func containsOption(options []string, value string) bool {
	for _, opt := range options {
		if opt == value {
			return true
		}
	}
	return false
}
