package models

import (
	"encoding/json"
	"fmt"
)

// AnswerKind discriminates the wire shape of a submitted answer. The shape a
// question actually accepts is decided by the question's type at validation
// time; the kind only records what the submitter sent.
type AnswerKind int

const (
	AnswerEmpty AnswerKind = iota
	AnswerText
	AnswerChoices
	AnswerNumber
)

// Answer is a tagged union over the value shapes a question can collect:
// a string, a string set, or a number. On the wire it stays the bare JSON
// value, matching the stored response documents.
type Answer struct {
	Kind    AnswerKind
	Text    string
	Choices []string
	Number  float64
}

func TextAnswer(s string) Answer       { return Answer{Kind: AnswerText, Text: s} }
func ChoicesAnswer(c ...string) Answer { return Answer{Kind: AnswerChoices, Choices: c} }
func NumberAnswer(n float64) Answer    { return Answer{Kind: AnswerNumber, Number: n} }

func (a Answer) MarshalJSON() ([]byte, error) {
	switch a.Kind {
	case AnswerText:
		return json.Marshal(a.Text)
	case AnswerChoices:
		return json.Marshal(a.Choices)
	case AnswerNumber:
		return json.Marshal(a.Number)
	default:
		return []byte("null"), nil
	}
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*a = Answer{}
	case string:
		*a = Answer{Kind: AnswerText, Text: v}
	case float64:
		*a = Answer{Kind: AnswerNumber, Number: v}
	case []any:
		choices := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("answer array element must be a string, got %T", item)
			}
			choices = append(choices, s)
		}
		*a = Answer{Kind: AnswerChoices, Choices: choices}
	default:
		return fmt.Errorf("unsupported answer shape %T", raw)
	}
	return nil
}

// AnswerSet maps question ids to submitted answers.
type AnswerSet map[string]Answer

// Get returns the answer for a question id; a missing entry is an empty
// answer.
func (s AnswerSet) Get(questionID string) Answer {
	if s == nil {
		return Answer{}
	}
	return s[questionID]
}
