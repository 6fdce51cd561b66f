package responses

import (
	"fmt"

	"survey-backend/src/models"
)

// Validate checks a candidate response against the survey's current
// questions and returns it unchanged when acceptable.
//
// Rules, applied in order:
//  1. every answer must reference a question of the survey, at most once
//     (UnknownQuestionError / InvalidAnswerShapeError); answers to unknown
//     ids are rejected, never dropped
//  2. every required question needs a non-empty answer (MissingRequiredAnswerError)
//  3. non-empty answers must fit their question type (InvalidAnswerShapeError):
//     text questions take a string, single-choice a string among the options,
//     multi-choice a list of distinct options, scale a number within [min, max]
//
// An empty answer to an optional question counts as unanswered and is not
// shape checked. A response failing any rule is rejected as a whole.
func Validate(survey *models.Survey, candidate *models.Response) (*models.Response, error) {
	byID := make(map[string]models.Question, len(survey.Questions))
	for _, q := range survey.Questions {
		byID[q.ID] = q
	}

	answered := make(map[string]models.AnswerValue, len(candidate.Answers))
	for _, a := range candidate.Answers {
		if _, ok := byID[a.QuestionID]; !ok {
			return nil, &models.UnknownQuestionError{QuestionID: a.QuestionID}
		}
		if _, dup := answered[a.QuestionID]; dup {
			return nil, &models.InvalidAnswerShapeError{QuestionID: a.QuestionID, Reason: "answered more than once"}
		}
		answered[a.QuestionID] = a.Value
	}

	for _, q := range survey.Questions {
		v, ok := answered[q.ID]
		if q.Required && (!ok || v.IsEmpty()) {
			return nil, &models.MissingRequiredAnswerError{QuestionID: q.ID, Title: q.Title}
		}
	}

	// iterate in question order so the first reported error is stable
	for _, q := range survey.Questions {
		v, ok := answered[q.ID]
		if !ok || v.IsEmpty() {
			continue
		}
		if reason := checkShape(q, v); reason != "" {
			return nil, &models.InvalidAnswerShapeError{QuestionID: q.ID, Reason: reason}
		}
	}

	return candidate, nil
}

func checkShape(q models.Question, v models.AnswerValue) string {
	switch q.Type {
	case models.ShortText, models.LongText:
		if v.Kind != models.TextValue {
			return "text answer expected, got " + v.Kind.String()
		}
	case models.SingleChoice:
		if v.Kind != models.TextValue {
			return "one option expected, got " + v.Kind.String()
		}
		if !hasOption(q.Options, v.Text) {
			return fmt.Sprintf("%q is not an option", v.Text)
		}
	case models.MultiChoice:
		if v.Kind != models.ChoicesValue {
			return "list of options expected, got " + v.Kind.String()
		}
		picked := make(map[string]bool, len(v.Choices))
		for _, c := range v.Choices {
			if !hasOption(q.Options, c) {
				return fmt.Sprintf("%q is not an option", c)
			}
			if picked[c] {
				return fmt.Sprintf("%q selected more than once", c)
			}
			picked[c] = true
		}
	case models.Scale:
		if v.Kind != models.NumberValue {
			return "number expected, got " + v.Kind.String()
		}
		lo, hi := q.Bounds()
		if v.Number < float64(lo) || v.Number > float64(hi) {
			return fmt.Sprintf("%v is outside %d..%d", v.Number, lo, hi)
		}
	default:
		return "unsupported question type " + string(q.Type)
	}
	return ""
}

func hasOption(options []string, value string) bool {
	for _, o := range options {
		if o == value {
			return true
		}
	}
	return false
}
