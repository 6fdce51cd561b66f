package surveys

import (
	"fmt"
	"strings"

	"survey-backend/src/models"
)

// ValidateForSave is the gate before persistence: a title and at least one
// question. Nothing else is checked here.
func ValidateForSave(d Draft) error {
	if strings.TrimSpace(d.Title) == "" {
		return &models.ValidationError{Field: "title", Message: "survey title is required"}
	}
	if len(d.Questions) == 0 {
		return &models.ValidationError{Field: "questions", Message: "survey must have at least one question"}
	}
	return nil
}

// BuildSurvey turns client input into a survey ready to store. It runs
// ValidateForSave, then checks each question's shape, assigns ids to
// questions that came without one and rejects duplicate ids. Question order
// is kept as given.
func (b *Builder) BuildSurvey(in models.SurveyInput) (*models.Survey, error) {
	d := Draft{Title: in.Title, Description: in.Description, Questions: in.Questions}
	if err := ValidateForSave(d); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(in.Questions))
	questions := make([]models.Question, 0, len(in.Questions))
	for i, q := range in.Questions {
		q = cloneQuestion(q)
		if q.ID == "" {
			q.ID = b.newID()
		}
		if seen[q.ID] {
			return nil, &models.ValidationError{Field: fmt.Sprintf("questions[%d].id", i), Message: "duplicate question id " + q.ID}
		}
		seen[q.ID] = true

		if err := normalizeQuestion(&q); err != nil {
			err.Field = fmt.Sprintf("questions[%d].%s", i, err.Field)
			return nil, err
		}
		questions = append(questions, q)
	}

	return &models.Survey{
		Title:       in.Title,
		Description: in.Description,
		Questions:   questions,
	}, nil
}

// normalizeQuestion enforces per-type fields: options only on choice
// questions, min/max only on scale questions.
func normalizeQuestion(q *models.Question) *models.ValidationError {
	if !q.Type.Valid() {
		return &models.ValidationError{Field: "type", Message: "unsupported question type " + string(q.Type)}
	}
	if strings.TrimSpace(q.Title) == "" {
		return &models.ValidationError{Field: "title", Message: "question title is required"}
	}

	switch q.Type {
	case models.ShortText, models.LongText:
		q.Options, q.Min, q.Max = nil, nil, nil
	case models.SingleChoice, models.MultiChoice:
		if len(q.Options) == 0 {
			return &models.ValidationError{Field: "options", Message: "choice questions need at least one option"}
		}
		q.Min, q.Max = nil, nil
	case models.Scale:
		lo, hi := q.Bounds()
		if err := checkScale(lo, hi); err != nil {
			return err
		}
		q.Options = nil
		q.Min, q.Max = intPtr(lo), intPtr(hi)
	}
	return nil
}

func checkScale(lo, hi int) *models.ValidationError {
	if lo > hi {
		return &models.ValidationError{Field: "max", Message: "scale min must not exceed max"}
	}
	if !models.ScaleSpanOK(lo, hi) {
		return &models.ValidationError{Field: "max", Message: fmt.Sprintf("scale range may span at most %d steps", models.MaxScaleSpan)}
	}
	return nil
}
