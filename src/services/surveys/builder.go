package surveys

import (
	"strings"

	"survey-backend/src/models"

	"github.com/google/uuid"
)

// DefaultQuestionTitle ชื่อคำถามเริ่มต้นเมื่อเพิ่มคำถามใหม่
const DefaultQuestionTitle = "New question"

// DefaultOption is the single option a new choice question starts with.
const DefaultOption = "Option 1"

// Draft is a survey under construction. Builder operations never mutate the
// Draft they receive; they return a new one and the caller keeps it.
type Draft struct {
	Title       string
	Description string
	Questions   []models.Question
}

// QuestionSpec describes a question to append.
type QuestionSpec struct {
	Type     models.QuestionType
	Title    string
	Required bool
	Options  []string
	Min      *int
	Max      *int
}

// QuestionPatch นำไปรวมกับคำถามเดิม; nil = ไม่เปลี่ยน
type QuestionPatch struct {
	Title    *string
	Required *bool
	Options  []string
	Min      *int
	Max      *int
}

// IDGenerator must never return the same id twice.
type IDGenerator func() string

type Builder struct {
	newID IDGenerator
}

// NewBuilder uses random UUIDs when gen is nil.
func NewBuilder(gen IDGenerator) *Builder {
	if gen == nil {
		gen = uuid.NewString
	}
	return &Builder{newID: gen}
}

func (b *Builder) SetMeta(d Draft, title, description string) Draft {
	out := d.clone()
	out.Title = title
	out.Description = description
	return out
}

// AddQuestion appends a question with a fresh id. Choice questions start
// with one default option, scale questions with 1..5.
func (b *Builder) AddQuestion(d Draft, spec QuestionSpec) (Draft, models.Question, error) {
	if !spec.Type.Valid() {
		return d, models.Question{}, &models.ValidationError{Field: "type", Message: "unsupported question type " + string(spec.Type)}
	}

	q := models.Question{
		ID:       b.newID(),
		Type:     spec.Type,
		Title:    spec.Title,
		Required: spec.Required,
	}
	if strings.TrimSpace(q.Title) == "" {
		q.Title = DefaultQuestionTitle
	}

	switch spec.Type {
	case models.SingleChoice, models.MultiChoice:
		q.Options = []string{DefaultOption}
		if len(spec.Options) > 0 {
			q.Options = append([]string(nil), spec.Options...)
		}
	case models.Scale:
		lo, hi := models.DefaultScaleMin, models.DefaultScaleMax
		if spec.Min != nil {
			lo = *spec.Min
		}
		if spec.Max != nil {
			hi = *spec.Max
		}
		if err := checkScale(lo, hi); err != nil {
			return d, models.Question{}, err
		}
		q.Min, q.Max = intPtr(lo), intPtr(hi)
	}

	out := d.clone()
	out.Questions = append(out.Questions, q)
	return out, cloneQuestion(q), nil
}

// UpdateQuestion merges patch into the question with the given id. The id
// and type never change and the question keeps its position. A blank title
// in the patch leaves the current title in place.
func (b *Builder) UpdateQuestion(d Draft, id string, patch QuestionPatch) (Draft, error) {
	idx := d.indexOf(id)
	if idx < 0 {
		return d, &models.NotFoundError{Resource: "question", ID: id}
	}

	q := cloneQuestion(d.Questions[idx])
	if patch.Title != nil && strings.TrimSpace(*patch.Title) != "" {
		q.Title = *patch.Title
	}
	if patch.Required != nil {
		q.Required = *patch.Required
	}

	if patch.Options != nil {
		if !q.Type.IsChoice() {
			return d, &models.ValidationError{Field: "options", Message: "options apply only to choice questions"}
		}
		if len(patch.Options) == 0 {
			return d, &models.ValidationError{Field: "options", Message: "choice questions need at least one option"}
		}
		q.Options = append([]string(nil), patch.Options...)
	}

	if patch.Min != nil || patch.Max != nil {
		if q.Type != models.Scale {
			return d, &models.ValidationError{Field: "min", Message: "min/max apply only to scale questions"}
		}
		lo, hi := q.Bounds()
		if patch.Min != nil {
			lo = *patch.Min
		}
		if patch.Max != nil {
			hi = *patch.Max
		}
		if err := checkScale(lo, hi); err != nil {
			return d, err
		}
		q.Min, q.Max = intPtr(lo), intPtr(hi)
	}

	out := d.clone()
	out.Questions[idx] = q
	return out, nil
}

// DeleteQuestion removes the question; the rest keep their order.
func (b *Builder) DeleteQuestion(d Draft, id string) (Draft, error) {
	idx := d.indexOf(id)
	if idx < 0 {
		return d, &models.NotFoundError{Resource: "question", ID: id}
	}
	out := d.clone()
	out.Questions = append(out.Questions[:idx], out.Questions[idx+1:]...)
	return out, nil
}

func (d Draft) indexOf(id string) int {
	for i, q := range d.Questions {
		if q.ID == id {
			return i
		}
	}
	return -1
}

func (d Draft) clone() Draft {
	out := d
	out.Questions = make([]models.Question, len(d.Questions))
	for i, q := range d.Questions {
		out.Questions[i] = cloneQuestion(q)
	}
	return out
}

func cloneQuestion(q models.Question) models.Question {
	if q.Options != nil {
		q.Options = append([]string(nil), q.Options...)
	}
	if q.Min != nil {
		q.Min = intPtr(*q.Min)
	}
	if q.Max != nil {
		q.Max = intPtr(*q.Max)
	}
	return q
}

func intPtr(v int) *int { return &v }
