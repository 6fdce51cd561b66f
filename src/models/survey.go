package models

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QuestionType ชนิดของคำถามในแบบสอบถาม
type QuestionType string

const (
	ShortText    QuestionType = "short-text"
	LongText     QuestionType = "long-text"
	SingleChoice QuestionType = "single-choice"
	MultiChoice  QuestionType = "multi-choice"
	Scale        QuestionType = "scale"
)

// labels sent by the first web client
var legacyQuestionTypes = map[string]QuestionType{
	"short":    ShortText,
	"long":     LongText,
	"multiple": SingleChoice,
	"checkbox": MultiChoice,
}

// ParseQuestionType accepts canonical and legacy labels.
func ParseQuestionType(s string) (QuestionType, bool) {
	if t, ok := legacyQuestionTypes[s]; ok {
		return t, true
	}
	t := QuestionType(s)
	return t, t.Valid()
}

func (t QuestionType) Valid() bool {
	switch t {
	case ShortText, LongText, SingleChoice, MultiChoice, Scale:
		return true
	}
	return false
}

func (t QuestionType) IsText() bool { return t == ShortText || t == LongText }
func (t QuestionType) IsChoice() bool { return t == SingleChoice || t == MultiChoice }

// UnmarshalJSON normalizes legacy labels. Unknown labels are kept as-is so
// survey validation can report them.
func (t *QuestionType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if parsed, ok := ParseQuestionType(s); ok {
		*t = parsed
		return nil
	}
	*t = QuestionType(s)
	return nil
}

// --- Question ---
type Question struct {
	ID       string       `bson:"id" json:"id"`
	Type     QuestionType `bson:"type" json:"type"`
	Title    string       `bson:"title" json:"title"`
	Required bool         `bson:"required" json:"required"`

	// choice questions only
	Options []string `bson:"options,omitempty" json:"options,omitempty"`

	// scale questions only
	Min *int `bson:"min,omitempty" json:"min,omitempty"`
	Max *int `bson:"max,omitempty" json:"max,omitempty"`
}

// Bounds returns the scale range, falling back to 1..5 when unset.
func (q Question) Bounds() (int, int) {
	lo, hi := DefaultScaleMin, DefaultScaleMax
	if q.Min != nil {
		lo = *q.Min
	}
	if q.Max != nil {
		hi = *q.Max
	}
	return lo, hi
}

const (
	DefaultScaleMin = 1
	DefaultScaleMax = 5

	// MaxScaleSpan จำนวนช่วงสูงสุดของ scale (max - min)
	MaxScaleSpan = 100
)

// ScaleSpanOK reports whether lo..hi is ordered and no wider than
// MaxScaleSpan. The difference is taken in uint64 so extreme ints can't wrap.
func ScaleSpanOK(lo, hi int) bool {
	return lo <= hi && uint64(hi)-uint64(lo) <= MaxScaleSpan
}

// --- Survey ---
type Survey struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Questions   []Question         `bson:"questions" json:"questions"`
	CreatedBy   primitive.ObjectID `bson:"createdBy" json:"createdBy"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Question looks up a question by id.
func (s *Survey) Question(id string) (Question, bool) {
	for _, q := range s.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

func (s *Survey) OwnedBy(userID primitive.ObjectID) bool {
	return !userID.IsZero() && s.CreatedBy == userID
}

// SurveyInput payload สำหรับสร้าง/แก้ไขแบบสอบถาม
type SurveyInput struct {
	Title       string     `json:"title" example:"Customer satisfaction"`
	Description string     `json:"description" example:"Quarterly feedback"`
	Questions   []Question `json:"questions"`
}
