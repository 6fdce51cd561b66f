package surveys

import (
	"fmt"
	"math"
	"testing"

	"survey-backend/src/models"
	"survey-backend/src/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sequentialIDs returns q1, q2, ...
func sequentialIDs() IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("q%d", n)
	}
}

func ids(d Draft) []string {
	out := make([]string, 0, len(d.Questions))
	for _, q := range d.Questions {
		out = append(out, q.ID)
	}
	return out
}

func strPtr(s string) *string { return &s }

func TestBuilder(t *testing.T) {
	suite := testutil.NewTestSuiteResult("Survey Builder Tests")
	defer suite.PrintSummary()

	t.Run("TestSetMetaDoesNotMutateInput", func(t *testing.T) {
		defer suite.Track(t, "set meta")()

		b := NewBuilder(sequentialIDs())
		d := Draft{Title: "old"}
		next := b.SetMeta(d, "Feedback", "Tell us")

		assert.Equal(t, "old", d.Title)
		assert.Equal(t, "Feedback", next.Title)
		assert.Equal(t, "Tell us", next.Description)
	})

	t.Run("TestAddQuestionDefaults", func(t *testing.T) {
		defer suite.Track(t, "add question defaults")()

		b := NewBuilder(sequentialIDs())
		d, text, err := b.AddQuestion(Draft{}, QuestionSpec{Type: models.ShortText})
		require.NoError(t, err)
		assert.Equal(t, DefaultQuestionTitle, text.Title)
		assert.Nil(t, text.Options)

		d, choice, err := b.AddQuestion(d, QuestionSpec{Type: models.SingleChoice, Title: "Color"})
		require.NoError(t, err)
		assert.Equal(t, []string{DefaultOption}, choice.Options)

		d, scale, err := b.AddQuestion(d, QuestionSpec{Type: models.Scale, Title: "Rate"})
		require.NoError(t, err)
		require.NotNil(t, scale.Min)
		require.NotNil(t, scale.Max)
		assert.Equal(t, 1, *scale.Min)
		assert.Equal(t, 5, *scale.Max)

		assert.Equal(t, []string{"q1", "q2", "q3"}, ids(d))
	})

	t.Run("TestAddQuestionRejectsUnknownType", func(t *testing.T) {
		defer suite.Track(t, "add unknown type")()

		b := NewBuilder(sequentialIDs())
		d := Draft{Title: "x"}
		got, _, err := b.AddQuestion(d, QuestionSpec{Type: "slider"})

		var ve *models.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, d, got)
	})

	t.Run("TestIDsNeverReusedAfterDelete", func(t *testing.T) {
		defer suite.Track(t, "ids never reused")()

		b := NewBuilder(sequentialIDs())
		d := Draft{}
		var err error
		for i := 0; i < 3; i++ {
			d, _, err = b.AddQuestion(d, QuestionSpec{Type: models.LongText})
			require.NoError(t, err)
		}

		d, err = b.DeleteQuestion(d, "q2")
		require.NoError(t, err)
		assert.Equal(t, []string{"q1", "q3"}, ids(d))

		d, added, err := b.AddQuestion(d, QuestionSpec{Type: models.LongText})
		require.NoError(t, err)
		assert.Equal(t, "q4", added.ID)
		assert.Equal(t, []string{"q1", "q3", "q4"}, ids(d))
	})

	t.Run("TestUpdateQuestionKeepsPositionAndType", func(t *testing.T) {
		defer suite.Track(t, "update keeps position")()

		b := NewBuilder(sequentialIDs())
		d, _, _ := b.AddQuestion(Draft{}, QuestionSpec{Type: models.ShortText})
		d, _, _ = b.AddQuestion(d, QuestionSpec{Type: models.MultiChoice})
		d, _, _ = b.AddQuestion(d, QuestionSpec{Type: models.Scale})

		required := true
		next, err := b.UpdateQuestion(d, "q2", QuestionPatch{
			Title:    strPtr("Pick any"),
			Required: &required,
			Options:  []string{"A", "B"},
		})
		require.NoError(t, err)

		assert.Equal(t, []string{"q1", "q2", "q3"}, ids(next))
		assert.Equal(t, models.MultiChoice, next.Questions[1].Type)
		assert.Equal(t, "Pick any", next.Questions[1].Title)
		assert.True(t, next.Questions[1].Required)
		assert.Equal(t, []string{"A", "B"}, next.Questions[1].Options)

		// input draft untouched
		assert.Equal(t, []string{DefaultOption}, d.Questions[1].Options)
		assert.Equal(t, DefaultQuestionTitle, d.Questions[1].Title)
	})

	t.Run("TestUpdateQuestionRejectsMismatchedFields", func(t *testing.T) {
		defer suite.Track(t, "update mismatched fields")()

		b := NewBuilder(sequentialIDs())
		d, _, _ := b.AddQuestion(Draft{}, QuestionSpec{Type: models.ShortText})
		d, _, _ = b.AddQuestion(d, QuestionSpec{Type: models.Scale})
		d, _, _ = b.AddQuestion(d, QuestionSpec{Type: models.SingleChoice})

		var ve *models.ValidationError
		lo := 3
		_, err := b.UpdateQuestion(d, "q1", QuestionPatch{Options: []string{"A"}})
		assert.ErrorAs(t, err, &ve)
		_, err = b.UpdateQuestion(d, "q1", QuestionPatch{Min: &lo})
		assert.ErrorAs(t, err, &ve)
		_, err = b.UpdateQuestion(d, "q3", QuestionPatch{Options: []string{}})
		assert.ErrorAs(t, err, &ve)

		hi := 2
		_, err = b.UpdateQuestion(d, "q2", QuestionPatch{Min: &lo, Max: &hi})
		assert.ErrorAs(t, err, &ve)

		next, err := b.UpdateQuestion(d, "q2", QuestionPatch{Min: &lo})
		require.NoError(t, err)
		assert.Equal(t, 3, *next.Questions[1].Min)
		assert.Equal(t, 5, *next.Questions[1].Max)
	})

	t.Run("TestScaleSpanLimit", func(t *testing.T) {
		defer suite.Track(t, "scale span limit")()

		b := NewBuilder(sequentialIDs())
		var ve *models.ValidationError

		zero, wide := 0, models.MaxScaleSpan+1
		_, _, err := b.AddQuestion(Draft{}, QuestionSpec{Type: models.Scale, Min: &zero, Max: &wide})
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "max", ve.Field)

		lo, hi := math.MinInt, math.MaxInt
		_, _, err = b.AddQuestion(Draft{}, QuestionSpec{Type: models.Scale, Min: &lo, Max: &hi})
		assert.ErrorAs(t, err, &ve)

		top := models.MaxScaleSpan
		d, q, err := b.AddQuestion(Draft{}, QuestionSpec{Type: models.Scale, Min: &zero, Max: &top})
		require.NoError(t, err)
		assert.Equal(t, models.MaxScaleSpan, *q.Max)

		_, err = b.UpdateQuestion(d, q.ID, QuestionPatch{Max: &wide})
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "max", ve.Field)
		_, err = b.UpdateQuestion(d, q.ID, QuestionPatch{Min: &lo, Max: &hi})
		assert.ErrorAs(t, err, &ve)
		huge := math.MaxInt
		_, err = b.UpdateQuestion(d, q.ID, QuestionPatch{Max: &huge})
		assert.ErrorAs(t, err, &ve)
	})

	t.Run("TestUpdateQuestionIgnoresBlankTitle", func(t *testing.T) {
		defer suite.Track(t, "update blank title")()

		b := NewBuilder(sequentialIDs())
		d, _, _ := b.AddQuestion(Draft{}, QuestionSpec{Type: models.ShortText, Title: "Name"})

		next, err := b.UpdateQuestion(d, "q1", QuestionPatch{Title: strPtr("   ")})
		require.NoError(t, err)
		assert.Equal(t, "Name", next.Questions[0].Title)
	})

	t.Run("TestUnknownIDIsNotFound", func(t *testing.T) {
		defer suite.Track(t, "unknown id")()

		b := NewBuilder(sequentialIDs())
		var nf *models.NotFoundError
		_, err := b.UpdateQuestion(Draft{}, "missing", QuestionPatch{})
		assert.ErrorAs(t, err, &nf)
		_, err = b.DeleteQuestion(Draft{}, "missing")
		assert.ErrorAs(t, err, &nf)
	})
}

func TestValidateForSave(t *testing.T) {
	one := []models.Question{{ID: "q1", Type: models.ShortText, Title: "Name"}}

	cases := []struct {
		name    string
		draft   Draft
		wantErr bool
	}{
		{"TestValid", Draft{Title: "Survey", Questions: one}, false},
		{"TestEmptyTitle", Draft{Title: "", Questions: one}, true},
		{"TestBlankTitle", Draft{Title: "   ", Questions: one}, true},
		{"TestNoQuestions", Draft{Title: "Survey"}, true},
		// only title and question count matter
		{"TestUntitledQuestionStillPasses", Draft{Title: "Survey", Questions: []models.Question{{ID: "q1"}}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateForSave(tc.draft)
			if tc.wantErr {
				var ve *models.ValidationError
				assert.ErrorAs(t, err, &ve)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBuildSurvey(t *testing.T) {
	t.Run("TestAssignsMissingIDsAndKeepsOrder", func(t *testing.T) {
		b := NewBuilder(sequentialIDs())
		s, err := b.BuildSurvey(models.SurveyInput{
			Title: "Feedback",
			Questions: []models.Question{
				{Type: models.ShortText, Title: "Name", Options: []string{"stray"}},
				{ID: "color", Type: models.SingleChoice, Title: "Color", Options: []string{"Red", "Blue"}},
				{Type: models.Scale, Title: "Rate"},
			},
		})
		require.NoError(t, err)

		require.Len(t, s.Questions, 3)
		assert.Equal(t, "q1", s.Questions[0].ID)
		assert.Nil(t, s.Questions[0].Options)
		assert.Equal(t, "color", s.Questions[1].ID)
		assert.Equal(t, "q2", s.Questions[2].ID)
		assert.Equal(t, 1, *s.Questions[2].Min)
		assert.Equal(t, 5, *s.Questions[2].Max)
	})

	t.Run("TestRejectsDuplicateIDs", func(t *testing.T) {
		b := NewBuilder(sequentialIDs())
		_, err := b.BuildSurvey(models.SurveyInput{
			Title: "Feedback",
			Questions: []models.Question{
				{ID: "a", Type: models.ShortText, Title: "One"},
				{ID: "a", Type: models.ShortText, Title: "Two"},
			},
		})
		var ve *models.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "questions[1].id", ve.Field)
	})

	t.Run("TestRejectsStructuralProblems", func(t *testing.T) {
		b := NewBuilder(sequentialIDs())
		lo, hi := 5, 1
		bad := []models.Question{
			{Type: "slider", Title: "x"},
			{Type: models.ShortText, Title: " "},
			{Type: models.MultiChoice, Title: "x"},
			{Type: models.Scale, Title: "x", Min: &lo, Max: &hi},
		}
		for _, q := range bad {
			_, err := b.BuildSurvey(models.SurveyInput{Title: "S", Questions: []models.Question{q}})
			var ve *models.ValidationError
			assert.ErrorAs(t, err, &ve, string(q.Type))
		}
	})

	t.Run("TestRejectsOversizedScale", func(t *testing.T) {
		b := NewBuilder(sequentialIDs())
		cases := [][2]int{
			{0, 200000000},
			{math.MinInt, math.MaxInt},
			{0, math.MaxInt},
			{math.MinInt, 0},
		}
		for _, c := range cases {
			lo, hi := c[0], c[1]
			q := models.Question{Type: models.Scale, Title: "Rate", Min: &lo, Max: &hi}
			_, err := b.BuildSurvey(models.SurveyInput{Title: "S", Questions: []models.Question{q}})
			var ve *models.ValidationError
			require.ErrorAs(t, err, &ve, "%d..%d", lo, hi)
			assert.Equal(t, "questions[0].max", ve.Field)
		}

		lo, hi := -50, 50
		q := models.Question{Type: models.Scale, Title: "Rate", Min: &lo, Max: &hi}
		_, err := b.BuildSurvey(models.SurveyInput{Title: "S", Questions: []models.Question{q}})
		assert.NoError(t, err)
	})

	t.Run("TestRequiresTitleAndQuestions", func(t *testing.T) {
		b := NewBuilder(sequentialIDs())
		_, err := b.BuildSurvey(models.SurveyInput{Title: "S"})
		var ve *models.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "questions", ve.Field)
	})
}
