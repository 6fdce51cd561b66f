package responses

import (
	"testing"

	"survey-backend/src/models"
	"survey-backend/src/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func sampleSurvey(required bool) *models.Survey {
	return &models.Survey{
		Title: "Feedback",
		Questions: []models.Question{
			{ID: "name", Type: models.ShortText, Title: "Name", Required: required},
			{ID: "color", Type: models.SingleChoice, Title: "Color", Options: []string{"Red", "Blue"}},
			{ID: "tags", Type: models.MultiChoice, Title: "Tags", Options: []string{"a", "b", "c"}},
			{ID: "rate", Type: models.Scale, Title: "Rate", Min: intPtr(1), Max: intPtr(5)},
		},
	}
}

func response(answers ...models.Answer) *models.Response {
	return &models.Response{Answers: answers}
}

func TestValidate(t *testing.T) {
	suite := testutil.NewTestSuiteResult("Response Validator Tests")
	defer suite.PrintSummary()

	t.Run("TestRequiredQuestionUnanswered", func(t *testing.T) {
		defer suite.Track(t, "required unanswered")()

		_, err := Validate(sampleSurvey(true), response())
		var missing *models.MissingRequiredAnswerError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "name", missing.QuestionID)

		got, err := Validate(sampleSurvey(false), response())
		require.NoError(t, err)
		assert.Empty(t, got.Answers)
	})

	t.Run("TestBlankTextDoesNotSatisfyRequired", func(t *testing.T) {
		defer suite.Track(t, "blank required")()

		_, err := Validate(sampleSurvey(true), response(models.Answer{QuestionID: "name", Value: models.Text("  ")}))
		var missing *models.MissingRequiredAnswerError
		assert.ErrorAs(t, err, &missing)
	})

	t.Run("TestUnknownQuestionRejected", func(t *testing.T) {
		defer suite.Track(t, "unknown question")()

		_, err := Validate(sampleSurvey(false), response(models.Answer{QuestionID: "ghost", Value: models.Text("x")}))
		var unknown *models.UnknownQuestionError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "ghost", unknown.QuestionID)
	})

	t.Run("TestDuplicateAnswerRejected", func(t *testing.T) {
		defer suite.Track(t, "duplicate answer")()

		_, err := Validate(sampleSurvey(false), response(
			models.Answer{QuestionID: "name", Value: models.Text("a")},
			models.Answer{QuestionID: "name", Value: models.Text("b")},
		))
		var shape *models.InvalidAnswerShapeError
		assert.ErrorAs(t, err, &shape)
	})

	t.Run("TestShapeViolations", func(t *testing.T) {
		defer suite.Track(t, "shape violations")()

		bad := []models.Answer{
			{QuestionID: "name", Value: models.Number(3)},
			{QuestionID: "color", Value: models.Text("Green")},
			{QuestionID: "color", Value: models.Choices("Red")},
			{QuestionID: "tags", Value: models.Choices("a", "z")},
			{QuestionID: "tags", Value: models.Choices("a", "a")},
			{QuestionID: "tags", Value: models.Text("a")},
			{QuestionID: "rate", Value: models.Number(6)},
			{QuestionID: "rate", Value: models.Number(0)},
			{QuestionID: "rate", Value: models.Text("3")},
			{QuestionID: "rate", Value: models.AnswerValue{Kind: models.UnsupportedValue}},
		}
		for _, a := range bad {
			_, err := Validate(sampleSurvey(false), response(a))
			var shape *models.InvalidAnswerShapeError
			if assert.ErrorAs(t, err, &shape, "%s %+v", a.QuestionID, a.Value) {
				assert.Equal(t, a.QuestionID, shape.QuestionID)
			}
		}
	})

	t.Run("TestAcceptedUnchanged", func(t *testing.T) {
		defer suite.Track(t, "accepted unchanged")()

		candidate := response(
			models.Answer{QuestionID: "rate", Value: models.Number(4)},
			models.Answer{QuestionID: "name", Value: models.Text(" Ana ")},
			models.Answer{QuestionID: "tags", Value: models.Choices("c", "a")},
			models.Answer{QuestionID: "color", Value: models.Text("Blue")},
		)
		got, err := Validate(sampleSurvey(true), candidate)
		require.NoError(t, err)
		assert.Same(t, candidate, got)
		assert.Equal(t, " Ana ", got.Answers[1].Value.Text)
		assert.Equal(t, "rate", got.Answers[0].QuestionID)
	})

	t.Run("TestEmptyOptionalAnswerSkipsShapeCheck", func(t *testing.T) {
		defer suite.Track(t, "empty optional")()

		_, err := Validate(sampleSurvey(false), response(
			models.Answer{QuestionID: "tags", Value: models.Choices()},
			models.Answer{QuestionID: "color"},
		))
		assert.NoError(t, err)
	})

	t.Run("TestDefaultScaleBounds", func(t *testing.T) {
		defer suite.Track(t, "default scale bounds")()

		s := &models.Survey{Questions: []models.Question{{ID: "r", Type: models.Scale, Title: "R"}}}
		_, err := Validate(s, response(models.Answer{QuestionID: "r", Value: models.Number(5)}))
		assert.NoError(t, err)
		_, err = Validate(s, response(models.Answer{QuestionID: "r", Value: models.Number(5.5)}))
		assert.Error(t, err)
	})
}
