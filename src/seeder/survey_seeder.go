package seeder

import (
	"context"
	"errors"
	"fmt"
	"log"

	"survey-backend/src/models"
)

const (
	DemoEmail    = "demo@example.com"
	DemoPassword = "demo1234"
)

type Accounts interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.PublicUser, error)
}

type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

type Surveys interface {
	Create(ctx context.Context, ownerID string, in models.SurveyInput) (*models.Survey, error)
	List(ctx context.Context, ownerID string) ([]models.Survey, error)
}

type Responses interface {
	Submit(ctx context.Context, surveyID string, answers []models.Answer) (*models.Response, error)
}

// Seeder fills an empty database with a demo account, sample surveys and a
// few responses. It goes through the services so every record passes the
// same validation as API traffic.
type Seeder struct {
	Accounts  Accounts
	Users     UserFinder
	Surveys   Surveys
	Responses Responses
}

// Seed is idempotent: when the demo account already owns surveys nothing
// is written.
func (s *Seeder) Seed(ctx context.Context) error {
	ownerID, err := s.demoOwner(ctx)
	if err != nil {
		return err
	}

	existing, err := s.Surveys.List(ctx, ownerID)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Printf("[seed] demo account already has %d surveys, skipping", len(existing))
		return nil
	}

	var first *models.Survey
	for _, in := range sampleSurveys() {
		survey, err := s.Surveys.Create(ctx, ownerID, in)
		if err != nil {
			return fmt.Errorf("seed survey %q: %w", in.Title, err)
		}
		log.Printf("✅ Created survey: %s (ID: %s)", survey.Title, survey.ID.Hex())
		if first == nil {
			first = survey
		}
	}

	for i, answers := range sampleAnswers(first) {
		res, err := s.Responses.Submit(ctx, first.ID.Hex(), answers)
		if err != nil {
			return fmt.Errorf("seed response %d: %w", i+1, err)
		}
		log.Printf("✅ Created response %d (ID: %s)", i+1, res.ID.Hex())
	}
	return nil
}

func (s *Seeder) demoOwner(ctx context.Context) (string, error) {
	user, err := s.Users.FindByEmail(ctx, DemoEmail)
	if err == nil {
		return user.ID.Hex(), nil
	}
	var nf *models.NotFoundError
	if !errors.As(err, &nf) {
		return "", err
	}

	created, err := s.Accounts.Register(ctx, models.RegisterRequest{
		Name:     "Demo",
		Email:    DemoEmail,
		Password: DemoPassword,
	})
	if err != nil {
		return "", fmt.Errorf("seed demo account: %w", err)
	}
	return created.ID, nil
}

func intPtr(v int) *int { return &v }

func sampleSurveys() []models.SurveyInput {
	return []models.SurveyInput{
		{
			Title:       "Course Feedback",
			Description: "Please tell us how the course went",
			Questions: []models.Question{
				{Type: models.ShortText, Title: "What is your name?"},
				{Type: models.LongText, Title: "Describe your overall experience", Required: true},
				{Type: models.SingleChoice, Title: "How difficult was the course?", Required: true,
					Options: []string{"Easy", "Moderate", "Difficult"}},
				{Type: models.MultiChoice, Title: "Which parts helped most?",
					Options: []string{"Lectures", "Assignments", "Office Hours", "Textbook"}},
				{Type: models.Scale, Title: "Rate the instructor", Required: true, Min: intPtr(1), Max: intPtr(5)},
			},
		},
		{
			Title:       "Event Registration",
			Description: "Register for the annual meetup",
			Questions: []models.Question{
				{Type: models.ShortText, Title: "Full name", Required: true},
				{Type: models.SingleChoice, Title: "Which day will you attend?", Required: true,
					Options: []string{"Friday", "Saturday", "Both"}},
				{Type: models.LongText, Title: "Dietary requirements"},
			},
		},
	}
}

// sampleAnswers answers the course feedback survey by question position.
func sampleAnswers(survey *models.Survey) [][]models.Answer {
	if survey == nil || len(survey.Questions) < 5 {
		return nil
	}
	q := survey.Questions
	rows := []struct {
		name, story, level string
		parts              []string
		rate               float64
	}{
		{"Ana", "Clear and well paced", "Moderate", []string{"Lectures", "Textbook"}, 5},
		{"", "Too much homework", "Difficult", []string{"Office Hours"}, 3},
		{"Ken", "Good overall", "Moderate", nil, 4},
	}

	out := make([][]models.Answer, 0, len(rows))
	for _, r := range rows {
		answers := []models.Answer{
			{QuestionID: q[1].ID, Value: models.Text(r.story)},
			{QuestionID: q[2].ID, Value: models.Text(r.level)},
			{QuestionID: q[4].ID, Value: models.Number(r.rate)},
		}
		if r.name != "" {
			answers = append(answers, models.Answer{QuestionID: q[0].ID, Value: models.Text(r.name)})
		}
		if len(r.parts) > 0 {
			answers = append(answers, models.Answer{QuestionID: q[3].ID, Value: models.Choices(r.parts...)})
		}
		out = append(out, answers)
	}
	return out
}
