package analytics

import (
	"context"

	"survey-backend/src/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SurveyFinder interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Survey, error)
}

type ResponseFinder interface {
	FindResponsesBySurvey(ctx context.Context, surveyID primitive.ObjectID) ([]models.Response, error)
}

// Service computes owner summaries on demand; nothing is cached between calls.
type Service struct {
	surveys   SurveyFinder
	responses ResponseFinder
}

func NewService(surveys SurveyFinder, responses ResponseFinder) *Service {
	return &Service{surveys: surveys, responses: responses}
}

func (s *Service) Summary(ctx context.Context, surveyID, callerID string) (*models.SurveySummary, error) {
	oid, err := models.ParseID("survey", surveyID)
	if err != nil {
		return nil, err
	}
	survey, err := s.surveys.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	caller, err := primitive.ObjectIDFromHex(callerID)
	if err != nil || !survey.OwnedBy(caller) {
		return nil, &models.ForbiddenError{Action: "view analytics"}
	}

	list, err := s.responses.FindResponsesBySurvey(ctx, oid)
	if err != nil {
		return nil, err
	}
	summary := Aggregate(survey, list)
	return &summary, nil
}
