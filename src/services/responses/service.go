package responses

import (
	"context"
	"errors"
	"log"
	"time"

	"survey-backend/src/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SurveyFinder loads the survey a response targets.
type SurveyFinder interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Survey, error)
}

// Store persists responses. Responses are append-only.
type Store interface {
	SaveResponse(ctx context.Context, response *models.Response) (*models.Response, error)
	FindResponsesBySurvey(ctx context.Context, surveyID primitive.ObjectID) ([]models.Response, error)
}

type Service struct {
	surveys SurveyFinder
	store   Store
	now     func() time.Time
}

func NewService(surveys SurveyFinder, store Store) *Service {
	return &Service{
		surveys: surveys,
		store:   store,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Submit validates and stores an anonymous response.
func (s *Service) Submit(ctx context.Context, surveyID string, answers []models.Answer) (*models.Response, error) {
	oid, err := models.ParseID("survey", surveyID)
	if err != nil {
		return nil, err
	}
	survey, err := s.surveys.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}

	if answers == nil {
		answers = []models.Answer{}
	}
	candidate := &models.Response{SurveyID: survey.ID, Answers: answers}
	accepted, err := Validate(survey, candidate)
	if err != nil {
		log.Printf("[response] rejected survey=%s: %v", oid.Hex(), err)
		return nil, err
	}
	accepted.SubmittedAt = s.now()

	saved, err := s.store.SaveResponse(ctx, accepted)
	if err != nil {
		return nil, err
	}
	log.Printf("[response] stored id=%s survey=%s answers=%d", saved.ID.Hex(), oid.Hex(), len(saved.Answers))
	return saved, nil
}

// ListForOwner returns the survey's responses to its owner. Anyone else,
// including callers asking about a survey that does not exist, gets an
// empty list so ownership is never confirmed.
func (s *Service) ListForOwner(ctx context.Context, surveyID, callerID string) ([]models.Response, error) {
	empty := []models.Response{}

	caller, err := primitive.ObjectIDFromHex(callerID)
	if err != nil {
		return empty, nil
	}
	oid, err := primitive.ObjectIDFromHex(surveyID)
	if err != nil {
		return empty, nil
	}

	survey, err := s.surveys.FindByID(ctx, oid)
	var nf *models.NotFoundError
	if errors.As(err, &nf) {
		return empty, nil
	}
	if err != nil {
		return nil, err
	}
	if !survey.OwnedBy(caller) {
		return empty, nil
	}

	list, err := s.store.FindResponsesBySurvey(ctx, oid)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return empty, nil
	}
	return list, nil
}
