package surveys

import (
	"context"
	"log"

	"survey-backend/src/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store is the persistence gateway for surveys. Save sets createdAt on first
// insert and refreshes updatedAt; last write wins.
type Store interface {
	Save(ctx context.Context, survey *models.Survey) (*models.Survey, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Survey, error)
	FindByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]models.Survey, error)
	DeleteByID(ctx context.Context, id, ownerID primitive.ObjectID) error
}

// ResponsePurger removes the responses of a deleted survey.
type ResponsePurger interface {
	PurgeResponses(ctx context.Context, surveyID primitive.ObjectID) error
}

type Service struct {
	store   Store
	purger  ResponsePurger
	builder *Builder
}

func NewService(store Store, purger ResponsePurger, builder *Builder) *Service {
	if builder == nil {
		builder = NewBuilder(nil)
	}
	return &Service{store: store, purger: purger, builder: builder}
}

// Create builds and stores a survey owned by ownerID.
func (s *Service) Create(ctx context.Context, ownerID string, in models.SurveyInput) (*models.Survey, error) {
	owner, err := parseOwner(ownerID, "create survey")
	if err != nil {
		return nil, err
	}

	survey, err := s.builder.BuildSurvey(in)
	if err != nil {
		return nil, err
	}
	survey.CreatedBy = owner

	saved, err := s.store.Save(ctx, survey)
	if err != nil {
		return nil, err
	}
	log.Printf("[survey] created id=%s owner=%s questions=%d", saved.ID.Hex(), owner.Hex(), len(saved.Questions))
	return saved, nil
}

// List returns the caller's surveys, newest first.
func (s *Service) List(ctx context.Context, ownerID string) ([]models.Survey, error) {
	owner, err := parseOwner(ownerID, "list surveys")
	if err != nil {
		return nil, err
	}
	surveys, err := s.store.FindByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	if surveys == nil {
		surveys = []models.Survey{}
	}
	return surveys, nil
}

// Get is public: anyone holding the link can load the survey to answer it.
func (s *Service) Get(ctx context.Context, id string) (*models.Survey, error) {
	oid, err := models.ParseID("survey", id)
	if err != nil {
		return nil, err
	}
	return s.store.FindByID(ctx, oid)
}

// Update replaces title, description and questions. Existing responses are
// left as they are.
func (s *Service) Update(ctx context.Context, id, ownerID string, in models.SurveyInput) (*models.Survey, error) {
	owner, err := parseOwner(ownerID, "update survey")
	if err != nil {
		return nil, err
	}
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !current.OwnedBy(owner) {
		return nil, &models.ForbiddenError{Action: "update survey"}
	}

	next, err := s.builder.BuildSurvey(in)
	if err != nil {
		return nil, err
	}
	next.ID = current.ID
	next.CreatedBy = current.CreatedBy
	next.CreatedAt = current.CreatedAt

	saved, err := s.store.Save(ctx, next)
	if err != nil {
		return nil, err
	}
	log.Printf("[survey] updated id=%s questions=%d", saved.ID.Hex(), len(saved.Questions))
	return saved, nil
}

// Delete removes the survey and then purges its responses.
func (s *Service) Delete(ctx context.Context, id, ownerID string) error {
	owner, err := parseOwner(ownerID, "delete survey")
	if err != nil {
		return err
	}
	oid, err := models.ParseID("survey", id)
	if err != nil {
		return err
	}
	if err := s.store.DeleteByID(ctx, oid, owner); err != nil {
		return err
	}
	log.Printf("[survey] deleted id=%s owner=%s", oid.Hex(), owner.Hex())

	if s.purger != nil {
		if err := s.purger.PurgeResponses(ctx, oid); err != nil {
			// the survey is already gone, so a failed purge only leaves orphans behind
			log.Printf("[survey] purge responses failed id=%s: %v", oid.Hex(), err)
		}
	}
	return nil
}

func parseOwner(ownerID, action string) (primitive.ObjectID, error) {
	owner, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return primitive.NilObjectID, &models.ForbiddenError{Action: action}
	}
	return owner, nil
}
