package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"survey-backend/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SurveyStore keeps surveys as single documents with embedded questions.
type SurveyStore struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewSurveyStore(coll *mongo.Collection) *SurveyStore {
	return &SurveyStore{coll: coll, now: func() time.Time { return time.Now().UTC() }}
}

// Save inserts a new survey or replaces an existing one whole.
func (s *SurveyStore) Save(ctx context.Context, survey *models.Survey) (*models.Survey, error) {
	now := s.now()
	doc := *survey
	doc.UpdatedAt = now
	if doc.Questions == nil {
		doc.Questions = []models.Question{}
	}

	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
		doc.CreatedAt = now
		if _, err := s.coll.InsertOne(ctx, doc); err != nil {
			return nil, fmt.Errorf("insert survey: %w", err)
		}
		return &doc, nil
	}

	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = now
	}
	res, err := s.coll.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc)
	if err != nil {
		return nil, fmt.Errorf("replace survey: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, &models.NotFoundError{Resource: "survey", ID: doc.ID.Hex()}
	}
	return &doc, nil
}

func (s *SurveyStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Survey, error) {
	var survey models.Survey
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&survey)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, &models.NotFoundError{Resource: "survey", ID: id.Hex()}
	}
	if err != nil {
		return nil, fmt.Errorf("find survey: %w", err)
	}
	return &survey, nil
}

// FindByOwner ใหม่สุดก่อน
func (s *SurveyStore) FindByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]models.Survey, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.coll.Find(ctx, bson.M{"createdBy": ownerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find surveys: %w", err)
	}
	defer cursor.Close(ctx)

	surveys := []models.Survey{}
	if err := cursor.All(ctx, &surveys); err != nil {
		return nil, fmt.Errorf("decode surveys: %w", err)
	}
	return surveys, nil
}

// DeleteByID removes the survey when ownerID owns it. Responses are not
// touched here.
func (s *SurveyStore) DeleteByID(ctx context.Context, id, ownerID primitive.ObjectID) error {
	survey, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !survey.OwnedBy(ownerID) {
		return &models.ForbiddenError{Action: "delete survey"}
	}

	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id, "createdBy": ownerID})
	if err != nil {
		return fmt.Errorf("delete survey: %w", err)
	}
	if res.DeletedCount == 0 {
		return &models.NotFoundError{Resource: "survey", ID: id.Hex()}
	}
	return nil
}
