package database

import (
	"context"
	"fmt"

	"survey-backend/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ResponseStore struct {
	coll *mongo.Collection
}

func NewResponseStore(coll *mongo.Collection) *ResponseStore {
	return &ResponseStore{coll: coll}
}

func (s *ResponseStore) SaveResponse(ctx context.Context, response *models.Response) (*models.Response, error) {
	doc := *response
	doc.ID = primitive.NewObjectID()
	if doc.Answers == nil {
		doc.Answers = []models.Answer{}
	}

	res, err := s.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert response: %w", err)
	}
	// sync inserted id (เผื่อไดรเวอร์คืนค่า id ใหม่)
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid
	}
	return &doc, nil
}

// FindResponsesBySurvey returns responses in submission order.
func (s *ResponseStore) FindResponsesBySurvey(ctx context.Context, surveyID primitive.ObjectID) ([]models.Response, error) {
	opts := options.Find().SetSort(bson.D{{Key: "submittedAt", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := s.coll.Find(ctx, bson.M{"surveyId": surveyID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find responses: %w", err)
	}
	defer cursor.Close(ctx)

	list := []models.Response{}
	if err := cursor.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode responses: %w", err)
	}
	return list, nil
}

func (s *ResponseStore) DeleteResponsesBySurvey(ctx context.Context, surveyID primitive.ObjectID) (int64, error) {
	res, err := s.coll.DeleteMany(ctx, bson.M{"surveyId": surveyID})
	if err != nil {
		return 0, fmt.Errorf("delete responses: %w", err)
	}
	return res.DeletedCount, nil
}
