package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"survey-backend/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserStore struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewUserStore(coll *mongo.Collection) *UserStore {
	return &UserStore{coll: coll, now: func() time.Time { return time.Now().UTC() }}
}

// FindByEmail อีเมลเก็บเป็นตัวพิมพ์เล็กเสมอ
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.coll.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, &models.NotFoundError{Resource: "user", ID: email}
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

func (s *UserStore) Create(ctx context.Context, user *models.User) (*models.User, error) {
	doc := *user
	doc.ID = primitive.NewObjectID()
	doc.Email = strings.ToLower(doc.Email)
	doc.CreatedAt = s.now()

	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &doc, nil
}
