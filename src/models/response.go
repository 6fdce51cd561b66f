package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Response คำตอบหนึ่งชุดจากผู้ตอบ (ไม่ระบุตัวตน)
type Response struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SurveyID    primitive.ObjectID `bson:"surveyId" json:"surveyId"`
	Answers     []Answer           `bson:"answers" json:"answers"`
	SubmittedAt time.Time          `bson:"submittedAt" json:"submittedAt"`
}

// Answer คำตอบของคำถามเดียว
type Answer struct {
	QuestionID string      `bson:"questionId" json:"questionId"`
	Value      AnswerValue `bson:"value" json:"value" swaggertype:"object"`
}

// SubmitResponseRequest body ของ POST /api/surveys/:id/responses
type SubmitResponseRequest struct {
	Answers []Answer `json:"answers"`
}
