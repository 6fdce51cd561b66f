package models

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"
)

// ValidationError แบบสอบถามไม่ครบก่อนบันทึก
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// UnknownQuestionError an answer references a question the survey does not have.
type UnknownQuestionError struct {
	QuestionID string
}

func (e *UnknownQuestionError) Error() string {
	return fmt.Sprintf("unknown question %q", e.QuestionID)
}

// MissingRequiredAnswerError a required question has no usable answer.
type MissingRequiredAnswerError struct {
	QuestionID string
	Title      string
}

func (e *MissingRequiredAnswerError) Error() string {
	return fmt.Sprintf("required question not answered: %s", e.Title)
}

// InvalidAnswerShapeError the answer does not fit its question type.
type InvalidAnswerShapeError struct {
	QuestionID string
	Reason     string
}

func (e *InvalidAnswerShapeError) Error() string {
	return fmt.Sprintf("invalid answer for question %q: %s", e.QuestionID, e.Reason)
}

type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// ForbiddenError caller is not the owner.
type ForbiddenError struct {
	Action string
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("forbidden: %s", e.Action)
}

// ErrInvalidCredentials login failed; the message never says which part was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// RateLimitedError too many failed logins for one email.
type RateLimitedError struct {
	RetryAfter time.Duration
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("too many login attempts, try again in %d minutes and %d seconds",
		int(e.RetryAfter.Minutes()), int(e.RetryAfter.Seconds())%60)
}

func (e *RateLimitedError) RetryAfterSeconds() string {
	return strconv.Itoa(int(math.Ceil(e.RetryAfter.Seconds())))
}
