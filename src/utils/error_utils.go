// error_utils.go
package utils

import (
	"errors"
	"log"

	"survey-backend/src/models"

	"github.com/gofiber/fiber/v2"
)

func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: message,
	})
}

func handleCodedError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: message,
		Code:    code,
	})
}

// HandleServiceError maps typed service errors to HTTP responses. Unknown
// errors are logged and reported as 500 without detail.
func HandleServiceError(c *fiber.Ctx, err error) error {
	var (
		validation *models.ValidationError
		unknown    *models.UnknownQuestionError
		missing    *models.MissingRequiredAnswerError
		shape      *models.InvalidAnswerShapeError
		notFound   *models.NotFoundError
		forbidden  *models.ForbiddenError
		limited    *models.RateLimitedError
	)

	switch {
	case errors.As(err, &validation):
		return handleCodedError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", validation.Error())
	case errors.As(err, &unknown):
		return handleCodedError(c, fiber.StatusBadRequest, "UNKNOWN_QUESTION", unknown.Error())
	case errors.As(err, &missing):
		return handleCodedError(c, fiber.StatusBadRequest, "MISSING_REQUIRED_ANSWER", missing.Error())
	case errors.As(err, &shape):
		return handleCodedError(c, fiber.StatusBadRequest, "INVALID_ANSWER_SHAPE", shape.Error())
	case errors.As(err, &notFound):
		return handleCodedError(c, fiber.StatusNotFound, "NOT_FOUND", notFound.Error())
	case errors.As(err, &forbidden):
		return handleCodedError(c, fiber.StatusForbidden, "FORBIDDEN", forbidden.Error())
	case errors.Is(err, models.ErrInvalidCredentials):
		return handleCodedError(c, fiber.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid credentials")
	case errors.As(err, &limited):
		c.Set(fiber.HeaderRetryAfter, limited.RetryAfterSeconds())
		return handleCodedError(c, fiber.StatusTooManyRequests, "RATE_LIMITED", limited.Error())
	}

	log.Printf("❌ %s %s: %v", c.Method(), c.Path(), err)
	return HandleError(c, fiber.StatusInternalServerError, "Internal server error")
}
