package controllers

import (
	"context"

	"survey-backend/src/middleware"
	"survey-backend/src/models"
	"survey-backend/src/utils"

	"github.com/gofiber/fiber/v2"
)

type AnalyticsService interface {
	Summary(ctx context.Context, surveyID, callerID string) (*models.SurveySummary, error)
}

type AnalyticsController struct {
	service AnalyticsService
}

func NewAnalyticsController(service AnalyticsService) *AnalyticsController {
	return &AnalyticsController{service: service}
}

// GetSurveyAnalytics godoc
// @Summary      Aggregated results of my survey
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Survey ID"
// @Success      200  {object}  models.SurveySummary
// @Failure      403  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /surveys/{id}/analytics [get]
func (h *AnalyticsController) GetSurveyAnalytics(c *fiber.Ctx) error {
	summary, err := h.service.Summary(c.UserContext(), c.Params("id"), middleware.UserID(c))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(summary)
}
