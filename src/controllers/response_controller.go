package controllers

import (
	"context"

	"survey-backend/src/middleware"
	"survey-backend/src/models"
	"survey-backend/src/utils"

	"github.com/gofiber/fiber/v2"
)

type ResponseService interface {
	Submit(ctx context.Context, surveyID string, answers []models.Answer) (*models.Response, error)
	ListForOwner(ctx context.Context, surveyID, callerID string) ([]models.Response, error)
}

type ResponseController struct {
	service ResponseService
}

func NewResponseController(service ResponseService) *ResponseController {
	return &ResponseController{service: service}
}

// SubmitResponse godoc
// @Summary      Submit answers to a survey
// @Description  Public endpoint, no account needed
// @Tags         responses
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Survey ID"
// @Param        body body models.SubmitResponseRequest true "Answers"
// @Success      201  {object}  models.Response
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /surveys/{id}/responses [post]
func (h *ResponseController) SubmitResponse(c *fiber.Ctx) error {
	var req models.SubmitResponseRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	res, err := h.service.Submit(c.UserContext(), c.Params("id"), req.Answers)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

// ListResponses godoc
// @Summary      List responses of my survey
// @Description  Returns an empty list when the caller does not own the survey
// @Tags         responses
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Survey ID"
// @Success      200  {array}   models.Response
// @Failure      401  {object}  models.ErrorResponse
// @Router       /surveys/{id}/responses [get]
func (h *ResponseController) ListResponses(c *fiber.Ctx) error {
	list, err := h.service.ListForOwner(c.UserContext(), c.Params("id"), middleware.UserID(c))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	if list == nil {
		list = []models.Response{}
	}
	return c.JSON(list)
}
