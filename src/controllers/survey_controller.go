package controllers

import (
	"context"
	"strconv"

	"survey-backend/src/middleware"
	"survey-backend/src/models"
	"survey-backend/src/qrcode"
	"survey-backend/src/utils"

	"github.com/gofiber/fiber/v2"
)

const maxQRCodeSize = 1024

type SurveyService interface {
	Create(ctx context.Context, ownerID string, in models.SurveyInput) (*models.Survey, error)
	List(ctx context.Context, ownerID string) ([]models.Survey, error)
	Get(ctx context.Context, id string) (*models.Survey, error)
	Update(ctx context.Context, id, ownerID string, in models.SurveyInput) (*models.Survey, error)
	Delete(ctx context.Context, id, ownerID string) error
}

type SurveyController struct {
	service SurveyService
	baseURL string
}

// NewSurveyController baseURL is the public frontend origin used for share links.
func NewSurveyController(service SurveyService, baseURL string) *SurveyController {
	return &SurveyController{service: service, baseURL: baseURL}
}

// CreateSurvey godoc
// @Summary      Create a survey
// @Description  Build and store a survey owned by the caller
// @Tags         surveys
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body models.SurveyInput true "Survey"
// @Success      201  {object}  models.Survey
// @Failure      400  {object}  models.ErrorResponse
// @Failure      401  {object}  models.ErrorResponse
// @Router       /surveys [post]
func (h *SurveyController) CreateSurvey(c *fiber.Ctx) error {
	var in models.SurveyInput
	if err := c.BodyParser(&in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	survey, err := h.service.Create(c.UserContext(), middleware.UserID(c), in)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(survey)
}

// ListSurveys godoc
// @Summary      List my surveys
// @Description  Newest first
// @Tags         surveys
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.Survey
// @Failure      401  {object}  models.ErrorResponse
// @Router       /surveys [get]
func (h *SurveyController) ListSurveys(c *fiber.Ctx) error {
	list, err := h.service.List(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(list)
}

// GetSurvey godoc
// @Summary      Get a survey
// @Tags         surveys
// @Produce      json
// @Param        id   path      string  true  "Survey ID"
// @Success      200  {object}  models.Survey
// @Failure      404  {object}  models.ErrorResponse
// @Router       /surveys/{id} [get]
func (h *SurveyController) GetSurvey(c *fiber.Ctx) error {
	survey, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(survey)
}

// UpdateSurvey godoc
// @Summary      Replace a survey
// @Tags         surveys
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Survey ID"
// @Param        body body models.SurveyInput true "Survey"
// @Success      200  {object}  models.Survey
// @Failure      400  {object}  models.ErrorResponse
// @Failure      403  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /surveys/{id} [put]
func (h *SurveyController) UpdateSurvey(c *fiber.Ctx) error {
	var in models.SurveyInput
	if err := c.BodyParser(&in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	survey, err := h.service.Update(c.UserContext(), c.Params("id"), middleware.UserID(c), in)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(survey)
}

// DeleteSurvey godoc
// @Summary      Delete a survey and its responses
// @Tags         surveys
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Survey ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /surveys/{id} [delete]
func (h *SurveyController) DeleteSurvey(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id"), middleware.UserID(c)); err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Survey deleted successfully"})
}

// GetSurveyQRCode godoc
// @Summary      QR code of the public survey link
// @Tags         surveys
// @Produce      png
// @Param        id   path      string  true   "Survey ID"
// @Param        size query     int     false  "Image size in pixels"
// @Success      200  {file}    binary
// @Failure      404  {object}  models.ErrorResponse
// @Router       /surveys/{id}/qrcode [get]
func (h *SurveyController) GetSurveyQRCode(c *fiber.Ctx) error {
	survey, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	size := qrcode.DefaultSize
	if raw := c.Query("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxQRCodeSize {
			return utils.HandleError(c, fiber.StatusBadRequest, "size must be between 1 and 1024")
		}
		size = n
	}

	png, err := qrcode.GeneratePNG(h.ShareURL(survey.ID.Hex()), size)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

// ShareURL ลิงก์สาธารณะสำหรับตอบแบบสอบถาม
func (h *SurveyController) ShareURL(surveyID string) string {
	return h.baseURL + "/survey/" + surveyID
}
