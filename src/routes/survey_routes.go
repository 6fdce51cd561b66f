package routes

import (
	"github.com/gofiber/fiber/v2"
)

// surveyRoutes อ่านแบบสอบถามและส่งคำตอบได้โดยไม่ต้อง login
func surveyRoutes(router fiber.Router, deps Deps) {
	surveys := router.Group("/surveys")

	surveys.Post("/", deps.RequireAuth, deps.Surveys.CreateSurvey)
	surveys.Get("/", deps.RequireAuth, deps.Surveys.ListSurveys)
	surveys.Get("/:id", deps.Surveys.GetSurvey)
	surveys.Put("/:id", deps.RequireAuth, deps.Surveys.UpdateSurvey)
	surveys.Delete("/:id", deps.RequireAuth, deps.Surveys.DeleteSurvey)
	surveys.Get("/:id/qrcode", deps.Surveys.GetSurveyQRCode)

	surveys.Post("/:id/responses", deps.Responses.SubmitResponse)
	surveys.Get("/:id/responses", deps.RequireAuth, deps.Responses.ListResponses)
	surveys.Get("/:id/analytics", deps.RequireAuth, deps.Analytics.GetSurveyAnalytics)
}
