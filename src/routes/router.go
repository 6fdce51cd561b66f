package routes

import (
	"survey-backend/src/controllers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// Deps คือ handler ทั้งหมดที่ router ต้องใช้
type Deps struct {
	Auth      *controllers.AuthController
	Surveys   *controllers.SurveyController
	Responses *controllers.ResponseController
	Analytics *controllers.AnalyticsController
	// RequireAuth ตรวจ bearer token
	RequireAuth fiber.Handler
}

func InitRoutes(app *fiber.App, deps Deps) {
	// Route เช็คว่า API ทำงานอยู่
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})

	// เปิดใช้งาน Swagger ที่ URL /swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	api := app.Group("/api")
	authRoutes(api, deps)
	surveyRoutes(api, deps)
}
