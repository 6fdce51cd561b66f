package main

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "survey-backend/docs"
	"survey-backend/src/config"
	"survey-backend/src/controllers"
	"survey-backend/src/database"
	"survey-backend/src/jobs"
	"survey-backend/src/middleware"
	"survey-backend/src/routes"
	"survey-backend/src/seeder"
	"survey-backend/src/services/analytics"
	"survey-backend/src/services/auth"
	"survey-backend/src/services/responses"
	"survey-backend/src/services/surveys"
	"survey-backend/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// @title        Survey API
// @version      1.0
// @description  Survey authoring and response collection
// @BasePath     /api
// @securityDefinitions.apikey BearerAuth
// @in           header
// @name         Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	// เชื่อมต่อกับ MongoDB
	if err := database.ConnectMongoDB(cfg.MongoURI, cfg.MongoDB); err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	// Redis ไม่บังคับ ถ้าต่อไม่ได้ก็ทำงานต่อแบบไม่มี blacklist / job queue
	if err := database.InitRedis(cfg.RedisURI); err != nil {
		log.Printf("⚠️ Redis unavailable: %v", err)
	}
	if database.RedisClient != nil {
		database.InitAsynq(cfg.RedisURI)
	}

	surveyStore := database.NewSurveyStore(database.SurveyCollection)
	responseStore := database.NewResponseStore(database.ResponseCollection)
	userStore := database.NewUserStore(database.UserCollection)
	tokenStore := utils.NewTokenStore(database.RedisClient)
	jwtManager := utils.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	var queue jobs.Enqueuer
	if database.AsynqClient != nil {
		queue = database.AsynqClient
	}
	dispatcher := jobs.NewDispatcher(queue, responseStore)

	var worker interface{ Shutdown() }
	if database.RedisClient != nil {
		srv, err := jobs.StartWorker(cfg.RedisURI, responseStore)
		if err != nil {
			log.Printf("⚠️ %v", err)
		} else {
			worker = srv
		}
	}

	surveyService := surveys.NewService(surveyStore, dispatcher, surveys.NewBuilder(nil))
	responseService := responses.NewService(surveyStore, responseStore)
	analyticsService := analytics.NewService(surveyStore, responseStore)
	authService := auth.NewService(userStore, jwtManager, tokenStore, auth.Options{
		MaxAttempts: cfg.LoginMaxAttempts,
		Cooldown:    cfg.LoginCooldown,
	})

	if cfg.SeedSampleData {
		sd := &seeder.Seeder{Accounts: authService, Users: userStore, Surveys: surveyService, Responses: responseService}
		if err := sd.Seed(context.Background()); err != nil {
			log.Printf("⚠️ seeding sample data failed: %v", err)
		}
	}

	// สร้าง app instance
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	// ✅ เปิดใช้งาน CORS Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false, // ❌ ต้องเป็น false ถ้าใช้ "*"
	}))

	// รวม routes จากแต่ละ module
	routes.InitRoutes(app, routes.Deps{
		Auth:        controllers.NewAuthController(authService),
		Surveys:     controllers.NewSurveyController(surveyService, cfg.PublicBaseURL),
		Responses:   controllers.NewResponseController(responseService),
		Analytics:   controllers.NewAnalyticsController(analyticsService),
		RequireAuth: middleware.AuthJWT(jwtManager, tokenStore),
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("⚠️ shutdown: %v", err)
		}
	}()

	// เริ่มเซิร์ฟเวอร์
	log.Println("Server is running on port " + cfg.Port)
	if err := app.Listen(fmt.Sprintf(":%s", url.PathEscape(cfg.Port))); err != nil {
		log.Printf("❌ %v", err)
	}

	if worker != nil {
		worker.Shutdown()
	}
	if database.AsynqClient != nil {
		_ = database.AsynqClient.Close()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.DisconnectMongoDB(ctx); err != nil {
		log.Printf("⚠️ disconnect mongodb: %v", err)
	}
}
