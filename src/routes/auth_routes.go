package routes

import (
	"github.com/gofiber/fiber/v2"
)

// authRoutes กำหนด route สำหรับ auth (login/logout/register)
func authRoutes(router fiber.Router, deps Deps) {
	auth := router.Group("/auth")

	auth.Post("/register", deps.Auth.Register)
	auth.Post("/login", deps.Auth.Login) // 🔐 login
	auth.Post("/logout", deps.RequireAuth, deps.Auth.Logout)
}
