package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/otpauth/internal/config"
	"github.com/example/otpauth/internal/handlers"
	"github.com/example/otpauth/internal/middleware"
	"github.com/example/otpauth/internal/services"
	"github.com/example/otpauth/internal/store"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	users := store.NewGormUserStore(db)
	mailer := services.NewEmailService(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPass)
	authService := services.NewAuthService(users, mailer, cfg.JWTSecret, cfg.TokenExpires)

	RegisterWithService(app, authService, users, cfg.JWTSecret)
}

// RegisterWithService wires routes around an already-built workflow; tests
// use it to substitute fakes for the store and mailer.
func RegisterWithService(app *fiber.App, svc *services.AuthService, users store.UserStore, jwtSecret string) {
	authHandler := handlers.NewAuthHandler(svc, users)
	resetHandler := handlers.NewPasswordResetHandler(svc)

	auth := app.Group("/api/v1/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/verify-otp", authHandler.VerifyOtp)
	auth.Post("/request-password-reset", resetHandler.RequestReset)
	auth.Post("/reset-password", resetHandler.ResetPassword)

	auth.Get("/me", middleware.AuthRequired(jwtSecret), authHandler.Me)
}
