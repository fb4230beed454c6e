package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/leave-api/internal/application/auth"
	"github.com/jhoicas/leave-api/internal/application/leave"
	"github.com/jhoicas/leave-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	LeaveUC   *leave.LeaveUseCase
	JWTSecret string
	AppName   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	// Banner de servicio con el listado de endpoints
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Leave Management System API",
			"status":  "running",
			"endpoints": fiber.Map{
				"auth":   []string{"/auth/register", "/auth/login"},
				"leaves": []string{"/leaves", "/leaves/:id/status"},
			},
		})
	})

	// Auth (público)
	authGroup := app.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Leaves (protegido, requiere Bearer Token)
	leaves := app.Group("/leaves", AuthMiddleware(deps.JWTSecret))
	leaveHandler := NewLeaveHandler(deps.LeaveUC)
	leaves.Post("/", leaveHandler.Create)
	leaves.Get("/", leaveHandler.List)
	// El use case vuelve a verificar el rol; el middleware corta antes.
	leaves.Patch("/:id/status", RequireRole(entity.RoleAdmin), leaveHandler.UpdateStatus)
}
