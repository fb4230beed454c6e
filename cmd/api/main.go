package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/leave-api/internal/application/auth"
	"github.com/jhoicas/leave-api/internal/application/leave"
	"github.com/jhoicas/leave-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/leave-api/internal/interfaces/http"
	"github.com/jhoicas/leave-api/pkg/config"
	"github.com/jhoicas/leave-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es obligatorio")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("crear esquema")
	}

	userRepo := postgres.NewUserRepository(pool)
	leaveRepo := postgres.NewLeaveRequestRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret: cfg.JWT.Secret,
		Issuer: cfg.JWT.Issuer,
	})
	leaveUC := leave.NewLeaveUseCase(leaveRepo, userRepo, txRunner)

	// Cuenta admin inicial (configurable vía SEED_ADMIN_*)
	switch res, err := authUC.EnsureSeedAdmin(cfg.Seed.AdminName, cfg.Seed.AdminEmail, cfg.Seed.AdminPassword); {
	case err != nil:
		log.Fatal().Err(err).Msg("seed del admin inicial")
	case res == auth.SeedCreated:
		log.Info().Str("email", cfg.Seed.AdminEmail).Msg("admin inicial creado")
	case res == auth.SeedExists:
		log.Info().Str("email", cfg.Seed.AdminEmail).Msg("admin inicial ya existe")
	default:
		log.Info().Msg("seed del admin desactivado (SEED_ADMIN_EMAIL vacío)")
	}
	if cfg.Seed.AdminPassword == "Scholes2006" && cfg.Seed.AdminEmail != "" {
		log.Warn().Msg("el admin inicial usa la contraseña por defecto; defina SEED_ADMIN_PASSWORD")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.Origins,
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Leave Management API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		LeaveUC:   leaveUC,
		JWTSecret: cfg.JWT.Secret,
		AppName:   cfg.App.Name,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
