package main

import (
	"context"
	"os"

	"car-marketplace-api/auth"
	"car-marketplace-api/config"
	"car-marketplace-api/logging"
	"car-marketplace-api/repository"
	"car-marketplace-api/routes"
	"car-marketplace-api/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/time/rate"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.New(config.LogConfig{}).WithError(err).Fatal("Failed to load configuration")
	}
	log := logging.New(cfg.Log)

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(cfg.Server.Mode)
	}
	if cfg.Auth.UsesDefaultSecret() {
		log.Warn("Using the built-in development signing secret; set CARS_AUTH_SECRET in production")
	}

	db, err := config.OpenDB(cfg.Database, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to open database")
	}
	log.WithField("driver", cfg.Database.Driver).Info("Database connected and migrated")

	userRepo := repository.NewUserRepository(db)
	carRepo := repository.NewCarRepository(db)
	tokens := auth.NewTokenService(cfg.Auth)
	userService := services.NewUserService(userRepo, auth.NewBcryptHasher(cfg.Auth.BcryptCost), tokens)
	carService := services.NewCarService(carRepo, userRepo)

	if cfg.Admin.Enabled() {
		created, err := userService.EnsureAdmin(context.Background(), services.RegisterInput{
			Username: cfg.Admin.Username,
			Email:    cfg.Admin.Email,
			Password: cfg.Admin.Password,
		})
		if err != nil {
			log.WithError(err).Fatal("Failed to bootstrap admin user")
		}
		if created {
			log.WithField("email", cfg.Admin.Email).Info("Admin user created")
		}
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	var limiter *rate.Limiter
	if cfg.RateLimit.RPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst)
	}

	r, err := routes.NewRouter(routes.Dependencies{
		Cars:     carService,
		Users:    userService,
		Tokens:   tokens,
		Logger:   log,
		Registry: registry,
		Limiter:  limiter,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to build router")
	}

	log.WithField("port", cfg.Server.Port).Info("Server running")
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.WithError(err).Fatal("Failed to start server")
	}
}
