package routes

import (
	"car-marketplace-api/handlers"
	"car-marketplace-api/middleware"
	"car-marketplace-api/models"
	"car-marketplace-api/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Dependencies are the long-lived collaborators shared by all requests.
// Registry and Limiter are optional.
type Dependencies struct {
	Cars     *services.CarService
	Users    *services.UserService
	Tokens   middleware.TokenVerifier
	Logger   *logrus.Logger
	Registry *prometheus.Registry
	Limiter  *rate.Limiter
}

// NewRouter builds the gin engine with the ambient middleware chain and
// every API route.
func NewRouter(deps Dependencies) (*gin.Engine, error) {
	if err := handlers.RegisterValidators(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(deps.Logger), middleware.CORS())
	if deps.Registry != nil {
		r.Use(middleware.NewMetrics(deps.Registry).Handler())
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
	}
	if deps.Limiter != nil {
		r.Use(middleware.RateLimit(deps.Limiter))
	}

	r.GET("/", handlers.Welcome)
	r.GET("/health", handlers.Health)

	SetupRoutes(r, deps)
	return r, nil
}

func SetupRoutes(r *gin.Engine, deps Dependencies) {
	carHandler := handlers.NewCarHandler(deps.Cars)
	userHandler := handlers.NewUserHandler(deps.Users)
	authRequired := middleware.AuthRequired(deps.Tokens)

	// ── Cars ───────────────────────────────────────────────────────
	cars := r.Group("/cars")
	{
		cars.GET("/:id", carHandler.Get)
		cars.DELETE("/:id", carHandler.Delete)

		cars.GET("/", authRequired, carHandler.List)
		cars.POST("/", authRequired, carHandler.Create)
		cars.PATCH("/:id", authRequired, carHandler.Update)
	}

	// ── Users ──────────────────────────────────────────────────────
	users := r.Group("/users")
	{
		users.POST("/register", userHandler.Register)
		users.POST("/login", userHandler.Login)
		users.GET("/me", authRequired, userHandler.Me)

		// Admin
		users.GET("/", authRequired, middleware.RoleRequired(deps.Users, models.RoleAdmin), userHandler.List)
	}
}
