package api

import (
	"net/http"
	"sync"
	"time"

	"backend_tigo/config"
	"backend_tigo/middleware"
	"backend_tigo/models"
	"backend_tigo/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// Dependencies are the collaborators the HTTP layer is built on
type Dependencies struct {
	Config   *config.Config
	Logger   *logrus.Logger
	Redis    *redis.Client
	Catalog  *services.CatalogService
	Users    *services.UserService
	Sessions *services.SessionService
	Reports  *services.ReportAggregator
	Exporter *services.Exporter
}

// corsConfig translates the CORS section into gin-contrib/cors settings
func corsConfig(cfg config.CORSConfig) cors.Config {
	c := cors.Config{
		AllowMethods:     cfg.AllowedMethods,
		AllowHeaders:     cfg.AllowedHeaders,
		ExposeHeaders:    []string{"Content-Disposition", "X-RateLimit-Limit", "Retry-After"},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           time.Duration(cfg.MaxAge) * time.Second,
	}
	if len(cfg.AllowedOrigins) == 0 {
		c.AllowAllOrigins = true
		return c
	}
	for _, origin := range cfg.AllowedOrigins {
		if origin == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	c.AllowOrigins = cfg.AllowedOrigins
	return c
}

var registerValidations sync.Once

// setupValidator installs the request tags on gin's binding validator
func setupValidator(logger *logrus.Logger) {
	registerValidations.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		if err := models.RegisterValidations(v); err != nil {
			logger.WithError(err).Fatal("failed to register request validations")
		}
	})
}

// NewRouter builds the gin engine with every route of the dashboard API
func NewRouter(deps Dependencies) *gin.Engine {
	if deps.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	setupValidator(deps.Logger)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.SecurityHeaders(deps.Config.IsProduction()))
	r.Use(cors.New(corsConfig(deps.Config.CORS)))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "pong",
			"version": deps.Config.App.Version,
		})
	})

	public := r.Group("/api")
	protected := public.Group("")
	protected.Use(middleware.RequireSession(deps.Sessions, deps.Logger))
	protected.Use(middleware.RateLimit(deps.Redis, middleware.RateLimitConfig{
		Requests:     deps.Config.Security.RateLimitRequests,
		Window:       deps.Config.Security.RateLimitWindow,
		KeyGenerator: middleware.SessionKeyGenerator,
	}, deps.Logger))

	NewAuthAPI(deps.Sessions, deps.Logger).RegisterRoutes(public, protected, middleware.AuthRateLimit(deps.Redis, deps.Logger))
	NewDashboardAPI(deps.Reports, deps.Exporter, deps.Logger).RegisterRoutes(protected)
	NewCatalogAPI(deps.Catalog, deps.Users, deps.Logger).RegisterRoutes(protected)

	return r
}
