package handlers

import (
	"github.com/vmos0/cloud-mail/cmd/docs"
	portssvc "github.com/vmos0/cloud-mail/internal/core/ports/services"
	"github.com/vmos0/cloud-mail/internal/middleware"
	"github.com/vmos0/cloud-mail/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerOAuthValidators()

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	registerOAuthRoutes(r, cfg, services)

	setupSwaggerRoutes(r, cfg)
}

// registerOAuthRoutes wires the public OAuth routes plus the authenticated
// unbind route.
func registerOAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewOAuthHandler(services.OAuth, cfg)

	// Login and bind are unauthenticated by nature; rate limit them.
	rate, _ := limiter.NewRateFromFormatted("10-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := middleware.RateLimit(ipLimiter)

	// The provider callback stays at the root so its registered redirect URI
	// is stable.
	r.GET("/oauth/github/callback", h.Callback)

	oauth := r.Group("/api/v1/oauth")
	{
		oauth.POST("/:provider/login", limitMiddleware, h.Login)
		oauth.PUT("/bindUser", limitMiddleware, h.BindUser)
		oauth.DELETE("/unbind/:provider", middleware.AuthMiddleware(cfg.JWTSecret), h.Unbind)
	}
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
