package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/DraymeM/tiomi/config"
	"github.com/DraymeM/tiomi/internal/api/handler"
	"github.com/DraymeM/tiomi/internal/api/middleware"
	"github.com/DraymeM/tiomi/pkg/jwt"
	"github.com/DraymeM/tiomi/pkg/redis"
	"github.com/DraymeM/tiomi/pkg/response"
)

const maxBodyBytes = 1 << 20 // 1MB

// New builds the Gin engine with all routes and middleware attached.
func New(
	cfg *config.Config,
	h *handler.Handler,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(maxBodyBytes))

	r.GET("/health", func(c *gin.Context) {
		response.OK(c, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		// Brute-force guard on the credential check.
		auth.POST("/login", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Login)
	}

	authed := v1.Group("")
	authed.Use(middleware.JWTAuth(jwtMgr, rdb))
	{
		authed.POST("/auth/logout", h.Auth.Logout)
		authed.GET("/auth/me", h.Auth.GetCurrentUser)
		authed.PUT("/auth/password", h.Auth.ChangePassword)

		authed.POST("/tetelek", h.Tetel.Create)
		authed.PUT("/tetelek/:id", h.Tetel.Update)
		authed.DELETE("/tetelek/:id", middleware.SuperuserOnly(), h.Tetel.Delete)

		authed.GET("/export/tetelek", h.Export.ExportTetelek)

		authed.GET("/users/:id", middleware.SuperuserOnly(), h.User.GetUser)
	}

	// Reading is open: the catalog and details are public content.
	v1.GET("/tetelek", h.Tetel.List)
	v1.GET("/tetelek/:id", h.Tetel.GetDetails)

	return r
}
